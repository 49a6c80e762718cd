package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/core/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// --- Mock OrderRepository ---
type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockOrderRepository) ListOrders(ctx context.Context, limit int, nextToken string) ([]domain.Order, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]domain.Order), args.String(1), args.Error(2)
}

func (m *MockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error {
	args := m.Called(ctx, orderID, status, updaterUserID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portsrepo.OrderRepository = (*MockOrderRepository)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreateSession(ctx context.Context, orderID string) (*domain.PaymentSession, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentSession), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Test Suite ---
type OrderServiceTestSuite struct {
	suite.Suite
	mockOrderRepo   *MockOrderRepository
	mockProductRepo *MockProductRepository
	mockPaymentSvc  *MockPaymentService
	service         *services.OrderService
	ctx             context.Context
}

func (suite *OrderServiceTestSuite) SetupTest() {
	suite.mockOrderRepo = new(MockOrderRepository)
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockPaymentSvc = new(MockPaymentService)
	suite.service = services.NewOrderService(suite.mockOrderRepo, suite.mockProductRepo, suite.mockPaymentSvc)
	suite.ctx = context.Background()
}

func (suite *OrderServiceTestSuite) activeProduct(name string, basePrice string) *domain.Product {
	return &domain.Product{
		ProductID: uuid.NewString(),
		SKU:       name,
		Name:      name,
		BasePrice: decimal.RequireFromString(basePrice),
		IsActive:  true,
	}
}

func (suite *OrderServiceTestSuite) TestCheckout_CapturesBasePricesAndTotal() {
	userID := uuid.NewString()
	camera := suite.activeProduct("CAM-001", "440.00")
	tripod := suite.activeProduct("TRP-001", "120.50")

	req := dto.CheckoutRequest{Items: []dto.CheckoutItem{
		{ProductID: camera.ProductID, Quantity: 2},
		{ProductID: tripod.ProductID, Quantity: 1},
	}}

	suite.mockProductRepo.On("FindProductByID", suite.ctx, camera.ProductID).Return(camera, nil).Once()
	suite.mockProductRepo.On("FindProductByID", suite.ctx, tripod.ProductID).Return(tripod, nil).Once()
	suite.mockPaymentSvc.
		On("CreateSession", suite.ctx, mock.AnythingOfType("string")).
		Return(&domain.PaymentSession{Token: "pay-token", IframeURL: "https://pay.example.com/iframe/pay-token"}, nil).Once()

	var saved domain.Order
	suite.mockOrderRepo.
		On("SaveOrder", suite.ctx, mock.AnythingOfType("domain.Order")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Order)
		}).
		Return(nil).Once()

	order, session, err := suite.service.Checkout(suite.ctx, userID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(order)
	suite.Require().NotNil(session)

	// 2 x 440.00 + 1 x 120.50
	suite.True(saved.TotalAmount.Equal(decimal.RequireFromString("1000.50")),
		"expected 1000.50, got %s", saved.TotalAmount)
	suite.Equal(domain.OrderPending, saved.Status)
	suite.Equal(userID, saved.UserID)
	suite.Equal("pay-token", saved.PaymentToken)
	suite.Require().Len(saved.Items, 2)
	suite.True(saved.Items[0].UnitPrice.Equal(camera.BasePrice), "line must capture the base price at checkout time")
	suite.Equal(int64(2), saved.Items[0].Quantity)

	suite.mockOrderRepo.AssertExpectations(suite.T())
	suite.mockPaymentSvc.AssertExpectations(suite.T())
}

func (suite *OrderServiceTestSuite) TestCheckout_RejectsInactiveProduct() {
	inactive := suite.activeProduct("CAM-OLD", "99.00")
	inactive.IsActive = false

	req := dto.CheckoutRequest{Items: []dto.CheckoutItem{
		{ProductID: inactive.ProductID, Quantity: 1},
	}}

	suite.mockProductRepo.On("FindProductByID", suite.ctx, inactive.ProductID).Return(inactive, nil).Once()

	order, session, err := suite.service.Checkout(suite.ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(order)
	suite.Nil(session)
	suite.mockPaymentSvc.AssertNotCalled(suite.T(), "CreateSession", mock.Anything, mock.Anything)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestCheckout_RejectsUnknownProduct() {
	missingID := uuid.NewString()
	req := dto.CheckoutRequest{Items: []dto.CheckoutItem{
		{ProductID: missingID, Quantity: 1},
	}}

	suite.mockProductRepo.
		On("FindProductByID", suite.ctx, missingID).
		Return(nil, fmt.Errorf("%w: product not found", apperrors.ErrNotFound)).Once()

	order, session, err := suite.service.Checkout(suite.ctx, uuid.NewString(), req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(order)
	suite.Nil(session)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "SaveOrder", mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_RejectsUnknownStatus() {
	order, err := suite.service.UpdateOrderStatus(suite.ctx, uuid.NewString(), domain.OrderStatus("TELEPORTED"), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(order)
	suite.mockOrderRepo.AssertNotCalled(suite.T(), "UpdateOrderStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OrderServiceTestSuite) TestUpdateOrderStatus_Success() {
	orderID := uuid.NewString()
	adminID := uuid.NewString()
	reloaded := &domain.Order{OrderID: orderID, Status: domain.OrderShipped}

	suite.mockOrderRepo.On("UpdateOrderStatus", suite.ctx, orderID, domain.OrderShipped, adminID).Return(nil).Once()
	suite.mockOrderRepo.On("FindOrderByID", suite.ctx, orderID).Return(reloaded, nil).Once()

	order, err := suite.service.UpdateOrderStatus(suite.ctx, orderID, domain.OrderShipped, adminID)

	suite.Require().NoError(err)
	suite.Equal(domain.OrderShipped, order.Status)
	suite.mockOrderRepo.AssertExpectations(suite.T())
}

func TestOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrderServiceTestSuite))
}
