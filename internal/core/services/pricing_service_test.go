package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/core/services"
)

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).([]domain.Product), args.String(1), args.Error(2)
}

func (m *MockProductRepository) ListProductsByPriceCurrency(ctx context.Context, currencyCode string) ([]domain.Product, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) SearchProducts(ctx context.Context, query string, activeOnly bool, limit int) ([]domain.Product, error) {
	args := m.Called(ctx, query, activeOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock CurrencyRateRepository ---
type MockCurrencyRateRepository struct {
	mock.Mock
}

func (m *MockCurrencyRateRepository) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) FindRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyRateRepository) ApplyRate(ctx context.Context, rate domain.CurrencyRate, updates []domain.PriceUpdate) error {
	args := m.Called(ctx, rate, updates)
	return args.Error(0)
}

// --- Test Suite ---
type PricingServiceTestSuite struct {
	suite.Suite
	mockProductRepo  *MockProductRepository
	mockCurrencyRepo *MockCurrencyRateRepository
	service          portssvc.PricingSvcFacade
}

func (suite *PricingServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRateRepository)
	suite.service = services.NewPricingService(suite.mockProductRepo, suite.mockCurrencyRepo, "TRY")
}

func usdProduct(priceAmount string) domain.Product {
	return domain.Product{
		ProductID:     uuid.NewString(),
		SKU:           "SKU-" + uuid.NewString()[:8],
		Name:          "Test Product",
		PriceCurrency: "USD",
		PriceAmount:   decimal.RequireFromString(priceAmount),
		IsActive:      true,
	}
}

func (suite *PricingServiceTestSuite) TestRecalculate_DerivesRoundedBasePrices() {
	ctx := context.Background()
	actorID := uuid.NewString()
	products := []domain.Product{usdProduct("10.00"), usdProduct("3.335")}
	rate := decimal.RequireFromString("3")

	suite.mockProductRepo.On("ListProductsByPriceCurrency", ctx, "USD").Return(products, nil).Once()
	suite.mockCurrencyRepo.On("ApplyRate", ctx, mock.MatchedBy(func(r domain.CurrencyRate) bool {
		return r.CurrencyCode == "USD" && r.Rate.Equal(rate) && r.LastUpdatedBy == actorID
	}), mock.MatchedBy(func(updates []domain.PriceUpdate) bool {
		if len(updates) != 2 {
			return false
		}
		// 10.00 * 3 = 30.00; 3.335 * 3 = 10.005 rounds half-up to 10.01
		return updates[0].NewBasePrice.Equal(decimal.RequireFromString("30.00")) &&
			updates[1].NewBasePrice.Equal(decimal.RequireFromString("10.01"))
	})).Return(nil).Once()

	updated, err := suite.service.Recalculate(ctx, "usd", rate, actorID)

	suite.Require().NoError(err)
	suite.Equal(2, updated)
	suite.mockProductRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *PricingServiceTestSuite) TestRecalculate_LastRateWins() {
	ctx := context.Background()
	actorID := uuid.NewString()
	product := usdProduct("100.00")

	var applied []domain.PriceUpdate
	suite.mockProductRepo.On("ListProductsByPriceCurrency", ctx, "USD").
		Return([]domain.Product{product}, nil).Twice()
	suite.mockCurrencyRepo.On("ApplyRate", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			applied = args.Get(2).([]domain.PriceUpdate)
		}).Return(nil).Twice()

	_, err := suite.service.Recalculate(ctx, "USD", decimal.RequireFromString("44"), actorID)
	suite.Require().NoError(err)

	_, err = suite.service.Recalculate(ctx, "USD", decimal.RequireFromString("45.5"), actorID)
	suite.Require().NoError(err)

	// Final base price reflects the second rate only
	suite.Require().Len(applied, 1)
	suite.True(applied[0].NewBasePrice.Equal(decimal.RequireFromString("4550.00")),
		"expected 4550.00, got %s", applied[0].NewBasePrice)
}

func (suite *PricingServiceTestSuite) TestRecalculate_Idempotent() {
	ctx := context.Background()
	actorID := uuid.NewString()
	product := usdProduct("19.99")
	rate := decimal.RequireFromString("44")

	var runs [][]domain.PriceUpdate
	suite.mockProductRepo.On("ListProductsByPriceCurrency", ctx, "USD").
		Return([]domain.Product{product}, nil).Twice()
	suite.mockCurrencyRepo.On("ApplyRate", ctx, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			runs = append(runs, args.Get(2).([]domain.PriceUpdate))
		}).Return(nil).Twice()

	_, err := suite.service.Recalculate(ctx, "USD", rate, actorID)
	suite.Require().NoError(err)
	_, err = suite.service.Recalculate(ctx, "USD", rate, actorID)
	suite.Require().NoError(err)

	suite.Require().Len(runs, 2)
	suite.True(runs[0][0].NewBasePrice.Equal(runs[1][0].NewBasePrice))
}

func (suite *PricingServiceTestSuite) TestRecalculate_RejectsNonPositiveRate() {
	ctx := context.Background()

	for _, raw := range []string{"0", "-1", "-0.01"} {
		updated, err := suite.service.Recalculate(ctx, "USD", decimal.RequireFromString(raw), uuid.NewString())

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Zero(updated)
	}

	// No reads, no writes
	suite.mockProductRepo.AssertNotCalled(suite.T(), "ListProductsByPriceCurrency", mock.Anything, mock.Anything)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "ApplyRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestRecalculate_RejectsBaseCurrency() {
	ctx := context.Background()

	updated, err := suite.service.Recalculate(ctx, "TRY", decimal.RequireFromString("2"), uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Zero(updated)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "ApplyRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PricingServiceTestSuite) TestRecalculate_NoProductsStillStoresRate() {
	ctx := context.Background()
	actorID := uuid.NewString()

	suite.mockProductRepo.On("ListProductsByPriceCurrency", ctx, "EUR").
		Return([]domain.Product{}, nil).Once()
	suite.mockCurrencyRepo.On("ApplyRate", ctx, mock.Anything, mock.MatchedBy(func(updates []domain.PriceUpdate) bool {
		return len(updates) == 0
	})).Return(nil).Once()

	updated, err := suite.service.Recalculate(ctx, "EUR", decimal.RequireFromString("55"), actorID)

	suite.Require().NoError(err)
	suite.Zero(updated)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func TestPricingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PricingServiceTestSuite))
}
