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
	"github.com/vitrinsoft/vitrin_backend/internal/core/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// --- Test Suite ---
type ProductServiceTestSuite struct {
	suite.Suite
	mockProductRepo  *MockProductRepository
	mockCurrencyRepo *MockCurrencyRateRepository
	service          *services.ProductService
	ctx              context.Context
}

func (suite *ProductServiceTestSuite) SetupTest() {
	suite.mockProductRepo = new(MockProductRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRateRepository)
	suite.service = services.NewProductService(suite.mockProductRepo, suite.mockCurrencyRepo, "TRY")
	suite.ctx = context.Background()
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DerivesBasePriceFromStoredRate() {
	creatorID := uuid.NewString()
	req := dto.CreateProductRequest{
		SKU:           "CAM-001",
		Name:          "Mirrorless Camera",
		PriceCurrency: "USD",
		PriceAmount:   decimal.RequireFromString("3.335"),
		IsActive:      true,
	}

	suite.mockCurrencyRepo.
		On("FindRateByCode", suite.ctx, "USD").
		Return(&domain.CurrencyRate{CurrencyCode: "USD", Rate: decimal.NewFromInt(3)}, nil).Once()

	var saved domain.Product
	suite.mockProductRepo.
		On("SaveProduct", suite.ctx, mock.AnythingOfType("domain.Product")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Product)
		}).
		Return(nil).Once()

	created, err := suite.service.CreateProduct(suite.ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	// 3.335 * 3 = 10.005, rounded half-up to 10.01
	suite.True(saved.BasePrice.Equal(decimal.RequireFromString("10.01")),
		"expected 10.01, got %s", saved.BasePrice)
	suite.Equal("USD", saved.PriceCurrency)
	suite.Equal(creatorID, saved.CreatedBy)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestCreateProduct_BaseCurrencyNeedsNoRate() {
	req := dto.CreateProductRequest{
		SKU:           "CAM-002",
		Name:          "Tripod",
		PriceCurrency: "TRY",
		PriceAmount:   decimal.RequireFromString("199.999"),
		IsActive:      true,
	}

	var saved domain.Product
	suite.mockProductRepo.
		On("SaveProduct", suite.ctx, mock.AnythingOfType("domain.Product")).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(domain.Product)
		}).
		Return(nil).Once()

	_, err := suite.service.CreateProduct(suite.ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.True(saved.BasePrice.Equal(decimal.RequireFromString("200.00")),
		"expected 200.00, got %s", saved.BasePrice)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindRateByCode", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_MissingRateIsValidationError() {
	req := dto.CreateProductRequest{
		SKU:           "CAM-003",
		Name:          "Lens",
		PriceCurrency: "GBP",
		PriceAmount:   decimal.NewFromInt(100),
		IsActive:      true,
	}

	suite.mockCurrencyRepo.
		On("FindRateByCode", suite.ctx, "GBP").
		Return(nil, fmt.Errorf("%w: rate not found", apperrors.ErrNotFound)).Once()

	created, err := suite.service.CreateProduct(suite.ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_RejectsNonPositivePrice() {
	req := dto.CreateProductRequest{
		SKU:           "CAM-004",
		Name:          "Filter",
		PriceCurrency: "USD",
		PriceAmount:   decimal.Zero,
		IsActive:      true,
	}

	created, err := suite.service.CreateProduct(suite.ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(created)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindRateByCode", mock.Anything, mock.Anything)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SaveProduct", mock.Anything, mock.Anything)
}

func (suite *ProductServiceTestSuite) TestCreateProduct_DuplicateSKU() {
	req := dto.CreateProductRequest{
		SKU:           "CAM-001",
		Name:          "Mirrorless Camera",
		PriceCurrency: "TRY",
		PriceAmount:   decimal.NewFromInt(100),
		IsActive:      true,
	}

	suite.mockProductRepo.
		On("SaveProduct", suite.ctx, mock.AnythingOfType("domain.Product")).
		Return(fmt.Errorf("%w: sku taken", apperrors.ErrDuplicate)).Once()

	created, err := suite.service.CreateProduct(suite.ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(created)
}

func (suite *ProductServiceTestSuite) TestUpdateProduct_RederivesBasePrice() {
	updaterID := uuid.NewString()
	productID := uuid.NewString()
	existing := &domain.Product{
		ProductID:     productID,
		SKU:           "CAM-001",
		Name:          "Mirrorless Camera",
		PriceCurrency: "USD",
		PriceAmount:   decimal.NewFromInt(10),
		BasePrice:     decimal.RequireFromString("440.00"),
		IsActive:      true,
	}
	req := dto.UpdateProductRequest{
		Name:          "Mirrorless Camera Mk II",
		PriceCurrency: "EUR",
		PriceAmount:   decimal.NewFromInt(12),
		IsActive:      true,
	}

	suite.mockProductRepo.On("FindProductByID", suite.ctx, productID).Return(existing, nil).Once()
	suite.mockCurrencyRepo.
		On("FindRateByCode", suite.ctx, "EUR").
		Return(&domain.CurrencyRate{CurrencyCode: "EUR", Rate: decimal.RequireFromString("55")}, nil).Once()

	var updated domain.Product
	suite.mockProductRepo.
		On("UpdateProduct", suite.ctx, mock.AnythingOfType("domain.Product")).
		Run(func(args mock.Arguments) {
			updated = args.Get(1).(domain.Product)
		}).
		Return(nil).Once()

	result, err := suite.service.UpdateProduct(suite.ctx, productID, req, updaterID)

	suite.Require().NoError(err)
	suite.True(updated.BasePrice.Equal(decimal.RequireFromString("660.00")),
		"expected 660.00, got %s", updated.BasePrice)
	suite.Equal("EUR", updated.PriceCurrency)
	suite.Equal("Mirrorless Camera Mk II", result.Name)
	suite.Equal(updaterID, updated.LastUpdatedBy)
	suite.mockProductRepo.AssertExpectations(suite.T())
}

func (suite *ProductServiceTestSuite) TestSearchProducts_EmptyQueryShortCircuits() {
	products, err := suite.service.SearchProducts(suite.ctx, "   ", true, 10)

	suite.Require().NoError(err)
	suite.Empty(products)
	suite.mockProductRepo.AssertNotCalled(suite.T(), "SearchProducts", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProductServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProductServiceTestSuite))
}
