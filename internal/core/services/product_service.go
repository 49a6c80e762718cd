package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/utils"
)

const defaultSearchLimit = 50

// ProductService implements catalog management. Base prices are derived from
// the stored rate at write time; bulk re-derivation on rate changes is the
// PricingService's job.
type ProductService struct {
	productRepo  portsrepo.ProductRepository
	currencyRepo portsrepo.CurrencyRateRepository
	baseCurrency string
}

// NewProductService creates a new ProductService.
func NewProductService(productRepo portsrepo.ProductRepository, currencyRepo portsrepo.CurrencyRateRepository, baseCurrency string) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		currencyRepo: currencyRepo,
		baseCurrency: strings.ToUpper(baseCurrency),
	}
}

// resolveBasePrice derives the base-currency price for a price denominated in
// currencyCode, using the stored rate. A product priced directly in the base
// currency needs no rate row.
func (s *ProductService) resolveBasePrice(ctx context.Context, currencyCode string, amount decimal.Decimal) (decimal.Decimal, error) {
	if currencyCode == s.baseCurrency {
		return amount.Round(utils.BaseCurrencyPrecision), nil
	}
	rate, err := s.currencyRepo.FindRateByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, fmt.Errorf("%w: no rate stored for currency '%s'", apperrors.ErrValidation, currencyCode)
		}
		return decimal.Zero, fmt.Errorf("failed to resolve rate for %s: %w", currencyCode, err)
	}
	return utils.DeriveBasePrice(amount, rate.Rate), nil
}

// CreateProduct persists a new product.
func (s *ProductService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error) {
	if req.PriceAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}

	currency := strings.ToUpper(req.PriceCurrency)
	basePrice, err := s.resolveBasePrice(ctx, currency, req.PriceAmount)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := domain.Product{
		ProductID:     uuid.NewString(),
		SKU:           strings.TrimSpace(req.SKU),
		Name:          req.Name,
		Description:   req.Description,
		BrandID:       req.BrandID,
		CategoryID:    req.CategoryID,
		PriceCurrency: currency,
		PriceAmount:   req.PriceAmount,
		BasePrice:     basePrice,
		IsActive:      req.IsActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.productRepo.SaveProduct(ctx, product); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: SKU '%s' already exists", apperrors.ErrDuplicate, product.SKU)
		}
		return nil, fmt.Errorf("failed to create product in service: %w", err)
	}

	return &product, nil
}

// UpdateProduct rewrites a product and re-derives its base price.
func (s *ProductService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error) {
	if req.PriceAmount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: price must be positive", apperrors.ErrValidation)
	}

	existing, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to find product for update: %w", err)
	}

	currency := strings.ToUpper(req.PriceCurrency)
	basePrice, err := s.resolveBasePrice(ctx, currency, req.PriceAmount)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.Description = req.Description
	existing.BrandID = req.BrandID
	existing.CategoryID = req.CategoryID
	existing.PriceCurrency = currency
	existing.PriceAmount = req.PriceAmount
	existing.BasePrice = basePrice
	existing.IsActive = req.IsActive
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updaterUserID

	if err := s.productRepo.UpdateProduct(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update product in service: %w", err)
	}

	return existing, nil
}

// DeleteProduct removes a product from the catalog.
func (s *ProductService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product in service: %w", err)
	}
	return nil
}

// GetProductByID retrieves a product by its ID.
func (s *ProductService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product by ID in service: %w", err)
	}
	return product, nil
}

// ListProducts retrieves a paginated product listing.
func (s *ProductService) ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultSearchLimit
	}
	products, token, err := s.productRepo.ListProducts(ctx, limit, nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list products in service: %w", err)
	}
	if products == nil {
		products = []domain.Product{}
	}
	return products, token, nil
}

// SearchProducts performs a case-insensitive substring search over product
// name and SKU.
func (s *ProductService) SearchProducts(ctx context.Context, query string, activeOnly bool, limit int) ([]domain.Product, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.Product{}, nil
	}
	if limit <= 0 || limit > 200 {
		limit = defaultSearchLimit
	}
	products, err := s.productRepo.SearchProducts(ctx, query, activeOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search products in service: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}
