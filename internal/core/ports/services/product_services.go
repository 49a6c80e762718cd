package services

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// ProductReaderSvc defines read operations for the catalog.
type ProductReaderSvc interface {
	// GetProductByID retrieves a product by its ID.
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves a paginated product listing.
	ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error)

	// SearchProducts performs a case-insensitive substring search over name
	// and SKU. Public callers get active products only.
	SearchProducts(ctx context.Context, query string, activeOnly bool, limit int) ([]domain.Product, error)
}

// ProductWriterSvc defines write operations for the catalog.
type ProductWriterSvc interface {
	// CreateProduct persists a new product with its base price derived from
	// the stored rate for its price currency.
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorUserID string) (*domain.Product, error)

	// UpdateProduct rewrites a product, re-deriving its base price.
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterUserID string) (*domain.Product, error)

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductSvcFacade combines all catalog service interfaces.
type ProductSvcFacade interface {
	ProductReaderSvc
	ProductWriterSvc
}
