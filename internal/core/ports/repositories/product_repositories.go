package repositories

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// ProductRepository persists catalog products.
type ProductRepository interface {
	// SaveProduct inserts a new product. Returns apperrors.ErrDuplicate when
	// the SKU is already taken.
	SaveProduct(ctx context.Context, product domain.Product) error

	// FindProductByID retrieves a product by its ID.
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products ordered by creation time, newest first.
	// nextToken is a date-based pagination token; empty means first page.
	ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error)

	// ListProductsByPriceCurrency retrieves every active product whose price is
	// denominated in the given currency. Used by the recalculation pass.
	ListProductsByPriceCurrency(ctx context.Context, currencyCode string) ([]domain.Product, error)

	// SearchProducts performs a case-insensitive substring search over product
	// name and SKU. When activeOnly is set, inactive products are excluded.
	SearchProducts(ctx context.Context, query string, activeOnly bool, limit int) ([]domain.Product, error)

	// UpdateProduct rewrites an existing product row.
	UpdateProduct(ctx context.Context, product domain.Product) error

	// DeleteProduct removes a product from the catalog.
	DeleteProduct(ctx context.Context, productID string) error
}
