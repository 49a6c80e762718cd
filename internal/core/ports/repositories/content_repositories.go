package repositories

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// BlogRepository persists blog posts.
type BlogRepository interface {
	// SavePost inserts a new post. Returns apperrors.ErrDuplicate on slug clash.
	SavePost(ctx context.Context, post domain.BlogPost) error

	// FindPostBySlug retrieves a post by its slug.
	FindPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)

	// FindPostByID retrieves a post by its ID.
	FindPostByID(ctx context.Context, postID string) (*domain.BlogPost, error)

	// ListPosts retrieves posts, optionally restricted to published ones.
	ListPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)

	// UpdatePost rewrites an existing post.
	UpdatePost(ctx context.Context, post domain.BlogPost) error

	// DeletePost removes a post.
	DeletePost(ctx context.Context, postID string) error
}

// BrandRepository persists brands.
type BrandRepository interface {
	SaveBrand(ctx context.Context, brand domain.Brand) error
	FindBrandByID(ctx context.Context, brandID string) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	UpdateBrand(ctx context.Context, brand domain.Brand) error
	DeleteBrand(ctx context.Context, brandID string) error
}

// CategoryRepository persists categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// SettingsRepository persists the single store settings record.
type SettingsRepository interface {
	// GetSettings retrieves the settings row. Returns apperrors.ErrNotFound
	// when the store has never been configured.
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)

	// SaveSettings upserts the settings row.
	SaveSettings(ctx context.Context, settings domain.StoreSettings) error
}
