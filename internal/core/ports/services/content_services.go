package services

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// BlogSvcFacade manages blog content.
type BlogSvcFacade interface {
	CreatePost(ctx context.Context, req dto.CreateBlogPostRequest, creatorUserID string) (*domain.BlogPost, error)
	GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	GetPostByID(ctx context.Context, postID string) (*domain.BlogPost, error)
	ListPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error)
	UpdatePost(ctx context.Context, postID string, req dto.UpdateBlogPostRequest, updaterUserID string) (*domain.BlogPost, error)
	DeletePost(ctx context.Context, postID string) error
}

// BrandSvcFacade manages brands.
type BrandSvcFacade interface {
	CreateBrand(ctx context.Context, req dto.CreateBrandRequest, creatorUserID string) (*domain.Brand, error)
	GetBrandByID(ctx context.Context, brandID string) (*domain.Brand, error)
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	UpdateBrand(ctx context.Context, brandID string, req dto.UpdateBrandRequest, updaterUserID string) (*domain.Brand, error)
	DeleteBrand(ctx context.Context, brandID string) error
}

// CategorySvcFacade manages categories.
type CategorySvcFacade interface {
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error)
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error)
	DeleteCategory(ctx context.Context, categoryID string) error
}

// SettingsSvcFacade manages the store settings record.
type SettingsSvcFacade interface {
	GetSettings(ctx context.Context) (*domain.StoreSettings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) (*domain.StoreSettings, error)
}
