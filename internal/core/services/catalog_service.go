package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// BrandService manages brands.
type BrandService struct {
	brandRepo portsrepo.BrandRepository
}

// NewBrandService creates a new BrandService.
func NewBrandService(brandRepo portsrepo.BrandRepository) *BrandService {
	return &BrandService{brandRepo: brandRepo}
}

func (s *BrandService) CreateBrand(ctx context.Context, req dto.CreateBrandRequest, creatorUserID string) (*domain.Brand, error) {
	now := time.Now()
	brand := domain.Brand{
		BrandID: uuid.NewString(),
		Name:    req.Name,
		LogoURL: req.LogoURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.brandRepo.SaveBrand(ctx, brand); err != nil {
		return nil, fmt.Errorf("failed to create brand in service: %w", err)
	}
	return &brand, nil
}

func (s *BrandService) GetBrandByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	brand, err := s.brandRepo.FindBrandByID(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to get brand by ID in service: %w", err)
	}
	return brand, nil
}

func (s *BrandService) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	brands, err := s.brandRepo.ListBrands(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands in service: %w", err)
	}
	if brands == nil {
		return []domain.Brand{}, nil
	}
	return brands, nil
}

func (s *BrandService) UpdateBrand(ctx context.Context, brandID string, req dto.UpdateBrandRequest, updaterUserID string) (*domain.Brand, error) {
	existing, err := s.brandRepo.FindBrandByID(ctx, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to find brand for update: %w", err)
	}
	existing.Name = req.Name
	existing.LogoURL = req.LogoURL
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updaterUserID

	if err := s.brandRepo.UpdateBrand(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update brand in service: %w", err)
	}
	return existing, nil
}

func (s *BrandService) DeleteBrand(ctx context.Context, brandID string) error {
	if err := s.brandRepo.DeleteBrand(ctx, brandID); err != nil {
		return fmt.Errorf("failed to delete brand in service: %w", err)
	}
	return nil
}

// CategoryService manages categories.
type CategoryService struct {
	categoryRepo portsrepo.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest, creatorUserID string) (*domain.Category, error) {
	now := time.Now()
	category := domain.Category{
		CategoryID: uuid.NewString(),
		Name:       req.Name,
		ParentID:   req.ParentID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category in service: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category by ID in service: %w", err)
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest, updaterUserID string) (*domain.Category, error) {
	existing, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category for update: %w", err)
	}
	existing.Name = req.Name
	existing.ParentID = req.ParentID
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updaterUserID

	if err := s.categoryRepo.UpdateCategory(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update category in service: %w", err)
	}
	return existing, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		return fmt.Errorf("failed to delete category in service: %w", err)
	}
	return nil
}
