package dto

import "github.com/vitrinsoft/vitrin_backend/internal/core/domain"

// CreateBrandRequest defines the payload for creating a brand.
type CreateBrandRequest struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoURL" binding:"omitempty,url"`
}

// UpdateBrandRequest defines the payload for editing a brand.
type UpdateBrandRequest struct {
	Name    string `json:"name" binding:"required"`
	LogoURL string `json:"logoURL" binding:"omitempty,url"`
}

// BrandResponse defines the data returned for a brand.
type BrandResponse struct {
	BrandID string `json:"brandID"`
	Name    string `json:"name"`
	LogoURL string `json:"logoURL,omitempty"`
}

// ToBrandResponse converts a domain.Brand to BrandResponse DTO
func ToBrandResponse(b *domain.Brand) BrandResponse {
	return BrandResponse{BrandID: b.BrandID, Name: b.Name, LogoURL: b.LogoURL}
}

// ToListBrandResponse converts a slice of domain.Brand to BrandResponse DTOs
func ToListBrandResponse(brands []domain.Brand) []BrandResponse {
	res := make([]BrandResponse, len(brands))
	for i := range brands {
		res[i] = ToBrandResponse(&brands[i])
	}
	return res
}

// CreateCategoryRequest defines the payload for creating a category.
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parentID"`
}

// UpdateCategoryRequest defines the payload for editing a category.
type UpdateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	ParentID string `json:"parentID"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	ParentID   string `json:"parentID,omitempty"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Name: c.Name, ParentID: c.ParentID}
}

// ToListCategoryResponse converts a slice of domain.Category to CategoryResponse DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
