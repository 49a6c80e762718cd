package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// CreateProductRequest defines the payload for creating a catalog product.
type CreateProductRequest struct {
	SKU           string          `json:"sku" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	BrandID       string          `json:"brandID"`
	CategoryID    string          `json:"categoryID"`
	PriceCurrency string          `json:"priceCurrency" binding:"required,currencycode"`
	PriceAmount   decimal.Decimal `json:"priceAmount" binding:"required"`
	IsActive      bool            `json:"isActive"`
}

// UpdateProductRequest defines the payload for editing a product. All fields
// are required so the handler never forwards a partially bound body.
type UpdateProductRequest struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	BrandID       string          `json:"brandID"`
	CategoryID    string          `json:"categoryID"`
	PriceCurrency string          `json:"priceCurrency" binding:"required,currencycode"`
	PriceAmount   decimal.Decimal `json:"priceAmount" binding:"required"`
	IsActive      bool            `json:"isActive"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID     string          `json:"productID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	BrandID       string          `json:"brandID,omitempty"`
	CategoryID    string          `json:"categoryID,omitempty"`
	PriceCurrency string          `json:"priceCurrency"`
	PriceAmount   decimal.Decimal `json:"priceAmount"`
	BasePrice     decimal.Decimal `json:"basePrice"`
	IsActive      bool            `json:"isActive"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ProductListResponse is a paginated product listing.
type ProductListResponse struct {
	Products  []ProductResponse `json:"products"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:     p.ProductID,
		SKU:           p.SKU,
		Name:          p.Name,
		Description:   p.Description,
		BrandID:       p.BrandID,
		CategoryID:    p.CategoryID,
		PriceCurrency: p.PriceCurrency,
		PriceAmount:   p.PriceAmount,
		BasePrice:     p.BasePrice,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		LastUpdatedAt: p.LastUpdatedAt,
	}
}

// ToListProductResponse converts a slice of domain.Product to ProductResponse DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}
