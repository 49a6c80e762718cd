package mapping

import (
	"database/sql"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
)

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func fromNullString(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:     d.ProductID,
		SKU:           d.SKU,
		Name:          d.Name,
		Description:   d.Description,
		BrandID:       toNullString(d.BrandID),
		CategoryID:    toNullString(d.CategoryID),
		PriceCurrency: d.PriceCurrency,
		PriceAmount:   d.PriceAmount,
		BasePrice:     d.BasePrice,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:     m.ProductID,
		SKU:           m.SKU,
		Name:          m.Name,
		Description:   m.Description,
		BrandID:       fromNullString(m.BrandID),
		CategoryID:    fromNullString(m.CategoryID),
		PriceCurrency: m.PriceCurrency,
		PriceAmount:   m.PriceAmount,
		BasePrice:     m.BasePrice,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainProductSlice converts a slice of model Products to domain Products
func ToDomainProductSlice(ms []models.Product) []domain.Product {
	ds := make([]domain.Product, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainProduct(m)
	}
	return ds
}
