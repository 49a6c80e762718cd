package mapping

import (
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
)

// ToModelBlogPost converts a domain BlogPost to a model BlogPost
func ToModelBlogPost(d domain.BlogPost) models.BlogPost {
	return models.BlogPost{
		PostID:      d.PostID,
		Slug:        d.Slug,
		Title:       d.Title,
		Body:        d.Body,
		CoverImage:  toNullString(d.CoverImage),
		IsPublished: d.IsPublished,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBlogPost converts a model BlogPost to a domain BlogPost
func ToDomainBlogPost(m models.BlogPost) domain.BlogPost {
	return domain.BlogPost{
		PostID:      m.PostID,
		Slug:        m.Slug,
		Title:       m.Title,
		Body:        m.Body,
		CoverImage:  fromNullString(m.CoverImage),
		IsPublished: m.IsPublished,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelBrand converts a domain Brand to a model Brand
func ToModelBrand(d domain.Brand) models.Brand {
	return models.Brand{
		BrandID:     d.BrandID,
		Name:        d.Name,
		LogoURL:     toNullString(d.LogoURL),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBrand converts a model Brand to a domain Brand
func ToDomainBrand(m models.Brand) domain.Brand {
	return domain.Brand{
		BrandID:     m.BrandID,
		Name:        m.Name,
		LogoURL:     fromNullString(m.LogoURL),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		ParentID:    toNullString(d.ParentID),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		ParentID:    fromNullString(m.ParentID),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelStoreSettings converts domain StoreSettings to model StoreSettings
func ToModelStoreSettings(d domain.StoreSettings) models.StoreSettings {
	return models.StoreSettings{
		StoreName:        d.StoreName,
		SupportEmail:     d.SupportEmail,
		SupportPhone:     toNullString(d.SupportPhone),
		MaintenanceMode:  d.MaintenanceMode,
		B2BPricesVisible: d.B2BPricesVisible,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainStoreSettings converts model StoreSettings to domain StoreSettings
func ToDomainStoreSettings(m models.StoreSettings) domain.StoreSettings {
	return domain.StoreSettings{
		StoreName:        m.StoreName,
		SupportEmail:     m.SupportEmail,
		SupportPhone:     fromNullString(m.SupportPhone),
		MaintenanceMode:  m.MaintenanceMode,
		B2BPricesVisible: m.B2BPricesVisible,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
