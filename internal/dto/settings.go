package dto

import (
	"time"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// UpdateSettingsRequest defines the payload for rewriting store settings.
type UpdateSettingsRequest struct {
	StoreName        string `json:"storeName" binding:"required"`
	SupportEmail     string `json:"supportEmail" binding:"required,email"`
	SupportPhone     string `json:"supportPhone"`
	MaintenanceMode  bool   `json:"maintenanceMode"`
	B2BPricesVisible bool   `json:"b2bPricesVisible"`
}

// SettingsResponse defines the data returned for store settings.
type SettingsResponse struct {
	StoreName        string    `json:"storeName"`
	SupportEmail     string    `json:"supportEmail"`
	SupportPhone     string    `json:"supportPhone,omitempty"`
	MaintenanceMode  bool      `json:"maintenanceMode"`
	B2BPricesVisible bool      `json:"b2bPricesVisible"`
	LastUpdatedAt    time.Time `json:"lastUpdatedAt"`
}

// ToSettingsResponse converts domain.StoreSettings to SettingsResponse DTO
func ToSettingsResponse(s *domain.StoreSettings) SettingsResponse {
	return SettingsResponse{
		StoreName:        s.StoreName,
		SupportEmail:     s.SupportEmail,
		SupportPhone:     s.SupportPhone,
		MaintenanceMode:  s.MaintenanceMode,
		B2BPricesVisible: s.B2BPricesVisible,
		LastUpdatedAt:    s.LastUpdatedAt,
	}
}
