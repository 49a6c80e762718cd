package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// SettingsService manages the single store settings record.
type SettingsService struct {
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings retrieves the settings record.
func (s *SettingsService) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings in service: %w", err)
	}
	return settings, nil
}

// UpdateSettings rewrites the settings record.
func (s *SettingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterUserID string) (*domain.StoreSettings, error) {
	now := time.Now()
	settings := domain.StoreSettings{
		StoreName:        req.StoreName,
		SupportEmail:     req.SupportEmail,
		SupportPhone:     req.SupportPhone,
		MaintenanceMode:  req.MaintenanceMode,
		B2BPricesVisible: req.B2BPricesVisible,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     updaterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: updaterUserID,
		},
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings in service: %w", err)
	}
	return &settings, nil
}
