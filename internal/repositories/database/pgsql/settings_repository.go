package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/mapping"
)

// The settings table holds a single row keyed by this fixed id.
const settingsRowID = "default"

// PgxSettingsRepository implements the ports.SettingsRepository interface using pgxpool.
type PgxSettingsRepository struct {
	BaseRepository
}

func newPgxSettingsRepository(db *pgxpool.Pool) *PgxSettingsRepository {
	return &PgxSettingsRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetSettings retrieves the store settings row.
func (r *PgxSettingsRepository) GetSettings(ctx context.Context) (*domain.StoreSettings, error) {
	var m models.StoreSettings
	err := r.Pool.QueryRow(ctx, `
		SELECT store_name, support_email, support_phone, maintenance_mode, b2b_prices_visible,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM store_settings WHERE settings_id = $1`, settingsRowID,
	).Scan(
		&m.StoreName, &m.SupportEmail, &m.SupportPhone, &m.MaintenanceMode, &m.B2BPricesVisible,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("store settings not configured")
		}
		return nil, apperrors.NewAppError(500, "failed to get store settings", err)
	}
	d := mapping.ToDomainStoreSettings(m)
	return &d, nil
}

// SaveSettings upserts the single store settings row.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.StoreSettings) error {
	m := mapping.ToModelStoreSettings(settings)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO store_settings (
			settings_id, store_name, support_email, support_phone, maintenance_mode, b2b_prices_visible,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (settings_id) DO UPDATE SET
			store_name = EXCLUDED.store_name,
			support_email = EXCLUDED.support_email,
			support_phone = EXCLUDED.support_phone,
			maintenance_mode = EXCLUDED.maintenance_mode,
			b2b_prices_visible = EXCLUDED.b2b_prices_visible,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by`,
		settingsRowID, m.StoreName, m.SupportEmail, m.SupportPhone, m.MaintenanceMode, m.B2BPricesVisible,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save store settings", err)
	}
	return nil
}
