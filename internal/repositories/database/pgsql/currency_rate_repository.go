package pgsql

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/mapping"
)

// PgxCurrencyRateRepository implements the ports.CurrencyRateRepository
// interface using pgxpool.
type PgxCurrencyRateRepository struct {
	BaseRepository
}

func newPgxCurrencyRateRepository(db *pgxpool.Pool) *PgxCurrencyRateRepository {
	return &PgxCurrencyRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// ListRates retrieves all stored currency rates.
func (r *PgxCurrencyRateRepository) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	query := `
		SELECT currency_code, rate, created_at, created_by, last_updated_at, last_updated_by
		FROM currency_rates
		ORDER BY currency_code;
	`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list currency rates", err)
	}
	defer rows.Close()

	var modelRates []models.CurrencyRate
	for rows.Next() {
		var m models.CurrencyRate
		if err := rows.Scan(
			&m.CurrencyCode, &m.Rate,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan currency rate", err)
		}
		modelRates = append(modelRates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating currency rates", err)
	}

	return mapping.ToDomainCurrencyRateSlice(modelRates), nil
}

// FindRateByCode retrieves the rate for a single currency code.
func (r *PgxCurrencyRateRepository) FindRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	query := `
		SELECT currency_code, rate, created_at, created_by, last_updated_at, last_updated_by
		FROM currency_rates
		WHERE currency_code = $1;
	`

	var m models.CurrencyRate
	err := r.Pool.QueryRow(ctx, query, strings.ToUpper(currencyCode)).Scan(
		&m.CurrencyCode, &m.Rate,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no rate stored for currency " + strings.ToUpper(currencyCode))
		}
		return nil, apperrors.NewAppError(500, "failed to find currency rate", err)
	}

	domainRate := mapping.ToDomainCurrencyRate(m)
	return &domainRate, nil
}

// ApplyRate upserts the rate row and writes every product price update in a
// single transaction. A reader either sees the new rate together with all
// derived prices, or neither; partial application is impossible.
func (r *PgxCurrencyRateRepository) ApplyRate(ctx context.Context, rate domain.CurrencyRate, updates []domain.PriceUpdate) error {
	modelRate := mapping.ToModelCurrencyRate(rate)
	modelRate.CurrencyCode = strings.ToUpper(modelRate.CurrencyCode)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO currency_rates (currency_code, rate, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (currency_code) DO UPDATE
		SET rate = EXCLUDED.rate,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by`,
		modelRate.CurrencyCode, modelRate.Rate,
		modelRate.CreatedAt, modelRate.CreatedBy, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy,
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to upsert currency rate", err)
	}

	if len(updates) > 0 {
		batch := &pgx.Batch{}
		for _, u := range updates {
			batch.Queue(`
				UPDATE products
				SET base_price = $1, last_updated_at = $2, last_updated_by = $3
				WHERE product_id = $4`,
				u.NewBasePrice, modelRate.LastUpdatedAt, modelRate.LastUpdatedBy, u.ProductID,
			)
		}
		br := tx.SendBatch(ctx, batch)
		for range updates {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				_ = r.Rollback(ctx, tx)
				return apperrors.NewAppError(500, "failed to apply recalculated price", err)
			}
		}
		if err := br.Close(); err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to close price update batch", err)
		}
	}

	return r.Commit(ctx, tx)
}
