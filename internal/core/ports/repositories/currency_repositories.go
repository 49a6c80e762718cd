package repositories

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// CurrencyRateRepository persists currency rates and applies recalculated prices.
type CurrencyRateRepository interface {
	// ListRates retrieves all stored currency rates.
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// FindRateByCode retrieves the rate for a single currency code.
	// Returns apperrors.ErrNotFound when no rate is stored for the code.
	FindRateByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// ApplyRate upserts the rate row and writes every product price update in
	// a single transaction. Either the new rate and all derived prices become
	// visible together, or none of them do.
	ApplyRate(ctx context.Context, rate domain.CurrencyRate, updates []domain.PriceUpdate) error
}
