package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency rate data.
type CurrencyReaderSvc interface {
	// ListRates retrieves all stored currency rates.
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// GetRate retrieves the stored rate for one currency code.
	GetRate(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// GetRateMap returns the public rate map keyed by currency code, always
	// including the base currency at rate 1. On store failure it degrades to
	// hardcoded defaults instead of failing the request.
	GetRateMap(ctx context.Context) map[string]decimal.Decimal
}

// CurrencySvcFacade combines all currency-rate service interfaces.
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
