package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
)

// defaultRates is the hardcoded fallback served on the public rate path when
// the store is empty or unreachable. Availability over correctness: the public
// storefront keeps rendering prices even when the rate store is down.
var defaultRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromFloat(44.0),
	"EUR": decimal.NewFromFloat(55.0),
}

// CurrencyService serves stored currency rates.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRateRepository
	baseCurrency string
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRateRepository, baseCurrency string) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo, baseCurrency: baseCurrency}
}

// ListRates retrieves all stored rates (admin listing).
func (s *CurrencyService) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.currencyRepo.ListRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency rates in service: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}

// GetRate retrieves the stored rate for one currency code.
func (s *CurrencyService) GetRate(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	rate, err := s.currencyRepo.FindRateByCode(ctx, strings.ToUpper(currencyCode))
	if err != nil {
		return nil, err
	}
	return rate, nil
}

// GetRateMap returns the public rate map. The base currency is always present
// at rate 1. Missing or unreadable rates degrade to the hardcoded defaults;
// this path never surfaces an error to the caller.
func (s *CurrencyService) GetRateMap(ctx context.Context) map[string]decimal.Decimal {
	result := map[string]decimal.Decimal{
		s.baseCurrency: decimal.NewFromInt(1),
	}
	for code, rate := range defaultRates {
		result[code] = rate
	}

	stored, err := s.currencyRepo.ListRates(ctx)
	if err != nil {
		return result
	}
	for _, r := range stored {
		result[r.CurrencyCode] = r.Rate
	}
	return result
}
