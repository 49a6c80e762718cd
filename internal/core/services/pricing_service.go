package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	"github.com/vitrinsoft/vitrin_backend/internal/utils"
)

// PricingService keeps every product's derived base price consistent with the
// latest exchange rate for a currency. The currency-denominated price is
// authoritative; the base price is always recomputed from it, which makes a
// recalculation pass idempotent for a fixed (currency, rate) pair.
type PricingService struct {
	productRepo  portsrepo.ProductRepository
	currencyRepo portsrepo.CurrencyRateRepository
	baseCurrency string
}

// NewPricingService creates a new PricingService.
func NewPricingService(productRepo portsrepo.ProductRepository, currencyRepo portsrepo.CurrencyRateRepository, baseCurrency string) *PricingService {
	return &PricingService{
		productRepo:  productRepo,
		currencyRepo: currencyRepo,
		baseCurrency: strings.ToUpper(baseCurrency),
	}
}

// Recalculate upserts the rate for currencyCode and re-derives the base price
// of every product denominated in it. The rate row and all price updates are
// written through CurrencyRateRepository.ApplyRate in a single transaction, so
// a reader either sees the new rate with all derived prices or none of them.
func (s *PricingService) Recalculate(ctx context.Context, currencyCode string, rate decimal.Decimal, actorUserID string) (int, error) {
	code := strings.ToUpper(currencyCode)

	if rate.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("%w: rate must be a positive decimal", apperrors.ErrValidation)
	}
	if code == s.baseCurrency {
		return 0, fmt.Errorf("%w: base currency %s always has rate 1 and cannot be updated", apperrors.ErrValidation, s.baseCurrency)
	}
	if len(code) != 3 {
		return 0, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	products, err := s.productRepo.ListProductsByPriceCurrency(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("failed to load products priced in %s: %w", code, err)
	}

	updates := make([]domain.PriceUpdate, len(products))
	for i, p := range products {
		updates[i] = domain.PriceUpdate{
			ProductID:    p.ProductID,
			NewBasePrice: utils.DeriveBasePrice(p.PriceAmount, rate),
		}
	}

	now := time.Now()
	rateRecord := domain.CurrencyRate{
		CurrencyCode: code,
		Rate:         rate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorUserID,
		},
	}

	if err := s.currencyRepo.ApplyRate(ctx, rateRecord, updates); err != nil {
		return 0, fmt.Errorf("failed to apply rate for %s: %w", code, err)
	}

	return len(updates), nil
}
