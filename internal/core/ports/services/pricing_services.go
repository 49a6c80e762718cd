package services

import (
	"context"

	"github.com/shopspring/decimal"
)

// PricingSvcFacade keeps every product's derived base price consistent with
// the latest known exchange rate for one currency.
type PricingSvcFacade interface {
	// Recalculate upserts the rate for currencyCode and re-derives the base
	// price of every product denominated in it, as one logical operation.
	// Returns the number of products updated.
	//
	// Fails with apperrors.ErrValidation when the rate is not positive or the
	// currency is the base currency; in that case no prices change.
	Recalculate(ctx context.Context, currencyCode string, rate decimal.Decimal, actorUserID string) (int, error)
}
