package domain

import "github.com/shopspring/decimal"

// CurrencyRate is the multiplicative factor converting one unit of a non-base
// currency into base-currency value. The base currency itself is never stored;
// its rate is 1 by definition.
type CurrencyRate struct {
	CurrencyCode string          `json:"currencyCode"` // Primary key (e.g., "USD")
	Rate         decimal.Decimal `json:"rate"`
	AuditFields
}

// PriceUpdate is a single product price rewrite produced by a recalculation
// pass: the product's new base-currency price derived from its stored
// currency-denominated price and the latest rate.
type PriceUpdate struct {
	ProductID    string
	NewBasePrice decimal.Decimal
}
