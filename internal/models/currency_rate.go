package models

import "github.com/shopspring/decimal"

// CurrencyRate stores the conversion rate from a non-base currency into the
// base currency. One row per supported non-base currency.
// Note: Rate uses github.com/shopspring/decimal for exactness.
type CurrencyRate struct {
	CurrencyCode string          `db:"currency_code"` // Primary key (e.g., "USD")
	Rate         decimal.Decimal `db:"rate"`
	AuditFields
}
