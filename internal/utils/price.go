package utils

import "github.com/shopspring/decimal"

// BaseCurrencyPrecision is the minor-unit precision of the base currency.
const BaseCurrencyPrecision = 2

// DeriveBasePrice computes a product's base-currency price from its
// currency-denominated price and a rate. Rounding is half-up to the base
// currency's minor unit so the result is deterministic regardless of how the
// inputs were produced. (decimal.Round rounds half away from zero, which is
// half-up for the non-negative amounts handled here.)
func DeriveBasePrice(priceInCurrency, rate decimal.Decimal) decimal.Decimal {
	return priceInCurrency.Mul(rate).Round(BaseCurrencyPrecision)
}

// FormatWithPrecision formats an amount with the given precision.
// Example: amount 12.3456 with precision 2 returns "12.35".
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
