package domain

import "github.com/shopspring/decimal"

// Product represents a catalog item. The authoritative price is the
// currency-denominated one (PriceAmount in PriceCurrency); BasePrice is purely
// derived from it and the latest stored rate, never the reverse.
type Product struct {
	ProductID     string          `json:"productID"`
	SKU           string          `json:"sku"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	BrandID       string          `json:"brandID,omitempty"`
	CategoryID    string          `json:"categoryID,omitempty"`
	PriceCurrency string          `json:"priceCurrency"` // currency the price is denominated in
	PriceAmount   decimal.Decimal `json:"priceAmount"`
	BasePrice     decimal.Decimal `json:"basePrice"` // derived, in the base currency
	IsActive      bool            `json:"isActive"`
	AuditFields
}
