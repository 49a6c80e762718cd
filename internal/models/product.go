package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Product is the catalog row. BrandID and CategoryID are nullable FKs.
type Product struct {
	ProductID     string          `db:"product_id"`
	SKU           string          `db:"sku"`
	Name          string          `db:"name"`
	Description   string          `db:"description"`
	BrandID       sql.NullString  `db:"brand_id"`
	CategoryID    sql.NullString  `db:"category_id"`
	PriceCurrency string          `db:"price_currency"`
	PriceAmount   decimal.Decimal `db:"price_amount"`
	BasePrice     decimal.Decimal `db:"base_price"`
	IsActive      bool            `db:"is_active"`
	AuditFields
}
