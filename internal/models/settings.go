package models

import "database/sql"

// StoreSettings is the single-row settings table.
type StoreSettings struct {
	StoreName        string         `db:"store_name"`
	SupportEmail     string         `db:"support_email"`
	SupportPhone     sql.NullString `db:"support_phone"`
	MaintenanceMode  bool           `db:"maintenance_mode"`
	B2BPricesVisible bool           `db:"b2b_prices_visible"`
	AuditFields
}
