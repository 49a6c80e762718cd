package models

import (
	"database/sql"
	"time"
)

// User represents an account row. PasswordHash is empty for OAuth-only accounts.
type User struct {
	UserID         string         `db:"user_id"`
	Email          string         `db:"email"`
	Name           string         `db:"name"`
	PasswordHash   sql.NullString `db:"password_hash"`
	Role           string         `db:"role"`
	B2BStatus      string         `db:"b2b_status"`
	CompanyName    sql.NullString `db:"company_name"`
	AuthProvider   string         `db:"auth_provider"`
	ProviderUserID sql.NullString `db:"provider_user_id"`
	EmailVerified  bool           `db:"email_verified"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
