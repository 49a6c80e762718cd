package domain

import "time"

// UserRole distinguishes storefront customers from administrators.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// B2BStatus is the approval state of a business customer. Regular customers
// stay at B2BNone; business registrations start at B2BPending and are moved by
// an admin review.
type B2BStatus string

const (
	B2BNone     B2BStatus = "NONE"
	B2BPending  B2BStatus = "PENDING"
	B2BApproved B2BStatus = "APPROVED"
	B2BRejected B2BStatus = "REJECTED"
)

// AuthProvider identifies how the account authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "LOCAL"
	ProviderGoogle AuthProvider = "GOOGLE"
)

// User represents a storefront account (customer or admin).
type User struct {
	UserID         string       `json:"userID"`
	Email          string       `json:"email"`
	Name           string       `json:"name"`
	PasswordHash   string       `json:"-"`
	Role           UserRole     `json:"role"`
	B2BStatus      B2BStatus    `json:"b2bStatus"`
	CompanyName    string       `json:"companyName,omitempty"`
	AuthProvider   AuthProvider `json:"-"`
	ProviderUserID string       `json:"-"`
	EmailVerified  bool         `json:"emailVerified"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// IsAdmin reports whether the user may perform administrative operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
