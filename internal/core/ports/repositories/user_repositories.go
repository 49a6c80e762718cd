package repositories

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// UserRepository persists storefront accounts.
type UserRepository interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate when the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a user by ID, excluding soft-deleted accounts.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, excluding soft-deleted accounts.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderID retrieves a user by OAuth provider identity.
	FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// ListB2BUsers retrieves business accounts, optionally filtered by status.
	ListB2BUsers(ctx context.Context, status *domain.B2BStatus) ([]domain.User, error)

	// UpdateB2BStatus moves a business account through the approval workflow.
	UpdateB2BStatus(ctx context.Context, userID string, status domain.B2BStatus, updaterUserID string) error

	// UpdateUser rewrites mutable profile fields.
	UpdateUser(ctx context.Context, user domain.User) error

	// MarkUserDeleted soft-deletes an account.
	MarkUserDeleted(ctx context.Context, userID string, deleterUserID string) error
}
