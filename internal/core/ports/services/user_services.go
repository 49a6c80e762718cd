package services

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// UserReaderSvc defines read operations for accounts.
type UserReaderSvc interface {
	// GetUserByID retrieves an account by its ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByEmail retrieves an account by email.
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// ListB2BUsers retrieves business accounts, optionally filtered by status.
	ListB2BUsers(ctx context.Context, status *domain.B2BStatus) ([]domain.User, error)
}

// UserWriterSvc defines write operations for accounts.
type UserWriterSvc interface {
	// RegisterUser creates a local account with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// AuthenticateUser verifies email/password credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)

	// CreateOAuthUser finds or creates an account from a validated OAuth identity.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.User, error)

	// UpdateB2BStatus moves a business account through the approval workflow.
	UpdateB2BStatus(ctx context.Context, userID string, status domain.B2BStatus, updaterUserID string) (*domain.User, error)
}

// UserSvcFacade combines all account service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
}
