package services

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// TokenSvcFacade issues application access tokens.
type TokenSvcFacade interface {
	// GenerateAccessToken signs a JWT carrying the user's ID and role.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)
}
