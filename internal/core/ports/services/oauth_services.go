package services

import (
	"context"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// GoogleOAuthSvcFacade exchanges and validates Google authorization codes.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken trades an authorization code for Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the ID token signature and audience.
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
