package services

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/vitrinsoft/vitrin_backend/internal/platform/config"
)

// GoogleOAuthService exchanges authorization codes with Google and validates
// the resulting ID tokens.
type GoogleOAuthService struct {
	oauthConfig *oauth2.Config
}

// NewGoogleOAuthService creates a new GoogleOAuthService from config.
func NewGoogleOAuthService(cfg *config.Config) *GoogleOAuthService {
	return &GoogleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// ExchangeCodeForToken trades the authorization code the frontend obtained
// for Google tokens.
func (s *GoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	return token, nil
}

// ValidateGoogleIDToken verifies the ID token signature and that it was
// issued for this application's client ID.
func (s *GoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, idToken, s.oauthConfig.ClientID)
	if err != nil {
		return nil, fmt.Errorf("failed to validate Google ID token: %w", err)
	}
	return payload, nil
}
