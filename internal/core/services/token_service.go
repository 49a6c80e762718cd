package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/platform/config"
)

// AccessClaims are the JWT claims carried by every access token. Role travels
// in the token so the admin guard can short-circuit without a user lookup.
type AccessClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService signs HS256 access tokens.
type TokenService struct {
	secret   string
	issuer   string
	duration time.Duration
}

// NewTokenService creates a new TokenService from config.
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{
		secret:   cfg.JWTSecret,
		issuer:   cfg.JWTIssuer,
		duration: cfg.JWTExpiryDuration,
	}
}

// GenerateAccessToken signs a JWT carrying the user's ID and role.
func (s *TokenService) GenerateAccessToken(_ context.Context, user *domain.User) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   user.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}
