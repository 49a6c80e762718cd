package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/utils"
)

// UserService implements account registration, authentication and the B2B
// approval workflow.
type UserService struct {
	userRepo portsrepo.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// RegisterUser creates a local account. The password is hashed before it ever
// reaches the repository. Duplicate emails surface as apperrors.ErrDuplicate.
func (s *UserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	b2bStatus := domain.B2BNone
	if req.IsB2B {
		b2bStatus = domain.B2BPending
	}

	now := time.Now()
	newUserID := uuid.NewString()

	user := domain.User{
		UserID:       newUserID,
		Email:        email,
		Name:         req.Name,
		PasswordHash: hash,
		Role:         domain.RoleCustomer,
		B2BStatus:    b2bStatus,
		CompanyName:  req.CompanyName,
		AuthProvider: domain.ProviderLocal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID, // self-registration
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: email '%s' is already registered", apperrors.ErrDuplicate, email)
		}
		return nil, fmt.Errorf("failed to create user in service: %w", err)
	}

	return &user, nil
}

// AuthenticateUser verifies email/password credentials. It deliberately
// returns the same error for unknown email and wrong password.
func (s *UserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	if user.AuthProvider != domain.ProviderLocal || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.NewUnauthorizedError("invalid email or password")
	}
	return user, nil
}

// CreateOAuthUser finds or creates an account for a validated OAuth identity.
func (s *UserService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByProviderID(ctx, provider, providerUserID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up OAuth user: %w", err)
	}

	now := time.Now()
	newUserID := uuid.NewString()
	user := domain.User{
		UserID:         newUserID,
		Email:          strings.ToLower(email),
		Name:           name,
		Role:           domain.RoleCustomer,
		B2BStatus:      domain.B2BNone,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		EmailVerified:  emailVerified,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     newUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: newUserID,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create OAuth user in service: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves an account by its ID.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID in service: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves an account by email.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email in service: %w", err)
	}
	return user, nil
}

// ListB2BUsers retrieves business accounts, optionally filtered by status.
func (s *UserService) ListB2BUsers(ctx context.Context, status *domain.B2BStatus) ([]domain.User, error) {
	users, err := s.userRepo.ListB2BUsers(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list B2B users in service: %w", err)
	}
	if users == nil {
		return []domain.User{}, nil
	}
	return users, nil
}

// UpdateB2BStatus moves a business account through the approval workflow and
// returns the updated account.
func (s *UserService) UpdateB2BStatus(ctx context.Context, userID string, status domain.B2BStatus, updaterUserID string) (*domain.User, error) {
	target, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for B2B status update: %w", err)
	}
	if target.B2BStatus == domain.B2BNone {
		return nil, fmt.Errorf("%w: user %s is not a business account", apperrors.ErrValidation, userID)
	}

	if err := s.userRepo.UpdateB2BStatus(ctx, userID, status, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to update B2B status in service: %w", err)
	}

	target.B2BStatus = status
	target.LastUpdatedAt = time.Now()
	target.LastUpdatedBy = updaterUserID
	return target, nil
}
