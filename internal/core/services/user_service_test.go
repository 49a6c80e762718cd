package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/core/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListB2BUsers(ctx context.Context, status *domain.B2BStatus) ([]domain.User, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateB2BStatus(ctx context.Context, userID string, status domain.B2BStatus, updaterUserID string) error {
	args := m.Called(ctx, userID, status, updaterUserID)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deleterUserID string) error {
	args := m.Called(ctx, userID, deleterUserID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegisterUser_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "Shopper@Example.COM",
		Name:     "Shopper",
		Password: "correct-horse",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "shopper@example.com" &&
			u.Role == domain.RoleCustomer &&
			u.B2BStatus == domain.B2BNone &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("shopper@example.com", user.Email)
	suite.Equal(user.UserID, user.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegisterUser_B2BStartsPending() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:       "buyer@acme.com",
		Name:        "Acme Buyer",
		Password:    "wholesale123",
		IsB2B:       true,
		CompanyName: "Acme Ltd",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.B2BStatus == domain.B2BPending && u.CompanyName == "Acme Ltd"
	})).Return(nil).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.B2BPending, user.B2BStatus)
}

func (suite *UserServiceTestSuite) TestRegisterUser_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Email:    "taken@example.com",
		Name:     "Second",
		Password: "password123",
	}

	suite.mockRepo.On("SaveUser", ctx, mock.Anything).
		Return(fmt.Errorf("%w: user with email taken@example.com already exists", apperrors.ErrDuplicate)).Once()

	user, err := suite.service.RegisterUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_SameErrorForUnknownAndWrongPassword() {
	ctx := context.Background()

	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	known := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "known@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}

	suite.mockRepo.On("FindUserByEmail", ctx, "unknown@example.com").
		Return(nil, apperrors.NewNotFoundError("not found")).Once()
	suite.mockRepo.On("FindUserByEmail", ctx, "known@example.com").
		Return(known, nil).Once()

	_, errUnknown := suite.service.AuthenticateUser(ctx, "unknown@example.com", "whatever")
	_, errWrongPass := suite.service.AuthenticateUser(ctx, "known@example.com", "wrong-password")

	suite.Require().Error(errUnknown)
	suite.Require().Error(errWrongPass)
	suite.Equal(errUnknown.Error(), errWrongPass.Error())
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()

	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	known := &domain.User{
		UserID:       uuid.NewString(),
		Email:        "known@example.com",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockRepo.On("FindUserByEmail", ctx, "known@example.com").Return(known, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "Known@Example.com", "right-password")

	suite.Require().NoError(err)
	suite.Equal(known.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestUpdateB2BStatus_RejectsNonBusinessAccount() {
	ctx := context.Background()
	target := &domain.User{
		UserID:    uuid.NewString(),
		B2BStatus: domain.B2BNone,
	}

	suite.mockRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()

	user, err := suite.service.UpdateB2BStatus(ctx, target.UserID, domain.B2BApproved, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateB2BStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestUpdateB2BStatus_ApprovesPendingAccount() {
	ctx := context.Background()
	updaterID := uuid.NewString()
	target := &domain.User{
		UserID:    uuid.NewString(),
		B2BStatus: domain.B2BPending,
	}

	suite.mockRepo.On("FindUserByID", ctx, target.UserID).Return(target, nil).Once()
	suite.mockRepo.On("UpdateB2BStatus", ctx, target.UserID, domain.B2BApproved, updaterID).Return(nil).Once()

	user, err := suite.service.UpdateB2BStatus(ctx, target.UserID, domain.B2BApproved, updaterID)

	suite.Require().NoError(err)
	suite.Equal(domain.B2BApproved, user.B2BStatus)
	suite.Equal(updaterID, user.LastUpdatedBy)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
