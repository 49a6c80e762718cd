package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/handlers"
	"github.com/vitrinsoft/vitrin_backend/internal/platform/config"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListB2BUsers(ctx context.Context, status *domain.B2BStatus) ([]domain.User, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	args := m.Called(ctx, name, email, provider, providerUserID, emailVerified)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateB2BStatus(ctx context.Context, userID string, status domain.B2BStatus, updaterUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, status, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Test Suite ---
type AuthHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockUserService  *MockUserService
	mockTokenService *MockTokenService
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockUserService = new(MockUserService)
	suite.mockTokenService = new(MockTokenService)

	services := &portssvc.ServiceContainer{
		User:  suite.mockUserService,
		Token: suite.mockTokenService,
	}
	handlers.RegisterAuthRoutes(suite.router, &config.Config{}, services)
}

func (suite *AuthHandlerTestSuite) postJSON(path string, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AuthHandlerTestSuite) TestRegister_Success() {
	req := dto.RegisterRequest{
		Email:    "new.user@example.com",
		Name:     "New User",
		Password: "correct-horse",
	}
	created := &domain.User{
		UserID:    uuid.NewString(),
		Email:     req.Email,
		Name:      req.Name,
		Role:      domain.RoleCustomer,
		B2BStatus: domain.B2BNone,
		AuditFields: domain.AuditFields{
			CreatedAt: time.Now(),
		},
	}
	suite.mockUserService.On("RegisterUser", mock.Anything, req).Return(created, nil).Once()

	w := suite.postJSON("/api/auth/register", `{"email":"new.user@example.com","name":"New User","password":"correct-horse"}`)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.UserResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.UserID, resp.UserID)
	suite.Equal("CUSTOMER", resp.Role)

	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateEmailReturns400() {
	suite.mockUserService.
		On("RegisterUser", mock.Anything, mock.AnythingOfType("dto.RegisterRequest")).
		Return(nil, fmt.Errorf("%w: user with email taken@example.com already exists", apperrors.ErrDuplicate)).
		Once()

	w := suite.postJSON("/api/auth/register", `{"email":"taken@example.com","name":"Second Try","password":"correct-horse"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Email is already registered")
	suite.mockUserService.AssertNumberOfCalls(suite.T(), "RegisterUser", 1)
}

func (suite *AuthHandlerTestSuite) TestRegister_ShortPasswordRejectedByBinding() {
	w := suite.postJSON("/api/auth/register", `{"email":"new@example.com","name":"New","password":"short"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "RegisterUser", mock.Anything, mock.Anything)
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{
		UserID: uuid.NewString(),
		Email:  "shopper@example.com",
		Role:   domain.RoleCustomer,
	}
	suite.mockUserService.
		On("AuthenticateUser", mock.Anything, "shopper@example.com", "correct-horse").
		Return(user, nil).Once()
	suite.mockTokenService.
		On("GenerateAccessToken", mock.Anything, user).
		Return("signed.jwt.token", nil).Once()

	w := suite.postJSON("/api/auth/login", `{"email":"shopper@example.com","password":"correct-horse"}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("signed.jwt.token", resp.Token)

	suite.mockUserService.AssertExpectations(suite.T())
	suite.mockTokenService.AssertExpectations(suite.T())
}

func (suite *AuthHandlerTestSuite) TestLogin_InvalidCredentialsReturns401() {
	suite.mockUserService.
		On("AuthenticateUser", mock.Anything, "shopper@example.com", "wrong").
		Return(nil, fmt.Errorf("invalid email or password")).Once()

	w := suite.postJSON("/api/auth/login", `{"email":"shopper@example.com","password":"wrong"}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid email or password")
	suite.mockTokenService.AssertNotCalled(suite.T(), "GenerateAccessToken", mock.Anything, mock.Anything)
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
