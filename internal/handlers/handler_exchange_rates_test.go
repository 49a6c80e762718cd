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
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/handlers"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
)

// --- Mock CurrencyService ---
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyService) GetRate(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockCurrencyService) GetRateMap(ctx context.Context) map[string]decimal.Decimal {
	args := m.Called(ctx)
	return args.Get(0).(map[string]decimal.Decimal)
}

// Ensure mock implements the interface
var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

// --- Mock PricingService ---
type MockPricingService struct {
	mock.Mock
}

func (m *MockPricingService) Recalculate(ctx context.Context, currencyCode string, rate decimal.Decimal, actorUserID string) (int, error) {
	args := m.Called(ctx, currencyCode, rate, actorUserID)
	return args.Int(0), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PricingSvcFacade = (*MockPricingService)(nil)

// --- Test Suite ---
type AdminCurrencyHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockCurrencyService *MockCurrencyService
	mockPricingService  *MockPricingService
	jwtSecret           string
}

// generateTestToken creates a signed JWT carrying the given role, matching
// the claims the token service writes.
func (suite *AdminCurrencyHandlerTestSuite) generateTestToken(userID string, role domain.UserRole) string {
	claims := struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "vitrin-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AdminCurrencyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockCurrencyService = new(MockCurrencyService)
	suite.mockPricingService = new(MockPricingService)

	// Use the actual auth middleware chain the admin group runs in production
	admin := suite.router.Group("/api/admin", middleware.AuthMiddleware(suite.jwtSecret), middleware.RequireAdmin())
	handlers.RegisterAdminCurrencyRoutes(admin, suite.mockCurrencyService, suite.mockPricingService)
}

func (suite *AdminCurrencyHandlerTestSuite) postRate(token string, body string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodPost, "/api/admin/currency", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *AdminCurrencyHandlerTestSuite) TestUpsertRate_Success() {
	adminID := uuid.NewString()
	newRate := decimal.RequireFromString("45.5")
	now := time.Now()

	suite.mockPricingService.
		On("Recalculate", mock.Anything, "USD", mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(newRate)
		}), adminID).
		Return(3, nil).Once()
	suite.mockCurrencyService.
		On("GetRate", mock.Anything, "USD").
		Return(&domain.CurrencyRate{
			CurrencyCode: "USD",
			Rate:         newRate,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     adminID,
				LastUpdatedAt: now,
				LastUpdatedBy: adminID,
			},
		}, nil).Once()

	w := suite.postRate(suite.generateTestToken(adminID, domain.RoleAdmin), `{"currency":"USD","rate":45.5}`)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.UpsertRateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp.UpdatedProducts)
	suite.Equal("USD", resp.Rate.CurrencyCode)
	suite.True(resp.Rate.Rate.Equal(newRate))
	suite.Contains(resp.Message, "3 products repriced")

	suite.mockPricingService.AssertExpectations(suite.T())
	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func (suite *AdminCurrencyHandlerTestSuite) TestUpsertRate_CustomerIsForbidden() {
	customerID := uuid.NewString()

	w := suite.postRate(suite.generateTestToken(customerID, domain.RoleCustomer), `{"currency":"USD","rate":45.5}`)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(w.Body.String(), "Admin access required")
	// The rejection must happen before any pricing work runs
	suite.mockPricingService.AssertNotCalled(suite.T(), "Recalculate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything)
}

func (suite *AdminCurrencyHandlerTestSuite) TestUpsertRate_MissingTokenIsUnauthorized() {
	w := suite.postRate("", `{"currency":"USD","rate":45.5}`)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPricingService.AssertNotCalled(suite.T(), "Recalculate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdminCurrencyHandlerTestSuite) TestUpsertRate_ValidationErrorReturns400() {
	adminID := uuid.NewString()

	suite.mockPricingService.
		On("Recalculate", mock.Anything, "USD", mock.Anything, adminID).
		Return(0, fmt.Errorf("%w: rate must be positive", apperrors.ErrValidation)).Once()

	w := suite.postRate(suite.generateTestToken(adminID, domain.RoleAdmin), `{"currency":"USD","rate":-1}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "rate must be positive")
	suite.mockCurrencyService.AssertNotCalled(suite.T(), "GetRate", mock.Anything, mock.Anything)
}

func (suite *AdminCurrencyHandlerTestSuite) TestUpsertRate_MalformedBodyReturns400() {
	adminID := uuid.NewString()

	w := suite.postRate(suite.generateTestToken(adminID, domain.RoleAdmin), `{"currency":"usd"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPricingService.AssertNotCalled(suite.T(), "Recalculate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AdminCurrencyHandlerTestSuite) TestListRates_Success() {
	adminID := uuid.NewString()
	rates := []domain.CurrencyRate{
		{CurrencyCode: "USD", Rate: decimal.RequireFromString("44")},
		{CurrencyCode: "EUR", Rate: decimal.RequireFromString("55")},
	}
	suite.mockCurrencyService.On("ListRates", mock.Anything).Return(rates, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/admin/currency", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(adminID, domain.RoleAdmin))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var resp []dto.RateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp, 2)
	suite.Equal("USD", resp[0].CurrencyCode)

	suite.mockCurrencyService.AssertExpectations(suite.T())
}

func TestAdminCurrencyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AdminCurrencyHandlerTestSuite))
}
