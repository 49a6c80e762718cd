package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitergin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
	"github.com/vitrinsoft/vitrin_backend/internal/platform/config"
)

// authHandler handles authentication related requests.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		userService:  us,
		tokenService: ts,
	}
}

// RegisterAuthRoutes sets up the routes for authentication.
func RegisterAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.User, services.Token)

	// 5 requests per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)
	limitMiddleware := limitergin.NewMiddleware(ipLimiter)

	auth := r.Group("/api/auth")
	{
		auth.POST("/login", limitMiddleware, h.login)
		auth.POST("/register", h.register)
	}

	registerGoogleOAuthRoutes(auth, cfg, services)
}

// login godoc
// @Summary User login
// @Description Authenticates a user and returns a JWT token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid email or password"})
		return
	}

	token, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// register godoc
// @Summary Register new user
// @Description Creates a new customer account. B2B registrations start pending approval.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Invalid input or email already registered"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to register duplicate email")
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Email is already registered"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error registering user", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to register user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register user"})
		return
	}

	logger.Info("User registered", slog.String("user_id", newUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}
