package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
	"github.com/vitrinsoft/vitrin_backend/internal/platform/config"
)

// googleOAuthHandler handles Google OAuth related requests.
type googleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
}

func newGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
) *googleOAuthHandler {
	return &googleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
	}
}

// registerGoogleOAuthRoutes registers the Google OAuth routes.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, _ *config.Config, services *portssvc.ServiceContainer) {
	h := newGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)
	googleRoutes := rg.Group("/google")
	{
		googleRoutes.POST("/exchange-code", h.exchangeCodeGoogle)
	}
}

// exchangeCodeRequest defines the expected JSON body for the /google/exchange-code endpoint.
type exchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// exchangeCodeResponse defines the successful response for the /google/exchange-code endpoint.
type exchangeCodeResponse struct {
	Token string `json:"token"`
}

// exchangeCodeGoogle handles the POST request from the frontend containing the
// authorization code from Google. It exchanges the code for Google tokens,
// validates the ID token, creates or retrieves the user, and returns an
// application JWT.
// @Summary Exchange authorization code for access token
// @Description Exchange a Google authorization code for an application access token
// @Tags oauth
// @Accept  json
// @Produce  json
// @Param   code body exchangeCodeRequest true "Authorization code"
// @Success 200 {object} exchangeCodeResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 500 {object} ErrorResponse "Failed to exchange authorization code"
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req exchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for exchange code request", slog.String("error", err.Error()))
		appErr := apperrors.NewBadRequestError("Invalid request payload: " + err.Error())
		c.JSON(appErr.Code, appErr)
		return
	}

	oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
	if err != nil {
		logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
		appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
		if strings.Contains(strings.ToLower(err.Error()), "invalid_grant") || strings.Contains(strings.ToLower(err.Error()), "bad request") {
			appErr = apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
		}
		c.JSON(appErr.Code, appErr)
		return
	}

	idTokenString, ok := oauth2Token.Extra("id_token").(string)
	if !ok || idTokenString == "" {
		logger.Error("ID token not found in Google's token response")
		appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google.")
		c.JSON(appErr.Code, appErr)
		return
	}

	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Error("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token: " + err.Error())
		c.JSON(appErr.Code, appErr)
		return
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	providerUserID := payload.Subject

	if email == "" || providerUserID == "" {
		logger.Error("Essential claims (email or sub) missing from Google ID token payload")
		appErr := apperrors.NewInternalServerError("Essential user information missing from Google token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	finalUser, err := h.userService.CreateOAuthUser(ctx, name, email, domain.ProviderGoogle, providerUserID, emailVerified)
	if err != nil {
		logger.Error("Failed to create or get OAuth user from service", slog.String("error", err.Error()))
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.Code, appErr)
		} else {
			defaultErr := apperrors.NewInternalServerError("Failed to process user authentication.")
			c.JSON(defaultErr.Code, defaultErr)
		}
		return
	}

	accessToken, err := h.tokenService.GenerateAccessToken(ctx, finalUser)
	if err != nil {
		logger.Error("Failed to generate application access token", slog.String("error", err.Error()), slog.String("user_id", finalUser.UserID))
		appErr := apperrors.NewInternalServerError("Failed to generate access token.")
		c.JSON(appErr.Code, appErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": exchangeCodeResponse{
			Token: accessToken,
		},
	})
}
