package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
)

// settingsHandler handles store settings administration.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{settingsService: ss}
}

// registerAdminSettingsRoutes registers the admin settings routes.
func registerAdminSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("", h.getSettings)
		settings.PUT("", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get store settings
// @Tags settings
// @Produce json
// @Success 200 {object} dto.SettingsResponse
// @Failure 404 {object} ErrorResponse "Store has never been configured"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/settings [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Store settings not configured"})
			return
		}
		logger.Error("Failed to get store settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve settings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update store settings
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body dto.UpdateSettingsRequest true "Settings"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/settings [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), req, updaterUserID)
	if err != nil {
		logger.Error("Failed to update store settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update settings"})
		return
	}

	logger.Info("Store settings updated")
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}
