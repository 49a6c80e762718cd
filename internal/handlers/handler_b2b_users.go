package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
)

// b2bUserHandler handles business account administration.
type b2bUserHandler struct {
	userService portssvc.UserSvcFacade
}

func newB2BUserHandler(us portssvc.UserSvcFacade) *b2bUserHandler {
	return &b2bUserHandler{userService: us}
}

// registerAdminB2BUserRoutes registers the admin B2B account routes.
func registerAdminB2BUserRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newB2BUserHandler(userService)

	b2b := rg.Group("/b2b-users")
	{
		b2b.GET("", h.listB2BUsers)
		b2b.PUT("/:userID/status", h.updateB2BStatus)
	}
}

// listB2BUsers godoc
// @Summary List business accounts
// @Description Retrieves B2B accounts, optionally filtered by approval status.
// @Tags b2b
// @Produce json
// @Param status query string false "Filter by status (PENDING, APPROVED, REJECTED)"
// @Success 200 {array} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/b2b-users [get]
func (h *b2bUserHandler) listB2BUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status *domain.B2BStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.B2BStatus(raw)
		switch s {
		case domain.B2BPending, domain.B2BApproved, domain.B2BRejected:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid status filter"})
			return
		}
	}

	users, err := h.userService.ListB2BUsers(c.Request.Context(), status)
	if err != nil {
		logger.Error("Failed to list B2B users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list B2B users"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListUserResponse(users))
}

// updateB2BStatus godoc
// @Summary Approve or reject a business account
// @Tags b2b
// @Accept json
// @Produce json
// @Param userID path string true "User ID"
// @Param status body dto.UpdateB2BStatusRequest true "Approval decision"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse "Account is not a business account"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/b2b-users/{userID}/status [put]
func (h *b2bUserHandler) updateB2BStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("userID")

	var req dto.UpdateB2BStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	user, err := h.userService.UpdateB2BStatus(c.Request.Context(), userID, domain.B2BStatus(req.Status), updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update B2B status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update B2B status"})
		return
	}

	logger.Info("B2B status updated", slog.String("target_user_id", userID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
