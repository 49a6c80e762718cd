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

// categoryHandler handles HTTP requests related to categories.
type categoryHandler struct {
	categoryService portssvc.CategorySvcFacade
}

func newCategoryHandler(cs portssvc.CategorySvcFacade) *categoryHandler {
	return &categoryHandler{categoryService: cs}
}

// registerAdminCategoryRoutes registers the admin category routes.
func registerAdminCategoryRoutes(rg *gin.RouterGroup, categoryService portssvc.CategorySvcFacade) {
	h := newCategoryHandler(categoryService)

	categories := rg.Group("/categories")
	{
		categories.GET("", h.listCategories)
		categories.POST("", h.createCategory)
		categories.GET("/:categoryID", h.getCategory)
		categories.PUT("/:categoryID", h.updateCategory)
		categories.DELETE("/:categoryID", h.deleteCategory)
	}
}

// listCategories godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Success 200 {array} dto.CategoryResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/categories [get]
func (h *categoryHandler) listCategories(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	categories, err := h.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list categories", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list categories"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCategoryResponse(categories))
}

// getCategory godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce json
// @Param categoryID path string true "Category ID"
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/categories/{categoryID} [get]
func (h *categoryHandler) getCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	category, err := h.categoryService.GetCategoryByID(c.Request.Context(), categoryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
			return
		}
		logger.Error("Failed to get category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve category"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// createCategory godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param category body dto.CreateCategoryRequest true "Category details"
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/categories [post]
func (h *categoryHandler) createCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create category"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToCategoryResponse(category))
}

// updateCategory godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param categoryID path string true "Category ID"
// @Param category body dto.UpdateCategoryRequest true "Category details"
// @Success 200 {object} dto.CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/categories/{categoryID} [put]
func (h *categoryHandler) updateCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), categoryID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update category"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCategoryResponse(category))
}

// deleteCategory godoc
// @Summary Delete a category
// @Tags categories
// @Param categoryID path string true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/categories/{categoryID} [delete]
func (h *categoryHandler) deleteCategory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	categoryID := c.Param("categoryID")

	if err := h.categoryService.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Category not found"})
			return
		}
		logger.Error("Failed to delete category", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete category"})
		return
	}

	c.Status(http.StatusNoContent)
}
