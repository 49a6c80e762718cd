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

// brandHandler handles HTTP requests related to brands.
type brandHandler struct {
	brandService portssvc.BrandSvcFacade
}

func newBrandHandler(bs portssvc.BrandSvcFacade) *brandHandler {
	return &brandHandler{brandService: bs}
}

// registerAdminBrandRoutes registers the admin brand routes.
func registerAdminBrandRoutes(rg *gin.RouterGroup, brandService portssvc.BrandSvcFacade) {
	h := newBrandHandler(brandService)

	brands := rg.Group("/brands")
	{
		brands.GET("", h.listBrands)
		brands.POST("", h.createBrand)
		brands.GET("/:brandID", h.getBrand)
		brands.PUT("/:brandID", h.updateBrand)
		brands.DELETE("/:brandID", h.deleteBrand)
	}
}

// listBrands godoc
// @Summary List brands
// @Tags brands
// @Produce json
// @Success 200 {array} dto.BrandResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/brands [get]
func (h *brandHandler) listBrands(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	brands, err := h.brandService.ListBrands(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list brands", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list brands"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBrandResponse(brands))
}

// getBrand godoc
// @Summary Get a brand by ID
// @Tags brands
// @Produce json
// @Param brandID path string true "Brand ID"
// @Success 200 {object} dto.BrandResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/brands/{brandID} [get]
func (h *brandHandler) getBrand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	brandID := c.Param("brandID")

	brand, err := h.brandService.GetBrandByID(c.Request.Context(), brandID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Brand not found"})
			return
		}
		logger.Error("Failed to get brand", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve brand"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// createBrand godoc
// @Summary Create a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param brand body dto.CreateBrandRequest true "Brand details"
// @Success 201 {object} dto.BrandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Brand name already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/brands [post]
func (h *brandHandler) createBrand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	brand, err := h.brandService.CreateBrand(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Brand name already exists"})
			return
		}
		logger.Error("Failed to create brand", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create brand"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBrandResponse(brand))
}

// updateBrand godoc
// @Summary Update a brand
// @Tags brands
// @Accept json
// @Produce json
// @Param brandID path string true "Brand ID"
// @Param brand body dto.UpdateBrandRequest true "Brand details"
// @Success 200 {object} dto.BrandResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/brands/{brandID} [put]
func (h *brandHandler) updateBrand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	brandID := c.Param("brandID")

	var req dto.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	brand, err := h.brandService.UpdateBrand(c.Request.Context(), brandID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Brand not found"})
			return
		}
		logger.Error("Failed to update brand", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update brand"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBrandResponse(brand))
}

// deleteBrand godoc
// @Summary Delete a brand
// @Tags brands
// @Param brandID path string true "Brand ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/brands/{brandID} [delete]
func (h *brandHandler) deleteBrand(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	brandID := c.Param("brandID")

	if err := h.brandService.DeleteBrand(c.Request.Context(), brandID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Brand not found"})
			return
		}
		logger.Error("Failed to delete brand", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete brand"})
		return
	}

	c.Status(http.StatusNoContent)
}
