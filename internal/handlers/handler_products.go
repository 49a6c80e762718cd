package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
)

const defaultListLimit = 20

// productHandler handles HTTP requests related to the catalog.
type productHandler struct {
	productService portssvc.ProductSvcFacade
}

func newProductHandler(ps portssvc.ProductSvcFacade) *productHandler {
	return &productHandler{productService: ps}
}

// registerPublicSearchRoutes registers the unauthenticated storefront search.
func registerPublicSearchRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	public := rg.Group("/public")
	{
		public.GET("/search", h.publicSearch)
	}
}

// registerAdminProductRoutes registers the admin catalog routes.
func registerAdminProductRoutes(rg *gin.RouterGroup, productService portssvc.ProductSvcFacade) {
	h := newProductHandler(productService)

	products := rg.Group("/products")
	{
		products.GET("", h.listProducts)
		products.POST("", h.createProduct)
		products.GET("/search", h.adminSearch)
		products.GET("/:productID", h.getProduct)
		products.PUT("/:productID", h.updateProduct)
		products.DELETE("/:productID", h.deleteProduct)
	}
}

// publicSearch godoc
// @Summary Search the storefront catalog
// @Description Case-insensitive substring search over product name and SKU. Only active products are returned.
// @Tags products
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} ErrorResponse
// @Router /public/search [get]
func (h *productHandler) publicSearch(c *gin.Context) {
	h.search(c, true)
}

// adminSearch godoc
// @Summary Search the full catalog
// @Description Substring search over product name and SKU, including inactive products (admin operation)
// @Tags products
// @Produce json
// @Param q query string true "Search query"
// @Param limit query int false "Max results"
// @Success 200 {array} dto.ProductResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/products/search [get]
func (h *productHandler) adminSearch(c *gin.Context) {
	h.search(c, false)
}

func (h *productHandler) search(c *gin.Context, activeOnly bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	query := c.Query("q")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	products, err := h.productService.SearchProducts(c.Request.Context(), query, activeOnly, limit)
	if err != nil {
		logger.Error("Failed to search products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to search products"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProductResponse(products))
}

// listProducts godoc
// @Summary List catalog products
// @Description Retrieves a paginated product listing (admin operation)
// @Tags products
// @Produce json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.ProductListResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/products [get]
func (h *productHandler) listProducts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit <= 0 {
		limit = defaultListLimit
	}
	nextToken := c.Query("nextToken")

	products, token, err := h.productService.ListProducts(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list products", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list products"})
		return
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products:  dto.ToListProductResponse(products),
		NextToken: token,
	})
}

// getProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.ProductResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/products/{productID} [get]
func (h *productHandler) getProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	product, err := h.productService.GetProductByID(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to get product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// createProduct godoc
// @Summary Create a catalog product
// @Description Persists a product; the base price is derived from the stored rate of its price currency.
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product details"
// @Success 201 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "SKU already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/products [post]
func (h *productHandler) createProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Product SKU already exists"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create product"})
		return
	}

	logger.Info("Product created", slog.String("product_id", product.ProductID))
	c.JSON(http.StatusCreated, dto.ToProductResponse(product))
}

// updateProduct godoc
// @Summary Update a catalog product
// @Description Rewrites a product and re-derives its base price.
// @Tags products
// @Accept json
// @Produce json
// @Param productID path string true "Product ID"
// @Param product body dto.UpdateProductRequest true "Product details"
// @Success 200 {object} dto.ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/products/{productID} [put]
func (h *productHandler) updateProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), productID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, dto.ToProductResponse(product))
}

// deleteProduct godoc
// @Summary Delete a catalog product
// @Tags products
// @Param productID path string true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/products/{productID} [delete]
func (h *productHandler) deleteProduct(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")

	if err := h.productService.DeleteProduct(c.Request.Context(), productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
			return
		}
		logger.Error("Failed to delete product", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete product"})
		return
	}

	c.Status(http.StatusNoContent)
}
