package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
)

// orderHandler handles HTTP requests related to orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerAccountOrderRoutes registers the customer-facing order routes.
func registerAccountOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	rg.GET("/orders", h.listOwnOrders)
	rg.POST("/checkout", h.checkout)
}

// registerAdminOrderRoutes registers the admin order routes.
func registerAdminOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.GET("", h.listAllOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.PUT("/:orderID/status", h.updateOrderStatus)
	}
}

// registerPaymentLandingRoutes registers the gateway redirect landing pages.
// The hosted gateway redirects the shopper here after the payment attempt;
// the gateway's own state machine is external to this system.
func registerPaymentLandingRoutes(rg *gin.RouterGroup) {
	payment := rg.Group("/payment")
	{
		payment.GET("/success", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Payment completed."})
		})
		payment.GET("/failure", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "failure", "message": "Payment was not completed."})
		})
	}
}

// checkout godoc
// @Summary Place an order
// @Description Creates a pending order from the cart items and returns the hosted payment page URL.
// @Tags orders
// @Accept json
// @Produce json
// @Param checkout body dto.CheckoutRequest true "Cart items"
// @Success 201 {object} dto.CheckoutResponse
// @Failure 400 {object} ErrorResponse "Empty cart or unavailable product"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/checkout [post]
func (h *orderHandler) checkout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, session, err := h.orderService.Checkout(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Checkout rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to place order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to place order"})
		return
	}

	logger.Info("Order placed", slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.CheckoutResponse{
		Order: dto.ToOrderResponse(order),
		Payment: dto.PaymentSessionResponse{
			OrderID:   session.OrderID,
			Token:     session.Token,
			IframeURL: session.IframeURL,
		},
	})
}

// listOwnOrders godoc
// @Summary List own orders
// @Description Retrieves the authenticated customer's orders, newest first.
// @Tags orders
// @Produce json
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /account/orders [get]
func (h *orderHandler) listOwnOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	orders, err := h.orderService.ListOrdersForUser(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list orders for user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

// listAllOrders godoc
// @Summary List all orders
// @Description Retrieves orders across all customers, paginated (admin operation)
// @Tags orders
// @Produce json
// @Param limit query int false "Page size"
// @Param nextToken query string false "Pagination token"
// @Success 200 {object} dto.OrderListResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/orders [get]
func (h *orderHandler) listAllOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultListLimit)))
	if err != nil || limit <= 0 {
		limit = defaultListLimit
	}
	nextToken := c.Query("nextToken")

	orders, token, err := h.orderService.ListOrders(c.Request.Context(), limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{
		Orders:    dto.ToListOrderResponse(orders),
		NextToken: token,
	})
}

// getOrder godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Param orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		logger.Error("Failed to get order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// updateOrderStatus godoc
// @Summary Update an order's status
// @Description Transitions an order to a new status (admin operation)
// @Tags orders
// @Accept json
// @Produce json
// @Param orderID path string true "Order ID"
// @Param status body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/orders/{orderID}/status [put]
func (h *orderHandler) updateOrderStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("orderID")

	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), orderID, domain.OrderStatus(req.Status), updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to update order status", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update order status"})
		return
	}

	logger.Info("Order status updated", slog.String("order_id", orderID), slog.String("status", req.Status))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
