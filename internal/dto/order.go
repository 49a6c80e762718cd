package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// CheckoutItem is a single product line in a checkout request.
type CheckoutItem struct {
	ProductID string `json:"productID" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest defines the payload for placing an order.
type CheckoutRequest struct {
	Items []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// PaymentSessionResponse carries the hosted payment page handle for an order.
type PaymentSessionResponse struct {
	OrderID   string `json:"orderID"`
	Token     string `json:"token"`
	IframeURL string `json:"iframeURL"`
}

// CheckoutResponse returns the created order and its payment session.
type CheckoutResponse struct {
	Order   OrderResponse          `json:"order"`
	Payment PaymentSessionResponse `json:"payment"`
}

// OrderItemResponse defines the data returned for an order line.
type OrderItemResponse struct {
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// OrderResponse defines the data returned for an order.
type OrderResponse struct {
	OrderID     string              `json:"orderID"`
	UserID      string              `json:"userID"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"createdAt"`
}

// OrderListResponse is a paginated order listing for administration.
type OrderListResponse struct {
	Orders    []OrderResponse `json:"orders"`
	NextToken string          `json:"nextToken,omitempty"`
}

// UpdateOrderStatusRequest defines the payload for an admin status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING PAID FAILED SHIPPED CANCELLED"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, it := range o.Items {
		items[i] = OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return OrderResponse{
		OrderID:     o.OrderID,
		UserID:      o.UserID,
		Status:      string(o.Status),
		TotalAmount: o.TotalAmount,
		Items:       items,
		CreatedAt:   o.CreatedAt,
	}
}

// ToListOrderResponse converts a slice of domain.Order to OrderResponse DTOs
func ToListOrderResponse(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, len(orders))
	for i := range orders {
		res[i] = ToOrderResponse(&orders[i])
	}
	return res
}
