package services

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// OrderReaderSvc defines read operations for orders.
type OrderReaderSvc interface {
	// GetOrderByID retrieves an order with its items.
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersForUser retrieves a customer's own orders.
	ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error)

	// ListOrders retrieves all orders for administration, paginated.
	ListOrders(ctx context.Context, limit int, nextToken string) ([]domain.Order, string, error)
}

// OrderWriterSvc defines write operations for orders.
type OrderWriterSvc interface {
	// Checkout creates a pending order from the cart items and opens a
	// payment session against the hosted gateway page.
	Checkout(ctx context.Context, userID string, req dto.CheckoutRequest) (*domain.Order, *domain.PaymentSession, error)

	// UpdateOrderStatus transitions an order's status (admin operation).
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) (*domain.Order, error)
}

// OrderSvcFacade combines all order service interfaces.
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}

// PaymentSvcFacade builds hosted payment page sessions. The gateway's payment
// state machine is external; this system only constructs the iframe URL.
type PaymentSvcFacade interface {
	CreateSession(ctx context.Context, orderID string) (*domain.PaymentSession, error)
}
