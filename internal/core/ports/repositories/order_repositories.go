package repositories

import (
	"context"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// OrderRepository persists orders and their line items.
type OrderRepository interface {
	// SaveOrder inserts the order header and all items in one transaction.
	SaveOrder(ctx context.Context, order domain.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)

	// ListOrdersByUser retrieves a customer's own orders, newest first.
	ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error)

	// ListOrders retrieves all orders for administration, newest first.
	// nextToken is a date-based pagination token; empty means first page.
	ListOrders(ctx context.Context, limit int, nextToken string) ([]domain.Order, string, error)

	// UpdateOrderStatus transitions the order status.
	UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error
}
