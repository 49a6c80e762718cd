package domain

import "github.com/shopspring/decimal"

// OrderStatus is the lifecycle state of an order. The payment state machine
// itself lives in the external gateway; these states only mirror its outcome.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderPaid      OrderStatus = "PAID"
	OrderFailed    OrderStatus = "FAILED"
	OrderShipped   OrderStatus = "SHIPPED"
	OrderCancelled OrderStatus = "CANCELLED"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderPaid, OrderFailed, OrderShipped, OrderCancelled:
		return true
	}
	return false
}

// OrderItem is a single product line within an order. UnitPrice is captured in
// the base currency at checkout time and does not change afterwards.
type OrderItem struct {
	OrderItemID string          `json:"orderItemID"`
	OrderID     string          `json:"orderID"`
	ProductID   string          `json:"productID"`
	ProductName string          `json:"productName"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// Order represents a customer purchase.
type Order struct {
	OrderID      string          `json:"orderID"`
	UserID       string          `json:"userID"`
	Status       OrderStatus     `json:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount"` // base currency
	PaymentToken string          `json:"-"`
	Items        []OrderItem     `json:"items"`
	AuditFields
}
