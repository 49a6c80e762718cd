package models

import "github.com/shopspring/decimal"

// Order is the purchase header row.
type Order struct {
	OrderID      string          `db:"order_id"`
	UserID       string          `db:"user_id"`
	Status       string          `db:"status"`
	TotalAmount  decimal.Decimal `db:"total_amount"`
	PaymentToken string          `db:"payment_token"`
	AuditFields
}

// OrderItem is a line row belonging to an order.
type OrderItem struct {
	OrderItemID string          `db:"order_item_id"`
	OrderID     string          `db:"order_id"`
	ProductID   string          `db:"product_id"`
	ProductName string          `db:"product_name"`
	Quantity    int64           `db:"quantity"`
	UnitPrice   decimal.Decimal `db:"unit_price"`
}
