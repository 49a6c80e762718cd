package mapping

import (
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
)

// ToModelOrder converts a domain Order to a model Order (header only; items map separately)
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:      d.OrderID,
		UserID:       d.UserID,
		Status:       string(d.Status),
		TotalAmount:  d.TotalAmount,
		PaymentToken: d.PaymentToken,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrder converts a model Order to a domain Order with the given items
func ToDomainOrder(m models.Order, items []models.OrderItem) domain.Order {
	domainItems := make([]domain.OrderItem, len(items))
	for i, it := range items {
		domainItems[i] = ToDomainOrderItem(it)
	}
	return domain.Order{
		OrderID:      m.OrderID,
		UserID:       m.UserID,
		Status:       domain.OrderStatus(m.Status),
		TotalAmount:  m.TotalAmount,
		PaymentToken: m.PaymentToken,
		Items:        domainItems,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelOrderItem converts a domain OrderItem to a model OrderItem
func ToModelOrderItem(d domain.OrderItem) models.OrderItem {
	return models.OrderItem{
		OrderItemID: d.OrderItemID,
		OrderID:     d.OrderID,
		ProductID:   d.ProductID,
		ProductName: d.ProductName,
		Quantity:    d.Quantity,
		UnitPrice:   d.UnitPrice,
	}
}

// ToDomainOrderItem converts a model OrderItem to a domain OrderItem
func ToDomainOrderItem(m models.OrderItem) domain.OrderItem {
	return domain.OrderItem{
		OrderItemID: m.OrderItemID,
		OrderID:     m.OrderID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Quantity:    m.Quantity,
		UnitPrice:   m.UnitPrice,
	}
}
