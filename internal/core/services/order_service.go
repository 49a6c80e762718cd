package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// OrderService implements checkout and order administration. Line prices are
// captured in the base currency at checkout time; later rate changes never
// touch existing orders.
type OrderService struct {
	orderRepo   portsrepo.OrderRepository
	productRepo portsrepo.ProductRepository
	paymentSvc  portssvc.PaymentSvcFacade
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo portsrepo.OrderRepository, productRepo portsrepo.ProductRepository, paymentSvc portssvc.PaymentSvcFacade) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		paymentSvc:  paymentSvc,
	}
}

// Checkout creates a pending order from the cart items and opens a payment
// session against the hosted gateway page.
func (s *OrderService) Checkout(ctx context.Context, userID string, req dto.CheckoutRequest) (*domain.Order, *domain.PaymentSession, error) {
	now := time.Now()
	orderID := uuid.NewString()

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, line := range req.Items {
		product, err := s.productRepo.FindProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, fmt.Errorf("%w: product '%s' not found", apperrors.ErrValidation, line.ProductID)
			}
			return nil, nil, fmt.Errorf("failed to load product for checkout: %w", err)
		}
		if !product.IsActive {
			return nil, nil, fmt.Errorf("%w: product '%s' is not available", apperrors.ErrValidation, product.SKU)
		}

		items = append(items, domain.OrderItem{
			OrderItemID: uuid.NewString(),
			OrderID:     orderID,
			ProductID:   product.ProductID,
			ProductName: product.Name,
			Quantity:    line.Quantity,
			UnitPrice:   product.BasePrice,
		})
		total = total.Add(product.BasePrice.Mul(decimal.NewFromInt(line.Quantity)))
	}

	session, err := s.paymentSvc.CreateSession(ctx, orderID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open payment session: %w", err)
	}

	order := domain.Order{
		OrderID:      orderID,
		UserID:       userID,
		Status:       domain.OrderPending,
		TotalAmount:  total,
		PaymentToken: session.Token,
		Items:        items,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, nil, fmt.Errorf("failed to save order in service: %w", err)
	}

	return &order, session, nil
}

// GetOrderByID retrieves an order with its items.
func (s *OrderService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order by ID in service: %w", err)
	}
	return order, nil
}

// ListOrdersForUser retrieves a customer's own orders.
func (s *OrderService) ListOrdersForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders for user in service: %w", err)
	}
	if orders == nil {
		return []domain.Order{}, nil
	}
	return orders, nil
}

// ListOrders retrieves all orders for administration, paginated.
func (s *OrderService) ListOrders(ctx context.Context, limit int, nextToken string) ([]domain.Order, string, error) {
	if limit <= 0 || limit > 200 {
		limit = defaultSearchLimit
	}
	orders, token, err := s.orderRepo.ListOrders(ctx, limit, nextToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list orders in service: %w", err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, token, nil
}

// UpdateOrderStatus transitions an order's status and returns the updated order.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, fmt.Errorf("%w: unknown order status '%s'", apperrors.ErrValidation, status)
	}

	if err := s.orderRepo.UpdateOrderStatus(ctx, orderID, status, updaterUserID); err != nil {
		return nil, fmt.Errorf("failed to update order status in service: %w", err)
	}

	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload order after status update: %w", err)
	}
	return order, nil
}
