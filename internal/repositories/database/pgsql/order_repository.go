package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/mapping"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/pagination"
)

const orderColumns = `
	order_id, user_id, status, total_amount, payment_token,
	created_at, created_by, last_updated_at, last_updated_by`

const orderItemColumns = `
	order_item_id, order_id, product_id, product_name, quantity, unit_price`

// PgxOrderRepository implements the ports.OrderRepository interface using pgxpool.
type PgxOrderRepository struct {
	BaseRepository
}

func newPgxOrderRepository(db *pgxpool.Pool) *PgxOrderRepository {
	return &PgxOrderRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func scanOrder(row pgx.Row) (*models.Order, error) {
	var m models.Order
	err := row.Scan(
		&m.OrderID, &m.UserID, &m.Status, &m.TotalAmount, &m.PaymentToken,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveOrder persists an order header and all of its items in one transaction.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) error {
	m := mapping.ToModelOrder(order)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO orders (
			order_id, user_id, status, total_amount, payment_token,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.OrderID, m.UserID, m.Status, m.TotalAmount, m.PaymentToken,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save order", err)
	}

	batch := &pgx.Batch{}
	for _, item := range order.Items {
		im := mapping.ToModelOrderItem(item)
		batch.Queue(`
			INSERT INTO order_items (
				order_item_id, order_id, product_id, product_name, quantity, unit_price
			) VALUES ($1, $2, $3, $4, $5, $6)`,
			im.OrderItemID, m.OrderID, im.ProductID, im.ProductName, im.Quantity, im.UnitPrice,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for range order.Items {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return apperrors.NewAppError(500, "failed to save order item", err)
		}
	}
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to close order item batch", err)
	}

	return r.Commit(ctx, tx)
}

func (r *PgxOrderRepository) loadItems(ctx context.Context, orderID string) ([]models.OrderItem, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+orderItemColumns+` FROM order_items WHERE order_id = $1 ORDER BY product_name ASC`, orderID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load order items", err)
	}
	defer rows.Close()

	var items []models.OrderItem
	for rows.Next() {
		var im models.OrderItem
		if err := rows.Scan(&im.OrderItemID, &im.OrderID, &im.ProductID, &im.ProductName, &im.Quantity, &im.UnitPrice); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order item", err)
		}
		items = append(items, im)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating order items", err)
	}
	return items, nil
}

// FindOrderByID retrieves an order with its items.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE order_id = $1`, orderID)
	m, err := scanOrder(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("order with ID " + orderID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get order by ID", err)
	}

	items, err := r.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainOrder(*m, items)
	return &d, nil
}

// ListOrdersByUser retrieves all orders placed by a customer, newest first.
func (r *PgxOrderRepository) ListOrdersByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list orders for user", err)
	}
	defer rows.Close()

	var ms []models.Order
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan order", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating orders", err)
	}

	return r.attachItems(ctx, ms)
}

// ListOrders retrieves orders across all customers with keyset pagination.
func (r *PgxOrderRepository) ListOrders(ctx context.Context, limit int, nextToken string) ([]domain.Order, string, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []interface{}{}

	if nextToken != "" {
		before, err := pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return nil, "", apperrors.NewValidationError("invalid pagination token")
		}
		query += ` WHERE created_at < $1`
		args = append(args, before)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", apperrors.NewAppError(500, "failed to list orders", err)
	}
	defer rows.Close()

	var ms []models.Order
	for rows.Next() {
		m, err := scanOrder(rows)
		if err != nil {
			return nil, "", apperrors.NewAppError(500, "failed to scan order", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, "", apperrors.NewAppError(500, "error iterating orders", err)
	}

	var token string
	if len(ms) > limit {
		ms = ms[:limit]
		token = pagination.EncodeDateBasedToken(ms[len(ms)-1].CreatedAt)
	}

	orders, err := r.attachItems(ctx, ms)
	if err != nil {
		return nil, "", err
	}
	return orders, token, nil
}

func (r *PgxOrderRepository) attachItems(ctx context.Context, ms []models.Order) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(ms))
	for _, m := range ms {
		items, err := r.loadItems(ctx, m.OrderID)
		if err != nil {
			return nil, err
		}
		orders = append(orders, mapping.ToDomainOrder(m, items))
	}
	return orders, nil
}

// UpdateOrderStatus transitions an order to a new status.
func (r *PgxOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus, updaterUserID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE orders SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE order_id = $4`,
		string(status), time.Now(), updaterUserID, orderID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update order status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("order with ID " + orderID + " not found")
	}
	return nil
}
