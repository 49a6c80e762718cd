package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/mapping"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/pagination"
)

const productColumns = `
	product_id, sku, name, description, brand_id, category_id,
	price_currency, price_amount, base_price, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxProductRepository implements the ports.ProductRepository interface using pgxpool.
type PgxProductRepository struct {
	BaseRepository
}

func newPgxProductRepository(db *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var m models.Product
	err := row.Scan(
		&m.ProductID, &m.SKU, &m.Name, &m.Description, &m.BrandID, &m.CategoryID,
		&m.PriceCurrency, &m.PriceAmount, &m.BasePrice, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectProducts(rows pgx.Rows) ([]models.Product, error) {
	defer rows.Close()
	var ms []models.Product
	for rows.Next() {
		m, err := scanProduct(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan product", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating products", err)
	}
	return ms, nil
}

// SaveProduct inserts a new product.
func (r *PgxProductRepository) SaveProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO products (`+productColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.ProductID, m.SKU, m.Name, m.Description, m.BrandID, m.CategoryID,
		m.PriceCurrency, m.PriceAmount, m.BasePrice, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: product with SKU %s already exists", apperrors.ErrDuplicate, m.SKU)
		}
		return apperrors.NewAppError(500, "failed to save product", err)
	}
	return nil
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE product_id = $1`, productID)
	m, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("product with ID " + productID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get product by ID", err)
	}
	d := mapping.ToDomainProduct(*m)
	return &d, nil
}

// ListProducts retrieves products newest first with date-based keyset pagination.
func (r *PgxProductRepository) ListProducts(ctx context.Context, limit int, nextToken string) ([]domain.Product, string, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []interface{}{}
	if nextToken != "" {
		before, err := pagination.DecodeDateBasedToken(nextToken)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		query += ` WHERE created_at < $1`
		args = append(args, before)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, "", apperrors.NewAppError(500, "failed to list products", err)
	}
	ms, err := collectProducts(rows)
	if err != nil {
		return nil, "", err
	}

	var token string
	if len(ms) > limit {
		ms = ms[:limit]
		token = pagination.EncodeDateBasedToken(ms[len(ms)-1].CreatedAt)
	}
	return mapping.ToDomainProductSlice(ms), token, nil
}

// ListProductsByPriceCurrency retrieves every active product priced in the
// given currency. Feeds the recalculation pass.
func (r *PgxProductRepository) ListProductsByPriceCurrency(ctx context.Context, currencyCode string) ([]domain.Product, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE price_currency = $1 AND is_active = TRUE`,
		strings.ToUpper(currencyCode),
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list products by currency", err)
	}
	ms, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainProductSlice(ms), nil
}

// SearchProducts performs a case-insensitive substring search over name and SKU.
func (r *PgxProductRepository) SearchProducts(ctx context.Context, query string, activeOnly bool, limit int) ([]domain.Product, error) {
	pattern := "%" + escapeLike(query) + "%"
	sqlQuery := `SELECT ` + productColumns + ` FROM products
		WHERE (name ILIKE $1 OR sku ILIKE $1)`
	if activeOnly {
		sqlQuery += ` AND is_active = TRUE`
	}
	sqlQuery += ` ORDER BY name LIMIT $2`

	rows, err := r.Pool.Query(ctx, sqlQuery, pattern, limit)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to search products", err)
	}
	ms, err := collectProducts(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainProductSlice(ms), nil
}

// UpdateProduct rewrites an existing product row.
func (r *PgxProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	m := mapping.ToModelProduct(product)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE products
		SET name = $1, description = $2, brand_id = $3, category_id = $4,
		    price_currency = $5, price_amount = $6, base_price = $7, is_active = $8,
		    last_updated_at = $9, last_updated_by = $10
		WHERE product_id = $11`,
		m.Name, m.Description, m.BrandID, m.CategoryID,
		m.PriceCurrency, m.PriceAmount, m.BasePrice, m.IsActive,
		m.LastUpdatedAt, m.LastUpdatedBy, m.ProductID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update product", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product with ID " + m.ProductID + " not found")
	}
	return nil
}

// DeleteProduct removes a product row.
func (r *PgxProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM products WHERE product_id = $1`, productID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("product with ID " + productID + " not found")
	}
	return nil
}

// escapeLike escapes LIKE wildcards so user input is matched literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
