package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/mapping"
)

const categoryColumns = `
	category_id, name, parent_id,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxCategoryRepository implements the ports.CategoryRepository interface using pgxpool.
type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db *pgxpool.Pool) *PgxCategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func scanCategory(row pgx.Row) (*models.Category, error) {
	var m models.Category
	err := row.Scan(
		&m.CategoryID, &m.Name, &m.ParentID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO categories (
			category_id, name, parent_id,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.CategoryID, m.Name, m.ParentID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save category", err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+categoryColumns+` FROM categories WHERE category_id = $1`, categoryID)
	m, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("category with ID " + categoryID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get category by ID", err)
	}
	d := mapping.ToDomainCategory(*m)
	return &d, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+categoryColumns+` FROM categories ORDER BY name ASC`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list categories", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		m, err := scanCategory(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan category", err)
		}
		categories = append(categories, mapping.ToDomainCategory(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating categories", err)
	}
	return categories, nil
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	m := mapping.ToModelCategory(category)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE categories SET name = $1, parent_id = $2, last_updated_at = $3, last_updated_by = $4
		WHERE category_id = $5`,
		m.Name, m.ParentID, m.LastUpdatedAt, m.LastUpdatedBy, m.CategoryID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category with ID " + m.CategoryID + " not found")
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("category with ID " + categoryID + " not found")
	}
	return nil
}
