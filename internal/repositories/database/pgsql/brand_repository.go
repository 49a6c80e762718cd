package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/mapping"
)

const brandColumns = `
	brand_id, name, logo_url,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxBrandRepository implements the ports.BrandRepository interface using pgxpool.
type PgxBrandRepository struct {
	BaseRepository
}

func newPgxBrandRepository(db *pgxpool.Pool) *PgxBrandRepository {
	return &PgxBrandRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func scanBrand(row pgx.Row) (*models.Brand, error) {
	var m models.Brand
	err := row.Scan(
		&m.BrandID, &m.Name, &m.LogoURL,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxBrandRepository) SaveBrand(ctx context.Context, brand domain.Brand) error {
	m := mapping.ToModelBrand(brand)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO brands (
			brand_id, name, logo_url,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.BrandID, m.Name, m.LogoURL,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: brand with name %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to save brand", err)
	}
	return nil
}

func (r *PgxBrandRepository) FindBrandByID(ctx context.Context, brandID string) (*domain.Brand, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+brandColumns+` FROM brands WHERE brand_id = $1`, brandID)
	m, err := scanBrand(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("brand with ID " + brandID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get brand by ID", err)
	}
	d := mapping.ToDomainBrand(*m)
	return &d, nil
}

func (r *PgxBrandRepository) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+brandColumns+` FROM brands ORDER BY name ASC`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list brands", err)
	}
	defer rows.Close()

	var brands []domain.Brand
	for rows.Next() {
		m, err := scanBrand(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan brand", err)
		}
		brands = append(brands, mapping.ToDomainBrand(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating brands", err)
	}
	return brands, nil
}

func (r *PgxBrandRepository) UpdateBrand(ctx context.Context, brand domain.Brand) error {
	m := mapping.ToModelBrand(brand)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE brands SET name = $1, logo_url = $2, last_updated_at = $3, last_updated_by = $4
		WHERE brand_id = $5`,
		m.Name, m.LogoURL, m.LastUpdatedAt, m.LastUpdatedBy, m.BrandID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update brand", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("brand with ID " + m.BrandID + " not found")
	}
	return nil
}

func (r *PgxBrandRepository) DeleteBrand(ctx context.Context, brandID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM brands WHERE brand_id = $1`, brandID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete brand", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("brand with ID " + brandID + " not found")
	}
	return nil
}
