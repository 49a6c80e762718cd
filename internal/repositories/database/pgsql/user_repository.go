package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	"github.com/vitrinsoft/vitrin_backend/internal/models"
	"github.com/vitrinsoft/vitrin_backend/internal/utils/mapping"
)

const userColumns = `
	user_id, email, name, password_hash, role, b2b_status, company_name,
	auth_provider, provider_user_id, email_verified,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at`

// PgxUserRepository implements the ports.UserRepository interface using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Email, &m.Name, &m.PasswordHash, &m.Role, &m.B2BStatus, &m.CompanyName,
		&m.AuthProvider, &m.ProviderUserID, &m.EmailVerified,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy, &m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUser inserts a new user row.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (
			user_id, email, name, password_hash, role, b2b_status, company_name,
			auth_provider, provider_user_id, email_verified,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		m.UserID, m.Email, m.Name, m.PasswordHash, m.Role, m.B2BStatus, m.CompanyName,
		m.AuthProvider, m.ProviderUserID, m.EmailVerified,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: user with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return apperrors.NewAppError(500, "failed to save user", err)
	}
	return nil
}

// FindUserByID retrieves a user by ID, excluding soft-deleted accounts.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE user_id = $1 AND deleted_at IS NULL`, userID)
	m, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user with ID " + userID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get user by ID", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// FindUserByEmail retrieves a user by email, excluding soft-deleted accounts.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1 AND deleted_at IS NULL`,
		strings.ToLower(email))
	m, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("user with email " + email + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get user by email", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// FindUserByProviderID retrieves a user by OAuth provider identity.
func (r *PgxUserRepository) FindUserByProviderID(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE auth_provider = $1 AND provider_user_id = $2 AND deleted_at IS NULL`,
		string(provider), providerUserID)
	m, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("no user for provider identity")
		}
		return nil, apperrors.NewAppError(500, "failed to get user by provider identity", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// ListB2BUsers retrieves business accounts, optionally filtered by status.
func (r *PgxUserRepository) ListB2BUsers(ctx context.Context, status *domain.B2BStatus) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE b2b_status <> 'NONE' AND deleted_at IS NULL`
	args := []interface{}{}
	if status != nil {
		query += ` AND b2b_status = $1`
		args = append(args, string(*status))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list B2B users", err)
	}
	defer rows.Close()

	var ms []models.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating users", err)
	}

	return mapping.ToDomainUserSlice(ms), nil
}

// UpdateB2BStatus moves a business account through the approval workflow.
func (r *PgxUserRepository) UpdateB2BStatus(ctx context.Context, userID string, status domain.B2BStatus, updaterUserID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users SET b2b_status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE user_id = $4 AND deleted_at IS NULL`,
		string(status), time.Now(), updaterUserID, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update B2B status", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user with ID " + userID + " not found")
	}
	return nil
}

// UpdateUser rewrites mutable profile fields.
func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE users
		SET name = $1, company_name = $2, email_verified = $3,
		    last_updated_at = $4, last_updated_by = $5
		WHERE user_id = $6 AND deleted_at IS NULL`,
		m.Name, m.CompanyName, m.EmailVerified,
		m.LastUpdatedAt, m.LastUpdatedBy, m.UserID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update user", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user with ID " + m.UserID + " not found")
	}
	return nil
}

// MarkUserDeleted soft-deletes an account.
func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deleterUserID string) error {
	now := time.Now()
	tag, err := r.Pool.Exec(ctx, `
		UPDATE users SET deleted_at = $1, last_updated_at = $1, last_updated_by = $2
		WHERE user_id = $3 AND deleted_at IS NULL`,
		now, deleterUserID, userID,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark user deleted", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("user with ID " + userID + " not found")
	}
	return nil
}
