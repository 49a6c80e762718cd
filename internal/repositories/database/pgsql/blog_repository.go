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

const blogPostColumns = `
	post_id, slug, title, body, cover_image, is_published,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxBlogRepository implements the ports.BlogRepository interface using pgxpool.
type PgxBlogRepository struct {
	BaseRepository
}

func newPgxBlogRepository(db *pgxpool.Pool) *PgxBlogRepository {
	return &PgxBlogRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

func scanBlogPost(row pgx.Row) (*models.BlogPost, error) {
	var m models.BlogPost
	err := row.Scan(
		&m.PostID, &m.Slug, &m.Title, &m.Body, &m.CoverImage, &m.IsPublished,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SavePost inserts a new blog post.
func (r *PgxBlogRepository) SavePost(ctx context.Context, post domain.BlogPost) error {
	m := mapping.ToModelBlogPost(post)

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO blog_posts (
			post_id, slug, title, body, cover_image, is_published,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.PostID, m.Slug, m.Title, m.Body, m.CoverImage, m.IsPublished,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: blog post with slug %s already exists", apperrors.ErrDuplicate, m.Slug)
		}
		return apperrors.NewAppError(500, "failed to save blog post", err)
	}
	return nil
}

// FindPostBySlug retrieves a blog post by its URL slug.
func (r *PgxBlogRepository) FindPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE slug = $1`, slug)
	m, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("blog post with slug " + slug + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get blog post by slug", err)
	}
	d := mapping.ToDomainBlogPost(*m)
	return &d, nil
}

// FindPostByID retrieves a blog post by ID.
func (r *PgxBlogRepository) FindPostByID(ctx context.Context, postID string) (*domain.BlogPost, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+blogPostColumns+` FROM blog_posts WHERE post_id = $1`, postID)
	m, err := scanBlogPost(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("blog post with ID " + postID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to get blog post by ID", err)
	}
	d := mapping.ToDomainBlogPost(*m)
	return &d, nil
}

// ListPosts retrieves posts newest first; publishedOnly hides drafts.
func (r *PgxBlogRepository) ListPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts`
	if publishedOnly {
		query += ` WHERE is_published = TRUE`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list blog posts", err)
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		m, err := scanBlogPost(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan blog post", err)
		}
		posts = append(posts, mapping.ToDomainBlogPost(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating blog posts", err)
	}
	return posts, nil
}

// UpdatePost rewrites a blog post.
func (r *PgxBlogRepository) UpdatePost(ctx context.Context, post domain.BlogPost) error {
	m := mapping.ToModelBlogPost(post)

	tag, err := r.Pool.Exec(ctx, `
		UPDATE blog_posts
		SET slug = $1, title = $2, body = $3, cover_image = $4, is_published = $5,
		    last_updated_at = $6, last_updated_by = $7
		WHERE post_id = $8`,
		m.Slug, m.Title, m.Body, m.CoverImage, m.IsPublished,
		m.LastUpdatedAt, m.LastUpdatedBy, m.PostID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: blog post with slug %s already exists", apperrors.ErrDuplicate, m.Slug)
		}
		return apperrors.NewAppError(500, "failed to update blog post", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("blog post with ID " + m.PostID + " not found")
	}
	return nil
}

// DeletePost removes a blog post.
func (r *PgxBlogRepository) DeletePost(ctx context.Context, postID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM blog_posts WHERE post_id = $1`, postID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete blog post", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("blog post with ID " + postID + " not found")
	}
	return nil
}
