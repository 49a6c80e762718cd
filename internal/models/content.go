package models

import "database/sql"

// BlogPost is a blog content row.
type BlogPost struct {
	PostID      string         `db:"post_id"`
	Slug        string         `db:"slug"`
	Title       string         `db:"title"`
	Body        string         `db:"body"`
	CoverImage  sql.NullString `db:"cover_image"`
	IsPublished bool           `db:"is_published"`
	AuditFields
}

// Brand is a manufacturer/label row.
type Brand struct {
	BrandID string         `db:"brand_id"`
	Name    string         `db:"name"`
	LogoURL sql.NullString `db:"logo_url"`
	AuditFields
}

// Category is a catalog grouping row; parent_id is null for top level.
type Category struct {
	CategoryID string         `db:"category_id"`
	Name       string         `db:"name"`
	ParentID   sql.NullString `db:"parent_id"`
	AuditFields
}
