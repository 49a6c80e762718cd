package dto

import (
	"time"

	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
)

// CreateBlogPostRequest defines the payload for creating a blog post.
type CreateBlogPostRequest struct {
	Slug        string `json:"slug" binding:"required,lowercase"`
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body" binding:"required"`
	CoverImage  string `json:"coverImage"`
	IsPublished bool   `json:"isPublished"`
}

// UpdateBlogPostRequest defines the payload for editing a blog post.
type UpdateBlogPostRequest struct {
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body" binding:"required"`
	CoverImage  string `json:"coverImage"`
	IsPublished bool   `json:"isPublished"`
}

// BlogPostResponse defines the data returned for a blog post.
type BlogPostResponse struct {
	PostID      string    `json:"postID"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Body        string    `json:"body"`
	CoverImage  string    `json:"coverImage,omitempty"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ToBlogPostResponse converts a domain.BlogPost to BlogPostResponse DTO
func ToBlogPostResponse(p *domain.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		PostID:      p.PostID,
		Slug:        p.Slug,
		Title:       p.Title,
		Body:        p.Body,
		CoverImage:  p.CoverImage,
		IsPublished: p.IsPublished,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.LastUpdatedAt,
	}
}

// ToListBlogPostResponse converts a slice of domain.BlogPost to BlogPostResponse DTOs
func ToListBlogPostResponse(posts []domain.BlogPost) []BlogPostResponse {
	res := make([]BlogPostResponse, len(posts))
	for i := range posts {
		res[i] = ToBlogPostResponse(&posts[i])
	}
	return res
}
