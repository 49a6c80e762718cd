package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	"github.com/vitrinsoft/vitrin_backend/internal/core/domain"
	portsrepo "github.com/vitrinsoft/vitrin_backend/internal/core/ports/repositories"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
)

// BlogService manages storefront blog content.
type BlogService struct {
	blogRepo portsrepo.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(blogRepo portsrepo.BlogRepository) *BlogService {
	return &BlogService{blogRepo: blogRepo}
}

// CreatePost persists a new blog post.
func (s *BlogService) CreatePost(ctx context.Context, req dto.CreateBlogPostRequest, creatorUserID string) (*domain.BlogPost, error) {
	now := time.Now()
	post := domain.BlogPost{
		PostID:      uuid.NewString(),
		Slug:        strings.ToLower(strings.TrimSpace(req.Slug)),
		Title:       req.Title,
		Body:        req.Body,
		CoverImage:  req.CoverImage,
		IsPublished: req.IsPublished,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.blogRepo.SavePost(ctx, post); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: slug '%s' already exists", apperrors.ErrDuplicate, post.Slug)
		}
		return nil, fmt.Errorf("failed to create blog post in service: %w", err)
	}
	return &post, nil
}

// GetPostBySlug retrieves a post by its slug.
func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.blogRepo.FindPostBySlug(ctx, strings.ToLower(slug))
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post by slug in service: %w", err)
	}
	return post, nil
}

// GetPostByID retrieves a post by its ID.
func (s *BlogService) GetPostByID(ctx context.Context, postID string) (*domain.BlogPost, error) {
	post, err := s.blogRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog post by ID in service: %w", err)
	}
	return post, nil
}

// ListPosts retrieves posts, optionally restricted to published ones.
func (s *BlogService) ListPosts(ctx context.Context, publishedOnly bool) ([]domain.BlogPost, error) {
	posts, err := s.blogRepo.ListPosts(ctx, publishedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts in service: %w", err)
	}
	if posts == nil {
		return []domain.BlogPost{}, nil
	}
	return posts, nil
}

// UpdatePost rewrites an existing post.
func (s *BlogService) UpdatePost(ctx context.Context, postID string, req dto.UpdateBlogPostRequest, updaterUserID string) (*domain.BlogPost, error) {
	existing, err := s.blogRepo.FindPostByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to find blog post for update: %w", err)
	}

	existing.Title = req.Title
	existing.Body = req.Body
	existing.CoverImage = req.CoverImage
	existing.IsPublished = req.IsPublished
	existing.LastUpdatedAt = time.Now()
	existing.LastUpdatedBy = updaterUserID

	if err := s.blogRepo.UpdatePost(ctx, *existing); err != nil {
		return nil, fmt.Errorf("failed to update blog post in service: %w", err)
	}
	return existing, nil
}

// DeletePost removes a post.
func (s *BlogService) DeletePost(ctx context.Context, postID string) error {
	if err := s.blogRepo.DeletePost(ctx, postID); err != nil {
		return fmt.Errorf("failed to delete blog post in service: %w", err)
	}
	return nil
}
