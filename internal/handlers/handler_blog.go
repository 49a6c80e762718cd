package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vitrinsoft/vitrin_backend/internal/apperrors"
	portssvc "github.com/vitrinsoft/vitrin_backend/internal/core/ports/services"
	"github.com/vitrinsoft/vitrin_backend/internal/dto"
	"github.com/vitrinsoft/vitrin_backend/internal/middleware"
)

// blogHandler handles HTTP requests related to blog content.
type blogHandler struct {
	blogService portssvc.BlogSvcFacade
}

func newBlogHandler(bs portssvc.BlogSvcFacade) *blogHandler {
	return &blogHandler{blogService: bs}
}

// registerPublicBlogRoutes registers the storefront blog routes.
func registerPublicBlogRoutes(rg *gin.RouterGroup, blogService portssvc.BlogSvcFacade) {
	h := newBlogHandler(blogService)

	blog := rg.Group("/blog")
	{
		blog.GET("", h.listPublishedPosts)
		blog.GET("/:slug", h.getPublishedPost)
	}
}

// registerAdminBlogRoutes registers the admin blog routes.
func registerAdminBlogRoutes(rg *gin.RouterGroup, blogService portssvc.BlogSvcFacade) {
	h := newBlogHandler(blogService)

	blog := rg.Group("/blog")
	{
		blog.GET("", h.listAllPosts)
		blog.POST("", h.createPost)
		blog.GET("/:postID", h.getPost)
		blog.PUT("/:postID", h.updatePost)
		blog.DELETE("/:postID", h.deletePost)
	}
}

// listPublishedPosts godoc
// @Summary List published blog posts
// @Tags blog
// @Produce json
// @Success 200 {array} dto.BlogPostResponse
// @Failure 500 {object} ErrorResponse
// @Router /blog [get]
func (h *blogHandler) listPublishedPosts(c *gin.Context) {
	h.listPosts(c, true)
}

// listAllPosts godoc
// @Summary List all blog posts including drafts
// @Tags blog
// @Produce json
// @Success 200 {array} dto.BlogPostResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog [get]
func (h *blogHandler) listAllPosts(c *gin.Context) {
	h.listPosts(c, false)
}

func (h *blogHandler) listPosts(c *gin.Context, publishedOnly bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	posts, err := h.blogService.ListPosts(c.Request.Context(), publishedOnly)
	if err != nil {
		logger.Error("Failed to list blog posts", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list blog posts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBlogPostResponse(posts))
}

// getPublishedPost godoc
// @Summary Get a published blog post by slug
// @Tags blog
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} dto.BlogPostResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /blog/{slug} [get]
func (h *blogHandler) getPublishedPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	slug := c.Param("slug")

	post, err := h.blogService.GetPostBySlug(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to get blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve post"})
		return
	}

	// Drafts are not part of the public surface
	if !post.IsPublished {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostResponse(post))
}

// getPost godoc
// @Summary Get a blog post by ID
// @Tags blog
// @Produce json
// @Param postID path string true "Post ID"
// @Success 200 {object} dto.BlogPostResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/{postID} [get]
func (h *blogHandler) getPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("postID")

	post, err := h.blogService.GetPostByID(c.Request.Context(), postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to get blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve post"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostResponse(post))
}

// createPost godoc
// @Summary Create a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param post body dto.CreateBlogPostRequest true "Post details"
// @Success 201 {object} dto.BlogPostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Slug already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog [post]
func (h *blogHandler) createPost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	post, err := h.blogService.CreatePost(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Post slug already exists"})
			return
		}
		logger.Error("Failed to create blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToBlogPostResponse(post))
}

// updatePost godoc
// @Summary Update a blog post
// @Tags blog
// @Accept json
// @Produce json
// @Param postID path string true "Post ID"
// @Param post body dto.UpdateBlogPostRequest true "Post details"
// @Success 200 {object} dto.BlogPostResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/{postID} [put]
func (h *blogHandler) updatePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("postID")

	var req dto.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	post, err := h.blogService.UpdatePost(c.Request.Context(), postID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to update blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update post"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBlogPostResponse(post))
}

// deletePost godoc
// @Summary Delete a blog post
// @Tags blog
// @Param postID path string true "Post ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/blog/{postID} [delete]
func (h *blogHandler) deletePost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	postID := c.Param("postID")

	if err := h.blogService.DeletePost(c.Request.Context(), postID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Post not found"})
			return
		}
		logger.Error("Failed to delete blog post", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete post"})
		return
	}

	c.Status(http.StatusNoContent)
}
