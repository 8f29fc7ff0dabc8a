package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog-service/internal/adapter/gin/middleware"
	"blog-service/internal/usecase/blog"
)

// PostHandler handles HTTP requests for posts and comments.
type PostHandler struct {
	uc  blog.Usecase
	log *zap.Logger
}

// NewPostHandler creates a new PostHandler instance
func NewPostHandler(uc blog.Usecase, log *zap.Logger) *PostHandler {
	return &PostHandler{
		uc:  uc,
		log: log,
	}
}

// CreatePostRequest represents the HTTP request body for creating or
// editing a post
type CreatePostRequest struct {
	Title    string `json:"title" binding:"required,min=3,max=200"`
	Subtitle string `json:"subtitle" binding:"required,min=3,max=200"`
	Body     string `json:"body" binding:"required"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

// AddCommentRequest represents the HTTP request body for commenting
type AddCommentRequest struct {
	Text string `json:"text" binding:"required,min=1,max=2000"`
}

// PostSummaryResponse represents a post in list responses
type PostSummaryResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Subtitle  string    `json:"subtitle"`
	ImageURL  string    `json:"image_url"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentResponse represents a comment in post responses
type CommentResponse struct {
	ID        int64     `json:"id"`
	Author    string    `json:"author"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// PostResponse represents a full post with comments
type PostResponse struct {
	ID        int64             `json:"id"`
	Title     string            `json:"title"`
	Subtitle  string            `json:"subtitle"`
	Body      string            `json:"body"`
	BodyHTML  string            `json:"body_html"`
	ImageURL  string            `json:"image_url"`
	Author    string            `json:"author"`
	CreatedAt time.Time         `json:"created_at"`
	Comments  []CommentResponse `json:"comments"`
}

// ListPostsResponse represents the HTTP response for listing posts
type ListPostsResponse struct {
	Posts      []PostSummaryResponse `json:"posts"`
	Pagination *Pagination           `json:"pagination,omitempty"`
}

// Pagination represents pagination information
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int64 `json:"page"`
	Limit      int64 `json:"limit"`
	TotalPages int64 `json:"total_pages"`
}

// ListPosts handles GET /v1/posts
func (h *PostHandler) ListPosts(c *gin.Context) {
	query := c.DefaultQuery("query", "")
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "10")

	page, err := strconv.ParseInt(pageStr, 10, 64)
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.ParseInt(limitStr, 10, 64)
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	resp, err := h.uc.ListPosts(c.Request.Context(), blog.ListPostsRequest{
		Query: query,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		h.log.Error("list posts failed", zap.Error(err))
		respondError(c, err)
		return
	}

	posts := make([]PostSummaryResponse, len(resp.Posts))
	for i, p := range resp.Posts {
		posts[i] = PostSummaryResponse{
			ID:        p.ID,
			Title:     p.Title,
			Subtitle:  p.Subtitle,
			ImageURL:  p.ImageURL,
			Author:    p.Author,
			CreatedAt: p.CreatedAt,
		}
	}

	var pagination *Pagination
	if resp.Pagination != nil {
		pagination = &Pagination{
			Total:      resp.Pagination.Total,
			Page:       resp.Pagination.Page,
			Limit:      resp.Pagination.Limit,
			TotalPages: resp.Pagination.TotalPages,
		}
	}

	c.JSON(http.StatusOK, ListPostsResponse{
		Posts:      posts,
		Pagination: pagination,
	})
}

// GetPost handles GET /v1/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.GetPost(c.Request.Context(), blog.GetPostRequest{ID: id})
	if err != nil {
		h.log.Warn("get post failed", zap.Int64("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	comments := make([]CommentResponse, len(resp.Comments))
	for i, cm := range resp.Comments {
		comments[i] = CommentResponse{
			ID:        cm.ID,
			Author:    cm.Author,
			Text:      cm.Text,
			CreatedAt: cm.CreatedAt,
		}
	}

	c.JSON(http.StatusOK, PostResponse{
		ID:        resp.ID,
		Title:     resp.Title,
		Subtitle:  resp.Subtitle,
		Body:      resp.Body,
		BodyHTML:  resp.BodyHTML,
		ImageURL:  resp.ImageURL,
		Author:    resp.Author,
		CreatedAt: resp.CreatedAt,
		Comments:  comments,
	})
}

// CreatePost handles POST /v1/posts. Admin only; the author is the
// authenticated user.
func (h *PostHandler) CreatePost(c *gin.Context) {
	info, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "You need to log in or register first",
		})
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid create post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.CreatePost(c.Request.Context(), blog.CreatePostRequest{
		AuthorID: info.ID,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Body,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.log.Error("create post failed", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": resp.ID,
	})
}

// UpdatePost handles PUT /v1/posts/:id. Admin only, same policy as
// create and delete.
func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid update post request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.UpdatePost(c.Request.Context(), blog.UpdatePostRequest{
		ID:       id,
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Body:     req.Body,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.log.Warn("update post failed", zap.Int64("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": resp.ID,
	})
}

// DeletePost handles DELETE /v1/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	resp, err := h.uc.DeletePost(c.Request.Context(), blog.DeletePostRequest{ID: id})
	if err != nil {
		h.log.Warn("delete post failed", zap.Int64("id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id": resp.ID,
	})
}

// AddComment handles POST /v1/posts/:id/comments. Requires
// authentication but not the admin role.
func (h *PostHandler) AddComment(c *gin.Context) {
	info, ok := middleware.CurrentUserFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "You need to log in or register to comment",
		})
		return
	}

	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid comment request", zap.Error(err))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_failed",
			Message: err.Error(),
		})
		return
	}

	resp, err := h.uc.AddComment(c.Request.Context(), blog.AddCommentRequest{
		PostID:   id,
		AuthorID: info.ID,
		Text:     req.Text,
	})
	if err != nil {
		h.log.Warn("add comment failed", zap.Int64("post_id", id), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": resp.ID,
	})
}

func (h *PostHandler) parseID(c *gin.Context) (int64, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		h.log.Warn("invalid post ID", zap.String("id", idStr))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: "Post ID must be a valid number",
		})
		return 0, false
	}
	return id, true
}
