package blog

import (
	"time"

	domain "blog-service/internal/domain/blog"
)

// CreatePostRequest represents the request payload for creating a post.
// AuthorID is taken from the authenticated identity, not client input.
type CreatePostRequest struct {
	AuthorID int64  `validate:"required"`
	Title    string `validate:"required,min=3,max=200"`
	Subtitle string `validate:"required,min=3,max=200"`
	Body     string `validate:"required"`
	ImageURL string `validate:"required,url"`
}

// CreatePostResponse represents the response payload after creating a post.
type CreatePostResponse struct {
	ID int64
}

// UpdatePostRequest represents the request payload for editing a post.
type UpdatePostRequest struct {
	ID       int64  `validate:"required"`
	Title    string `validate:"required,min=3,max=200"`
	Subtitle string `validate:"required,min=3,max=200"`
	Body     string `validate:"required"`
	ImageURL string `validate:"required,url"`
}

// UpdatePostResponse represents the response payload after editing a post.
type UpdatePostResponse struct {
	ID int64
}

// DeletePostRequest represents the request payload for deleting a post.
type DeletePostRequest struct {
	ID int64
}

// DeletePostResponse represents the response payload after deleting a post.
type DeletePostResponse struct {
	ID int64
}

// GetPostRequest represents the request payload for retrieving a post.
type GetPostRequest struct {
	ID int64
}

// GetPostResponse represents a post with rendered body and comments.
type GetPostResponse struct {
	ID        int64
	Title     string
	Subtitle  string
	Body      string // markdown source
	BodyHTML  string // rendered HTML
	ImageURL  string
	AuthorID  int64
	Author    string
	CreatedAt time.Time
	Comments  []Comment
}

// Comment represents a comment DTO for API responses.
type Comment struct {
	ID        int64
	Author    string
	Text      string
	CreatedAt time.Time
}

// AddCommentRequest represents the request payload for commenting on a
// post. AuthorID is taken from the authenticated identity.
type AddCommentRequest struct {
	PostID   int64  `validate:"required"`
	AuthorID int64  `validate:"required"`
	Text     string `validate:"required,min=1,max=2000"`
}

// AddCommentResponse represents the response payload after commenting.
type AddCommentResponse struct {
	ID int64
}

// ListPostsRequest represents the request payload for listing posts.
// It supports pagination and search functionality.
type ListPostsRequest struct {
	Query string
	Page  int64
	Limit int64
}

// ListPostsResponse represents the response payload for post listing.
type ListPostsResponse struct {
	Posts      []PostSummary
	Pagination *domain.Pagination
}

// PostSummary represents a post in list responses, without the body.
type PostSummary struct {
	ID        int64
	Title     string
	Subtitle  string
	ImageURL  string
	Author    string
	CreatedAt time.Time
}
