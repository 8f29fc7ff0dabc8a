package blog

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "blog-service/internal/domain/blog"
	pkgerrors "blog-service/pkg/errors"
	"blog-service/pkg/markdown"

	"github.com/go-playground/validator/v10"
)

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (int64, error)
	Update(ctx context.Context, p *domain.Post) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	List(ctx context.Context, query string, page, limit int64) ([]domain.Post, int64, error)
}

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (int64, error)
	ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error)
}

// Service implements the business logic for post and comment
// operations. Access control happens in the HTTP layer; the service
// trusts the author IDs it is handed.
type Service struct {
	posts    PostRepository
	comments CommentRepository
	log      *zap.Logger
	validate *validator.Validate
}

// New creates a new instance of Service.
func New(posts PostRepository, comments CommentRepository, log *zap.Logger) *Service {
	return &Service{posts: posts, comments: comments, log: log, validate: validator.New()}
}

func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "url":
				messages = append(messages, fmt.Sprintf("%s must be a valid URL", e.Field()))
			case "min":
				messages = append(messages, fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param()))
			case "max":
				messages = append(messages, fmt.Sprintf("%s must be at most %s characters", e.Field(), e.Param()))
			default:
				messages = append(messages, fmt.Sprintf("%s is invalid", e.Field()))
			}
		}
		return pkgerrors.NewValidationError("", strings.Join(messages, ", "))
	}
	return err
}

// ListPosts retrieves a paginated list of posts with optional search.
func (s *Service) ListPosts(ctx context.Context, in ListPostsRequest) (*ListPostsResponse, error) {
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.Limit <= 0 {
		in.Limit = 10
	}
	if in.Limit > 100 {
		in.Limit = 100
	}

	s.log.Info("listing posts", zap.String("query", in.Query), zap.Int64("page", in.Page), zap.Int64("limit", in.Limit))

	posts, total, err := s.posts.List(ctx, in.Query, in.Page, in.Limit)
	if err != nil {
		if strings.Contains(err.Error(), "invalid search query") {
			s.log.Warn("invalid search query", zap.String("query", in.Query), zap.Error(err))
			return nil, pkgerrors.NewValidationError("query", "invalid search query")
		}
		s.log.Error("failed to list posts", zap.Error(err))
		return nil, err
	}

	summaries := make([]PostSummary, len(posts))
	for i, p := range posts {
		summaries[i] = PostSummary{
			ID:        p.ID,
			Title:     p.Title,
			Subtitle:  p.Subtitle,
			ImageURL:  p.ImageURL,
			Author:    p.Author,
			CreatedAt: p.CreatedAt,
		}
	}

	return &ListPostsResponse{
		Posts:      summaries,
		Pagination: domain.NewPagination(total, in.Page, in.Limit),
	}, nil
}

// GetPost retrieves a post with rendered markdown body and comments.
func (s *Service) GetPost(ctx context.Context, in GetPostRequest) (*GetPostResponse, error) {
	if in.ID <= 0 {
		return nil, pkgerrors.NewValidationError("id", "invalid post id")
	}

	p, err := s.posts.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	bodyHTML, err := markdown.Render(p.Body)
	if err != nil {
		s.log.Error("failed to render post body", zap.Int64("id", p.ID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to render post body", err)
	}

	rows, err := s.comments.ListByPost(ctx, p.ID)
	if err != nil {
		s.log.Error("failed to load comments", zap.Int64("post_id", p.ID), zap.Error(err))
		return nil, err
	}

	comments := make([]Comment, len(rows))
	for i, c := range rows {
		comments[i] = Comment{
			ID:        c.ID,
			Author:    c.Author,
			Text:      c.Text,
			CreatedAt: c.CreatedAt,
		}
	}

	return &GetPostResponse{
		ID:        p.ID,
		Title:     p.Title,
		Subtitle:  p.Subtitle,
		Body:      p.Body,
		BodyHTML:  bodyHTML,
		ImageURL:  p.ImageURL,
		AuthorID:  p.AuthorID,
		Author:    p.Author,
		CreatedAt: p.CreatedAt,
		Comments:  comments,
	}, nil
}

// CreatePost creates a new post after validating the request.
func (s *Service) CreatePost(ctx context.Context, in CreatePostRequest) (*CreatePostResponse, error) {
	s.log.Info("creating post", zap.String("title", in.Title), zap.Int64("author_id", in.AuthorID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	id, err := s.posts.Create(ctx, &domain.Post{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImageURL: in.ImageURL,
		AuthorID: in.AuthorID,
	})
	if err != nil {
		s.log.Error("failed to create post", zap.Error(err))
		return nil, err
	}

	return &CreatePostResponse{ID: id}, nil
}

// UpdatePost edits an existing post after validating the request.
func (s *Service) UpdatePost(ctx context.Context, in UpdatePostRequest) (*UpdatePostResponse, error) {
	s.log.Info("updating post", zap.Int64("id", in.ID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	id, err := s.posts.Update(ctx, &domain.Post{
		ID:       in.ID,
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImageURL: in.ImageURL,
	})
	if err != nil {
		s.log.Error("failed to update post", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &UpdatePostResponse{ID: id}, nil
}

// DeletePost deletes a post by ID.
func (s *Service) DeletePost(ctx context.Context, in DeletePostRequest) (*DeletePostResponse, error) {
	s.log.Info("deleting post", zap.Int64("id", in.ID))

	if in.ID <= 0 {
		return nil, pkgerrors.NewValidationError("id", "invalid post id")
	}

	id, err := s.posts.Delete(ctx, in.ID)
	if err != nil {
		s.log.Error("failed to delete post", zap.Int64("id", in.ID), zap.Error(err))
		return nil, err
	}

	return &DeletePostResponse{ID: id}, nil
}

// AddComment attaches a comment to an existing post.
func (s *Service) AddComment(ctx context.Context, in AddCommentRequest) (*AddCommentResponse, error) {
	s.log.Info("adding comment", zap.Int64("post_id", in.PostID), zap.Int64("author_id", in.AuthorID))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	// Reject comments on posts that do not exist.
	if _, err := s.posts.GetByID(ctx, in.PostID); err != nil {
		return nil, err
	}

	id, err := s.comments.Create(ctx, &domain.Comment{
		PostID:   in.PostID,
		AuthorID: in.AuthorID,
		Text:     in.Text,
	})
	if err != nil {
		s.log.Error("failed to create comment", zap.Int64("post_id", in.PostID), zap.Error(err))
		return nil, err
	}

	return &AddCommentResponse{ID: id}, nil
}
