package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-service/internal/domain/blog"
)

// CommentRepoPG implements the comment store using PostgreSQL and GORM.
type CommentRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewCommentRepoPG creates a new instance of CommentRepoPG.
func NewCommentRepoPG(db *gorm.DB, log *zap.Logger) *CommentRepoPG {
	return &CommentRepoPG{db: db, log: log}
}

// Create inserts a new comment into the database.
func (r *CommentRepoPG) Create(ctx context.Context, c *blog.Comment) (int64, error) {
	if c == nil {
		return 0, errors.New("comment cannot be nil")
	}

	model := CommentSchema{
		PostID:   c.PostID,
		AuthorID: c.AuthorID,
		Text:     c.Text,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create comment in db", zap.Error(err), zap.Int64("post_id", c.PostID))
		return 0, fmt.Errorf("failed to create comment: %w", err)
	}

	r.log.Info("comment created in db", zap.Int64("id", model.ID), zap.Int64("post_id", c.PostID))
	return model.ID, nil
}

// ListByPost retrieves all comments for a post with their authors,
// oldest first.
func (r *CommentRepoPG) ListByPost(ctx context.Context, postID int64) ([]blog.Comment, error) {
	var models []CommentSchema
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&models).Error; err != nil {
		r.log.Error("failed to list comments from db", zap.Error(err), zap.Int64("post_id", postID))
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	comments := make([]blog.Comment, len(models))
	for i, model := range models {
		comments[i] = blog.Comment{
			ID:        model.ID,
			PostID:    model.PostID,
			AuthorID:  model.AuthorID,
			Author:    model.Author.Name,
			Text:      model.Text,
			CreatedAt: model.CreatedAt,
		}
	}

	return comments, nil
}
