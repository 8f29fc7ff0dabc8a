package postgres

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"blog-service/internal/domain/blog"
	pkgerrors "blog-service/pkg/errors"
	"blog-service/pkg/security"
)

// PostRepoPG implements the post store using PostgreSQL and GORM.
type PostRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPostRepoPG creates a new instance of PostRepoPG.
func NewPostRepoPG(db *gorm.DB, log *zap.Logger) *PostRepoPG {
	return &PostRepoPG{db: db, log: log}
}

// Create inserts a new post into the database.
func (r *PostRepoPG) Create(ctx context.Context, p *blog.Post) (int64, error) {
	if p == nil {
		return 0, errors.New("post cannot be nil")
	}

	model := PostSchema{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Body:     p.Body,
		ImageURL: p.ImageURL,
		AuthorID: p.AuthorID,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		r.log.Error("failed to create post in db", zap.Error(err), zap.String("title", p.Title))
		return 0, fmt.Errorf("failed to create post: %w", err)
	}

	r.log.Info("post created in db", zap.Int64("id", model.ID))
	return model.ID, nil
}

// Update updates an existing post in the database.
func (r *PostRepoPG) Update(ctx context.Context, p *blog.Post) (int64, error) {
	if p == nil {
		return 0, errors.New("post cannot be nil")
	}

	result := r.db.WithContext(ctx).Model(&PostSchema{}).Where("id = ?", p.ID).Updates(map[string]any{
		"title":     p.Title,
		"subtitle":  p.Subtitle,
		"body":      p.Body,
		"image_url": p.ImageURL,
	})
	if result.Error != nil {
		r.log.Error("failed to update post in db", zap.Error(result.Error), zap.Int64("id", p.ID))
		return 0, fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warn("post not found on update", zap.Int64("id", p.ID))
		return 0, pkgerrors.NewNotFoundError("post", fmt.Sprintf("post not found: id=%d", p.ID))
	}

	r.log.Info("post updated in db", zap.Int64("id", p.ID))
	return p.ID, nil
}

// Delete removes a post from the database by ID. Comments are removed
// by the ON DELETE CASCADE constraint.
func (r *PostRepoPG) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, errors.New("invalid post id")
	}

	result := r.db.WithContext(ctx).Delete(&PostSchema{}, id)
	if result.Error != nil {
		r.log.Error("failed to delete post in db", zap.Error(result.Error), zap.Int64("id", id))
		return 0, fmt.Errorf("failed to delete post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		r.log.Warn("post not found on delete", zap.Int64("id", id))
		return 0, pkgerrors.NewNotFoundError("post", fmt.Sprintf("post not found: id=%d", id))
	}

	r.log.Info("post deleted in db", zap.Int64("id", id))
	return id, nil
}

// GetByID retrieves a post with its author from the database.
func (r *PostRepoPG) GetByID(ctx context.Context, id int64) (*blog.Post, error) {
	var model PostSchema
	if err := r.db.WithContext(ctx).Preload("Author").First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("post not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("post", fmt.Sprintf("post not found: id=%d", id))
		}
		r.log.Error("failed to get post from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return toDomainPost(&model), nil
}

// List retrieves posts with pagination and optional title/subtitle
// search, newest first. The search query is validated before being
// used in a LIKE expression.
func (r *PostRepoPG) List(ctx context.Context, query string, page, limit int64) ([]blog.Post, int64, error) {
	validated, err := security.ValidateSearchQuery(query)
	if err != nil {
		r.log.Warn("invalid search query", zap.String("query", query), zap.Error(err))
		return nil, 0, fmt.Errorf("invalid search query: %w", err)
	}

	tx := r.db.WithContext(ctx).Model(&PostSchema{})
	if validated != "" {
		like := "%" + security.SanitizeSearchString(validated) + "%"
		tx = tx.Where("title LIKE ? OR subtitle LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.log.Error("failed to count posts in db", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to count posts: %w", err)
	}

	var models []PostSchema
	if err := tx.Preload("Author").
		Order("created_at DESC").
		Offset(int((page - 1) * limit)).
		Limit(int(limit)).
		Find(&models).Error; err != nil {
		r.log.Error("failed to list posts from db", zap.Error(err), zap.String("query", validated))
		return nil, 0, fmt.Errorf("failed to list posts: %w", err)
	}

	posts := make([]blog.Post, len(models))
	for i, model := range models {
		posts[i] = *toDomainPost(&model)
	}

	return posts, total, nil
}

func toDomainPost(model *PostSchema) *blog.Post {
	return &blog.Post{
		ID:        model.ID,
		Title:     model.Title,
		Subtitle:  model.Subtitle,
		Body:      model.Body,
		ImageURL:  model.ImageURL,
		AuthorID:  model.AuthorID,
		Author:    model.Author.Name,
		CreatedAt: model.CreatedAt,
	}
}
