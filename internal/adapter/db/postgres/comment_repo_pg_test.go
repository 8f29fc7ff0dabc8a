package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"

	"blog-service/internal/domain/blog"
)

func seedComment(t *testing.T, db *gorm.DB, postID, authorID int64, text string, createdAt time.Time) int64 {
	model := CommentSchema{
		PostID:    postID,
		AuthorID:  authorID,
		Text:      text,
		CreatedAt: createdAt,
	}
	require.NoError(t, db.Create(&model).Error)
	return model.ID
}

func TestCommentRepoPG_Create_Success(t *testing.T) {
	db := setupTestDB(t)
	logger := zaptest.NewLogger(t)
	repo := NewCommentRepoPG(db, logger)

	authorID := seedAuthor(t, db, "Alice", "alice@example.com")
	postID := seedPost(t, db, authorID, "A post", time.Now().UTC())

	id, err := repo.Create(context.Background(), &blog.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Text:     "First!",
	})

	require.NoError(t, err)
	assert.Greater(t, id, int64(0))
}

func TestCommentRepoPG_ListByPost_OldestFirst(t *testing.T) {
	db := setupTestDB(t)
	logger := zaptest.NewLogger(t)
	repo := NewCommentRepoPG(db, logger)

	alice := seedAuthor(t, db, "Alice", "alice@example.com")
	bob := seedAuthor(t, db, "Bob", "bob@example.com")
	postID := seedPost(t, db, alice, "A post", time.Now().UTC())

	now := time.Now().UTC()
	seedComment(t, db, postID, bob, "Second comment", now)
	seedComment(t, db, postID, alice, "First comment", now.Add(-time.Hour))

	comments, err := repo.ListByPost(context.Background(), postID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, "First comment", comments[0].Text)
	assert.Equal(t, "Alice", comments[0].Author)
	assert.Equal(t, "Second comment", comments[1].Text)
	assert.Equal(t, "Bob", comments[1].Author)
}

func TestCommentRepoPG_ListByPost_Empty(t *testing.T) {
	db := setupTestDB(t)
	logger := zaptest.NewLogger(t)
	repo := NewCommentRepoPG(db, logger)

	alice := seedAuthor(t, db, "Alice", "alice@example.com")
	postID := seedPost(t, db, alice, "A post", time.Now().UTC())

	comments, err := repo.ListByPost(context.Background(), postID)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentRepoPG_ListByPost_ScopedToPost(t *testing.T) {
	db := setupTestDB(t)
	logger := zaptest.NewLogger(t)
	repo := NewCommentRepoPG(db, logger)

	alice := seedAuthor(t, db, "Alice", "alice@example.com")
	postA := seedPost(t, db, alice, "Post A", time.Now().UTC())
	postB := seedPost(t, db, alice, "Post B", time.Now().UTC())

	now := time.Now().UTC()
	seedComment(t, db, postA, alice, "On A", now)
	seedComment(t, db, postB, alice, "On B", now)

	comments, err := repo.ListByPost(context.Background(), postA)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "On A", comments[0].Text)
}
