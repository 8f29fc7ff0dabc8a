package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"

	domain "blog-service/internal/domain/blog"
	pkgerrors "blog-service/pkg/errors"
)

// MockPostRepository is a mock implementation of the PostRepository interface
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Create(ctx context.Context, p *domain.Post) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Update(ctx context.Context, p *domain.Post) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, query string, page, limit int64) ([]domain.Post, int64, error) {
	args := m.Called(ctx, query, page, limit)
	return args.Get(0).([]domain.Post), args.Get(1).(int64), args.Error(2)
}

// MockCommentRepository is a mock implementation of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, c *domain.Comment) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64) ([]domain.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]domain.Comment), args.Error(1)
}

func setupTestService(t *testing.T) (*Service, *MockPostRepository, *MockCommentRepository) {
	mockPosts := new(MockPostRepository)
	mockComments := new(MockCommentRepository)
	logger := zaptest.NewLogger(t)
	svc := New(mockPosts, mockComments, logger)
	return svc, mockPosts, mockComments
}

// ==================== LIST POSTS TESTS ====================

func TestListPosts_Success(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	expected := []domain.Post{
		{ID: 2, Title: "Second", Subtitle: "sub", Author: "Alice", CreatedAt: time.Now()},
		{ID: 1, Title: "First", Subtitle: "sub", Author: "Bob", CreatedAt: time.Now().Add(-time.Hour)},
	}

	mockPosts.On("List", ctx, "", int64(1), int64(10)).Return(expected, int64(2), nil)

	resp, err := svc.ListPosts(ctx, ListPostsRequest{Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, resp.Posts, 2)
	assert.Equal(t, expected[0].ID, resp.Posts[0].ID)
	assert.Equal(t, expected[0].Title, resp.Posts[0].Title)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	assert.Equal(t, int64(1), resp.Pagination.TotalPages)

	mockPosts.AssertExpectations(t)
}

func TestListPosts_DefaultsApplied(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	// Page and limit out of range get clamped before hitting the store
	mockPosts.On("List", ctx, "go", int64(1), int64(100)).Return([]domain.Post{}, int64(0), nil)

	resp, err := svc.ListPosts(ctx, ListPostsRequest{Query: "go", Page: -5, Limit: 1000})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Empty(t, resp.Posts)

	mockPosts.AssertExpectations(t)
}

func TestListPosts_InvalidSearchQuery(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	mockPosts.On("List", ctx, "bad;query", int64(1), int64(10)).
		Return([]domain.Post{}, int64(0), errors.New("invalid search query"))

	resp, err := svc.ListPosts(ctx, ListPostsRequest{Query: "bad;query", Page: 1, Limit: 10})

	assert.Nil(t, resp)
	var verr *pkgerrors.ValidationError
	assert.ErrorAs(t, err, &verr)
}

// ==================== GET POST TESTS ====================

func TestGetPost_Success(t *testing.T) {
	svc, mockPosts, mockComments := setupTestService(t)
	ctx := context.Background()

	post := &domain.Post{
		ID:       1,
		Title:    "Hello",
		Subtitle: "world",
		Body:     "# Heading\n\nSome **bold** text.",
		AuthorID: 7,
		Author:   "Alice",
	}
	comments := []domain.Comment{
		{ID: 1, PostID: 1, Author: "Bob", Text: "Nice post"},
	}

	mockPosts.On("GetByID", ctx, int64(1)).Return(post, nil)
	mockComments.On("ListByPost", ctx, int64(1)).Return(comments, nil)

	resp, err := svc.GetPost(ctx, GetPostRequest{ID: 1})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, post.Body, resp.Body)
	assert.Contains(t, resp.BodyHTML, "<h1")
	assert.Contains(t, resp.BodyHTML, "<strong>bold</strong>")
	assert.Len(t, resp.Comments, 1)
	assert.Equal(t, "Bob", resp.Comments[0].Author)

	mockPosts.AssertExpectations(t)
	mockComments.AssertExpectations(t)
}

func TestGetPost_NotFound(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	mockPosts.On("GetByID", ctx, int64(99)).
		Return(nil, pkgerrors.NewNotFoundError("post", ""))

	resp, err := svc.GetPost(ctx, GetPostRequest{ID: 99})

	assert.Nil(t, resp)
	var nferr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

func TestGetPost_InvalidID(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.GetPost(ctx, GetPostRequest{ID: 0})

	assert.Nil(t, resp)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid post id")
}

// ==================== CREATE POST TESTS ====================

func TestCreatePost_Success(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	req := CreatePostRequest{
		AuthorID: 7,
		Title:    "Hello",
		Subtitle: "world",
		Body:     "Some text",
		ImageURL: "https://example.com/cover.png",
	}

	mockPosts.On("Create", ctx, mock.MatchedBy(func(p *domain.Post) bool {
		return p.Title == req.Title && p.AuthorID == req.AuthorID
	})).Return(int64(3), nil)

	resp, err := svc.CreatePost(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(3), resp.ID)

	mockPosts.AssertExpectations(t)
}

func TestCreatePost_ValidationError_MissingFields(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.CreatePost(ctx, CreatePostRequest{AuthorID: 7})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "Title is required")
	assert.Contains(t, err.Error(), "Body is required")

	mockPosts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreatePost_ValidationError_BadImageURL(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	req := CreatePostRequest{
		AuthorID: 7,
		Title:    "Hello",
		Subtitle: "world",
		Body:     "Some text",
		ImageURL: "not a url",
	}

	resp, err := svc.CreatePost(ctx, req)

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "ImageURL must be a valid URL")
}

// ==================== UPDATE POST TESTS ====================

func TestUpdatePost_Success(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	req := UpdatePostRequest{
		ID:       1,
		Title:    "Updated",
		Subtitle: "subtitle",
		Body:     "New body",
		ImageURL: "https://example.com/new.png",
	}

	mockPosts.On("Update", ctx, mock.MatchedBy(func(p *domain.Post) bool {
		return p.ID == req.ID && p.Title == req.Title
	})).Return(int64(1), nil)

	resp, err := svc.UpdatePost(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)

	mockPosts.AssertExpectations(t)
}

func TestUpdatePost_NotFound(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	req := UpdatePostRequest{
		ID:       42,
		Title:    "Updated",
		Subtitle: "subtitle",
		Body:     "New body",
		ImageURL: "https://example.com/new.png",
	}

	mockPosts.On("Update", ctx, mock.Anything).
		Return(int64(0), pkgerrors.NewNotFoundError("post", ""))

	resp, err := svc.UpdatePost(ctx, req)

	assert.Nil(t, resp)
	var nferr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &nferr)
}

// ==================== DELETE POST TESTS ====================

func TestDeletePost_Success(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	mockPosts.On("Delete", ctx, int64(1)).Return(int64(1), nil)

	resp, err := svc.DeletePost(ctx, DeletePostRequest{ID: 1})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(1), resp.ID)

	mockPosts.AssertExpectations(t)
}

func TestDeletePost_InvalidID(t *testing.T) {
	svc, _, _ := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.DeletePost(ctx, DeletePostRequest{ID: 0})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "invalid post id")
}

// ==================== ADD COMMENT TESTS ====================

func TestAddComment_Success(t *testing.T) {
	svc, mockPosts, mockComments := setupTestService(t)
	ctx := context.Background()

	req := AddCommentRequest{PostID: 1, AuthorID: 7, Text: "Great read"}

	mockPosts.On("GetByID", ctx, int64(1)).Return(&domain.Post{ID: 1}, nil)
	mockComments.On("Create", ctx, mock.MatchedBy(func(c *domain.Comment) bool {
		return c.PostID == req.PostID && c.AuthorID == req.AuthorID && c.Text == req.Text
	})).Return(int64(5), nil)

	resp, err := svc.AddComment(ctx, req)

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, int64(5), resp.ID)

	mockPosts.AssertExpectations(t)
	mockComments.AssertExpectations(t)
}

func TestAddComment_PostNotFound(t *testing.T) {
	svc, mockPosts, mockComments := setupTestService(t)
	ctx := context.Background()

	mockPosts.On("GetByID", ctx, int64(99)).
		Return(nil, pkgerrors.NewNotFoundError("post", ""))

	resp, err := svc.AddComment(ctx, AddCommentRequest{PostID: 99, AuthorID: 7, Text: "hello"})

	assert.Nil(t, resp)
	var nferr *pkgerrors.NotFoundError
	assert.ErrorAs(t, err, &nferr)

	mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddComment_ValidationError_EmptyText(t *testing.T) {
	svc, mockPosts, _ := setupTestService(t)
	ctx := context.Background()

	resp, err := svc.AddComment(ctx, AddCommentRequest{PostID: 1, AuthorID: 7})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Contains(t, err.Error(), "Text is required")

	mockPosts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
