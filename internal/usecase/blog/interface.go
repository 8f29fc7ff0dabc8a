package blog

import "context"

// Usecase defines the interface for blog business logic operations.
type Usecase interface {
	ListPosts(ctx context.Context, in ListPostsRequest) (*ListPostsResponse, error)
	GetPost(ctx context.Context, in GetPostRequest) (*GetPostResponse, error)
	CreatePost(ctx context.Context, in CreatePostRequest) (*CreatePostResponse, error)
	UpdatePost(ctx context.Context, in UpdatePostRequest) (*UpdatePostResponse, error)
	DeletePost(ctx context.Context, in DeletePostRequest) (*DeletePostResponse, error)
	AddComment(ctx context.Context, in AddCommentRequest) (*AddCommentResponse, error)
}
