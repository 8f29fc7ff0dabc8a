package auth

import "context"

// Usecase defines the interface for authentication business logic.
type Usecase interface {
	Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, in LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*UserInfo, error)
}
