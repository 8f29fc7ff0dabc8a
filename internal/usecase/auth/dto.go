package auth

// RegisterRequest represents the request payload for creating an account.
type RegisterRequest struct {
	Name     string `validate:"required,min=2,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

// LoginRequest represents the request payload for signing in.
type LoginRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// AuthResponse represents the response payload after a successful
// registration or login. Token is the signed session token.
type AuthResponse struct {
	User  UserInfo
	Token string
}

// UserInfo represents a user DTO for API responses. It never carries
// the password hash.
type UserInfo struct {
	ID    int64
	Name  string
	Email string
	Role  string
}
