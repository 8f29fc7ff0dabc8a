package auth

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	domain "blog-service/internal/domain/user"
	pkgerrors "blog-service/pkg/errors"
	"blog-service/pkg/security"

	"github.com/go-playground/validator/v10"
)

// Repository defines the interface for credential store access.
// It abstracts the data layer, allowing different implementations
// to be used interchangeably.
type Repository interface {
	Create(ctx context.Context, u *domain.User) (int64, error)          // Create a new user, rejecting duplicate emails
	GetByID(ctx context.Context, id int64) (*domain.User, error)        // Retrieve user by ID
	GetByEmail(ctx context.Context, email string) (*domain.User, error) // Retrieve user by email, nil when absent
}

// SessionManager defines the session transitions the flow needs.
type SessionManager interface {
	Login(ctx context.Context, userID int64) (string, error)
	Logout(ctx context.Context, token string) error
	Resolve(ctx context.Context, token string) (int64, bool, error)
}

// Service implements the registration/login flow. It orchestrates the
// credential store, the password hasher and the session manager.
type Service struct {
	repo     Repository          // Credential store
	sessions SessionManager      // Session manager
	log      *zap.Logger         // Logger for structured logging
	validate *validator.Validate // Validator for request validation
}

// New creates a new instance of Service.
func New(r Repository, s SessionManager, log *zap.Logger) *Service {
	return &Service{repo: r, sessions: s, log: log, validate: validator.New()}
}

// formatValidationError converts validator.ValidationErrors into a human-readable error.
func formatValidationError(err error) error {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range validationErrors {
			switch e.Tag() {
			case "required":
				messages = append(messages, fmt.Sprintf("%s is required", e.Field()))
			case "email":
				messages = append(messages, fmt.Sprintf("%s must be a valid email", e.Field()))
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

// Register creates a new account and logs the user in. No store write
// happens before validation and the uniqueness check pass, and no
// session is created on any failure.
func (s *Service) Register(ctx context.Context, in RegisterRequest) (*AuthResponse, error) {
	s.log.Info("registering user", zap.String("name", in.Name), zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	existing, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to check existing email", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to validate email uniqueness", err)
	}
	if existing != nil {
		s.log.Warn("email already registered", zap.String("email", in.Email))
		return nil, pkgerrors.ErrDuplicateEmail
	}

	hash, err := security.HashPassword(in.Password)
	if err != nil {
		s.log.Error("failed to hash password", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to hash password", err)
	}

	u := &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	// The store's unique constraint still rejects a duplicate that
	// raced past the lookup above.
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		s.log.Error("failed to create user", zap.Error(err))
		return nil, err
	}
	u.ID = id

	token, err := s.sessions.Login(ctx, id)
	if err != nil {
		s.log.Error("failed to create session after registration", zap.Int64("user_id", id), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to create session", err)
	}

	return &AuthResponse{User: toUserInfo(u), Token: token}, nil
}

// Login verifies credentials and creates a session. An unknown email
// fails with ErrUnknownEmail, a wrong password with ErrInvalidPassword;
// neither creates a session.
func (s *Service) Login(ctx context.Context, in LoginRequest) (*AuthResponse, error) {
	s.log.Info("login attempt", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return nil, formatValidationError(err)
	}

	u, err := s.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		s.log.Error("failed to look up user", zap.String("email", in.Email), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to look up user", err)
	}
	if u == nil {
		s.log.Warn("login with unknown email", zap.String("email", in.Email))
		return nil, pkgerrors.ErrUnknownEmail
	}

	if err := security.CheckPassword(u.PasswordHash, in.Password); err != nil {
		s.log.Warn("login with wrong password", zap.Int64("user_id", u.ID))
		return nil, pkgerrors.ErrInvalidPassword
	}

	token, err := s.sessions.Login(ctx, u.ID)
	if err != nil {
		s.log.Error("failed to create session", zap.Int64("user_id", u.ID), zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to create session", err)
	}

	s.log.Info("login succeeded", zap.Int64("user_id", u.ID))
	return &AuthResponse{User: toUserInfo(u), Token: token}, nil
}

// Logout destroys the caller's session. Calling it without a valid
// session is a no-op.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.sessions.Logout(ctx, token)
}

// CurrentUser resolves the token to the logged-in user, or nil for the
// anonymous state. Safe to call on every request.
func (s *Service) CurrentUser(ctx context.Context, token string) (*UserInfo, error) {
	userID, ok, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		s.log.Error("failed to resolve session", zap.Error(err))
		return nil, pkgerrors.NewInternalError("failed to resolve session", err)
	}
	if !ok {
		return nil, nil
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		s.log.Error("failed to load session user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	info := toUserInfo(u)
	return &info, nil
}

func toUserInfo(u *domain.User) UserInfo {
	return UserInfo{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
