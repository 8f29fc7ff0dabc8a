package contact

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"blog-service/internal/adapter/mail"
	pkgerrors "blog-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// SendMessageRequest represents a submitted contact form.
type SendMessageRequest struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	Phone   string `validate:"omitempty,max=30"`
	Message string `validate:"required,min=10,max=5000"`
}

// Usecase defines the interface for contact form business logic.
type Usecase interface {
	SendMessage(ctx context.Context, in SendMessageRequest) error
}

// Service delivers contact form submissions to the configured
// recipient mailbox.
type Service struct {
	mailer    mail.Mailer
	recipient string
	log       *zap.Logger
	validate  *validator.Validate
}

// New creates a new instance of Service.
func New(mailer mail.Mailer, recipient string, log *zap.Logger) *Service {
	return &Service{mailer: mailer, recipient: recipient, log: log, validate: validator.New()}
}

// SendMessage validates the submission and sends it by email. Delivery
// failure is an internal error; the caller sees a 5xx, not a silent drop.
func (s *Service) SendMessage(ctx context.Context, in SendMessageRequest) error {
	s.log.Info("contact message received", zap.String("email", in.Email))

	if err := s.validate.Struct(in); err != nil {
		s.log.Warn("validate failed", zap.Error(err))
		return formatValidationError(err)
	}

	body := fmt.Sprintf("Name: %s\nEmail: %s\nPhone: %s\nMessage: %s\n",
		in.Name, in.Email, in.Phone, in.Message)

	if err := s.mailer.Send(s.recipient, "New contact form message", body); err != nil {
		s.log.Error("failed to deliver contact message", zap.Error(err))
		return pkgerrors.NewInternalError("failed to deliver contact message", err)
	}

	return nil
}

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
