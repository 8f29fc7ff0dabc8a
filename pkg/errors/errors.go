package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Common application errors
var (
	ErrDuplicateEmail  = NewAlreadyExistsError("email", "email is already registered")
	ErrUnknownEmail    = NewAuthError("unknown_email", "that email does not exist")
	ErrInvalidPassword = NewAuthError("invalid_password", "password incorrect")
	ErrUnauthorized    = NewAuthError("unauthorized", "authentication required")
	ErrForbidden       = &AuthError{Code: "forbidden", Message: "admin access required", Status: http.StatusForbidden}
)

// ValidationError represents a validation failure with field-level details
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// HTTPStatus returns the HTTP status code for this error
func (e *ValidationError) HTTPStatus() int {
	return http.StatusBadRequest
}

// HTTPCode returns the machine-readable error code for this error
func (e *ValidationError) HTTPCode() string {
	return "validation_failed"
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	Message  string
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource, message string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *NotFoundError) HTTPStatus() int {
	return http.StatusNotFound
}

// HTTPCode returns the machine-readable error code for this error
func (e *NotFoundError) HTTPCode() string {
	return "not_found"
}

// AlreadyExistsError represents a resource already exists error
type AlreadyExistsError struct {
	Resource string
	Message  string
}

// NewAlreadyExistsError creates a new already exists error
func NewAlreadyExistsError(resource, message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		Resource: resource,
		Message:  message,
	}
}

// Error implements the error interface
func (e *AlreadyExistsError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s already exists", e.Resource)
}

// HTTPStatus returns the HTTP status code for this error
func (e *AlreadyExistsError) HTTPStatus() int {
	return http.StatusConflict
}

// HTTPCode returns the machine-readable error code for this error
func (e *AlreadyExistsError) HTTPCode() string {
	return "already_exists"
}

// AuthError represents an authentication or authorization failure.
// Status defaults to 401 Unauthorized when zero.
type AuthError struct {
	Code    string
	Message string
	Status  int
}

// NewAuthError creates a new authentication error
func NewAuthError(code, message string) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
	}
}

// Error implements the error interface
func (e *AuthError) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status code for this error
func (e *AuthError) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}
	return http.StatusUnauthorized
}

// HTTPCode returns the machine-readable error code for this error
func (e *AuthError) HTTPCode() string {
	return e.Code
}

// InternalError represents an internal server error with context
type InternalError struct {
	Message string
	Err     error
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *InternalError {
	return &InternalError{
		Message: message,
		Err:     err,
	}
}

// Error implements the error interface
func (e *InternalError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *InternalError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code for this error
func (e *InternalError) HTTPStatus() int {
	return http.StatusInternalServerError
}

// HTTPCode returns the machine-readable error code for this error
func (e *InternalError) HTTPCode() string {
	return "internal_error"
}

// HTTPStatuser interface for errors that can provide an HTTP status
type HTTPStatuser interface {
	HTTPStatus() int
	HTTPCode() string
}

// HTTPStatus maps any error to an HTTP status code and error code.
// Errors that do not implement HTTPStatuser map to 500 internal_error.
func HTTPStatus(err error) (int, string) {
	var statuser HTTPStatuser
	if errors.As(err, &statuser) {
		return statuser.HTTPStatus(), statuser.HTTPCode()
	}
	return http.StatusInternalServerError, "internal_error"
}
