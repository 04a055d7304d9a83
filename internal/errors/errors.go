// Package errors provides the application error taxonomy. All failures the
// services can produce are recoverable validation errors expressed as
// AppError values; the services themselves never log and never panic, it is
// the caller's job to surface the message.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrForbidden          = &AppError{Code: "FORBIDDEN", Message: "Access denied", StatusCode: http.StatusForbidden}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid handle or password", StatusCode: http.StatusUnauthorized}
)

// Registration errors, in the order signup validation checks them.
var (
	ErrMissingField     = &AppError{Code: "MISSING_FIELD", Message: "Please fill in all fields", StatusCode: http.StatusBadRequest}
	ErrHandleTooShort   = &AppError{Code: "HANDLE_TOO_SHORT", Message: "Handle must be at least 3 characters long", StatusCode: http.StatusBadRequest}
	ErrPasswordTooShort = &AppError{Code: "PASSWORD_TOO_SHORT", Message: "Password must be at least 6 characters long", StatusCode: http.StatusBadRequest}
	ErrPasswordMismatch = &AppError{Code: "PASSWORD_MISMATCH", Message: "Passwords do not match", StatusCode: http.StatusBadRequest}
	ErrDuplicateHandle  = &AppError{Code: "DUPLICATE_HANDLE", Message: "Handle already exists", StatusCode: http.StatusConflict}
	ErrDuplicateEmail   = &AppError{Code: "DUPLICATE_EMAIL", Message: "Email address already registered", StatusCode: http.StatusConflict}
	ErrInvalidEmail     = &AppError{Code: "INVALID_EMAIL", Message: "Please enter a valid email address", StatusCode: http.StatusBadRequest}
)

// Directory errors.
var (
	ErrUserNotFound  = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrAdminNotFound = &AppError{Code: "ADMIN_NOT_FOUND", Message: "Admin not found", StatusCode: http.StatusNotFound}
)

// Ledger errors.
var (
	ErrInvalidAmount    = &AppError{Code: "INVALID_AMOUNT", Message: "Amount must be greater than zero", StatusCode: http.StatusBadRequest}
	ErrInvalidCategory  = &AppError{Code: "INVALID_CATEGORY", Message: "Category does not match the transaction kind", StatusCode: http.StatusBadRequest}
	ErrEmptyDescription = &AppError{Code: "EMPTY_DESCRIPTION", Message: "Please enter a description", StatusCode: http.StatusBadRequest}
	ErrInvalidKind      = &AppError{Code: "INVALID_KIND", Message: "Unsupported transaction kind", StatusCode: http.StatusBadRequest}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
