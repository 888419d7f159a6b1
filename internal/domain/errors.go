package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		ErrCodeValidation,
		fmt.Sprintf("Validation failed for '%s': %s", field, message),
		http.StatusBadRequest,
		nil,
	)
}

// NewInsufficientFundsError creates an error for a bet exceeding the balance
func NewInsufficientFundsError(balance, bet int64) *AppError {
	return NewAppError(
		ErrCodeInsufficientFunds,
		fmt.Sprintf("Insufficient balance: have %d, need %d", balance, bet),
		http.StatusBadRequest,
		nil,
	)
}

// NewSessionConflictError signals a second session or a foreign-session action
func NewSessionConflictError(message string) *AppError {
	return NewAppError(ErrCodeSessionConflict, message, http.StatusConflict, nil)
}

// NewSessionNotFoundError signals an action against a session that does not exist
func NewSessionNotFoundError(message string) *AppError {
	return NewAppError(ErrCodeSessionNotFound, message, http.StatusNotFound, nil)
}

// NewSessionExpiredError signals a timed-out pending interaction
func NewSessionExpiredError(message string) *AppError {
	return NewAppError(ErrCodeSessionExpired, message, http.StatusGone, nil)
}

// NewNotAuthorizedError signals an actor outside the authorized list
func NewNotAuthorizedError(message string) *AppError {
	if message == "" {
		message = "Not authorized"
	}
	return NewAppError(ErrCodeNotAuthorized, message, http.StatusForbidden, nil)
}

// NewStoreError wraps a ledger store failure; these must surface, never be swallowed
func NewStoreError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeStore,
		fmt.Sprintf("Ledger store operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// NewInternalError creates an internal error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal error"
	}
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError, err)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err is an AppError carrying the given code
func IsCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

// Error codes for different categories of errors
const (
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeInsufficientFunds = "INSUFFICIENT_FUNDS"
	ErrCodeSessionConflict   = "SESSION_CONFLICT"
	ErrCodeSessionNotFound   = "SESSION_NOT_FOUND"
	ErrCodeSessionExpired    = "SESSION_EXPIRED"
	ErrCodeNotAuthorized     = "NOT_AUTHORIZED"
	ErrCodeStore             = "STORE_ERROR"
	ErrCodeInternal          = "INTERNAL_ERROR"

	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenMissing = "TOKEN_MISSING"
)
