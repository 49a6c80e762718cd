package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the caller is authenticated but not allowed to perform the operation.
var ErrForbidden = errors.New("operation not allowed")

// AppError carries an HTTP status code alongside a message and an optional wrapped cause.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError with an explicit status code and wrapped cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewValidationError creates a 400 AppError that also matches ErrValidation via errors.Is.
func NewValidationError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message, Err: ErrValidation}
}

// NewNotFoundError creates a 404 AppError that also matches ErrNotFound via errors.Is.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: http.StatusNotFound, Message: message, Err: ErrNotFound}
}

// NewBadRequestError creates a plain 400 AppError.
func NewBadRequestError(message string) *AppError {
	return &AppError{Code: http.StatusBadRequest, Message: message}
}

// NewUnauthorizedError creates a 401 AppError.
func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: http.StatusUnauthorized, Message: message}
}

// NewForbiddenError creates a 403 AppError that also matches ErrForbidden via errors.Is.
func NewForbiddenError(message string) *AppError {
	return &AppError{Code: http.StatusForbidden, Message: message, Err: ErrForbidden}
}

// NewInternalServerError creates a 500 AppError.
func NewInternalServerError(message string) *AppError {
	return &AppError{Code: http.StatusInternalServerError, Message: message}
}

// NewGatewayTimeoutError creates a 504 AppError, used when an upstream provider does not respond.
func NewGatewayTimeoutError(message string) *AppError {
	return &AppError{Code: http.StatusGatewayTimeout, Message: message}
}
