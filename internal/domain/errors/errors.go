package errors

import (
	"net/http"

	"storehub/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Store document errors
	ErrStoreNotFound = NewBaseError(
		http.StatusNotFound,
		"STORE_NOT_FOUND",
		"Store document does not exist",
		"",
	)

	ErrStoreAlreadyExists = NewBaseError(
		http.StatusConflict,
		"STORE_ALREADY_EXISTS",
		"Store document already exists",
		"",
	)

	ErrStoreIDRequired = NewBaseError(
		http.StatusBadRequest,
		"STORE_ID_REQUIRED",
		"Store id is required",
		"",
	)

	// Sale-processing errors
	ErrEmptyCart = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_CART",
		"Cart contains no valid lines",
		"",
	)

	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product does not exist",
		"",
	)

	// Slice entity errors
	ErrEntityNotFound = NewBaseError(
		http.StatusNotFound,
		"ENTITY_NOT_FOUND",
		"Record does not exist in the slice",
		"",
	)

	// Provisioning errors
	ErrUnknownBusinessType = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_BUSINESS_TYPE",
		"Unknown business type",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// ChannelError represents a remote document channel failure (subscription or
// merge-write), implementing the AppError interface
type ChannelError struct {
	err     error
	details string
}

// NewChannelError creates a channel-related error
func NewChannelError(err error, details string) AppError {
	return &ChannelError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *ChannelError) Error() string {
	return errors.Wrap(e.err, "document channel failed").Error()
}

// Unwrap exposes the underlying store error
func (e *ChannelError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *ChannelError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *ChannelError) ErrorCode() string {
	return "CHANNEL_FAILED"
}

// Message returns the user-friendly error message
func (e *ChannelError) Message() string {
	return "Remote store operation failed"
}

// Details returns detailed error information
func (e *ChannelError) Details() string {
	return e.details
}
