package errors

import (
	"net/http"

	"phonebook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing reason
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

// Is matches any BaseError carrying the same error code, so reasoned copies
// still satisfy errors.Is against the predefined variants.
func (e *BaseError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return e.errorCode == other.errorCode
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

// Message returns the user-facing reason
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying details. The predefined variants are never mutated.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WithReason returns a copy of the error carrying an operation specific reason
func (e *BaseError) WithReason(reason string) *BaseError {
	clone := *e
	clone.message = reason

	return &clone
}

// Error codes
const (
	CodeValidationFailed         = "VALIDATION_FAILED"
	CodeNotFound                 = "NOT_FOUND"
	CodeMismatchedIdentifierKind = "MISMATCHED_IDENTIFIER_KIND"
	CodeMalformedIdentifier      = "MALFORMED_IDENTIFIER"
	CodeNotOwner                 = "NOT_OWNER"
	CodeGroupNotFound            = "GROUP_NOT_FOUND"
	CodeUnauthorized             = "UNAUTHORIZED"
	CodeInternalError            = "INTERNAL_ERROR"
)

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		CodeValidationFailed,
		"Validation failed",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		CodeNotFound,
		"Resource not found",
		"",
	)

	ErrMismatchedIdentifierKind = NewBaseError(
		http.StatusBadRequest,
		CodeMismatchedIdentifierKind,
		"Identifier points at a different kind of resource",
		"",
	)

	ErrMalformedIdentifier = NewBaseError(
		http.StatusBadRequest,
		CodeMalformedIdentifier,
		"Malformed identifier",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		CodeNotOwner,
		"You are not owner of this entry",
		"",
	)

	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		CodeGroupNotFound,
		"Group with given name does not exists!",
		"",
	)

	// Authentication of the caller itself failed; raised by the delivery layer.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		CodeUnauthorized,
		"Authentication required",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		CodeInternalError,
		"Something went wrong, please try again later",
		"",
	)
)

// DatabaseExecuteError represents a storage fault, implementing the AppError interface.
// The underlying driver text is kept for logs and never used as the message.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Is lets storage faults match ErrInternalError
func (e *DatabaseExecuteError) Is(target error) bool {
	var other *BaseError
	if !errors.As(target, &other) {
		return false
	}

	return other.errorCode == CodeInternalError
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return CodeInternalError
}

// Message returns the user-facing reason
func (e *DatabaseExecuteError) Message() string {
	return ErrInternalError.Message()
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
