// Package errors defines the application error contract shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"bantay/internal/errors"
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
	// Tindahan-related errors
	ErrTindahanNotFound = NewBaseError(
		http.StatusNotFound,
		"TINDAHAN_NOT_FOUND",
		"Tindahan not found",
		"",
	)

	ErrTindahanAlreadyExists = NewBaseError(
		http.StatusConflict,
		"TINDAHAN_ALREADY_EXISTS",
		"A tindahan with this business name is already registered",
		"",
	)

	ErrInvalidContactNumber = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CONTACT_NUMBER",
		"Contact number is not a valid phone number",
		"",
	)

	// Inspection-related errors
	ErrInspectionNotFound = NewBaseError(
		http.StatusNotFound,
		"INSPECTION_NOT_FOUND",
		"Inspection not found",
		"",
	)

	// Violation-related errors
	ErrViolationNotFound = NewBaseError(
		http.StatusNotFound,
		"VIOLATION_NOT_FOUND",
		"Violation not found",
		"",
	)

	ErrSeverityOutOfRange = NewBaseError(
		http.StatusBadRequest,
		"SEVERITY_OUT_OF_RANGE",
		"Violation severity must be between 1 and 5",
		"",
	)

	// Report-related errors
	ErrReportNotFound = NewBaseError(
		http.StatusNotFound,
		"REPORT_NOT_FOUND",
		"Compliance report not found",
		"",
	)

	ErrInvalidReportPeriod = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REPORT_PERIOD",
		"Report period end must not precede its start",
		"",
	)

	// Validation-related errors
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
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
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

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
