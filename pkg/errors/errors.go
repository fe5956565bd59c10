package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Definition errors, raised before any render happens
	ErrInvalidBorder   ErrorCode = "INVALID_BORDER"
	ErrInvalidSize     ErrorCode = "INVALID_SIZE"
	ErrInvalidStyle    ErrorCode = "INVALID_STYLE"
	ErrInvalidClassTag ErrorCode = "INVALID_CLASS_TAG"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Record input errors
	ErrInputRead  ErrorCode = "INPUT_READ"
	ErrInputParse ErrorCode = "INPUT_PARSE"

	// Output errors
	ErrRenderWrite ErrorCode = "RENDER_WRITE"
)

// BoxgridError represents a structured error with code and details
type BoxgridError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BoxgridError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BoxgridError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BoxgridError) Is(target error) bool {
	var targetErr *BoxgridError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BoxgridError with the given code and message
func New(code ErrorCode, message string) *BoxgridError {
	return &BoxgridError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BoxgridError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BoxgridError {
	return &BoxgridError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BoxgridError
func Wrap(err error, code ErrorCode, message string) *BoxgridError {
	if err == nil {
		return nil
	}
	return &BoxgridError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BoxgridError {
	if err == nil {
		return nil
	}
	return &BoxgridError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BoxgridError) WithDetail(key string, value interface{}) *BoxgridError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *BoxgridError) WithDetails(details map[string]interface{}) *BoxgridError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bgErr *BoxgridError
	if errors.As(err, &bgErr) {
		return bgErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BoxgridError
func GetErrorCode(err error) ErrorCode {
	var bgErr *BoxgridError
	if errors.As(err, &bgErr) {
		return bgErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BoxgridError
func GetErrorDetails(err error) map[string]interface{} {
	var bgErr *BoxgridError
	if errors.As(err, &bgErr) {
		return bgErr.Details
	}
	return nil
}
