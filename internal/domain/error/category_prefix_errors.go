// Package error defines domain-specific errors for the De Olho na Nota application.
package error

import "errors"

// CategoryPrefix domain errors.
var (
	// ErrCategoryPrefixNotFound is returned when a prefix rule is not found in the system.
	ErrCategoryPrefixNotFound = errors.New("category prefix not found")

	// ErrBlankPrefix is returned when the prefix text is empty or only whitespace.
	ErrBlankPrefix = errors.New("prefix must not be blank")

	// ErrPrefixTooLong is returned when the prefix exceeds the maximum length.
	ErrPrefixTooLong = errors.New("prefix too long")

	// ErrCategoryNotFoundForPrefix is returned when the referenced category does not exist.
	ErrCategoryNotFoundForPrefix = errors.New("category not found for prefix")
)

// CategoryPrefixErrorCode defines error codes for prefix rule errors.
// Format: PRE-XXYYYY where XX is category and YYYY is specific error.
type CategoryPrefixErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryPrefixNotFound    CategoryPrefixErrorCode = "PRE-010001"
	ErrCodeBlankPrefix               CategoryPrefixErrorCode = "PRE-010002"
	ErrCodePrefixTooLong             CategoryPrefixErrorCode = "PRE-010003"
	ErrCodeCategoryNotFoundForPrefix CategoryPrefixErrorCode = "PRE-010004"
)

// CategoryPrefixError represents a prefix rule error with code and message.
type CategoryPrefixError struct {
	Code    CategoryPrefixErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryPrefixError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryPrefixError) Unwrap() error {
	return e.Err
}

// NewCategoryPrefixError creates a new CategoryPrefixError with the given code and message.
func NewCategoryPrefixError(code CategoryPrefixErrorCode, message string, err error) *CategoryPrefixError {
	return &CategoryPrefixError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
