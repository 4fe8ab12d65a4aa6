// Package error defines domain-specific errors for the De Olho na Nota application.
package error

import "errors"

// AI prefix suggestion domain errors.
var (
	// ErrAIServiceUnavailable is returned when the AI service is not configured.
	ErrAIServiceUnavailable = errors.New("ai service unavailable")

	// ErrAINoUncategorized is returned when there are no uncategorized products to analyze.
	ErrAINoUncategorized = errors.New("no uncategorized products found")

	// ErrAIServiceError is returned when the AI service encounters an error.
	ErrAIServiceError = errors.New("ai service error")

	// ErrAIRateLimited is returned when the AI service rate limits requests.
	ErrAIRateLimited = errors.New("ai service rate limited")

	// ErrAIInvalidSuggestion is returned when the AI response cannot be used.
	ErrAIInvalidSuggestion = errors.New("invalid ai suggestion")
)

// AISuggestionErrorCode defines error codes for AI suggestion errors.
// Format: AIS-XXYYYY where XX is category and YYYY is specific error.
type AISuggestionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAINoUncategorized   AISuggestionErrorCode = "AIS-010001"
	ErrCodeAIInvalidSuggestion AISuggestionErrorCode = "AIS-010002"

	// External service errors (02XXXX)
	ErrCodeAIServiceUnavailable AISuggestionErrorCode = "AIS-020001"
	ErrCodeAIServiceError       AISuggestionErrorCode = "AIS-020002"
	ErrCodeAIRateLimited        AISuggestionErrorCode = "AIS-020003"
)

// AISuggestionError represents an AI suggestion error with code and message.
type AISuggestionError struct {
	Code    AISuggestionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AISuggestionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AISuggestionError) Unwrap() error {
	return e.Err
}

// NewAISuggestionError creates a new AISuggestionError with the given code and message.
func NewAISuggestionError(code AISuggestionErrorCode, message string, err error) *AISuggestionError {
	return &AISuggestionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
