// Package error defines domain-specific errors for the De Olho na Nota application.
package error

import "errors"

// Report domain errors.
var (
	// ErrInvalidMonthIndex is returned when a month index is outside 0..11.
	ErrInvalidMonthIndex = errors.New("month index must be between 0 and 11")

	// ErrInvalidYear is returned when a year is outside a plausible range.
	ErrInvalidYear = errors.New("invalid year")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidMonthIndex ReportErrorCode = "RPT-010001"
	ErrCodeInvalidYear       ReportErrorCode = "RPT-010002"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
