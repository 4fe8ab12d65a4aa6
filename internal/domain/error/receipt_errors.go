// Package error defines domain-specific errors for the De Olho na Nota application.
package error

import "errors"

// Receipt domain errors.
var (
	// ErrReceiptNotFound is returned when a receipt is not found in the system.
	ErrReceiptNotFound = errors.New("receipt not found")

	// ErrReceiptAlreadyExists is returned when a receipt with the same access key was already ingested.
	ErrReceiptAlreadyExists = errors.New("receipt already exists")

	// ErrReceiptMissingFields is returned when required receipt fields are missing.
	ErrReceiptMissingFields = errors.New("missing required receipt fields")

	// ErrNegativeReceiptValue is returned when a monetary field is negative.
	ErrNegativeReceiptValue = errors.New("receipt values must not be negative")
)

// ReceiptErrorCode defines error codes for receipt errors.
// Format: RCP-XXYYYY where XX is category and YYYY is specific error.
type ReceiptErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeReceiptNotFound       ReceiptErrorCode = "RCP-010001"
	ErrCodeReceiptAlreadyExists  ReceiptErrorCode = "RCP-010002"
	ErrCodeReceiptMissingFields  ReceiptErrorCode = "RCP-010003"
	ErrCodeNegativeReceiptValue  ReceiptErrorCode = "RCP-010004"
	ErrCodeUnparsableReceiptDate ReceiptErrorCode = "RCP-010005"
)

// ReceiptError represents a receipt error with code and message.
type ReceiptError struct {
	Code    ReceiptErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReceiptError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReceiptError) Unwrap() error {
	return e.Err
}

// NewReceiptError creates a new ReceiptError with the given code and message.
func NewReceiptError(code ReceiptErrorCode, message string, err error) *ReceiptError {
	return &ReceiptError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
