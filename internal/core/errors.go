// Package core provides the error taxonomy shared by the categorizer service.
package core

import (
	"fmt"
	"net/http"
)

// ErrorType represents the type of error that occurred
type ErrorType string

const (
	// ErrorTypeMissingFile indicates the required upload field was absent (400)
	ErrorTypeMissingFile ErrorType = "missing_file"
	// ErrorTypeEmptyFilename indicates an upload was present but unnamed (400)
	ErrorTypeEmptyFilename ErrorType = "empty_filename"
	// ErrorTypeInternal indicates an unexpected processing failure (500)
	ErrorTypeInternal ErrorType = "internal_error"
)

// ServiceError is the base error type for all service errors
type ServiceError struct {
	Type       ErrorType
	Message    string
	StatusCode int
	// Original error for debugging (not exposed to clients)
	Err error
}

// Error implements the error interface
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the appropriate HTTP status code for this error
func (e *ServiceError) HTTPStatusCode() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	switch e.Type {
	case ErrorTypeMissingFile, ErrorTypeEmptyFilename:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ToJSON converts the error to the wire shape: a single error string.
func (e *ServiceError) ToJSON() map[string]string {
	return map[string]string{"error": e.Message}
}

// NewMissingFileError creates the error for a request without a file field (400)
func NewMissingFileError() *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeMissingFile,
		Message:    "No file provided",
		StatusCode: http.StatusBadRequest,
	}
}

// NewEmptyFilenameError creates the error for an upload with an empty filename (400)
func NewEmptyFilenameError() *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeEmptyFilename,
		Message:    "Empty filename",
		StatusCode: http.StatusBadRequest,
	}
}

// NewInternalError wraps an unexpected failure (500). The cause's text
// becomes the client-visible message, matching the classify error contract.
func NewInternalError(err error) *ServiceError {
	return &ServiceError{
		Type:       ErrorTypeInternal,
		Message:    err.Error(),
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}
