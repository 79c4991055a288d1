// Package response provides standardized HTTP response builders for the valuation API.
// Error responses share one envelope; successful responses are written as is.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope used for error responses.
type Response struct {
	// Success is false for every error response
	Success bool `json:"success"`

	// Error contains error details
	Error *ErrorDetail `json:"error,omitempty"`
}

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeNotFound        = "not_found"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgInternalError      = "An unexpected error occurred"
)

// Failure creates a failed response envelope.
func Failure(code, message string, details map[string]string) *Response {
	return &Response{
		Success: false,
		Error: &ErrorDetail{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
