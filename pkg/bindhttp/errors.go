package bindhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// FieldError describes a single input that failed binding or validation.
// Location is the request location the value came from ("path", "query", or
// "body"); Field is the wire-level field path within that location (dotted for
// nested body fields); Constraint names the violated rule; Value is the
// rejected input rendered as a string.
type FieldError struct {
	Location   string `json:"location"`
	Field      string `json:"field"`
	Constraint string `json:"constraint"`
	Value      string `json:"value"`
}

func (e FieldError) String() string {
	return fmt.Sprintf("%s.%s: %s (got %q)", e.Location, e.Field, e.Constraint, e.Value)
}

// ValidationError represents a request validation failure. It aborts dispatch
// before the handler runs and carries every failing field, not just the first.
type ValidationError struct {
	Message string       `json:"message"`
	Fields  []FieldError `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}

	return e.Message + ": " + strings.Join(parts, "; ")
}

// NewValidationError creates a new validation error.
func NewValidationError(message string, fields []FieldError) *ValidationError {
	return &ValidationError{
		Message: message,
		Fields:  fields,
	}
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    string      `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// DefaultErrorMapper provides the default implementation of ErrorMapper.
// Validation failures and malformed JSON map to 400; everything else is an
// internal error with no detail exposure.
type DefaultErrorMapper struct{}

// MapError maps application errors to HTTP status codes and responses.
func (m *DefaultErrorMapper) MapError(err error) (int, interface{}) {
	var valErr *ValidationError
	if errors.As(err, &valErr) {
		return http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Code:    "VALIDATION_ERROR",
			Details: valErr.Fields,
		}
	}

	if isMalformedJSON(err) {
		return http.StatusBadRequest, ErrorResponse{
			Error: "Invalid JSON in request body",
			Code:  "INVALID_JSON",
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Error: "Internal server error",
		Code:  "INTERNAL_ERROR",
	}
}

// isMalformedJSON recognizes body parse failures: the decoder's sentinel,
// the json package's own error types, and, as a fallback for errors built
// elsewhere, the usual parse failure messages.
func isMalformedJSON(err error) bool {
	if errors.Is(err, ErrInvalidJSONBody) {
		return true
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	return strings.Contains(err.Error(), "invalid JSON") ||
		strings.Contains(err.Error(), "invalid character") ||
		strings.Contains(err.Error(), "unexpected end of JSON")
}
