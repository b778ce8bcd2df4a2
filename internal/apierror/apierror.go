// Package apierror provides the standardized error envelope for the API.
// All 4xx/5xx responses go through this package so that clients always see
// {"error": "..."} regardless of which layer failed.
package apierror

// APIError is the canonical error envelope.
type APIError struct {
	Error string `json:"error"`
}

func New(msg string) *APIError {
	return &APIError{Error: msg}
}

// ValidationError carries field-level detail alongside the error message.
type ValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Error: "Datos inválidos", Fields: fields}
}
