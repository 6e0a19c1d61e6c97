// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
// Kind carries the stable error category so clients can branch on it
// without parsing the human-readable detail.
type APIError struct {
	Kind   string `json:"kind,omitempty"`
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// NewKind builds an envelope with an explicit error category.
func NewKind(kind, msg string) *APIError {
	return &APIError{Kind: kind, Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Kind   string            `json:"kind"`
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Kind: "validation_error", Detail: "Validation failed", Fields: fields}
}
