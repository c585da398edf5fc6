// Package apierror provides standardized error response structures for the API.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// ConflictError is returned with HTTP 409 when a folio collides with existing
// receipts. It carries at most a display cap of matches plus the full count so
// the client can warn without fetching everything.
type ConflictError struct {
	Detail          string      `json:"detail"`
	Conflictos      interface{} `json:"conflictos"`
	TotalConflictos int64       `json:"total_conflictos"`
}

func NewConflict(msg string, conflictos interface{}, total int64) *ConflictError {
	return &ConflictError{Detail: msg, Conflictos: conflictos, TotalConflictos: total}
}
