package square

import (
	"fmt"
	"strings"
)

// StatusError captures non-2xx HTTP responses from Square APIs.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Body == "" {
		return fmt.Sprintf("%s request failed: status %d", e.Operation, e.StatusCode)
	}
	return fmt.Sprintf("%s request failed: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// ErrorDetail is one entry of the errors list Square attaches to responses.
type ErrorDetail struct {
	Category string `json:"category,omitempty"`
	Code     string `json:"code,omitempty"`
	Detail   string `json:"detail,omitempty"`
	Field    string `json:"field,omitempty"`
}

// APIError is a Square response whose errors list was non-empty. Square can
// return these in an otherwise successful HTTP response.
type APIError struct {
	Operation string
	Errors    []ErrorDetail
}

func (e *APIError) Error() string {
	if e == nil || len(e.Errors) == 0 {
		return "square API error"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, detail := range e.Errors {
		if detail.Detail != "" {
			parts = append(parts, detail.Detail)
			continue
		}
		parts = append(parts, detail.Code)
	}
	return fmt.Sprintf("%s failed: %s", e.Operation, strings.Join(parts, "; "))
}
