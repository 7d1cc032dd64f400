package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"menuboard/internal/config"
	"menuboard/internal/square"
)

// Error codes surfaced on the wire.
const (
	CodeBadRequest         = "BAD_REQUEST"
	CodeMissingParameter   = "MISSING_PARAMETER"
	CodeInternalError      = "INTERNAL_ERROR"
	CodeUpstreamAPIError   = "UPSTREAM_API_ERROR"
	CodeConfigurationError = "CONFIGURATION_ERROR"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// WriteJSON writes data as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteError writes the standard error envelope.
func WriteError(w http.ResponseWriter, status int, code, message, details string) {
	WriteJSON(w, status, errorEnvelope{Error: errorBody{
		Code:    code,
		Message: message,
		Details: details,
	}})
}

// MissingParameter writes the 400 response for an absent or blank required
// query parameter.
func MissingParameter(w http.ResponseWriter, name string) {
	WriteError(w, http.StatusBadRequest, CodeMissingParameter,
		"Missing required parameter: "+name,
		"The '"+name+"' query parameter is required.")
}

// HandleError logs err and maps it to the wire format. The core never logs
// its own failures; this is the single place request errors become visible.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err)

	var credentialErr *config.MissingCredentialError
	if errors.As(err, &credentialErr) {
		WriteError(w, http.StatusInternalServerError, CodeConfigurationError,
			"Server configuration error",
			"The server is not properly configured. Please contact support.")
		return
	}

	var apiErr *square.APIError
	var statusErr *square.StatusError
	if errors.As(err, &apiErr) || errors.As(err, &statusErr) {
		WriteError(w, http.StatusBadGateway, CodeUpstreamAPIError,
			"Failed to fetch data from Square",
			err.Error())
		return
	}

	WriteError(w, http.StatusInternalServerError, CodeInternalError,
		"An unexpected error occurred",
		err.Error())
}
