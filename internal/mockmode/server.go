package mockmode

import (
	"encoding/json"
	"net/http"

	"menuboard/internal/api"
)

type server struct {
	fallback bool
}

// NewServer returns the handler for reading and toggling the mock-mode flag.
// fallback is the mode used when a client has no cookie yet.
func NewServer(fallback bool) *server {
	return &server{fallback: fallback}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /mock-mode", s.handleGet)
	mux.HandleFunc("POST /mock-mode", s.handleSet)
}

func (s *server) handleGet(w http.ResponseWriter, r *http.Request) {
	api.WriteJSON(w, http.StatusOK, map[string]bool{
		"mockMode": Enabled(r, s.fallback),
	})
}

func (s *server) handleSet(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.WriteError(w, http.StatusBadRequest, api.CodeBadRequest,
			"Invalid request body", "The request body must be JSON with an 'enabled' boolean.")
		return
	}

	Write(w, body.Enabled)
	api.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"mockMode": body.Enabled,
	})
}
