package locations

import (
	"log/slog"
	"net/http"

	"menuboard/internal/api"
	"menuboard/internal/cache"
	"menuboard/internal/mockmode"
)

type locationsResponse struct {
	Locations []Location `json:"locations"`
}

type server struct {
	live        Fetcher
	mock        Fetcher
	cache       *cache.Cache
	mockDefault bool
}

func NewServer(live Fetcher, mock Fetcher, c *cache.Cache, mockDefault bool) *server {
	return &server{
		live:        live,
		mock:        mock,
		cache:       c,
		mockDefault: mockDefault,
	}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /locations", s.handleLocations)
}

func (s *server) handleLocations(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if mockmode.Enabled(r, s.mockDefault) {
		locs, err := s.mock.FetchLocations(ctx)
		if err != nil {
			api.HandleError(w, r, err)
			return
		}
		slog.DebugContext(ctx, "returning mock locations")
		api.WriteJSON(w, http.StatusOK, locationsResponse{Locations: locs})
		return
	}

	key := cache.LocationsKey()
	if cached, ok := s.cache.Get(key); ok {
		slog.DebugContext(ctx, "returning cached locations")
		api.WriteJSON(w, http.StatusOK, cached)
		return
	}

	locs, err := s.live.FetchLocations(ctx)
	if err != nil {
		api.HandleError(w, r, err)
		return
	}

	response := locationsResponse{Locations: locs}
	s.cache.Set(key, response, cache.LocationsTTL)
	api.WriteJSON(w, http.StatusOK, response)
}
