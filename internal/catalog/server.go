package catalog

import (
	"log/slog"
	"net/http"
	"strings"

	"menuboard/internal/api"
	"menuboard/internal/cache"
	"menuboard/internal/mockmode"
)

type categoriesResponse struct {
	Categories []Category `json:"categories"`
}

// server wires the catalog endpoints: mock mode first, then cache, then the
// live aggregation.
type server struct {
	live        Provider
	mock        Provider
	cache       *cache.Cache
	mockDefault bool
}

func NewServer(live Provider, mock Provider, c *cache.Cache, mockDefault bool) *server {
	return &server{
		live:        live,
		mock:        mock,
		cache:       c,
		mockDefault: mockDefault,
	}
}

func (s *server) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /catalog", s.handleCatalog)
	mux.HandleFunc("GET /categories", s.handleCategories)
}

func (s *server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID := strings.TrimSpace(r.URL.Query().Get("location_id"))
	if locationID == "" {
		api.MissingParameter(w, "location_id")
		return
	}

	if mockmode.Enabled(r, s.mockDefault) {
		view, err := s.mock.Catalog(ctx, locationID)
		if err != nil {
			api.HandleError(w, r, err)
			return
		}
		slog.DebugContext(ctx, "returning mock catalog", "location_id", locationID)
		api.WriteJSON(w, http.StatusOK, view)
		return
	}

	key := cache.CatalogKey(locationID)
	if cached, ok := s.cache.Get(key); ok {
		slog.DebugContext(ctx, "returning cached catalog", "location_id", locationID)
		api.WriteJSON(w, http.StatusOK, cached)
		return
	}

	view, err := s.live.Catalog(ctx, locationID)
	if err != nil {
		api.HandleError(w, r, err)
		return
	}

	s.cache.Set(key, view, cache.CatalogTTL)
	api.WriteJSON(w, http.StatusOK, view)
}

func (s *server) handleCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	locationID := strings.TrimSpace(r.URL.Query().Get("location_id"))
	if locationID == "" {
		api.MissingParameter(w, "location_id")
		return
	}

	if mockmode.Enabled(r, s.mockDefault) {
		categories, err := s.mock.Categories(ctx, locationID)
		if err != nil {
			api.HandleError(w, r, err)
			return
		}
		slog.DebugContext(ctx, "returning mock categories", "location_id", locationID)
		api.WriteJSON(w, http.StatusOK, categoriesResponse{Categories: categories})
		return
	}

	key := cache.CategoriesKey(locationID)
	if cached, ok := s.cache.Get(key); ok {
		slog.DebugContext(ctx, "returning cached categories", "location_id", locationID)
		api.WriteJSON(w, http.StatusOK, cached)
		return
	}

	categories, err := s.live.Categories(ctx, locationID)
	if err != nil {
		api.HandleError(w, r, err)
		return
	}

	response := categoriesResponse{Categories: categories}
	s.cache.Set(key, response, cache.CategoriesTTL)
	api.WriteJSON(w, http.StatusOK, response)
}
