package locations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"menuboard/internal/cache"
	"menuboard/internal/mockmode"
	"menuboard/internal/square"
)

type fakeFetcher struct {
	locations []Location
	err       error
	calls     int
}

func (f *fakeFetcher) FetchLocations(_ context.Context) ([]Location, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.locations, nil
}

func locationsMux(live Fetcher) *http.ServeMux {
	mux := http.NewServeMux()
	NewServer(live, Mock{}, cache.New(), false).Register(mux)
	return mux
}

func decodeLocations(t *testing.T, body []byte) []Location {
	t.Helper()
	var got struct {
		Locations []Location `json:"locations"`
	}
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return got.Locations
}

func TestHandleLocationsServesLiveAndCaches(t *testing.T) {
	t.Parallel()

	live := &fakeFetcher{locations: []Location{{ID: "L1", Name: "Test Cafe", Status: "ACTIVE"}}}
	mux := locationsMux(live)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("request %d: status = %d, want 200", i, rec.Code)
		}
		locs := decodeLocations(t, rec.Body.Bytes())
		if len(locs) != 1 || locs[0].ID != "L1" {
			t.Fatalf("request %d: unexpected locations %+v", i, locs)
		}
	}

	if live.calls != 1 {
		t.Fatalf("live fetcher called %d times, want 1 (second hit should be cached)", live.calls)
	}
}

func TestHandleLocationsMockMode(t *testing.T) {
	t.Parallel()

	live := &fakeFetcher{err: &square.StatusError{Operation: "list locations", StatusCode: 500}}
	mux := locationsMux(live)

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	req.AddCookie(&http.Cookie{Name: mockmode.CookieName, Value: "true"})
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if live.calls != 0 {
		t.Fatalf("live fetcher called %d times in mock mode, want 0", live.calls)
	}
	locs := decodeLocations(t, rec.Body.Bytes())
	if len(locs) != 2 {
		t.Fatalf("got %d mock locations, want 2", len(locs))
	}
	if locs[0].ID != "MOCK_LOC_1" || locs[1].ID != "MOCK_LOC_2" {
		t.Fatalf("unexpected mock location IDs: %s, %s", locs[0].ID, locs[1].ID)
	}
}

func TestHandleLocationsMockDefault(t *testing.T) {
	t.Parallel()

	live := &fakeFetcher{err: &square.StatusError{Operation: "list locations", StatusCode: 500}}
	mux := http.NewServeMux()
	NewServer(live, Mock{}, cache.New(), true).Register(mux)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if live.calls != 0 {
		t.Fatalf("live fetcher called %d times with mock default on, want 0", live.calls)
	}
}

func TestHandleLocationsUpstreamFailure(t *testing.T) {
	t.Parallel()

	live := &fakeFetcher{err: &square.APIError{
		Operation: "list locations",
		Errors:    []square.ErrorDetail{{Code: "UNAUTHORIZED", Detail: "bad token"}},
	}}
	mux := locationsMux(live)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations", nil))

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	if envelope.Error.Code != "UPSTREAM_API_ERROR" {
		t.Fatalf("error code = %q, want UPSTREAM_API_ERROR", envelope.Error.Code)
	}
}
