package square

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"menuboard/internal/config"
)

const (
	// SandboxBaseURL is the Square sandbox API base URL.
	SandboxBaseURL = "https://connect.squareupsandbox.com"
	// ProductionBaseURL is the Square production API base URL.
	ProductionBaseURL = "https://connect.squareup.com"

	apiVersion = "2025-01-23"

	maxResponseBytes = 4 << 20
)

// Client calls Square catalog and locations APIs with bearer auth.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
}

// NewClient creates a Square client. The access token is required; everything
// else falls back to sandbox defaults.
func NewClient(cfg config.SquareConfig, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		if strings.EqualFold(cfg.Environment, "production") {
			baseURL = ProductionBaseURL
		} else {
			baseURL = SandboxBaseURL
		}
	}

	c := &Client{
		accessToken: cfg.AccessToken,
		baseURL:     strings.TrimRight(baseURL, "/"),
		httpClient:  &http.Client{Timeout: 20 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Option adjusts client construction, used by tests to point at a fake server.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// CatalogPage is one page of a catalog search. An empty Cursor means the
// final page has been delivered.
type CatalogPage struct {
	Objects        []CatalogObject `json:"objects,omitempty"`
	RelatedObjects []CatalogObject `json:"related_objects,omitempty"`
	Cursor         string          `json:"cursor,omitempty"`
	Errors         []ErrorDetail   `json:"errors,omitempty"`
}

type catalogSearchRequest struct {
	ObjectTypes           []string `json:"object_types"`
	IncludeRelatedObjects bool     `json:"include_related_objects"`
	IncludeDeletedObjects bool     `json:"include_deleted_objects"`
	Cursor                string   `json:"cursor,omitempty"`
}

// SearchCatalog fetches a single page of ITEM objects with their related
// categories and images inlined. Pass the cursor from the previous page, or
// empty for the first page.
func (c *Client) SearchCatalog(ctx context.Context, cursor string) (*CatalogPage, error) {
	body, err := json.Marshal(catalogSearchRequest{
		ObjectTypes:           []string{TypeItem},
		IncludeRelatedObjects: true,
		IncludeDeletedObjects: false,
		Cursor:                cursor,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal catalog search request: %w", err)
	}

	raw, err := c.do(ctx, http.MethodPost, "/v2/catalog/search", bytes.NewReader(body), "catalog search")
	if err != nil {
		return nil, err
	}

	var page CatalogPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, fmt.Errorf("unmarshal catalog search response: %w", err)
	}
	if len(page.Errors) > 0 {
		return nil, &APIError{Operation: "catalog search", Errors: page.Errors}
	}

	slog.DebugContext(ctx, "fetched catalog page",
		"objects", len(page.Objects),
		"related_objects", len(page.RelatedObjects),
		"more", page.Cursor != "")
	return &page, nil
}

type listLocationsResponse struct {
	Locations []Location    `json:"locations,omitempty"`
	Errors    []ErrorDetail `json:"errors,omitempty"`
}

// ListLocations returns every location of the merchant, active or not.
func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	raw, err := c.do(ctx, http.MethodGet, "/v2/locations", nil, "list locations")
	if err != nil {
		return nil, err
	}

	var resp listLocationsResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal locations response: %w", err)
	}
	if len(resp.Errors) > 0 {
		return nil, &APIError{Operation: "list locations", Errors: resp.Errors}
	}
	return resp.Locations, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, operation string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", operation, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("Square-Version", apiVersion)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s response: %w", operation, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Square usually explains failures in the errors list of the body.
		var failure struct {
			Errors []ErrorDetail `json:"errors"`
		}
		if err := json.Unmarshal(raw, &failure); err == nil && len(failure.Errors) > 0 {
			return nil, &APIError{Operation: operation, Errors: failure.Errors}
		}
		return nil, &StatusError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	return raw, nil
}
