package locations

import (
	"context"
	"fmt"
	"log/slog"

	"menuboard/internal/square"
)

// Location is the client-facing location shape. All optional upstream fields
// are resolved to defaults at construction; nothing downstream re-checks.
type Location struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Address  Address `json:"address"`
	Timezone string  `json:"timezone"`
	Status   string  `json:"status"`
}

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// Fetcher returns the locations surfaced to clients: active only.
type Fetcher interface {
	FetchLocations(ctx context.Context) ([]Location, error)
}

type locationsAPI interface {
	ListLocations(ctx context.Context) ([]square.Location, error)
}

// SquareFetcher lists locations from the Square API.
type SquareFetcher struct {
	client locationsAPI
}

var _ Fetcher = (*SquareFetcher)(nil)

func NewFetcher(client locationsAPI) *SquareFetcher {
	return &SquareFetcher{client: client}
}

// FetchLocations returns all ACTIVE merchant locations in upstream order.
func (f *SquareFetcher) FetchLocations(ctx context.Context) ([]Location, error) {
	raw, err := f.client.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}

	locations := make([]Location, 0, len(raw))
	for _, loc := range raw {
		if loc.Status != square.LocationStatusActive {
			continue
		}
		locations = append(locations, fromSquare(loc))
	}

	slog.DebugContext(ctx, "fetched locations", "active", len(locations), "total", len(raw))
	return locations, nil
}

func fromSquare(loc square.Location) Location {
	out := Location{
		ID:       loc.ID,
		Name:     loc.Name,
		Timezone: loc.Timezone,
		Status:   loc.Status,
		Address:  Address{Country: "US"},
	}
	if out.Name == "" {
		out.Name = "Unknown Location"
	}
	if out.Timezone == "" {
		out.Timezone = "America/New_York"
	}
	if out.Status == "" {
		out.Status = square.LocationStatusInactive
	}
	if addr := loc.Address; addr != nil {
		out.Address = Address{
			Line1:      addr.AddressLine1,
			Line2:      addr.AddressLine2,
			City:       addr.Locality,
			State:      addr.AdministrativeDistrictLevel1,
			PostalCode: addr.PostalCode,
			Country:    addr.Country,
		}
		if out.Address.Country == "" {
			out.Address.Country = "US"
		}
	}
	return out
}
