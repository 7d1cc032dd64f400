package cache

import "time"

// Recommended TTLs. Locations change far less often than menu contents.
const (
	LocationsTTL  = 10 * time.Minute
	CatalogTTL    = 5 * time.Minute
	CategoriesTTL = 5 * time.Minute
)

// Key builders keep the three key families consistent across callers. The
// cache itself treats keys as opaque strings.

func LocationsKey() string {
	return "square:locations"
}

func CatalogKey(locationID string) string {
	return "square:catalog:" + locationID
}

func CategoriesKey(locationID string) string {
	return "square:categories:" + locationID
}
