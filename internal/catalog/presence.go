package catalog

import (
	"github.com/samber/lo"

	"menuboard/internal/square"
)

// IsPresentAt reports whether a catalog object is sold at the given location.
// Presence is governed by exactly one of two modes: present everywhere minus
// an exclusion list, or present only in an inclusion list.
func IsPresentAt(obj square.CatalogObject, locationID string) bool {
	if obj.PresentAtAllLocations {
		return !lo.Contains(obj.AbsentAtLocationIDs, locationID)
	}
	return lo.Contains(obj.PresentAtLocationIDs, locationID)
}
