package catalog

import (
	"testing"

	"menuboard/internal/square"
)

func TestIsPresentAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		obj        square.CatalogObject
		locationID string
		want       bool
	}{
		{
			name:       "present everywhere",
			obj:        square.CatalogObject{PresentAtAllLocations: true},
			locationID: "L1",
			want:       true,
		},
		{
			name: "present everywhere except this location",
			obj: square.CatalogObject{
				PresentAtAllLocations: true,
				AbsentAtLocationIDs:   []string{"L2"},
			},
			locationID: "L2",
			want:       false,
		},
		{
			name: "present everywhere, excluded elsewhere",
			obj: square.CatalogObject{
				PresentAtAllLocations: true,
				AbsentAtLocationIDs:   []string{"L2"},
			},
			locationID: "L1",
			want:       true,
		},
		{
			name: "inclusion list hit",
			obj: square.CatalogObject{
				PresentAtLocationIDs: []string{"L1", "L3"},
			},
			locationID: "L3",
			want:       true,
		},
		{
			name: "inclusion list miss",
			obj: square.CatalogObject{
				PresentAtLocationIDs: []string{"L1"},
			},
			locationID: "L2",
			want:       false,
		},
		{
			name:       "no lists at all",
			obj:        square.CatalogObject{},
			locationID: "L1",
			want:       false,
		},
		{
			name: "inclusion list ignored in global mode",
			obj: square.CatalogObject{
				PresentAtAllLocations: true,
				PresentAtLocationIDs:  []string{"L9"},
			},
			locationID: "L1",
			want:       true,
		},
		{
			name: "exclusion list ignored in inclusion mode",
			obj: square.CatalogObject{
				PresentAtLocationIDs: []string{"L1"},
				AbsentAtLocationIDs:  []string{"L1"},
			},
			locationID: "L1",
			want:       true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsPresentAt(tc.obj, tc.locationID); got != tc.want {
				t.Fatalf("IsPresentAt(%+v, %q) = %v, want %v", tc.obj, tc.locationID, got, tc.want)
			}
		})
	}
}
