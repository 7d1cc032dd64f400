package locations

import "context"

// Mock serves two fixed locations for environments without Square data.
type Mock struct{}

var _ Fetcher = Mock{}

var mockLocations = []Location{
	{
		ID:   "MOCK_LOC_1",
		Name: "Downtown Restaurant",
		Address: Address{
			Line1:      "123 Main Street",
			City:       "San Francisco",
			State:      "CA",
			PostalCode: "94102",
			Country:    "US",
		},
		Timezone: "America/Los_Angeles",
		Status:   "ACTIVE",
	},
	{
		ID:   "MOCK_LOC_2",
		Name: "Uptown Cafe",
		Address: Address{
			Line1:      "456 Market Street",
			Line2:      "Suite 200",
			City:       "San Francisco",
			State:      "CA",
			PostalCode: "94105",
			Country:    "US",
		},
		Timezone: "America/Los_Angeles",
		Status:   "ACTIVE",
	},
}

func (Mock) FetchLocations(_ context.Context) ([]Location, error) {
	return mockLocations, nil
}
