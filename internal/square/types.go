package square

import (
	"bytes"
	"fmt"
	"strconv"
)

// Catalog object type discriminants used by the Square catalog API.
const (
	TypeItem          = "ITEM"
	TypeItemVariation = "ITEM_VARIATION"
	TypeCategory      = "CATEGORY"
	TypeImage         = "IMAGE"
)

// CatalogObject is the generic container Square uses for every catalog
// entity. Type selects which of the *Data payloads is populated.
type CatalogObject struct {
	Type                  string   `json:"type"`
	ID                    string   `json:"id"`
	IsDeleted             bool     `json:"is_deleted,omitempty"`
	PresentAtAllLocations bool     `json:"present_at_all_locations,omitempty"`
	PresentAtLocationIDs  []string `json:"present_at_location_ids,omitempty"`
	AbsentAtLocationIDs   []string `json:"absent_at_location_ids,omitempty"`

	ItemData          *ItemData          `json:"item_data,omitempty"`
	ItemVariationData *ItemVariationData `json:"item_variation_data,omitempty"`
	CategoryData      *CategoryData      `json:"category_data,omitempty"`
	ImageData         *ImageData         `json:"image_data,omitempty"`
}

type ItemData struct {
	Name        string              `json:"name,omitempty"`
	Description string              `json:"description,omitempty"`
	Categories  []CategoryReference `json:"categories,omitempty"`
	Variations  []CatalogObject     `json:"variations,omitempty"`
	ImageIDs    []string            `json:"image_ids,omitempty"`
}

type CategoryReference struct {
	ID      string `json:"id,omitempty"`
	Ordinal int64  `json:"ordinal,omitempty"`
}

type ItemVariationData struct {
	ItemID     string `json:"item_id,omitempty"`
	Name       string `json:"name,omitempty"`
	Ordinal    int64  `json:"ordinal,omitempty"`
	PriceMoney *Money `json:"price_money,omitempty"`
}

type CategoryData struct {
	Name string `json:"name,omitempty"`
}

type ImageData struct {
	Name    string `json:"name,omitempty"`
	URL     string `json:"url,omitempty"`
	Caption string `json:"caption,omitempty"`
}

type Money struct {
	Amount   *Amount `json:"amount,omitempty"`
	Currency string  `json:"currency,omitempty"`
}

// Amount is an integer number of minor currency units. Square emits it as a
// plain JSON number or, for 64-bit safety, as a string-encoded integer; both
// decode to the same value.
type Amount int64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = 0
		return nil
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("unmarshal money amount %q: %w", data, err)
	}
	*a = Amount(v)
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(int64(a), 10)), nil
}

// Location is the raw merchant location returned by the locations API.
type Location struct {
	ID       string   `json:"id"`
	Name     string   `json:"name,omitempty"`
	Address  *Address `json:"address,omitempty"`
	Timezone string   `json:"timezone,omitempty"`
	Status   string   `json:"status,omitempty"`
}

const (
	LocationStatusActive   = "ACTIVE"
	LocationStatusInactive = "INACTIVE"
)

type Address struct {
	AddressLine1                 string `json:"address_line_1,omitempty"`
	AddressLine2                 string `json:"address_line_2,omitempty"`
	Locality                     string `json:"locality,omitempty"`
	AdministrativeDistrictLevel1 string `json:"administrative_district_level_1,omitempty"`
	PostalCode                   string `json:"postal_code,omitempty"`
	Country                      string `json:"country,omitempty"`
}
