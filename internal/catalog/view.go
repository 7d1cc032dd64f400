package catalog

// Sentinels for items whose category reference is absent or unresolvable.
const (
	UncategorizedID   = "uncategorized"
	UncategorizedName = "Uncategorized"
)

// View is the location-scoped, category-grouped menu served to clients.
// Views are built once per aggregation and never mutated afterwards.
type View struct {
	Categories      []Category            `json:"categories"`
	ItemsByCategory map[string][]MenuItem `json:"itemsByCategory"`
	TotalItems      int                   `json:"totalItems"`
}

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ItemCount int    `json:"itemCount"`
}

type MenuItem struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	CategoryID   string      `json:"categoryId"`
	CategoryName string      `json:"categoryName"`
	ImageURL     *string     `json:"imageUrl"`
	Variations   []Variation `json:"variations"`
}

type Variation struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	FormattedPrice string `json:"formattedPrice"`
	Currency       string `json:"currency"`
}
