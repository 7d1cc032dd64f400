package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"menuboard/internal/square"
)

// Source delivers pages of raw catalog objects. An empty page cursor signals
// the end of pagination.
type Source interface {
	SearchCatalog(ctx context.Context, cursor string) (*square.CatalogPage, error)
}

// Provider is what the route layer consumes: either the live aggregation
// service or the mock dataset.
type Provider interface {
	Catalog(ctx context.Context, locationID string) (*View, error)
	Categories(ctx context.Context, locationID string) ([]Category, error)
}

// Service aggregates the raw paginated catalog feed into location-scoped
// views.
type Service struct {
	source Source
}

var _ Provider = (*Service)(nil)

func NewService(source Source) *Service {
	return &Service{source: source}
}

// Catalog fetches every catalog page, filters items to those sold at
// locationID, joins categories and images, and groups the result by
// category. An upstream error on any page aborts the whole aggregation.
func (s *Service) Catalog(ctx context.Context, locationID string) (*View, error) {
	var items []square.CatalogObject
	var related []square.CatalogObject

	cursor := ""
	for {
		page, err := s.source.SearchCatalog(ctx, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetch catalog page: %w", err)
		}
		items = append(items, page.Objects...)
		related = append(related, page.RelatedObjects...)
		if page.Cursor == "" {
			break
		}
		cursor = page.Cursor
	}

	index := newRelatedIndex(related)

	view := &View{
		ItemsByCategory: make(map[string][]MenuItem),
	}
	counts := make(map[string]int)

	for _, obj := range items {
		if obj.Type != square.TypeItem || obj.ItemData == nil {
			continue
		}
		if !IsPresentAt(obj, locationID) {
			continue
		}

		item := buildMenuItem(obj, index)
		view.ItemsByCategory[item.CategoryID] = append(view.ItemsByCategory[item.CategoryID], item)
		counts[item.CategoryID]++
		view.TotalItems++
	}

	view.Categories = buildCategories(counts, index)

	slog.DebugContext(ctx, "aggregated catalog",
		"location_id", locationID,
		"items", view.TotalItems,
		"categories", len(view.Categories))
	return view, nil
}

// Categories reuses the full aggregation so the per-category counts reflect
// what the location actually sells.
func (s *Service) Categories(ctx context.Context, locationID string) ([]Category, error) {
	view, err := s.Catalog(ctx, locationID)
	if err != nil {
		return nil, err
	}
	return view.Categories, nil
}

func buildMenuItem(obj square.CatalogObject, index *relatedIndex) MenuItem {
	data := obj.ItemData

	categoryID := UncategorizedID
	categoryName := UncategorizedName
	if len(data.Categories) > 0 {
		if category, ok := index.category(data.Categories[0].ID); ok {
			categoryID = category.ID
			if category.CategoryData != nil && category.CategoryData.Name != "" {
				categoryName = category.CategoryData.Name
			}
		}
	}

	var imageURL *string
	if len(data.ImageIDs) > 0 {
		if url, ok := index.imageURL(data.ImageIDs[0]); ok {
			imageURL = &url
		}
	}

	name := data.Name
	if name == "" {
		name = "Unknown Item"
	}

	return MenuItem{
		ID:           obj.ID,
		Name:         name,
		Description:  data.Description,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		ImageURL:     imageURL,
		Variations:   buildVariations(data.Variations),
	}
}

func buildVariations(objects []square.CatalogObject) []Variation {
	variations := make([]Variation, 0, len(objects))
	for _, obj := range objects {
		data := obj.ItemVariationData
		if data == nil {
			continue
		}

		name := data.Name
		if name == "" {
			name = "Regular"
		}

		var price int64
		currency := "USD"
		var amount *int64
		if data.PriceMoney != nil {
			if data.PriceMoney.Amount != nil {
				price = int64(*data.PriceMoney.Amount)
				amount = &price
			}
			if data.PriceMoney.Currency != "" {
				currency = data.PriceMoney.Currency
			}
		}

		variations = append(variations, Variation{
			ID:             obj.ID,
			Name:           name,
			Price:          price,
			FormattedPrice: FormatPrice(amount, currency),
			Currency:       currency,
		})
	}

	sort.SliceStable(variations, func(i, j int) bool {
		return variations[i].Price < variations[j].Price
	})
	return variations
}

func buildCategories(counts map[string]int, index *relatedIndex) []Category {
	categories := make([]Category, 0, len(counts))
	for id, count := range counts {
		name := UncategorizedName
		if id != UncategorizedID {
			resolved, ok := index.categoryName(id)
			if !ok || resolved == "" {
				resolved = "Unknown"
			}
			name = resolved
		}
		categories = append(categories, Category{ID: id, Name: name, ItemCount: count})
	}

	collator := collate.New(language.AmericanEnglish)
	sort.Slice(categories, func(i, j int) bool {
		return collator.CompareString(categories[i].Name, categories[j].Name) < 0
	})
	return categories
}
