package catalog

import (
	"context"
	"testing"
)

func TestMockCatalogIgnoresLocation(t *testing.T) {
	t.Parallel()

	mock := NewMock()
	first, err := mock.Catalog(context.Background(), "MOCK_LOC_1")
	if err != nil {
		t.Fatalf("mock catalog: %v", err)
	}
	second, err := mock.Catalog(context.Background(), "some-other-location")
	if err != nil {
		t.Fatalf("mock catalog: %v", err)
	}
	if first != second {
		t.Fatal("mock catalog should be identical for every location")
	}
}

func TestMockCatalogConsistency(t *testing.T) {
	t.Parallel()

	view, err := NewMock().Catalog(context.Background(), "")
	if err != nil {
		t.Fatalf("mock catalog: %v", err)
	}

	bucketTotal := 0
	for _, items := range view.ItemsByCategory {
		bucketTotal += len(items)
	}
	if view.TotalItems != bucketTotal {
		t.Fatalf("totalItems %d != bucket total %d", view.TotalItems, bucketTotal)
	}

	countTotal := 0
	for _, category := range view.Categories {
		countTotal += category.ItemCount
		if got := len(view.ItemsByCategory[category.ID]); got != category.ItemCount {
			t.Fatalf("category %s itemCount %d != bucket size %d", category.ID, category.ItemCount, got)
		}
	}
	if view.TotalItems != countTotal {
		t.Fatalf("totalItems %d != category count total %d", view.TotalItems, countTotal)
	}

	for _, items := range view.ItemsByCategory {
		for _, item := range items {
			for _, v := range item.Variations {
				price := v.Price
				if got := FormatPrice(&price, v.Currency); got != v.FormattedPrice {
					t.Fatalf("variation %s formatted price %q does not round-trip (%q)", v.ID, v.FormattedPrice, got)
				}
			}
		}
	}
}

func TestMockCategoriesMatchCatalog(t *testing.T) {
	t.Parallel()

	mock := NewMock()
	view, _ := mock.Catalog(context.Background(), "")
	categories, err := mock.Categories(context.Background(), "")
	if err != nil {
		t.Fatalf("mock categories: %v", err)
	}
	if len(categories) != len(view.Categories) {
		t.Fatalf("categories length %d != view categories length %d", len(categories), len(view.Categories))
	}
}
