package catalog

import "context"

// Mock serves a fixed catalog shaped exactly like live aggregation output,
// for environments without real upstream data. Every location gets the same
// catalog; the locationID argument is deliberately ignored.
type Mock struct {
	view *View
}

var _ Provider = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{view: buildMockView()}
}

func (m *Mock) Catalog(_ context.Context, _ string) (*View, error) {
	return m.view, nil
}

func (m *Mock) Categories(_ context.Context, _ string) ([]Category, error) {
	return m.view.Categories, nil
}

func mockItem(id, name, description, categoryID, categoryName string, variations ...Variation) MenuItem {
	return MenuItem{
		ID:           id,
		Name:         name,
		Description:  description,
		CategoryID:   categoryID,
		CategoryName: categoryName,
		ImageURL:     nil,
		Variations:   variations,
	}
}

func mockVariation(id, name string, price int64) Variation {
	return Variation{
		ID:             id,
		Name:           name,
		Price:          price,
		FormattedPrice: FormatPrice(&price, "USD"),
		Currency:       "USD",
	}
}

func buildMockView() *View {
	itemsByCategory := map[string][]MenuItem{
		"MOCK_CAT_1": {
			mockItem("MOCK_ITEM_1", "Spring Rolls",
				"Crispy vegetable spring rolls served with sweet and sour dipping sauce",
				"MOCK_CAT_1", "Appetizers",
				mockVariation("MOCK_VAR_1", "Regular (4 pieces)", 850)),
			mockItem("MOCK_ITEM_2", "Chicken Satay",
				"Grilled chicken skewers marinated in spices, served with peanut sauce",
				"MOCK_CAT_1", "Appetizers",
				mockVariation("MOCK_VAR_2", "Regular (3 skewers)", 1200)),
			mockItem("MOCK_ITEM_3", "Edamame",
				"Steamed soybeans sprinkled with sea salt",
				"MOCK_CAT_1", "Appetizers",
				mockVariation("MOCK_VAR_3", "Regular", 600)),
		},
		"MOCK_CAT_2": {
			mockItem("MOCK_ITEM_4", "Pad Thai",
				"Stir-fried rice noodles with shrimp, tofu, bean sprouts, and peanuts",
				"MOCK_CAT_2", "Main Courses",
				mockVariation("MOCK_VAR_4", "Regular", 1650),
				mockVariation("MOCK_VAR_5", "Large", 1950)),
			mockItem("MOCK_ITEM_5", "Green Curry",
				"Thai green curry with chicken, eggplant, and basil leaves, served with jasmine rice",
				"MOCK_CAT_2", "Main Courses",
				mockVariation("MOCK_VAR_6", "Regular", 1800)),
			mockItem("MOCK_ITEM_6", "Beef Teriyaki",
				"Grilled beef marinated in teriyaki sauce, served with steamed vegetables and rice",
				"MOCK_CAT_2", "Main Courses",
				mockVariation("MOCK_VAR_7", "Regular", 2200)),
			mockItem("MOCK_ITEM_7", "Vegetable Stir Fry",
				"Fresh seasonal vegetables stir-fried in a light soy sauce",
				"MOCK_CAT_2", "Main Courses",
				mockVariation("MOCK_VAR_8", "Regular", 1400)),
		},
		"MOCK_CAT_3": {
			mockItem("MOCK_ITEM_8", "Mango Sticky Rice",
				"Sweet sticky rice topped with fresh mango slices and coconut cream",
				"MOCK_CAT_3", "Desserts",
				mockVariation("MOCK_VAR_9", "Regular", 800)),
			mockItem("MOCK_ITEM_9", "Chocolate Lava Cake",
				"Warm chocolate cake with a molten center, served with vanilla ice cream",
				"MOCK_CAT_3", "Desserts",
				mockVariation("MOCK_VAR_10", "Regular", 950)),
		},
		"MOCK_CAT_4": {
			mockItem("MOCK_ITEM_10", "Thai Iced Tea",
				"Traditional Thai tea with condensed milk and ice",
				"MOCK_CAT_4", "Beverages",
				mockVariation("MOCK_VAR_11", "Regular", 450)),
			mockItem("MOCK_ITEM_11", "Fresh Coconut Water",
				"Fresh coconut water served in the shell",
				"MOCK_CAT_4", "Beverages",
				mockVariation("MOCK_VAR_12", "Regular", 550)),
			mockItem("MOCK_ITEM_12", "Green Tea",
				"Premium Japanese green tea",
				"MOCK_CAT_4", "Beverages",
				mockVariation("MOCK_VAR_13", "Regular", 350)),
			mockItem("MOCK_ITEM_13", "Fresh Orange Juice",
				"Freshly squeezed orange juice",
				"MOCK_CAT_4", "Beverages",
				mockVariation("MOCK_VAR_14", "Regular", 500)),
			mockItem("MOCK_ITEM_14", "Sparkling Water",
				"Premium sparkling water",
				"MOCK_CAT_4", "Beverages",
				mockVariation("MOCK_VAR_15", "Regular", 300)),
		},
	}

	return &View{
		// Sorted by name, matching live aggregation output.
		Categories: []Category{
			{ID: "MOCK_CAT_1", Name: "Appetizers", ItemCount: 3},
			{ID: "MOCK_CAT_4", Name: "Beverages", ItemCount: 5},
			{ID: "MOCK_CAT_3", Name: "Desserts", ItemCount: 2},
			{ID: "MOCK_CAT_2", Name: "Main Courses", ItemCount: 4},
		},
		ItemsByCategory: itemsByCategory,
		TotalItems:      14,
	}
}
