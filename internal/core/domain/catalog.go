package domain

type (
	// StockVariant is one size/color bucket of a catalog row with
	// its inventory count.
	StockVariant struct {
		Size      string
		Color     string
		Inventory int
	}

	// ProductEntry is one flat catalog row, one purchasable SKU.
	// Entries of the same product share the ID field.
	ProductEntry struct {
		ID          int64
		Brand       string
		Name        string
		Category    string
		Price       string
		MSRP        string
		Badge       string
		Color       string
		Description string
		ImageURL    string
		Stock       []StockVariant
	}

	ProductVariant struct {
		VariantID string
		Name      string
		Price     string
		MSRP      string
		Color     string
		Stock     []StockVariant
	}

	// Product is the aggregate storefront view of all entries
	// sharing one ID. Variants are sorted ascending by price and
	// DefaultVariant is always the cheapest.
	Product struct {
		ID             int64
		Brand          string
		Name           string
		Category       string
		Badge          string
		Description    string
		ImageURL       string
		BasePrice      string
		PriceRange     string
		Variants       []ProductVariant
		DefaultVariant ProductVariant
	}
)

type SortOption string

const (
	SortNameAsc   SortOption = "name-asc"
	SortNameDesc  SortOption = "name-desc"
	SortPriceAsc  SortOption = "price-asc"
	SortPriceDesc SortOption = "price-desc"
	SortNewest    SortOption = "newest"
)

// CatalogFilter narrows and orders a grouped product listing.
// Zero MaxPrice means no upper bound.
type CatalogFilter struct {
	Query      string
	Categories []string
	Brands     []string
	Badges     []string
	MinPrice   float64
	MaxPrice   float64
	SortBy     SortOption
}

// CatalogFacets are the distinct filterable values over the
// grouped catalog.
type CatalogFacets struct {
	Categories []string
	Brands     []string
	Badges     []string
	MinPrice   float64
	MaxPrice   float64
}
