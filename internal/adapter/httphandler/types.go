package httphandler

import (
	"time"

	"github.com/suncoast/diveshop/internal/core/domain"
)

type (
	Product struct {
		ID             int64            `json:"id"`
		Brand          string           `json:"brand"`
		Name           string           `json:"name"`
		Category       string           `json:"category"`
		Badge          string           `json:"badge,omitempty"`
		Description    string           `json:"description"`
		ImageURL       string           `json:"image_url"`
		BasePrice      string           `json:"base_price"`
		PriceRange     string           `json:"price_range"`
		Variants       []ProductVariant `json:"variants"`
		DefaultVariant ProductVariant   `json:"default_variant"`
	}

	ProductVariant struct {
		VariantID string         `json:"variant_id"`
		Name      string         `json:"name"`
		Price     string         `json:"price"`
		MSRP      string         `json:"msrp,omitempty"`
		Color     string         `json:"color,omitempty"`
		Stock     []StockVariant `json:"stock,omitempty"`
	}

	StockVariant struct {
		Size      string `json:"size,omitempty"`
		Color     string `json:"color,omitempty"`
		Inventory int    `json:"inventory"`
	}

	CatalogFacets struct {
		Categories []string `json:"categories"`
		Brands     []string `json:"brands"`
		Badges     []string `json:"badges"`
		MinPrice   float64  `json:"min_price"`
		MaxPrice   float64  `json:"max_price"`
	}
)

type (
	Cart struct {
		ID        string     `json:"id"`
		Items     []CartItem `json:"items"`
		ItemCount int        `json:"item_count"`
		Subtotal  float64    `json:"subtotal"`
	}

	CartItem struct {
		ProductID   int64  `json:"product_id"`
		VariantID   string `json:"variant_id"`
		Name        string `json:"name"`
		VariantName string `json:"variant_name"`
		UnitPrice   string `json:"unit_price"`
		Quantity    int    `json:"quantity"`
	}
)

type Promotion struct {
	Location   string    `json:"location"`
	Heading    string    `json:"heading"`
	Subheading string    `json:"subheading"`
	ButtonText string    `json:"button_text"`
	ButtonLink string    `json:"button_link"`
	Active     bool      `json:"is_active"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BlogPost struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Excerpt          string    `json:"excerpt"`
	Author           string    `json:"author"`
	Category         string    `json:"category"`
	FeaturedImageURL string    `json:"featured_image_url"`
	PublishedAt      time.Time `json:"published_at"`
}

type (
	ServiceCategory struct {
		ID           int64     `json:"id"`
		Name         string    `json:"name"`
		Slug         string    `json:"slug"`
		Icon         string    `json:"icon"`
		Description  string    `json:"description"`
		DisplayOrder int       `json:"display_order"`
		Active       bool      `json:"is_active"`
		UpdatedAt    time.Time `json:"updated_at"`
	}

	DiveService struct {
		ID           int64     `json:"id"`
		CategoryID   int64     `json:"category_id"`
		Name         string    `json:"name"`
		Slug         string    `json:"slug"`
		Description  string    `json:"description"`
		Price        float64   `json:"price"`
		PriceText    string    `json:"price_text"`
		Duration     string    `json:"duration,omitempty"`
		Depth        string    `json:"depth,omitempty"`
		Includes     []string  `json:"includes"`
		DisplayOrder int       `json:"display_order"`
		Active       bool      `json:"is_active"`
		Featured     bool      `json:"is_featured"`
		UpdatedAt    time.Time `json:"updated_at"`
	}
)

type SearchResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func productFromDomain(v domain.Product) Product {
	p := Product{
		ID:             v.ID,
		Brand:          v.Brand,
		Name:           v.Name,
		Category:       v.Category,
		Badge:          v.Badge,
		Description:    v.Description,
		ImageURL:       v.ImageURL,
		BasePrice:      v.BasePrice,
		PriceRange:     v.PriceRange,
		DefaultVariant: variantFromDomain(v.DefaultVariant),
	}
	p.Variants = make([]ProductVariant, len(v.Variants))
	for i := range v.Variants {
		p.Variants[i] = variantFromDomain(v.Variants[i])
	}
	return p
}

func productsFromDomain(vs []domain.Product) []Product {
	ps := make([]Product, len(vs))
	for i := range vs {
		ps[i] = productFromDomain(vs[i])
	}
	return ps
}

func variantFromDomain(v domain.ProductVariant) ProductVariant {
	pv := ProductVariant{
		VariantID: v.VariantID,
		Name:      v.Name,
		Price:     v.Price,
		MSRP:      v.MSRP,
		Color:     v.Color,
	}
	for _, sv := range v.Stock {
		pv.Stock = append(pv.Stock, StockVariant(sv))
	}
	return pv
}

func cartFromDomain(v domain.Cart) Cart {
	c := Cart{
		ID:        v.ID,
		Items:     make([]CartItem, len(v.Items)),
		ItemCount: v.ItemCount(),
		Subtotal:  v.Subtotal(),
	}
	for i := range v.Items {
		c.Items[i] = CartItem(v.Items[i])
	}
	return c
}

func promotionFromDomain(v domain.Promotion) Promotion {
	return Promotion(v)
}

func postFromDomain(v domain.BlogPost) BlogPost {
	return BlogPost{
		ID:               v.ID,
		Title:            v.Title,
		Slug:             v.Slug,
		Excerpt:          v.Excerpt,
		Author:           v.Author,
		Category:         v.Category,
		FeaturedImageURL: v.FeaturedImageURL,
		PublishedAt:      v.PublishedAt,
	}
}

func categoryFromDomain(v domain.ServiceCategory) ServiceCategory {
	return ServiceCategory(v)
}

func serviceFromDomain(v domain.DiveService) DiveService {
	s := DiveService(v)
	if s.Includes == nil {
		s.Includes = []string{}
	}
	return s
}
