package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

const (
	minQueryLen     = 2
	perSourceLimit  = 5
	searchCatProd   = "products"
	searchCatBlog   = "blog"
	searchCatGroups = "categories"
	searchCatPages  = "pages"
)

type staticPage struct {
	title       string
	url         string
	description string
	keywords    string
}

var staticPages = []staticPage{
	{"Home", "/", "Suncoast Dive Center - Florida's premier dive center offering courses, equipment, and charters", "home suncoast dive center florida gulf coast"},
	{"Services", "/services", "Dive courses, PADI certifications, equipment rental, tank fills, and equipment service", "services courses padi certification equipment rental tank fills"},
	{"Visibility Reports", "/visibility", "Current dive site visibility reports and conditions", "visibility dive sites conditions reports"},
	{"About Us", "/about", "About Suncoast Dive Center - our mission, team, and commitment to diving excellence", "about team mission history"},
	{"Contact", "/contact", "Contact us - location, hours, phone, and email", "contact location hours phone email address"},
	{"Blog", "/blog", "From the Deep - diving tips, stories, and news", "blog articles news stories tips"},
	{"Dive Shop", "/diveshop", "Browse our complete selection of diving equipment, gear, and accessories", "shop products equipment gear buy purchase"},
}

var _ port.Searcher = (*SearchService)(nil)

// SearchService runs the site-wide search across products, blog
// posts, product categories, and the static pages. A failing
// source is skipped; the remaining sources still answer.
type SearchService struct {
	catalog  port.CatalogRepository
	blog     port.BlogRepository
	services port.ServicesRepository
}

func NewSearch(
	catalog port.CatalogRepository,
	blog port.BlogRepository,
	services port.ServicesRepository,
) SearchService {
	return SearchService{catalog, blog, services}
}

func (s SearchService) Search(
	ctx context.Context, query string,
) ([]domain.SearchResult, error) {
	const op = "SearchService.Search"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if len(query) < minQueryLen {
		return nil, nil
	}

	var results []domain.SearchResult
	results = append(results, s.searchProducts(ctx, query)...)
	results = append(results, s.searchBlog(ctx, query)...)
	results = append(results, s.searchCategories(ctx, query)...)
	results = append(results, searchStaticPages(query)...)
	return results, nil
}

func (s SearchService) searchProducts(
	ctx context.Context, query string,
) []domain.SearchResult {
	const op = "SearchService.searchProducts"

	entries, err := s.catalog.SearchEntries(ctx, query, perSourceLimit)
	if err != nil {
		slog.Warn("product search failed", "op", op, "err", err)
		return nil
	}

	var rs []domain.SearchResult
	for _, e := range entries {
		desc := e.Description
		if desc == "" {
			desc = e.Brand + " - " + e.Category
		}
		rs = append(rs, domain.SearchResult{
			Title:       e.Name,
			URL:         fmt.Sprintf("/diveshop/%d", e.ID),
			Description: desc,
			Category:    searchCatProd,
		})
	}
	return rs
}

func (s SearchService) searchBlog(
	ctx context.Context, query string,
) []domain.SearchResult {
	const op = "SearchService.searchBlog"

	posts, err := s.blog.SearchPublished(ctx, query, perSourceLimit)
	if err != nil {
		slog.Warn("blog search failed", "op", op, "err", err)
		return nil
	}

	var rs []domain.SearchResult
	for _, p := range posts {
		desc := p.Excerpt
		if desc == "" {
			desc = "Blog post from Suncoast Dive Center"
		}
		rs = append(rs, domain.SearchResult{
			Title:       p.Title,
			URL:         "/blog/" + p.Slug,
			Description: desc,
			Category:    searchCatBlog,
		})
	}
	return rs
}

func (s SearchService) searchCategories(
	ctx context.Context, query string,
) []domain.SearchResult {
	const op = "SearchService.searchCategories"

	cs, err := s.services.SearchActiveCategories(ctx, query, perSourceLimit)
	if err != nil {
		slog.Warn("category search failed", "op", op, "err", err)
		return nil
	}

	var rs []domain.SearchResult
	for _, c := range cs {
		desc := c.Description
		if desc == "" {
			desc = "Browse " + c.Name + " products"
		}
		rs = append(rs, domain.SearchResult{
			Title:       c.Name,
			URL:         "/diveshop?category=" + url.QueryEscape(c.Name),
			Description: desc,
			Category:    searchCatGroups,
		})
	}
	return rs
}

func searchStaticPages(query string) []domain.SearchResult {
	var rs []domain.SearchResult
	for _, page := range staticPages {
		haystack := strings.ToLower(
			page.title + " " + page.description + " " + page.keywords,
		)
		if !strings.Contains(haystack, query) {
			continue
		}
		rs = append(rs, domain.SearchResult{
			Title:       page.title,
			URL:         page.url,
			Description: page.description,
			Category:    searchCatPages,
		})
		if len(rs) == perSourceLimit {
			break
		}
	}
	return rs
}
