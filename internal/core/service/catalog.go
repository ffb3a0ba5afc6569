package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
	"github.com/suncoast/diveshop/pkg/money"
)

var _ port.CatalogProvider = (*CatalogService)(nil)

// CatalogService serves the grouped product catalog. The aggregate
// view is recomputed from flat rows on every fetch; nothing is
// cached across calls.
type CatalogService struct {
	repo   port.CatalogRepository
	events port.EventsProducer
}

func NewCatalog(
	repo port.CatalogRepository, events port.EventsProducer,
) CatalogService {
	return CatalogService{repo, events}
}

func (s CatalogService) ListProducts(
	ctx context.Context, f domain.CatalogFilter,
) ([]domain.Product, error) {
	const op = "CatalogService.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.groupAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps = filterProducts(ps, f)
	sortProducts(ps, f.SortBy)
	return ps, nil
}

func (s CatalogService) GetProduct(
	ctx context.Context, productID int64,
) (domain.Product, error) {
	const op = "CatalogService.GetProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	entries, err := s.repo.EntriesByProduct(ctx, productID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(entries) == 0 {
		return domain.Product{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	ps := GroupVariants(entries, s.imageOverrides(ctx))
	p := ps[0]

	s.emit(ctx, domain.ClientEvent{
		Kind:      domain.EventProductView,
		ProductID: p.ID,
		VariantID: p.DefaultVariant.VariantID,
		Price: domain.EventPrice{
			Amount:   money.Parse(p.DefaultVariant.Price),
			Currency: "USD",
		},
		OccurredAt: time.Now().UTC(),
	})

	return p, nil
}

func (s CatalogService) RelatedProducts(
	ctx context.Context, productID int64, limit int,
) ([]domain.Product, error) {
	const op = "CatalogService.RelatedProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.groupAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var target *domain.Product
	for i := range ps {
		if ps[i].ID == productID {
			target = &ps[i]
			break
		}
	}
	if target == nil {
		return nil, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var related []domain.Product
	for _, p := range ps {
		if p.ID == productID || p.Category != target.Category {
			continue
		}
		related = append(related, p)
		if len(related) == limit {
			break
		}
	}
	return related, nil
}

func (s CatalogService) Facets(
	ctx context.Context,
) (domain.CatalogFacets, error) {
	const op = "CatalogService.Facets"

	if err := ctx.Err(); err != nil {
		return domain.CatalogFacets{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.groupAll(ctx)
	if err != nil {
		return domain.CatalogFacets{}, fmt.Errorf("%s: %w", op, err)
	}

	var f domain.CatalogFacets
	categories := make(map[string]struct{})
	brands := make(map[string]struct{})
	badges := make(map[string]struct{})

	for i, p := range ps {
		if p.Category != "" {
			categories[p.Category] = struct{}{}
		}
		if p.Brand != "" {
			brands[p.Brand] = struct{}{}
		}
		if p.Badge != "" {
			badges[p.Badge] = struct{}{}
		}

		price := money.Parse(p.BasePrice)
		if i == 0 || price < f.MinPrice {
			f.MinPrice = price
		}
		if price > f.MaxPrice {
			f.MaxPrice = price
		}
	}

	f.Categories = sortedKeys(categories)
	f.Brands = sortedKeys(brands)
	f.Badges = sortedKeys(badges)
	return f, nil
}

func (s CatalogService) groupAll(
	ctx context.Context,
) ([]domain.Product, error) {
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	return GroupVariants(entries, s.imageOverrides(ctx)), nil
}

// imageOverrides degrades to no overrides when the side table is
// unreadable; the listing still renders with row-level images.
func (s CatalogService) imageOverrides(ctx context.Context) map[int64]string {
	const op = "CatalogService.imageOverrides"

	images, err := s.repo.ImageOverrides(ctx)
	if err != nil {
		slog.Warn("failed to load image overrides", "op", op, "err", err)
		return nil
	}
	return images
}

func (s CatalogService) emit(ctx context.Context, evt domain.ClientEvent) {
	const op = "CatalogService.emit"

	if s.events == nil {
		return
	}
	if err := s.events.ProduceEvent(ctx, evt); err != nil {
		slog.Error("failed to produce client event", "op", op, "err", err)
	}
}

func filterProducts(
	ps []domain.Product, f domain.CatalogFilter,
) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	kept := ps[:0]
	for _, p := range ps {
		if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
			continue
		}
		if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
			continue
		}
		if len(f.Badges) > 0 &&
			(p.Badge == "" || !slices.Contains(f.Badges, p.Badge)) {
			continue
		}

		price := money.Parse(p.BasePrice)
		if price < f.MinPrice {
			continue
		}
		if f.MaxPrice > 0 && price > f.MaxPrice {
			continue
		}

		if query != "" && !matchesQuery(p, query) {
			continue
		}

		kept = append(kept, p)
	}
	return kept
}

func matchesQuery(p domain.Product, query string) bool {
	for _, field := range []string{p.Name, p.Brand, p.Description, p.Category} {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func sortProducts(ps []domain.Product, by domain.SortOption) {
	switch by {
	case domain.SortNameAsc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return strings.Compare(a.Name, b.Name)
		})
	case domain.SortNameDesc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return strings.Compare(b.Name, a.Name)
		})
	case domain.SortPriceAsc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return comparePrices(a, b)
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			return comparePrices(b, a)
		})
	case domain.SortNewest:
		// "New Arrival" badge first, then higher IDs as newer.
		slices.SortStableFunc(ps, func(a, b domain.Product) int {
			an, bn := a.Badge == "New Arrival", b.Badge == "New Arrival"
			switch {
			case an && !bn:
				return -1
			case bn && !an:
				return 1
			case a.ID > b.ID:
				return -1
			case a.ID < b.ID:
				return 1
			}
			return 0
		})
	}
}

func comparePrices(a, b domain.Product) int {
	pa, pb := money.Parse(a.BasePrice), money.Parse(b.BasePrice)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
