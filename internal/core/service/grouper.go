package service

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/pkg/money"
)

// Catalog rows name their variants inside the product name string
// ("Mask (Large)", "Fin - Size 12", "Item: Blue"). There is no
// dedicated variant-name column upstream, so extraction is a
// heuristic and ambiguous names may split wrong.

const minCommonPrefixLen = 10

var parenSuffixRe = regexp.MustCompile(`\(([^)]*)\)\s*$`)

// GroupVariants clusters flat catalog rows sharing an ID into
// aggregate products. Products come out in first-seen ID order;
// within a product, variants are sorted ascending by parsed price
// and the cheapest one is the default.
func GroupVariants(
	entries []domain.ProductEntry, images map[int64]string,
) []domain.Product {
	var order []int64
	groups := make(map[int64][]domain.ProductEntry)

	for _, e := range entries {
		if _, ok := groups[e.ID]; !ok {
			order = append(order, e.ID)
		}
		groups[e.ID] = append(groups[e.ID], e)
	}

	products := make([]domain.Product, 0, len(order))
	for _, id := range order {
		products = append(products, groupOne(id, groups[id], images[id]))
	}
	return products
}

func groupOne(
	id int64, group []domain.ProductEntry, imageOverride string,
) domain.Product {
	slices.SortStableFunc(group, func(a, b domain.ProductEntry) int {
		pa, pb := money.Parse(a.Price), money.Parse(b.Price)
		switch {
		case pa < pb:
			return -1
		case pa > pb:
			return 1
		}
		return 0
	})

	variants := make([]domain.ProductVariant, 0, len(group))
	seenIDs := make(map[string]int)
	for _, e := range group {
		name := variantName(e)
		if len(group) == 1 {
			name = "Default"
		}
		variants = append(variants, domain.ProductVariant{
			VariantID: variantID(name, seenIDs),
			Name:      name,
			Price:     e.Price,
			MSRP:      e.MSRP,
			Color:     e.Color,
			Stock:     e.Stock,
		})
	}

	head := group[0]
	minPrice := money.Parse(head.Price)
	maxPrice := money.Parse(group[len(group)-1].Price)

	return domain.Product{
		ID:             id,
		Brand:          head.Brand,
		Name:           canonicalName(group),
		Category:       head.Category,
		Badge:          head.Badge,
		Description:    head.Description,
		ImageURL:       productImage(group, imageOverride),
		BasePrice:      money.Format(minPrice),
		PriceRange:     money.Range(minPrice, maxPrice),
		Variants:       variants,
		DefaultVariant: variants[0],
	}
}

// variantName extracts the display name of one entry from its
// product name string. Attempts, first match wins: trailing
// parenthesized suffix, " - " suffix, ": " suffix, the Color
// field, the full name.
func variantName(e domain.ProductEntry) string {
	if m := parenSuffixRe.FindStringSubmatch(e.Name); m != nil {
		if v := strings.TrimSpace(m[1]); v != "" {
			return v
		}
	}

	if i := strings.LastIndex(e.Name, " - "); i >= 0 {
		if v := strings.TrimSpace(e.Name[i+3:]); v != "" {
			return v
		}
	}

	if i := strings.LastIndex(e.Name, ": "); i >= 0 {
		if v := strings.TrimSpace(e.Name[i+2:]); v != "" {
			return v
		}
	}

	if e.Color != "" {
		return e.Color
	}

	return e.Name
}

// canonicalName collapses the group's entry names into one product
// name: the longest shared leading substring when it is long enough
// to be meaningful, otherwise the cheapest entry's full name.
func canonicalName(group []domain.ProductEntry) string {
	if len(group) == 1 {
		return group[0].Name
	}

	prefix := group[0].Name
	for _, e := range group[1:] {
		prefix = commonPrefix(prefix, e.Name)
		if prefix == "" {
			break
		}
	}

	prefix = strings.TrimRight(prefix, " -:(")
	if utf8.RuneCountInString(prefix) > minCommonPrefixLen {
		return prefix
	}
	return group[0].Name
}

// commonPrefix walks runes, not bytes, so names diverging inside a
// multi-byte character cannot produce an invalid UTF-8 prefix.
func commonPrefix(a, b string) string {
	ra, rb := []rune(a), []rune(b)
	n := min(len(ra), len(rb))
	i := 0
	for i < n && ra[i] == rb[i] {
		i++
	}
	return string(ra[:i])
}

func variantID(name string, seen map[string]int) string {
	slug := slugify(name)
	seen[slug]++
	if n := seen[slug]; n > 1 {
		return fmt.Sprintf("%s-%d", slug, n)
	}
	return slug
}

func slugify(s string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

func productImage(group []domain.ProductEntry, override string) string {
	if override != "" {
		return override
	}
	for _, e := range group {
		if e.ImageURL != "" {
			return e.ImageURL
		}
	}
	return ""
}
