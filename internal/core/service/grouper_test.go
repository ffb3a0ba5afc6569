package service

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/pkg/money"
)

func entry(id int64, name, price string) domain.ProductEntry {
	return domain.ProductEntry{
		ID:       id,
		Brand:    "Suncoast",
		Name:     name,
		Category: "Knives",
		Price:    price,
	}
}

func TestGroupVariants(t *testing.T) {
	t.Run("VariantCountAndPriceOrder", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(1, "Suncoast Dive Knife - Silver", "$45.00"),
			entry(1, "Suncoast Dive Knife - Black", "$39.00"),
			entry(1, "Suncoast Dive Knife - Titanium", "$89.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		require.Len(t, ps[0].Variants, len(entries))

		for i := 1; i < len(ps[0].Variants); i++ {
			prev := money.Parse(ps[0].Variants[i-1].Price)
			cur := money.Parse(ps[0].Variants[i].Price)
			assert.LessOrEqual(t, prev, cur)
		}
	})

	t.Run("DefaultVariantIsCheapest", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(1, "Suncoast Dive Knife - Silver", "$45.00"),
			entry(1, "Suncoast Dive Knife - Black", "$39.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.Equal(t, ps[0].Variants[0], ps[0].DefaultVariant)
		assert.Equal(t, "Black", ps[0].DefaultVariant.Name)
		assert.Equal(t, "$39.00", ps[0].BasePrice)
	})

	t.Run("PriceRangeSingleValue", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(1, "Mask (Small)", "$10.00"),
			entry(1, "Mask (Medium)", "$10.00"),
			entry(1, "Mask (Large)", "$10.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.Equal(t, "$10.00", ps[0].PriceRange)
	})

	t.Run("PriceRangeSpan", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(1, "Mask (Small)", "$10.00"),
			entry(1, "Mask (Large)", "$25.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.Equal(t, "$10.00 - $25.00", ps[0].PriceRange)
	})

	t.Run("CanonicalNameCollapse", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(1, "Suncoast Dive Knife - Black", "$39.00"),
			entry(1, "Suncoast Dive Knife - Silver", "$45.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.Equal(t, "Suncoast Dive Knife", ps[0].Name)
	})

	t.Run("CanonicalNameCollapseMultibyte", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(1, "Équipement Plongée - Rouge", "$30.00"),
			entry(1, "Équipement Plongée - Noir", "$35.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.Equal(t, "Équipement Plongée", ps[0].Name)
	})

	t.Run("DivergenceInsideRuneStaysValidUTF8", func(t *testing.T) {
		// "é" and "ï" share a lead byte; a byte-wise prefix walk
		// would cut between them and emit broken UTF-8.
		entries := []domain.ProductEntry{
			entry(1, "Café Reef A", "$5.00"),
			entry(1, "Caïman Reef B", "$9.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.True(t, utf8.ValidString(ps[0].Name))
		assert.Equal(t, "Café Reef A", ps[0].Name)
	})

	t.Run("ShortPrefixFallsBackToCheapest", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(1, "A - X", "$5.00"),
			entry(1, "B - Y", "$9.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.Equal(t, "A - X", ps[0].Name)
	})

	t.Run("SingleEntryKeepsNameWithDefaultVariant", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(7, "Reef Gloves (Large)", "$15.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.Equal(t, "Reef Gloves (Large)", ps[0].Name)
		require.Len(t, ps[0].Variants, 1)
		assert.Equal(t, "Default", ps[0].Variants[0].Name)
	})

	t.Run("FirstSeenIDOrder", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(3, "Snorkel - Blue", "$12.00"),
			entry(9, "Wetsuit (M)", "$120.00"),
			entry(3, "Snorkel - Yellow", "$12.00"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 2)
		assert.Equal(t, int64(3), ps[0].ID)
		assert.Equal(t, int64(9), ps[1].ID)
	})

	t.Run("ImageOverride", func(t *testing.T) {
		e := entry(1, "Mask (Large)", "$10.00")
		e.ImageURL = "https://img/products/1.webp"
		entries := []domain.ProductEntry{e}

		ps := GroupVariants(entries, map[int64]string{1: "https://cdn/override.webp"})
		require.Len(t, ps, 1)
		assert.Equal(t, "https://cdn/override.webp", ps[0].ImageURL)

		ps = GroupVariants(entries, nil)
		assert.Equal(t, "https://img/products/1.webp", ps[0].ImageURL)
	})

	t.Run("MalformedPriceSortsAsZero", func(t *testing.T) {
		entries := []domain.ProductEntry{
			entry(1, "Compass - Wrist", "$30.00"),
			entry(1, "Compass - Console", "call for price"),
		}

		ps := GroupVariants(entries, nil)
		require.Len(t, ps, 1)
		assert.Equal(t, "Console", ps[0].DefaultVariant.Name)
		assert.Equal(t, "$0.00 - $30.00", ps[0].PriceRange)
	})
}

func TestVariantName(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.ProductEntry
		want  string
	}{
		{"ParenSuffix", domain.ProductEntry{Name: "Mask (Large)"}, "Large"},
		{"DashSeparator", domain.ProductEntry{Name: "Fin - Size 12"}, "Size 12"},
		{"ColonSeparator", domain.ProductEntry{Name: "Item: Blue"}, "Blue"},
		{"ColorFallback", domain.ProductEntry{Name: "Plain Hood", Color: "Black"}, "Black"},
		{"FullNameFallback", domain.ProductEntry{Name: "Plain Hood"}, "Plain Hood"},
		{"ParenWinsOverDash", domain.ProductEntry{Name: "Knife - Steel (Pointed Tip)"}, "Pointed Tip"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, variantName(tc.entry))
		})
	}
}

func TestVariantIDsUnique(t *testing.T) {
	entries := []domain.ProductEntry{
		{ID: 1, Name: "Hood", Color: "Black", Price: "$20.00"},
		{ID: 1, Name: "Hood", Color: "Black", Price: "$22.00"},
	}

	ps := GroupVariants(entries, nil)
	require.Len(t, ps, 1)
	require.Len(t, ps[0].Variants, 2)
	assert.NotEqual(t, ps[0].Variants[0].VariantID, ps[0].Variants[1].VariantID)
}
