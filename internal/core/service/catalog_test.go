package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/suncoast/diveshop/internal/core/domain"
)

type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListEntries(
	ctx context.Context,
) ([]domain.ProductEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]domain.ProductEntry)
	return entries, args.Error(1)
}

func (m *MockCatalogRepository) EntriesByProduct(
	ctx context.Context, id int64,
) ([]domain.ProductEntry, error) {
	args := m.Called(ctx, id)
	entries, _ := args.Get(0).([]domain.ProductEntry)
	return entries, args.Error(1)
}

func (m *MockCatalogRepository) SearchEntries(
	ctx context.Context, query string, limit int,
) ([]domain.ProductEntry, error) {
	args := m.Called(ctx, query, limit)
	entries, _ := args.Get(0).([]domain.ProductEntry)
	return entries, args.Error(1)
}

func (m *MockCatalogRepository) ImageOverrides(
	ctx context.Context,
) (map[int64]string, error) {
	args := m.Called(ctx)
	images, _ := args.Get(0).(map[int64]string)
	return images, args.Error(1)
}

func catalogFixture() []domain.ProductEntry {
	return []domain.ProductEntry{
		{ID: 1, Brand: "Suncoast", Name: "Suncoast Dive Knife - Black", Category: "Knives", Price: "$39.00"},
		{ID: 1, Brand: "Suncoast", Name: "Suncoast Dive Knife - Silver", Category: "Knives", Price: "$45.00"},
		{ID: 2, Brand: "OceanPro", Name: "Frameless Mask (Clear)", Category: "Masks", Price: "$65.00", Badge: "New Arrival"},
		{ID: 3, Brand: "OceanPro", Name: "Low Volume Mask (Black)", Category: "Masks", Price: "$80.00", Badge: "Sale"},
	}
}

func newCatalogWithFixture(t *testing.T) CatalogService {
	t.Helper()
	repo := new(MockCatalogRepository)
	repo.On("ListEntries", mock.Anything).Return(catalogFixture(), nil)
	repo.On("ImageOverrides", mock.Anything).Return(map[int64]string(nil), nil)
	return NewCatalog(repo, nil)
}

func TestCatalogListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("NoFilterGroupsAll", func(t *testing.T) {
		s := newCatalogWithFixture(t)

		ps, err := s.ListProducts(ctx, domain.CatalogFilter{})
		require.NoError(t, err)
		require.Len(t, ps, 3)
		assert.Equal(t, "Suncoast Dive Knife", ps[0].Name)
		assert.Len(t, ps[0].Variants, 2)
	})

	t.Run("CategoryFilter", func(t *testing.T) {
		s := newCatalogWithFixture(t)

		ps, err := s.ListProducts(ctx, domain.CatalogFilter{
			Categories: []string{"Masks"},
		})
		require.NoError(t, err)
		require.Len(t, ps, 2)
		for _, p := range ps {
			assert.Equal(t, "Masks", p.Category)
		}
	})

	t.Run("BadgeFilterExcludesUnbadged", func(t *testing.T) {
		s := newCatalogWithFixture(t)

		ps, err := s.ListProducts(ctx, domain.CatalogFilter{
			Badges: []string{"Sale"},
		})
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, int64(3), ps[0].ID)
	})

	t.Run("PriceRangeFilter", func(t *testing.T) {
		s := newCatalogWithFixture(t)

		ps, err := s.ListProducts(ctx, domain.CatalogFilter{
			MinPrice: 50, MaxPrice: 70,
		})
		require.NoError(t, err)
		require.Len(t, ps, 1)
		assert.Equal(t, int64(2), ps[0].ID)
	})

	t.Run("QueryMatchesBrand", func(t *testing.T) {
		s := newCatalogWithFixture(t)

		ps, err := s.ListProducts(ctx, domain.CatalogFilter{Query: "oceanpro"})
		require.NoError(t, err)
		assert.Len(t, ps, 2)
	})

	t.Run("SortNewestPutsNewArrivalFirst", func(t *testing.T) {
		s := newCatalogWithFixture(t)

		ps, err := s.ListProducts(ctx, domain.CatalogFilter{
			SortBy: domain.SortNewest,
		})
		require.NoError(t, err)
		require.Len(t, ps, 3)
		assert.Equal(t, int64(2), ps[0].ID)
		assert.Equal(t, int64(3), ps[1].ID)
		assert.Equal(t, int64(1), ps[2].ID)
	})

	t.Run("SortPriceDesc", func(t *testing.T) {
		s := newCatalogWithFixture(t)

		ps, err := s.ListProducts(ctx, domain.CatalogFilter{
			SortBy: domain.SortPriceDesc,
		})
		require.NoError(t, err)
		require.Len(t, ps, 3)
		assert.Equal(t, "$80.00", ps[0].BasePrice)
		assert.Equal(t, "$39.00", ps[2].BasePrice)
	})

	t.Run("RepositoryErrorPropagates", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("ListEntries", mock.Anything).
			Return(nil, errors.New("connection refused"))
		s := NewCatalog(repo, nil)

		_, err := s.ListProducts(ctx, domain.CatalogFilter{})
		require.Error(t, err)
	})
}

func TestCatalogGetProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("NotFound", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("EntriesByProduct", mock.Anything, int64(99)).
			Return([]domain.ProductEntry(nil), nil)
		s := NewCatalog(repo, nil)

		_, err := s.GetProduct(ctx, 99)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("GroupsEntries", func(t *testing.T) {
		repo := new(MockCatalogRepository)
		repo.On("EntriesByProduct", mock.Anything, int64(1)).
			Return(catalogFixture()[:2], nil)
		repo.On("ImageOverrides", mock.Anything).
			Return(map[int64]string(nil), nil)
		s := NewCatalog(repo, nil)

		p, err := s.GetProduct(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, "Suncoast Dive Knife", p.Name)
		assert.Equal(t, p.Variants[0], p.DefaultVariant)
	})
}

func TestCatalogRelatedProducts(t *testing.T) {
	ctx := context.Background()
	s := newCatalogWithFixture(t)

	related, err := s.RelatedProducts(ctx, 2, 4)
	require.NoError(t, err)
	require.Len(t, related, 1)
	assert.Equal(t, int64(3), related[0].ID)
}

func TestCatalogFacets(t *testing.T) {
	ctx := context.Background()
	s := newCatalogWithFixture(t)

	f, err := s.Facets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Knives", "Masks"}, f.Categories)
	assert.Equal(t, []string{"OceanPro", "Suncoast"}, f.Brands)
	assert.Equal(t, []string{"New Arrival", "Sale"}, f.Badges)
	assert.Equal(t, 39.0, f.MinPrice)
	assert.Equal(t, 80.0, f.MaxPrice)
}
