package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suncoast/diveshop/internal/core/domain"
)

// memSnapshots persists carts as JSON blobs, the same shape the
// redis adapter stores, so tests cover the full round trip.
type memSnapshots struct {
	data map[string][]byte
}

func newMemSnapshots() *memSnapshots {
	return &memSnapshots{data: make(map[string][]byte)}
}

func (m *memSnapshots) Load(
	_ context.Context, cartID string,
) (domain.Cart, bool, error) {
	b, ok := m.data[cartID]
	if !ok {
		return domain.Cart{}, false, nil
	}
	var cart domain.Cart
	if err := json.Unmarshal(b, &cart); err != nil {
		return domain.Cart{}, false, nil
	}
	return cart, true, nil
}

func (m *memSnapshots) Save(_ context.Context, cart domain.Cart) error {
	b, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	m.data[cart.ID] = b
	return nil
}

func (m *memSnapshots) Delete(_ context.Context, cartID string) error {
	delete(m.data, cartID)
	return nil
}

func maskItem(quantity int) domain.CartItem {
	return domain.CartItem{
		ProductID:   1,
		VariantID:   "large",
		Name:        "Mask",
		VariantName: "Large",
		UnitPrice:   "$25.00",
		Quantity:    quantity,
	}
}

func TestCartService(t *testing.T) {
	ctx := context.Background()

	t.Run("AddMergesSameLine", func(t *testing.T) {
		s := NewCart(newMemSnapshots(), nil)
		cart, err := s.CreateCart(ctx)
		require.NoError(t, err)

		_, err = s.AddItem(ctx, cart.ID, maskItem(2))
		require.NoError(t, err)
		cart, err = s.AddItem(ctx, cart.ID, maskItem(3))
		require.NoError(t, err)

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
	})

	t.Run("AddRejectsNonPositiveQuantity", func(t *testing.T) {
		s := NewCart(newMemSnapshots(), nil)
		cart, err := s.CreateCart(ctx)
		require.NoError(t, err)

		_, err = s.AddItem(ctx, cart.ID, maskItem(0))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})

	t.Run("UpdateQuantityZeroRemovesLine", func(t *testing.T) {
		s := NewCart(newMemSnapshots(), nil)
		cart, err := s.CreateCart(ctx)
		require.NoError(t, err)

		_, err = s.AddItem(ctx, cart.ID, maskItem(2))
		require.NoError(t, err)

		cart, err = s.UpdateQuantity(ctx, cart.ID, 1, "large", 0)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
		assert.Equal(t, 0, cart.ItemCount())
	})

	t.Run("RemoveAbsentLineIsNoop", func(t *testing.T) {
		s := NewCart(newMemSnapshots(), nil)
		cart, err := s.CreateCart(ctx)
		require.NoError(t, err)

		cart, err = s.RemoveItem(ctx, cart.ID, 42, "missing")
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("DerivedValuesRecomputed", func(t *testing.T) {
		s := NewCart(newMemSnapshots(), nil)
		cart, err := s.CreateCart(ctx)
		require.NoError(t, err)

		before := cart.Subtotal()
		beforeCount := cart.ItemCount()

		cart, err = s.AddItem(ctx, cart.ID, maskItem(2))
		require.NoError(t, err)
		assert.Equal(t, 2, cart.ItemCount())
		assert.InDelta(t, 50.0, cart.Subtotal(), 1e-9)

		cart, err = s.RemoveItem(ctx, cart.ID, 1, "large")
		require.NoError(t, err)
		assert.Equal(t, beforeCount, cart.ItemCount())
		assert.Equal(t, before, cart.Subtotal())
	})

	t.Run("SnapshotRoundTripPreservesOrder", func(t *testing.T) {
		snapshots := newMemSnapshots()
		s := NewCart(snapshots, nil)
		cart, err := s.CreateCart(ctx)
		require.NoError(t, err)

		first := maskItem(1)
		second := domain.CartItem{
			ProductID: 2, VariantID: "size-12", Name: "Fin",
			VariantName: "Size 12", UnitPrice: "$89.00", Quantity: 2,
		}
		third := domain.CartItem{
			ProductID: 3, VariantID: "blue", Name: "Snorkel",
			VariantName: "Blue", UnitPrice: "$12.00", Quantity: 1,
		}

		for _, it := range []domain.CartItem{first, second, third} {
			_, err := s.AddItem(ctx, cart.ID, it)
			require.NoError(t, err)
		}

		reloaded, err := s.GetCart(ctx, cart.ID)
		require.NoError(t, err)
		require.Len(t, reloaded.Items, 3)
		assert.Equal(t, []domain.CartItem{first, second, third}, reloaded.Items)
	})

	t.Run("MissingSnapshotStartsEmpty", func(t *testing.T) {
		s := NewCart(newMemSnapshots(), nil)

		cart, err := s.GetCart(ctx, "never-saved")
		require.NoError(t, err)
		assert.Equal(t, "never-saved", cart.ID)
		assert.Empty(t, cart.Items)
	})

	t.Run("ClearEmptiesAllLines", func(t *testing.T) {
		s := NewCart(newMemSnapshots(), nil)
		cart, err := s.CreateCart(ctx)
		require.NoError(t, err)

		_, err = s.AddItem(ctx, cart.ID, maskItem(2))
		require.NoError(t, err)

		cart, err = s.ClearCart(ctx, cart.ID)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)

		reloaded, err := s.GetCart(ctx, cart.ID)
		require.NoError(t, err)
		assert.Empty(t, reloaded.Items)
	})
}
