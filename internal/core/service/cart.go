package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
	"github.com/suncoast/diveshop/pkg/money"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

var _ port.CartManager = (*CartService)(nil)

// CartService keeps per-visitor carts. Every mutation persists the
// full snapshot before returning; an unreadable snapshot degrades
// to an empty cart instead of failing the operation.
type CartService struct {
	snapshots port.CartSnapshots
	events    port.EventsProducer
}

func NewCart(
	snapshots port.CartSnapshots, events port.EventsProducer,
) CartService {
	return CartService{snapshots, events}
}

func (s CartService) CreateCart(ctx context.Context) (domain.Cart, error) {
	const op = "CartService.CreateCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart := domain.Cart{ID: uuid.NewString()}
	if err := s.snapshots.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s CartService) GetCart(
	ctx context.Context, cartID string,
) (domain.Cart, error) {
	const op = "CartService.GetCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.load(ctx, cartID)
}

func (s CartService) AddItem(
	ctx context.Context, cartID string, item domain.CartItem,
) (domain.Cart, error) {
	const op = "CartService.AddItem"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	if item.Quantity <= 0 {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, ErrInvalidQuantity)
	}

	cart, err := s.load(ctx, cartID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart.Add(item)
	if err := s.snapshots.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	s.emit(ctx, domain.ClientEvent{
		Kind:      domain.EventCartAdd,
		CartID:    cart.ID,
		ProductID: item.ProductID,
		VariantID: item.VariantID,
		Quantity:  item.Quantity,
		Price: domain.EventPrice{
			Amount:   money.Parse(item.UnitPrice),
			Currency: "USD",
		},
		OccurredAt: time.Now().UTC(),
	})

	return cart, nil
}

func (s CartService) UpdateQuantity(
	ctx context.Context, cartID string,
	productID int64, variantID string, quantity int,
) (domain.Cart, error) {
	const op = "CartService.UpdateQuantity"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.load(ctx, cartID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart.UpdateQuantity(productID, variantID, quantity)
	if err := s.snapshots.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s CartService) RemoveItem(
	ctx context.Context, cartID string, productID int64, variantID string,
) (domain.Cart, error) {
	const op = "CartService.RemoveItem"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.load(ctx, cartID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart.Remove(productID, variantID)
	if err := s.snapshots.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

func (s CartService) ClearCart(
	ctx context.Context, cartID string,
) (domain.Cart, error) {
	const op = "CartService.ClearCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart, err := s.load(ctx, cartID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}

	cart.Clear()
	if err := s.snapshots.Save(ctx, cart); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

// load returns the stored snapshot, or an empty cart under the same
// ID when no usable snapshot exists.
func (s CartService) load(
	ctx context.Context, cartID string,
) (domain.Cart, error) {
	cart, ok, err := s.snapshots.Load(ctx, cartID)
	if err != nil {
		return domain.Cart{}, err
	}
	if !ok {
		return domain.Cart{ID: cartID}, nil
	}
	return cart, nil
}

func (s CartService) emit(ctx context.Context, evt domain.ClientEvent) {
	const op = "CartService.emit"

	if s.events == nil {
		return
	}
	if err := s.events.ProduceEvent(ctx, evt); err != nil {
		slog.Error("failed to produce client event", "op", op, "err", err)
	}
}
