// Package cartstore persists cart snapshots in Redis. Carts are
// stored whole as JSON values under cart:<id>; a corrupt value is
// discarded so the visitor starts over with an empty cart.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
	"github.com/suncoast/diveshop/pkg/retry"
)

const keyPrefix = "cart:"

var _ port.CartSnapshots = (*RedisSnapshots)(nil)

type RedisSnapshots struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSnapshots(
	ctx context.Context, addr string, ttl time.Duration,
) (RedisSnapshots, error) {
	const op = "RedisSnapshots"
	log := slog.With("op", op)

	client := redis.NewClient(&redis.Options{Addr: addr})

	pingCfg := retry.Config{
		MaxAttempts: 3,
		Backoff:     retry.LinearBackoff(500 * time.Millisecond),
	}
	err := retry.Do(ctx, pingCfg, func() error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		return RedisSnapshots{}, fmt.Errorf("%s: redis is unavailable: %w", op, err)
	}

	log.Info("cart store is available")
	return RedisSnapshots{client: client, ttl: ttl}, nil
}

func (s RedisSnapshots) Load(
	ctx context.Context, cartID string,
) (domain.Cart, bool, error) {
	const op = "RedisSnapshots.Load"

	data, err := s.client.Get(ctx, keyPrefix+cartID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Cart{}, false, nil
		}
		return domain.Cart{}, false, fmt.Errorf("%s: %w", op, err)
	}

	cart, ok := decodeSnapshot(cartID, data)
	return cart, ok, nil
}

func (s RedisSnapshots) Save(ctx context.Context, cart domain.Cart) error {
	const op = "RedisSnapshots.Save"

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = s.client.Set(ctx, keyPrefix+cart.ID, data, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisSnapshots) Delete(ctx context.Context, cartID string) error {
	const op = "RedisSnapshots.Delete"

	if err := s.client.Del(ctx, keyPrefix+cartID).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s RedisSnapshots) Close() {
	const op = "RedisSnapshots.Close"
	log := slog.With("op", op)

	log.Info("closing cart store...")

	if err := s.client.Close(); err != nil {
		log.Error("failed to close", "err", err)
		return
	}
	log.Info("cart store is closed")
}

// decodeSnapshot tolerates corrupt stored values: they are logged
// and treated as absent rather than failing the request.
func decodeSnapshot(cartID string, data []byte) (domain.Cart, bool) {
	const op = "cartstore.decodeSnapshot"

	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		slog.Warn("discarding corrupt cart snapshot",
			"op", op, "cartID", cartID, "err", err)
		return domain.Cart{}, false
	}

	if cart.ID == "" {
		cart.ID = cartID
	}
	return cart, true
}
