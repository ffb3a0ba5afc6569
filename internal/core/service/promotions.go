package service

import (
	"context"
	"fmt"
	"time"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

var _ port.PromotionManager = (*PromotionService)(nil)

// PromotionService manages the per-location banner records shown
// on storefront pages.
type PromotionService struct {
	repo port.PromotionsRepository
}

func NewPromotions(repo port.PromotionsRepository) PromotionService {
	return PromotionService{repo}
}

func (s PromotionService) GetPromotion(
	ctx context.Context, location string,
) (domain.Promotion, error) {
	const op = "PromotionService.GetPromotion"

	if err := ctx.Err(); err != nil {
		return domain.Promotion{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.repo.GetActive(ctx, location)
	if err != nil {
		return domain.Promotion{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (s PromotionService) UpdatePromotion(
	ctx context.Context, p domain.Promotion,
) (domain.Promotion, error) {
	const op = "PromotionService.UpdatePromotion"

	if err := ctx.Err(); err != nil {
		return domain.Promotion{}, fmt.Errorf("%s: %w", op, err)
	}

	p.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return domain.Promotion{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}
