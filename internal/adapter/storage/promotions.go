package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

var _ port.PromotionsRepository = (*PromotionsRepository)(nil)

// PromotionsRepository reads and updates the one-row-per-location
// banner records.
type PromotionsRepository struct {
	sqldb sqldb
}

func NewPromotionsRepository(sqldb sqldb) PromotionsRepository {
	return PromotionsRepository{sqldb}
}

func (r PromotionsRepository) GetActive(
	ctx context.Context, location string,
) (domain.Promotion, error) {
	const op = "PromotionsRepository.GetActive"

	if err := ctx.Err(); err != nil {
		return domain.Promotion{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT location, heading, subheading,
			button_text, button_link, is_active, updated_at
		FROM promotions
		WHERE location = $1 AND is_active;`

	p, err := r.scanPromotion(r.sqldb.QueryRowContext(ctx, query, location))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Promotion{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.Promotion{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r PromotionsRepository) Update(
	ctx context.Context, p domain.Promotion,
) (domain.Promotion, error) {
	const op = "PromotionsRepository.Update"

	if err := ctx.Err(); err != nil {
		return domain.Promotion{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE promotions SET
			heading = $2,
			subheading = $3,
			button_text = $4,
			button_link = $5,
			is_active = $6,
			updated_at = $7
		WHERE location = $1
		RETURNING location, heading, subheading,
			button_text, button_link, is_active, updated_at;`

	row := r.sqldb.QueryRowContext(ctx, query,
		p.Location, p.Heading, p.Subheading,
		p.ButtonText, p.ButtonLink, p.Active, p.UpdatedAt,
	)

	updated, err := r.scanPromotion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Promotion{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.Promotion{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (r PromotionsRepository) scanPromotion(
	row *sql.Row,
) (domain.Promotion, error) {
	var (
		p          domain.Promotion
		subheading sql.NullString
		buttonText sql.NullString
		buttonLink sql.NullString
	)

	err := row.Scan(
		&p.Location, &p.Heading, &subheading,
		&buttonText, &buttonLink, &p.Active, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Promotion{}, err
	}

	p.Subheading = subheading.String
	p.ButtonText = buttonText.String
	p.ButtonLink = buttonLink.String
	return p, nil
}
