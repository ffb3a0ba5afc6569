package service

import (
	"context"
	"fmt"
	"time"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

var _ port.ServicesManager = (*ServicesService)(nil)

// ServicesService is the admin back-office over dive-service
// categories and services.
type ServicesService struct {
	repo port.ServicesRepository
}

func NewServices(repo port.ServicesRepository) ServicesService {
	return ServicesService{repo}
}

func (s ServicesService) ListCategories(
	ctx context.Context,
) ([]domain.ServiceCategory, error) {
	const op = "ServicesService.ListCategories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cs, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (s ServicesService) CreateCategory(
	ctx context.Context, c domain.ServiceCategory,
) (domain.ServiceCategory, error) {
	const op = "ServicesService.CreateCategory"

	if err := ctx.Err(); err != nil {
		return domain.ServiceCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	c.UpdatedAt = time.Now().UTC()
	created, err := s.repo.CreateCategory(ctx, c)
	if err != nil {
		return domain.ServiceCategory{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s ServicesService) UpdateCategory(
	ctx context.Context, c domain.ServiceCategory,
) (domain.ServiceCategory, error) {
	const op = "ServicesService.UpdateCategory"

	if err := ctx.Err(); err != nil {
		return domain.ServiceCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	c.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.UpdateCategory(ctx, c)
	if err != nil {
		return domain.ServiceCategory{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s ServicesService) DeleteCategory(
	ctx context.Context, id int64,
) error {
	const op = "ServicesService.DeleteCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s ServicesService) ListServices(
	ctx context.Context, categoryID int64,
) ([]domain.DiveService, error) {
	const op = "ServicesService.ListServices"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ds, err := s.repo.ListServices(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ds, nil
}

func (s ServicesService) GetService(
	ctx context.Context, id int64,
) (domain.DiveService, error) {
	const op = "ServicesService.GetService"

	if err := ctx.Err(); err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}

	d, err := s.repo.GetService(ctx, id)
	if err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func (s ServicesService) CreateService(
	ctx context.Context, d domain.DiveService,
) (domain.DiveService, error) {
	const op = "ServicesService.CreateService"

	if err := ctx.Err(); err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}

	d.UpdatedAt = time.Now().UTC()
	created, err := s.repo.CreateService(ctx, d)
	if err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (s ServicesService) UpdateService(
	ctx context.Context, d domain.DiveService,
) (domain.DiveService, error) {
	const op = "ServicesService.UpdateService"

	if err := ctx.Err(); err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}

	d.UpdatedAt = time.Now().UTC()
	updated, err := s.repo.UpdateService(ctx, d)
	if err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (s ServicesService) DeleteService(
	ctx context.Context, id int64,
) error {
	const op = "ServicesService.DeleteService"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.DeleteService(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
