package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

var _ port.ServicesRepository = (*ServicesRepository)(nil)

// ServicesRepository backs the admin CRUD over dive-service
// categories and services.
type ServicesRepository struct {
	sqldb sqldb
}

func NewServicesRepository(sqldb sqldb) ServicesRepository {
	return ServicesRepository{sqldb}
}

const categoryColumns = `
	id, name, slug, icon, description, display_order, is_active, updated_at`

func (r ServicesRepository) ListCategories(
	ctx context.Context,
) ([]domain.ServiceCategory, error) {
	const op = "ServicesRepository.ListCategories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + categoryColumns + `
		FROM service_categories
		ORDER BY display_order;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.scanCategories(op, rows)
}

func (r ServicesRepository) CreateCategory(
	ctx context.Context, c domain.ServiceCategory,
) (domain.ServiceCategory, error) {
	const op = "ServicesRepository.CreateCategory"

	if err := ctx.Err(); err != nil {
		return domain.ServiceCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO service_categories
			(name, slug, icon, description, display_order, is_active, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING` + categoryColumns + `;`

	row := r.sqldb.QueryRowContext(ctx, query,
		c.Name, c.Slug, c.Icon, c.Description,
		c.DisplayOrder, c.Active, c.UpdatedAt,
	)

	created, err := scanCategory(row.Scan)
	if err != nil {
		return domain.ServiceCategory{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (r ServicesRepository) UpdateCategory(
	ctx context.Context, c domain.ServiceCategory,
) (domain.ServiceCategory, error) {
	const op = "ServicesRepository.UpdateCategory"

	if err := ctx.Err(); err != nil {
		return domain.ServiceCategory{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE service_categories SET
			name = $2, slug = $3, icon = $4, description = $5,
			display_order = $6, is_active = $7, updated_at = $8
		WHERE id = $1
		RETURNING` + categoryColumns + `;`

	row := r.sqldb.QueryRowContext(ctx, query,
		c.ID, c.Name, c.Slug, c.Icon, c.Description,
		c.DisplayOrder, c.Active, c.UpdatedAt,
	)

	updated, err := scanCategory(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ServiceCategory{},
				fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.ServiceCategory{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (r ServicesRepository) DeleteCategory(
	ctx context.Context, id int64,
) error {
	const op = "ServicesRepository.DeleteCategory"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx,
		`DELETE FROM service_categories WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOrNotFound(op, res)
}

func (r ServicesRepository) SearchActiveCategories(
	ctx context.Context, searchQuery string, limit int,
) ([]domain.ServiceCategory, error) {
	const op = "ServicesRepository.SearchActiveCategories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + categoryColumns + `
		FROM service_categories
		WHERE is_active AND name ILIKE $1
		ORDER BY display_order
		LIMIT $2;`

	rows, err := r.sqldb.QueryContext(ctx, query, "%"+searchQuery+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.scanCategories(op, rows)
}

const serviceColumns = `
	id, category_id, name, slug, description, price, price_text,
	duration, depth, includes, display_order, is_active, is_featured,
	updated_at`

func (r ServicesRepository) ListServices(
	ctx context.Context, categoryID int64,
) ([]domain.DiveService, error) {
	const op = "ServicesRepository.ListServices"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + serviceColumns + `
		FROM services
		WHERE $1 = 0 OR category_id = $1
		ORDER BY display_order;`

	rows, err := r.sqldb.QueryContext(ctx, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.scanServices(op, rows)
}

func (r ServicesRepository) GetService(
	ctx context.Context, id int64,
) (domain.DiveService, error) {
	const op = "ServicesRepository.GetService"

	if err := ctx.Err(); err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + serviceColumns + `
		FROM services
		WHERE id = $1;`

	d, err := scanService(r.sqldb.QueryRowContext(ctx, query, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DiveService{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}
	return d, nil
}

func (r ServicesRepository) CreateService(
	ctx context.Context, d domain.DiveService,
) (domain.DiveService, error) {
	const op = "ServicesRepository.CreateService"

	if err := ctx.Err(); err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}

	includes, err := json.Marshal(d.Includes)
	if err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		INSERT INTO services
			(category_id, name, slug, description, price, price_text,
			duration, depth, includes, display_order, is_active,
			is_featured, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING` + serviceColumns + `;`

	row := r.sqldb.QueryRowContext(ctx, query,
		d.CategoryID, d.Name, d.Slug, d.Description, d.Price, d.PriceText,
		d.Duration, d.Depth, string(includes), d.DisplayOrder, d.Active,
		d.Featured, d.UpdatedAt,
	)

	created, err := scanService(row.Scan)
	if err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}
	return created, nil
}

func (r ServicesRepository) UpdateService(
	ctx context.Context, d domain.DiveService,
) (domain.DiveService, error) {
	const op = "ServicesRepository.UpdateService"

	if err := ctx.Err(); err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}

	includes, err := json.Marshal(d.Includes)
	if err != nil {
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		UPDATE services SET
			category_id = $2, name = $3, slug = $4, description = $5,
			price = $6, price_text = $7, duration = $8, depth = $9,
			includes = $10, display_order = $11, is_active = $12,
			is_featured = $13, updated_at = $14
		WHERE id = $1
		RETURNING` + serviceColumns + `;`

	row := r.sqldb.QueryRowContext(ctx, query,
		d.ID, d.CategoryID, d.Name, d.Slug, d.Description,
		d.Price, d.PriceText, d.Duration, d.Depth,
		string(includes), d.DisplayOrder, d.Active, d.Featured, d.UpdatedAt,
	)

	updated, err := scanService(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.DiveService{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.DiveService{}, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func (r ServicesRepository) DeleteService(
	ctx context.Context, id int64,
) error {
	const op = "ServicesRepository.DeleteService"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.sqldb.ExecContext(ctx,
		`DELETE FROM services WHERE id = $1;`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return affectedOrNotFound(op, res)
}

func (r ServicesRepository) scanCategories(
	op string, rows *sql.Rows,
) ([]domain.ServiceCategory, error) {
	defer closeRows(op, rows)

	var cs []domain.ServiceCategory
	for rows.Next() {
		c, err := scanCategory(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		cs = append(cs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return cs, nil
}

func (r ServicesRepository) scanServices(
	op string, rows *sql.Rows,
) ([]domain.DiveService, error) {
	defer closeRows(op, rows)

	var ds []domain.DiveService
	for rows.Next() {
		d, err := scanService(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ds = append(ds, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ds, nil
}

func scanCategory(scan func(...any) error) (domain.ServiceCategory, error) {
	var (
		c    domain.ServiceCategory
		icon sql.NullString
		desc sql.NullString
	)

	err := scan(
		&c.ID, &c.Name, &c.Slug, &icon, &desc,
		&c.DisplayOrder, &c.Active, &c.UpdatedAt,
	)
	if err != nil {
		return domain.ServiceCategory{}, err
	}

	c.Icon = icon.String
	c.Description = desc.String
	return c, nil
}

func scanService(scan func(...any) error) (domain.DiveService, error) {
	var (
		d         domain.DiveService
		desc      sql.NullString
		price     sql.NullFloat64
		priceText sql.NullString
		duration  sql.NullString
		depth     sql.NullString
		includes  sql.NullString
	)

	err := scan(
		&d.ID, &d.CategoryID, &d.Name, &d.Slug, &desc, &price, &priceText,
		&duration, &depth, &includes, &d.DisplayOrder, &d.Active,
		&d.Featured, &d.UpdatedAt,
	)
	if err != nil {
		return domain.DiveService{}, err
	}

	d.Description = desc.String
	d.Price = price.Float64
	d.PriceText = priceText.String
	d.Duration = duration.String
	d.Depth = depth.String

	if includes.Valid && includes.String != "" {
		if err := json.Unmarshal([]byte(includes.String), &d.Includes); err != nil {
			return domain.DiveService{}, err
		}
	}
	return d, nil
}

func affectedOrNotFound(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	return nil
}

func closeRows(op string, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "op", op, "err", err)
	}
}
