package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
	"github.com/suncoast/diveshop/pkg/money"
)

var _ port.CatalogRepository = (*ProductsRepository)(nil)

// ProductsRepository reads the flat catalog rows. Rows of one
// product share the product_id column; row_id is the table key.
type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

const entryColumns = `
	product_id, brand, name, category,
	price, msrp, badge, color, description, image_url, variants`

func (r ProductsRepository) ListEntries(
	ctx context.Context,
) ([]domain.ProductEntry, error) {
	const op = "ProductsRepository.ListEntries"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + entryColumns + `
		FROM products
		ORDER BY product_id, row_id;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.scanEntries(op, rows)
}

func (r ProductsRepository) EntriesByProduct(
	ctx context.Context, productID int64,
) ([]domain.ProductEntry, error) {
	const op = "ProductsRepository.EntriesByProduct"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + entryColumns + `
		FROM products
		WHERE product_id = $1
		ORDER BY row_id;`

	rows, err := r.sqldb.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.scanEntries(op, rows)
}

func (r ProductsRepository) SearchEntries(
	ctx context.Context, searchQuery string, limit int,
) ([]domain.ProductEntry, error) {
	const op = "ProductsRepository.SearchEntries"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + entryColumns + `
		FROM products
		WHERE name ILIKE $1
			OR brand ILIKE $1
			OR category ILIKE $1
			OR description ILIKE $1
		ORDER BY name
		LIMIT $2;`

	rows, err := r.sqldb.QueryContext(ctx, query, "%"+searchQuery+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.scanEntries(op, rows)
}

func (r ProductsRepository) ImageOverrides(
	ctx context.Context,
) (map[int64]string, error) {
	const op = "ProductsRepository.ImageOverrides"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `SELECT product_id, url FROM product_images;`

	rows, err := r.sqldb.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer r.closeRows(op, rows)

	images := make(map[int64]string)
	for rows.Next() {
		var id int64
		var url string
		if err := rows.Scan(&id, &url); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		images[id] = url
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return images, nil
}

func (r ProductsRepository) scanEntries(
	op string, rows *sql.Rows,
) ([]domain.ProductEntry, error) {
	defer r.closeRows(op, rows)

	var entries []domain.ProductEntry
	for rows.Next() {
		var (
			e        domain.ProductEntry
			price    float64
			msrp     sql.NullFloat64
			badge    sql.NullString
			color    sql.NullString
			desc     sql.NullString
			imageURL sql.NullString
			variants sql.NullString
		)

		err := rows.Scan(
			&e.ID, &e.Brand, &e.Name, &e.Category,
			&price, &msrp, &badge, &color, &desc, &imageURL, &variants,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		e.Price = money.Format(price)
		if msrp.Valid {
			e.MSRP = money.Format(msrp.Float64)
		}
		e.Badge = badge.String
		e.Color = color.String
		e.Description = desc.String
		e.ImageURL = imageURL.String

		if variants.Valid && variants.String != "" {
			err = json.Unmarshal([]byte(variants.String), &e.Stock)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", op, err)
			}
		}

		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return entries, nil
}

func (r ProductsRepository) closeRows(op string, rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		slog.Error("failed to close rows", "op", op, "err", err)
	}
}
