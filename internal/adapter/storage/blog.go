package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

var _ port.BlogRepository = (*BlogRepository)(nil)

type BlogRepository struct {
	sqldb sqldb
}

func NewBlogRepository(sqldb sqldb) BlogRepository {
	return BlogRepository{sqldb}
}

const blogColumns = `
	id, title, slug, excerpt, author, category,
	featured_image_url, is_published, published_at`

func (r BlogRepository) LatestPublished(
	ctx context.Context, limit int,
) ([]domain.BlogPost, error) {
	const op = "BlogRepository.LatestPublished"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + blogColumns + `
		FROM blog_posts
		WHERE is_published
		ORDER BY published_at DESC
		LIMIT $1;`

	rows, err := r.sqldb.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.scanPosts(op, rows)
}

func (r BlogRepository) GetBySlug(
	ctx context.Context, slug string,
) (domain.BlogPost, error) {
	const op = "BlogRepository.GetBySlug"

	if err := ctx.Err(); err != nil {
		return domain.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + blogColumns + `
		FROM blog_posts
		WHERE slug = $1 AND is_published;`

	p, err := scanPost(r.sqldb.QueryRowContext(ctx, query, slug).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.BlogPost{}, fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
		return domain.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

func (r BlogRepository) SearchPublished(
	ctx context.Context, searchQuery string, limit int,
) ([]domain.BlogPost, error) {
	const op = "BlogRepository.SearchPublished"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := `
		SELECT` + blogColumns + `
		FROM blog_posts
		WHERE is_published
			AND (title ILIKE $1 OR excerpt ILIKE $1 OR category ILIKE $1)
		ORDER BY published_at DESC
		LIMIT $2;`

	rows, err := r.sqldb.QueryContext(ctx, query, "%"+searchQuery+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return r.scanPosts(op, rows)
}

func (r BlogRepository) scanPosts(
	op string, rows *sql.Rows,
) ([]domain.BlogPost, error) {
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "op", op, "err", err)
		}
	}()

	var posts []domain.BlogPost
	for rows.Next() {
		p, err := scanPost(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return posts, nil
}

func scanPost(scan func(...any) error) (domain.BlogPost, error) {
	var (
		p        domain.BlogPost
		excerpt  sql.NullString
		author   sql.NullString
		category sql.NullString
		imageURL sql.NullString
	)

	err := scan(
		&p.ID, &p.Title, &p.Slug, &excerpt, &author, &category,
		&imageURL, &p.Published, &p.PublishedAt,
	)
	if err != nil {
		return domain.BlogPost{}, err
	}

	p.Excerpt = excerpt.String
	p.Author = author.String
	p.Category = category.String
	p.FeaturedImageURL = imageURL.String
	return p, nil
}
