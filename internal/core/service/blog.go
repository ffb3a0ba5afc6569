package service

import (
	"context"
	"fmt"

	"github.com/suncoast/diveshop/internal/core/domain"
	"github.com/suncoast/diveshop/internal/core/port"
)

const defaultPostLimit = 3

var _ port.BlogProvider = (*BlogService)(nil)

type BlogService struct {
	repo port.BlogRepository
}

func NewBlog(repo port.BlogRepository) BlogService {
	return BlogService{repo}
}

func (s BlogService) LatestPosts(
	ctx context.Context, limit int,
) ([]domain.BlogPost, error) {
	const op = "BlogService.LatestPosts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if limit <= 0 {
		limit = defaultPostLimit
	}

	posts, err := s.repo.LatestPublished(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return posts, nil
}

func (s BlogService) GetPost(
	ctx context.Context, slug string,
) (domain.BlogPost, error) {
	const op = "BlogService.GetPost"

	if err := ctx.Err(); err != nil {
		return domain.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}

	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return domain.BlogPost{}, fmt.Errorf("%s: %w", op, err)
	}
	return post, nil
}
