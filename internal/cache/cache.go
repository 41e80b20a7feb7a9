package cache

import (
	"context"
	"errors"

	"github.com/v-selfnet/bistro-boss-server/internal/domain"
)

// CatalogCache caches the two read-only collections. Entries expire by TTL;
// both collections are seeded out of band, so there is no invalidation path.
type CatalogCache interface {
	GetMenu(ctx context.Context) ([]domain.MenuItem, error)
	SetMenu(ctx context.Context, items []domain.MenuItem) error
	GetReviews(ctx context.Context) ([]domain.Review, error)
	SetReviews(ctx context.Context, reviews []domain.Review) error
}

var ErrCacheMiss = errors.New("cache miss")
