package service

import (
	"context"
	"errors"
	"log"

	"golang.org/x/sync/singleflight"

	"github.com/v-selfnet/bistro-boss-server/internal/cache"
	"github.com/v-selfnet/bistro-boss-server/internal/domain"
	"github.com/v-selfnet/bistro-boss-server/internal/repository"
)

// CatalogService serves the public menu and review listings through a
// read-through cache. Cache failures are logged and fall back to the store.
type CatalogService struct {
	menu    repository.MenuRepository
	reviews repository.ReviewRepository
	cache   cache.CatalogCache
	sfg     singleflight.Group // Prevents cache stampede
}

func NewCatalogService(menu repository.MenuRepository, reviews repository.ReviewRepository, cache cache.CatalogCache) *CatalogService {
	return &CatalogService{
		menu:    menu,
		reviews: reviews,
		cache:   cache,
	}
}

func (s *CatalogService) Menu(ctx context.Context) ([]domain.MenuItem, error) {
	v, err, _ := s.sfg.Do("menu", func() (interface{}, error) {
		items, err := s.cache.GetMenu(ctx)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err) // log cache error but continue
		}

		items, err = s.menu.List(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.SetMenu(context.Background(), items); err != nil {
				log.Printf("cache set error: %v", err)
			}
		}()

		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.MenuItem), nil
}

func (s *CatalogService) Reviews(ctx context.Context) ([]domain.Review, error) {
	v, err, _ := s.sfg.Do("reviews", func() (interface{}, error) {
		reviews, err := s.cache.GetReviews(ctx)
		if err == nil {
			return reviews, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Printf("cache get error: %v", err)
		}

		reviews, err = s.reviews.List(ctx)
		if err != nil {
			return nil, err
		}

		go func() {
			if err := s.cache.SetReviews(context.Background(), reviews); err != nil {
				log.Printf("cache set error: %v", err)
			}
		}()

		return reviews, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Review), nil
}
