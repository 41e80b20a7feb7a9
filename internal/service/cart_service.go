package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/v-selfnet/bistro-boss-server/internal/domain"
	"github.com/v-selfnet/bistro-boss-server/internal/repository"
)

// CartService wraps the cart collection. Every operation is a single store
// round-trip; ownership of the listing is checked at the HTTP layer where
// the authenticated identity lives.
type CartService struct {
	repo repository.CartRepository
}

func NewCartService(repo repository.CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) Add(ctx context.Context, item domain.CartItem) (primitive.ObjectID, error) {
	return s.repo.Add(ctx, item)
}

func (s *CartService) ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error) {
	return s.repo.ListByEmail(ctx, email)
}

// Remove deletes at most one cart item. A zero count means the id did not
// match anything, which is not an error.
func (s *CartService) Remove(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repo.Remove(ctx, id)
}
