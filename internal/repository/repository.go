package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/v-selfnet/bistro-boss-server/internal/domain"
)

var (
	// ErrUserNotFound is returned when no user matches the given email.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert collides with the unique
	// index on users.email. It is the registration dedup signal.
	ErrDuplicateEmail = errors.New("email already registered")
)

// MenuRepository reads the menu collection.
// Consumers define these interfaces, not the MongoDB implementation.
type MenuRepository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
}

// ReviewRepository reads the reviews collection.
type ReviewRepository interface {
	List(ctx context.Context) ([]domain.Review, error)
}

// CartRepository mutates and queries the carts collection.
type CartRepository interface {
	Add(ctx context.Context, item domain.CartItem) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	// Remove deletes at most one document and returns the deleted count.
	// A missing id is not an error.
	Remove(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// UserRepository mutates and queries the users collection.
type UserRepository interface {
	// Insert creates a user and returns ErrDuplicateEmail when the email is
	// already taken.
	Insert(ctx context.Context, user domain.User) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// PromoteAdmin sets role=admin on the matching document and returns the
	// matched and modified counts.
	PromoteAdmin(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error)
	Delete(ctx context.Context, id primitive.ObjectID) (int64, error)
}
