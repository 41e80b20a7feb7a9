package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/v-selfnet/bistro-boss-server/internal/domain"
	"github.com/v-selfnet/bistro-boss-server/internal/repository"
)

// ErrUserExists is returned by Register when the email is already taken.
var ErrUserExists = errors.New("user already exist")

// UserService wraps the users collection and owns the registration dedup
// and role semantics.
type UserService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register inserts a new user. Deduplication rides on the unique email
// index: a duplicate-key conflict from the store maps to ErrUserExists, so
// two concurrent registrations for one email cannot both succeed.
func (s *UserService) Register(ctx context.Context, user domain.User) (primitive.ObjectID, error) {
	user.Role = domain.RoleRegular
	id, err := s.repo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return primitive.NilObjectID, ErrUserExists
		}
		return primitive.NilObjectID, err
	}
	return id, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// IsAdmin reports whether the user with the given email holds the admin
// role. An unknown email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, err
	}
	return user.IsAdmin(), nil
}

func (s *UserService) Promote(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error) {
	return s.repo.PromoteAdmin(ctx, id)
}

func (s *UserService) Remove(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return s.repo.Delete(ctx, id)
}
