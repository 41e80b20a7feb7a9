package service

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/v-selfnet/bistro-boss-server/internal/cache"
	"github.com/v-selfnet/bistro-boss-server/internal/domain"
	"github.com/v-selfnet/bistro-boss-server/internal/repository"
)

type mockMenuRepository struct {
	m     sync.Mutex
	items []domain.MenuItem
	err   error
	calls int
}

func (m *mockMenuRepository) List(context.Context) ([]domain.MenuItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockMenuRepository) callCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.calls
}

type mockReviewRepository struct {
	m       sync.Mutex
	reviews []domain.Review
	err     error
	calls   int
}

func (m *mockReviewRepository) List(context.Context) ([]domain.Review, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.reviews, nil
}

type mockCatalogCache struct {
	m       sync.Mutex
	menu    []domain.MenuItem
	reviews []domain.Review
	err     error
}

func (m *mockCatalogCache) GetMenu(context.Context) ([]domain.MenuItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.menu == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.menu, nil
}

func (m *mockCatalogCache) SetMenu(_ context.Context, items []domain.MenuItem) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.menu = items
	return nil
}

func (m *mockCatalogCache) GetReviews(context.Context) ([]domain.Review, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.reviews == nil {
		return nil, cache.ErrCacheMiss
	}
	return m.reviews, nil
}

func (m *mockCatalogCache) SetReviews(_ context.Context, reviews []domain.Review) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.reviews = reviews
	return nil
}

func (m *mockCatalogCache) cachedMenu() []domain.MenuItem {
	m.m.Lock()
	defer m.m.Unlock()
	return m.menu
}

type mockUserRepository struct {
	m       sync.Mutex
	byEmail map[string]domain.User
	err     error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{byEmail: map[string]domain.User{}}
}

func (m *mockUserRepository) Insert(_ context.Context, user domain.User) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return primitive.NilObjectID, repository.ErrDuplicateEmail
	}
	user.ID = primitive.NewObjectID()
	m.byEmail[user.Email] = user
	return user.ID, nil
}

func (m *mockUserRepository) List(context.Context) ([]domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	users := make([]domain.User, 0, len(m.byEmail))
	for _, u := range m.byEmail {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &u, nil
}

func (m *mockUserRepository) PromoteAdmin(_ context.Context, id primitive.ObjectID) (int64, int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return 0, 0, m.err
	}
	for email, u := range m.byEmail {
		if u.ID == id {
			if u.Role == domain.RoleAdmin {
				return 1, 0, nil
			}
			u.Role = domain.RoleAdmin
			m.byEmail[email] = u
			return 1, 1, nil
		}
	}
	return 0, 0, nil
}

func (m *mockUserRepository) Delete(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for email, u := range m.byEmail {
		if u.ID == id {
			delete(m.byEmail, email)
			return 1, nil
		}
	}
	return 0, nil
}

type mockCartRepository struct {
	m     sync.Mutex
	items []domain.CartItem
	err   error
}

func (m *mockCartRepository) Add(_ context.Context, item domain.CartItem) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, item)
	return item.ID, nil
}

func (m *mockCartRepository) ListByEmail(_ context.Context, email string) ([]domain.CartItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	matched := []domain.CartItem{}
	for _, it := range m.items {
		if it.Email == email {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

func (m *mockCartRepository) Remove(_ context.Context, id primitive.ObjectID) (int64, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return 0, m.err
	}
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}
