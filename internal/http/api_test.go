package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/v-selfnet/bistro-boss-server/internal/auth"
	"github.com/v-selfnet/bistro-boss-server/internal/domain"
	"github.com/v-selfnet/bistro-boss-server/internal/service"
)

const testSecret = "test-secret"

type mockCatalog struct {
	menu    []domain.MenuItem
	reviews []domain.Review
	err     error
}

func (m *mockCatalog) Menu(context.Context) ([]domain.MenuItem, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.menu, nil
}

func (m *mockCatalog) Reviews(context.Context) ([]domain.Review, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.reviews, nil
}

type mockCartStore struct {
	m         sync.Mutex
	items     []domain.CartItem
	err       error
	listCalls int
}

func (m *mockCartStore) Add(_ context.Context, item domain.CartItem) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, item)
	return item.ID, nil
}

func (m *mockCartStore) ListByEmail(_ context.Context, email string) ([]domain.CartItem, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.listCalls++
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

func (m *mockCartStore) Remove(_ context.Context, id primitive.ObjectID) (int64, error) {
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

func (m *mockCartStore) listCallCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.listCalls
}

type mockUserStore struct {
	m         sync.Mutex
	byEmail   map[string]domain.User
	err       error
	listCalls int
}

func newMockUserStore() *mockUserStore {
	return &mockUserStore{byEmail: map[string]domain.User{}}
}

func (m *mockUserStore) Register(_ context.Context, user domain.User) (primitive.ObjectID, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return primitive.NilObjectID, m.err
	}
	if _, ok := m.byEmail[user.Email]; ok {
		return primitive.NilObjectID, service.ErrUserExists
	}
	user.ID = primitive.NewObjectID()
	m.byEmail[user.Email] = user
	return user.ID, nil
}

func (m *mockUserStore) List(context.Context) ([]domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	users := make([]domain.User, 0, len(m.byEmail))
	for _, u := range m.byEmail {
		users = append(users, u)
	}
	return users, nil
}

func (m *mockUserStore) IsAdmin(_ context.Context, email string) (bool, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return false, m.err
	}
	return m.byEmail[email].Role == domain.RoleAdmin, nil
}

func (m *mockUserStore) Promote(_ context.Context, id primitive.ObjectID) (int64, int64, error) {
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

func (m *mockUserStore) Remove(_ context.Context, id primitive.ObjectID) (int64, error) {
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

func (m *mockUserStore) addUser(u domain.User) primitive.ObjectID {
	m.m.Lock()
	defer m.m.Unlock()
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	m.byEmail[u.Email] = u
	return u.ID
}

func (m *mockUserStore) listCallCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return m.listCalls
}

type testAPI struct {
	router  *chi.Mux
	codec   *auth.TokenCodec
	catalog *mockCatalog
	carts   *mockCartStore
	users   *mockUserStore
}

func setupAPI(t *testing.T) *testAPI {
	t.Helper()

	catalog := &mockCatalog{}
	carts := &mockCartStore{}
	users := newMockUserStore()
	codec := auth.NewTokenCodec(testSecret, time.Hour)

	router := NewRouter(
		NewGuard(codec, users),
		NewCatalogHandler(catalog, 5*time.Second),
		NewCartHandler(carts, 5*time.Second),
		NewUserHandler(users, 5*time.Second),
		NewTokenHandler(codec),
		30*time.Second,
	)

	return &testAPI{
		router:  router,
		codec:   codec,
		catalog: catalog,
		carts:   carts,
		users:   users,
	}
}

func (a *testAPI) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := a.codec.Issue(auth.Identity{Email: email})
	require.NoError(t, err)
	return token
}

// do runs one request through the router. A non-empty token is sent as a
// bearer credential.
func (a *testAPI) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	a.router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody[T any](t *testing.T, recorder *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&out))
	return out
}

func requireStatus(t *testing.T, recorder *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, recorder.Code, "body: %s", recorder.Body.String())
}
