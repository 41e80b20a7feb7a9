package http

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/v-selfnet/bistro-boss-server/internal/auth"
	"github.com/v-selfnet/bistro-boss-server/internal/domain"
	"github.com/v-selfnet/bistro-boss-server/internal/service"
)

// UserStore covers the user operations the handlers need.
type UserStore interface {
	Register(ctx context.Context, user domain.User) (primitive.ObjectID, error)
	List(ctx context.Context) ([]domain.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	Promote(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error)
	Remove(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type UserHandler struct {
	users   UserStore
	timeout time.Duration
}

func NewUserHandler(users UserStore, timeout time.Duration) *UserHandler {
	return &UserHandler{
		users:   users,
		timeout: timeout,
	}
}

type registerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type updateResponse struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// Register creates a user record. Registering an email twice is not an
// error: the second call answers with the legacy "user already exist"
// message and leaves the store untouched.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := h.users.Register(ctx, domain.User{Name: req.Name, Email: req.Email})
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			respondJSON(w, http.StatusOK, messageResponse{Message: "user already exist"})
			return
		}
		log.Printf("user insert error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, insertResponse{InsertedID: id.Hex()})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request, _ auth.Identity) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	users, err := h.users.List(ctx)
	if err != nil {
		log.Printf("user query error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// AdminStatus answers whether the given email belongs to an admin. Callers
// may only ask about themselves.
func (h *UserHandler) AdminStatus(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	email := chi.URLParam(r, "target")
	if email != id.Email {
		respondError(w, http.StatusForbidden, "forbidden")
		return
	}

	isAdmin, err := h.users.IsAdmin(ctx, email)
	if err != nil {
		log.Printf("admin lookup error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, adminStatusResponse{Admin: isAdmin})
}

func (h *UserHandler) Promote(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "target"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "id must be a valid object id")
		return
	}

	matched, modified, err := h.users.Promote(ctx, id)
	if err != nil {
		log.Printf("user update error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, updateResponse{MatchedCount: matched, ModifiedCount: modified})
}

func (h *UserHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "target"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "id must be a valid object id")
		return
	}

	deleted, err := h.users.Remove(ctx, id)
	if err != nil {
		log.Printf("user delete error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, deleteResponse{DeletedCount: deleted})
}
