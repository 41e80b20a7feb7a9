package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/v-selfnet/bistro-boss-server/internal/auth"
	"github.com/v-selfnet/bistro-boss-server/internal/domain"
)

// CartStore covers the cart operations the handlers need.
type CartStore interface {
	Add(ctx context.Context, item domain.CartItem) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]domain.CartItem, error)
	Remove(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type CartHandler struct {
	carts   CartStore
	timeout time.Duration
}

func NewCartHandler(carts CartStore, timeout time.Duration) *CartHandler {
	return &CartHandler{
		carts:   carts,
		timeout: timeout,
	}
}

type addCartItemRequest struct {
	MenuItemID string  `json:"menuItemId"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Image      string  `json:"image"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
}

type insertResponse struct {
	InsertedID string `json:"insertedId"`
}

type deleteResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.MenuItemID == "" {
		respondError(w, http.StatusBadRequest, "menuItemId is required")
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
	if req.Price <= 0 {
		respondError(w, http.StatusBadRequest, "price must be positive")
		return
	}
	if req.Quantity < 1 {
		respondError(w, http.StatusBadRequest, "quantity must be at least 1")
		return
	}

	id, err := h.carts.Add(ctx, domain.CartItem{
		MenuItemID: req.MenuItemID,
		Email:      req.Email,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
		Quantity:   req.Quantity,
	})
	if err != nil {
		log.Printf("cart insert error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, insertResponse{InsertedID: id.Hex()})
}

// List returns the caller's cart items. The email query parameter must match
// the authenticated identity; a missing parameter yields an empty list.
func (h *CartHandler) List(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	email := r.URL.Query().Get("email")
	if email == "" {
		respondJSON(w, http.StatusOK, []domain.CartItem{})
		return
	}
	if email != id.Email {
		respondError(w, http.StatusUnauthorized, "forbidden access")
		return
	}

	items, err := h.carts.ListByEmail(ctx, email)
	if err != nil {
		log.Printf("cart query error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "id must be a valid object id")
		return
	}

	deleted, err := h.carts.Remove(ctx, id)
	if err != nil {
		log.Printf("cart delete error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, deleteResponse{DeletedCount: deleted})
}
