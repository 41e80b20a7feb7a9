package http

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/v-selfnet/bistro-boss-server/internal/domain"
)

// CatalogLister serves the public menu and review listings.
// Consumers define this interface, not the service implementation.
type CatalogLister interface {
	Menu(ctx context.Context) ([]domain.MenuItem, error)
	Reviews(ctx context.Context) ([]domain.Review, error)
}

type CatalogHandler struct {
	catalog CatalogLister
	timeout time.Duration
}

func NewCatalogHandler(catalog CatalogLister, timeout time.Duration) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		timeout: timeout,
	}
}

func (h *CatalogHandler) ListMenu(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	items, err := h.catalog.Menu(ctx)
	if err != nil {
		log.Printf("menu query error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, items)
}

func (h *CatalogHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	reviews, err := h.catalog.Reviews(ctx)
	if err != nil {
		log.Printf("reviews query error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, reviews)
}
