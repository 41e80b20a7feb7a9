package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the full route table. Guarded routes compose the
// authentication and authorization gates explicitly, so the route
// registration order carries no hidden contract.
func NewRouter(
	guard *Guard,
	catalog *CatalogHandler,
	carts *CartHandler,
	users *UserHandler,
	tokens *TokenHandler,
	requestTimeout time.Duration,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Bistro Boss Restaurant Server is Running..."))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/menu", catalog.ListMenu)
	r.Get("/reviews", catalog.ListReviews)

	r.Route("/carts", func(r chi.Router) {
		r.Post("/", carts.Add)
		r.Get("/", guard.Authed(carts.List))
		r.Delete("/{id}", carts.Remove)
	})

	r.Route("/users", func(r chi.Router) {
		r.Post("/", users.Register)
		r.Get("/", guard.AdminOnly(users.List))
		// chi allows only one wildcard name per path position, so the
		// email (GET) and id (PATCH/DELETE) segments share "target".
		r.Get("/admin/{target}", guard.Authed(users.AdminStatus))
		r.Patch("/admin/{target}", users.Promote)
		r.Delete("/admin/{target}", users.Remove)
	})

	r.Post("/jwt", tokens.Issue)

	return r
}
