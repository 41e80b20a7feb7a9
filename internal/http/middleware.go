package http

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/v-selfnet/bistro-boss-server/internal/auth"
)

// IdentityHandler is a handler that requires a verified caller identity.
// Authorization never reads the raw request: a handler can only obtain an
// Identity through Authed or AdminOnly, so running a role check without
// authentication is unrepresentable.
type IdentityHandler func(w http.ResponseWriter, r *http.Request, id auth.Identity)

// TokenVerifier checks a bearer token and returns the identity it carries.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// AdminChecker reports whether the given email holds the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Guard wires the authentication and authorization gates in front of
// handlers.
type Guard struct {
	tokens TokenVerifier
	admins AdminChecker
}

func NewGuard(tokens TokenVerifier, admins AdminChecker) *Guard {
	return &Guard{tokens: tokens, admins: admins}
}

// Authed rejects requests without a valid bearer token with 401 and passes
// the decoded identity to next.
func (g *Guard) Authed(next IdentityHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			respondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		token, found := strings.CutPrefix(header, "Bearer ")
		if !found {
			respondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		id, err := g.tokens.Verify(token)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		next(w, r, id)
	}
}

// AdminOnly runs after authentication and rejects callers whose user record
// does not hold the admin role with 403.
func (g *Guard) AdminOnly(next IdentityHandler) http.HandlerFunc {
	return g.Authed(func(w http.ResponseWriter, r *http.Request, id auth.Identity) {
		isAdmin, err := g.admins.IsAdmin(r.Context(), id.Email)
		if err != nil {
			log.Printf("admin lookup error: %v", err)
			respondError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		if !isAdmin {
			respondError(w, http.StatusForbidden, "forbidden")
			return
		}

		next(w, r, id)
	})
}
