package http

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/v-selfnet/bistro-boss-server/internal/auth"
)

// TokenIssuer signs a bearer token for a caller-supplied identity.
type TokenIssuer interface {
	Issue(id auth.Identity) (string, error)
}

type TokenHandler struct {
	tokens TokenIssuer
}

func NewTokenHandler(tokens TokenIssuer) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue signs a token for the user object posted by the client. The client
// is trusted here; this mirrors the social-login flow where the identity
// provider already vouched for the email.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var id auth.Identity
	if err := json.NewDecoder(r.Body).Decode(&id); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if id.Email == "" {
		respondError(w, http.StatusBadRequest, "email is required")
		return
	}

	token, err := h.tokens.Issue(id)
	if err != nil {
		log.Printf("token issue error: %v", err)
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, tokenResponse{Token: token})
}
