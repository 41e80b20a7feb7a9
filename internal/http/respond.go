package http

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorResponse is the error body shape shared by every rejecting path:
// {"error":true,"message":"..."}.
type errorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Error: true, Message: message})
}
