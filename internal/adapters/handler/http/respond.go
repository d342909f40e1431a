package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, statusCode int, message string) {
	respondJSON(w, statusCode, errorResponse{Message: message})
}

// respondInternalError logs the cause and returns an opaque 500 body.
func respondInternalError(w http.ResponseWriter, err error) {
	slog.Error("internal server error", "error", err)
	respondError(w, http.StatusInternalServerError, "server error")
}
