package handlers

import (
	"encoding/json"
	"net/http"

	"mentora-backend/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeErrorWithFallback is the failure path of every content route: the
// caller always gets a usable payload next to the error, never a bare error.
func writeErrorWithFallback(w http.ResponseWriter, r *http.Request, status int, message string, fallback interface{}) {
	writeJSON(w, status, models.ErrorResponse{
		Error:     message,
		RequestID: r.Header.Get("X-Request-ID"),
		Fallback:  fallback,
	})
}

// decodeLenient fills req from the body when possible and stays silent
// otherwise. Malformed or missing fields are handled by defaults, not by
// rejection.
func decodeLenient(r *http.Request, req interface{}) {
	if r.Body == nil {
		return
	}
	json.NewDecoder(r.Body).Decode(req)
}
