package handlers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"mentora-backend/internal/learner"
	"mentora-backend/internal/models"
	"mentora-backend/internal/sessions"
)

// SessionHandler exposes the server-side session-history store and the
// learner profile derived from it.
type SessionHandler struct {
	store sessions.Store
}

func NewSessionHandler(store sessions.Store) *SessionHandler {
	return &SessionHandler{store: store}
}

func (h *SessionHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req models.RecordSessionRequest
	decodeLenient(r, &req)
	req.ApplyDefaults()

	// Scores are percentages; out-of-range values are clamped, not rejected.
	if req.Score < 0 {
		req.Score = 0
	}
	if req.Score > 100 {
		req.Score = 100
	}
	if req.Duration < 0 {
		req.Duration = 0
	}

	entry := models.SessionEntry{
		ID:        uuid.New(),
		LearnerID: req.LearnerID,
		Topic:     req.Topic,
		Score:     req.Score,
		Duration:  req.Duration,
		Timestamp: time.Now().UTC(),
	}

	if err := h.store.Append(r.Context(), entry); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Failed to record session",
			RequestID: r.Header.Get("X-Request-ID"),
		})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{"session": entry})
}

func (h *SessionHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List(r.Context(), learnerID(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Failed to load session history",
			RequestID: r.Header.Get("X-Request-ID"),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": entries,
		"count":    len(entries),
	})
}

// Profile recomputes the learner profile from the full history on every call.
func (h *SessionHandler) Profile(w http.ResponseWriter, r *http.Request) {
	entries, err := h.store.List(r.Context(), learnerID(r))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Failed to load session history",
			RequestID: r.Header.Get("X-Request-ID"),
		})
		return
	}

	profile := learner.DeriveProfile(entries)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"profile":               profile,
		"sessionCount":          len(entries),
		"recommendedDifficulty": learner.TierForSuccessRate(profile.SuccessRate * 100),
	})
}

func (h *SessionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context(), learnerID(r)); err != nil {
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{
			Error:     "Failed to clear session history",
			RequestID: r.Header.Get("X-Request-ID"),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Session history cleared"})
}

func learnerID(r *http.Request) string {
	if id := r.URL.Query().Get("learnerId"); id != "" {
		return id
	}
	return "local"
}
