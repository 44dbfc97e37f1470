package handlers

import (
	"net/http"
	"time"
)

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// Index documents the API surface for anyone poking at the root.
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Mentora adaptive learning API",
		"endpoints": map[string]string{
			"POST /api/knowledge-graph":          "Prerequisite concept graph for a subject",
			"POST /api/quiz-questions":           "Multiple choice quiz for a topic",
			"POST /api/study-plan":               "Phased study plan for a subject and duration",
			"POST /api/complete-learning-module": "Full self-study module for a topic",
			"POST /api/quiz-assignments":         "Practice assignments for a topic",
			"POST /api/ai-quiz":                  "Quiz tuned to the learner profile",
			"POST /api/sessions":                 "Record a learning session",
			"GET /api/sessions":                  "List recorded sessions",
			"GET /api/sessions/profile":          "Learner profile derived from history",
			"DELETE /api/sessions":               "Clear session history",
			"GET /api/health":                    "Service health",
		},
	})
}
