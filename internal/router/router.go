package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"mentora-backend/internal/handlers"
	"mentora-backend/internal/middleware"
)

func New(
	contentHandler *handlers.ContentHandler,
	sessionHandler *handlers.SessionHandler,
	frontendURL string,
	rateLimitPerMin int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Content rate limiter (per IP)
	contentLimiter := middleware.NewRateLimiter(rateLimitPerMin, time.Minute)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Route not found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"error":"Method not allowed"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.Index)
		r.Get("/health", handlers.Health)

		// ──── Generated Content Routes ────
		r.Group(func(r chi.Router) {
			r.Use(contentLimiter.Middleware)
			r.Post("/knowledge-graph", contentHandler.KnowledgeGraph)
			r.Post("/quiz-questions", contentHandler.QuizQuestions)
			r.Post("/study-plan", contentHandler.StudyPlan)
			r.Post("/complete-learning-module", contentHandler.LearningModule)
			r.Post("/quiz-assignments", contentHandler.QuizAssignments)
			r.Post("/ai-quiz", contentHandler.AdaptiveQuiz)
		})

		// ──── Session History Routes ────
		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", sessionHandler.Record)
			r.Get("/", sessionHandler.List)
			r.Delete("/", sessionHandler.Clear)
			r.Get("/profile", sessionHandler.Profile)
		})
	})

	return r
}
