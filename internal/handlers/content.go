package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"mentora-backend/internal/extract"
	"mentora-backend/internal/learner"
	"mentora-backend/internal/models"
	"mentora-backend/internal/services"
)

// ContentHandler serves all AI-generated content routes. A nil gemini service
// means fallback mode: every route answers 200 with deterministic placeholder
// content and no upstream call is made.
type ContentHandler struct {
	gemini *services.GeminiService
}

func NewContentHandler(gemini *services.GeminiService) *ContentHandler {
	return &ContentHandler{gemini: gemini}
}

// generate runs the single upstream round trip: prompt in, extracted JSON of
// the expected shape out, decoded into target. Any failure along the way
// surfaces as one error for the route to wrap with its fallback.
func (h *ContentHandler) generate(ctx context.Context, prompt string, shape extract.Shape, target interface{}) error {
	text, err := h.gemini.GenerateText(ctx, prompt)
	if err != nil {
		return err
	}

	raw, err := extract.JSON(text, shape)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("extracted JSON does not match the expected schema: %w", err)
	}
	return nil
}

func (h *ContentHandler) KnowledgeGraph(w http.ResponseWriter, r *http.Request) {
	var req models.KnowledgeGraphRequest
	decodeLenient(r, &req)
	req.ApplyDefaults()

	if h.gemini == nil {
		writeJSON(w, http.StatusOK, services.FallbackKnowledgeGraph(req))
		return
	}

	var graph models.KnowledgeGraph
	if err := h.generate(r.Context(), services.BuildKnowledgeGraphPrompt(req), extract.Object, &graph); err != nil {
		writeErrorWithFallback(w, r, http.StatusInternalServerError, err.Error(), services.FallbackKnowledgeGraph(req))
		return
	}
	if len(graph.Concepts) == 0 || graph.Dependencies == nil {
		writeErrorWithFallback(w, r, http.StatusInternalServerError,
			"model response is missing concepts or dependencies", services.FallbackKnowledgeGraph(req))
		return
	}

	writeJSON(w, http.StatusOK, graph)
}

func (h *ContentHandler) QuizQuestions(w http.ResponseWriter, r *http.Request) {
	var req models.QuizRequest
	decodeLenient(r, &req)
	req.ApplyDefaults()

	if h.gemini == nil {
		writeJSON(w, http.StatusOK, services.FallbackQuiz(req))
		return
	}

	var questions []models.QuizQuestion
	if err := h.generate(r.Context(), services.BuildQuizPrompt(req), extract.Array, &questions); err != nil {
		writeErrorWithFallback(w, r, http.StatusInternalServerError, err.Error(), services.FallbackQuiz(req))
		return
	}

	questions = sanitizeQuestions(questions)
	if len(questions) == 0 {
		writeErrorWithFallback(w, r, http.StatusInternalServerError,
			"model response contained no usable questions", services.FallbackQuiz(req))
		return
	}

	writeJSON(w, http.StatusOK, questions)
}

func (h *ContentHandler) StudyPlan(w http.ResponseWriter, r *http.Request) {
	var req models.StudyPlanRequest
	decodeLenient(r, &req)
	req.ApplyDefaults()

	if h.gemini == nil {
		writeJSON(w, http.StatusOK, services.FallbackStudyPlan(req))
		return
	}

	var plan models.StudyPlan
	if err := h.generate(r.Context(), services.BuildStudyPlanPrompt(req), extract.Object, &plan); err != nil {
		writeErrorWithFallback(w, r, http.StatusInternalServerError, err.Error(), services.FallbackStudyPlan(req))
		return
	}
	if plan.Subject == "" || len(plan.Phases) == 0 {
		writeErrorWithFallback(w, r, http.StatusInternalServerError,
			"model response is missing subject or phases", services.FallbackStudyPlan(req))
		return
	}

	writeJSON(w, http.StatusOK, plan)
}

func (h *ContentHandler) LearningModule(w http.ResponseWriter, r *http.Request) {
	var req models.LearningModuleRequest
	decodeLenient(r, &req)
	req.ApplyDefaults()

	if h.gemini == nil {
		writeJSON(w, http.StatusOK, services.FallbackLearningModule(req))
		return
	}

	var module models.LearningModule
	if err := h.generate(r.Context(), services.BuildLearningModulePrompt(req), extract.Object, &module); err != nil {
		writeErrorWithFallback(w, r, http.StatusInternalServerError, err.Error(), services.FallbackLearningModule(req))
		return
	}
	if len(module.Basics) == 0 || len(module.Quiz) == 0 {
		writeErrorWithFallback(w, r, http.StatusInternalServerError,
			"model response is missing basics or quiz", services.FallbackLearningModule(req))
		return
	}
	module.Quiz = sanitizeQuestions(module.Quiz)

	writeJSON(w, http.StatusOK, module)
}

func (h *ContentHandler) QuizAssignments(w http.ResponseWriter, r *http.Request) {
	var req models.AssignmentRequest
	decodeLenient(r, &req)
	req.ApplyDefaults()

	if h.gemini == nil {
		writeJSON(w, http.StatusOK, services.FallbackAssignments(req))
		return
	}

	var set models.AssignmentSet
	if err := h.generate(r.Context(), services.BuildAssignmentPrompt(req), extract.Object, &set); err != nil {
		writeErrorWithFallback(w, r, http.StatusInternalServerError, err.Error(), services.FallbackAssignments(req))
		return
	}
	if len(set.ImportantTopics) == 0 || len(set.Assignments) == 0 {
		writeErrorWithFallback(w, r, http.StatusInternalServerError,
			"model response is missing importantTopics or assignments", services.FallbackAssignments(req))
		return
	}

	writeJSON(w, http.StatusOK, set)
}

// AdaptiveQuiz derives a difficulty tier from the supplied learner profile
// before prompting: a successRate (0-100) wins over a categorical skillLevel.
func (h *ContentHandler) AdaptiveQuiz(w http.ResponseWriter, r *http.Request) {
	var req models.AdaptiveQuizRequest
	decodeLenient(r, &req)
	req.ApplyDefaults()

	tier := "medium"
	switch {
	case req.UserProfile.SuccessRate != nil:
		tier = learner.TierForSuccessRate(*req.UserProfile.SuccessRate)
	case req.UserProfile.SkillLevel != "":
		tier = learner.TierForSkillLevel(req.UserProfile.SkillLevel)
	}

	if h.gemini == nil {
		writeJSON(w, http.StatusOK, services.FallbackAdaptiveQuiz(req, tier))
		return
	}

	var quiz models.AdaptiveQuiz
	if err := h.generate(r.Context(), services.BuildAdaptiveQuizPrompt(req, tier), extract.Object, &quiz); err != nil {
		writeErrorWithFallback(w, r, http.StatusInternalServerError, err.Error(), services.FallbackAdaptiveQuiz(req, tier))
		return
	}
	if len(quiz.ImportantTopics) == 0 || len(quiz.Quiz) == 0 {
		writeErrorWithFallback(w, r, http.StatusInternalServerError,
			"model response is missing importantTopics or quiz", services.FallbackAdaptiveQuiz(req, tier))
		return
	}
	quiz.Quiz = sanitizeQuestions(quiz.Quiz)

	writeJSON(w, http.StatusOK, quiz)
}

// sanitizeQuestions drops questions without text or without exactly four
// options and clamps out-of-range correct indexes.
func sanitizeQuestions(questions []models.QuizQuestion) []models.QuizQuestion {
	var valid []models.QuizQuestion
	for i, q := range questions {
		if q.Question == "" || len(q.Options) != 4 {
			continue
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			q.CorrectIndex = 0
		}
		if q.ID == 0 {
			q.ID = i + 1
		}
		valid = append(valid, q)
	}
	return valid
}
