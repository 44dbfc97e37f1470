package services

import (
	"strings"
	"testing"

	"mentora-backend/internal/models"
)

func TestBuildQuizPrompt(t *testing.T) {
	req := models.QuizRequest{Subject: "Biology", Topic: "Cells", Difficulty: "hard", NumQuestions: 7}

	prompt := BuildQuizPrompt(req)

	for _, want := range []string{"Biology", "Cells", "exactly 7 questions", "hard", "correctIndex", "ONLY a valid JSON array"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("quiz prompt missing %q", want)
		}
	}
}

func TestBuildKnowledgeGraphPrompt(t *testing.T) {
	req := models.KnowledgeGraphRequest{Subject: "Physics", NumConcepts: 6}

	prompt := BuildKnowledgeGraphPrompt(req)

	for _, want := range []string{"Physics", "exactly 6 concepts", "dependencies", "ONLY a valid JSON object"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("knowledge graph prompt missing %q", want)
		}
	}
}

func TestBuildStudyPlanPrompt_EmbedsDuration(t *testing.T) {
	req := models.StudyPlanRequest{Subject: "Algebra", Duration: 2, DurationUnit: "weeks"}

	prompt := BuildStudyPlanPrompt(req)

	if !strings.Contains(prompt, "2 weeks") {
		t.Error("study plan prompt does not pin the total duration")
	}
	if !strings.Contains(prompt, "exactly 3 phases") {
		t.Error("study plan prompt does not require 3 phases")
	}
}

func TestBuildAdaptiveQuizPrompt_EmbedsTier(t *testing.T) {
	req := models.AdaptiveQuizRequest{Subject: "Math", Topic: "Fractions", NumQuestions: 5}

	prompt := BuildAdaptiveQuizPrompt(req, "expert")

	if !strings.Contains(prompt, "Learner difficulty tier: expert") {
		t.Error("adaptive quiz prompt does not embed the derived tier")
	}
	if !strings.Contains(prompt, "prerequisiteGap") {
		t.Error("adaptive quiz prompt does not request prerequisite gaps")
	}
}
