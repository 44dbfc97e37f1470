package services

import (
	"reflect"
	"testing"

	"mentora-backend/internal/models"
)

func TestFallbackKnowledgeGraph(t *testing.T) {
	req := models.KnowledgeGraphRequest{Subject: "Physics", NumConcepts: 8}

	graph := FallbackKnowledgeGraph(req)

	if len(graph.Concepts) != 8 {
		t.Fatalf("expected 8 concepts, got %d", len(graph.Concepts))
	}
	if len(graph.Dependencies) != 8 {
		t.Fatalf("expected a dependency entry per concept, got %d", len(graph.Dependencies))
	}

	for i, c := range graph.Concepts {
		if c.Level < 1 || c.Level > 6 {
			t.Errorf("concept %d level %d out of range 1-6", i, c.Level)
		}
		if c.Difficulty < 1 || c.Difficulty > 5 {
			t.Errorf("concept %d difficulty %d out of range 1-5", i, c.Difficulty)
		}
		deps, ok := graph.Dependencies[c.Name]
		if !ok {
			t.Errorf("concept %q has no dependency entry", c.Name)
			continue
		}
		if i == 0 && len(deps) != 0 {
			t.Errorf("first concept should have no prerequisites, got %v", deps)
		}
		if i > 0 && (len(deps) != 1 || deps[0] != graph.Concepts[i-1].Name) {
			t.Errorf("concept %q should depend on its predecessor, got %v", c.Name, deps)
		}
	}

	// Levels never decrease along the sequence.
	for i := 1; i < len(graph.Concepts); i++ {
		if graph.Concepts[i].Level < graph.Concepts[i-1].Level {
			t.Errorf("levels decrease at concept %d", i)
		}
	}
}

func TestFallbackKnowledgeGraph_ManyConceptsGetUniqueNames(t *testing.T) {
	req := models.KnowledgeGraphRequest{Subject: "History", NumConcepts: 12}

	graph := FallbackKnowledgeGraph(req)

	seen := make(map[string]bool)
	for _, c := range graph.Concepts {
		if seen[c.Name] {
			t.Fatalf("duplicate concept name %q", c.Name)
		}
		seen[c.Name] = true
	}
}

func TestFallbackQuiz(t *testing.T) {
	req := models.QuizRequest{Subject: "Biology", Topic: "Cells", Difficulty: "medium", NumQuestions: 3}

	questions := FallbackQuiz(req)

	if len(questions) != 3 {
		t.Fatalf("expected 3 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", i, len(q.Options))
		}
		if q.CorrectIndex != 2 {
			t.Errorf("question %d has correctIndex %d, want 2", i, q.CorrectIndex)
		}
		if q.Explanation == "" {
			t.Errorf("question %d has no explanation", i)
		}
	}
}

func TestFallbackQuiz_Deterministic(t *testing.T) {
	req := models.QuizRequest{Subject: "Biology", Topic: "Cells", Difficulty: "easy", NumQuestions: 5}

	if !reflect.DeepEqual(FallbackQuiz(req), FallbackQuiz(req)) {
		t.Error("same parameters produced different fallback quizzes")
	}
}

func TestFallbackStudyPlan(t *testing.T) {
	req := models.StudyPlanRequest{Subject: "Algebra", Duration: 2, DurationUnit: "weeks"}

	plan := FallbackStudyPlan(req)

	if plan.Subject != "Algebra" {
		t.Errorf("subject = %q", plan.Subject)
	}
	if plan.TotalDuration != "2 weeks" {
		t.Errorf("totalDuration = %q, want \"2 weeks\"", plan.TotalDuration)
	}
	if len(plan.Phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(plan.Phases))
	}
	for i, p := range plan.Phases {
		if p.Name == "" || len(p.Topics) == 0 || len(p.Activities) == 0 {
			t.Errorf("phase %d is underfilled: %+v", i, p)
		}
	}
	if len(plan.Milestones) == 0 || len(plan.DailySchedule) == 0 || len(plan.Resources) == 0 || len(plan.Tips) == 0 {
		t.Error("plan is missing milestones, schedule, resources, or tips")
	}
}

func TestFallbackLearningModule(t *testing.T) {
	req := models.LearningModuleRequest{Subject: "Chemistry", Topic: "Stoichiometry"}

	module := FallbackLearningModule(req)

	if len(module.Basics) != 3 {
		t.Errorf("expected 3 basics sections, got %d", len(module.Basics))
	}
	if len(module.Flowchart) != 5 {
		t.Errorf("expected 5 flowchart steps, got %d", len(module.Flowchart))
	}
	if len(module.Quiz) != 3 {
		t.Errorf("expected 3 quiz questions, got %d", len(module.Quiz))
	}
	if len(module.YoutubeTopics) != 4 {
		t.Errorf("expected 4 youtube topics, got %d", len(module.YoutubeTopics))
	}
	if len(module.RecapTimetable) == 0 || len(module.ConceptMap) == 0 {
		t.Error("module is missing recap timetable or concept map")
	}
	for i, step := range module.Flowchart {
		if step.Step != i+1 {
			t.Errorf("flowchart step %d numbered %d", i, step.Step)
		}
	}
}

func TestFallbackAssignments(t *testing.T) {
	req := models.AssignmentRequest{Subject: "Physics", Topic: "Optics", NumAssignments: 4}

	set := FallbackAssignments(req)

	if len(set.ImportantTopics) != 5 {
		t.Errorf("expected 5 important topics, got %d", len(set.ImportantTopics))
	}
	if len(set.Assignments) != 4 {
		t.Fatalf("expected 4 assignments, got %d", len(set.Assignments))
	}
	if set.Assignments[0].Difficulty != "easy" {
		t.Errorf("first assignment difficulty = %q, want easy", set.Assignments[0].Difficulty)
	}
	if last := set.Assignments[3].Difficulty; last != "hard" {
		t.Errorf("last assignment difficulty = %q, want hard", last)
	}
}

func TestFallbackAdaptiveQuiz(t *testing.T) {
	req := models.AdaptiveQuizRequest{Subject: "Math", Topic: "Fractions", NumQuestions: 4}

	quiz := FallbackAdaptiveQuiz(req, "hard")

	if len(quiz.ImportantTopics) != 5 {
		t.Errorf("expected 5 important topics, got %d", len(quiz.ImportantTopics))
	}
	if len(quiz.Quiz) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(quiz.Quiz))
	}
	for i, q := range quiz.Quiz {
		if q.TargetConcept == "" || q.PrerequisiteGap == "" {
			t.Errorf("question %d missing adaptive fields: %+v", i, q)
		}
	}
}
