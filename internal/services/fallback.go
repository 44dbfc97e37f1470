package services

import (
	"fmt"

	"mentora-backend/internal/models"
)

// Deterministic fallback generators. Same typed parameters as the real path,
// fixed phrase templates, sequential numbering, no randomness, no I/O. They
// serve two roles: the whole response when no API key is configured, and the
// "fallback" field of every error response.

func FallbackKnowledgeGraph(req models.KnowledgeGraphRequest) models.KnowledgeGraph {
	stages := []string{
		"Fundamentals", "Core Principles", "Key Methods", "Applications",
		"Problem Solving", "Analysis", "Synthesis", "Advanced Topics",
	}

	concepts := make([]models.Concept, req.NumConcepts)
	dependencies := make(map[string][]string, req.NumConcepts)

	for i := 0; i < req.NumConcepts; i++ {
		stage := stages[i%len(stages)]
		name := fmt.Sprintf("%s %s", req.Subject, stage)
		if i >= len(stages) {
			name = fmt.Sprintf("%s %d", name, i/len(stages)+1)
		}

		concepts[i] = models.Concept{
			Name:        name,
			Level:       i*6/req.NumConcepts + 1,
			Description: fmt.Sprintf("Placeholder concept %d covering %s in %s.", i+1, stage, req.Subject),
			Difficulty:  i*5/req.NumConcepts + 1,
		}

		if i == 0 {
			dependencies[name] = []string{}
		} else {
			dependencies[name] = []string{concepts[i-1].Name}
		}
	}

	return models.KnowledgeGraph{Concepts: concepts, Dependencies: dependencies}
}

func FallbackQuiz(req models.QuizRequest) []models.QuizQuestion {
	questions := make([]models.QuizQuestion, req.NumQuestions)
	for i := 0; i < req.NumQuestions; i++ {
		questions[i] = models.QuizQuestion{
			ID:       i + 1,
			Question: fmt.Sprintf("Sample question %d about %s (%s, %s difficulty)?", i+1, req.Topic, req.Subject, req.Difficulty),
			Options: []string{
				fmt.Sprintf("Option A for question %d", i+1),
				fmt.Sprintf("Option B for question %d", i+1),
				fmt.Sprintf("Option C for question %d", i+1),
				fmt.Sprintf("Option D for question %d", i+1),
			},
			CorrectIndex: 2,
			Explanation:  fmt.Sprintf("Option C is correct. This is placeholder content for %s; configure a Gemini API key for real questions.", req.Topic),
		}
	}
	return questions
}

func FallbackStudyPlan(req models.StudyPlanRequest) models.StudyPlan {
	phase := func(name, share string, n int) models.StudyPhase {
		return models.StudyPhase{
			Name:     fmt.Sprintf("Phase %d: %s", n, name),
			Duration: fmt.Sprintf("%s of the total %s", share, req.TotalDuration()),
			Topics: []string{
				fmt.Sprintf("%s topic %d.1", req.Subject, n),
				fmt.Sprintf("%s topic %d.2", req.Subject, n),
			},
			Objectives: []string{fmt.Sprintf("Reach %s-stage fluency in %s", name, req.Subject)},
			Activities: []string{"Read the assigned material", "Complete practice exercises", "Self-quiz on the week's topics"},
			Resources:  []string{fmt.Sprintf("Introductory %s textbook", req.Subject), "Practice worksheets"},
		}
	}

	return models.StudyPlan{
		Subject:        req.Subject,
		TotalDuration:  req.TotalDuration(),
		DailyStudyTime: "1-2 hours",
		Phases: []models.StudyPhase{
			phase("Foundation", "first third", 1),
			phase("Deepening", "second third", 2),
			phase("Mastery", "final third", 3),
		},
		Milestones: []string{
			fmt.Sprintf("Explain the core ideas of %s without notes", req.Subject),
			"Score 70% or higher on a practice quiz",
			"Complete a capstone exercise end to end",
		},
		DailySchedule: map[string]string{
			"09:00": "Review yesterday's notes",
			"09:30": "Study new material",
			"10:30": "Practice problems",
			"11:00": "Quick self-quiz and recap",
		},
		Resources: []string{
			fmt.Sprintf("A standard %s textbook", req.Subject),
			"Flashcards for key terms",
			"Past quizzes for spaced review",
		},
		Tips: []string{
			"Study in short, regular blocks rather than long cramming sessions",
			"Test yourself before re-reading",
			"Track what you got wrong and revisit it after two days",
		},
	}
}

func FallbackLearningModule(req models.LearningModuleRequest) models.LearningModule {
	sections := []string{"What it is", "Why it matters", "How it works"}
	basics := make([]models.BasicSection, len(sections))
	for i, s := range sections {
		basics[i] = models.BasicSection{
			Title:   fmt.Sprintf("%s: %s", req.Topic, s),
			Content: fmt.Sprintf("Placeholder overview (%d of %d) of %s within %s. Configure a Gemini API key for generated content.", i+1, len(sections), req.Topic, req.Subject),
		}
	}

	steps := []string{"Learn the vocabulary", "Study worked examples", "Practice guided problems", "Attempt problems unaided", "Review and recap"}
	flowchart := make([]models.FlowchartStep, len(steps))
	for i, s := range steps {
		flowchart[i] = models.FlowchartStep{
			Step:        i + 1,
			Title:       s,
			Description: fmt.Sprintf("%s for %s.", s, req.Topic),
		}
	}

	return models.LearningModule{
		Basics:    basics,
		Flowchart: flowchart,
		Quiz: FallbackQuiz(models.QuizRequest{
			Subject: req.Subject, Topic: req.Topic, Difficulty: "medium", NumQuestions: 3,
		}),
		YoutubeTopics: []string{
			fmt.Sprintf("%s introduction", req.Topic),
			fmt.Sprintf("%s explained with examples", req.Topic),
			fmt.Sprintf("%s common mistakes", req.Topic),
			fmt.Sprintf("%s practice problems", req.Topic),
		},
		RecapTimetable: map[string]string{
			"Day 1": fmt.Sprintf("Revise %s basics", req.Topic),
			"Day 2": "Redo the module quiz",
			"Day 4": "Explain the topic aloud from memory",
			"Day 7": "Full recap and gap check",
		},
		ConceptMap: []models.ConceptMapEntry{
			{Concept: req.Topic, RelatedTo: []string{req.Subject + " fundamentals", "Prerequisite vocabulary"}},
			{Concept: req.Subject + " fundamentals", RelatedTo: []string{"Core definitions"}},
			{Concept: "Worked examples", RelatedTo: []string{req.Topic}},
			{Concept: "Practice problems", RelatedTo: []string{req.Topic, "Worked examples"}},
		},
	}
}

func FallbackAssignments(req models.AssignmentRequest) models.AssignmentSet {
	difficulties := []string{"easy", "medium", "hard"}

	assignments := make([]models.Assignment, req.NumAssignments)
	for i := 0; i < req.NumAssignments; i++ {
		assignments[i] = models.Assignment{
			ID:          i + 1,
			Title:       fmt.Sprintf("Assignment %d: %s practice", i+1, req.Topic),
			Description: fmt.Sprintf("Placeholder assignment %d on %s (%s). Configure a Gemini API key for generated assignments.", i+1, req.Topic, req.Subject),
			Difficulty:  difficulties[min(i*len(difficulties)/req.NumAssignments, len(difficulties)-1)],
			Deliverable: fmt.Sprintf("A short written solution for assignment %d", i+1),
		}
	}

	return models.AssignmentSet{
		ImportantTopics: fallbackTopics(req.Subject, req.Topic),
		Assignments:     assignments,
	}
}

func FallbackAdaptiveQuiz(req models.AdaptiveQuizRequest, tier string) models.AdaptiveQuiz {
	quiz := FallbackQuiz(models.QuizRequest{
		Subject: req.Subject, Topic: req.Topic, Difficulty: tier, NumQuestions: req.NumQuestions,
	})
	for i := range quiz {
		quiz[i].TargetConcept = fmt.Sprintf("%s concept %d", req.Topic, i+1)
		quiz[i].PrerequisiteGap = fmt.Sprintf("%s fundamentals", req.Subject)
	}

	return models.AdaptiveQuiz{
		ImportantTopics: fallbackTopics(req.Subject, req.Topic),
		Quiz:            quiz,
	}
}

func fallbackTopics(subject, topic string) []string {
	return []string{
		fmt.Sprintf("%s terminology", topic),
		fmt.Sprintf("Core principles of %s", topic),
		fmt.Sprintf("%s in the context of %s", topic, subject),
		fmt.Sprintf("Common pitfalls in %s", topic),
		fmt.Sprintf("Applying %s to real problems", topic),
	}
}
