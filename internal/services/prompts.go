package services

import (
	"fmt"
	"strings"

	"mentora-backend/internal/models"
)

// Prompt builders. Pure string templating: each builder embeds the exact JSON
// schema the route expects, because the extractor downstream only does
// best-effort recovery. Defaults are already applied by the request types.

func BuildKnowledgeGraphPrompt(req models.KnowledgeGraphRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert curriculum designer. Build a prerequisite knowledge graph for a learner.\n\n")
	b.WriteString("CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.\n\n")
	b.WriteString(fmt.Sprintf("Subject: %s\n", req.Subject))
	b.WriteString(fmt.Sprintf("Generate exactly %d concepts ordered from foundational to advanced.\n", req.NumConcepts))
	b.WriteString(`
JSON schema:
{"concepts": [{"name": "string", "level": 1-6, "description": "one sentence", "difficulty": 1-5}], "dependencies": {"Concept Name": ["prerequisite concept name"]}}

Every concept must appear as a key in "dependencies"; foundational concepts map to an empty array.
Level 1 = entry point, level 6 = most advanced. Difficulty 1 = trivial, 5 = demanding.
`)

	return b.String()
}

func BuildQuizPrompt(req models.QuizRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert educational assessor. Generate multiple choice quiz questions.\n\n")
	b.WriteString("CRITICAL: Return ONLY a valid JSON array. No preamble, no markdown, no backticks.\n\n")
	b.WriteString(fmt.Sprintf("Subject: %s\nTopic: %s\n", req.Subject, req.Topic))
	b.WriteString(fmt.Sprintf("Generate exactly %d questions.\n", req.NumQuestions))
	b.WriteString(fmt.Sprintf("Difficulty: %s\n", req.Difficulty))

	switch req.Difficulty {
	case "easy":
		b.WriteString("Easy = direct recall of definitions and facts.\n")
	case "medium":
		b.WriteString("Medium = application of concepts to new cases.\n")
	case "hard":
		b.WriteString("Hard = analysis and multi-step reasoning.\n")
	case "expert":
		b.WriteString("Expert = synthesis, edge cases, and inference beyond the obvious.\n")
	}

	b.WriteString(`
JSON schema per question:
{"id": int, "question": "string", "options": ["string", "string", "string", "string"], "correctIndex": 0-3, "explanation": "string"}

Exactly 4 options per question. Number ids sequentially from 1.
`)

	return b.String()
}

func BuildStudyPlanPrompt(req models.StudyPlanRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert study coach. Create a structured study plan.\n\n")
	b.WriteString("CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.\n\n")
	b.WriteString(fmt.Sprintf("Subject: %s\n", req.Subject))
	b.WriteString(fmt.Sprintf("Total duration: %s\n", req.TotalDuration()))
	b.WriteString(`
JSON schema:
{"subject": "string", "totalDuration": "string", "dailyStudyTime": "string", "phases": [{"name": "string", "duration": "string", "topics": ["string"], "objectives": ["string"], "activities": ["string"], "resources": ["string"]}], "milestones": ["string"], "dailySchedule": {"HH:MM": "activity"}, "resources": ["string"], "tips": ["string"]}

Use exactly 3 phases that together cover the full duration. "totalDuration" must be "` + req.TotalDuration() + `".
`)

	return b.String()
}

func BuildLearningModulePrompt(req models.LearningModuleRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert instructional designer. Create a complete self-study learning module.\n\n")
	b.WriteString("CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.\n\n")
	b.WriteString(fmt.Sprintf("Subject: %s\nTopic: %s\n", req.Subject, req.Topic))
	b.WriteString(`
JSON schema:
{"basics": [{"title": "string", "content": "2-3 sentences"}], "flowchart": [{"step": int, "title": "string", "description": "string"}], "quiz": [{"id": int, "question": "string", "options": ["string", "string", "string", "string"], "correctIndex": 0-3, "explanation": "string"}], "youtubeTopics": ["search phrase"], "recapTimetable": {"Day N": "what to revise"}, "conceptMap": [{"concept": "string", "relatedTo": ["string"]}]}

Include 3 basics sections, 5 flowchart steps, 3 quiz questions, 4 youtube search topics, a 7-day recap timetable, and 4 concept map entries.
`)

	return b.String()
}

func BuildAssignmentPrompt(req models.AssignmentRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert teacher. Design practice assignments for independent study.\n\n")
	b.WriteString("CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.\n\n")
	b.WriteString(fmt.Sprintf("Subject: %s\nTopic: %s\n", req.Subject, req.Topic))
	b.WriteString(fmt.Sprintf("Generate exactly %d assignments of increasing difficulty.\n", req.NumAssignments))
	b.WriteString(`
JSON schema:
{"importantTopics": ["string"], "assignments": [{"id": int, "title": "string", "description": "string", "difficulty": "easy"|"medium"|"hard", "deliverable": "string"}]}

List 5 important topics. Number assignment ids sequentially from 1.
`)

	return b.String()
}

// BuildAdaptiveQuizPrompt embeds the difficulty tier derived from the caller's
// learner profile, plus instructions to flag the prerequisite a wrong answer
// would reveal.
func BuildAdaptiveQuizPrompt(req models.AdaptiveQuizRequest, tier string) string {
	var b strings.Builder

	b.WriteString("You are an adaptive tutor. Generate a quiz tuned to the learner's level.\n\n")
	b.WriteString("CRITICAL: Return ONLY a valid JSON object. No preamble, no markdown, no backticks.\n\n")
	b.WriteString(fmt.Sprintf("Subject: %s\nTopic: %s\n", req.Subject, req.Topic))
	b.WriteString(fmt.Sprintf("Learner difficulty tier: %s\n", tier))
	b.WriteString(fmt.Sprintf("Generate exactly %d questions at that tier.\n", req.NumQuestions))
	b.WriteString(`
JSON schema:
{"importantTopics": ["string"], "quiz": [{"id": int, "question": "string", "options": ["string", "string", "string", "string"], "correctIndex": 0-3, "explanation": "string", "targetConcept": "string", "prerequisiteGap": "concept to revisit if answered wrong"}]}

List 5 important topics. Exactly 4 options per question. Number ids sequentially from 1.
`)

	return b.String()
}
