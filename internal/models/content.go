package models

// Concept is a single node of a knowledge graph. Level orders concepts from
// foundational (1) to advanced (6); Difficulty is the 1-5 effort estimate the
// client uses for node sizing.
type Concept struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Description string `json:"description"`
	Difficulty  int    `json:"difficulty"`
}

// KnowledgeGraph maps each concept name to the names of its prerequisites.
// The client derives the directed edge list from Dependencies.
type KnowledgeGraph struct {
	Concepts     []Concept           `json:"concepts"`
	Dependencies map[string][]string `json:"dependencies"`
}

// LearningModule bundles everything the "complete learning module" view renders.
type LearningModule struct {
	Basics         []BasicSection    `json:"basics"`
	Flowchart      []FlowchartStep   `json:"flowchart"`
	Quiz           []QuizQuestion    `json:"quiz"`
	YoutubeTopics  []string          `json:"youtubeTopics"`
	RecapTimetable map[string]string `json:"recapTimetable"`
	ConceptMap     []ConceptMapEntry `json:"conceptMap"`
}

type BasicSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type FlowchartStep struct {
	Step        int    `json:"step"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type ConceptMapEntry struct {
	Concept   string   `json:"concept"`
	RelatedTo []string `json:"relatedTo"`
}

// AssignmentSet is the response shape of the quiz-assignments route.
type AssignmentSet struct {
	ImportantTopics []string     `json:"importantTopics"`
	Assignments     []Assignment `json:"assignments"`
}

type Assignment struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Difficulty  string `json:"difficulty"`
	Deliverable string `json:"deliverable"`
}

// Request shapes. Malformed or missing fields are never rejected; each request
// type fills documented defaults instead.

type KnowledgeGraphRequest struct {
	Subject     string `json:"subject"`
	NumConcepts int    `json:"numConcepts"`
}

func (r *KnowledgeGraphRequest) ApplyDefaults() {
	if r.Subject == "" {
		r.Subject = "Mathematics"
	}
	if r.NumConcepts <= 0 {
		r.NumConcepts = 8
	}
}

type LearningModuleRequest struct {
	Subject string `json:"subject"`
	Topic   string `json:"topic"`
}

func (r *LearningModuleRequest) ApplyDefaults() {
	if r.Subject == "" {
		r.Subject = "Mathematics"
	}
	if r.Topic == "" {
		r.Topic = r.Subject
	}
}

type AssignmentRequest struct {
	Subject        string `json:"subject"`
	Topic          string `json:"topic"`
	NumAssignments int    `json:"numAssignments"`
}

func (r *AssignmentRequest) ApplyDefaults() {
	if r.Subject == "" {
		r.Subject = "Mathematics"
	}
	if r.Topic == "" {
		r.Topic = r.Subject
	}
	if r.NumAssignments <= 0 {
		r.NumAssignments = 4
	}
}
