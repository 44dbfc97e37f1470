package models

// QuizQuestion always carries exactly four options. TargetConcept and
// PrerequisiteGap are only populated by the adaptive quiz route.
type QuizQuestion struct {
	ID              int      `json:"id"`
	Question        string   `json:"question"`
	Options         []string `json:"options"`
	CorrectIndex    int      `json:"correctIndex"`
	Explanation     string   `json:"explanation"`
	TargetConcept   string   `json:"targetConcept,omitempty"`
	PrerequisiteGap string   `json:"prerequisiteGap,omitempty"`
}

// AdaptiveQuiz is the response shape of the ai-quiz route.
type AdaptiveQuiz struct {
	ImportantTopics []string       `json:"importantTopics"`
	Quiz            []QuizQuestion `json:"quiz"`
}

type QuizRequest struct {
	Subject      string `json:"subject"`
	Topic        string `json:"topic"`
	Difficulty   string `json:"difficulty"`
	NumQuestions int    `json:"numQuestions"`
}

func (r *QuizRequest) ApplyDefaults() {
	if r.Subject == "" {
		r.Subject = "Mathematics"
	}
	if r.Topic == "" {
		r.Topic = r.Subject
	}
	if r.Difficulty == "" {
		r.Difficulty = "medium"
	}
	if r.NumQuestions <= 0 {
		r.NumQuestions = 5
	}
}

// UserProfile is the client-supplied slice of its learner profile. Either
// SuccessRate or SkillLevel may be set; SuccessRate wins when both are present.
type UserProfile struct {
	SkillLevel  string   `json:"skillLevel"`
	SuccessRate *float64 `json:"successRate"`
}

type AdaptiveQuizRequest struct {
	Subject      string      `json:"subject"`
	Topic        string      `json:"topic"`
	UserProfile  UserProfile `json:"userProfile"`
	NumQuestions int         `json:"numQuestions"`
}

func (r *AdaptiveQuizRequest) ApplyDefaults() {
	if r.Subject == "" {
		r.Subject = "Mathematics"
	}
	if r.Topic == "" {
		r.Topic = r.Subject
	}
	if r.NumQuestions <= 0 {
		r.NumQuestions = 5
	}
}
