package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionEntry is one recorded learning attempt. History is an unbounded
// append-only list per learner; the profile is recomputed from the full list
// on every read.
type SessionEntry struct {
	ID        uuid.UUID `json:"id"`
	LearnerID string    `json:"learnerId"`
	Topic     string    `json:"topic"`
	Score     float64   `json:"score"`
	Duration  float64   `json:"duration"`
	Timestamp time.Time `json:"timestamp"`
}

// LearnerProfile is derived, never stored. SuccessRate is the fraction of
// sessions scoring at least 70.
type LearnerProfile struct {
	SkillLevel  string  `json:"skillLevel"`
	Pace        string  `json:"pace"`
	Consistency string  `json:"consistency"`
	SuccessRate float64 `json:"successRate"`
}

type RecordSessionRequest struct {
	LearnerID string  `json:"learnerId"`
	Topic     string  `json:"topic"`
	Score     float64 `json:"score"`
	Duration  float64 `json:"duration"`
}

func (r *RecordSessionRequest) ApplyDefaults() {
	if r.LearnerID == "" {
		r.LearnerID = "local"
	}
	if r.Topic == "" {
		r.Topic = "general"
	}
}
