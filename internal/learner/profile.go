// Package learner derives a coarse learner profile from raw session history.
// Everything here is a pure function over the full history slice; nothing is
// cached or updated incrementally, so two calls with the same history always
// agree.
package learner

import "mentora-backend/internal/models"

// successThreshold is the score at or above which a session counts as a
// success when computing SuccessRate.
const successThreshold = 70

// DeriveProfile recomputes the profile from the complete history. An empty
// history yields the beginner profile.
func DeriveProfile(history []models.SessionEntry) models.LearnerProfile {
	if len(history) == 0 {
		return models.LearnerProfile{
			SkillLevel:  "beginner",
			Pace:        "moderate",
			Consistency: "new",
			SuccessRate: 0,
		}
	}

	var totalScore, totalDuration float64
	successes := 0
	for _, s := range history {
		totalScore += s.Score
		totalDuration += s.Duration
		if s.Score >= successThreshold {
			successes++
		}
	}

	n := float64(len(history))
	avgScore := totalScore / n
	avgDuration := totalDuration / n

	return models.LearnerProfile{
		SkillLevel:  skillLevelFor(avgScore),
		Pace:        paceFor(avgDuration),
		Consistency: consistencyFor(len(history)),
		SuccessRate: float64(successes) / n,
	}
}

func skillLevelFor(avgScore float64) string {
	switch {
	case avgScore >= 85:
		return "expert"
	case avgScore >= 70:
		return "advanced"
	case avgScore >= 50:
		return "intermediate"
	default:
		return "beginner"
	}
}

// paceFor buckets the average session duration in minutes.
func paceFor(avgDuration float64) string {
	switch {
	case avgDuration <= 10:
		return "fast"
	case avgDuration <= 30:
		return "moderate"
	default:
		return "deliberate"
	}
}

// consistencyFor buckets history length: the more sessions recorded, the more
// the averages can be trusted.
func consistencyFor(sessions int) string {
	switch {
	case sessions >= 10:
		return "consistent"
	case sessions >= 3:
		return "building"
	default:
		return "new"
	}
}

// TierForSuccessRate maps a 0-100 success rate to a quiz difficulty tier.
// Boundaries are inclusive: >=85 expert, >=70 hard, >=50 medium, else easy.
func TierForSuccessRate(rate float64) string {
	switch {
	case rate >= 85:
		return "expert"
	case rate >= 70:
		return "hard"
	case rate >= 50:
		return "medium"
	default:
		return "easy"
	}
}

// TierForSkillLevel maps a categorical skill level to a difficulty tier.
// Unknown labels get the middle tier.
func TierForSkillLevel(level string) string {
	switch level {
	case "beginner":
		return "easy"
	case "intermediate":
		return "medium"
	case "advanced":
		return "hard"
	case "expert":
		return "expert"
	default:
		return "medium"
	}
}
