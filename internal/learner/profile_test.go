package learner

import (
	"reflect"
	"testing"
	"time"

	"mentora-backend/internal/models"
)

func entry(score, duration float64) models.SessionEntry {
	return models.SessionEntry{
		LearnerID: "local",
		Topic:     "Algebra",
		Score:     score,
		Duration:  duration,
		Timestamp: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestTierForSuccessRate_Boundaries(t *testing.T) {
	tests := []struct {
		rate float64
		want string
	}{
		{0, "easy"},
		{49.9, "easy"},
		{50, "medium"},
		{69.9, "medium"},
		{70, "hard"},
		{84.9, "hard"},
		{85, "expert"},
		{100, "expert"},
	}

	for _, tc := range tests {
		if got := TierForSuccessRate(tc.rate); got != tc.want {
			t.Errorf("TierForSuccessRate(%v) = %q, want %q", tc.rate, got, tc.want)
		}
	}
}

func TestTierForSuccessRate_Monotonic(t *testing.T) {
	order := map[string]int{"easy": 0, "medium": 1, "hard": 2, "expert": 3}

	prev := -1
	for rate := 0.0; rate <= 100; rate += 0.5 {
		cur := order[TierForSuccessRate(rate)]
		if cur < prev {
			t.Fatalf("tier decreased at successRate %v", rate)
		}
		prev = cur
	}
}

func TestTierForSkillLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"beginner", "easy"},
		{"intermediate", "medium"},
		{"advanced", "hard"},
		{"expert", "expert"},
		{"", "medium"},
		{"wizard", "medium"},
	}

	for _, tc := range tests {
		if got := TierForSkillLevel(tc.level); got != tc.want {
			t.Errorf("TierForSkillLevel(%q) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestDeriveProfile_EmptyHistory(t *testing.T) {
	p := DeriveProfile(nil)

	if p.SkillLevel != "beginner" || p.Consistency != "new" || p.SuccessRate != 0 {
		t.Errorf("unexpected empty-history profile: %+v", p)
	}
}

func TestDeriveProfile_IsPure(t *testing.T) {
	history := []models.SessionEntry{
		entry(80, 12), entry(65, 25), entry(90, 8), entry(72, 15),
	}

	first := DeriveProfile(history)
	second := DeriveProfile(history)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same history produced different profiles:\n%+v\n%+v", first, second)
	}
}

func TestDeriveProfile_Buckets(t *testing.T) {
	tests := []struct {
		name            string
		history         []models.SessionEntry
		wantSkill       string
		wantPace        string
		wantConsistency string
		wantSuccess     float64
	}{
		{
			"two strong fast sessions",
			[]models.SessionEntry{entry(90, 5), entry(92, 7)},
			"expert", "fast", "new", 1,
		},
		{
			"three mixed sessions",
			[]models.SessionEntry{entry(40, 20), entry(60, 25), entry(72, 30)},
			"intermediate", "moderate", "building", 1.0 / 3.0,
		},
		{
			"ten slow struggling sessions",
			func() []models.SessionEntry {
				var h []models.SessionEntry
				for i := 0; i < 10; i++ {
					h = append(h, entry(35, 45))
				}
				return h
			}(),
			"beginner", "deliberate", "consistent", 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := DeriveProfile(tc.history)
			if p.SkillLevel != tc.wantSkill {
				t.Errorf("SkillLevel = %q, want %q", p.SkillLevel, tc.wantSkill)
			}
			if p.Pace != tc.wantPace {
				t.Errorf("Pace = %q, want %q", p.Pace, tc.wantPace)
			}
			if p.Consistency != tc.wantConsistency {
				t.Errorf("Consistency = %q, want %q", p.Consistency, tc.wantConsistency)
			}
			if p.SuccessRate != tc.wantSuccess {
				t.Errorf("SuccessRate = %v, want %v", p.SuccessRate, tc.wantSuccess)
			}
		})
	}
}
