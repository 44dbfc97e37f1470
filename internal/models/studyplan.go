package models

import "fmt"

type StudyPlan struct {
	Subject        string            `json:"subject"`
	TotalDuration  string            `json:"totalDuration"`
	DailyStudyTime string            `json:"dailyStudyTime"`
	Phases         []StudyPhase      `json:"phases"`
	Milestones     []string          `json:"milestones"`
	DailySchedule  map[string]string `json:"dailySchedule"`
	Resources      []string          `json:"resources"`
	Tips           []string          `json:"tips"`
}

type StudyPhase struct {
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	Topics     []string `json:"topics"`
	Objectives []string `json:"objectives"`
	Activities []string `json:"activities"`
	Resources  []string `json:"resources"`
}

type StudyPlanRequest struct {
	Subject      string `json:"subject"`
	Duration     int    `json:"duration"`
	DurationUnit string `json:"durationUnit"`
}

func (r *StudyPlanRequest) ApplyDefaults() {
	if r.Subject == "" {
		r.Subject = "Mathematics"
	}
	if r.Duration <= 0 {
		r.Duration = 4
	}
	if r.DurationUnit == "" {
		r.DurationUnit = "weeks"
	}
}

// TotalDuration renders the "<n> <unit>" string used across plan payloads.
func (r *StudyPlanRequest) TotalDuration() string {
	return fmt.Sprintf("%d %s", r.Duration, r.DurationUnit)
}
