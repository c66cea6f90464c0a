package model

import "pacekeeper/pkg/datemath"

// GoalType is the category a goal belongs to.
type GoalType string

const (
	GoalTypeReading GoalType = "reading"
	GoalTypeFitness GoalType = "fitness"
	GoalTypeStudy   GoalType = "study"
	GoalTypeHabit   GoalType = "habit"
	GoalTypeGeneric GoalType = "generic"
)

// Valid reports whether t is one of the known categories.
func (t GoalType) Valid() bool {
	switch t {
	case GoalTypeReading, GoalTypeFitness, GoalTypeStudy, GoalTypeHabit, GoalTypeGeneric:
		return true
	}
	return false
}

// MetricMode decides whether progress is counted in units or in hours.
type MetricMode string

const (
	MetricModeUnits MetricMode = "units"
	MetricModeTime  MetricMode = "time"
)

// PaceMode tells whether a goal is driven by a deadline or by a steady rhythm.
type PaceMode string

const (
	PaceModeDeadline PaceMode = "deadline"
	PaceModePace     PaceMode = "pace"
)

// Plan is the weekly schedule. DaysPerWeek holds weekday indices, 0=Sunday..6=Saturday.
type Plan struct {
	DaysPerWeek       []int   `json:"daysPerWeek"`
	MinutesPerSession float64 `json:"minutesPerSession"`
}

// Rate converts logged time into units for unit-mode goals.
type Rate struct {
	ValuePerHour float64 `json:"valuePerHour"`
}

// PauseWindow is an inclusive range of days the streak ignores.
type PauseWindow struct {
	Start datemath.Date `json:"start"`
	End   datemath.Date `json:"end"`
}

// Contains reports whether d falls inside the window.
func (p PauseWindow) Contains(d datemath.Date) bool {
	if p.Start.IsZero() || p.End.IsZero() {
		return false
	}
	return !d.Before(p.Start) && !d.After(p.End)
}

// Goal is the single canonical goal shape every component reads.
type Goal struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Type          GoalType      `json:"type"`
	PaceMode      PaceMode      `json:"paceMode"`
	TargetValue   float64       `json:"targetValue"`
	Mode          MetricMode    `json:"mode"`
	UnitName      string        `json:"unitName"`
	StartDate     datemath.Date `json:"startDate"`
	DeadlineDate  datemath.Date `json:"deadlineDate"`
	Plan          Plan          `json:"plan"`
	Rate          Rate          `json:"rate"`
	Paused        bool          `json:"paused"`
	Pauses        []PauseWindow `json:"pauses,omitempty"`
	LongestStreak int           `json:"longestStreak"`
}

// HasDeadline reports whether an absolute deadline overrides pace projection.
func (g Goal) HasDeadline() bool {
	return !g.DeadlineDate.IsZero()
}

// IsPausedOn reports whether d lies in one of the goal's pause windows.
func (g Goal) IsPausedOn(d datemath.Date) bool {
	for _, p := range g.Pauses {
		if p.Contains(d) {
			return true
		}
	}
	return false
}

// IsPlanDay reports whether d's weekday is on the plan.
func (g Goal) IsPlanDay(d datemath.Date) bool {
	wd := int(d.Weekday())
	for _, day := range g.Plan.DaysPerWeek {
		if day == wd {
			return true
		}
	}
	return false
}
