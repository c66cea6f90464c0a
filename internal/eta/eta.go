package eta

import (
	"math"

	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

const (
	CompletedLabel     = "¡Completado!"
	ConfigurePaceLabel = "Configura tu ritmo"
)

// maxProjectionDays keeps absurdly slow paces from overflowing date math.
const maxProjectionDays = 100 * 365

// Outcome classifies a projection.
type Outcome int

const (
	OutcomeProjected Outcome = iota
	OutcomeCompleted
	OutcomeUnconfigured
)

// Projection is the day-count result of a pace projection.
type Projection struct {
	Outcome Outcome
	Days    int
}

// ProjectDays estimates how many days remain at paceModifier times the planned pace.
// sessionsPerWeek overrides the plan's day count when non-nil.
func ProjectDays(g model.Goal, sessions []model.Session, paceModifier float64, sessionsPerWeek *int) Projection {
	st := metrics.ComputeStats(g, sessions)
	remaining := g.TargetValue - st.TotalUnits
	if remaining <= 0 {
		return Projection{Outcome: OutcomeCompleted}
	}

	perWeek := float64(len(g.Plan.DaysPerWeek))
	if sessionsPerWeek != nil {
		perWeek = float64(*sessionsPerWeek)
	}
	minutesPerSession := g.Plan.MinutesPerSession

	var weeks float64
	if g.Mode == model.MetricModeTime {
		minutesPerWeek := minutesPerSession * perWeek * paceModifier
		if !(minutesPerWeek > 0) {
			return Projection{Outcome: OutcomeUnconfigured}
		}
		weeks = remaining * 60 / minutesPerWeek
	} else {
		rate := g.Rate.ValuePerHour
		if st.AverageRate > 0 {
			rate = st.AverageRate
		}
		unitsPerSession := rate * (minutesPerSession / 60) * paceModifier
		if !(unitsPerSession > 0) || perWeek <= 0 {
			return Projection{Outcome: OutcomeUnconfigured}
		}
		weeks = remaining / (unitsPerSession * perWeek)
	}

	days := math.Ceil(weeks * 7)
	if math.IsNaN(days) || days > maxProjectionDays {
		days = maxProjectionDays
	}
	return Projection{Outcome: OutcomeProjected, Days: int(days)}
}

// ProjectETADays is ProjectDays collapsed to a number: 0 when complete, nil when the pace is unusable.
func ProjectETADays(g model.Goal, sessions []model.Session, paceModifier float64, sessionsPerWeek *int) *int {
	p := ProjectDays(g, sessions, paceModifier, sessionsPerWeek)
	switch p.Outcome {
	case OutcomeCompleted:
		zero := 0
		return &zero
	case OutcomeUnconfigured:
		return nil
	}
	return &p.Days
}

// ProjectETA renders the projection as a completion date counted from today.
func ProjectETA(g model.Goal, sessions []model.Session, paceModifier float64, today datemath.Date) string {
	p := ProjectDays(g, sessions, paceModifier, nil)
	switch p.Outcome {
	case OutcomeCompleted:
		return CompletedLabel
	case OutcomeUnconfigured:
		return ConfigurePaceLabel
	}
	return datemath.FormatLong(today.AddDays(p.Days))
}
