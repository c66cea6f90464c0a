package eta

import (
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

// Scenario is a what-if projection at a different intensity.
type Scenario struct {
	Modifier    float64 `json:"modifier"`
	ETA         string  `json:"eta"`
	Description string  `json:"description"`
}

var scenarioModifiers = []float64{0.8, 1, 1.2}

// Scenarios projects the slower, current and faster paces without touching the goal.
func Scenarios(g model.Goal, sessions []model.Session, today datemath.Date) []Scenario {
	out := make([]Scenario, 0, len(scenarioModifiers))
	for _, m := range scenarioModifiers {
		out = append(out, Scenario{
			Modifier:    m,
			ETA:         ProjectETA(g, sessions, m, today),
			Description: describe(m),
		})
	}
	return out
}

func describe(m float64) string {
	switch {
	case m < 1:
		return "-20% intensidad"
	case m > 1:
		return "+20% intensidad"
	default:
		return "Basado en tu histórico"
	}
}

// SkipInsight is the cost of dropping one session per week.
type SkipInsight struct {
	BaseDays    int  `json:"baseDays"`
	DelayedDays int  `json:"delayedDays"`
	ExtraDays   int  `json:"extraDays"`
	Available   bool `json:"available"`
}

// Skip compares the current projection with one that has a session less per week.
func Skip(g model.Goal, sessions []model.Session) SkipInsight {
	base := ProjectETADays(g, sessions, 1, nil)
	fewer := len(g.Plan.DaysPerWeek) - 1
	delayed := ProjectETADays(g, sessions, 1, &fewer)
	if base == nil || delayed == nil {
		return SkipInsight{}
	}
	return SkipInsight{
		BaseDays:    *base,
		DelayedDays: *delayed,
		ExtraDays:   max(0, *delayed-*base),
		Available:   true,
	}
}
