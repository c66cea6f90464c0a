package goal

import (
	"slices"

	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

const (
	DefaultID                = "goal_default"
	DefaultTitle             = "Mi Nueva Meta"
	DefaultTargetValue       = 50000
	DefaultUnitName          = "sesiones"
	DefaultTimeUnitName      = "horas"
	DeprecatedUnitName       = "unidades"
	DefaultMinutesPerSession = 60
	DefaultValuePerHour      = 500
)

// DefaultDays is Monday to Friday.
var DefaultDays = []int{1, 2, 3, 4, 5}

// Default returns the goal a fresh install starts with.
func Default(today datemath.Date) model.Goal {
	return model.Goal{
		ID:          DefaultID,
		Title:       DefaultTitle,
		Type:        model.GoalTypeGeneric,
		PaceMode:    model.PaceModePace,
		TargetValue: DefaultTargetValue,
		Mode:        model.MetricModeUnits,
		UnitName:    DefaultUnitName,
		StartDate:   today,
		Plan: model.Plan{
			DaysPerWeek:       append([]int(nil), DefaultDays...),
			MinutesPerSession: DefaultMinutesPerSession,
		},
		Rate: model.Rate{ValuePerHour: DefaultValuePerHour},
	}
}

// IsDefault reports whether g is still the untouched starter goal.
func IsDefault(g model.Goal) bool {
	if g.ID != DefaultID || g.Title != DefaultTitle || g.TargetValue != DefaultTargetValue ||
		g.Mode != model.MetricModeUnits || g.UnitName != DefaultUnitName ||
		g.Plan.MinutesPerSession != DefaultMinutesPerSession {
		return false
	}
	return slices.Equal(g.Plan.DaysPerWeek, DefaultDays)
}
