package metrics

import (
	"fmt"
	"math"

	"pacekeeper/internal/model"
	"pacekeeper/internal/session"
	"pacekeeper/pkg/datemath"
)

const (
	suggestionDayOff  = "Hoy es día libre para esta meta."
	suggestionDone    = "Meta diaria cumplida 🎉"
	suggestionPending = "Te faltan ~%s min para cumplir lo de hoy."
)

// TodaySummary is the per-goal checklist line for today.
type TodaySummary struct {
	IsWorkDay        bool    `json:"isTodayWorkDay"`
	PlannedMinutes   float64 `json:"plannedMinutes"`
	CompletedMinutes float64 `json:"completedMinutes"`
	RemainingMinutes float64 `json:"remainingMinutes"`
	SuggestionText   string  `json:"suggestionText"`
}

// IsWorkDay reports whether the plan schedules g on d.
func IsWorkDay(g model.Goal, d datemath.Date) bool {
	return g.IsPlanDay(d)
}

// SummarizeToday compares planned and logged minutes for today.
func SummarizeToday(g model.Goal, sessions []model.Session, today datemath.Date) TodaySummary {
	sum := TodaySummary{IsWorkDay: IsWorkDay(g, today)}
	for _, s := range session.OnDate(sessions, today) {
		sum.CompletedMinutes += s.Minutes
	}
	if sum.IsWorkDay {
		sum.PlannedMinutes = math.Max(g.Plan.MinutesPerSession, 0)
	}
	sum.RemainingMinutes = math.Max(sum.PlannedMinutes-sum.CompletedMinutes, 0)

	switch {
	case !sum.IsWorkDay:
		sum.SuggestionText = suggestionDayOff
	case sum.RemainingMinutes > 0:
		sum.SuggestionText = fmt.Sprintf(suggestionPending, formatMinutes(sum.RemainingMinutes))
	default:
		sum.SuggestionText = suggestionDone
	}
	return sum
}

func formatMinutes(m float64) string {
	if m == math.Trunc(m) {
		return fmt.Sprintf("%d", int(m))
	}
	return fmt.Sprintf("%.1f", m)
}
