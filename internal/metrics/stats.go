package metrics

import (
	"math"

	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

// Stats are the lifetime totals of a goal.
type Stats struct {
	TotalUnits   float64 `json:"totalUnits"`
	TotalMinutes float64 `json:"totalMinutes"`
	Percent      int     `json:"percent"`
	AverageRate  float64 `json:"averageRate"`
}

// WeeklyStats are the totals since Monday of the current week.
type WeeklyStats struct {
	WeekStart         datemath.Date `json:"weekStart"`
	CompletedSessions int           `json:"completedSessions"`
	PlannedSessions   int           `json:"plannedSessions"`
	TotalMinutes      float64       `json:"totalMinutes"`
	TotalUnits        float64       `json:"totalUnits"`
}

// Contribution is how many units s adds to g. Time goals count hours; unit
// goals count the explicit value, or estimate from the rate when there is none.
func Contribution(g model.Goal, s model.Session) float64 {
	if g.Mode == model.MetricModeTime {
		return s.Minutes / 60
	}
	if s.Value != nil {
		return *s.Value
	}
	if g.Rate.ValuePerHour > 0 && s.Minutes > 0 {
		return math.Floor(s.Minutes / 60 * g.Rate.ValuePerHour)
	}
	return 0
}

// ComputeStats accumulates every session of g.
func ComputeStats(g model.Goal, sessions []model.Session) Stats {
	var st Stats
	for _, s := range sessions {
		st.TotalMinutes += s.Minutes
		st.TotalUnits += Contribution(g, s)
	}

	if g.TargetValue > 0 {
		st.Percent = clampInt(int(math.Floor(st.TotalUnits/g.TargetValue*100)), 0, 100)
	}

	st.AverageRate = g.Rate.ValuePerHour
	if g.Mode != model.MetricModeTime && st.TotalMinutes > 0 {
		st.AverageRate = math.Floor(st.TotalUnits / (st.TotalMinutes / 60))
	}
	return st
}

// ComputeWeeklyStats accumulates the sessions dated within the Monday to Sunday week of today.
func ComputeWeeklyStats(g model.Goal, sessions []model.Session, today datemath.Date) WeeklyStats {
	ws := WeeklyStats{
		WeekStart:       datemath.WeekStart(today),
		PlannedSessions: len(g.Plan.DaysPerWeek),
	}
	weekEnd := ws.WeekStart.AddDays(7)
	for _, s := range sessions {
		if s.Date.Before(ws.WeekStart) || !s.Date.Before(weekEnd) {
			continue
		}
		ws.CompletedSessions++
		ws.TotalMinutes += s.Minutes
		ws.TotalUnits += Contribution(g, s)
	}
	return ws
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
