package metrics

import (
	"math"

	"pacekeeper/internal/model"
)

// Progress is the rounded completion percentage the status classifier reads.
type Progress struct {
	Percent      int     `json:"progressPercent"`
	TotalMinutes float64 `json:"totalMinutes"`
	TotalValue   float64 `json:"totalValue"`
}

// ComputeProgress differs from ComputeStats in rounding and in the baselines
// used when a goal has no target: four weeks of planned time, or ten percent per session.
func ComputeProgress(g model.Goal, sessions []model.Session) Progress {
	var p Progress
	for _, s := range sessions {
		p.TotalMinutes += s.Minutes
		p.TotalValue += Contribution(g, s)
	}

	var percent float64
	switch {
	case g.Mode == model.MetricModeTime && g.TargetValue != 0:
		percent = p.TotalMinutes / (g.TargetValue * 60) * 100
	case g.Mode == model.MetricModeTime:
		baseline := g.Plan.MinutesPerSession * float64(max(1, len(g.Plan.DaysPerWeek))) * 4
		if baseline > 0 {
			percent = p.TotalMinutes / baseline * 100
		}
	case g.TargetValue != 0:
		percent = p.TotalValue / g.TargetValue * 100
	default:
		percent = math.Min(100, float64(len(sessions)*10))
	}

	p.Percent = int(clampFloat(math.Round(percent), 0, 100))
	return p
}
