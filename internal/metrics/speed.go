package metrics

import "pacekeeper/internal/model"

const (
	SpeedObserved   = "Real"
	SpeedConfigured = "Est."
	SpeedNotApplies = "N/D"
)

// Speed is the rate shown next to a goal's settings.
type Speed struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// ComputeSpeed reports the observed rate once any time is logged, else the configured one.
// Time goals have no meaningful rate.
func ComputeSpeed(g model.Goal, st Stats) Speed {
	if g.Mode == model.MetricModeTime {
		return Speed{Label: SpeedNotApplies}
	}
	if st.TotalMinutes > 0 {
		return Speed{Value: st.AverageRate, Label: SpeedObserved}
	}
	return Speed{Value: g.Rate.ValuePerHour, Label: SpeedConfigured}
}
