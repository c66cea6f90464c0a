package goal

import (
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

// ToRecord renders g in the stored shape. Legacy readers look for
// name/target/scheduleDays/minutesPerSession, current ones for
// title/targetValue/plan, so both are written.
func ToRecord(g model.Goal) map[string]any {
	days := make([]any, len(g.Plan.DaysPerWeek))
	for i, d := range g.Plan.DaysPerWeek {
		days[i] = d
	}

	var deadline any
	if g.HasDeadline() {
		deadline = g.DeadlineDate.String()
	}

	rec := map[string]any{
		"id":           g.ID,
		"title":        g.Title,
		"name":         g.Title,
		"type":         string(g.Type),
		"paceMode":     string(g.PaceMode),
		"targetValue":  g.TargetValue,
		"target":       g.TargetValue,
		"mode":         string(g.Mode),
		"unitName":     g.UnitName,
		"startDate":    g.StartDate.String(),
		"deadlineDate": deadline,
		"plan": map[string]any{
			"daysPerWeek":       days,
			"minutesPerSession": g.Plan.MinutesPerSession,
		},
		"scheduleDays":      days,
		"minutesPerSession": g.Plan.MinutesPerSession,
		"rate": map[string]any{
			"valuePerHour": g.Rate.ValuePerHour,
		},
		"paused":        g.Paused,
		"longestStreak": g.LongestStreak,
	}

	if len(g.Pauses) > 0 {
		pauses := make([]any, len(g.Pauses))
		for i, p := range g.Pauses {
			pauses[i] = map[string]any{"start": p.Start.String(), "end": p.End.String()}
		}
		rec["pauses"] = pauses
	}

	return rec
}

// ToRecords renders a goal list for the storage collaborator.
func ToRecords(goals []model.Goal) []map[string]any {
	out := make([]map[string]any, len(goals))
	for i, g := range goals {
		out[i] = ToRecord(g)
	}
	return out
}

// FromRecords normalizes every stored record.
func FromRecords(raws []map[string]any, today datemath.Date) []model.Goal {
	out := make([]model.Goal, 0, len(raws))
	for _, raw := range raws {
		out = append(out, Normalize(raw, today))
	}
	return out
}

// Find returns the goal with id, if present.
func Find(goals []model.Goal, id string) (model.Goal, bool) {
	for _, g := range goals {
		if g.ID == id {
			return g, true
		}
	}
	return model.Goal{}, false
}
