package goal

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

// Normalize canonicalizes any stored or legacy goal shape. It never fails:
// unreadable fields fall back to Default(today).
func Normalize(raw map[string]any, today datemath.Date) model.Goal {
	def := Default(today)
	if raw == nil {
		return def
	}

	g := def
	g.ID = firstString(raw, "id")
	if g.ID == "" {
		g.ID = def.ID
	}

	g.Title = firstString(raw, "title", "name")
	if g.Title == "" {
		g.Title = def.Title
	}

	g.Type = model.GoalType(firstString(raw, "type"))
	if !g.Type.Valid() {
		g.Type = def.Type
	}

	g.PaceMode = model.PaceMode(firstString(raw, "paceMode"))
	if g.PaceMode != model.PaceModeDeadline && g.PaceMode != model.PaceModePace {
		g.PaceMode = def.PaceMode
	}

	g.Mode = model.MetricMode(firstString(raw, "mode"))
	if g.Mode != model.MetricModeUnits && g.Mode != model.MetricModeTime {
		g.Mode = def.Mode
	}

	g.TargetValue = firstNumber(raw, def.TargetValue, "targetValue", "target")

	g.UnitName = firstString(raw, "unitName")
	if g.UnitName == "" {
		g.UnitName = DefaultUnitName
		if g.Mode == model.MetricModeTime {
			g.UnitName = DefaultTimeUnitName
		}
	}
	if g.UnitName == DeprecatedUnitName {
		g.UnitName = DefaultUnitName
	}

	if d, err := datemath.ParseDate(firstString(raw, "startDate")); err == nil {
		g.StartDate = d
	}
	if d, err := datemath.ParseDate(firstString(raw, "deadlineDate", "deadline")); err == nil {
		g.DeadlineDate = d
	}

	plan, _ := raw["plan"].(map[string]any)
	if days, ok := ParseDays(plan["daysPerWeek"]); ok {
		g.Plan.DaysPerWeek = days
	} else if days, ok := ParseDays(raw["scheduleDays"]); ok {
		g.Plan.DaysPerWeek = days
	}

	minutes := plan["minutesPerSession"]
	if minutes == nil {
		minutes = raw["minutesPerSession"]
	}
	g.Plan.MinutesPerSession = toNumber(minutes, def.Plan.MinutesPerSession)

	switch rate := raw["rate"].(type) {
	case map[string]any:
		g.Rate.ValuePerHour = toNumber(rate["valuePerHour"], def.Rate.ValuePerHour)
	case nil:
	default:
		g.Rate.ValuePerHour = toNumber(rate, def.Rate.ValuePerHour)
	}

	g.Paused = cast.ToBool(raw["paused"])
	g.Pauses = parsePauses(raw["pauses"])
	g.LongestStreak = cast.ToInt(raw["longestStreak"])
	if g.LongestStreak < 0 {
		g.LongestStreak = 0
	}

	return g
}

func parsePauses(raw any) []model.PauseWindow {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	var windows []model.PauseWindow
	for _, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		start, err1 := datemath.ParseDate(cast.ToString(m["start"]))
		end, err2 := datemath.ParseDate(cast.ToString(m["end"]))
		if err1 != nil || err2 != nil || end.Before(start) {
			continue
		}
		windows = append(windows, model.PauseWindow{Start: start, End: end})
	}
	return windows
}

// firstString returns the first key holding a non-empty value, as a string.
func firstString(raw map[string]any, keys ...string) string {
	for _, k := range keys {
		v, ok := raw[k]
		if !ok || v == nil {
			continue
		}
		if s := strings.TrimSpace(cast.ToString(v)); s != "" {
			return s
		}
	}
	return ""
}

// firstNumber takes the first present key and coerces it. A present but
// unreadable value yields def instead of falling through to later keys.
func firstNumber(raw map[string]any, def float64, keys ...string) float64 {
	for _, k := range keys {
		if v, ok := raw[k]; ok && v != nil {
			return toNumber(v, def)
		}
	}
	return def
}

func toNumber(v any, def float64) float64 {
	if v == nil {
		return def
	}
	if b, ok := v.(bool); ok {
		if b {
			return 1
		}
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return f
}
