package tracker

import (
	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/internal/status"
	"pacekeeper/pkg/datemath"
)

var typeLabels = map[model.GoalType]string{
	model.GoalTypeReading: "📖 Lectura",
	model.GoalTypeFitness: "🏃 Fitness",
	model.GoalTypeStudy:   "📚 Estudio",
	model.GoalTypeHabit:   "✨ Hábito",
	model.GoalTypeGeneric: "🎯 Meta",
}

// TypeLabel is the display badge of a goal category.
func TypeLabel(t model.GoalType) string {
	if l, ok := typeLabels[t]; ok {
		return l
	}
	return typeLabels[model.GoalTypeGeneric]
}

// TodayItem is one row of the "today" list.
type TodayItem struct {
	GoalID     string
	Title      string
	Type       model.GoalType
	TypeLabel  string
	Status     status.Level
	ColorClass string
	metrics.TodaySummary
}

// TodayItems summarizes what each goal asks for on today, in goal order.
func TodayItems(goals []model.Goal, byGoal model.SessionsByGoal, today datemath.Date) []TodayItem {
	items := make([]TodayItem, 0, len(goals))
	for _, g := range goals {
		sessions := byGoal[g.ID]
		st := status.Classify(g, metrics.ComputeProgress(g, sessions), today, sessions)
		items = append(items, TodayItem{
			GoalID:       g.ID,
			Title:        g.Title,
			Type:         g.Type,
			TypeLabel:    TypeLabel(g.Type),
			Status:       st.Status,
			ColorClass:   st.ColorClass,
			TodaySummary: metrics.SummarizeToday(g, sessions, today),
		})
	}
	return items
}
