package wizard

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"pacekeeper/internal/eta"
	"pacekeeper/internal/goal"
	"pacekeeper/internal/intent"
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

const (
	defaultGenericTarget = 12
	defaultFitnessTarget = 10
	planningWeeks        = 4
)

// Summary holds the human labels shown on the last step.
type Summary struct {
	Frequency string `json:"frequency"`
	Time      string `json:"time"`
	Total     string `json:"total"`
	Pace      string `json:"pace"`
}

// Plan is the goal a flow would produce, plus a zero-history ETA preview.
type Plan struct {
	Title             string           `json:"title"`
	Type              model.GoalType   `json:"type"`
	PaceMode          model.PaceMode   `json:"paceMode"`
	Mode              model.MetricMode `json:"mode"`
	UnitName          string           `json:"unitName"`
	TargetValue       float64          `json:"targetValue"`
	DaysPerWeek       []int            `json:"daysPerWeek"`
	MinutesPerSession int              `json:"minutesPerSession"`
	EstimatedDays     *int             `json:"estimatedDays"`
	EstimatedETA      string           `json:"estimatedEta,omitempty"`
	Deadline          datemath.Date    `json:"deadline"`
	Summary           Summary          `json:"summary"`
}

// NewGoalID returns an id for a goal created by a wizard flow.
func NewGoalID() string {
	return "goal_" + uuid.NewString()
}

// BuildTitle names the goal from the category and whatever the flow collected.
func BuildTitle(s State) string {
	summary := intent.Summarize(s.IntentText, intent.DefaultSummaryWords)
	switch s.Category {
	case model.GoalTypeReading:
		if s.BookTitle != "" {
			return prefixReading + s.BookTitle
		}
		if summary == "" {
			summary = "Nuevo libro"
		}
		return prefixReading + summary
	case model.GoalTypeStudy:
		return titleOr(prefixStudy, firstNonEmpty(s.TopicTitle, summary), "Estudiar")
	case model.GoalTypeHabit:
		return titleOr(prefixHabit, firstNonEmpty(s.HabitTitle, summary), "Nuevo hábito")
	case model.GoalTypeFitness:
		return titleOr(prefixFitness, firstNonEmpty(s.Title, summary), "Entrenar")
	}
	return titleOr(prefixGeneric, summary, goal.DefaultTitle)
}

func titleOr(prefix, subject, fallback string) string {
	if subject == "" {
		return fallback
	}
	return prefix + subject
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// BuildSmartPlan resolves the metric, target and schedule for s. rate is the
// units-per-hour used for the ETA preview of unit-mode goals.
func BuildSmartPlan(s State, rate float64, today datemath.Date) Plan {
	days := s.DaysPerWeek
	if len(days) == 0 {
		days = goal.DefaultDays
	}
	minutes := s.MinutesPerSession
	if minutes <= 0 {
		minutes = goal.DefaultMinutesPerSession
	}
	pace := s.PaceMode
	if pace == "" {
		pace = model.PaceModePace
	}

	p := Plan{
		Title:             BuildTitle(s),
		Type:              s.Category,
		PaceMode:          pace,
		Mode:              model.MetricModeUnits,
		UnitName:          goal.DefaultUnitName,
		DaysPerWeek:       append([]int{}, days...),
		MinutesPerSession: minutes,
	}
	if !p.Type.Valid() {
		p.Type = model.GoalTypeGeneric
	}

	monthOfHours := max(1, math.Round(float64(len(days)*minutes)/60*planningWeeks))
	switch p.Type {
	case model.GoalTypeReading:
		switch {
		case s.PageCount > 0:
			p.UnitName = unitPages
			p.TargetValue = float64(s.PageCount)
		case pace == model.PaceModeDeadline && s.DeadlineDays > 0:
			p.Mode, p.UnitName = model.MetricModeTime, goal.DefaultTimeUnitName
			weeks := max(1, float64(s.DeadlineDays)/7)
			p.TargetValue = max(1, math.Round(weeks*float64(len(days)*minutes)/60))
		case s.PagesUnknown && s.TargetValue > 0:
			p.Mode, p.UnitName = model.MetricModeTime, goal.DefaultTimeUnitName
			p.TargetValue = s.TargetValue
		default:
			p.Mode, p.UnitName = model.MetricModeTime, goal.DefaultTimeUnitName
			p.TargetValue = monthOfHours
		}
	case model.GoalTypeStudy, model.GoalTypeHabit:
		p.Mode, p.UnitName = model.MetricModeTime, goal.DefaultTimeUnitName
		p.TargetValue = monthOfHours
	case model.GoalTypeFitness:
		p.UnitName = unitKm
		p.TargetValue = positiveOr(s.TargetValue, defaultFitnessTarget)
	default:
		if s.UnitSelection != "" {
			p.UnitName = s.UnitSelection
		}
		if p.UnitName == goal.DefaultTimeUnitName {
			p.Mode = model.MetricModeTime
		}
		p.TargetValue = positiveOr(s.TargetValue, defaultGenericTarget)
	}

	preview := model.Goal{
		Title:       p.Title,
		Mode:        p.Mode,
		UnitName:    p.UnitName,
		TargetValue: p.TargetValue,
		Plan: model.Plan{
			DaysPerWeek:       p.DaysPerWeek,
			MinutesPerSession: float64(p.MinutesPerSession),
		},
		Rate: model.Rate{ValuePerHour: rate},
	}
	p.EstimatedDays = eta.ProjectETADays(preview, nil, 1, nil)
	if p.EstimatedDays != nil && *p.EstimatedDays > 0 {
		p.EstimatedETA = datemath.FormatLong(today.AddDays(*p.EstimatedDays))
	}
	if pace == model.PaceModeDeadline && s.DeadlineDays > 0 {
		p.Deadline = today.AddDays(s.DeadlineDays)
	}
	p.Summary = summarize(p, s.DeadlineDays)
	return p
}

func positiveOr(v, def float64) float64 {
	if v > 0 {
		return v
	}
	return def
}

func summarize(p Plan, deadlineDays int) Summary {
	sum := Summary{
		Frequency: "Todos los días",
		Time:      fmt.Sprintf("%d min por sesión", p.MinutesPerSession),
		Pace:      "A tu ritmo",
	}
	if n := len(p.DaysPerWeek); n != 7 {
		sum.Frequency = fmt.Sprintf("%d días por semana", n)
	}
	target := strconv.FormatFloat(p.TargetValue, 'f', -1, 64)
	sum.Total = fmt.Sprintf("%s %s en total", target, p.UnitName)
	if p.PaceMode == model.PaceModeDeadline && deadlineDays > 0 {
		sum.Pace = fmt.Sprintf("Terminar en %d días", deadlineDays)
	}
	return sum
}

// apply writes the plan's fields over g, keeping everything the plan does not own.
func (p Plan) apply(g model.Goal, rate float64) model.Goal {
	g.Title = p.Title
	g.Type = p.Type
	g.PaceMode = p.PaceMode
	g.Mode = p.Mode
	g.UnitName = p.UnitName
	g.TargetValue = p.TargetValue
	g.DeadlineDate = p.Deadline
	g.Plan = model.Plan{
		DaysPerWeek:       append([]int{}, p.DaysPerWeek...),
		MinutesPerSession: float64(p.MinutesPerSession),
	}
	g.Rate = model.Rate{ValuePerHour: rate}
	return g
}
