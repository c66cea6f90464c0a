package wizard

import (
	"math"
	"strings"

	"github.com/spf13/cast"

	"pacekeeper/internal/goal"
	"pacekeeper/internal/intent"
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

// Mode says whether finishing a flow adds a goal or rewrites one.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Wizard is one in-progress flow. It is not safe for concurrent use.
type Wizard struct {
	mode     Mode
	goalID   string
	baseRate float64
	state    State
	cursor   int
}

// NewCreate opens a flow that will add a new goal. base is the goal selected when the
// flow opened; time-mode goals inherit its rate.
func NewCreate(intentText string, base model.Goal) *Wizard {
	return &Wizard{
		mode:     ModeCreate,
		baseRate: base.Rate.ValuePerHour,
		state:    NewCreateState(intentText),
	}
}

// NewEdit opens a flow over an existing goal.
func NewEdit(g model.Goal, today datemath.Date) *Wizard {
	return &Wizard{
		mode:     ModeEdit,
		goalID:   g.ID,
		baseRate: g.Rate.ValuePerHour,
		state:    StateFromGoal(g, today),
	}
}

func (w *Wizard) Mode() Mode     { return w.mode }
func (w *Wizard) GoalID() string { return w.goalID }
func (w *Wizard) Cursor() int    { return w.cursor }

// State returns a copy of the collected answers.
func (w *Wizard) State() State { return w.state.clone() }

// Steps recomputes the active step list from the current state.
func (w *Wizard) Steps() []Step {
	return ActiveSteps(w.state.Category, w.state)
}

// Current is the step under the cursor.
func (w *Wizard) Current() (Step, bool) {
	steps := w.Steps()
	if w.cursor < 0 || w.cursor >= len(steps) {
		return Step{}, false
	}
	return steps[w.cursor], true
}

// CanAdvance reports whether the current step holds a valid answer.
func (w *Wizard) CanAdvance() bool {
	st, ok := w.Current()
	return ok && IsStepValid(st, w.state)
}

// Next moves forward one step. It does nothing on an invalid step or at the end.
func (w *Wizard) Next() bool {
	if !w.CanAdvance() || w.cursor >= len(w.Steps())-1 {
		return false
	}
	w.cursor++
	return true
}

// Back moves one step back. It does nothing on the first step.
func (w *Wizard) Back() bool {
	if w.cursor <= 0 {
		return false
	}
	w.cursor--
	return true
}

// Set answers the field key. Any change can reshape the flow, so the cursor is
// re-clamped afterwards; a category change restarts it from the first step.
func (w *Wizard) Set(key string, value any) error {
	s := &w.state
	if s.Confirmed == nil {
		s.Confirmed = map[string]bool{}
	}
	if s.Preset == nil {
		s.Preset = map[string]bool{}
	}

	switch key {
	case KeyIntentText:
		s.IntentText = strings.TrimSpace(cast.ToString(value))
		p := intent.Parse(s.IntentText)
		if p.Category != s.Category {
			s.Category = p.Category
			w.cursor = 0
		}
		s.merge(p)
	case KeyTitle, KeyBookTitle, KeyTopicTitle, KeyHabitTitle, KeyPreferredTime, KeyUnitSelection:
		v, err := cast.ToStringE(value)
		if err != nil {
			return ErrInvalidValue
		}
		s.setText(key, strings.TrimSpace(v))
	case KeyPaceMode:
		switch pm := model.PaceMode(cast.ToString(value)); pm {
		case model.PaceModeDeadline:
			s.PaceMode = pm
		case model.PaceModePace:
			s.PaceMode = pm
			s.DeadlineDays = 0
		default:
			return ErrInvalidValue
		}
	case KeyHabitFrequency:
		if err := s.setFrequency(cast.ToString(value)); err != nil {
			return err
		}
	case KeyDaysPerWeek:
		days, ok := goal.ParseDays(value)
		if !ok {
			return ErrInvalidValue
		}
		s.DaysPerWeek = days
	case KeyPageCount:
		if str, ok := value.(string); ok && strings.TrimSpace(str) == UnknownPagesChoice {
			s.PagesUnknown = true
			s.PageCount = 0
			break
		}
		n, err := wholeNumber(value)
		if err != nil {
			return err
		}
		s.PageCount = n
		if n > 0 {
			s.PagesUnknown = false
		}
	case KeyDeadlineDays:
		n, err := wholeNumber(value)
		if err != nil {
			return err
		}
		s.DeadlineDays = n
		if n > 0 {
			s.PaceMode = model.PaceModeDeadline
		}
	case KeyDaysPerWeekCount:
		n, err := wholeNumber(value)
		if err != nil {
			return err
		}
		s.DaysPerWeekCount = n
		s.DaysPerWeek = intent.BuildDaysFromCount(n)
		s.Confirmed[KeyDaysPerWeek] = true
	case KeyMinutesPerSession:
		n, err := wholeNumber(value)
		if err != nil {
			return err
		}
		s.MinutesPerSession = n
	case KeyTargetValue:
		v, err := cast.ToFloat64E(value)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidValue
		}
		s.TargetValue = v
	default:
		return ErrUnknownField
	}

	s.Confirmed[key] = true
	w.clampCursor()
	return nil
}

func (s *State) setText(key, v string) {
	switch key {
	case KeyTitle:
		s.Title = v
	case KeyBookTitle:
		s.BookTitle = v
	case KeyTopicTitle:
		s.TopicTitle = v
	case KeyHabitTitle:
		s.HabitTitle = v
	case KeyPreferredTime:
		s.PreferredTime = v
	case KeyUnitSelection:
		s.UnitSelection = v
	}
}

func (s *State) setFrequency(freq string) error {
	switch freq {
	case intent.FrequencyDaily:
		s.DaysPerWeek = intent.BuildDaysFromCount(7)
		s.DaysPerWeekCount = 7
	case intent.FrequencyThree:
		s.DaysPerWeek = []int{1, 3, 5}
		s.DaysPerWeekCount = 3
	case intent.FrequencyCustom, intent.FrequencyTimes:
	default:
		return ErrInvalidValue
	}
	s.HabitFrequency = freq
	return nil
}

func (w *Wizard) clampCursor() {
	n := len(w.Steps())
	if w.cursor >= n {
		w.cursor = max(n-1, 0)
	}
}

func wholeNumber(value any) (int, error) {
	v, err := cast.ToFloat64E(value)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidValue
	}
	return int(math.Round(v)), nil
}

// Preview synthesizes the plan the flow would commit right now.
func (w *Wizard) Preview(today datemath.Date) Plan {
	return BuildSmartPlan(w.state, w.unitRate(), today)
}

func (w *Wizard) unitRate() float64 {
	if w.state.RateValuePerHour > 0 {
		return w.state.RateValuePerHour
	}
	return DefaultRateValuePerHour
}

// Finish commits the flow into goals and returns the saved goal plus the new list.
// goals is not modified. Finish is refused while the current step is invalid.
func (w *Wizard) Finish(goals []model.Goal, today datemath.Date) (model.Goal, []model.Goal, error) {
	if !w.CanAdvance() {
		return model.Goal{}, nil, ErrStepInvalid
	}

	plan := w.Preview(today)
	rate := w.unitRate()
	if plan.Mode == model.MetricModeTime && w.baseRate > 0 {
		rate = w.baseRate
	}

	out := append([]model.Goal{}, goals...)
	switch w.mode {
	case ModeEdit:
		idx := -1
		for i, g := range out {
			if g.ID == w.goalID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return model.Goal{}, nil, ErrGoalNotFound
		}
		g := plan.apply(out[idx], rate)
		g = goal.Normalize(goal.ToRecord(g), today)
		out[idx] = g
		return g, out, nil
	default:
		g := plan.apply(model.Goal{ID: NewGoalID(), StartDate: today}, rate)
		if _, exists := goal.Find(out, g.ID); exists {
			return model.Goal{}, nil, ErrGoalIDCollision
		}
		g = goal.Normalize(goal.ToRecord(g), today)
		out = append(out, g)
		return g, out, nil
	}
}
