package wizard

import (
	"maps"
	"strings"

	"pacekeeper/internal/goal"
	"pacekeeper/internal/intent"
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

// Field keys accepted by Wizard.Set.
const (
	KeyIntentText        = "intentText"
	KeyTitle             = "title"
	KeyBookTitle         = "bookTitle"
	KeyTopicTitle        = "topicTitle"
	KeyHabitTitle        = "habitTitle"
	KeyHabitFrequency    = "habitFrequency"
	KeyPreferredTime     = "preferredTime"
	KeyPaceMode          = "paceMode"
	KeyDeadlineDays      = "deadlineDays"
	KeyDaysPerWeek       = "daysPerWeek"
	KeyDaysPerWeekCount  = "daysPerWeekCount"
	KeyMinutesPerSession = "minutesPerSession"
	KeyPageCount         = "pageCount"
	KeyTargetValue       = "targetValue"
	KeyUnitSelection     = "unitSelection"
)

const (
	DefaultRateValuePerHour = 20
	UnknownPagesChoice      = "unknown"
	unitPages               = "páginas"
	unitKm                  = "km"
)

// title prefixes written by BuildTitle and stripped again when editing.
const (
	prefixReading = "Leer: "
	prefixStudy   = "Estudiar: "
	prefixHabit   = "Hábito: "
	prefixFitness = "Entrenar: "
	prefixGeneric = "Meta: "
)

// State is everything one wizard flow has collected so far.
// Preset marks fields filled before their step was reached, so the step is skipped.
// Confirmed marks fields the user answered, so later parsing leaves them alone.
type State struct {
	IntentText        string          `json:"intentText"`
	Title             string          `json:"title"`
	Category          model.GoalType  `json:"category"`
	PaceMode          model.PaceMode  `json:"paceMode"`
	DeadlineDays      int             `json:"deadlineDays"`
	BookTitle         string          `json:"bookTitle"`
	TopicTitle        string          `json:"topicTitle"`
	HabitTitle        string          `json:"habitTitle"`
	HabitFrequency    string          `json:"habitFrequency"`
	PreferredTime     string          `json:"preferredTime"`
	DaysPerWeekCount  int             `json:"daysPerWeekCount"`
	UnitSelection     string          `json:"unitSelection"`
	TargetValue       float64         `json:"targetValue"`
	PageCount         int             `json:"pageCount"`
	PagesUnknown      bool            `json:"pagesUnknown"`
	DaysPerWeek       []int           `json:"daysPerWeek"`
	MinutesPerSession int             `json:"minutesPerSession"`
	RateValuePerHour  float64         `json:"rateValuePerHour"`
	Preset            map[string]bool `json:"preset"`
	Confirmed         map[string]bool `json:"confirmed"`
}

// DefaultState is the empty flow.
func DefaultState() State {
	return State{
		Category:          model.GoalTypeGeneric,
		DaysPerWeek:       append([]int{}, goal.DefaultDays...),
		MinutesPerSession: goal.DefaultMinutesPerSession,
		RateValuePerHour:  DefaultRateValuePerHour,
		Preset:            map[string]bool{},
		Confirmed:         map[string]bool{},
	}
}

// NewCreateState seeds a flow from the user's free-text intent.
func NewCreateState(intentText string) State {
	s := DefaultState()
	s.IntentText = strings.TrimSpace(intentText)
	if s.IntentText == "" {
		return s
	}
	s.Preset[KeyIntentText] = true
	p := intent.Parse(s.IntentText)
	s.Category = p.Category
	s.merge(p)
	return s
}

// StateFromGoal rebuilds a flow around an existing goal. The untouched
// starter goal opens with an empty intent so the first question is asked.
func StateFromGoal(g model.Goal, today datemath.Date) State {
	s := DefaultState()
	s.Category = g.Type
	if !s.Category.Valid() {
		s.Category = intent.Classify(g.Title)
	}

	if !goal.IsDefault(g) {
		s.Title = g.Title
		s.IntentText = stripTitlePrefix(g.Title)
	}

	switch s.Category {
	case model.GoalTypeReading:
		if strings.HasPrefix(g.Title, prefixReading) {
			s.BookTitle = strings.TrimPrefix(g.Title, prefixReading)
		}
		if g.Mode == model.MetricModeUnits && g.UnitName == unitPages {
			s.PageCount = int(g.TargetValue)
		}
		s.PagesUnknown = g.Mode == model.MetricModeTime
	case model.GoalTypeStudy:
		s.TopicTitle = strings.TrimPrefix(g.Title, prefixStudy)
	case model.GoalTypeHabit:
		s.HabitTitle = strings.TrimPrefix(g.Title, prefixHabit)
	case model.GoalTypeFitness:
		s.Title = strings.TrimPrefix(g.Title, prefixFitness)
	}

	s.PaceMode = g.PaceMode
	if g.HasDeadline() {
		if d := datemath.DaysBetween(today, g.DeadlineDate); d > 0 {
			s.DeadlineDays = d
		}
	}
	if g.Mode == model.MetricModeTime {
		s.UnitSelection = goal.DefaultTimeUnitName
	} else {
		s.UnitSelection = g.UnitName
	}
	s.TargetValue = g.TargetValue
	if len(g.Plan.DaysPerWeek) == 7 {
		s.HabitFrequency = intent.FrequencyDaily
	}
	if g.Plan.DaysPerWeek != nil {
		s.DaysPerWeek = append([]int{}, g.Plan.DaysPerWeek...)
		s.DaysPerWeekCount = len(g.Plan.DaysPerWeek)
	}
	if g.Plan.MinutesPerSession > 0 {
		s.MinutesPerSession = int(g.Plan.MinutesPerSession)
	}
	if g.Rate.ValuePerHour > 0 {
		s.RateValuePerHour = g.Rate.ValuePerHour
	}

	s.markPreset(KeyIntentText, s.IntentText != "")
	s.markPreset(KeyBookTitle, s.BookTitle != "")
	s.markPreset(KeyTopicTitle, s.TopicTitle != "")
	s.markPreset(KeyHabitTitle, s.HabitTitle != "")
	s.markPreset(KeyTitle, s.Category == model.GoalTypeFitness && s.Title != "")
	s.markPreset(KeyPaceMode, s.PaceMode != "")
	return s
}

// merge copies parsed hints into fields nobody has set yet.
func (s *State) merge(p intent.Parsed) {
	if p.PaceMode != "" && !s.locked(KeyPaceMode) {
		s.PaceMode = p.PaceMode
		s.Preset[KeyPaceMode] = true
	}
	if p.DeadlineDays > 0 && !s.locked(KeyDeadlineDays) {
		s.DeadlineDays = p.DeadlineDays
		s.Preset[KeyDeadlineDays] = true
	}
	if p.BookTitle != "" && !s.locked(KeyBookTitle) {
		s.BookTitle = p.BookTitle
		s.Preset[KeyBookTitle] = true
	}
	if p.TopicTitle != "" && !s.locked(KeyTopicTitle) {
		s.TopicTitle = p.TopicTitle
		s.Preset[KeyTopicTitle] = true
	}
	if p.HabitTitle != "" && !s.locked(KeyHabitTitle) {
		s.HabitTitle = p.HabitTitle
		s.Preset[KeyHabitTitle] = true
	}
	if p.MinutesPerSession > 0 && !s.locked(KeyMinutesPerSession) {
		s.MinutesPerSession = p.MinutesPerSession
		s.Preset[KeyMinutesPerSession] = true
	}
	if len(p.DaysPerWeek) > 0 && !s.locked(KeyDaysPerWeek) {
		s.DaysPerWeek = append([]int{}, p.DaysPerWeek...)
		s.DaysPerWeekCount = p.DaysPerWeekCount
		s.Preset[KeyDaysPerWeek] = true
		if p.HabitFrequency != "" && !s.locked(KeyHabitFrequency) {
			s.HabitFrequency = p.HabitFrequency
			s.Preset[KeyHabitFrequency] = true
		}
	}
}

func (s State) locked(key string) bool {
	return s.Preset[key] || s.Confirmed[key]
}

func (s *State) markPreset(key string, on bool) {
	if on {
		s.Preset[key] = true
	}
}

// clone copies the state deeply enough that callers cannot alias its maps or slices.
func (s State) clone() State {
	c := s
	c.DaysPerWeek = append([]int{}, s.DaysPerWeek...)
	c.Preset = maps.Clone(s.Preset)
	c.Confirmed = maps.Clone(s.Confirmed)
	return c
}

func stripTitlePrefix(title string) string {
	for _, p := range []string{prefixReading, prefixStudy, prefixHabit, prefixFitness, prefixGeneric} {
		if strings.HasPrefix(title, p) {
			return strings.TrimPrefix(title, p)
		}
	}
	return title
}
