package wizard

import (
	"strconv"
	"strings"

	"pacekeeper/internal/intent"
	"pacekeeper/internal/model"
)

// InputType tells a client which control to render for a step.
type InputType string

const (
	InputText    InputType = "text"
	InputNumber  InputType = "number"
	InputChips   InputType = "chips"
	InputDays    InputType = "days"
	InputSummary InputType = "summary"
)

// Option is one selectable chip.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Step is one question of a template. Steps whose condition is false are not part of the flow.
type Step struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	InputType   InputType `json:"inputType"`
	Key         string    `json:"key,omitempty"`
	Required    bool      `json:"required"`
	Options     []Option  `json:"options,omitempty"`

	condition func(State) bool
	titleFor  func(State) string
}

// DayOptions lists the weekday chips Monday first.
var DayOptions = []Option{
	{Label: "L", Value: "1"},
	{Label: "M", Value: "2"},
	{Label: "X", Value: "3"},
	{Label: "J", Value: "4"},
	{Label: "V", Value: "5"},
	{Label: "S", Value: "6"},
	{Label: "D", Value: "0"},
}

var minuteChoices = []int{15, 30, 45, 60, 90}

func minuteOptions() []Option {
	opts := make([]Option, len(minuteChoices))
	for i, m := range minuteChoices {
		v := strconv.Itoa(m)
		opts[i] = Option{Label: v + " min", Value: v}
	}
	return opts
}

func notPreset(key string) func(State) bool {
	return func(s State) bool { return !s.Preset[key] }
}

var (
	intentStep = Step{
		ID:          "intent",
		Title:       "¿Qué quieres lograr?",
		Subtitle:    "Describe tu meta en una frase.",
		Placeholder: "Ej: Quiero terminar La Peste en 15 días",
		InputType:   InputText,
		Key:         KeyIntentText,
		Required:    true,
		condition:   notPreset(KeyIntentText),
	}
	minutesStep = Step{
		ID:        "minutes-per-session",
		Title:     "¿Cuánto tiempo por sesión?",
		InputType: InputChips,
		Key:       KeyMinutesPerSession,
		Required:  true,
		Options:   minuteOptions(),
		condition: notPreset(KeyMinutesPerSession),
	}
	summaryStep = Step{
		ID:        "summary",
		Title:     "Listo, este es tu plan base.",
		Subtitle:  "Podrás ajustarlo después si lo necesitas.",
		InputType: InputSummary,
		Required:  true,
	}
)

func daysStep(id, title string) Step {
	return Step{
		ID:        id,
		Title:     title,
		InputType: InputDays,
		Key:       KeyDaysPerWeek,
		Required:  true,
		Options:   DayOptions,
		condition: notPreset(KeyDaysPerWeek),
	}
}

// templates holds the ordered questions per category.
var templates = map[model.GoalType][]Step{
	model.GoalTypeReading: {
		intentStep,
		{
			ID:          "reading-book",
			Title:       "¿Qué libro quieres leer?",
			Placeholder: "Ej: La Peste",
			InputType:   InputText,
			Key:         KeyBookTitle,
			Required:    true,
			condition:   notPreset(KeyBookTitle),
		},
		{
			ID:        "reading-mode",
			Title:     "¿Quieres terminarlo en una fecha o ir a tu ritmo?",
			InputType: InputChips,
			Key:       KeyPaceMode,
			Required:  true,
			Options: []Option{
				{Label: "Terminar en X días", Value: string(model.PaceModeDeadline)},
				{Label: "A mi ritmo", Value: string(model.PaceModePace)},
			},
			condition: notPreset(KeyPaceMode),
		},
		{
			ID:          "reading-deadline",
			Title:       "¿En cuántos días?",
			Placeholder: "Ej: 30",
			InputType:   InputNumber,
			Key:         KeyDeadlineDays,
			Required:    true,
			condition: func(s State) bool {
				return s.PaceMode == model.PaceModeDeadline && !s.Preset[KeyDeadlineDays]
			},
		},
		daysStep("reading-days", "¿Qué días puedes leer?"),
		minutesStep,
		{
			ID:          "reading-pages",
			Title:       "¿Cuántas páginas tiene?",
			Subtitle:    "Opcional",
			Placeholder: "Ej: 320",
			InputType:   InputNumber,
			Key:         KeyPageCount,
			Options:     []Option{{Label: "No lo sé", Value: UnknownPagesChoice}},
			condition: func(s State) bool {
				return s.PaceMode != model.PaceModeDeadline
			},
		},
		{
			ID:          "reading-hours",
			Title:       "¿Cuántas horas en total?",
			Subtitle:    "Opcional",
			Placeholder: "Ej: 12",
			InputType:   InputNumber,
			Key:         KeyTargetValue,
			condition: func(s State) bool {
				return s.PaceMode != model.PaceModeDeadline && s.PagesUnknown && s.PageCount <= 0
			},
		},
		summaryStep,
	},
	model.GoalTypeStudy: {
		intentStep,
		{
			ID:          "study-topic",
			Title:       "¿Qué tema quieres estudiar?",
			Placeholder: "Ej: Microeconomía",
			InputType:   InputText,
			Key:         KeyTopicTitle,
			Required:    true,
			condition:   notPreset(KeyTopicTitle),
		},
		{
			ID:        "study-days",
			Title:     "¿Cuántos días a la semana puedes estudiar?",
			InputType: InputChips,
			Key:       KeyDaysPerWeekCount,
			Required:  true,
			Options: []Option{
				{Label: "2 días", Value: "2"},
				{Label: "3 días", Value: "3"},
				{Label: "4 días", Value: "4"},
				{Label: "5 días", Value: "5"},
				{Label: "6 días", Value: "6"},
				{Label: "7 días", Value: "7"},
			},
			condition: notPreset(KeyDaysPerWeek),
		},
		minutesStep,
		summaryStep,
	},
	model.GoalTypeHabit: {
		intentStep,
		{
			ID:          "habit-title",
			Title:       "¿Qué hábito quieres mantener?",
			Placeholder: "Ej: Meditar",
			InputType:   InputText,
			Key:         KeyHabitTitle,
			Required:    true,
			condition:   notPreset(KeyHabitTitle),
		},
		{
			ID:        "habit-frequency",
			Title:     "¿Con qué frecuencia?",
			InputType: InputChips,
			Key:       KeyHabitFrequency,
			Required:  true,
			Options: []Option{
				{Label: "Diario", Value: intent.FrequencyDaily},
				{Label: "3 veces por semana", Value: intent.FrequencyThree},
				{Label: "Personalizado", Value: intent.FrequencyCustom},
			},
			condition: notPreset(KeyHabitFrequency),
		},
		{
			ID:        "habit-days",
			Title:     "¿Qué días te gustaría hacerlo?",
			InputType: InputDays,
			Key:       KeyDaysPerWeek,
			Required:  true,
			Options:   DayOptions,
			condition: func(s State) bool {
				return s.HabitFrequency == intent.FrequencyCustom
			},
		},
		minutesStep,
		{
			ID:          "habit-time",
			Title:       "¿En qué horario te gustaría hacerlo?",
			Subtitle:    "Opcional",
			Placeholder: "Ej: Por la mañana",
			InputType:   InputText,
			Key:         KeyPreferredTime,
		},
		summaryStep,
	},
	model.GoalTypeFitness: {
		intentStep,
		{
			ID:          "fitness-activity",
			Title:       "¿Qué actividad quieres hacer?",
			Placeholder: "Ej: Correr",
			InputType:   InputText,
			Key:         KeyTitle,
			Required:    true,
			condition:   notPreset(KeyTitle),
		},
		{
			ID:          "fitness-target",
			Title:       "¿Cuántos km quieres recorrer?",
			Placeholder: "Ej: 10",
			InputType:   InputNumber,
			Key:         KeyTargetValue,
			Required:    true,
		},
		daysStep("fitness-days", "¿Qué días puedes entrenar?"),
		minutesStep,
		summaryStep,
	},
	model.GoalTypeGeneric: {
		intentStep,
		{
			ID:        "generic-unit",
			Title:     "¿Cómo prefieres medir tu meta?",
			InputType: InputChips,
			Key:       KeyUnitSelection,
			Required:  true,
			Options: []Option{
				{Label: "Páginas", Value: unitPages},
				{Label: "Km", Value: unitKm},
				{Label: "Sesiones", Value: "sesiones"},
				{Label: "Horas", Value: "horas"},
			},
		},
		{
			ID:          "generic-target",
			Title:       "¿Cuánto quieres completar?",
			Placeholder: "Ej: 20",
			InputType:   InputNumber,
			Key:         KeyTargetValue,
			Required:    true,
			condition:   func(s State) bool { return s.UnitSelection != "" },
			titleFor:    func(s State) string { return UnitQuestion(s.UnitSelection) },
		},
		func() Step {
			st := daysStep("generic-days", "¿Qué días puedes avanzar?")
			st.Subtitle = "Selecciona los días que planeas dedicarle."
			return st
		}(),
		minutesStep,
		summaryStep,
	},
}

// ActiveSteps is the flow for category given s: the template minus every step whose condition fails.
// Unknown categories fall back to the generic template.
func ActiveSteps(category model.GoalType, s State) []Step {
	tpl, ok := templates[category]
	if !ok {
		tpl = templates[model.GoalTypeGeneric]
	}
	steps := make([]Step, 0, len(tpl))
	for _, st := range tpl {
		if st.condition != nil && !st.condition(s) {
			continue
		}
		if st.titleFor != nil {
			st.Title = st.titleFor(s)
		}
		steps = append(steps, st)
	}
	return steps
}

// UnitQuestion phrases the target question for a measuring unit.
func UnitQuestion(unit string) string {
	switch strings.ToLower(unit) {
	case "horas":
		return "¿Cuántas horas en total?"
	case unitPages:
		return "¿Cuántas páginas en total?"
	case "sesiones":
		return "¿Cuántas sesiones en total?"
	case unitKm:
		return "¿Cuántos km en total?"
	}
	return "¿Cuánto quieres completar?"
}

// IsStepValid reports whether the answer s holds for st allows moving on.
func IsStepValid(st Step, s State) bool {
	if !st.Required {
		return true
	}
	switch st.InputType {
	case InputText:
		return strings.TrimSpace(s.text(st.Key)) != ""
	case InputNumber:
		return s.number(st.Key) > 0
	case InputChips:
		if isNumericKey(st.Key) {
			return s.number(st.Key) > 0
		}
		return s.text(st.Key) != ""
	case InputDays:
		return len(s.DaysPerWeek) > 0
	}
	return true
}

func isNumericKey(key string) bool {
	switch key {
	case KeyDeadlineDays, KeyDaysPerWeekCount, KeyMinutesPerSession, KeyPageCount, KeyTargetValue:
		return true
	}
	return false
}

func (s State) text(key string) string {
	switch key {
	case KeyIntentText:
		return s.IntentText
	case KeyTitle:
		return s.Title
	case KeyBookTitle:
		return s.BookTitle
	case KeyTopicTitle:
		return s.TopicTitle
	case KeyHabitTitle:
		return s.HabitTitle
	case KeyHabitFrequency:
		return s.HabitFrequency
	case KeyPreferredTime:
		return s.PreferredTime
	case KeyPaceMode:
		return string(s.PaceMode)
	case KeyUnitSelection:
		return s.UnitSelection
	}
	return ""
}

func (s State) number(key string) float64 {
	switch key {
	case KeyDeadlineDays:
		return float64(s.DeadlineDays)
	case KeyDaysPerWeekCount:
		return float64(s.DaysPerWeekCount)
	case KeyMinutesPerSession:
		return float64(s.MinutesPerSession)
	case KeyPageCount:
		return float64(s.PageCount)
	case KeyTargetValue:
		return s.TargetValue
	}
	return 0
}
