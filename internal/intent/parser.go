package intent

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"pacekeeper/internal/model"
)

const (
	FrequencyDaily  = "daily"
	FrequencyTimes  = "times"
	FrequencyThree  = "three"
	FrequencyCustom = "custom"
)

var (
	daysRe         = regexp.MustCompile(`(\d+)\s*(?:dias?|days?)`)
	perWeekSuffix  = regexp.MustCompile(`^\s*(?:por|a la|a|per)\s*(?:semana|week)`)
	hoursRe        = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:horas?|hours?)`)
	minutesRe      = regexp.MustCompile(`(\d+)\s*min`)
	timesPerWeekRe = regexp.MustCompile(`(\d+)\s*(?:veces|times)\s*(?:por|a la|a|per)\s*(?:semana|week)`)
	daysPerWeekRe  = regexp.MustCompile(`(\d+)\s*(?:dias?|days?)\s*(?:por|a la|a|per)\s*(?:semana|week)`)

	// bookTitleRe stops at the first schedule phrase: "en 15 días", "3 días por semana", "30 min".
	bookTitleRe  = regexp.MustCompile(`(?i)(?:leer|terminar|read|finish)\s+(.+?)(?:\s+(?:(?:en|in)\s+)?\d+(?:[.,]\d+)?\s*(?:d[ií]as?|days?|min|horas?|hours?|veces|times)|\s*$)`)
	topicTitleRe = regexp.MustCompile(`(?i)(?:estudiar|study)\s+(.+?)(?:\s+\d+|$)`)
	habitTitleRe = regexp.MustCompile(`(?i)(?:hábito|habito|hacer|mantener|habit|keep)\s+(.+?)(?:\s+(?:cada|every)|\s*$)`)
)

var dailyMentions = []string{"cada dia", "todos los dias", "diario", "diaria", "diarias", "every day", "daily"}

// weekOrder is Monday first, Sunday last.
var weekOrder = []int{1, 2, 3, 4, 5, 6, 0}

// Parsed holds the hints extracted from free text. Zero values mean "not mentioned".
type Parsed struct {
	Category          model.GoalType `json:"category"`
	BookTitle         string         `json:"bookTitle,omitempty"`
	TopicTitle        string         `json:"topicTitle,omitempty"`
	HabitTitle        string         `json:"habitTitle,omitempty"`
	MinutesPerSession int            `json:"minutesPerSession"`
	DaysPerWeek       []int          `json:"daysPerWeek"`
	DaysPerWeekCount  int            `json:"daysPerWeekCount"`
	HabitFrequency    string         `json:"habitFrequency,omitempty"`
	PaceMode          model.PaceMode `json:"paceMode,omitempty"`
	DeadlineDays      int            `json:"deadlineDays"`
}

// BuildDaysFromCount takes the first n weekdays starting on Monday.
func BuildDaysFromCount(n int) []int {
	n = min(max(n, 0), len(weekOrder))
	return append([]int{}, weekOrder[:n]...)
}

// Parse extracts category and schedule hints. Anything it cannot read stays zero.
func Parse(text string) Parsed {
	folded := Fold(text)
	p := Parsed{
		Category:    Classify(text),
		DaysPerWeek: []int{},
	}

	hours := firstNumber(hoursRe, folded)
	if m := firstNumber(minutesRe, folded); m > 0 {
		p.MinutesPerSession = int(m)
	} else if hours > 0 {
		p.MinutesPerSession = int(math.Round(hours * 60))
	}

	timesPerWeek := int(firstNumber(timesPerWeekRe, folded))
	daysPerWeek := int(firstNumber(daysPerWeekRe, folded))
	switch {
	case mentionsDaily(folded):
		p.DaysPerWeek = BuildDaysFromCount(7)
		p.DaysPerWeekCount = 7
		p.HabitFrequency = FrequencyDaily
	case timesPerWeek > 0:
		p.DaysPerWeekCount = min(timesPerWeek, 7)
		p.DaysPerWeek = BuildDaysFromCount(timesPerWeek)
		p.HabitFrequency = FrequencyTimes
	case daysPerWeek > 0:
		p.DaysPerWeekCount = min(daysPerWeek, 7)
		p.DaysPerWeek = BuildDaysFromCount(daysPerWeek)
	}

	if d := deadlineDays(folded); d > 0 {
		p.PaceMode = model.PaceModeDeadline
		p.DeadlineDays = d
	}

	switch p.Category {
	case model.GoalTypeReading:
		p.BookTitle = firstGroup(bookTitleRe, text)
	case model.GoalTypeStudy:
		p.TopicTitle = firstGroup(topicTitleRe, text)
	case model.GoalTypeHabit:
		p.HabitTitle = firstGroup(habitTitleRe, text)
	}

	return p
}

// deadlineDays finds "<N> días" that is not part of "<N> días por semana".
func deadlineDays(folded string) int {
	for _, m := range daysRe.FindAllStringSubmatchIndex(folded, -1) {
		if perWeekSuffix.MatchString(folded[m[1]:]) {
			continue
		}
		n, err := strconv.Atoi(folded[m[2]:m[3]])
		if err == nil && n > 0 {
			return n
		}
	}
	return 0
}

func mentionsDaily(folded string) bool {
	for _, k := range dailyMentions {
		if strings.Contains(folded, k) {
			return true
		}
	}
	return false
}

func firstNumber(re *regexp.Regexp, s string) float64 {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func firstGroup(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}
