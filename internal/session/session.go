package session

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"

	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

var (
	ErrInvalidHours   = errors.New("Horas inválidas")
	ErrInvalidMinutes = errors.New("minutes must be positive")
)

// NewID returns a fresh session id.
func NewID() string {
	return uuid.NewString()
}

// Normalize coerces stored session records. Missing ids are generated, missing
// dates become today and unreadable minutes become 0.
func Normalize(raws []map[string]any, today datemath.Date) []model.Session {
	out := make([]model.Session, 0, len(raws))
	for _, raw := range raws {
		s := model.Session{
			ID:          cast.ToString(raw["id"]),
			Date:        today,
			IsEstimated: cast.ToBool(raw["isEstimated"]),
		}
		if s.ID == "" {
			s.ID = NewID()
		}
		if d, err := datemath.ParseDate(cast.ToString(raw["date"])); err == nil {
			s.Date = d
		}
		if m, err := cast.ToFloat64E(raw["minutes"]); err == nil && !math.IsNaN(m) && !math.IsInf(m, 0) && m > 0 {
			s.Minutes = m
		}
		s.Value = numericValue(raw["value"])
		out = append(out, s)
	}
	return out
}

// numericValue keeps only real numbers; strings and other shapes mean "no explicit value".
func numericValue(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ToRecords renders sessions in the stored shape.
func ToRecords(sessions []model.Session) []map[string]any {
	out := make([]map[string]any, len(sessions))
	for i, s := range sessions {
		var value any
		if s.Value != nil {
			value = *s.Value
		}
		out[i] = map[string]any{
			"id":          s.ID,
			"date":        s.Date.String(),
			"minutes":     s.Minutes,
			"value":       value,
			"isEstimated": s.IsEstimated,
		}
	}
	return out
}

// ParseHours validates user-entered hours. Anything that is not a positive number is rejected.
func ParseHours(input string) (float64, error) {
	hours, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(input), ",", ".", 1), 64)
	if err != nil || math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return 0, ErrInvalidHours
	}
	return hours, nil
}

// ParseValue reads an explicit unit count the way the log form does: a leading integer, or nothing.
func ParseValue(input string) (int, bool) {
	input = strings.TrimSpace(input)
	end := 0
	if end < len(input) && (input[end] == '-' || input[end] == '+') {
		end++
	}
	digits := end
	for end < len(input) && input[end] >= '0' && input[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(input[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// NewLogged builds the session for an hours entry. Unit goals store an explicit
// value when one is given, otherwise an estimate from the configured rate.
func NewLogged(g model.Goal, date datemath.Date, hours float64, explicit *int) (model.Session, error) {
	if math.IsNaN(hours) || math.IsInf(hours, 0) || hours <= 0 {
		return model.Session{}, ErrInvalidHours
	}

	s := model.Session{
		ID:      NewID(),
		Date:    date,
		Minutes: hours * 60,
	}

	if g.Mode == model.MetricModeTime {
		return s, nil
	}

	switch {
	case explicit != nil:
		v := float64(*explicit)
		s.Value = &v
	case g.Rate.ValuePerHour > 0:
		v := math.Floor(hours * g.Rate.ValuePerHour)
		s.Value = &v
		s.IsEstimated = true
	}
	return s, nil
}

// NewQuick builds a time-only session.
func NewQuick(date datemath.Date, minutes float64) (model.Session, error) {
	if math.IsNaN(minutes) || minutes <= 0 {
		return model.Session{}, ErrInvalidMinutes
	}
	return model.Session{ID: NewID(), Date: date, Minutes: minutes}, nil
}

// Prepend returns list with s at the front; the log is kept newest first.
func Prepend(list []model.Session, s model.Session) []model.Session {
	out := make([]model.Session, 0, len(list)+1)
	out = append(out, s)
	return append(out, list...)
}

// OnDate filters the sessions logged on d.
func OnDate(list []model.Session, d datemath.Date) []model.Session {
	var out []model.Session
	for _, s := range list {
		if s.Date.Equal(d) {
			out = append(out, s)
		}
	}
	return out
}
