package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var inDurationRe = regexp.MustCompile(`^(?:in|en) (\d+) (day|days|week|weeks|month|months|dia|dias|semana|semanas|mes|meses)$`)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// Parser resolves calendar days relative to "now" in a fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// Today returns the calendar day of now in the parser's location.
func (p *Parser) Today(now time.Time) Date {
	return DateOf(now, p.location)
}

// Parse resolves an ISO date or a relative phrase against base.
// Empty input means today.
func (p *Parser) Parse(relative string, base time.Time) (Date, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))
	today := p.Today(base)

	switch relative {
	case "", "today", "hoy":
		return today, nil
	case "tomorrow", "mañana", "manana":
		return today.AddDays(1), nil
	case "yesterday", "ayer":
		return today.AddDays(-1), nil
	}

	if d, err := ParseDate(relative); err == nil {
		return d, nil
	}

	if strings.HasPrefix(relative, "in ") || strings.HasPrefix(relative, "en ") {
		return p.parseInDuration(relative, today)
	}

	if strings.HasPrefix(relative, "next ") || strings.HasPrefix(relative, "last ") {
		return p.parseWeekday(relative, today)
	}

	return Date{}, fmt.Errorf("unrecognized date %q", relative)
}

// parseInDuration handles "in 3 days", "en 2 semanas", "in 1 month".
func (p *Parser) parseInDuration(relative string, today Date) (Date, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return Date{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"), strings.HasPrefix(unit, "dia"):
		return today.AddDays(amount), nil
	case strings.HasPrefix(unit, "week"), strings.HasPrefix(unit, "semana"):
		return today.AddDays(amount * 7), nil
	default:
		return Date{t: today.t.AddDate(0, amount, 0)}, nil
	}
}

// parseWeekday handles "next friday" (strictly after today) and "last monday" (strictly before).
func (p *Parser) parseWeekday(relative string, today Date) (Date, error) {
	direction, dayName, _ := strings.Cut(relative, " ")
	target, ok := weekdayNames[dayName]
	if !ok {
		return Date{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	if direction == "next" {
		delta := int(target - today.Weekday())
		if delta <= 0 {
			delta += 7
		}
		return today.AddDays(delta), nil
	}

	delta := int(today.Weekday() - target)
	if delta <= 0 {
		delta += 7
	}
	return today.AddDays(-delta), nil
}
