// Package schedule turns a goal plan into a weekly recurring calendar event.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
	"pacekeeper/pkg/gcalendar"
	"pacekeeper/pkg/log"
)

const DefaultSessionStart = "07:00"

var (
	ErrDisabled     = errors.New("calendar export is not configured")
	ErrNoPlanDays   = errors.New("goal plan has no days")
	ErrNoMinutes    = errors.New("goal plan has no session length")
	ErrSessionStart = errors.New("session start must be HH:MM")
)

var byDay = [...]string{"SU", "MO", "TU", "WE", "TH", "FR", "SA"}

// EventCreator is the slice of the calendar client the exporter needs.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config places the sessions in a calendar.
type Config struct {
	CalendarID   string
	SessionStart string // HH:MM in Location
	Location     *time.Location
}

// Export is the created series.
type Export struct {
	EventID      string        `json:"eventId"`
	Link         string        `json:"link"`
	FirstSession datemath.Date `json:"firstSession"`
	Recurrence   []string      `json:"recurrence"`
}

// Exporter writes goal plans to a calendar.
type Exporter struct {
	cal EventCreator
	cfg Config
	l   log.Logger
}

// New creates an Exporter. A nil cal yields an exporter that always returns ErrDisabled.
func New(cal EventCreator, cfg Config, l log.Logger) *Exporter {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.SessionStart == "" {
		cfg.SessionStart = DefaultSessionStart
	}
	return &Exporter{cal: cal, cfg: cfg, l: l}
}

// Enabled reports whether a calendar client is wired.
func (e *Exporter) Enabled() bool {
	return e != nil && e.cal != nil
}

// Export creates the recurring series for g starting on the first plan day on or after today.
func (e *Exporter) Export(ctx context.Context, g model.Goal, today datemath.Date) (Export, error) {
	if !e.Enabled() {
		return Export{}, ErrDisabled
	}

	req, first, err := BuildRequest(g, today, e.cfg)
	if err != nil {
		return Export{}, err
	}

	ev, err := e.cal.CreateEvent(ctx, req)
	if err != nil {
		e.l.Errorf(ctx, "schedule.Export CreateEvent: %v", err)
		return Export{}, err
	}
	e.l.Infof(ctx, "schedule.Export: goal=%s event=%s", g.ID, ev.ID)

	return Export{
		EventID:      ev.ID,
		Link:         ev.HtmlLink,
		FirstSession: first,
		Recurrence:   req.Recurrence,
	}, nil
}

// BuildRequest is the event Export would insert, plus the date of its first occurrence.
func BuildRequest(g model.Goal, today datemath.Date, cfg Config) (gcalendar.CreateEventRequest, datemath.Date, error) {
	if len(g.Plan.DaysPerWeek) == 0 {
		return gcalendar.CreateEventRequest{}, datemath.Date{}, ErrNoPlanDays
	}
	if g.Plan.MinutesPerSession <= 0 {
		return gcalendar.CreateEventRequest{}, datemath.Date{}, ErrNoMinutes
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	startClock := cfg.SessionStart
	if startClock == "" {
		startClock = DefaultSessionStart
	}
	clock, err := time.Parse("15:04", startClock)
	if err != nil {
		return gcalendar.CreateEventRequest{}, datemath.Date{}, ErrSessionStart
	}

	first := today
	for !g.IsPlanDay(first) {
		first = first.AddDays(1)
	}

	start := time.Date(first.Year(), first.Month(), first.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
	end := start.Add(time.Duration(g.Plan.MinutesPerSession * float64(time.Minute)))

	return gcalendar.CreateEventRequest{
		CalendarID:  cfg.CalendarID,
		Summary:     g.Title,
		Description: describe(g),
		StartTime:   start,
		EndTime:     end,
		Timezone:    loc.String(),
		Recurrence:  []string{RRule(g)},
	}, first, nil
}

// RRule is the weekly rule for the plan days, bounded by the deadline when there is one.
func RRule(g model.Goal) string {
	days := slices.Clone(g.Plan.DaysPerWeek)
	// Monday first.
	slices.SortFunc(days, func(a, b int) int { return (a+6)%7 - (b+6)%7 })

	codes := make([]string, 0, len(days))
	for _, d := range days {
		codes = append(codes, byDay[d%7])
	}

	rule := "RRULE:FREQ=WEEKLY;BYDAY=" + strings.Join(codes, ",")
	if g.HasDeadline() {
		rule += fmt.Sprintf(";UNTIL=%04d%02d%02d", g.DeadlineDate.Year(), int(g.DeadlineDate.Month()), g.DeadlineDate.Day())
	}
	return rule
}

func describe(g model.Goal) string {
	unit := g.UnitName
	if g.Mode == model.MetricModeTime {
		unit = "horas"
	}
	return fmt.Sprintf("Sesión de %g min. Meta: %g %s.", g.Plan.MinutesPerSession, g.TargetValue, unit)
}
