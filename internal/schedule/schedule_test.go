package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"pacekeeper/internal/model"
	"pacekeeper/internal/schedule"
	"pacekeeper/pkg/datemath"
	"pacekeeper/pkg/gcalendar"
	"pacekeeper/pkg/log"
)

type mockCalendar struct {
	fail bool
	got  gcalendar.CreateEventRequest
}

func (m *mockCalendar) CreateEvent(_ context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.got = req
	if m.fail {
		return nil, errors.New("cal error")
	}
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "http://cal.link"}, nil
}

func readingGoal() model.Goal {
	return model.Goal{
		ID:          "g1",
		Title:       "Leer: La Peste",
		Mode:        model.MetricModeUnits,
		UnitName:    "páginas",
		TargetValue: 320,
		Plan:        model.Plan{DaysPerWeek: []int{5, 1, 3}, MinutesPerSession: 45},
	}
}

func TestRRule(t *testing.T) {
	g := readingGoal()
	if got, want := schedule.RRule(g), "RRULE:FREQ=WEEKLY;BYDAY=MO,WE,FR"; got != want {
		t.Errorf("RRule = %q, want %q", got, want)
	}

	g.Plan.DaysPerWeek = []int{0, 6}
	g.DeadlineDate = datemath.MustParseDate("2025-10-01")
	if got, want := schedule.RRule(g), "RRULE:FREQ=WEEKLY;BYDAY=SA,SU;UNTIL=20251001"; got != want {
		t.Errorf("RRule = %q, want %q", got, want)
	}
}

func TestBuildRequest(t *testing.T) {
	loc := time.FixedZone("test", -6*3600)
	// 2025-09-02 is a Tuesday; the next plan day is Wednesday.
	today := datemath.MustParseDate("2025-09-02")

	req, first, err := schedule.BuildRequest(readingGoal(), today, schedule.Config{SessionStart: "18:30", Location: loc})
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}
	if first.String() != "2025-09-03" {
		t.Errorf("first session = %s", first)
	}
	wantStart := time.Date(2025, 9, 3, 18, 30, 0, 0, loc)
	if !req.StartTime.Equal(wantStart) || req.EndTime.Sub(req.StartTime) != 45*time.Minute {
		t.Errorf("start/end = %v / %v", req.StartTime, req.EndTime)
	}
	if req.Summary != "Leer: La Peste" || len(req.Recurrence) != 1 {
		t.Errorf("request = %+v", req)
	}
}

func TestBuildRequest_Errors(t *testing.T) {
	today := datemath.MustParseDate("2025-09-02")
	tests := []struct {
		name string
		mut  func(*model.Goal)
		cfg  schedule.Config
		want error
	}{
		{"no days", func(g *model.Goal) { g.Plan.DaysPerWeek = nil }, schedule.Config{}, schedule.ErrNoPlanDays},
		{"no minutes", func(g *model.Goal) { g.Plan.MinutesPerSession = 0 }, schedule.Config{}, schedule.ErrNoMinutes},
		{"bad clock", func(*model.Goal) {}, schedule.Config{SessionStart: "7pm"}, schedule.ErrSessionStart},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := readingGoal()
			tc.mut(&g)
			if _, _, err := schedule.BuildRequest(g, today, tc.cfg); !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestExporter(t *testing.T) {
	today := datemath.MustParseDate("2025-09-02")

	t.Run("disabled", func(t *testing.T) {
		e := schedule.New(nil, schedule.Config{}, log.NewNop())
		if _, err := e.Export(context.Background(), readingGoal(), today); !errors.Is(err, schedule.ErrDisabled) {
			t.Errorf("err = %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		cal := &mockCalendar{}
		e := schedule.New(cal, schedule.Config{CalendarID: "primary"}, log.NewNop())
		out, err := e.Export(context.Background(), readingGoal(), today)
		if err != nil {
			t.Fatalf("Export: %v", err)
		}
		if out.EventID != "ev-1" || out.Link != "http://cal.link" {
			t.Errorf("export = %+v", out)
		}
		if cal.got.CalendarID != "primary" {
			t.Errorf("calendar id = %q", cal.got.CalendarID)
		}
	})

	t.Run("calendar failure", func(t *testing.T) {
		e := schedule.New(&mockCalendar{fail: true}, schedule.Config{}, log.NewNop())
		if _, err := e.Export(context.Background(), readingGoal(), today); err == nil {
			t.Error("expected error")
		}
	})
}
