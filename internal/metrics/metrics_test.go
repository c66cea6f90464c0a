package metrics_test

import (
	"testing"

	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

func day(s string) datemath.Date { return datemath.MustParseDate(s) }

func val(f float64) *float64 { return &f }

func unitGoal() model.Goal {
	return model.Goal{
		ID:          "g1",
		Mode:        model.MetricModeUnits,
		TargetValue: 300,
		Plan:        model.Plan{DaysPerWeek: []int{1, 2, 3, 4, 5}, MinutesPerSession: 30},
		Rate:        model.Rate{ValuePerHour: 20},
	}
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		goal     model.Goal
		sessions []model.Session
		want     metrics.Stats
	}{
		{
			name: "no sessions",
			goal: unitGoal(),
			want: metrics.Stats{AverageRate: 20},
		},
		{
			name: "explicit and estimated",
			goal: unitGoal(),
			sessions: []model.Session{
				{Minutes: 60, Value: val(30)},
				{Minutes: 90}, // floor(1.5*20) = 30
			},
			want: metrics.Stats{TotalUnits: 60, TotalMinutes: 150, Percent: 20, AverageRate: 24},
		},
		{
			name: "no rate and no value counts minutes only",
			goal: func() model.Goal { g := unitGoal(); g.Rate.ValuePerHour = 0; return g }(),
			sessions: []model.Session{
				{Minutes: 45},
			},
			want: metrics.Stats{TotalUnits: 0, TotalMinutes: 45, Percent: 0, AverageRate: 0},
		},
		{
			name: "time mode reports configured rate",
			goal: func() model.Goal { g := unitGoal(); g.Mode = model.MetricModeTime; g.TargetValue = 10; return g }(),
			sessions: []model.Session{
				{Minutes: 120, Value: val(999)},
			},
			want: metrics.Stats{TotalUnits: 2, TotalMinutes: 120, Percent: 20, AverageRate: 20},
		},
		{
			name: "percent clamps at 100",
			goal: func() model.Goal { g := unitGoal(); g.TargetValue = 10; return g }(),
			sessions: []model.Session{
				{Minutes: 60, Value: val(50)},
			},
			want: metrics.Stats{TotalUnits: 50, TotalMinutes: 60, Percent: 100, AverageRate: 50},
		},
		{
			name: "zero target yields zero percent",
			goal: func() model.Goal { g := unitGoal(); g.TargetValue = 0; return g }(),
			sessions: []model.Session{
				{Minutes: 60, Value: val(50)},
			},
			want: metrics.Stats{TotalUnits: 50, TotalMinutes: 60, Percent: 0, AverageRate: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.ComputeStats(tt.goal, tt.sessions); got != tt.want {
				t.Errorf("ComputeStats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeStats_PercentMonotonic(t *testing.T) {
	g := unitGoal()
	var sessions []model.Session
	last := 0
	for i := 0; i < 40; i++ {
		sessions = append(sessions, model.Session{Minutes: 30, Value: val(12)})
		p := metrics.ComputeStats(g, sessions).Percent
		if p < last || p < 0 || p > 100 {
			t.Fatalf("percent went from %d to %d after session %d", last, p, i)
		}
		last = p
	}
}

func TestComputeWeeklyStats(t *testing.T) {
	today := day("2025-03-12") // Wednesday
	g := unitGoal()
	sessions := []model.Session{
		{Date: day("2025-03-11"), Minutes: 45}, // Tuesday
		{Date: day("2025-03-10"), Minutes: 30}, // Monday
		{Date: day("2025-03-07"), Minutes: 60}, // last Friday
	}

	got := metrics.ComputeWeeklyStats(g, sessions, today)
	if got.CompletedSessions != 2 || got.TotalMinutes != 75 {
		t.Errorf("completed=%d minutes=%v, want 2 and 75", got.CompletedSessions, got.TotalMinutes)
	}
	if got.PlannedSessions != 5 {
		t.Errorf("planned = %d, want 5", got.PlannedSessions)
	}
	if got.WeekStart.String() != "2025-03-10" {
		t.Errorf("weekStart = %s", got.WeekStart)
	}
}

func TestComputeWeeklyStats_LaterThisWeek(t *testing.T) {
	today := day("2026-10-14") // Wednesday
	sessions := []model.Session{
		{Date: day("2026-10-15"), Minutes: 30}, // Thursday, stamped ahead of local today
		{Date: day("2026-10-12"), Minutes: 45}, // Monday
		{Date: day("2026-10-19"), Minutes: 60}, // next Monday
	}

	got := metrics.ComputeWeeklyStats(unitGoal(), sessions, today)
	if got.CompletedSessions != 2 || got.TotalMinutes != 75 {
		t.Errorf("completed=%d minutes=%v, want 2 and 75", got.CompletedSessions, got.TotalMinutes)
	}
	if got.WeekStart.String() != "2026-10-12" {
		t.Errorf("weekStart = %s", got.WeekStart)
	}
}

func TestComputeWeeklyStats_SundayBelongsToPreviousMonday(t *testing.T) {
	today := day("2025-03-16") // Sunday
	sessions := []model.Session{{Date: day("2025-03-10"), Minutes: 10}}
	got := metrics.ComputeWeeklyStats(unitGoal(), sessions, today)
	if got.CompletedSessions != 1 {
		t.Errorf("completed = %d, want 1", got.CompletedSessions)
	}
}

func TestComputeStreak(t *testing.T) {
	today := day("2025-03-11") // Tuesday

	tests := []struct {
		name     string
		goal     func() model.Goal
		sessions []string
		want     metrics.Streak
	}{
		{
			name:     "weekday plan skips weekend",
			goal:     unitGoal,
			sessions: []string{"2025-03-11", "2025-03-10"},
			want:     metrics.Streak{Current: 2, Longest: 2},
		},
		{
			name:     "crosses weekend when Friday logged",
			goal:     unitGoal,
			sessions: []string{"2025-03-11", "2025-03-10", "2025-03-07", "2025-03-06"},
			want:     metrics.Streak{Current: 4, Longest: 4},
		},
		{
			name:     "no session today breaks at offset zero",
			goal:     unitGoal,
			sessions: []string{"2025-03-10", "2025-03-07"},
			want:     metrics.Streak{Current: 0, Longest: 0},
		},
		{
			name: "stored longest kept",
			goal: func() model.Goal {
				g := unitGoal()
				g.LongestStreak = 9
				return g
			},
			sessions: []string{"2025-03-11"},
			want:     metrics.Streak{Current: 1, Longest: 9},
		},
		{
			name: "pause window skipped",
			goal: func() model.Goal {
				g := unitGoal()
				g.Pauses = []model.PauseWindow{{Start: day("2025-03-05"), End: day("2025-03-07")}}
				return g
			},
			sessions: []string{"2025-03-11", "2025-03-10", "2025-03-04"},
			want:     metrics.Streak{Current: 3, Longest: 3},
		},
		{
			name: "empty plan never counts",
			goal: func() model.Goal {
				g := unitGoal()
				g.Plan.DaysPerWeek = nil
				return g
			},
			sessions: []string{"2025-03-11"},
			want:     metrics.Streak{},
		},
		{
			name: "paused goal survives empty days",
			goal: func() model.Goal {
				g := unitGoal()
				g.Paused = true
				return g
			},
			sessions: []string{"2025-03-10", "2025-03-04"},
			want:     metrics.Streak{Current: 2, Longest: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []model.Session
			for _, d := range tt.sessions {
				sessions = append(sessions, model.Session{Date: day(d), Minutes: 30})
			}
			if got := metrics.ComputeStreak(tt.goal(), sessions, today); got != tt.want {
				t.Errorf("ComputeStreak() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeProgress(t *testing.T) {
	tests := []struct {
		name     string
		goal     model.Goal
		sessions []model.Session
		want     int
	}{
		{
			name:     "unit target rounds",
			goal:     unitGoal(),
			sessions: []model.Session{{Minutes: 30, Value: val(2)}}, // 0.67%
			want:     1,
		},
		{
			name: "time target",
			goal: model.Goal{Mode: model.MetricModeTime, TargetValue: 10},
			sessions: []model.Session{
				{Minutes: 90},
			},
			want: 15,
		},
		{
			name: "time without target uses four week baseline",
			goal: model.Goal{Mode: model.MetricModeTime, Plan: model.Plan{DaysPerWeek: []int{1, 3}, MinutesPerSession: 30}},
			sessions: []model.Session{
				{Minutes: 60},
			},
			want: 25, // 60 / (30*2*4)
		},
		{
			name:     "units without target count sessions",
			goal:     model.Goal{Mode: model.MetricModeUnits},
			sessions: make([]model.Session, 3),
			want:     30,
		},
		{
			name:     "clamped",
			goal:     model.Goal{Mode: model.MetricModeUnits, TargetValue: 1},
			sessions: []model.Session{{Value: val(5)}},
			want:     100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.ComputeProgress(tt.goal, tt.sessions).Percent; got != tt.want {
				t.Errorf("Percent = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSummarizeToday(t *testing.T) {
	g := unitGoal() // 30 min, Mon-Fri

	tests := []struct {
		name     string
		today    string
		sessions []model.Session
		want     metrics.TodaySummary
	}{
		{
			name:  "day off",
			today: "2025-03-15", // Saturday
			want:  metrics.TodaySummary{SuggestionText: "Hoy es día libre para esta meta."},
		},
		{
			name:     "pending",
			today:    "2025-03-12",
			sessions: []model.Session{{Date: day("2025-03-12"), Minutes: 10}, {Date: day("2025-03-11"), Minutes: 30}},
			want: metrics.TodaySummary{
				IsWorkDay: true, PlannedMinutes: 30, CompletedMinutes: 10, RemainingMinutes: 20,
				SuggestionText: "Te faltan ~20 min para cumplir lo de hoy.",
			},
		},
		{
			name:     "done",
			today:    "2025-03-12",
			sessions: []model.Session{{Date: day("2025-03-12"), Minutes: 45}},
			want: metrics.TodaySummary{
				IsWorkDay: true, PlannedMinutes: 30, CompletedMinutes: 45,
				SuggestionText: "Meta diaria cumplida 🎉",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := metrics.SummarizeToday(g, tt.sessions, day(tt.today)); got != tt.want {
				t.Errorf("SummarizeToday() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestComputeSpeed(t *testing.T) {
	g := unitGoal()
	if got := metrics.ComputeSpeed(g, metrics.Stats{}); got.Label != metrics.SpeedConfigured || got.Value != 20 {
		t.Errorf("no minutes speed = %+v", got)
	}
	if got := metrics.ComputeSpeed(g, metrics.Stats{TotalMinutes: 60, AverageRate: 33}); got.Label != metrics.SpeedObserved || got.Value != 33 {
		t.Errorf("observed speed = %+v", got)
	}
	g.Mode = model.MetricModeTime
	if got := metrics.ComputeSpeed(g, metrics.Stats{TotalMinutes: 60}); got.Label != metrics.SpeedNotApplies {
		t.Errorf("time speed = %+v", got)
	}
}
