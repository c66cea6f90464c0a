package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"runtime"
	"sync"
	"testing"
	"time"

	"pacekeeper/internal/goal"
	"pacekeeper/internal/model"
	"pacekeeper/internal/schedule"
	"pacekeeper/internal/session"
	"pacekeeper/internal/suggest"
	"pacekeeper/internal/tracker"
	repo "pacekeeper/internal/tracker/repository"
	"pacekeeper/internal/tracker/repository/memory"
	"pacekeeper/internal/tracker/usecase"
	"pacekeeper/internal/wizard"
	"pacekeeper/pkg/datemath"
	"pacekeeper/pkg/gcalendar"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockSuggester struct {
	sg *suggest.Suggestion
}

func (m *mockSuggester) Suggest(ctx context.Context, intentText string) (*suggest.Suggestion, error) {
	return m.sg, nil
}

type mockCalendar struct{}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	return &gcalendar.Event{ID: "ev-1", HtmlLink: "http://cal.link"}, nil
}

type failingRepo struct{}

func (failingRepo) GetValue(context.Context, string) (string, error) { return "", repo.ErrFailedToGet }
func (failingRepo) SetValues(context.Context, repo.SetValuesOptions) error {
	return repo.ErrFailedToSet
}
func (failingRepo) ListKeys(context.Context, repo.ListKeysOptions) ([]string, error) {
	return nil, repo.ErrFailedToList
}

// interleaveRepo flags a SetValues that lands between the first and last key of a snapshot read.
type interleaveRepo struct {
	repo.Repository
	mu      sync.Mutex
	reading int
	torn    bool
}

func (r *interleaveRepo) GetValue(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	switch key {
	case repo.KeyGoals:
		r.reading++
	case repo.KeyCurrentGoalID:
		r.reading--
	}
	r.mu.Unlock()
	runtime.Gosched()
	return r.Repository.GetValue(ctx, key)
}

func (r *interleaveRepo) SetValues(ctx context.Context, opt repo.SetValuesOptions) error {
	r.mu.Lock()
	if r.reading > 0 {
		r.torn = true
	}
	r.mu.Unlock()
	return r.Repository.SetValues(ctx, opt)
}

// Tuesday 2025-09-02.
var now = time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, r repo.Repository, opt usecase.Options) tracker.UseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	opt.Dates = dates
	opt.Now = func() time.Time { return now }
	return usecase.New(r, &mockLogger{}, opt)
}

func storedSessions(t *testing.T, r repo.Repository) map[string][]map[string]any {
	t.Helper()
	raw, _ := r.GetValue(context.Background(), repo.KeySessions)
	var out map[string][]map[string]any
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		t.Fatalf("sessions not JSON: %v (%q)", err, raw)
	}
	return out
}

func TestDashboard_EmptyStoreUsesDefaultGoal(t *testing.T) {
	uc := newUseCase(t, memory.New(), usecase.Options{})

	out, err := uc.Dashboard(context.Background(), tracker.DashboardInput{})
	if err != nil {
		t.Fatalf("Dashboard: %v", err)
	}
	if out.Goal.ID != goal.DefaultID {
		t.Errorf("goal = %q, want default", out.Goal.ID)
	}
	if len(out.Scenarios) != 3 {
		t.Errorf("scenarios = %d", len(out.Scenarios))
	}
	if !out.Today.IsWorkDay {
		t.Error("Tuesday should be a work day on the default plan")
	}

	if _, err := uc.Dashboard(context.Background(), tracker.DashboardInput{GoalID: "nope"}); !errors.Is(err, tracker.ErrGoalNotFound) {
		t.Errorf("unknown goal: err = %v", err)
	}
}

func TestLoad_ToleratesMalformedData(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		wantGoal  string
		wantCount int
	}{
		{
			name:     "broken goals json",
			values:   map[string]string{repo.KeyGoals: "{oops", repo.KeySessions: "[1,2"},
			wantGoal: goal.DefaultID,
		},
		{
			name: "flat session list belongs to current goal",
			values: map[string]string{
				repo.KeyGoals:         `[{"id":"a","title":"A"},{"id":"b","title":"B"}]`,
				repo.KeyCurrentGoalID: "b",
				repo.KeySessions:      `[{"id":"s1","date":"2025-09-01","minutes":30}]`,
			},
			wantGoal:  "b",
			wantCount: 1,
		},
		{
			name: "unknown current id falls back to first goal",
			values: map[string]string{
				repo.KeyGoals:         `[{"id":"a","title":"A"}]`,
				repo.KeyCurrentGoalID: "ghost",
				repo.KeySessions:      `{"a":[{"date":"2025-09-01","minutes":20}],"b":"bad"}`,
			},
			wantGoal:  "a",
			wantCount: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			uc := newUseCase(t, memory.NewWithValues(tc.values), usecase.Options{})
			out, err := uc.Dashboard(context.Background(), tracker.DashboardInput{})
			if err != nil {
				t.Fatalf("Dashboard: %v", err)
			}
			if out.Goal.ID != tc.wantGoal || len(out.Sessions) != tc.wantCount {
				t.Errorf("goal %q with %d sessions, want %q with %d", out.Goal.ID, len(out.Sessions), tc.wantGoal, tc.wantCount)
			}
		})
	}
}

func TestLoad_RepositoryFailure(t *testing.T) {
	uc := newUseCase(t, failingRepo{}, usecase.Options{})
	if _, err := uc.ListGoals(context.Background()); !errors.Is(err, repo.ErrFailedToGet) {
		t.Errorf("err = %v", err)
	}
}

func TestLogSession(t *testing.T) {
	r := memory.NewWithValues(map[string]string{
		repo.KeyGoals: `[{"id":"novel","title":"Novela","mode":"units","targetValue":1000,
			"plan":{"daysPerWeek":[0,1,2,3,4,5,6],"minutesPerSession":60},"rate":{"valuePerHour":400}}]`,
		repo.KeySessions: `{"novel":[{"id":"old","date":"2025-09-01","minutes":60,"value":300}]}`,
	})
	uc := newUseCase(t, r, usecase.Options{})
	ctx := context.Background()

	t.Run("rejects bad hours", func(t *testing.T) {
		for _, h := range []string{"", "abc", "0", "-1"} {
			if _, err := uc.LogSession(ctx, tracker.LogSessionInput{GoalID: "novel", Hours: h}); !errors.Is(err, session.ErrInvalidHours) {
				t.Errorf("hours %q: err = %v", h, err)
			}
		}
	})

	t.Run("estimates from rate", func(t *testing.T) {
		out, err := uc.LogSession(ctx, tracker.LogSessionInput{GoalID: "novel", Hours: "1,5"})
		if err != nil {
			t.Fatalf("LogSession: %v", err)
		}
		if out.Session.Value == nil || *out.Session.Value != 600 || !out.Session.IsEstimated {
			t.Errorf("session = %+v", out.Session)
		}
		if out.Streak.Current != 2 || out.Goal.LongestStreak != 2 {
			t.Errorf("streak = %+v, longest stored %d", out.Streak, out.Goal.LongestStreak)
		}
	})

	t.Run("explicit value wins", func(t *testing.T) {
		out, err := uc.LogSession(ctx, tracker.LogSessionInput{GoalID: "novel", Hours: "1", Value: "250 palabras"})
		if err != nil {
			t.Fatalf("LogSession: %v", err)
		}
		if *out.Session.Value != 250 || out.Session.IsEstimated {
			t.Errorf("session = %+v", out.Session)
		}
	})

	list := storedSessions(t, r)["novel"]
	if len(list) != 3 || list[2]["id"] != "old" {
		t.Fatalf("stored sessions should be newest first with the old one last: %v", list)
	}

	dash, _ := uc.Dashboard(ctx, tracker.DashboardInput{GoalID: "novel"})
	if dash.Goal.LongestStreak != 2 {
		t.Errorf("longest streak not persisted: %d", dash.Goal.LongestStreak)
	}
}

func TestLogSession_Date(t *testing.T) {
	r := memory.New()
	uc := newUseCase(t, r, usecase.Options{})
	ctx := context.Background()

	tests := []struct {
		name    string
		date    string
		want    string
		wantErr error
	}{
		{name: "empty is today", date: "", want: "2025-09-02"},
		{name: "relative", date: "ayer", want: "2025-09-01"},
		{name: "iso", date: "2025-08-30", want: "2025-08-30"},
		{name: "future rejected", date: "mañana", wantErr: tracker.ErrFutureDate},
		{name: "unparseable", date: "pronto", wantErr: tracker.ErrInvalidDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.LogSession(ctx, tracker.LogSessionInput{Hours: "1", Date: tt.date})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LogSession: %v", err)
			}
			if out.Session.Date.String() != tt.want {
				t.Errorf("date = %s, want %s", out.Session.Date, tt.want)
			}
		})
	}

	out, err := uc.QuickAdd(ctx, tracker.QuickAddInput{Minutes: 10, Date: "hace poco"})
	if !errors.Is(err, tracker.ErrInvalidDate) {
		t.Errorf("QuickAdd bad date: %+v %v", out, err)
	}
}

func TestQuickAdd(t *testing.T) {
	r := memory.New()
	uc := newUseCase(t, r, usecase.Options{})

	if _, err := uc.QuickAdd(context.Background(), tracker.QuickAddInput{Minutes: 0}); !errors.Is(err, session.ErrInvalidMinutes) {
		t.Errorf("err = %v", err)
	}

	out, err := uc.QuickAdd(context.Background(), tracker.QuickAddInput{Minutes: 25})
	if err != nil {
		t.Fatalf("QuickAdd: %v", err)
	}
	if out.Session.Value != nil || out.Session.Minutes != 25 {
		t.Errorf("session = %+v", out.Session)
	}
	if got := storedSessions(t, r)[goal.DefaultID]; len(got) != 1 {
		t.Errorf("stored = %v", got)
	}
}

func TestSelectGoalAndToday(t *testing.T) {
	r := memory.NewWithValues(map[string]string{
		repo.KeyGoals: `[{"id":"a","title":"A","type":"reading","plan":{"daysPerWeek":[2],"minutesPerSession":30}},
			{"id":"b","title":"B","plan":{"daysPerWeek":[6],"minutesPerSession":45}}]`,
	})
	uc := newUseCase(t, r, usecase.Options{})
	ctx := context.Background()

	if _, err := uc.SelectGoal(ctx, tracker.SelectGoalInput{GoalID: "zzz"}); !errors.Is(err, tracker.ErrGoalNotFound) {
		t.Errorf("err = %v", err)
	}
	if _, err := uc.SelectGoal(ctx, tracker.SelectGoalInput{GoalID: "b"}); err != nil {
		t.Fatalf("SelectGoal: %v", err)
	}
	if id, _ := r.GetValue(ctx, repo.KeyCurrentGoalID); id != "b" {
		t.Errorf("current id = %q", id)
	}

	list, err := uc.ListGoals(ctx)
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if list.CurrentGoalID != "b" || !list.Goals[1].Selected || list.Goals[0].TypeLabel != "📖 Lectura" {
		t.Errorf("list = %+v", list)
	}

	today, err := uc.Today(ctx)
	if err != nil {
		t.Fatalf("Today: %v", err)
	}
	if len(today.Items) != 2 {
		t.Fatalf("items = %d", len(today.Items))
	}
	if !today.Items[0].IsWorkDay || today.Items[0].RemainingMinutes != 30 {
		t.Errorf("goal a today = %+v", today.Items[0])
	}
	if today.Items[1].IsWorkDay || today.Items[1].PlannedMinutes != 0 {
		t.Errorf("goal b today = %+v", today.Items[1])
	}
}

func TestPause(t *testing.T) {
	uc := newUseCase(t, memory.New(), usecase.Options{})
	ctx := context.Background()

	out, err := uc.SetPaused(ctx, tracker.SetPausedInput{Paused: true})
	if err != nil || !out.Goal.Paused {
		t.Fatalf("SetPaused: %+v %v", out.Goal, err)
	}

	bad := []struct {
		name    string
		input   tracker.AddPauseInput
		wantErr error
	}{
		{name: "end before start", input: tracker.AddPauseInput{Start: "2025-09-05", End: "2025-09-01"}, wantErr: tracker.ErrInvalidPause},
		{name: "missing end", input: tracker.AddPauseInput{Start: "hoy"}, wantErr: tracker.ErrInvalidPause},
		{name: "unparseable", input: tracker.AddPauseInput{Start: "hoy", End: "algún día"}, wantErr: tracker.ErrInvalidDate},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.AddPause(ctx, tt.input); !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if _, err := uc.AddPause(ctx, tracker.AddPauseInput{Start: "2025-08-25", End: "2025-08-29"}); err != nil {
		t.Fatalf("AddPause: %v", err)
	}
	if _, err := uc.AddPause(ctx, tracker.AddPauseInput{Start: "hoy", End: "en 3 dias"}); err != nil {
		t.Fatalf("AddPause relative: %v", err)
	}
	dash, _ := uc.Dashboard(ctx, tracker.DashboardInput{})
	if len(dash.Goal.Pauses) != 2 || !dash.Goal.Paused {
		t.Fatalf("stored goal = %+v", dash.Goal)
	}
	want := model.PauseWindow{Start: datemath.MustParseDate("2025-09-02"), End: datemath.MustParseDate("2025-09-05")}
	if got := dash.Goal.Pauses[1]; !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
		t.Errorf("relative pause = %+v, want %+v", got, want)
	}
}

func TestReadsDoNotInterleaveWithWrites(t *testing.T) {
	r := &interleaveRepo{Repository: memory.New()}
	uc := newUseCase(t, r, usecase.Options{})
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := uc.QuickAdd(ctx, tracker.QuickAddInput{Minutes: 5}); err != nil {
				t.Errorf("QuickAdd: %v", err)
				return
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			if _, err := uc.Dashboard(ctx, tracker.DashboardInput{}); err != nil {
				t.Errorf("Dashboard: %v", err)
				return
			}
			if _, err := uc.ListGoals(ctx); err != nil {
				t.Errorf("ListGoals: %v", err)
				return
			}
			if _, err := uc.Today(ctx); err != nil {
				t.Errorf("Today: %v", err)
				return
			}
		}
	}()
	wg.Wait()

	if r.torn {
		t.Error("a save landed between the reads of one snapshot")
	}
	if got := storedSessions(t, r)[goal.DefaultID]; len(got) != 200 {
		t.Errorf("stored sessions = %d, want 200", len(got))
	}
}

func TestWizard_CreateFlow(t *testing.T) {
	r := memory.New()
	uc := newUseCase(t, r, usecase.Options{})
	ctx := context.Background()

	flow, err := uc.StartWizard(ctx, tracker.StartWizardInput{Mode: wizard.ModeCreate, IntentText: "Quiero leer La Peste en 15 días"})
	if err != nil {
		t.Fatalf("StartWizard: %v", err)
	}
	if flow.Step == nil || flow.Step.ID != "reading-days" {
		t.Fatalf("first step = %+v", flow.Step)
	}

	for !flow.IsLast {
		if flow, err = uc.MoveWizard(ctx, tracker.MoveWizardInput{FlowID: flow.ID, Direction: tracker.DirectionNext}); err != nil {
			t.Fatalf("MoveWizard: %v", err)
		}
	}

	done, err := uc.FinishWizard(ctx, flow.ID)
	if err != nil {
		t.Fatalf("FinishWizard: %v", err)
	}
	if !done.Created || done.Goal.Title != "Leer: La Peste" || done.Goal.PaceMode != model.PaceModeDeadline {
		t.Errorf("goal = %+v", done.Goal)
	}

	list, _ := uc.ListGoals(ctx)
	if len(list.Goals) != 2 || list.CurrentGoalID != done.Goal.ID {
		t.Errorf("goals after finish = %d, current %q", len(list.Goals), list.CurrentGoalID)
	}
	if _, err := uc.GetWizard(ctx, flow.ID); !errors.Is(err, tracker.ErrWizardNotFound) {
		t.Errorf("flow should be closed after finish: %v", err)
	}
}

func TestWizard_InvalidStepBlocksNext(t *testing.T) {
	uc := newUseCase(t, memory.New(), usecase.Options{})
	ctx := context.Background()

	flow, err := uc.StartWizard(ctx, tracker.StartWizardInput{Mode: wizard.ModeCreate})
	if err != nil {
		t.Fatalf("StartWizard: %v", err)
	}
	if _, err := uc.MoveWizard(ctx, tracker.MoveWizardInput{FlowID: flow.ID, Direction: tracker.DirectionNext}); !errors.Is(err, wizard.ErrStepInvalid) {
		t.Errorf("next on empty intent: err = %v", err)
	}
	if _, err := uc.MoveWizard(ctx, tracker.MoveWizardInput{FlowID: flow.ID, Direction: "sideways"}); !errors.Is(err, tracker.ErrInvalidDirection) {
		t.Errorf("bad direction: err = %v", err)
	}
	if _, err := uc.FinishWizard(ctx, flow.ID); !errors.Is(err, wizard.ErrStepInvalid) {
		t.Errorf("finish on empty intent: err = %v", err)
	}
	if _, err := uc.AnswerWizard(ctx, tracker.AnswerWizardInput{FlowID: flow.ID, Field: "nope", Value: 1}); !errors.Is(err, wizard.ErrUnknownField) {
		t.Errorf("unknown field: err = %v", err)
	}
}

func TestWizard_CancelPersistsNothing(t *testing.T) {
	r := memory.New()
	uc := newUseCase(t, r, usecase.Options{})
	ctx := context.Background()

	flow, _ := uc.StartWizard(ctx, tracker.StartWizardInput{Mode: wizard.ModeCreate, IntentText: "Correr 10 km"})
	if _, err := uc.AnswerWizard(ctx, tracker.AnswerWizardInput{FlowID: flow.ID, Field: wizard.KeyTitle, Value: "Correr"}); err != nil {
		t.Fatalf("AnswerWizard: %v", err)
	}
	if err := uc.CancelWizard(ctx, flow.ID); err != nil {
		t.Fatalf("CancelWizard: %v", err)
	}
	if err := uc.CancelWizard(ctx, flow.ID); !errors.Is(err, tracker.ErrWizardNotFound) {
		t.Errorf("second cancel: err = %v", err)
	}

	keys, _ := r.ListKeys(ctx, repo.ListKeysOptions{Prefix: repo.KeyPrefix})
	if len(keys) != 0 {
		t.Errorf("cancel wrote keys: %v", keys)
	}
}

func TestWizard_EditFlow(t *testing.T) {
	r := memory.NewWithValues(map[string]string{
		repo.KeyGoals: `[{"id":"g1","title":"Estudiar: Microeconomía","type":"study","mode":"time","targetValue":20,
			"startDate":"2025-08-01","plan":{"daysPerWeek":[1,3],"minutesPerSession":45}}]`,
	})
	uc := newUseCase(t, r, usecase.Options{})
	ctx := context.Background()

	if _, err := uc.StartWizard(ctx, tracker.StartWizardInput{Mode: wizard.ModeEdit, GoalID: "missing"}); !errors.Is(err, tracker.ErrGoalNotFound) {
		t.Errorf("err = %v", err)
	}

	flow, err := uc.StartWizard(ctx, tracker.StartWizardInput{Mode: wizard.ModeEdit, GoalID: "g1"})
	if err != nil {
		t.Fatalf("StartWizard: %v", err)
	}
	if flow.State.TopicTitle != "Microeconomía" {
		t.Errorf("topic = %q", flow.State.TopicTitle)
	}
	if _, err := uc.AnswerWizard(ctx, tracker.AnswerWizardInput{FlowID: flow.ID, Field: wizard.KeyMinutesPerSession, Value: "90"}); err != nil {
		t.Fatalf("AnswerWizard: %v", err)
	}
	for !flow.IsLast {
		if flow, err = uc.MoveWizard(ctx, tracker.MoveWizardInput{FlowID: flow.ID, Direction: tracker.DirectionNext}); err != nil {
			t.Fatalf("MoveWizard: %v", err)
		}
	}

	done, err := uc.FinishWizard(ctx, flow.ID)
	if err != nil {
		t.Fatalf("FinishWizard: %v", err)
	}
	if done.Created || done.Goal.ID != "g1" || done.Goal.Plan.MinutesPerSession != 90 {
		t.Errorf("goal = %+v", done.Goal)
	}
	if done.Goal.StartDate.String() != "2025-08-01" {
		t.Errorf("start date changed: %s", done.Goal.StartDate)
	}
}

func TestWizard_SuggestionArrivesAndApplies(t *testing.T) {
	sg := &suggest.Suggestion{Title: "Leer: Dune", PaceMode: model.PaceModePace, MinutesPerSession: 30, DaysPerWeek: []int{1, 3}}
	uc := newUseCase(t, memory.New(), usecase.Options{Suggester: &mockSuggester{sg: sg}})
	ctx := context.Background()

	flow, err := uc.StartWizard(ctx, tracker.StartWizardInput{Mode: wizard.ModeCreate, IntentText: "Quiero leer algo"})
	if err != nil {
		t.Fatalf("StartWizard: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for flow.Suggestion == nil {
		if time.Now().After(deadline) {
			t.Fatal("suggestion never arrived")
		}
		time.Sleep(10 * time.Millisecond)
		flow, _ = uc.GetWizard(ctx, flow.ID)
	}

	flow, err = uc.ApplySuggestion(ctx, flow.ID)
	if err != nil {
		t.Fatalf("ApplySuggestion: %v", err)
	}
	s := flow.State
	if s.BookTitle != "Dune" || s.PaceMode != model.PaceModePace || s.MinutesPerSession != 30 || len(s.DaysPerWeek) != 2 {
		t.Errorf("state after apply = %+v", s)
	}
}

func TestWizard_NoSuggestion(t *testing.T) {
	uc := newUseCase(t, memory.New(), usecase.Options{})
	flow, _ := uc.StartWizard(context.Background(), tracker.StartWizardInput{IntentText: "Correr"})
	if _, err := uc.ApplySuggestion(context.Background(), flow.ID); !errors.Is(err, tracker.ErrNoSuggestion) {
		t.Errorf("err = %v", err)
	}
}

func TestExportCalendar(t *testing.T) {
	ctx := context.Background()

	uc := newUseCase(t, memory.New(), usecase.Options{})
	if _, err := uc.ExportCalendar(ctx, tracker.ExportCalendarInput{}); !errors.Is(err, schedule.ErrDisabled) {
		t.Errorf("err = %v", err)
	}

	exp := schedule.New(&mockCalendar{}, schedule.Config{Location: time.UTC}, &mockLogger{})
	uc = newUseCase(t, memory.New(), usecase.Options{Exporter: exp})
	out, err := uc.ExportCalendar(ctx, tracker.ExportCalendarInput{})
	if err != nil {
		t.Fatalf("ExportCalendar: %v", err)
	}
	if out.Export.EventID != "ev-1" || out.Export.FirstSession.String() != "2025-09-02" {
		t.Errorf("export = %+v", out.Export)
	}
}
