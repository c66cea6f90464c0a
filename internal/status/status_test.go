package status_test

import (
	"testing"

	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/internal/status"
	"pacekeeper/pkg/datemath"
)

var today = datemath.MustParseDate("2025-03-12")

func deadlineGoal() model.Goal {
	return model.Goal{
		StartDate:    today.AddDays(-10),
		DeadlineDate: today.AddDays(10),
		Plan:         model.Plan{DaysPerWeek: []int{1, 2, 3, 4, 5}},
	}
}

func TestClassify_Deadline(t *testing.T) {
	tests := []struct {
		name      string
		percent   int
		want      status.Level
		wantLabel string
		wantEta   string
	}{
		{name: "on track", percent: 46, want: status.OnTrack, wantLabel: "En ruta", wantEta: "Terminas aprox el 22/03"},
		{name: "warning", percent: 40, want: status.Warning, wantLabel: "Un pequeño empujón"},
		{name: "behind", percent: 30, want: status.Behind, wantLabel: "Vamos a rescatar esta meta"},
		{name: "done", percent: 100, want: status.OnTrack, wantEta: "Meta cumplida 🎉"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := status.Classify(deadlineGoal(), metrics.Progress{Percent: tt.percent}, today, nil)
			if got.Status != tt.want {
				t.Errorf("status = %s, want %s", got.Status, tt.want)
			}
			if tt.wantLabel != "" && got.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", got.Label, tt.wantLabel)
			}
			if tt.wantEta != "" && got.EtaText != tt.wantEta {
				t.Errorf("etaText = %q, want %q", got.EtaText, tt.wantEta)
			}
			if got.ColorClass != "status-"+string(tt.want) {
				t.Errorf("colorClass = %q", got.ColorClass)
			}
		})
	}
}

func TestClassify_DeadlineBeforeStart(t *testing.T) {
	g := deadlineGoal()
	g.StartDate = today.AddDays(5) // not started yet: elapsed clamps to 0
	got := status.Classify(g, metrics.Progress{Percent: 0}, today, nil)
	if got.Status != status.OnTrack {
		t.Errorf("status = %s, want on-track", got.Status)
	}
}

func TestClassify_Pace(t *testing.T) {
	threeDays := model.Goal{Plan: model.Plan{DaysPerWeek: []int{1, 3, 5}}} // gap 2

	tests := []struct {
		name        string
		goal        model.Goal
		lastDaysAgo int
		noSession   bool
		want        status.Level
	}{
		{name: "no sessions", goal: threeDays, noSession: true, want: status.Warning},
		{name: "within gap", goal: threeDays, lastDaysAgo: 2, want: status.OnTrack},
		{name: "past gap", goal: threeDays, lastDaysAgo: 3, want: status.Warning},
		{name: "past double gap", goal: threeDays, lastDaysAgo: 5, want: status.Behind},
		{name: "empty plan uses weekly gap", goal: model.Goal{}, lastDaysAgo: 7, want: status.OnTrack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sessions []model.Session
			if !tt.noSession {
				sessions = []model.Session{
					{Date: today.AddDays(-tt.lastDaysAgo)},
					{Date: today.AddDays(-30)},
				}
			}
			got := status.Classify(tt.goal, metrics.Progress{}, today, sessions)
			if got.Status != tt.want {
				t.Errorf("status = %s, want %s", got.Status, tt.want)
			}
			if got.EtaText != "A tu ritmo" {
				t.Errorf("etaText = %q", got.EtaText)
			}
		})
	}
}

func TestClassifier_CustomThresholds(t *testing.T) {
	c := status.New(status.Thresholds{OnTrackSlack: 12})
	got := c.Classify(deadlineGoal(), metrics.Progress{Percent: 40}, today, nil)
	if got.Status != status.OnTrack {
		t.Errorf("status = %s, want on-track with 12 point slack", got.Status)
	}
}
