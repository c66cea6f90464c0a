package tracker

import (
	"pacekeeper/internal/eta"
	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/internal/schedule"
	"pacekeeper/internal/status"
	"pacekeeper/internal/suggest"
	"pacekeeper/internal/wizard"
	"pacekeeper/pkg/datemath"
)

// --- UseCase Inputs ---

// DashboardInput selects a goal; an empty GoalID means the current one.
type DashboardInput struct {
	GoalID string
}

type SelectGoalInput struct {
	GoalID string
}

type SetPausedInput struct {
	GoalID string
	Paused bool
}

// AddPauseInput takes ISO dates or relative phrases such as "hoy" or "en 3 dias".
type AddPauseInput struct {
	GoalID string
	Start  string
	End    string
}

// LogSessionInput carries the raw form values; Value is optional.
// An empty Date logs the session today.
type LogSessionInput struct {
	GoalID string
	Hours  string
	Value  string
	Date   string
}

type QuickAddInput struct {
	GoalID  string
	Minutes float64
	Date    string
}

// StartWizardInput opens a flow. Edit mode with an empty GoalID edits the current goal.
type StartWizardInput struct {
	Mode       wizard.Mode
	IntentText string
	GoalID     string
}

type AnswerWizardInput struct {
	FlowID string
	Field  string
	Value  any
}

const (
	DirectionNext = "next"
	DirectionBack = "back"
)

type MoveWizardInput struct {
	FlowID    string
	Direction string
}

type ExportCalendarInput struct {
	GoalID string
}

// --- UseCase Outputs ---

// GoalCard is one entry of the goal overview.
type GoalCard struct {
	Goal      model.Goal
	TypeLabel string
	Progress  metrics.Progress
	Status    status.Result
	Streak    metrics.Streak
	Selected  bool
}

type ListGoalsOutput struct {
	Goals         []GoalCard
	CurrentGoalID string
}

type DashboardOutput struct {
	Goal      model.Goal
	Sessions  []model.Session
	Stats     metrics.Stats
	Weekly    metrics.WeeklyStats
	Streak    metrics.Streak
	Progress  metrics.Progress
	Status    status.Result
	Speed     metrics.Speed
	Today     metrics.TodaySummary
	ETA       string
	ETADays   *int
	Scenarios []eta.Scenario
	Skip      eta.SkipInsight
}

type SelectGoalOutput struct {
	Goal model.Goal
}

type GoalOutput struct {
	Goal model.Goal
}

type TodayOutput struct {
	Date  datemath.Date
	Items []TodayItem
}

type LogSessionOutput struct {
	Goal    model.Goal
	Session model.Session
	Streak  metrics.Streak
}

type WizardOutput struct {
	ID         string
	Mode       wizard.Mode
	GoalID     string
	Cursor     int
	Step       *wizard.Step
	Steps      []wizard.Step
	CanAdvance bool
	IsLast     bool
	State      wizard.State
	Preview    wizard.Plan
	Suggestion *suggest.Suggestion
}

type FinishWizardOutput struct {
	Goal    model.Goal
	Created bool
}

type ExportCalendarOutput struct {
	Export schedule.Export
}
