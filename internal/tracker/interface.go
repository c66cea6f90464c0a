package tracker

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Goals
	ListGoals(ctx context.Context) (ListGoalsOutput, error)
	Dashboard(ctx context.Context, input DashboardInput) (DashboardOutput, error)
	SelectGoal(ctx context.Context, input SelectGoalInput) (SelectGoalOutput, error)
	Today(ctx context.Context) (TodayOutput, error)
	SetPaused(ctx context.Context, input SetPausedInput) (GoalOutput, error)
	AddPause(ctx context.Context, input AddPauseInput) (GoalOutput, error)

	// Sessions
	LogSession(ctx context.Context, input LogSessionInput) (LogSessionOutput, error)
	QuickAdd(ctx context.Context, input QuickAddInput) (LogSessionOutput, error)

	// Wizard flows
	StartWizard(ctx context.Context, input StartWizardInput) (WizardOutput, error)
	GetWizard(ctx context.Context, flowID string) (WizardOutput, error)
	AnswerWizard(ctx context.Context, input AnswerWizardInput) (WizardOutput, error)
	MoveWizard(ctx context.Context, input MoveWizardInput) (WizardOutput, error)
	ApplySuggestion(ctx context.Context, flowID string) (WizardOutput, error)
	FinishWizard(ctx context.Context, flowID string) (FinishWizardOutput, error)
	CancelWizard(ctx context.Context, flowID string) error

	// Calendar
	ExportCalendar(ctx context.Context, input ExportCalendarInput) (ExportCalendarOutput, error)
}
