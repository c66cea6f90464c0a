package usecase

import (
	"context"

	"pacekeeper/internal/schedule"
	"pacekeeper/internal/tracker"
)

// ExportCalendar writes the goal's weekly plan to the configured calendar.
func (uc *implUseCase) ExportCalendar(ctx context.Context, input tracker.ExportCalendarInput) (tracker.ExportCalendarOutput, error) {
	if !uc.exporter.Enabled() {
		return tracker.ExportCalendarOutput{}, schedule.ErrDisabled
	}

	today := uc.today()
	s, err := uc.read(ctx, today)
	if err != nil {
		return tracker.ExportCalendarOutput{}, err
	}
	g, ok := s.resolve(input.GoalID)
	if !ok {
		return tracker.ExportCalendarOutput{}, tracker.ErrGoalNotFound
	}

	exp, err := uc.exporter.Export(ctx, g, today)
	if err != nil {
		return tracker.ExportCalendarOutput{}, err
	}
	return tracker.ExportCalendarOutput{Export: exp}, nil
}
