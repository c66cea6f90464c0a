package usecase

import (
	"context"
	"strings"

	"pacekeeper/internal/eta"
	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/internal/status"
	"pacekeeper/internal/tracker"
)

// ListGoals returns an overview card for every goal.
func (uc *implUseCase) ListGoals(ctx context.Context) (tracker.ListGoalsOutput, error) {
	today := uc.today()
	s, err := uc.read(ctx, today)
	if err != nil {
		return tracker.ListGoalsOutput{}, err
	}

	cards := make([]tracker.GoalCard, 0, len(s.goals))
	for _, g := range s.goals {
		sessions := s.sessions[g.ID]
		progress := metrics.ComputeProgress(g, sessions)
		cards = append(cards, tracker.GoalCard{
			Goal:      g,
			TypeLabel: tracker.TypeLabel(g.Type),
			Progress:  progress,
			Status:    status.Classify(g, progress, today, sessions),
			Streak:    metrics.ComputeStreak(g, sessions, today),
			Selected:  g.ID == s.currentID,
		})
	}

	return tracker.ListGoalsOutput{Goals: cards, CurrentGoalID: s.currentID}, nil
}

// Dashboard computes every figure shown for one goal.
func (uc *implUseCase) Dashboard(ctx context.Context, input tracker.DashboardInput) (tracker.DashboardOutput, error) {
	today := uc.today()
	s, err := uc.read(ctx, today)
	if err != nil {
		return tracker.DashboardOutput{}, err
	}

	g, ok := s.resolve(input.GoalID)
	if !ok {
		return tracker.DashboardOutput{}, tracker.ErrGoalNotFound
	}
	sessions := s.sessions[g.ID]

	stats := metrics.ComputeStats(g, sessions)
	progress := metrics.ComputeProgress(g, sessions)
	return tracker.DashboardOutput{
		Goal:      g,
		Sessions:  sessions,
		Stats:     stats,
		Weekly:    metrics.ComputeWeeklyStats(g, sessions, today),
		Streak:    metrics.ComputeStreak(g, sessions, today),
		Progress:  progress,
		Status:    status.Classify(g, progress, today, sessions),
		Speed:     metrics.ComputeSpeed(g, stats),
		Today:     metrics.SummarizeToday(g, sessions, today),
		ETA:       eta.ProjectETA(g, sessions, 1, today),
		ETADays:   eta.ProjectETADays(g, sessions, 1, nil),
		Scenarios: eta.Scenarios(g, sessions, today),
		Skip:      eta.Skip(g, sessions),
	}, nil
}

// SelectGoal makes a goal the current one.
func (uc *implUseCase) SelectGoal(ctx context.Context, input tracker.SelectGoalInput) (tracker.SelectGoalOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, uc.today())
	if err != nil {
		return tracker.SelectGoalOutput{}, err
	}
	g, ok := s.resolve(input.GoalID)
	if !ok || input.GoalID == "" {
		return tracker.SelectGoalOutput{}, tracker.ErrGoalNotFound
	}

	s.currentID = g.ID
	if err := uc.save(ctx, s); err != nil {
		return tracker.SelectGoalOutput{}, err
	}
	return tracker.SelectGoalOutput{Goal: g}, nil
}

// Today lists what every goal asks for today.
func (uc *implUseCase) Today(ctx context.Context) (tracker.TodayOutput, error) {
	today := uc.today()
	s, err := uc.read(ctx, today)
	if err != nil {
		return tracker.TodayOutput{}, err
	}
	return tracker.TodayOutput{
		Date:  today,
		Items: tracker.TodayItems(s.goals, s.sessions, today),
	}, nil
}

// SetPaused turns the paused flag on or off. While paused, missed plan days do not break the streak.
func (uc *implUseCase) SetPaused(ctx context.Context, input tracker.SetPausedInput) (tracker.GoalOutput, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, uc.today())
	if err != nil {
		return tracker.GoalOutput{}, err
	}
	g, ok := s.resolve(input.GoalID)
	if !ok {
		return tracker.GoalOutput{}, tracker.ErrGoalNotFound
	}

	g.Paused = input.Paused
	s.replace(g)
	if err := uc.save(ctx, s); err != nil {
		return tracker.GoalOutput{}, err
	}
	uc.l.Infof(ctx, "uc.SetPaused: goal=%s paused=%t", g.ID, g.Paused)
	return tracker.GoalOutput{Goal: g}, nil
}

// AddPause records an inclusive window of days the streak skips.
func (uc *implUseCase) AddPause(ctx context.Context, input tracker.AddPauseInput) (tracker.GoalOutput, error) {
	if strings.TrimSpace(input.Start) == "" || strings.TrimSpace(input.End) == "" {
		return tracker.GoalOutput{}, tracker.ErrInvalidPause
	}
	now := uc.now()
	start, err := uc.parseDay(input.Start, now)
	if err != nil {
		return tracker.GoalOutput{}, err
	}
	end, err := uc.parseDay(input.End, now)
	if err != nil {
		return tracker.GoalOutput{}, err
	}
	if end.Before(start) {
		return tracker.GoalOutput{}, tracker.ErrInvalidPause
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, uc.today())
	if err != nil {
		return tracker.GoalOutput{}, err
	}
	g, ok := s.resolve(input.GoalID)
	if !ok {
		return tracker.GoalOutput{}, tracker.ErrGoalNotFound
	}

	g.Pauses = append(append([]model.PauseWindow{}, g.Pauses...), model.PauseWindow{Start: start, End: end})
	s.replace(g)
	if err := uc.save(ctx, s); err != nil {
		return tracker.GoalOutput{}, err
	}
	return tracker.GoalOutput{Goal: g}, nil
}
