package usecase

import (
	"context"
	"strings"

	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/internal/session"
	"pacekeeper/internal/tracker"
	"pacekeeper/pkg/datemath"
)

// LogSession records hours worked on a goal, today unless input.Date names an earlier day.
// Value is only read for unit goals.
func (uc *implUseCase) LogSession(ctx context.Context, input tracker.LogSessionInput) (tracker.LogSessionOutput, error) {
	hours, err := session.ParseHours(input.Hours)
	if err != nil {
		return tracker.LogSessionOutput{}, err
	}

	var explicit *int
	if v := strings.TrimSpace(input.Value); v != "" {
		if n, ok := session.ParseValue(v); ok {
			explicit = &n
		}
	}

	return uc.appendSession(ctx, input.GoalID, input.Date, func(g model.Goal, day datemath.Date) (model.Session, error) {
		return session.NewLogged(g, day, hours, explicit)
	})
}

// QuickAdd records minutes without a value.
func (uc *implUseCase) QuickAdd(ctx context.Context, input tracker.QuickAddInput) (tracker.LogSessionOutput, error) {
	if input.Minutes <= 0 {
		return tracker.LogSessionOutput{}, session.ErrInvalidMinutes
	}
	return uc.appendSession(ctx, input.GoalID, input.Date, func(_ model.Goal, day datemath.Date) (model.Session, error) {
		return session.NewQuick(day, input.Minutes)
	})
}

// appendSession prepends the built session and raises the goal's longest streak when it grows.
func (uc *implUseCase) appendSession(ctx context.Context, goalID, rawDate string, build func(model.Goal, datemath.Date) (model.Session, error)) (tracker.LogSessionOutput, error) {
	now := uc.now()
	today := uc.dates.Today(now)
	day, err := uc.parseDay(rawDate, now)
	if err != nil {
		return tracker.LogSessionOutput{}, err
	}
	if day.After(today) {
		return tracker.LogSessionOutput{}, tracker.ErrFutureDate
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	s, err := uc.load(ctx, today)
	if err != nil {
		return tracker.LogSessionOutput{}, err
	}
	g, ok := s.resolve(goalID)
	if !ok {
		return tracker.LogSessionOutput{}, tracker.ErrGoalNotFound
	}

	sess, err := build(g, day)
	if err != nil {
		return tracker.LogSessionOutput{}, err
	}

	list := session.Prepend(s.sessions[g.ID], sess)
	s.sessions[g.ID] = list

	streak := metrics.ComputeStreak(g, list, today)
	if streak.Longest > g.LongestStreak {
		g.LongestStreak = streak.Longest
		s.replace(g)
	}

	if err := uc.save(ctx, s); err != nil {
		uc.l.Errorf(ctx, "uc.appendSession save: %v", err)
		return tracker.LogSessionOutput{}, err
	}
	uc.l.Infof(ctx, "uc.appendSession: goal=%s minutes=%.0f", g.ID, sess.Minutes)

	return tracker.LogSessionOutput{Goal: g, Session: sess, Streak: streak}, nil
}
