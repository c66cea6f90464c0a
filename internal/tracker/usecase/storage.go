package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"pacekeeper/internal/goal"
	"pacekeeper/internal/model"
	"pacekeeper/internal/session"
	repo "pacekeeper/internal/tracker/repository"
	"pacekeeper/pkg/datemath"
)

// snapshot is everything the stored keys hold, already normalized.
type snapshot struct {
	goals     []model.Goal
	sessions  model.SessionsByGoal
	currentID string
}

// current returns the selected goal, falling back to the first one.
func (s snapshot) current() model.Goal {
	if g, ok := goal.Find(s.goals, s.currentID); ok {
		return g
	}
	return s.goals[0]
}

// resolve finds id, or the current goal when id is empty.
func (s snapshot) resolve(id string) (model.Goal, bool) {
	if id == "" {
		return s.current(), true
	}
	return goal.Find(s.goals, id)
}

func (s snapshot) replace(g model.Goal) {
	for i := range s.goals {
		if s.goals[i].ID == g.ID {
			s.goals[i] = g
			return
		}
	}
}

// read loads a snapshot under mu so it never mixes keys from two different saves.
func (uc *implUseCase) read(ctx context.Context, today datemath.Date) (snapshot, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.load(ctx, today)
}

// load reads the three stored keys. Unreadable payloads are logged and replaced
// by empty values; only repository failures are returned.
func (uc *implUseCase) load(ctx context.Context, today datemath.Date) (snapshot, error) {
	goalsRaw, err := uc.repo.GetValue(ctx, repo.KeyGoals)
	if err != nil {
		uc.l.Errorf(ctx, "uc.load GetValue(goals): %v", err)
		return snapshot{}, err
	}
	sessionsRaw, err := uc.repo.GetValue(ctx, repo.KeySessions)
	if err != nil {
		uc.l.Errorf(ctx, "uc.load GetValue(sessions): %v", err)
		return snapshot{}, err
	}
	currentID, err := uc.repo.GetValue(ctx, repo.KeyCurrentGoalID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.load GetValue(current): %v", err)
		return snapshot{}, err
	}

	s := snapshot{
		goals:     uc.decodeGoals(ctx, goalsRaw, today),
		currentID: currentID,
	}
	if len(s.goals) == 0 {
		s.goals = []model.Goal{goal.Default(today)}
	}
	s.sessions = uc.decodeSessions(ctx, sessionsRaw, currentID, today)
	s.currentID = s.current().ID
	return s, nil
}

func (uc *implUseCase) decodeGoals(ctx context.Context, raw string, today datemath.Date) []model.Goal {
	if raw == "" {
		return nil
	}
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		uc.l.Warnf(ctx, "uc.decodeGoals: stored goals unreadable, using defaults: %v", err)
		return nil
	}
	records := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			records = append(records, m)
		}
	}
	return goal.FromRecords(records, today)
}

// decodeSessions accepts the per-goal map or the older flat list, which belongs to currentID.
func (uc *implUseCase) decodeSessions(ctx context.Context, raw, currentID string, today datemath.Date) model.SessionsByGoal {
	out := model.SessionsByGoal{}
	if raw == "" {
		return out
	}

	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		uc.l.Warnf(ctx, "uc.decodeSessions: stored sessions unreadable, starting empty: %v", err)
		return out
	}

	switch v := parsed.(type) {
	case []any:
		if currentID != "" {
			out[currentID] = session.Normalize(toRecords(v), today)
		}
	case map[string]any:
		for id, list := range v {
			items, ok := list.([]any)
			if !ok {
				uc.l.Warnf(ctx, "uc.decodeSessions: sessions of %s are not a list", id)
				continue
			}
			out[id] = session.Normalize(toRecords(items), today)
		}
	default:
		uc.l.Warnf(ctx, "uc.decodeSessions: unexpected sessions shape %T", parsed)
	}
	return out
}

func toRecords(items []any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// save writes the snapshot back in one transaction.
func (uc *implUseCase) save(ctx context.Context, s snapshot) error {
	goalsJSON, err := json.Marshal(goal.ToRecords(s.goals))
	if err != nil {
		return fmt.Errorf("encode goals: %w", err)
	}

	byGoal := make(map[string][]map[string]any, len(s.sessions))
	for id, list := range s.sessions {
		byGoal[id] = session.ToRecords(list)
	}
	sessionsJSON, err := json.Marshal(byGoal)
	if err != nil {
		return fmt.Errorf("encode sessions: %w", err)
	}

	err = uc.repo.SetValues(ctx, repo.SetValuesOptions{Values: map[string]string{
		repo.KeyGoals:         string(goalsJSON),
		repo.KeySessions:      string(sessionsJSON),
		repo.KeyCurrentGoalID: s.currentID,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "uc.save SetValues: %v", err)
		return err
	}
	return nil
}
