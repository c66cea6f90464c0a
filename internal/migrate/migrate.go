// Package migrate upgrades stored data written by older versions of the tracker.
package migrate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"pacekeeper/internal/goal"
	"pacekeeper/internal/session"
	repo "pacekeeper/internal/tracker/repository"
	"pacekeeper/pkg/datemath"
	"pacekeeper/pkg/log"
)

var ErrInvalidDump = errors.New("dump must be a JSON object of storage keys")

// Result reports what Run changed.
type Result struct {
	GoalSeeded       bool `json:"goalSeeded"`
	GoalFromLegacy   bool `json:"goalFromLegacy"`
	SessionsImported int  `json:"sessionsImported"`
}

// Run seeds the goal list and the per-goal session map when they are missing,
// importing the single-goal legacy layout if one is present. It is a no-op once
// both keys exist. Everything it writes goes in one transaction.
func Run(ctx context.Context, r repo.Repository, l log.Logger, today datemath.Date) (Result, error) {
	var res Result

	goalsRaw, err := r.GetValue(ctx, repo.KeyGoals)
	if err != nil {
		return res, err
	}
	sessionsRaw, err := r.GetValue(ctx, repo.KeySessions)
	if err != nil {
		return res, err
	}

	writes := map[string]string{}
	currentID, err := r.GetValue(ctx, repo.KeyCurrentGoalID)
	if err != nil {
		return res, err
	}

	if goalsRaw == "" {
		legacy, err := firstValue(ctx, r, repo.KeyLegacyGoal, repo.KeyLegacyProjectGoal)
		if err != nil {
			return res, err
		}
		base := goal.Default(today)
		if fields, ok := decodeObject(legacy); ok {
			base = goal.Normalize(legacyGoalRecord(fields), today)
			res.GoalFromLegacy = true
		} else if legacy != "" {
			l.Warnf(ctx, "migrate.Run: unreadable legacy goal, seeding default")
		}

		data, err := json.Marshal([]map[string]any{goal.ToRecord(base)})
		if err != nil {
			return res, fmt.Errorf("migrate: encode goals: %w", err)
		}
		writes[repo.KeyGoals] = string(data)
		writes[repo.KeyCurrentGoalID] = base.ID
		currentID = base.ID
		res.GoalSeeded = true
	}

	if sessionsRaw == "" {
		legacy, err := firstValue(ctx, r, repo.KeyLegacySessions, repo.KeyLegacyProjectSessions)
		if err != nil {
			return res, err
		}
		if legacy != "" {
			var items []map[string]any
			if err := json.Unmarshal([]byte(legacy), &items); err != nil {
				l.Warnf(ctx, "migrate.Run: unreadable legacy sessions: %v", err)
			} else {
				if currentID == "" {
					currentID = goal.DefaultID
				}
				migrated := session.Normalize(legacySessionRecords(items), today)
				data, err := json.Marshal(map[string]any{currentID: session.ToRecords(migrated)})
				if err != nil {
					return res, fmt.Errorf("migrate: encode sessions: %w", err)
				}
				writes[repo.KeySessions] = string(data)
				res.SessionsImported = len(migrated)
			}
		}
	}

	if len(writes) == 0 {
		return res, nil
	}
	if err := r.SetValues(ctx, repo.SetValuesOptions{Values: writes}); err != nil {
		return Result{}, err
	}
	l.Infof(ctx, "migrate.Run: seeded=%t legacy=%t sessions=%d", res.GoalSeeded, res.GoalFromLegacy, res.SessionsImported)
	return res, nil
}

// legacyGoalRecord maps the old single-goal shape (targetWords, schedule.*) onto the current one.
func legacyGoalRecord(old map[string]any) map[string]any {
	plan, _ := old["plan"].(map[string]any)
	schedule, _ := old["schedule"].(map[string]any)
	rate, _ := old["rate"].(map[string]any)

	rec := map[string]any{
		"id":    firstNonEmpty(cast.ToString(old["id"]), goal.DefaultID),
		"title": firstNonEmpty(cast.ToString(old["title"]), cast.ToString(old["name"]), goal.DefaultTitle),
	}
	if v, ok := old["targetValue"]; ok && v != nil {
		rec["targetValue"] = v
	} else if v, ok := old["targetWords"]; ok && v != nil {
		rec["targetValue"] = v
	}

	days := plan["daysPerWeek"]
	if days == nil {
		days = schedule["workDays"]
	}
	minutes := float64(goal.DefaultMinutesPerSession)
	if m := cast.ToFloat64(plan["minutesPerSession"]); m > 0 {
		minutes = m
	} else if h := cast.ToFloat64(schedule["hoursPerSession"]); h > 0 {
		minutes = math.Round(h * 60)
	}
	newPlan := map[string]any{"minutesPerSession": minutes}
	if days != nil {
		newPlan["daysPerWeek"] = days
	}
	rec["plan"] = newPlan

	perHour := cast.ToFloat64(rate["valuePerHour"])
	if perHour <= 0 {
		perHour = cast.ToFloat64(schedule["wordsPerHour"])
	}
	if perHour > 0 {
		rec["rate"] = map[string]any{"valuePerHour": perHour}
	}
	return rec
}

// legacySessionRecords renames words to value.
func legacySessionRecords(items []map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		rec := map[string]any{
			"id":          it["id"],
			"date":        it["date"],
			"minutes":     it["minutes"],
			"isEstimated": it["isEstimated"],
		}
		if w, ok := it["words"]; ok && w != nil {
			rec["value"] = w
		} else {
			rec["value"] = it["value"]
		}
		if id := cast.ToString(it["id"]); id != "" {
			rec["id"] = id
		}
		out = append(out, rec)
	}
	return out
}

// ImportDump copies every storage key found in a browser storage export into r.
// Values may be JSON strings, as the browser keeps them, or inline JSON.
func ImportDump(ctx context.Context, r repo.Repository, data []byte) (int, error) {
	var dump map[string]json.RawMessage
	if err := json.Unmarshal(data, &dump); err != nil {
		return 0, ErrInvalidDump
	}

	values := map[string]string{}
	for k, raw := range dump {
		if !strings.HasPrefix(k, repo.KeyPrefix) {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			values[k] = s
			continue
		}
		values[k] = string(raw)
	}
	if len(values) == 0 {
		return 0, nil
	}
	if err := r.SetValues(ctx, repo.SetValuesOptions{Values: values}); err != nil {
		return 0, err
	}
	return len(values), nil
}

func firstValue(ctx context.Context, r repo.Repository, keys ...string) (string, error) {
	for _, k := range keys {
		v, err := r.GetValue(ctx, k)
		if err != nil {
			return "", err
		}
		if v != "" {
			return v, nil
		}
	}
	return "", nil
}

func decodeObject(raw string) (map[string]any, bool) {
	if raw == "" {
		return nil, false
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil || m == nil {
		return nil, false
	}
	return m, true
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
