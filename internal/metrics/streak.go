package metrics

import (
	"pacekeeper/internal/model"
	"pacekeeper/pkg/datemath"
)

// StreakWindowDays bounds how far back the streak scan looks.
const StreakWindowDays = 60

// Streak is the current and best run of consecutive plan days with a session.
type Streak struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// ComputeStreak scans backward from today, inclusive. Paused days and days off
// the plan are skipped; the first plan day with no session ends the run.
// A goal flagged as paused does not lose its streak on empty days.
func ComputeStreak(g model.Goal, sessions []model.Session, today datemath.Date) Streak {
	logged := make(map[string]bool, len(sessions))
	for _, s := range sessions {
		logged[s.Date.String()] = true
	}

	current := 0
	for offset := 0; offset < StreakWindowDays; offset++ {
		day := today.AddDays(-offset)
		if g.IsPausedOn(day) || !g.IsPlanDay(day) {
			continue
		}
		if logged[day.String()] {
			current++
			continue
		}
		if g.Paused {
			continue
		}
		break
	}

	return Streak{Current: current, Longest: max(g.LongestStreak, current)}
}
