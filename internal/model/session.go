package model

import "pacekeeper/pkg/datemath"

// Session is one logged block of work against a goal.
type Session struct {
	ID          string        `json:"id"`
	Date        datemath.Date `json:"date"`
	Minutes     float64       `json:"minutes"`
	Value       *float64      `json:"value"`
	IsEstimated bool          `json:"isEstimated"`
}

// SessionsByGoal maps a goal id to its sessions, newest first.
type SessionsByGoal map[string][]Session
