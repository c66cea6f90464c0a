// Package suggest asks a language model for a goal plan matching free-text intent.
// Suggestions are advisory: every failure yields nil and the wizard carries on without one.
package suggest

import (
	"context"
	"time"

	"pacekeeper/internal/model"
	"pacekeeper/pkg/log"
)

// Suggestion is a plan proposed for an intent. Zero fields mean "no opinion".
type Suggestion struct {
	Title             string         `json:"title,omitempty"`
	Type              model.GoalType `json:"type,omitempty"`
	PaceMode          model.PaceMode `json:"paceMode,omitempty"`
	DeadlineDays      int            `json:"deadlineDays,omitempty"`
	MinutesPerSession int            `json:"minutesPerSession,omitempty"`
	DaysPerWeek       []int          `json:"daysPerWeek,omitempty"`
	TargetValue       float64        `json:"targetValue,omitempty"`
	UnitName          string         `json:"unitName,omitempty"`
}

// Suggester proposes a plan for intentText. A nil Suggestion with a nil error means nothing useful came back.
type Suggester interface {
	Suggest(ctx context.Context, intentText string) (*Suggestion, error)
}

type noop struct{}

// Noop never suggests anything.
func Noop() Suggester { return noop{} }

func (noop) Suggest(context.Context, string) (*Suggestion, error) { return nil, nil }

// Async runs s in the background and hands the outcome to deliver. deliver is
// only called with a non-nil suggestion; errors are logged and dropped.
func Async(s Suggester, l log.Logger, intentText string, timeout time.Duration, deliver func(*Suggestion)) {
	if s == nil || intentText == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		sg, err := s.Suggest(ctx, intentText)
		if err != nil {
			l.Warnf(ctx, "suggest.Async: %v", err)
			return
		}
		if sg != nil {
			deliver(sg)
		}
	}()
}
