package wizard

import "errors"

var (
	ErrUnknownField    = errors.New("unknown wizard field")
	ErrInvalidValue    = errors.New("invalid wizard value")
	ErrStepInvalid     = errors.New("current step is incomplete")
	ErrGoalNotFound    = errors.New("goal not found")
	ErrGoalIDCollision = errors.New("goal id already exists")
)
