package tracker

import "errors"

var (
	ErrGoalNotFound     = errors.New("goal not found")
	ErrWizardNotFound   = errors.New("wizard flow not found or expired")
	ErrNoSuggestion     = errors.New("no suggestion available for this flow")
	ErrInvalidDirection = errors.New("direction must be next or back")
	ErrInvalidPause     = errors.New("pause window must have start <= end")
	ErrInvalidDate      = errors.New("unrecognized date")
	ErrFutureDate       = errors.New("sessions cannot be logged in the future")
)
