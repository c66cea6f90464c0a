package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"pacekeeper/internal/schedule"
	"pacekeeper/internal/session"
	"pacekeeper/internal/tracker"
	"pacekeeper/internal/wizard"
	pkgErrors "pacekeeper/pkg/errors"
	"pacekeeper/pkg/response"
)

var (
	errGoalNotFound     = pkgErrors.NewHTTPError(http.StatusNotFound, "goal not found")
	errWizardNotFound   = pkgErrors.NewHTTPError(http.StatusGone, "wizard flow not found or expired")
	errNoSuggestion     = pkgErrors.NewHTTPError(http.StatusConflict, "no suggestion available yet")
	errInvalidDirection = pkgErrors.NewHTTPError(http.StatusBadRequest, "direction must be next or back")
	errInvalidPause     = pkgErrors.NewHTTPError(http.StatusBadRequest, "pause start must not be after its end")
	errInvalidDate      = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD or a phrase like hoy, ayer, en 3 dias")
	errFutureDate       = pkgErrors.NewHTTPError(http.StatusBadRequest, "sessions cannot be logged in the future")
	errInvalidHours     = pkgErrors.NewHTTPError(http.StatusBadRequest, "hours must be a positive number")
	errInvalidMinutes   = pkgErrors.NewHTTPError(http.StatusBadRequest, "minutes must be a positive number")
	errUnknownField     = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown wizard field")
	errInvalidValue     = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid value for wizard field")
	errStepInvalid      = pkgErrors.NewHTTPError(http.StatusConflict, "current step is incomplete")
	errGoalIDCollision  = pkgErrors.NewHTTPError(http.StatusConflict, "goal id already exists, retry")
	errCalendarDisabled = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "calendar export is not configured")
	errCalendarPlan     = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "goal plan cannot be scheduled")
)

// renderReqError answers a request that failed binding or validation.
func (h *handler) renderReqError(c *gin.Context, err error) {
	var fe fieldErrors
	if errors.As(err, &fe) {
		response.ValidationError(c, pkgErrors.ErrBadRequest, fe)
		return
	}
	response.Error(c, err)
}

// mapError translates domain errors into HTTP errors. Unknown errors become 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tracker.ErrGoalNotFound), errors.Is(err, wizard.ErrGoalNotFound):
		return errGoalNotFound
	case errors.Is(err, tracker.ErrWizardNotFound):
		return errWizardNotFound
	case errors.Is(err, tracker.ErrNoSuggestion):
		return errNoSuggestion
	case errors.Is(err, tracker.ErrInvalidDirection):
		return errInvalidDirection
	case errors.Is(err, tracker.ErrInvalidPause):
		return errInvalidPause
	case errors.Is(err, tracker.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, tracker.ErrFutureDate):
		return errFutureDate
	case errors.Is(err, session.ErrInvalidHours):
		return errInvalidHours
	case errors.Is(err, session.ErrInvalidMinutes):
		return errInvalidMinutes
	case errors.Is(err, wizard.ErrUnknownField):
		return errUnknownField
	case errors.Is(err, wizard.ErrInvalidValue):
		return errInvalidValue
	case errors.Is(err, wizard.ErrStepInvalid):
		return errStepInvalid
	case errors.Is(err, wizard.ErrGoalIDCollision):
		return errGoalIDCollision
	case errors.Is(err, schedule.ErrDisabled):
		return errCalendarDisabled
	case errors.Is(err, schedule.ErrNoPlanDays), errors.Is(err, schedule.ErrNoMinutes), errors.Is(err, schedule.ErrSessionStart):
		return errCalendarPlan
	default:
		return pkgErrors.ErrInternalServerError
	}
}
