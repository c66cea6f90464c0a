package http

import (
	"github.com/gin-gonic/gin"

	"pacekeeper/internal/tracker"
	"pacekeeper/pkg/response"
)

// ListGoals godoc
// @Summary     List goals
// @Description Returns every goal as a card with progress, status and streak, plus the selected goal id.
// @Tags        Goals
// @Produce     json
// @Success     200 {object} listGoalsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals [GET]
func (h *handler) ListGoals(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListGoals(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListGoals: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListGoalsResp(output))
}

// Dashboard godoc
// @Summary     Goal dashboard
// @Description Returns the full dashboard of a goal: stats, weekly summary, streak, progress, status, ETA and scenarios.
// @Tags        Goals
// @Produce     json
// @Param       id path string true "Goal ID, or 'current'"
// @Success     200 {object} dashboardResp
// @Failure     404 {object} response.Resp "Goal not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/goals/{id} [GET]
func (h *handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Dashboard(ctx, tracker.DashboardInput{GoalID: goalIDFromParam(c.Param("id"))})
	if err != nil {
		h.l.Errorf(ctx, "uc.Dashboard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDashboardResp(output))
}

// SelectGoal godoc
// @Summary     Select the current goal
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       body body selectGoalReq true "Goal to select"
// @Success     200 {object} goalResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Goal not found"
// @Router      /api/v1/goals/current [PUT]
func (h *handler) SelectGoal(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSelectGoalReq(c)
	if err != nil {
		h.renderReqError(c, err)
		return
	}

	output, err := h.uc.SelectGoal(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SelectGoal: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, goalResp{Goal: output.Goal})
}

// Today godoc
// @Summary     Today's plan
// @Description Lists what each goal asks for today.
// @Tags        Goals
// @Produce     json
// @Success     200 {object} todayResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/today [GET]
func (h *handler) Today(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Today(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Today: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newTodayResp(output))
}

// SetPaused godoc
// @Summary     Pause or resume a goal
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id   path string       true "Goal ID, or 'current'"
// @Param       body body setPausedReq true "Paused flag"
// @Success     200 {object} goalResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Goal not found"
// @Router      /api/v1/goals/{id}/paused [PUT]
func (h *handler) SetPaused(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetPausedReq(c)
	if err != nil {
		h.renderReqError(c, err)
		return
	}

	output, err := h.uc.SetPaused(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetPaused: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, goalResp{Goal: output.Goal})
}

// AddPause godoc
// @Summary     Add a pause window
// @Description Days inside the window do not break the streak.
// @Tags        Goals
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Goal ID, or 'current'"
// @Param       body body addPauseReq true "Inclusive window, YYYY-MM-DD or relative (hoy, en 3 dias)"
// @Success     200 {object} goalResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Goal not found"
// @Router      /api/v1/goals/{id}/pauses [POST]
func (h *handler) AddPause(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddPauseReq(c)
	if err != nil {
		h.renderReqError(c, err)
		return
	}

	output, err := h.uc.AddPause(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddPause: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, goalResp{Goal: output.Goal})
}

// LogSession godoc
// @Summary     Log a session
// @Description Hours accept a decimal comma. Value is optional and estimated from the goal rate when blank. Date defaults to today and accepts relative phrases (ayer).
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string        true "Goal ID, or 'current'"
// @Param       body body logSessionReq true "Session"
// @Success     200 {object} logSessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Goal not found"
// @Router      /api/v1/goals/{id}/sessions [POST]
func (h *handler) LogSession(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLogSessionReq(c)
	if err != nil {
		h.renderReqError(c, err)
		return
	}

	output, err := h.uc.LogSession(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.LogSession: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLogSessionResp(output))
}

// QuickAdd godoc
// @Summary     Quick add minutes
// @Tags        Sessions
// @Accept      json
// @Produce     json
// @Param       id   path string      true "Goal ID, or 'current'"
// @Param       body body quickAddReq true "Minutes"
// @Success     200 {object} logSessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Goal not found"
// @Router      /api/v1/goals/{id}/quick [POST]
func (h *handler) QuickAdd(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processQuickAddReq(c)
	if err != nil {
		h.renderReqError(c, err)
		return
	}

	output, err := h.uc.QuickAdd(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.QuickAdd: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newLogSessionResp(output))
}

// ExportCalendar godoc
// @Summary     Export the plan to Google Calendar
// @Description Creates a weekly recurring event for the goal's plan days.
// @Tags        Goals
// @Produce     json
// @Param       id path string true "Goal ID, or 'current'"
// @Success     200 {object} exportCalendarResp
// @Failure     404 {object} response.Resp "Goal not found"
// @Failure     422 {object} response.Resp "Plan cannot be scheduled"
// @Failure     503 {object} response.Resp "Calendar not configured"
// @Router      /api/v1/goals/{id}/calendar [POST]
func (h *handler) ExportCalendar(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ExportCalendar(ctx, tracker.ExportCalendarInput{GoalID: goalIDFromParam(c.Param("id"))})
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportCalendar: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, exportCalendarResp{Export: output.Export})
}

// StartWizard godoc
// @Summary     Open a wizard flow
// @Description Create mode parses intent_text to preselect a category; edit mode loads goal_id or the current goal.
// @Tags        Wizard
// @Accept      json
// @Produce     json
// @Param       body body startWizardReq false "Flow options"
// @Success     200 {object} wizardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Goal not found"
// @Router      /api/v1/wizard [POST]
func (h *handler) StartWizard(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processStartWizardReq(c)
	if err != nil {
		h.renderReqError(c, err)
		return
	}

	output, err := h.uc.StartWizard(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.StartWizard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// GetWizard godoc
// @Summary     Get a wizard flow
// @Tags        Wizard
// @Produce     json
// @Param       id path string true "Flow ID"
// @Success     200 {object} wizardResp
// @Failure     410 {object} response.Resp "Flow expired"
// @Router      /api/v1/wizard/{id} [GET]
func (h *handler) GetWizard(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.GetWizard(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.GetWizard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// AnswerWizard godoc
// @Summary     Answer a wizard field
// @Tags        Wizard
// @Accept      json
// @Produce     json
// @Param       id   path string          true "Flow ID"
// @Param       body body answerWizardReq true "Field and value"
// @Success     200 {object} wizardResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     410 {object} response.Resp "Flow expired"
// @Router      /api/v1/wizard/{id} [PATCH]
func (h *handler) AnswerWizard(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnswerWizardReq(c)
	if err != nil {
		h.renderReqError(c, err)
		return
	}

	output, err := h.uc.AnswerWizard(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AnswerWizard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// NextWizard godoc
// @Summary     Advance a wizard flow
// @Tags        Wizard
// @Produce     json
// @Param       id path string true "Flow ID"
// @Success     200 {object} wizardResp
// @Failure     409 {object} response.Resp "Current step is incomplete"
// @Failure     410 {object} response.Resp "Flow expired"
// @Router      /api/v1/wizard/{id}/next [POST]
func (h *handler) NextWizard(c *gin.Context) {
	h.move(c, tracker.DirectionNext)
}

// BackWizard godoc
// @Summary     Go back one wizard step
// @Tags        Wizard
// @Produce     json
// @Param       id path string true "Flow ID"
// @Success     200 {object} wizardResp
// @Failure     410 {object} response.Resp "Flow expired"
// @Router      /api/v1/wizard/{id}/back [POST]
func (h *handler) BackWizard(c *gin.Context) {
	h.move(c, tracker.DirectionBack)
}

func (h *handler) move(c *gin.Context, direction string) {
	ctx := c.Request.Context()

	output, err := h.uc.MoveWizard(ctx, tracker.MoveWizardInput{FlowID: c.Param("id"), Direction: direction})
	if err != nil {
		h.l.Errorf(ctx, "uc.MoveWizard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// ApplySuggestion godoc
// @Summary     Apply the AI suggestion
// @Description Copies the pending suggestion into every field the user has not answered yet.
// @Tags        Wizard
// @Produce     json
// @Param       id path string true "Flow ID"
// @Success     200 {object} wizardResp
// @Failure     409 {object} response.Resp "No suggestion yet"
// @Failure     410 {object} response.Resp "Flow expired"
// @Router      /api/v1/wizard/{id}/suggestion [POST]
func (h *handler) ApplySuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ApplySuggestion(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.ApplySuggestion: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newWizardResp(output))
}

// FinishWizard godoc
// @Summary     Finish a wizard flow
// @Description Saves the synthesized goal and selects it.
// @Tags        Wizard
// @Produce     json
// @Param       id path string true "Flow ID"
// @Success     200 {object} finishWizardResp
// @Failure     409 {object} response.Resp "Current step is incomplete"
// @Failure     410 {object} response.Resp "Flow expired"
// @Router      /api/v1/wizard/{id}/finish [POST]
func (h *handler) FinishWizard(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.FinishWizard(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.FinishWizard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, finishWizardResp{Goal: output.Goal, Created: output.Created})
}

// CancelWizard godoc
// @Summary     Cancel a wizard flow
// @Description Discards the flow. Nothing is persisted.
// @Tags        Wizard
// @Produce     json
// @Param       id path string true "Flow ID"
// @Success     200 {object} response.Resp
// @Failure     410 {object} response.Resp "Flow expired"
// @Router      /api/v1/wizard/{id} [DELETE]
func (h *handler) CancelWizard(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.CancelWizard(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "uc.CancelWizard: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
