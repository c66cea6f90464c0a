package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processSelectGoalReq(c *gin.Context) (selectGoalReq, error) {
	var req selectGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSetPausedReq(c *gin.Context) (setPausedReq, error) {
	var req setPausedReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.GoalID = goalIDFromParam(c.Param("id"))
	return req, req.validate()
}

func (h *handler) processAddPauseReq(c *gin.Context) (addPauseReq, error) {
	var req addPauseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.GoalID = goalIDFromParam(c.Param("id"))
	return req, req.validate()
}

func (h *handler) processLogSessionReq(c *gin.Context) (logSessionReq, error) {
	var req logSessionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.GoalID = goalIDFromParam(c.Param("id"))
	return req, req.validate()
}

func (h *handler) processQuickAddReq(c *gin.Context) (quickAddReq, error) {
	var req quickAddReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.GoalID = goalIDFromParam(c.Param("id"))
	return req, req.validate()
}

// processStartWizardReq accepts an empty body as a blank create flow.
func (h *handler) processStartWizardReq(c *gin.Context) (startWizardReq, error) {
	var req startWizardReq
	if c.Request.ContentLength == 0 {
		return req, nil
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processAnswerWizardReq(c *gin.Context) (answerWizardReq, error) {
	var req answerWizardReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.FlowID = c.Param("id")
	return req, req.validate()
}
