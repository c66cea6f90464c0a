package http

import (
	"github.com/gin-gonic/gin"

	"pacekeeper/internal/middleware"
)

// RegisterRoutes maps the tracker endpoints. Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	goals := rg.Group("/goals")
	{
		goals.GET("", h.ListGoals)
		goals.PUT("/current", h.SelectGoal)
		goals.GET("/:id", h.Dashboard)
		goals.PUT("/:id/paused", h.SetPaused)
		goals.POST("/:id/pauses", h.AddPause)
		goals.POST("/:id/sessions", h.LogSession)
		goals.POST("/:id/quick", h.QuickAdd)
		goals.POST("/:id/calendar", h.ExportCalendar)
	}

	rg.GET("/today", h.Today)

	wiz := rg.Group("/wizard")
	{
		wiz.POST("", h.StartWizard)
		wiz.GET("/:id", h.GetWizard)
		wiz.PATCH("/:id", h.AnswerWizard)
		wiz.POST("/:id/next", h.NextWizard)
		wiz.POST("/:id/back", h.BackWizard)
		wiz.POST("/:id/suggestion", h.ApplySuggestion)
		wiz.POST("/:id/finish", h.FinishWizard)
		wiz.DELETE("/:id", h.CancelWizard)
	}
}
