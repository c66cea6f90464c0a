package http

import (
	"errors"
	"slices"
	"strings"

	"pacekeeper/internal/eta"
	"pacekeeper/internal/metrics"
	"pacekeeper/internal/model"
	"pacekeeper/internal/schedule"
	"pacekeeper/internal/status"
	"pacekeeper/internal/suggest"
	"pacekeeper/internal/tracker"
	"pacekeeper/internal/wizard"
	"pacekeeper/pkg/datemath"
)

// currentAlias in a goal path stands for the selected goal.
const currentAlias = "current"

var errEmptyFlowID = errors.New("flow id is required")

// fieldErrors maps request fields to what is wrong with them.
type fieldErrors map[string]string

func (fe fieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return "invalid fields: " + strings.Join(keys, ", ")
}

func goalIDFromParam(id string) string {
	if id == currentAlias {
		return ""
	}
	return id
}

// --- Request DTOs ---

type selectGoalReq struct {
	GoalID string `json:"goal_id" binding:"required"`
}

func (r selectGoalReq) validate() error { return nil }

func (r selectGoalReq) toInput() tracker.SelectGoalInput {
	return tracker.SelectGoalInput{GoalID: r.GoalID}
}

// ---

type setPausedReq struct {
	GoalID string `json:"-"`
	Paused *bool  `json:"paused" binding:"required"`
}

func (r setPausedReq) validate() error { return nil }

func (r setPausedReq) toInput() tracker.SetPausedInput {
	return tracker.SetPausedInput{GoalID: r.GoalID, Paused: *r.Paused}
}

// ---

// addPauseReq bounds are YYYY-MM-DD or relative phrases such as "hoy" or "en 3 dias".
type addPauseReq struct {
	GoalID string `json:"-"`
	Start  string `json:"start"`
	End    string `json:"end"`
}

func (r addPauseReq) validate() error {
	fe := fieldErrors{}
	if strings.TrimSpace(r.Start) == "" {
		fe["start"] = "required"
	}
	if strings.TrimSpace(r.End) == "" {
		fe["end"] = "required"
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

func (r addPauseReq) toInput() tracker.AddPauseInput {
	return tracker.AddPauseInput{GoalID: r.GoalID, Start: r.Start, End: r.End}
}

// ---

// logSessionReq keeps the raw strings so "1,5" and "250 palabras" reach the parser untouched.
// Date is optional and defaults to today.
type logSessionReq struct {
	GoalID string `json:"-"`
	Hours  string `json:"hours"`
	Value  string `json:"value"`
	Date   string `json:"date"`
}

func (r logSessionReq) validate() error {
	if strings.TrimSpace(r.Hours) == "" {
		return fieldErrors{"hours": "required"}
	}
	return nil
}

func (r logSessionReq) toInput() tracker.LogSessionInput {
	return tracker.LogSessionInput{GoalID: r.GoalID, Hours: r.Hours, Value: r.Value, Date: r.Date}
}

// ---

type quickAddReq struct {
	GoalID  string  `json:"-"`
	Minutes float64 `json:"minutes" binding:"required,gt=0"`
	Date    string  `json:"date"`
}

func (r quickAddReq) validate() error { return nil }

func (r quickAddReq) toInput() tracker.QuickAddInput {
	return tracker.QuickAddInput{GoalID: r.GoalID, Minutes: r.Minutes, Date: r.Date}
}

// ---

type startWizardReq struct {
	Mode       string `json:"mode"        binding:"omitempty,oneof=create edit"`
	IntentText string `json:"intent_text" binding:"max=500"`
	GoalID     string `json:"goal_id"`
}

func (r startWizardReq) validate() error { return nil }

func (r startWizardReq) toInput() tracker.StartWizardInput {
	return tracker.StartWizardInput{
		Mode:       wizard.Mode(r.Mode),
		IntentText: r.IntentText,
		GoalID:     r.GoalID,
	}
}

// ---

type answerWizardReq struct {
	FlowID string `json:"-"`
	Field  string `json:"field" binding:"required"`
	Value  any    `json:"value"`
}

func (r answerWizardReq) validate() error {
	if r.FlowID == "" {
		return errEmptyFlowID
	}
	return nil
}

func (r answerWizardReq) toInput() tracker.AnswerWizardInput {
	return tracker.AnswerWizardInput{FlowID: r.FlowID, Field: r.Field, Value: r.Value}
}

// --- Response DTOs ---

type goalCardResp struct {
	Goal      model.Goal       `json:"goal"`
	TypeLabel string           `json:"type_label"`
	Progress  metrics.Progress `json:"progress"`
	Status    status.Result    `json:"status"`
	Streak    metrics.Streak   `json:"streak"`
	Selected  bool             `json:"selected"`
}

type listGoalsResp struct {
	Goals         []goalCardResp `json:"goals"`
	CurrentGoalID string         `json:"current_goal_id"`
}

func (h *handler) newListGoalsResp(o tracker.ListGoalsOutput) listGoalsResp {
	cards := make([]goalCardResp, len(o.Goals))
	for i, c := range o.Goals {
		cards[i] = goalCardResp{
			Goal:      c.Goal,
			TypeLabel: c.TypeLabel,
			Progress:  c.Progress,
			Status:    c.Status,
			Streak:    c.Streak,
			Selected:  c.Selected,
		}
	}
	return listGoalsResp{Goals: cards, CurrentGoalID: o.CurrentGoalID}
}

// ---

type dashboardResp struct {
	Goal      model.Goal           `json:"goal"`
	TypeLabel string               `json:"type_label"`
	Sessions  []model.Session      `json:"sessions"`
	Stats     metrics.Stats        `json:"stats"`
	Weekly    metrics.WeeklyStats  `json:"weekly"`
	Streak    metrics.Streak       `json:"streak"`
	Progress  metrics.Progress     `json:"progress"`
	Status    status.Result        `json:"status"`
	Speed     metrics.Speed        `json:"speed"`
	Today     metrics.TodaySummary `json:"today"`
	ETA       string               `json:"eta"`
	ETADays   *int                 `json:"eta_days"`
	Scenarios []eta.Scenario       `json:"scenarios"`
	Skip      eta.SkipInsight      `json:"skip_insight"`
}

func (h *handler) newDashboardResp(o tracker.DashboardOutput) dashboardResp {
	sessions := o.Sessions
	if sessions == nil {
		sessions = []model.Session{}
	}
	return dashboardResp{
		Goal:      o.Goal,
		TypeLabel: tracker.TypeLabel(o.Goal.Type),
		Sessions:  sessions,
		Stats:     o.Stats,
		Weekly:    o.Weekly,
		Streak:    o.Streak,
		Progress:  o.Progress,
		Status:    o.Status,
		Speed:     o.Speed,
		Today:     o.Today,
		ETA:       o.ETA,
		ETADays:   o.ETADays,
		Scenarios: o.Scenarios,
		Skip:      o.Skip,
	}
}

// ---

type goalResp struct {
	Goal model.Goal `json:"goal"`
}

// ---

type todayItemResp struct {
	GoalID     string         `json:"goal_id"`
	Title      string         `json:"title"`
	Type       model.GoalType `json:"type"`
	TypeLabel  string         `json:"type_label"`
	Status     status.Level   `json:"status"`
	ColorClass string         `json:"color_class"`
	metrics.TodaySummary
}

type todayResp struct {
	Date  datemath.Date   `json:"date"`
	Label string          `json:"label"`
	Items []todayItemResp `json:"items"`
}

func (h *handler) newTodayResp(o tracker.TodayOutput) todayResp {
	items := make([]todayItemResp, len(o.Items))
	for i, it := range o.Items {
		items[i] = todayItemResp{
			GoalID:       it.GoalID,
			Title:        it.Title,
			Type:         it.Type,
			TypeLabel:    it.TypeLabel,
			Status:       it.Status,
			ColorClass:   it.ColorClass,
			TodaySummary: it.TodaySummary,
		}
	}
	return todayResp{Date: o.Date, Label: datemath.FormatLong(o.Date), Items: items}
}

// ---

type logSessionResp struct {
	Goal    model.Goal     `json:"goal"`
	Session model.Session  `json:"session"`
	Streak  metrics.Streak `json:"streak"`
}

func (h *handler) newLogSessionResp(o tracker.LogSessionOutput) logSessionResp {
	return logSessionResp{Goal: o.Goal, Session: o.Session, Streak: o.Streak}
}

// ---

type wizardResp struct {
	ID         string              `json:"id"`
	Mode       wizard.Mode         `json:"mode"`
	GoalID     string              `json:"goal_id,omitempty"`
	Cursor     int                 `json:"cursor"`
	Step       *wizard.Step        `json:"step"`
	Steps      []wizard.Step       `json:"steps"`
	CanAdvance bool                `json:"can_advance"`
	IsLast     bool                `json:"is_last"`
	State      wizard.State        `json:"state"`
	Preview    wizard.Plan         `json:"preview"`
	Suggestion *suggest.Suggestion `json:"suggestion,omitempty"`
}

func (h *handler) newWizardResp(o tracker.WizardOutput) wizardResp {
	return wizardResp{
		ID:         o.ID,
		Mode:       o.Mode,
		GoalID:     o.GoalID,
		Cursor:     o.Cursor,
		Step:       o.Step,
		Steps:      o.Steps,
		CanAdvance: o.CanAdvance,
		IsLast:     o.IsLast,
		State:      o.State,
		Preview:    o.Preview,
		Suggestion: o.Suggestion,
	}
}

// ---

type finishWizardResp struct {
	Goal    model.Goal `json:"goal"`
	Created bool       `json:"created"`
}

// ---

type exportCalendarResp struct {
	schedule.Export
}
