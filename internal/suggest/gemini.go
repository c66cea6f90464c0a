package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cast"

	"pacekeeper/internal/goal"
	"pacekeeper/internal/model"
	"pacekeeper/pkg/gemini"
	"pacekeeper/pkg/log"
)

type geminiSuggester struct {
	llm gemini.IGemini
	l   log.Logger
}

// NewGemini creates a Suggester backed by llm.
func NewGemini(llm gemini.IGemini, l log.Logger) Suggester {
	return &geminiSuggester{llm: llm, l: l}
}

func (s *geminiSuggester) Suggest(ctx context.Context, intentText string) (*Suggestion, error) {
	intentText = strings.TrimSpace(intentText)
	if intentText == "" {
		return nil, nil
	}

	req := gemini.UserText(buildPrompt(intentText))
	req.GenerationConfig = &gemini.GenerationConfig{
		Temperature:      0.2,
		ResponseMimeType: gemini.MimeTypeJSON,
	}

	resp, err := s.llm.GenerateContent(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("suggest: %w", err)
	}

	sg, ok := parseSuggestion(resp.Text())
	if !ok {
		s.l.Warnf(ctx, "suggest.Suggest: unusable model answer for %q", intentText)
		return nil, nil
	}
	return sg, nil
}

// parseSuggestion reads the model's JSON leniently and keeps only sane fields.
func parseSuggestion(text string) (*Suggestion, bool) {
	text = stripCodeFence(text)
	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil || len(raw) == 0 {
		return nil, false
	}

	sg := &Suggestion{
		Title:    strings.TrimSpace(cast.ToString(raw["title"])),
		UnitName: strings.TrimSpace(cast.ToString(raw["unitName"])),
	}
	if t := model.GoalType(cast.ToString(raw["type"])); t.Valid() {
		sg.Type = t
	}
	switch pm := model.PaceMode(cast.ToString(raw["paceMode"])); pm {
	case model.PaceModeDeadline, model.PaceModePace:
		sg.PaceMode = pm
	}
	if d := cast.ToInt(raw["deadlineDays"]); d > 0 {
		sg.DeadlineDays = d
	}
	if m := cast.ToInt(raw["minutesPerSession"]); m > 0 {
		sg.MinutesPerSession = m
	}
	if days, ok := goal.ParseDays(raw["daysPerWeek"]); ok && len(days) > 0 {
		sg.DaysPerWeek = days
	}
	if v := cast.ToFloat64(raw["targetValue"]); v > 0 && !math.IsInf(v, 0) {
		sg.TargetValue = v
	}

	if sg.Title == "" && sg.Type == "" && sg.MinutesPerSession == 0 && len(sg.DaysPerWeek) == 0 {
		return nil, false
	}
	return sg, true
}

func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
