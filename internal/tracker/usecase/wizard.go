package usecase

import (
	"context"
	"errors"
	"strings"

	"pacekeeper/internal/model"
	"pacekeeper/internal/suggest"
	"pacekeeper/internal/tracker"
	"pacekeeper/internal/wizard"
)

// StartWizard opens a create or edit flow.
func (uc *implUseCase) StartWizard(ctx context.Context, input tracker.StartWizardInput) (tracker.WizardOutput, error) {
	today := uc.today()
	s, err := uc.read(ctx, today)
	if err != nil {
		return tracker.WizardOutput{}, err
	}

	var w *wizard.Wizard
	switch input.Mode {
	case wizard.ModeEdit:
		g, ok := s.resolve(input.GoalID)
		if !ok {
			return tracker.WizardOutput{}, tracker.ErrGoalNotFound
		}
		w = wizard.NewEdit(g, today)
	case wizard.ModeCreate, "":
		w = wizard.NewCreate(input.IntentText, s.current())
	default:
		return tracker.WizardOutput{}, wizard.ErrInvalidValue
	}

	f := uc.flows.open(w)
	uc.l.Infof(ctx, "uc.StartWizard: flow=%s mode=%s", f.id, w.Mode())

	f.mu.Lock()
	defer f.mu.Unlock()
	if w.Mode() == wizard.ModeCreate {
		uc.requestSuggestion(f, w.State().IntentText)
	}
	return uc.view(f), nil
}

// GetWizard returns the flow as it stands.
func (uc *implUseCase) GetWizard(ctx context.Context, flowID string) (tracker.WizardOutput, error) {
	f, ok := uc.flows.get(flowID)
	if !ok {
		return tracker.WizardOutput{}, tracker.ErrWizardNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return uc.view(f), nil
}

// AnswerWizard sets one field. Changing the intent text re-asks for a suggestion.
func (uc *implUseCase) AnswerWizard(ctx context.Context, input tracker.AnswerWizardInput) (tracker.WizardOutput, error) {
	f, ok := uc.flows.get(input.FlowID)
	if !ok {
		return tracker.WizardOutput{}, tracker.ErrWizardNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.wiz.Set(input.Field, input.Value); err != nil {
		return tracker.WizardOutput{}, err
	}
	if input.Field == wizard.KeyIntentText && f.wiz.Mode() == wizard.ModeCreate {
		uc.requestSuggestion(f, f.wiz.State().IntentText)
	}
	uc.flows.touch(f)
	return uc.view(f), nil
}

// MoveWizard steps forward or back. Moving forward from an unanswered step is refused.
func (uc *implUseCase) MoveWizard(ctx context.Context, input tracker.MoveWizardInput) (tracker.WizardOutput, error) {
	f, ok := uc.flows.get(input.FlowID)
	if !ok {
		return tracker.WizardOutput{}, tracker.ErrWizardNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	switch input.Direction {
	case tracker.DirectionNext:
		if !f.wiz.CanAdvance() {
			return tracker.WizardOutput{}, wizard.ErrStepInvalid
		}
		f.wiz.Next()
	case tracker.DirectionBack:
		f.wiz.Back()
	default:
		return tracker.WizardOutput{}, tracker.ErrInvalidDirection
	}
	uc.flows.touch(f)
	return uc.view(f), nil
}

// ApplySuggestion copies the suggested plan into fields the user has not answered.
func (uc *implUseCase) ApplySuggestion(ctx context.Context, flowID string) (tracker.WizardOutput, error) {
	f, ok := uc.flows.get(flowID)
	if !ok {
		return tracker.WizardOutput{}, tracker.ErrWizardNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.suggestion == nil {
		return tracker.WizardOutput{}, tracker.ErrNoSuggestion
	}

	state := f.wiz.State()
	for _, a := range suggestionAnswers(*f.suggestion, state) {
		if state.Confirmed[a.field] {
			continue
		}
		if err := f.wiz.Set(a.field, a.value); err != nil {
			uc.l.Warnf(ctx, "uc.ApplySuggestion Set(%s): %v", a.field, err)
		}
	}
	uc.flows.touch(f)
	return uc.view(f), nil
}

// FinishWizard commits the flow and closes it. The saved goal becomes the current one.
func (uc *implUseCase) FinishWizard(ctx context.Context, flowID string) (tracker.FinishWizardOutput, error) {
	f, ok := uc.flows.get(flowID)
	if !ok {
		return tracker.FinishWizardOutput{}, tracker.ErrWizardNotFound
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	today := uc.today()
	s, err := uc.load(ctx, today)
	if err != nil {
		return tracker.FinishWizardOutput{}, err
	}

	g, goals, err := f.wiz.Finish(s.goals, today)
	if err != nil {
		if errors.Is(err, wizard.ErrGoalIDCollision) {
			uc.l.Errorf(ctx, "uc.FinishWizard Finish: flow=%s: %v", f.id, err)
		}
		return tracker.FinishWizardOutput{}, err
	}

	s.goals = goals
	s.currentID = g.ID
	if _, ok := s.sessions[g.ID]; !ok {
		s.sessions[g.ID] = []model.Session{}
	}
	if err := uc.save(ctx, s); err != nil {
		return tracker.FinishWizardOutput{}, err
	}

	uc.flows.remove(f.id)
	created := f.wiz.Mode() == wizard.ModeCreate
	uc.l.Infof(ctx, "uc.FinishWizard: goal=%s created=%t", g.ID, created)
	return tracker.FinishWizardOutput{Goal: g, Created: created}, nil
}

// CancelWizard drops the flow without saving anything.
func (uc *implUseCase) CancelWizard(ctx context.Context, flowID string) error {
	if !uc.flows.remove(flowID) {
		return tracker.ErrWizardNotFound
	}
	return nil
}

// requestSuggestion asks for a plan in the background. Callers hold f.mu.
func (uc *implUseCase) requestSuggestion(f *flow, intentText string) {
	f.suggestSeq++
	f.suggestion = nil
	if strings.TrimSpace(intentText) == "" {
		return
	}

	seq := f.suggestSeq
	suggest.Async(uc.suggester, uc.l, intentText, uc.suggestTimeout, func(sg *suggest.Suggestion) {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.suggestSeq == seq {
			f.suggestion = sg
		}
	})
}

func (uc *implUseCase) view(f *flow) tracker.WizardOutput {
	w := f.wiz
	steps := w.Steps()
	out := tracker.WizardOutput{
		ID:         f.id,
		Mode:       w.Mode(),
		GoalID:     w.GoalID(),
		Cursor:     w.Cursor(),
		Steps:      steps,
		CanAdvance: w.CanAdvance(),
		IsLast:     w.Cursor() >= len(steps)-1,
		State:      w.State(),
		Preview:    w.Preview(uc.today()),
		Suggestion: f.suggestion,
	}
	if st, ok := w.Current(); ok {
		out.Step = &st
	}
	return out
}

type answer struct {
	field string
	value any
}

// suggestionAnswers maps a suggestion onto wizard fields for the flow's category.
func suggestionAnswers(sg suggest.Suggestion, s wizard.State) []answer {
	var out []answer
	if title := trimKnownPrefix(sg.Title); title != "" {
		switch s.Category {
		case model.GoalTypeReading:
			out = append(out, answer{wizard.KeyBookTitle, title})
		case model.GoalTypeStudy:
			out = append(out, answer{wizard.KeyTopicTitle, title})
		case model.GoalTypeHabit:
			out = append(out, answer{wizard.KeyHabitTitle, title})
		default:
			out = append(out, answer{wizard.KeyTitle, title})
		}
	}
	if sg.PaceMode != "" {
		out = append(out, answer{wizard.KeyPaceMode, string(sg.PaceMode)})
	}
	if sg.DeadlineDays > 0 {
		out = append(out, answer{wizard.KeyDeadlineDays, sg.DeadlineDays})
	}
	if len(sg.DaysPerWeek) > 0 {
		out = append(out, answer{wizard.KeyDaysPerWeek, sg.DaysPerWeek})
	}
	if sg.MinutesPerSession > 0 {
		out = append(out, answer{wizard.KeyMinutesPerSession, sg.MinutesPerSession})
	}
	if sg.TargetValue > 0 {
		switch {
		case s.Category == model.GoalTypeReading && strings.EqualFold(sg.UnitName, "páginas"):
			out = append(out, answer{wizard.KeyPageCount, sg.TargetValue})
		case s.Category != model.GoalTypeReading:
			out = append(out, answer{wizard.KeyTargetValue, sg.TargetValue})
		}
	}
	if s.Category == model.GoalTypeGeneric && sg.UnitName != "" {
		out = append(out, answer{wizard.KeyUnitSelection, strings.ToLower(sg.UnitName)})
	}
	return out
}

func trimKnownPrefix(title string) string {
	title = strings.TrimSpace(title)
	if i := strings.Index(title, ": "); i > 0 && i < 12 {
		return strings.TrimSpace(title[i+2:])
	}
	return title
}
