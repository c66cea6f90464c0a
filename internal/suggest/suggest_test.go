package suggest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"pacekeeper/internal/model"
	"pacekeeper/pkg/gemini"
	"pacekeeper/pkg/log"
)

type mockGemini struct {
	text string
	err  error
	last gemini.GenerateRequest
}

func (m *mockGemini) GenerateContent(_ context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	m.last = req
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.GenerateResponse{Candidates: []gemini.Candidate{{
		Content: gemini.Content{Parts: []gemini.Part{{Text: m.text}}},
	}}}, nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

func TestGeminiSuggester(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		err     error
		want    *Suggestion
		wantErr bool
	}{
		{
			name: "full plan",
			text: `{"title":"Leer: La Peste","type":"reading","paceMode":"deadline","deadlineDays":21,
				"minutesPerSession":30,"daysPerWeek":[1,2,3,4,5],"targetValue":320,"unitName":"páginas"}`,
			want: &Suggestion{
				Title:             "Leer: La Peste",
				Type:              model.GoalTypeReading,
				PaceMode:          model.PaceModeDeadline,
				DeadlineDays:      21,
				MinutesPerSession: 30,
				DaysPerWeek:       []int{1, 2, 3, 4, 5},
				TargetValue:       320,
				UnitName:          "páginas",
			},
		},
		{
			name: "fenced and partly bogus",
			text: "```json\n{\"title\":\"Correr\",\"type\":\"swimming\",\"minutesPerSession\":\"45\",\"daysPerWeek\":\"daily\"}\n```",
			want: &Suggestion{Title: "Correr", MinutesPerSession: 45},
		},
		{
			name: "not json",
			text: "Claro, aquí tienes tu plan",
		},
		{
			name: "empty object",
			text: "{}",
		},
		{
			name:    "transport error",
			err:     errors.New("boom"),
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			llm := &mockGemini{text: tc.text, err: tc.err}
			got, err := NewGemini(llm, log.NewNop()).Suggest(context.Background(), "Quiero leer La Peste en 3 semanas")
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("suggestion mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGeminiSuggester_RequestsJSON(t *testing.T) {
	llm := &mockGemini{text: "{}"}
	_, _ = NewGemini(llm, log.NewNop()).Suggest(context.Background(), "correr 10 km")
	if llm.last.GenerationConfig == nil || llm.last.GenerationConfig.ResponseMimeType != gemini.MimeTypeJSON {
		t.Errorf("request should ask for JSON, got %+v", llm.last.GenerationConfig)
	}
}

func TestGeminiSuggester_BlankIntent(t *testing.T) {
	llm := &mockGemini{err: errors.New("should not be called")}
	got, err := NewGemini(llm, log.NewNop()).Suggest(context.Background(), "   ")
	if got != nil || err != nil {
		t.Errorf("got %v, %v", got, err)
	}
}

func TestAsync_Delivers(t *testing.T) {
	llm := &mockGemini{text: `{"title":"Meditar","type":"habit"}`}
	done := make(chan *Suggestion, 1)
	Async(NewGemini(llm, log.NewNop()), log.NewNop(), "meditar cada día", time.Second, func(s *Suggestion) {
		done <- s
	})

	select {
	case s := <-done:
		if s.Title != "Meditar" || s.Type != model.GoalTypeHabit {
			t.Errorf("suggestion = %+v", s)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("suggestion never delivered")
	}
}

func TestAsync_NoopNeverDelivers(t *testing.T) {
	called := make(chan struct{}, 1)
	Async(Noop(), log.NewNop(), "algo", 50*time.Millisecond, func(*Suggestion) { called <- struct{}{} })
	select {
	case <-called:
		t.Fatal("noop suggester delivered a suggestion")
	case <-time.After(100 * time.Millisecond):
	}
}
