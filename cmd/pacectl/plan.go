package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pacekeeper/internal/tracker"
)

type scenarioLine struct {
	Modifier    float64 `json:"modifier"    yaml:"modifier"`
	Description string  `json:"description" yaml:"description"`
	ETA         string  `json:"eta"         yaml:"eta"`
}

type planView struct {
	ID         string         `json:"id"         yaml:"id"`
	Title      string         `json:"title"      yaml:"title"`
	Type       string         `json:"type"       yaml:"type"`
	Progress   int            `json:"progress"   yaml:"progress"`
	Status     string         `json:"status"     yaml:"status"`
	ETA        string         `json:"eta"        yaml:"eta"`
	ETADays    *int           `json:"etaDays"    yaml:"eta_days"`
	Speed      string         `json:"speed"      yaml:"speed"`
	Streak     int            `json:"streak"     yaml:"streak"`
	Longest    int            `json:"longest"    yaml:"longest"`
	WeekDone   int            `json:"weekDone"   yaml:"week_done"`
	WeekPlan   int            `json:"weekPlan"   yaml:"week_plan"`
	Today      string         `json:"today"      yaml:"today"`
	SkipExtra  int            `json:"skipExtra"  yaml:"skip_extra"`
	Scenarios  []scenarioLine `json:"scenarios"  yaml:"scenarios"`
	Sessions   int            `json:"sessions"   yaml:"sessions"`
	Paused     bool           `json:"paused"     yaml:"paused"`
}

func newPlanCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "plan [goal-id]",
		Short: "Dashboard of one goal (default: the selected goal)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := g.open(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			var id string
			if len(args) == 1 {
				id = args[0]
			}
			out, err := s.uc.Dashboard(ctx, tracker.DashboardInput{GoalID: id})
			if err != nil {
				return fmt.Errorf("dashboard: %w", err)
			}

			view := newPlanView(out)
			return g.render(cmd.OutOrStdout(), view, func(w io.Writer) { printPlan(w, view) })
		},
	}
}

func newPlanView(o tracker.DashboardOutput) planView {
	v := planView{
		ID:         o.Goal.ID,
		Title:      o.Goal.Title,
		Type:       tracker.TypeLabel(o.Goal.Type),
		Progress:   o.Progress.Percent,
		Status:     o.Status.Label,
		ETA:        o.ETA,
		ETADays:    o.ETADays,
		Speed:      fmt.Sprintf("%s %.0f", o.Speed.Label, o.Speed.Value),
		Streak:     o.Streak.Current,
		Longest:    o.Streak.Longest,
		WeekDone:   o.Weekly.CompletedSessions,
		WeekPlan:   o.Weekly.PlannedSessions,
		Today:      o.Today.SuggestionText,
		Sessions:   len(o.Sessions),
		Paused:     o.Goal.Paused,
	}
	if o.Skip.Available {
		v.SkipExtra = o.Skip.ExtraDays
	}
	for _, sc := range o.Scenarios {
		v.Scenarios = append(v.Scenarios, scenarioLine{Modifier: sc.Modifier, Description: sc.Description, ETA: sc.ETA})
	}
	return v
}

func printPlan(w io.Writer, v planView) {
	fmt.Fprintf(w, "%s  %s\n", v.Type, v.Title)
	if v.Paused {
		fmt.Fprintln(w, "(en pausa)")
	}
	fmt.Fprintf(w, "Progreso: %d%%  %s\n", v.Progress, v.Status)
	fmt.Fprintf(w, "Llegada estimada: %s\n", v.ETA)
	fmt.Fprintf(w, "Velocidad: %s\n", v.Speed)
	fmt.Fprintf(w, "Racha: %d (máx %d)\n", v.Streak, v.Longest)
	fmt.Fprintf(w, "Semana: %d/%d sesiones\n", v.WeekDone, v.WeekPlan)
	if v.Today != "" {
		fmt.Fprintf(w, "Hoy: %s\n", v.Today)
	}
	if v.SkipExtra > 0 {
		fmt.Fprintf(w, "Saltarte hoy retrasa la meta %d días.\n", v.SkipExtra)
	}
	if len(v.Scenarios) > 0 {
		fmt.Fprintln(w, "Escenarios:")
		for _, sc := range v.Scenarios {
			fmt.Fprintf(w, "  %-24s %s\n", sc.Description, sc.ETA)
		}
	}
}
