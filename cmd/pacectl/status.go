package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pacekeeper/pkg/datemath"
)

type goalLine struct {
	ID       string `json:"id"       yaml:"id"`
	Title    string `json:"title"    yaml:"title"`
	Type     string `json:"type"     yaml:"type"`
	Progress int    `json:"progress" yaml:"progress"`
	Status   string `json:"status"   yaml:"status"`
	Streak   int    `json:"streak"   yaml:"streak"`
	Selected bool   `json:"selected" yaml:"selected"`
}

type todayLine struct {
	GoalID           string  `json:"goalId"           yaml:"goal_id"`
	Title            string  `json:"title"            yaml:"title"`
	IsWorkDay        bool    `json:"isWorkDay"        yaml:"is_work_day"`
	PlannedMinutes   float64 `json:"plannedMinutes"   yaml:"planned_minutes"`
	CompletedMinutes float64 `json:"completedMinutes" yaml:"completed_minutes"`
	RemainingMinutes float64 `json:"remainingMinutes" yaml:"remaining_minutes"`
	Suggestion       string  `json:"suggestion"       yaml:"suggestion"`
}

type statusView struct {
	Date  datemath.Date `json:"date"  yaml:"date"`
	Goals []goalLine    `json:"goals" yaml:"goals"`
	Today []todayLine   `json:"today" yaml:"today"`
}

func newStatusCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Goals overview and today's plan",
		Aliases: []string{"st"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := g.open(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			list, err := s.uc.ListGoals(ctx)
			if err != nil {
				return fmt.Errorf("list goals: %w", err)
			}
			today, err := s.uc.Today(ctx)
			if err != nil {
				return fmt.Errorf("today: %w", err)
			}

			view := statusView{Date: today.Date}
			for _, c := range list.Goals {
				view.Goals = append(view.Goals, goalLine{
					ID:       c.Goal.ID,
					Title:    c.Goal.Title,
					Type:     c.TypeLabel,
					Progress: c.Progress.Percent,
					Status:   c.Status.Label,
					Streak:   c.Streak.Current,
					Selected: c.Selected,
				})
			}
			for _, it := range today.Items {
				view.Today = append(view.Today, todayLine{
					GoalID:           it.GoalID,
					Title:            it.Title,
					IsWorkDay:        it.IsWorkDay,
					PlannedMinutes:   it.PlannedMinutes,
					CompletedMinutes: it.CompletedMinutes,
					RemainingMinutes: it.RemainingMinutes,
					Suggestion:       it.SuggestionText,
				})
			}

			return g.render(cmd.OutOrStdout(), view, func(w io.Writer) { printStatus(w, view) })
		},
	}
}

func printStatus(w io.Writer, v statusView) {
	fmt.Fprintf(w, "Hoy: %s\n\n", datemath.FormatLong(v.Date))

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tMETA\tTIPO\tPROGRESO\tESTADO\tRACHA")
	for _, gl := range v.Goals {
		mark := ""
		if gl.Selected {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d%%\t%s\t%d\n", mark, gl.ID, gl.Title, gl.Type, gl.Progress, gl.Status, gl.Streak)
	}
	tw.Flush()

	fmt.Fprintln(w)
	for _, t := range v.Today {
		fmt.Fprintf(w, "- %s: %s\n", t.Title, t.Suggestion)
	}
}
