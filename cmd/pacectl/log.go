package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pacekeeper/internal/tracker"
	"pacekeeper/pkg/datemath"
)

type logView struct {
	GoalID    string        `json:"goalId"    yaml:"goal_id"`
	SessionID string        `json:"sessionId" yaml:"session_id"`
	Date      datemath.Date `json:"date"      yaml:"date"`
	Minutes   float64       `json:"minutes"   yaml:"minutes"`
	Value     *float64      `json:"value"     yaml:"value"`
	Estimated bool          `json:"estimated" yaml:"estimated"`
	Streak    int           `json:"streak"    yaml:"streak"`
	Unit      string        `json:"unit"      yaml:"unit"`
}

func newLogCmd(g *globals) *cobra.Command {
	var (
		goalID  string
		hours   string
		value   string
		date    string
		minutes float64
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a session against a goal",
		Long: `Log a session against a goal (default: the selected goal).

Examples:
  pacectl log --hours 1,5
  pacectl log --hours 2 --value "250 palabras"
  pacectl log --minutes 15 --goal goal_123
  pacectl log --hours 1 --date ayer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (hours == "") == (minutes == 0) {
				return errors.New("pass exactly one of --hours or --minutes")
			}

			ctx := cmd.Context()
			s, err := g.open(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			var out tracker.LogSessionOutput
			if hours != "" {
				out, err = s.uc.LogSession(ctx, tracker.LogSessionInput{GoalID: goalID, Hours: hours, Value: value, Date: date})
			} else {
				out, err = s.uc.QuickAdd(ctx, tracker.QuickAddInput{GoalID: goalID, Minutes: minutes, Date: date})
			}
			if err != nil {
				return fmt.Errorf("log session: %w", err)
			}

			view := logView{
				GoalID:    out.Goal.ID,
				SessionID: out.Session.ID,
				Date:      out.Session.Date,
				Minutes:   out.Session.Minutes,
				Value:     out.Session.Value,
				Estimated: out.Session.IsEstimated,
				Streak:    out.Streak.Current,
				Unit:      out.Goal.UnitName,
			}
			return g.render(cmd.OutOrStdout(), view, func(w io.Writer) { printLog(w, view) })
		},
	}

	cmd.Flags().StringVarP(&goalID, "goal", "g", "", "Goal id (default: the selected goal)")
	cmd.Flags().StringVar(&hours, "hours", "", "Hours worked, decimal comma accepted")
	cmd.Flags().StringVar(&value, "value", "", "Units produced (optional, estimated from the rate when empty)")
	cmd.Flags().Float64Var(&minutes, "minutes", 0, "Quick add minutes instead of hours")
	cmd.Flags().StringVar(&date, "date", "", "Session day: YYYY-MM-DD, hoy, ayer or \"last monday\" (default: today)")
	return cmd
}

func printLog(w io.Writer, v logView) {
	fmt.Fprintf(w, "Sesión registrada: %.0f min", v.Minutes)
	if v.Value != nil {
		est := ""
		if v.Estimated {
			est = " (est.)"
		}
		fmt.Fprintf(w, ", %.0f %s%s", *v.Value, v.Unit, est)
	}
	fmt.Fprintf(w, "\nRacha actual: %d\n", v.Streak)
}
