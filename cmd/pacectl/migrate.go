package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pacekeeper/internal/migrate"
)

type migrateView struct {
	Imported       int  `json:"imported,omitempty" yaml:"imported,omitempty"`
	GoalSeeded     bool `json:"goalSeeded"         yaml:"goal_seeded"`
	GoalFromLegacy bool `json:"goalFromLegacy"     yaml:"goal_from_legacy"`
	Sessions       int  `json:"sessionsImported"   yaml:"sessions_imported"`
}

func newMigrateCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Upgrade legacy stored data in place",
		Long: `Upgrade legacy stored data in place.

A single legacy goal (or writing project) becomes the first entry of the goal
list and its flat session history moves under that goal. Current data is
never touched, so running migrate twice is safe.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := g.open(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			res, err := migrate.Run(ctx, s.repo, s.l, s.today())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			view := migrateView{GoalSeeded: res.GoalSeeded, GoalFromLegacy: res.GoalFromLegacy, Sessions: res.SessionsImported}
			return g.render(cmd.OutOrStdout(), view, func(w io.Writer) { printMigrate(w, view) })
		},
	}
}

func newImportCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dump.json>",
		Short: "Load a browser storage dump, then migrate it",
		Long: `Load a JSON object of browser storage keys into the store.

Only keys with the writerDashboard_ prefix are kept. The imported data is
migrated right away.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read dump: %w", err)
			}

			ctx := cmd.Context()
			s, err := g.open(ctx)
			if err != nil {
				return err
			}
			defer s.Close()

			n, err := migrate.ImportDump(ctx, s.repo, data)
			if err != nil {
				return fmt.Errorf("import: %w", err)
			}
			res, err := migrate.Run(ctx, s.repo, s.l, s.today())
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			view := migrateView{Imported: n, GoalSeeded: res.GoalSeeded, GoalFromLegacy: res.GoalFromLegacy, Sessions: res.SessionsImported}
			return g.render(cmd.OutOrStdout(), view, func(w io.Writer) { printMigrate(w, view) })
		},
	}
}

func printMigrate(w io.Writer, v migrateView) {
	if v.Imported > 0 {
		fmt.Fprintf(w, "Imported %d keys.\n", v.Imported)
	}
	switch {
	case v.GoalFromLegacy:
		fmt.Fprintf(w, "Migrated the legacy goal and %d sessions.\n", v.Sessions)
	case v.GoalSeeded:
		fmt.Fprintln(w, "No goals found, seeded the starter goal.")
	default:
		fmt.Fprintln(w, "Data is already current, nothing to do.")
	}
}
