package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pacekeeper/config"
	"pacekeeper/internal/tracker"
	"pacekeeper/internal/tracker/repository"
	sqliteRepo "pacekeeper/internal/tracker/repository/sqlite"
	trackerUC "pacekeeper/internal/tracker/usecase"
	"pacekeeper/pkg/datemath"
	"pacekeeper/pkg/log"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// globals holds the persistent flags shared by every subcommand.
type globals struct {
	dsn      string
	timezone string
	output   string
	verbose  bool

	now func() time.Time
}

// session is one opened store plus the use case over it.
type session struct {
	db    *sql.DB
	repo  repository.Repository
	uc    tracker.UseCase
	dates *datemath.Parser
	l     log.Logger
	now   func() time.Time
}

func (s *session) Close() error { return s.db.Close() }

func (s *session) today() datemath.Date { return s.dates.Today(s.now()) }

func newRootCmd() *cobra.Command {
	return buildRootCmd(&globals{now: time.Now})
}

func buildRootCmd(g *globals) *cobra.Command {
	root := &cobra.Command{
		Use:   "pacectl",
		Short: "Track goal sessions and see where your pace lands you",
		Long: `pacectl reads and writes the same store as the Pacekeeper API.

Commands:
  status    Goals overview and today's plan
  plan      Dashboard of one goal: progress, ETA and scenarios
  log       Log a session or quick-add minutes
  migrate   Upgrade legacy stored data in place
  import    Load a browser storage dump
  calendar-auth  Authorize Google Calendar export`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch g.output {
			case outputText, outputJSON, outputYAML:
				return nil
			}
			return fmt.Errorf("unknown output %q (text, json, yaml)", g.output)
		},
	}
	root.PersistentFlags().StringVar(&g.dsn, "dsn", "", "SQLite database path (default: storage.dsn from config)")
	root.PersistentFlags().StringVar(&g.timezone, "timezone", "", "Location whose calendar days are counted (default: calendar.timezone from config)")
	root.PersistentFlags().StringVarP(&g.output, "output", "o", outputText, "Output format (text, json, yaml)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log to stderr")

	root.AddCommand(
		newStatusCmd(g),
		newPlanCmd(g),
		newLogCmd(g),
		newMigrateCmd(g),
		newImportCmd(g),
		newCalendarAuthCmd(),
	)
	return root
}

// open resolves flags against the config file and opens the store.
func (g *globals) open(ctx context.Context) (*session, error) {
	dsn, tz := g.dsn, g.timezone
	if dsn == "" || tz == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		if dsn == "" {
			dsn = cfg.Storage.DSN
		}
		if tz == "" {
			tz = cfg.Calendar.Timezone
		}
	}

	dates, err := datemath.NewParser(tz)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", tz, err)
	}

	l := log.NewNop()
	if g.verbose {
		l = log.Init(log.ZapConfig{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole})
	}

	db, err := sqliteRepo.Open(ctx, dsn)
	if err != nil {
		return nil, err
	}
	repo := sqliteRepo.New(db, l)
	uc := trackerUC.New(repo, l, trackerUC.Options{Dates: dates, Now: g.now})

	return &session{db: db, repo: repo, uc: uc, dates: dates, l: l, now: g.now}, nil
}

// render writes v as JSON or YAML, or calls text for the human format.
func (g *globals) render(w io.Writer, v any, text func(io.Writer)) error {
	switch g.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}
