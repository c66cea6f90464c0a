package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pacekeeper/config"
	_ "pacekeeper/docs" // Swagger docs
	"pacekeeper/internal/httpserver"
	"pacekeeper/internal/middleware"
	"pacekeeper/internal/migrate"
	"pacekeeper/internal/schedule"
	"pacekeeper/internal/suggest"
	sqliteRepo "pacekeeper/internal/tracker/repository/sqlite"
	trackerUC "pacekeeper/internal/tracker/usecase"
	"pacekeeper/pkg/datemath"
	"pacekeeper/pkg/gcalendar"
	"pacekeeper/pkg/gemini"
	"pacekeeper/pkg/log"
)

// @title       Pacekeeper API
// @description Goal pacing tracker: sessions, streaks, ETA projection and a guided goal wizard.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Pacekeeper...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Calendar dates
	dates, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Calendar.Timezone, err)
		dates, _ = datemath.NewParser("UTC")
	}

	// 4. Storage
	db, err := sqliteRepo.Open(ctx, cfg.Storage.DSN)
	if err != nil {
		logger.Errorf(ctx, "Failed to open storage: %v", err)
		os.Exit(1)
	}
	defer db.Close()
	repo := sqliteRepo.New(db, logger)

	res, err := migrate.Run(ctx, repo, logger, dates.Today(time.Now()))
	if err != nil {
		logger.Errorf(ctx, "Failed to migrate stored data: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Storage ready (seeded=%t legacy=%t sessions=%d)", res.GoalSeeded, res.GoalFromLegacy, res.SessionsImported)

	// 5. Optional integrations
	opt := trackerUC.Options{
		Dates:          dates,
		SuggestTimeout: cfg.Suggest.Timeout,
		WizardTTL:      cfg.Wizard.TTL,
		MaxFlows:       cfg.Wizard.MaxFlows,
		Suggester:      newSuggester(ctx, cfg, logger),
		Exporter:       newExporter(ctx, cfg, dates, logger),
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		RateLimit:      middleware.Config{RequestsPerMin: cfg.RateLimit.RequestsPerMin},
		Repository:     repo,
		TrackerOptions: opt,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func newSuggester(ctx context.Context, cfg *config.Config, logger log.Logger) suggest.Suggester {
	if !cfg.Suggest.Enabled {
		logger.Info(ctx, "AI suggestions disabled")
		return suggest.Noop()
	}
	llm, err := gemini.New(gemini.Config{
		APIKey:  cfg.Suggest.APIKey,
		Model:   cfg.Suggest.Model,
		Timeout: cfg.Suggest.Timeout,
	})
	if err != nil {
		logger.Warnf(ctx, "Gemini not available, suggestions disabled: %v", err)
		return suggest.Noop()
	}
	logger.Infof(ctx, "AI suggestions enabled (model %s)", llm.Model())
	return suggest.NewGemini(llm, logger)
}

func newExporter(ctx context.Context, cfg *config.Config, dates *datemath.Parser, logger log.Logger) *schedule.Exporter {
	gc := cfg.GoogleCalendar
	scfg := schedule.Config{
		CalendarID:   gc.CalendarID,
		SessionStart: gc.SessionStart,
		Location:     dates.Location(),
	}
	if !gc.Enabled() {
		logger.Info(ctx, "Google Calendar export disabled")
		return schedule.New(nil, scfg, logger)
	}
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, gc.CredentialsPath, gc.TokenPath)
	if err != nil {
		logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return schedule.New(nil, scfg, logger)
	}
	logger.Info(ctx, "Google Calendar export enabled")
	return schedule.New(client, scfg, logger)
}
