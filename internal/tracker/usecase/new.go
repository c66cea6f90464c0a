package usecase

import (
	"fmt"
	"sync"
	"time"

	"pacekeeper/internal/schedule"
	"pacekeeper/internal/suggest"
	"pacekeeper/internal/tracker"
	"pacekeeper/internal/tracker/repository"
	"pacekeeper/pkg/datemath"
	"pacekeeper/pkg/log"
)

const (
	DefaultWizardTTL      = 30 * time.Minute
	DefaultMaxFlows       = 128
	DefaultSuggestTimeout = 10 * time.Second
)

// Options holds the optional collaborators. Zero values fall back to sane defaults.
type Options struct {
	Dates          *datemath.Parser
	Now            func() time.Time
	Suggester      suggest.Suggester
	SuggestTimeout time.Duration
	Exporter       *schedule.Exporter
	WizardTTL      time.Duration
	MaxFlows       int
}

// implUseCase is the private implementation of tracker.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	dates *datemath.Parser
	now   func() time.Time

	suggester      suggest.Suggester
	suggestTimeout time.Duration
	exporter       *schedule.Exporter

	// mu serializes read-modify-write cycles over the stored snapshot.
	mu    sync.Mutex
	flows *flowStore
}

// New creates a new tracker UseCase implementation.
func New(repo repository.Repository, l log.Logger, opt Options) *implUseCase {
	if opt.Dates == nil {
		opt.Dates, _ = datemath.NewParser("Local")
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.Suggester == nil {
		opt.Suggester = suggest.Noop()
	}
	if opt.SuggestTimeout <= 0 {
		opt.SuggestTimeout = DefaultSuggestTimeout
	}
	if opt.WizardTTL <= 0 {
		opt.WizardTTL = DefaultWizardTTL
	}
	if opt.MaxFlows <= 0 {
		opt.MaxFlows = DefaultMaxFlows
	}

	return &implUseCase{
		repo:           repo,
		l:              l,
		dates:          opt.Dates,
		now:            opt.Now,
		suggester:      opt.Suggester,
		suggestTimeout: opt.SuggestTimeout,
		exporter:       opt.Exporter,
		flows:          newFlowStore(opt.MaxFlows, opt.WizardTTL),
	}
}

func (uc *implUseCase) today() datemath.Date {
	return uc.dates.Today(uc.now())
}

// parseDay resolves an ISO date or a relative phrase ("hoy", "ayer", "en 3 dias") against now.
func (uc *implUseCase) parseDay(raw string, now time.Time) (datemath.Date, error) {
	d, err := uc.dates.Parse(raw, now)
	if err != nil {
		return datemath.Date{}, fmt.Errorf("%w: %q", tracker.ErrInvalidDate, raw)
	}
	return d, nil
}
