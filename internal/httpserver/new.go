package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"pacekeeper/internal/middleware"
	"pacekeeper/internal/tracker/repository"
	trackerUC "pacekeeper/internal/tracker/usecase"
	"pacekeeper/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Tracker domain
	repo           repository.Repository
	trackerOptions trackerUC.Options
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	RateLimit   middleware.Config

	// Tracker domain
	Repository     repository.Repository
	TrackerOptions trackerUC.Options
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             middleware.New(logger, cfg.RateLimit),
		repo:           cfg.Repository,
		trackerOptions: cfg.TrackerOptions,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.repo == nil {
		return errors.New("repository is required")
	}
	return nil
}
