package http

import (
	"pacekeeper/internal/tracker"
	"pacekeeper/pkg/log"
)

type handler struct {
	l  log.Logger
	uc tracker.UseCase
}

// New creates the HTTP handler for the tracker domain.
func New(l log.Logger, uc tracker.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
