package http

import (
	"time"

	"github.com/MKhiriev/go-budget-keeper/internal/logger"
	"github.com/MKhiriev/go-budget-keeper/internal/store"
)

// StatusReporter is the slice of the repository the ops endpoints read from.
type StatusReporter interface {
	IsInitialized() bool
	LastSyncFor(kind store.Kind) (time.Time, bool)
	Cursor(kind store.Kind) (int64, bool)
}

type Handler struct {
	repo    StatusReporter
	version string

	logger *logger.Logger
}

func NewHandler(repo StatusReporter, version string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		repo:    repo,
		version: version,
		logger:  logger,
	}
}
