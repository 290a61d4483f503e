// Package orchestrator implements the container resource orchestration use case.
package orchestrator

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/dockenv/internal/boundaries/in"
	"github.com/bnema/dockenv/internal/boundaries/out"
	"github.com/bnema/dockenv/internal/domain"
)

// Config holds configuration needed by the orchestrator service.
type Config struct {
	StopGrace      time.Duration // grace period before a stopped container is killed
	StrictStart    bool          // return ErrStartFailed instead of logging
	StrictTeardown bool          // return stop/remove errors instead of logging
	SessionID      string        // generated when empty
}

// Service implements the Orchestrator interface.
type Service struct {
	engine out.ContainerEngine
	log    *log.Logger
	config Config

	// In-process ensure calls for the same name share one round trip.
	containerFlight singleflight.Group
	networkFlight   singleflight.Group
	volumeFlight    singleflight.Group
	imageFlight     singleflight.Group
}

var _ in.Orchestrator = (*Service)(nil)

// NewService creates a new orchestrator service.
func NewService(engine out.ContainerEngine, logger *log.Logger, config Config) *Service {
	if config.StopGrace <= 0 {
		config.StopGrace = domain.DefaultStopGrace
	}
	if config.SessionID == "" {
		config.SessionID = uuid.NewString()
	}
	if logger == nil {
		logger = log.Default()
	}

	return &Service{
		engine: engine,
		log:    logger.With("usecase", "orchestrator"),
		config: config,
	}
}

// SessionID returns the id stamped on every resource this service creates.
func (s *Service) SessionID() string {
	return s.config.SessionID
}

// labels returns extra with the session labels applied on top.
func (s *Service) labels(extra map[string]string) map[string]string {
	return domain.MergeLabels(extra, domain.ManagedLabels(s.config.SessionID))
}

// cleanupErr applies the teardown policy to a failed cleanup step: the error
// is always logged and only returned in strict mode.
func (s *Service) cleanupErr(logger *log.Logger, err error, msg string) error {
	logger.Error(msg, "err", err)
	if s.config.StrictTeardown {
		return err
	}
	return nil
}
