package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/bnema/dockenv/internal/domain"
)

// Teardown steps.
const (
	StepStop         = "stop"
	StepRemove       = "remove"
	StepRemoveVolume = "remove-volume"
)

// Teardown stops and removes every container, then removes every volume.
// A failed step never stops the ones after it. Resources that are already
// gone are skipped. The aggregated error is returned only when
// StrictTeardown is set; the report always lists every failure.
func (s *Service) Teardown(ctx context.Context, req domain.TeardownRequest) (*domain.TeardownReport, error) {
	log := s.log.With("action", "Teardown", "containers", len(req.Containers), "volumes", len(req.Volumes))

	report := &domain.TeardownReport{}
	var errs error
	record := func(step, target string, err error) {
		if errors.Is(err, domain.ErrNotFound) {
			log.Debug("already gone", "step", step, "target", target)
			return
		}
		log.Error("teardown step failed", "step", step, "target", target, "err", err)
		report.Failures = append(report.Failures, domain.TeardownFailure{Step: step, Target: target, Err: err})
		errs = multierr.Append(errs, fmt.Errorf("%s %s: %w", step, target, err))
	}

	for _, h := range req.Containers {
		target := h.Name
		if target == "" {
			target = h.ID
		}

		if err := s.engine.StopContainer(ctx, h.ID, s.config.StopGrace); err != nil {
			record(StepStop, target, err)
		}
		opts := domain.RemoveOptions{RemoveVolumes: req.RemoveVolumes, Force: req.Force}
		if err := s.engine.RemoveContainer(ctx, h.ID, opts); err != nil {
			record(StepRemove, target, err)
		}
	}

	for _, name := range req.Volumes {
		if err := s.engine.RemoveVolume(ctx, name, req.Force); err != nil {
			record(StepRemoveVolume, name, err)
		}
	}

	if !report.OK() {
		log.Warn("teardown finished with failures", "failures", len(report.Failures))
	} else {
		log.Info("teardown complete")
	}

	if s.config.StrictTeardown {
		return report, errs
	}
	return report, nil
}
