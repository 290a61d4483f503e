package orchestrator

import (
	"context"
	"fmt"

	"github.com/bnema/dockenv/internal/domain"
)

// EnsureImage makes ref available locally, pulling it when absent. It reports
// whether a pull happened.
func (s *Service) EnsureImage(ctx context.Context, ref string) (bool, error) {
	if ref == "" {
		return false, fmt.Errorf("image reference is required: %w", domain.ErrInvalidArgument)
	}

	v, err, _ := s.imageFlight.Do(ref, func() (any, error) {
		return s.ensureImage(ctx, ref)
	})
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (s *Service) ensureImage(ctx context.Context, ref string) (bool, error) {
	log := s.log.With("action", "EnsureImage", "image", ref)

	present, err := s.engine.ImageExists(ctx, ref)
	if err != nil {
		return false, fmt.Errorf("look up image %q: %w", ref, err)
	}
	if present {
		log.Debug("image already present")
		return false, nil
	}

	log.Info("image not present locally, pulling")
	if err := s.engine.PullImage(ctx, ref); err != nil {
		log.Error("failed to pull image", "err", err)
		return false, fmt.Errorf("pull image %q: %w", ref, err)
	}
	return true, nil
}
