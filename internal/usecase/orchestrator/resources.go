package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/dockenv/internal/domain"
)

// EnsureNetwork returns the network called name, creating a bridge network if absent.
func (s *Service) EnsureNetwork(ctx context.Context, name string) (domain.NetworkHandle, error) {
	if name == "" {
		return domain.NetworkHandle{}, fmt.Errorf("network name is required: %w", domain.ErrInvalidArgument)
	}

	v, err, _ := s.networkFlight.Do(name, func() (any, error) {
		return s.ensureNetwork(ctx, name)
	})
	if err != nil {
		return domain.NetworkHandle{}, err
	}
	return v.(domain.NetworkHandle), nil
}

func (s *Service) ensureNetwork(ctx context.Context, name string) (domain.NetworkHandle, error) {
	log := s.log.With("action", "EnsureNetwork", "network", name)

	existing, err := s.findNetwork(ctx, name)
	if err != nil {
		return domain.NetworkHandle{}, err
	}
	if existing != nil {
		log.Debug("network already exists", "id", existing.ID)
		return domain.NetworkHandle{ID: existing.ID, Name: name}, nil
	}

	id, err := s.engine.CreateNetwork(ctx, name, s.labels(nil))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			log.Warn("name conflict on create, fetching existing network", "err", err)
			if existing, findErr := s.findNetwork(ctx, name); findErr == nil && existing != nil {
				return domain.NetworkHandle{ID: existing.ID, Name: name}, nil
			}
		}
		log.Error("failed to create network", "err", err)
		return domain.NetworkHandle{}, fmt.Errorf("create network %q: %w", name, err)
	}

	log.Info("network created", "id", id)
	return domain.NetworkHandle{ID: id, Name: name}, nil
}

// findNetwork returns nil without error when no network is called name.
func (s *Service) findNetwork(ctx context.Context, name string) (*domain.NetworkInfo, error) {
	networks, err := s.engine.ListNetworks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list networks: %w", err)
	}
	for _, n := range networks {
		if n.Name == name {
			return n, nil
		}
	}
	return nil, nil
}

// EnsureVolume returns the volume called name, creating it if absent.
func (s *Service) EnsureVolume(ctx context.Context, name string) (domain.VolumeHandle, error) {
	if name == "" {
		return domain.VolumeHandle{}, fmt.Errorf("volume name is required: %w", domain.ErrInvalidArgument)
	}

	v, err, _ := s.volumeFlight.Do(name, func() (any, error) {
		return s.ensureVolume(ctx, name)
	})
	if err != nil {
		return domain.VolumeHandle{}, err
	}
	return v.(domain.VolumeHandle), nil
}

func (s *Service) ensureVolume(ctx context.Context, name string) (domain.VolumeHandle, error) {
	log := s.log.With("action", "EnsureVolume", "volume", name)

	existing, err := s.findVolume(ctx, name)
	if err != nil {
		return domain.VolumeHandle{}, err
	}
	if existing != nil {
		log.Debug("volume already exists", "driver", existing.Driver)
		return domain.VolumeHandle{Name: existing.Name}, nil
	}

	created, err := s.engine.CreateVolume(ctx, name, s.labels(nil))
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			log.Warn("name conflict on create, fetching existing volume", "err", err)
			if existing, findErr := s.findVolume(ctx, name); findErr == nil && existing != nil {
				return domain.VolumeHandle{Name: existing.Name}, nil
			}
		}
		log.Error("failed to create volume", "err", err)
		return domain.VolumeHandle{}, fmt.Errorf("create volume %q: %w", name, err)
	}

	log.Info("volume created")
	return domain.VolumeHandle{Name: created}, nil
}

// RemoveVolume deletes the volume called name. It reports false when no such
// volume exists. Engine failures follow the teardown policy.
func (s *Service) RemoveVolume(ctx context.Context, name string) (bool, error) {
	log := s.log.With("action", "RemoveVolume", "volume", name)

	existing, err := s.findVolume(ctx, name)
	if err != nil {
		return false, s.cleanupErr(log, err, "failed to look up volume")
	}
	if existing == nil {
		log.Debug("volume not found")
		return false, nil
	}

	if err := s.engine.RemoveVolume(ctx, name, false); err != nil {
		return false, s.cleanupErr(log, fmt.Errorf("remove volume %q: %w", name, err), "failed to remove volume")
	}

	log.Info("volume removed")
	return true, nil
}

// findVolume returns nil without error when no volume is called name.
func (s *Service) findVolume(ctx context.Context, name string) (*domain.VolumeInfo, error) {
	volumes, err := s.engine.ListVolumes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list volumes: %w", err)
	}
	for _, v := range volumes {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, nil
}
