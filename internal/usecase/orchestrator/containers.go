package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/dockenv/internal/domain"
)

// EnsureContainer returns the container named spec.Name, creating it if absent.
// An existing container is returned as is, whatever its state or config.
func (s *Service) EnsureContainer(ctx context.Context, spec *domain.ContainerSpec) (domain.ContainerHandle, error) {
	if spec == nil || spec.Name == "" {
		return domain.ContainerHandle{}, fmt.Errorf("container name is required: %w", domain.ErrInvalidArgument)
	}
	if spec.Image == "" {
		return domain.ContainerHandle{}, fmt.Errorf("container %q: image is required: %w", spec.Name, domain.ErrInvalidArgument)
	}

	v, err, shared := s.containerFlight.Do(spec.Name, func() (any, error) {
		return s.ensureContainer(ctx, spec)
	})
	if err != nil {
		return domain.ContainerHandle{}, err
	}
	if shared {
		s.log.Debug("ensure coalesced with concurrent call", "container_name", spec.Name)
	}
	return v.(domain.ContainerHandle), nil
}

func (s *Service) ensureContainer(ctx context.Context, spec *domain.ContainerSpec) (domain.ContainerHandle, error) {
	log := s.log.With("action", "EnsureContainer", "container_name", spec.Name)

	existing, err := s.FindContainer(ctx, spec.Name)
	switch {
	case err == nil:
		log.Info("container already exists", "id", existing.ID, "state", existing.State)
		return domain.ContainerHandle{ID: existing.ID, Name: spec.Name}, nil
	case !errors.Is(err, domain.ErrNotFound):
		return domain.ContainerHandle{}, err
	}

	if spec.Network != "" {
		if _, err := s.EnsureNetwork(ctx, spec.Network); err != nil {
			return domain.ContainerHandle{}, fmt.Errorf("container %q: %w", spec.Name, err)
		}
	}

	create := *spec
	create.Labels = s.labels(spec.Labels)

	id, err := s.engine.CreateContainer(ctx, &create)
	if err != nil {
		// Another process may have created it between our list and create.
		if errors.Is(err, domain.ErrConflict) {
			log.Warn("name conflict on create, fetching existing container", "err", err)
			if existing, findErr := s.FindContainer(ctx, spec.Name); findErr == nil {
				return domain.ContainerHandle{ID: existing.ID, Name: spec.Name}, nil
			}
		}
		log.Error("failed to create container", "image", spec.Image, "err", err)
		return domain.ContainerHandle{}, fmt.Errorf("create container %q: %w", spec.Name, err)
	}

	log.Info("container created", "id", id, "image", spec.Image)
	return domain.ContainerHandle{ID: id, Name: spec.Name}, nil
}

// FindContainer returns the container called name, running or not.
func (s *Service) FindContainer(ctx context.Context, name string) (*domain.Container, error) {
	name = strings.TrimPrefix(name, "/")
	if name == "" {
		return nil, fmt.Errorf("container name is required: %w", domain.ErrInvalidArgument)
	}

	containers, err := s.engine.ListContainers(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list containers: %w", err)
	}
	for _, c := range containers {
		if c.HasName(name) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("container %q: %w", name, domain.ErrNotFound)
}

// Start starts a container. An engine failure yields StartFailed, and is
// returned as ErrStartFailed only when StrictStart is set.
func (s *Service) Start(ctx context.Context, handle domain.ContainerHandle) (domain.StartResult, error) {
	log := s.log.With("action", "Start", "container_name", handle.Name, "id", handle.ID)

	started, err := s.engine.StartContainer(ctx, handle.ID)
	if err != nil {
		log.Error("failed to start container", "err", err)
		if s.config.StrictStart {
			return domain.StartFailed, fmt.Errorf("start container %q: %w: %w", handle.Name, domain.ErrStartFailed, err)
		}
		return domain.StartFailed, nil
	}

	if !started {
		log.Info("container already running")
		return domain.AlreadyRunning, nil
	}

	log.Info("container started")
	return domain.Started, nil
}

// Stop stops a container, killing it once the grace period has passed.
func (s *Service) Stop(ctx context.Context, handle domain.ContainerHandle) error {
	log := s.log.With("action", "Stop", "container_name", handle.Name, "id", handle.ID)

	if err := s.engine.StopContainer(ctx, handle.ID, s.config.StopGrace); err != nil {
		return s.cleanupErr(log, fmt.Errorf("stop container %q: %w", handle.Name, err), "failed to stop container")
	}

	log.Info("container stopped", "grace", s.config.StopGrace)
	return nil
}

// Remove removes a container.
func (s *Service) Remove(ctx context.Context, handle domain.ContainerHandle, opts domain.RemoveOptions) error {
	log := s.log.With("action", "Remove", "container_name", handle.Name, "id", handle.ID)

	if err := s.engine.RemoveContainer(ctx, handle.ID, opts); err != nil {
		return s.cleanupErr(log, fmt.Errorf("remove container %q: %w", handle.Name, err), "failed to remove container")
	}

	log.Info("container removed", "force", opts.Force, "remove_volumes", opts.RemoveVolumes)
	return nil
}
