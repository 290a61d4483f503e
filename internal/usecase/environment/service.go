// Package environment implements bringing whole environments up and down.
package environment

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/dockenv/internal/boundaries/in"
	"github.com/bnema/dockenv/internal/domain"
)

// Service implements the EnvironmentService interface on top of an orchestrator.
type Service struct {
	orchestrator in.Orchestrator
	log          *log.Logger
}

var _ in.EnvironmentService = (*Service)(nil)

// NewService creates a new environment service.
func NewService(orchestrator in.Orchestrator, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		orchestrator: orchestrator,
		log:          logger.With("usecase", "environment"),
	}
}

// Up ensures the network, volumes and containers, starts every container and
// then runs each container's copy and exec steps in declaration order. The
// first failing state-establishing step aborts. Start failures under the
// lenient policy are reported, and that container's steps are skipped.
func (s *Service) Up(ctx context.Context, env *domain.Environment) (*domain.UpReport, error) {
	log := s.log.With("action", "Up", "environment", env.Name)
	report := &domain.UpReport{}

	if env.Network != "" {
		network, err := s.orchestrator.EnsureNetwork(ctx, env.Network)
		if err != nil {
			return report, err
		}
		report.Network = network
	}

	for _, name := range env.Volumes {
		if _, err := s.orchestrator.EnsureVolume(ctx, name); err != nil {
			return report, err
		}
	}

	handles := make([]domain.ContainerHandle, len(env.Containers))
	pulled := make([]bool, len(env.Containers))
	g, gctx := errgroup.WithContext(ctx)
	for i := range env.Containers {
		spec := env.Containers[i].Spec
		g.Go(func() error {
			p, err := s.orchestrator.EnsureImage(gctx, spec.Image)
			if err != nil {
				return fmt.Errorf("container %q: %w", spec.Name, err)
			}
			pulled[i] = p

			h, err := s.orchestrator.EnsureContainer(gctx, &spec)
			if err != nil {
				return err
			}
			handles[i] = h
			return nil
		})
	}
	err := g.Wait()
	for i, p := range pulled {
		if p {
			report.Pulled = append(report.Pulled, env.Containers[i].Spec.Image)
		}
	}
	if err != nil {
		return report, err
	}

	for i, c := range env.Containers {
		result := domain.UpContainer{Handle: handles[i]}

		start, err := s.orchestrator.Start(ctx, handles[i])
		result.Start = start
		if err != nil {
			report.Containers = append(report.Containers, result)
			return report, err
		}
		if start == domain.StartFailed {
			log.Warn("container did not start, skipping its steps", "container_name", c.Spec.Name)
			report.Containers = append(report.Containers, result)
			continue
		}

		err = s.runSteps(ctx, c, &result)
		report.Containers = append(report.Containers, result)
		if err != nil {
			return report, err
		}
	}

	log.Info("environment up", "containers", len(report.Containers))
	return report, nil
}

func (s *Service) runSteps(ctx context.Context, c domain.EnvContainer, result *domain.UpContainer) error {
	copied := ""
	for _, cp := range c.Copies {
		p, err := s.orchestrator.CopyToContainer(ctx, result.Handle, cp.Source, cp.Destination, cp.Overwrite)
		if err != nil {
			return err
		}
		copied = p
		result.Copied = append(result.Copied, p)
	}

	for _, step := range c.Execs {
		out, err := s.orchestrator.Exec(ctx, domain.ExecRequest{
			ContainerID: result.Handle.ID,
			Cmd:         step.Expand(copied),
			User:        step.User,
			WorkingDir:  step.WorkingDir,
			Env:         step.Env,
		})
		if err != nil {
			return fmt.Errorf("container %q: %w", c.Spec.Name, err)
		}
		result.Execs = append(result.Execs, *out)
	}
	return nil
}

// Down stops and force-removes every declared container that exists, and
// removes the declared volumes when removeVolumes is set.
func (s *Service) Down(ctx context.Context, env *domain.Environment, removeVolumes bool) (*domain.TeardownReport, error) {
	log := s.log.With("action", "Down", "environment", env.Name)

	req := domain.TeardownRequest{Force: true, RemoveVolumes: removeVolumes}
	for _, name := range env.ContainerNames() {
		c, err := s.orchestrator.FindContainer(ctx, name)
		if errors.Is(err, domain.ErrNotFound) {
			log.Debug("container absent", "container_name", name)
			continue
		}
		if err != nil {
			return nil, err
		}
		req.Containers = append(req.Containers, domain.ContainerHandle{ID: c.ID, Name: name})
	}
	if removeVolumes {
		req.Volumes = env.Volumes
	}

	return s.orchestrator.Teardown(ctx, req)
}

// Status reports every declared container in declaration order.
func (s *Service) Status(ctx context.Context, env *domain.Environment) ([]domain.ContainerState, error) {
	states := make([]domain.ContainerState, 0, len(env.Containers))
	for _, name := range env.ContainerNames() {
		c, err := s.orchestrator.FindContainer(ctx, name)
		if errors.Is(err, domain.ErrNotFound) {
			states = append(states, domain.ContainerState{Name: name})
			continue
		}
		if err != nil {
			return nil, err
		}
		states = append(states, domain.ContainerState{
			Name:    name,
			Present: true,
			ID:      c.ID,
			Image:   c.Image,
			State:   c.State,
			Status:  c.Status,
		})
	}
	return states, nil
}
