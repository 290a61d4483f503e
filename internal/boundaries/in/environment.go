package in

import (
	"context"

	"github.com/bnema/dockenv/internal/domain"
)

// EnvironmentService brings a described environment up and down.
type EnvironmentService interface {
	// Up creates and starts everything env describes, then runs its copy and exec steps.
	Up(ctx context.Context, env *domain.Environment) (*domain.UpReport, error)

	// Down stops and removes the environment's containers, and its volumes when asked.
	Down(ctx context.Context, env *domain.Environment, removeVolumes bool) (*domain.TeardownReport, error)

	// Status reports each declared container as present or absent.
	Status(ctx context.Context, env *domain.Environment) ([]domain.ContainerState, error)
}
