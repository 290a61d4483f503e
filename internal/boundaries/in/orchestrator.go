// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (CLI)
// and the business logic (use cases).
package in

import (
	"context"

	"github.com/bnema/dockenv/internal/domain"
)

// Orchestrator defines the contract for container resource operations.
type Orchestrator interface {
	// EnsureContainer returns the container named spec.Name, creating it if absent.
	EnsureContainer(ctx context.Context, spec *domain.ContainerSpec) (domain.ContainerHandle, error)

	// Start starts a container. AlreadyRunning is not an error.
	Start(ctx context.Context, handle domain.ContainerHandle) (domain.StartResult, error)

	// Stop stops a container with the configured grace period.
	Stop(ctx context.Context, handle domain.ContainerHandle) error

	// Remove removes a container.
	Remove(ctx context.Context, handle domain.ContainerHandle, opts domain.RemoveOptions) error

	// EnsureImage pulls ref when it is not available locally and reports whether it did.
	EnsureImage(ctx context.Context, ref string) (bool, error)

	// EnsureNetwork returns the network called name, creating it if absent.
	EnsureNetwork(ctx context.Context, name string) (domain.NetworkHandle, error)

	// EnsureVolume returns the volume called name, creating it if absent.
	EnsureVolume(ctx context.Context, name string) (domain.VolumeHandle, error)

	// RemoveVolume deletes the volume called name and reports whether it existed.
	RemoveVolume(ctx context.Context, name string) (bool, error)

	// CopyToContainer copies a host file or directory into the container and
	// returns the resulting in-container path.
	CopyToContainer(ctx context.Context, handle domain.ContainerHandle, sourcePath, destinationPath string, overwrite bool) (string, error)

	// Exec runs a command in the container and captures its output.
	// A nonzero exit code is reported as *domain.ExecError.
	Exec(ctx context.Context, req domain.ExecRequest) (*domain.ExecResult, error)

	// Teardown stops and removes containers then volumes, continuing past failures.
	Teardown(ctx context.Context, req domain.TeardownRequest) (*domain.TeardownReport, error)

	// FindContainer returns the container called name, or ErrNotFound.
	FindContainer(ctx context.Context, name string) (*domain.Container, error)
}
