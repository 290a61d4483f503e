// Package out defines output ports (interfaces) for infrastructure.
// These interfaces define the contract between use cases and driven adapters
// (Docker, filesystem, etc.).
package out

import (
	"context"
	"io"
	"time"

	"github.com/bnema/dockenv/internal/domain"
)

// ContainerEngine defines the capability surface of the container engine.
// Implementations must be safe for concurrent use.
type ContainerEngine interface {
	// Containers
	ListContainers(ctx context.Context, all bool) ([]*domain.Container, error)
	CreateContainer(ctx context.Context, spec *domain.ContainerSpec) (string, error)
	// StartContainer returns false when the container was already running.
	StartContainer(ctx context.Context, containerID string) (bool, error)
	StopContainer(ctx context.Context, containerID string, grace time.Duration) error
	RemoveContainer(ctx context.Context, containerID string, opts domain.RemoveOptions) error

	// Networks
	ListNetworks(ctx context.Context) ([]*domain.NetworkInfo, error)
	CreateNetwork(ctx context.Context, name string, labels map[string]string) (string, error)

	// Volumes
	ListVolumes(ctx context.Context) ([]*domain.VolumeInfo, error)
	CreateVolume(ctx context.Context, name string, labels map[string]string) (string, error)
	RemoveVolume(ctx context.Context, name string, force bool) error

	// Images
	// ImageExists reports whether ref is available locally. An untagged ref means :latest.
	ImageExists(ctx context.Context, ref string) (bool, error)
	// PullImage pulls ref and returns once the pull has completed.
	PullImage(ctx context.Context, ref string) error

	// Files
	CopyToContainer(ctx context.Context, containerID, destPath string, overwrite bool, archive io.Reader) error

	// Exec
	CreateExec(ctx context.Context, containerID string, cfg domain.ExecConfig) (string, error)
	// AttachExec starts the exec and returns its multiplexed output stream.
	AttachExec(ctx context.Context, execID string) (io.ReadCloser, error)
	InspectExec(ctx context.Context, execID string) (int, error)

	// Runtime information
	Ping(ctx context.Context) error
	Version(ctx context.Context) (string, error)
}
