// Package docker implements the container engine adapter using Docker API.
package docker

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"

	"github.com/bnema/dockenv/internal/boundaries/out"
	"github.com/bnema/dockenv/internal/domain"
)

// Options configures how the Docker client reaches the engine.
type Options struct {
	Host       string // overrides DOCKER_HOST when set
	APIVersion string // pins the API version; negotiated when empty
}

// Runtime implements the ContainerEngine interface using Docker API.
type Runtime struct {
	client *client.Client
	log    *log.Logger
}

var _ out.ContainerEngine = (*Runtime)(nil)

// NewRuntime creates a new Docker runtime instance.
func NewRuntime(opts Options, logger *log.Logger) (*Runtime, error) {
	clientOpts := []client.Opt{client.FromEnv}
	if opts.Host != "" {
		clientOpts = append(clientOpts, client.WithHost(opts.Host))
	}
	if opts.APIVersion != "" {
		clientOpts = append(clientOpts, client.WithVersion(opts.APIVersion))
	} else {
		clientOpts = append(clientOpts, client.WithAPIVersionNegotiation())
	}

	cli, err := client.NewClientWithOpts(clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Docker client: %w", err)
	}

	return NewRuntimeWithClient(cli, logger), nil
}

// NewRuntimeWithClient creates a new Docker runtime instance with a custom client (for testing).
func NewRuntimeWithClient(cli *client.Client, logger *log.Logger) *Runtime {
	if logger == nil {
		logger = log.Default()
	}
	return &Runtime{
		client: cli,
		log:    logger.With("adapter", "docker"),
	}
}

// Close releases the underlying client transport.
func (r *Runtime) Close() error {
	return r.client.Close()
}

// ListContainers lists containers, including stopped ones when all is set.
func (r *Runtime) ListContainers(ctx context.Context, all bool) ([]*domain.Container, error) {
	containers, err := r.client.ContainerList(ctx, container.ListOptions{All: all})
	if err != nil {
		return nil, wrapErr(err, "failed to list containers")
	}

	result := make([]*domain.Container, 0, len(containers))
	for _, c := range containers {
		names := make([]string, 0, len(c.Names))
		for _, n := range c.Names {
			names = append(names, strings.TrimPrefix(n, "/"))
		}

		// Get the primary name (remove leading slash)
		name := ""
		if len(names) > 0 {
			name = names[0]
		}

		result = append(result, &domain.Container{
			ID:     c.ID,
			Name:   name,
			Names:  names,
			Image:  c.Image,
			State:  c.State,
			Status: c.Status,
			Labels: c.Labels,
		})
	}

	return result, nil
}

// CreateContainer creates a container from spec and returns its id.
func (r *Runtime) CreateContainer(ctx context.Context, spec *domain.ContainerSpec) (string, error) {
	log := r.log.With("action", "CreateContainer", "container_name", spec.Name, "image", spec.Image)

	exposedPorts := make(nat.PortSet)
	portBindings := make(nat.PortMap)
	if spec.ContainerPort > 0 {
		containerPort := nat.Port(fmt.Sprintf("%d/tcp", spec.ContainerPort))
		exposedPorts[containerPort] = struct{}{}
		if spec.HostPort > 0 {
			portBindings[containerPort] = []nat.PortBinding{
				{HostPort: strconv.Itoa(spec.HostPort)},
			}
		}
	}

	var binds []string
	if !spec.Volume.IsZero() {
		binds = append(binds, spec.Volume.Bind())
		log.Debug("adding volume mount", "volume", spec.Volume.Source, "mount_path", spec.Volume.Target)
	}

	containerConfig := &container.Config{
		Image:        spec.Image,
		Env:          spec.Env,
		ExposedPorts: exposedPorts,
		Labels:       spec.Labels,
	}

	hostConfig := &container.HostConfig{
		PortBindings: portBindings,
		Binds:        binds,
		NetworkMode:  container.NetworkMode(spec.Network),
	}

	resp, err := r.client.ContainerCreate(ctx, containerConfig, hostConfig, nil, nil, spec.Name)
	if err != nil {
		return "", wrapErr(err, "failed to create container")
	}

	for _, warning := range resp.Warnings {
		log.Warn("engine warning", "warning", warning)
	}
	log.Debug("container created", "id", resp.ID)
	return resp.ID, nil
}

// StartContainer starts a container. It returns false without error when the
// container was already running.
func (r *Runtime) StartContainer(ctx context.Context, containerID string) (bool, error) {
	info, err := r.client.ContainerInspect(ctx, containerID)
	if err != nil {
		return false, wrapErr(err, "failed to inspect container")
	}
	if info.State != nil && info.State.Running {
		r.log.Debug("container already running", "id", containerID)
		return false, nil
	}

	if err := r.client.ContainerStart(ctx, containerID, container.StartOptions{}); err != nil {
		return false, wrapErr(err, "failed to start container")
	}

	r.log.Debug("container started", "id", containerID)
	return true, nil
}

// StopContainer stops a container, killing it after grace.
func (r *Runtime) StopContainer(ctx context.Context, containerID string, grace time.Duration) error {
	timeout := int(grace.Seconds())
	if err := r.client.ContainerStop(ctx, containerID, container.StopOptions{Timeout: &timeout}); err != nil {
		return wrapErr(err, "failed to stop container")
	}

	r.log.Debug("container stopped", "id", containerID, "grace", grace)
	return nil
}

// RemoveContainer removes a container.
func (r *Runtime) RemoveContainer(ctx context.Context, containerID string, opts domain.RemoveOptions) error {
	err := r.client.ContainerRemove(ctx, containerID, container.RemoveOptions{
		RemoveVolumes: opts.RemoveVolumes,
		Force:         opts.Force,
	})
	if err != nil {
		return wrapErr(err, "failed to remove container")
	}

	r.log.Debug("container removed", "id", containerID, "force", opts.Force, "remove_volumes", opts.RemoveVolumes)
	return nil
}

// Ping checks if Docker is responsive.
func (r *Runtime) Ping(ctx context.Context) error {
	if _, err := r.client.Ping(ctx); err != nil {
		return wrapErr(err, "Docker ping failed")
	}
	return nil
}

// Version returns Docker version.
func (r *Runtime) Version(ctx context.Context) (string, error) {
	version, err := r.client.ServerVersion(ctx)
	if err != nil {
		return "", wrapErr(err, "failed to get Docker version")
	}
	return version.Version, nil
}
