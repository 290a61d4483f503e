package docker

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/docker/docker/api/types/container"

	"github.com/bnema/dockenv/internal/domain"
)

const (
	// The engine may still report an exec as running right after its stream closes.
	execInspectRetries  = 20
	execInspectInterval = 50 * time.Millisecond
)

// CreateExec creates an exec session in a running container.
func (r *Runtime) CreateExec(ctx context.Context, containerID string, cfg domain.ExecConfig) (string, error) {
	if len(cfg.Cmd) == 0 {
		return "", fmt.Errorf("exec command cannot be empty: %w", domain.ErrInvalidArgument)
	}

	resp, err := r.client.ContainerExecCreate(ctx, containerID, container.ExecOptions{
		User:         cfg.User,
		Tty:          cfg.Tty,
		AttachStdout: cfg.AttachStdout,
		AttachStderr: cfg.AttachStderr,
		Env:          cfg.Env,
		WorkingDir:   cfg.WorkingDir,
		Cmd:          cfg.Cmd,
	})
	if err != nil {
		return "", wrapErr(err, "failed to create exec")
	}

	r.log.Debug("exec created", "container", containerID, "exec_id", resp.ID)
	return resp.ID, nil
}

// AttachExec starts the exec session and returns the raw multiplexed stream.
// The caller must close it.
func (r *Runtime) AttachExec(ctx context.Context, execID string) (io.ReadCloser, error) {
	resp, err := r.client.ContainerExecAttach(ctx, execID, container.ExecAttachOptions{})
	if err != nil {
		return nil, wrapErr(err, "failed to attach exec")
	}

	return &hijackedStream{Reader: resp.Reader, close: resp.Close}, nil
}

// InspectExec returns the exit code of a finished exec session.
func (r *Runtime) InspectExec(ctx context.Context, execID string) (int, error) {
	for attempt := 0; ; attempt++ {
		info, err := r.client.ContainerExecInspect(ctx, execID)
		if err != nil {
			return 0, wrapErr(err, "failed to inspect exec")
		}
		if !info.Running {
			return info.ExitCode, nil
		}
		if attempt >= execInspectRetries {
			return 0, fmt.Errorf("exec %s still running after its stream closed: %w", execID, domain.ErrEngine)
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(execInspectInterval):
		}
	}
}

// hijackedStream adapts a hijacked connection to io.ReadCloser.
type hijackedStream struct {
	io.Reader
	close func()
}

func (s *hijackedStream) Close() error {
	s.close()
	return nil
}
