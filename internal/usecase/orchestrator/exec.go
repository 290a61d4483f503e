package orchestrator

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/docker/docker/pkg/stdcopy"

	"github.com/bnema/dockenv/internal/domain"
)

// Exec runs req.Cmd in the container without a TTY and captures stdout and
// stderr separately. Exit code zero is the only success; any other code is
// returned as *domain.ExecError carrying the captured output.
func (s *Service) Exec(ctx context.Context, req domain.ExecRequest) (*domain.ExecResult, error) {
	if len(req.Cmd) == 0 {
		return nil, fmt.Errorf("exec command cannot be empty: %w", domain.ErrInvalidArgument)
	}
	if req.ContainerID == "" {
		return nil, fmt.Errorf("exec target container is required: %w", domain.ErrInvalidArgument)
	}

	log := s.log.With("action", "Exec", "id", req.ContainerID, "cmd", req.Cmd)

	execID, err := s.engine.CreateExec(ctx, req.ContainerID, domain.ExecConfig{
		Cmd:          req.Cmd,
		User:         req.User,
		WorkingDir:   req.WorkingDir,
		Env:          req.Env,
		AttachStdout: true,
		AttachStderr: true,
	})
	if err != nil {
		log.Error("failed to create exec", "err", err)
		return nil, fmt.Errorf("create exec: %w", err)
	}

	stream, err := s.engine.AttachExec(ctx, execID)
	if err != nil {
		log.Error("failed to attach exec", "exec_id", execID, "err", err)
		return nil, fmt.Errorf("attach exec: %w", err)
	}
	defer stream.Close()

	stdout, stderr, err := demuxExecOutput(stream, log)
	if err != nil {
		log.Error("failed to read exec output", "exec_id", execID, "err", err)
		return nil, fmt.Errorf("read exec output: %w: %w", domain.ErrEngine, err)
	}

	exitCode, err := s.engine.InspectExec(ctx, execID)
	if err != nil {
		log.Error("failed to inspect exec", "exec_id", execID, "err", err)
		return nil, fmt.Errorf("inspect exec: %w", err)
	}

	if exitCode != 0 {
		log.Warn("command failed", "exit_code", exitCode, "stderr", stderr)
		return nil, &domain.ExecError{
			ExitCode: exitCode,
			Stdout:   stdout,
			Stderr:   stderr,
			Command:  req.Cmd,
		}
	}

	log.Info("command succeeded", "stdout_bytes", len(stdout), "stderr_bytes", len(stderr))
	return &domain.ExecResult{ExitCode: exitCode, Stdout: stdout, Stderr: stderr}, nil
}

// demuxExecOutput splits a multiplexed exec stream until EOF. Each chunk is
// appended to its channel in arrival order.
func demuxExecOutput(r io.Reader, logger *log.Logger) (string, string, error) {
	stdout := &chunkWriter{stream: "stdout", log: logger}
	stderr := &chunkWriter{stream: "stderr", log: logger}

	if _, err := stdcopy.StdCopy(stdout, stderr, r); err != nil {
		return "", "", err
	}
	return stdout.buf.String(), stderr.buf.String(), nil
}

type chunkWriter struct {
	buf    bytes.Buffer
	stream string
	log    *log.Logger
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	w.log.Debug("exec output", "stream", w.stream, "chunk", string(p))
	return w.buf.Write(p)
}
