package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors represent the failure kinds surfaced by the orchestrator.
// Adapters wrap the underlying cause together with one of these kinds so that
// callers can branch with errors.Is.
var (
	// ErrNotFound is returned when a resource is absent.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a name is already in use.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument is returned for empty or missing required input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIO is returned when an archive source is missing or the transfer fails.
	ErrIO = errors.New("i/o failure")
	// ErrExecutionFailed is matched by every *ExecError.
	ErrExecutionFailed = errors.New("execution failed")
	// ErrEngine is returned for any other engine API failure.
	ErrEngine = errors.New("engine failure")
	// ErrStartFailed is returned by Start in strict mode.
	ErrStartFailed = errors.New("container start failed")
)

// ExecError reports a command that exited with a nonzero code.
type ExecError struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Command  []string
}

func (e *ExecError) Error() string {
	msg := fmt.Sprintf("command %q exited with code %d", strings.Join(e.Command, " "), e.ExitCode)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	}
	return msg
}

// Is makes errors.Is(err, ErrExecutionFailed) match.
func (e *ExecError) Is(target error) bool {
	return target == ErrExecutionFailed
}
