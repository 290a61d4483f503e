package domain

// ExecRequest describes a one-shot command run inside a container.
type ExecRequest struct {
	ContainerID string
	Cmd         []string // argv, first element is the executable
	User        string
	WorkingDir  string
	Env         []string
}

// ExecConfig is what the engine needs to create an exec session.
type ExecConfig struct {
	Cmd          []string
	User         string
	WorkingDir   string
	Env          []string
	AttachStdout bool
	AttachStderr bool
	Tty          bool
}

// ExecResult holds the captured output of a successful command.
type ExecResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// TeardownRequest lists what a teardown should stop and remove.
type TeardownRequest struct {
	Containers    []ContainerHandle
	Volumes       []string
	RemoveVolumes bool
	Force         bool
}

// TeardownFailure is one suppressed teardown step.
type TeardownFailure struct {
	Step   string
	Target string
	Err    error
}

// TeardownReport collects every failure seen during a teardown.
type TeardownReport struct {
	Failures []TeardownFailure
}

// OK reports whether every step succeeded.
func (r *TeardownReport) OK() bool {
	return len(r.Failures) == 0
}
