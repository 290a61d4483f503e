package domain

import "strings"

// CopiedPlaceholder in an exec argument is replaced with the container's
// most recently copied path.
const CopiedPlaceholder = "{{copied}}"

// Environment is a set of resources brought up and torn down together.
type Environment struct {
	Name       string
	Network    string
	Volumes    []string
	Containers []EnvContainer
}

// ContainerNames returns the declared container names in order.
func (e *Environment) ContainerNames() []string {
	names := make([]string, 0, len(e.Containers))
	for _, c := range e.Containers {
		names = append(names, c.Spec.Name)
	}
	return names
}

// EnvContainer is one container of an environment and its setup steps.
type EnvContainer struct {
	Spec   ContainerSpec
	Copies []CopyStep
	Execs  []ExecStep
}

// CopyStep copies a host path into the container.
type CopyStep struct {
	Source      string
	Destination string
	Overwrite   bool
}

// ExecStep runs a command once the container's copies are done.
type ExecStep struct {
	Cmd        []string
	User       string
	WorkingDir string
	Env        []string
}

// Expand substitutes CopiedPlaceholder in every argument.
func (s ExecStep) Expand(copied string) []string {
	argv := make([]string, len(s.Cmd))
	for i, arg := range s.Cmd {
		argv[i] = strings.ReplaceAll(arg, CopiedPlaceholder, copied)
	}
	return argv
}

// UpReport summarizes what Up did for each container.
type UpReport struct {
	Network    NetworkHandle
	Pulled     []string // images fetched because they were not present locally
	Containers []UpContainer
}

// UpContainer is the outcome of bringing up one container.
type UpContainer struct {
	Handle ContainerHandle
	Start  StartResult
	Copied []string
	Execs  []ExecResult
}

// ContainerState is the observed state of a declared container.
type ContainerState struct {
	Name    string
	Present bool
	ID      string
	Image   string
	State   string
	Status  string
}
