// Package domain contains pure business types without external dependencies.
// These types are used throughout the application and have no tags or framework dependencies.
package domain

import "time"

// DefaultStopGrace is how long the engine waits after SIGTERM before killing a container.
const DefaultStopGrace = 10 * time.Second

// ContainerSpec describes a container to ensure. Name is the idempotency key.
type ContainerSpec struct {
	Name          string
	Image         string
	ContainerPort int // 0 means no port is exposed
	HostPort      int
	Env           []string // KEY=VALUE, order preserved
	Volume        VolumeBinding
	Network       string
	Labels        map[string]string
}

// VolumeBinding maps a named volume or host path into the container.
type VolumeBinding struct {
	Source string // named volume or host path
	Target string // path inside the container
}

// IsZero reports whether the binding is unset.
func (v VolumeBinding) IsZero() bool {
	return v.Source == "" || v.Target == ""
}

// Bind returns the engine bind string "source:target".
func (v VolumeBinding) Bind() string {
	return v.Source + ":" + v.Target
}

// ContainerHandle references a container owned by the current session.
type ContainerHandle struct {
	ID   string
	Name string
}

// Container is a container as listed by the engine.
type Container struct {
	ID     string
	Name   string   // primary name, leading "/" stripped
	Names  []string // every name, leading "/" stripped
	Image  string
	State  string
	Status string
	Labels map[string]string
}

// HasName reports whether name is one of the container's names.
func (c *Container) HasName(name string) bool {
	if c.Name == name {
		return true
	}
	for _, n := range c.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Handle returns the handle for this container.
func (c *Container) Handle() ContainerHandle {
	return ContainerHandle{ID: c.ID, Name: c.Name}
}

// ContainerStatus represents the current state of a container.
type ContainerStatus string

const (
	ContainerStatusRunning ContainerStatus = "running"
	ContainerStatusExited  ContainerStatus = "exited"
)

// StartResult is the outcome of a start request.
type StartResult int

const (
	// StartFailed means the engine rejected the start request.
	StartFailed StartResult = iota
	// Started means this request started the container.
	Started
	// AlreadyRunning means the container was running before the request.
	AlreadyRunning
)

func (r StartResult) String() string {
	switch r {
	case Started:
		return "started"
	case AlreadyRunning:
		return "already running"
	default:
		return "failed"
	}
}

// RemoveOptions controls container removal.
type RemoveOptions struct {
	RemoveVolumes bool // cascade-delete anonymous volumes
	Force         bool // remove even if running
}

// NetworkHandle references a network by engine id.
type NetworkHandle struct {
	ID   string
	Name string
}

// NetworkInfo represents a network as listed by the engine.
type NetworkInfo struct {
	ID     string
	Name   string
	Driver string
	Labels map[string]string
}

// VolumeHandle references a volume. The engine uses the name as the identifier.
type VolumeHandle struct {
	Name string
}

// VolumeInfo represents a volume as listed by the engine.
type VolumeInfo struct {
	Name       string
	Driver     string
	Mountpoint string
	Labels     map[string]string
}
