package testutils

import (
	"archive/tar"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/docker/docker/pkg/stdcopy"

	"github.com/bnema/dockenv/internal/boundaries/out"
	"github.com/bnema/dockenv/internal/domain"
)

// Frame is one chunk of exec output on a given stream.
type Frame struct {
	Stream stdcopy.StdType
	Data   string
}

// ExecScript scripts the output of an exec session.
type ExecScript struct {
	Frames   []Frame
	ExitCode int
}

// CopyRecord captures one extracted archive.
type CopyRecord struct {
	ContainerID string
	Dest        string
	Overwrite   bool
	Files       map[string]string
}

// FakeEngine is an in-memory container engine for scenario tests.
type FakeEngine struct {
	mu sync.Mutex

	containers []*domain.Container
	running    map[string]bool
	networks   []*domain.NetworkInfo
	volumes    []*domain.VolumeInfo
	images     map[string]bool
	execs      map[string]domain.ExecConfig
	execOwner  map[string]string
	nextID     int

	calls  map[string]int
	errors map[string]error

	// OnExec returns the scripted output for a command. Defaults to an empty
	// successful run.
	OnExec func(containerID string, cfg domain.ExecConfig) ExecScript
	// CreateDelay slows CreateContainer to widen race windows.
	CreateDelay time.Duration

	Copies []CopyRecord
}

var _ out.ContainerEngine = (*FakeEngine)(nil)

// NewFakeEngine returns an empty engine.
func NewFakeEngine() *FakeEngine {
	return &FakeEngine{
		running:   make(map[string]bool),
		images:    make(map[string]bool),
		execs:     make(map[string]domain.ExecConfig),
		execOwner: make(map[string]string),
		calls:     make(map[string]int),
		errors:    make(map[string]error),
	}
}

// FailOn makes every later call to method return err.
func (f *FakeEngine) FailOn(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errors[method] = err
}

// Calls returns how many times method was invoked.
func (f *FakeEngine) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

// AddContainer seeds an existing container and returns its id.
func (f *FakeEngine) AddContainer(name, image string, running bool) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.newID("ctr")
	f.containers = append(f.containers, &domain.Container{ID: id, Name: name, Names: []string{name}, Image: image})
	f.running[id] = running
	return id
}

// AddNetwork seeds an existing network and returns its id.
func (f *FakeEngine) AddNetwork(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.newID("net")
	f.networks = append(f.networks, &domain.NetworkInfo{ID: id, Name: name, Driver: "bridge"})
	return id
}

// AddVolume seeds an existing volume.
func (f *FakeEngine) AddVolume(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.volumes = append(f.volumes, &domain.VolumeInfo{Name: name, Driver: "local"})
}

// AddImage marks ref as available locally.
func (f *FakeEngine) AddImage(ref string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images[ref] = true
}

// HasImage reports whether ref is available locally.
func (f *FakeEngine) HasImage(ref string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.images[ref]
}

// Container returns the container called name, or nil.
func (f *FakeEngine) Container(name string) *domain.Container {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.containers {
		if c.Name == name {
			cp := *c
			return &cp
		}
	}
	return nil
}

// Running reports whether the container id is running.
func (f *FakeEngine) Running(id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running[id]
}

// HasVolume reports whether a volume called name exists.
func (f *FakeEngine) HasVolume(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.volumes {
		if v.Name == name {
			return true
		}
	}
	return false
}

func (f *FakeEngine) newID(prefix string) string {
	f.nextID++
	return fmt.Sprintf("%s-%d", prefix, f.nextID)
}

// enter records the call and returns the injected error, if any. Callers hold f.mu.
func (f *FakeEngine) enter(method string) error {
	f.calls[method]++
	return f.errors[method]
}

func (f *FakeEngine) ListContainers(_ context.Context, all bool) ([]*domain.Container, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListContainers"); err != nil {
		return nil, err
	}

	result := make([]*domain.Container, 0, len(f.containers))
	for _, c := range f.containers {
		if !all && !f.running[c.ID] {
			continue
		}
		cp := *c
		cp.State = string(domain.ContainerStatusExited)
		if f.running[c.ID] {
			cp.State = string(domain.ContainerStatusRunning)
		}
		result = append(result, &cp)
	}
	return result, nil
}

func (f *FakeEngine) CreateContainer(_ context.Context, spec *domain.ContainerSpec) (string, error) {
	if f.CreateDelay > 0 {
		time.Sleep(f.CreateDelay)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateContainer"); err != nil {
		return "", err
	}

	for _, c := range f.containers {
		if c.Name == spec.Name {
			return "", fmt.Errorf("name %q is already in use: %w", spec.Name, domain.ErrConflict)
		}
	}

	id := f.newID("ctr")
	f.containers = append(f.containers, &domain.Container{
		ID:     id,
		Name:   spec.Name,
		Names:  []string{spec.Name},
		Image:  spec.Image,
		Labels: spec.Labels,
	})
	return id, nil
}

func (f *FakeEngine) StartContainer(_ context.Context, containerID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("StartContainer"); err != nil {
		return false, err
	}
	if err := f.lookup(containerID); err != nil {
		return false, err
	}
	if f.running[containerID] {
		return false, nil
	}
	f.running[containerID] = true
	return true, nil
}

func (f *FakeEngine) StopContainer(_ context.Context, containerID string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("StopContainer"); err != nil {
		return err
	}
	if err := f.lookup(containerID); err != nil {
		return err
	}
	f.running[containerID] = false
	return nil
}

func (f *FakeEngine) RemoveContainer(_ context.Context, containerID string, opts domain.RemoveOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("RemoveContainer"); err != nil {
		return err
	}
	if err := f.lookup(containerID); err != nil {
		return err
	}
	if f.running[containerID] && !opts.Force {
		return fmt.Errorf("container %s is running: %w", containerID, domain.ErrConflict)
	}

	for i, c := range f.containers {
		if c.ID == containerID {
			f.containers = append(f.containers[:i], f.containers[i+1:]...)
			break
		}
	}
	delete(f.running, containerID)
	return nil
}

func (f *FakeEngine) lookup(containerID string) error {
	for _, c := range f.containers {
		if c.ID == containerID {
			return nil
		}
	}
	return fmt.Errorf("no such container %s: %w", containerID, domain.ErrNotFound)
}

func (f *FakeEngine) ListNetworks(_ context.Context) ([]*domain.NetworkInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListNetworks"); err != nil {
		return nil, err
	}
	result := make([]*domain.NetworkInfo, 0, len(f.networks))
	for _, n := range f.networks {
		cp := *n
		result = append(result, &cp)
	}
	return result, nil
}

func (f *FakeEngine) CreateNetwork(_ context.Context, name string, labels map[string]string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateNetwork"); err != nil {
		return "", err
	}
	for _, n := range f.networks {
		if n.Name == name {
			return "", fmt.Errorf("network %q exists: %w", name, domain.ErrConflict)
		}
	}
	id := f.newID("net")
	f.networks = append(f.networks, &domain.NetworkInfo{ID: id, Name: name, Driver: "bridge", Labels: labels})
	return id, nil
}

func (f *FakeEngine) ListVolumes(_ context.Context) ([]*domain.VolumeInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ListVolumes"); err != nil {
		return nil, err
	}
	result := make([]*domain.VolumeInfo, 0, len(f.volumes))
	for _, v := range f.volumes {
		cp := *v
		result = append(result, &cp)
	}
	return result, nil
}

func (f *FakeEngine) CreateVolume(_ context.Context, name string, labels map[string]string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateVolume"); err != nil {
		return "", err
	}
	for _, v := range f.volumes {
		if v.Name == name {
			return name, nil
		}
	}
	f.volumes = append(f.volumes, &domain.VolumeInfo{Name: name, Driver: "local", Labels: labels})
	return name, nil
}

func (f *FakeEngine) RemoveVolume(_ context.Context, name string, _ bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("RemoveVolume"); err != nil {
		return err
	}
	for i, v := range f.volumes {
		if v.Name == name {
			f.volumes = append(f.volumes[:i], f.volumes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("no such volume %s: %w", name, domain.ErrNotFound)
}

func (f *FakeEngine) ImageExists(_ context.Context, ref string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("ImageExists"); err != nil {
		return false, err
	}
	return f.images[ref], nil
}

func (f *FakeEngine) PullImage(_ context.Context, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("PullImage"); err != nil {
		return err
	}
	f.images[ref] = true
	return nil
}

// CopyToContainer unpacks the tar stream and records its regular files.
func (f *FakeEngine) CopyToContainer(_ context.Context, containerID, destPath string, overwrite bool, archive io.Reader) error {
	f.mu.Lock()
	err := f.enter("CopyToContainer")
	if err == nil {
		err = f.lookup(containerID)
	}
	f.mu.Unlock()
	if err != nil {
		return err
	}

	files := make(map[string]string)
	tr := tar.NewReader(archive)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read archive: %w: %w", domain.ErrIO, err)
		}
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, tr); err != nil {
			return fmt.Errorf("read archive entry %s: %w: %w", hdr.Name, domain.ErrIO, err)
		}
		files[hdr.Name] = buf.String()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.Copies = append(f.Copies, CopyRecord{ContainerID: containerID, Dest: destPath, Overwrite: overwrite, Files: files})
	return nil
}

func (f *FakeEngine) CreateExec(_ context.Context, containerID string, cfg domain.ExecConfig) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("CreateExec"); err != nil {
		return "", err
	}
	if err := f.lookup(containerID); err != nil {
		return "", err
	}
	if !f.running[containerID] {
		return "", fmt.Errorf("container %s is not running: %w", containerID, domain.ErrConflict)
	}
	id := f.newID("exec")
	f.execs[id] = cfg
	f.execOwner[id] = containerID
	return id, nil
}

// AttachExec frames the scripted output the way the engine does.
func (f *FakeEngine) AttachExec(_ context.Context, execID string) (io.ReadCloser, error) {
	f.mu.Lock()
	if err := f.enter("AttachExec"); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	script, err := f.script(execID)
	f.mu.Unlock()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	for _, frame := range script.Frames {
		w := stdcopy.NewStdWriter(&buf, frame.Stream)
		if _, err := w.Write([]byte(frame.Data)); err != nil {
			return nil, err
		}
	}
	return io.NopCloser(&buf), nil
}

func (f *FakeEngine) InspectExec(_ context.Context, execID string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("InspectExec"); err != nil {
		return 0, err
	}
	script, err := f.script(execID)
	if err != nil {
		return 0, err
	}
	return script.ExitCode, nil
}

func (f *FakeEngine) script(execID string) (ExecScript, error) {
	cfg, ok := f.execs[execID]
	if !ok {
		return ExecScript{}, fmt.Errorf("no such exec %s: %w", execID, domain.ErrNotFound)
	}
	if f.OnExec == nil {
		return ExecScript{}, nil
	}
	return f.OnExec(f.execOwner[execID], cfg), nil
}

func (f *FakeEngine) Ping(_ context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enter("Ping")
}

func (f *FakeEngine) Version(_ context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.enter("Version"); err != nil {
		return "", err
	}
	return "28.0.1-fake", nil
}
