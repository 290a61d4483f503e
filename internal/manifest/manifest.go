// Package manifest loads environment descriptions from YAML files.
package manifest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/bnema/dockenv/internal/domain"
)

// File is the on-disk shape of an environment manifest.
type File struct {
	Name       string      `yaml:"name"`
	Network    string      `yaml:"network"`
	Volumes    []string    `yaml:"volumes"`
	Containers []Container `yaml:"containers"`
}

// Container describes one container and its setup steps.
type Container struct {
	Name    string            `yaml:"name"`
	Image   string            `yaml:"image"`
	Port    Port              `yaml:"port"`
	Env     []string          `yaml:"env"`
	EnvFile string            `yaml:"env_file"`
	Volume  Volume            `yaml:"volume"`
	Network string            `yaml:"network"` // defaults to the manifest network
	Labels  map[string]string `yaml:"labels"`
	Copy    []Copy            `yaml:"copy"`
	Exec    []Exec            `yaml:"exec"`
}

// Port maps a container port to a host port.
type Port struct {
	Container int `yaml:"container"`
	Host      int `yaml:"host"`
}

// Volume mounts a named volume or host path.
type Volume struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// Copy is a file injection step.
type Copy struct {
	Source      string `yaml:"source"`
	Destination string `yaml:"destination"`
	Overwrite   bool   `yaml:"overwrite"`
}

// Exec is a command step. Arguments may use the {{copied}} placeholder.
type Exec struct {
	Cmd        []string `yaml:"cmd"`
	User       string   `yaml:"user"`
	WorkingDir string   `yaml:"workdir"`
	Env        []string `yaml:"env"`
}

// Load reads, validates and resolves the manifest at path. Relative env_file
// and copy sources, and volume sources starting with ".", resolve against the
// manifest's directory.
func Load(fs afero.Fs, path string) (*domain.Environment, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	if f.Name == "" {
		base := filepath.Base(path)
		f.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	env, err := f.resolve(fs, filepath.Dir(path))
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return env, nil
}

// Parse decodes and validates a manifest. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse: %w: %w", domain.ErrInvalidArgument, err)
	}

	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate reports every problem in the manifest at once.
func (f *File) Validate() error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), domain.ErrInvalidArgument))
	}

	if len(f.Containers) == 0 {
		invalid("no containers declared")
	}

	seen := make(map[string]bool, len(f.Containers))
	for i, c := range f.Containers {
		ref := fmt.Sprintf("containers[%d]", i)
		if c.Name == "" {
			invalid("%s: name is required", ref)
		} else {
			ref = fmt.Sprintf("container %q", c.Name)
			if seen[c.Name] {
				invalid("%s: duplicate name", ref)
			}
			seen[c.Name] = true
		}

		if c.Image == "" {
			invalid("%s: image is required", ref)
		}
		if !validPort(c.Port.Container) || !validPort(c.Port.Host) {
			invalid("%s: ports must be within 0-65535", ref)
		} else if c.Port.Host > 0 && c.Port.Container == 0 {
			invalid("%s: port.host %d needs a port.container", ref, c.Port.Host)
		}
		if (c.Volume.Source == "") != (c.Volume.Target == "") {
			invalid("%s: volume needs both source and target", ref)
		}
		for j, cp := range c.Copy {
			if cp.Source == "" || cp.Destination == "" {
				invalid("%s: copy[%d] needs source and destination", ref, j)
			}
		}
		for j, ex := range c.Exec {
			if len(ex.Cmd) == 0 {
				invalid("%s: exec[%d] has an empty cmd", ref, j)
			}
		}
	}

	for i, v := range f.Volumes {
		if v == "" {
			invalid("volumes[%d]: name is required", i)
		}
	}

	return errs
}

func validPort(p int) bool {
	return p >= 0 && p <= 65535
}

func (f *File) resolve(fs afero.Fs, dir string) (*domain.Environment, error) {
	env := &domain.Environment{
		Name:    f.Name,
		Network: f.Network,
		Volumes: f.Volumes,
	}

	for _, c := range f.Containers {
		vars := append([]string(nil), c.Env...)
		if c.EnvFile != "" {
			fileVars, err := readEnvFile(fs, resolvePath(dir, c.EnvFile))
			if err != nil {
				return nil, fmt.Errorf("container %q: %w", c.Name, err)
			}
			vars = append(vars, fileVars...)
		}

		network := c.Network
		if network == "" {
			network = f.Network
		}

		ec := domain.EnvContainer{
			Spec: domain.ContainerSpec{
				Name:          c.Name,
				Image:         c.Image,
				ContainerPort: c.Port.Container,
				HostPort:      c.Port.Host,
				Env:           vars,
				Volume:        domain.VolumeBinding{Source: volumeSource(dir, c.Volume.Source), Target: c.Volume.Target},
				Network:       network,
				Labels:        c.Labels,
			},
		}
		for _, cp := range c.Copy {
			ec.Copies = append(ec.Copies, domain.CopyStep{
				Source:      resolvePath(dir, cp.Source),
				Destination: cp.Destination,
				Overwrite:   cp.Overwrite,
			})
		}
		for _, ex := range c.Exec {
			ec.Execs = append(ec.Execs, domain.ExecStep{
				Cmd:        ex.Cmd,
				User:       ex.User,
				WorkingDir: ex.WorkingDir,
				Env:        ex.Env,
			})
		}
		env.Containers = append(env.Containers, ec)
	}

	return env, nil
}

// readEnvFile parses a KEY=VALUE file into entries sorted by key.
func readEnvFile(fs afero.Fs, path string) ([]string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open env file: %w", err)
	}
	defer file.Close()

	values, err := godotenv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parse env file %s: %w: %w", path, domain.ErrInvalidArgument, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	vars := make([]string, 0, len(keys))
	for _, k := range keys {
		vars = append(vars, k+"="+values[k])
	}
	return vars, nil
}

func resolvePath(dir, p string) string {
	if filepath.IsAbs(p) || dir == "" {
		return p
	}
	return filepath.Join(dir, p)
}

// volumeSource resolves relative host paths. Anything not starting with "."
// or "/" is a named volume and is left alone.
func volumeSource(dir, src string) string {
	if strings.HasPrefix(src, ".") {
		return resolvePath(dir, src)
	}
	return src
}
