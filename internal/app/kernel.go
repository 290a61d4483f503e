// Package app provides the application initialization and wiring.
package app

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"

	"github.com/bnema/dockenv/internal/adapters/out/docker"
	"github.com/bnema/dockenv/internal/boundaries/in"
	"github.com/bnema/dockenv/internal/boundaries/out"
	"github.com/bnema/dockenv/internal/config"
	"github.com/bnema/dockenv/internal/logging"
	"github.com/bnema/dockenv/internal/usecase/environment"
	"github.com/bnema/dockenv/internal/usecase/orchestrator"
)

// Overrides are command-line values that win over the config file.
type Overrides struct {
	LogLevel string
	Output   io.Writer // log destination, stderr when nil
}

// Kernel provides in-process service access for CLI commands.
type Kernel struct {
	cfg          *config.Config
	log          *log.Logger
	engine       out.ContainerEngine
	orchestrator *orchestrator.Service
	environments *environment.Service
	cleanup      func() error
}

// NewKernel loads configuration and wires the engine adapter and use cases.
// The engine is not contacted until a command needs it.
func NewKernel(configPath string, overrides Overrides) (*Kernel, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if overrides.LogLevel != "" {
		cfg.Log.Level = overrides.LogLevel
	}

	logger, logFile, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     overrides.Output,
		Timestamps: cfg.Log.Timestamps,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	runtime, err := docker.NewRuntime(docker.Options{
		Host:       cfg.Engine.Host,
		APIVersion: cfg.Engine.APIVersion,
	}, logger)
	if err != nil {
		return nil, multierr.Append(err, logFile.Close())
	}

	k := NewKernelWithEngine(cfg, logger, runtime)
	k.cleanup = func() error {
		return multierr.Combine(runtime.Close(), logFile.Close())
	}
	return k, nil
}

// NewKernelWithEngine wires the use cases around an existing engine.
func NewKernelWithEngine(cfg *config.Config, logger *log.Logger, engine out.ContainerEngine) *Kernel {
	orch := orchestrator.NewService(engine, logger, orchestrator.Config{
		StopGrace:      cfg.Orchestrator.StopGrace,
		StrictStart:    cfg.Orchestrator.StrictStart,
		StrictTeardown: cfg.Orchestrator.StrictTeardown,
	})
	logger.Debug("kernel ready", "session", orch.SessionID())

	return &Kernel{
		cfg:          cfg,
		log:          logger,
		engine:       engine,
		orchestrator: orch,
		environments: environment.NewService(orch, logger),
	}
}

func (k *Kernel) Close() error {
	if k == nil || k.cleanup == nil {
		return nil
	}
	return k.cleanup()
}

func (k *Kernel) Config() *config.Config { return k.cfg }

func (k *Kernel) Logger() *log.Logger { return k.log }

func (k *Kernel) Orchestrator() in.Orchestrator { return k.orchestrator }

func (k *Kernel) Environments() in.EnvironmentService { return k.environments }
