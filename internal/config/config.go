// Package config loads dockenv settings from a config file and the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/bnema/dockenv/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. DOCKENV_LOG_LEVEL.
const EnvPrefix = "DOCKENV"

type Config struct {
	Engine       EngineConfig       `mapstructure:"engine"`
	Log          LogConfig          `mapstructure:"log"`
	Orchestrator OrchestratorConfig `mapstructure:"orchestrator"`
}

type EngineConfig struct {
	Host       string `mapstructure:"host"`        // empty uses DOCKER_HOST or the platform default
	APIVersion string `mapstructure:"api_version"` // empty negotiates
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Timestamps bool   `mapstructure:"timestamps"`
	File       string `mapstructure:"file"` // empty logs to the console only
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type OrchestratorConfig struct {
	StopGrace      time.Duration `mapstructure:"stop_grace"`
	StrictStart    bool          `mapstructure:"strict_start"`
	StrictTeardown bool          `mapstructure:"strict_teardown"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.host", "")
	v.SetDefault("engine.api_version", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", logging.FormatText)
	v.SetDefault("log.timestamps", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("orchestrator.stop_grace", 10*time.Second)
	v.SetDefault("orchestrator.strict_start", false)
	v.SetDefault("orchestrator.strict_teardown", false)
}

// Load reads the config file at path from the OS filesystem. See LoadFs.
func Load(path string) (*Config, error) {
	return LoadFs(afero.NewOsFs(), path)
}

// LoadFs reads configuration from fs. An explicit path must exist; with an
// empty path dockenv.yaml is looked up in the working directory and in
// $HOME/.config/dockenv, and its absence is not an error. Environment
// variables override file values.
func LoadFs(fs afero.Fs, path string) (*Config, error) {
	v := viper.New()
	v.SetFs(fs)
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("dockenv")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/dockenv")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("unable to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log.format: %w", err)
	}
	if c.Log.MaxSizeMB < 0 {
		return fmt.Errorf("log.max_size_mb must not be negative, got %d", c.Log.MaxSizeMB)
	}
	if c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_backups must not be negative, got %d", c.Log.MaxBackups)
	}
	if c.Orchestrator.StopGrace <= 0 {
		return fmt.Errorf("orchestrator.stop_grace must be positive, got %s", c.Orchestrator.StopGrace)
	}
	if strings.Contains(c.Engine.APIVersion, "v") {
		return fmt.Errorf("engine.api_version should be a bare version such as 1.41, got %q", c.Engine.APIVersion)
	}
	return nil
}
