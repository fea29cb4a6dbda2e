package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultFile is looked up in the working directory when no path is given
const DefaultFile = "inout.yml"

// EnvPrefix prefixes every environment override, e.g. INOUT_LOG_LEVEL
const EnvPrefix = "INOUT"

// Config is the full demo configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Actions ActionsConfig `yaml:"actions"`
}

// LoggingConfig controls the logrus sinks
type LoggingConfig struct {
	Level        string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format       string `yaml:"format" envconfig:"LOG_FORMAT"`
	File         string `yaml:"file" envconfig:"LOG_FILE"`
	ReportCaller bool   `yaml:"report_caller" envconfig:"LOG_CALLER"`
}

// ActionsConfig holds the labels appended by the two action triggers
type ActionsConfig struct {
	ParentLabel string `yaml:"parent_label" envconfig:"PARENT_LABEL"`
	ChildLabel  string `yaml:"child_label" envconfig:"CHILD_LABEL"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Actions: ActionsConfig{
			ParentLabel: "4parent",
			ChildLabel:  "4child",
		},
	}
}

// Load builds the configuration from defaults, then the YAML file, then the
// environment. An explicit path must exist; the default file is optional.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromBytes parses YAML on top of the defaults without touching the environment
func LoadFromBytes(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any INOUT_* variables that are set
func ApplyEnv(cfg *Config) error {
	if err := envconfig.Process(EnvPrefix, &cfg.Logging); err != nil {
		return fmt.Errorf("failed to read logging environment: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg.Actions); err != nil {
		return fmt.Errorf("failed to read actions environment: %w", err)
	}
	return nil
}

// Validate checks the few values that have a closed set
func (c *Config) Validate() error {
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid logging format %q: must be text or json", c.Logging.Format)
	}
	if c.Actions.ParentLabel == "" || c.Actions.ChildLabel == "" {
		return fmt.Errorf("action labels must not be empty")
	}
	return nil
}
