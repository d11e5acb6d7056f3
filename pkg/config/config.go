// Package config loads the solve24 configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/solve24/pkg/engine"
	"github.com/wildfunctions/solve24/pkg/logging"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// DefaultPath is the file read when --config is not given.
const DefaultPath = "solve24.yaml"

// Config is the root of the configuration file.
type Config struct {
	Engine  engine.Config  `yaml:"engine"`
	Server  ServerConfig   `yaml:"server"`
	Logging logging.Config `yaml:"logging"`
}

// ServerConfig configures the HTTP and websocket server.
type ServerConfig struct {
	Addr            string `yaml:"addr"`
	MaxClients      int    `yaml:"max_clients"`
	PingInterval    string `yaml:"ping_interval"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: engine.DefaultConfig(),
		Server: ServerConfig{
			Addr:            ":8024",
			MaxClients:      32,
			PingInterval:    "30s",
			ShutdownTimeout: "5s",
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies SOLVE24_* environment variables.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("SOLVE24_TARGET"); v != "" {
		target, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: SOLVE24_TARGET=%q", ErrInvalid, v)
		}
		c.Engine.Target = target
	}
	if v := os.Getenv("SOLVE24_POOL"); v != "" {
		c.Engine.Pool = v
	}
	if v := os.Getenv("SOLVE24_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: SOLVE24_WORKERS=%q", ErrInvalid, v)
		}
		c.Engine.Workers = workers
	}
	if v := os.Getenv("SOLVE24_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("SOLVE24_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	return nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("%w: engine: %w", ErrInvalid, err)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("%w: server.addr is empty", ErrInvalid)
	}
	if c.Server.MaxClients < 0 {
		return fmt.Errorf("%w: server.max_clients must be >= 0, got %d", ErrInvalid, c.Server.MaxClients)
	}
	for name, d := range map[string]string{
		"server.ping_interval":    c.Server.PingInterval,
		"server.shutdown_timeout": c.Server.ShutdownTimeout,
	} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalid, name, err)
		}
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// GetPingInterval returns the websocket ping interval as a duration.
func (s ServerConfig) GetPingInterval() time.Duration {
	d, err := time.ParseDuration(s.PingInterval)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// GetShutdownTimeout returns the graceful shutdown timeout as a duration.
func (s ServerConfig) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(s.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}
