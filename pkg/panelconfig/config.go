// Package panelconfig loads the YAML configuration for the settings
// panel. Defaults are centralized here so the rest of the code can
// assume a well-formed config.
package panelconfig

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the top-level YAML configuration for the panel process.
type Config struct {
	// Host daemon connection
	Host HostConfig `yaml:"host"`

	// Panel window
	Window WindowConfig `yaml:"window"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

type HostConfig struct {
	WsURL     string `yaml:"ws_url"`
	TimeoutMS int    `yaml:"timeout_ms"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	FPS    int `yaml:"fps"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a fully-populated Config with defaults.
func DefaultConfig() Config {
	return Config{
		Host: HostConfig{
			WsURL:     "ws://127.0.0.1:8374",
			TimeoutMS: 2000,
		},
		Window: WindowConfig{
			Width:  640,
			Height: 640,
			FPS:    60,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads and parses a YAML config file on top of the defaults.
// Unknown fields are rejected (helps catch typos) via KnownFields(true).
// A missing file is not an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config yaml: %w", err)
	}

	return cfg, nil
}

// Validate checks config invariants and returns a user-friendly error.
// Intended to be called after defaults + file + env overrides.
func (c *Config) Validate() error {
	if c.Host.WsURL == "" {
		return errors.New("host.ws_url must not be empty")
	}
	if c.Host.TimeoutMS <= 0 {
		return errors.New("host.timeout_ms must be > 0")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.New("window.width and window.height must be > 0")
	}
	if c.Window.FPS <= 0 || c.Window.FPS > 240 {
		return errors.New("window.fps must be between 1 and 240")
	}
	if c.Logging.Level == "" {
		return errors.New("logging.level must not be empty")
	}
	return nil
}

// HostTimeout returns the daemon request timeout as a duration.
func (c *Config) HostTimeout() time.Duration {
	return time.Duration(c.Host.TimeoutMS) * time.Millisecond
}

// ApplyEnv overlays WAVEBAR_* environment variables on the config.
// Only the connection knobs are exposed this way; everything else
// belongs in the file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("WAVEBAR_HOST_WS_URL"); v != "" {
		c.Host.WsURL = v
	}
	if v := os.Getenv("WAVEBAR_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}
