package panelconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "panel.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadOverlaysFileOnDefaults(t *testing.T) {
	path := writeConfig(t, "host:\n  ws_url: ws://10.0.0.5:9000\nwindow:\n  fps: 30\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Host.WsURL != "ws://10.0.0.5:9000" {
		t.Errorf("ws_url = %q", cfg.Host.WsURL)
	}
	if cfg.Window.FPS != 30 {
		t.Errorf("fps = %d", cfg.Window.FPS)
	}
	// Untouched fields keep their defaults.
	if cfg.Host.TimeoutMS != 2000 || cfg.Window.Width != 640 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	path := writeConfig(t, "host:\n  socket: /tmp/x.sock\n")

	if _, err := Load(path); err == nil {
		t.Error("unknown field should be rejected")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.Host.WsURL = "" },
		func(c *Config) { c.Host.TimeoutMS = 0 },
		func(c *Config) { c.Window.Width = 0 },
		func(c *Config) { c.Window.FPS = 500 },
		func(c *Config) { c.Logging.Level = "" },
	}
	for i, mutate := range cases {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("case %d: bad config passed validation", i)
		}
	}
}

func TestHostTimeout(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.HostTimeout(); got != 2*time.Second {
		t.Errorf("HostTimeout = %v", got)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("WAVEBAR_HOST_WS_URL", "ws://127.0.0.1:7000")
	t.Setenv("WAVEBAR_LOG_LEVEL", "debug")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	if cfg.Host.WsURL != "ws://127.0.0.1:7000" {
		t.Errorf("ws_url = %q", cfg.Host.WsURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
}
