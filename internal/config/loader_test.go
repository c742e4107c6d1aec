package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "addr: \":7000\"\nidle_timeout: 90s\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved path = %q", resolved)
	}
	if cfg.Addr != ":7000" {
		t.Fatalf("addr = %q", cfg.Addr)
	}
	if cfg.IdleTimeout != 90*time.Second {
		t.Fatalf("idle_timeout = %v", cfg.IdleTimeout)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level = %q", cfg.LogLevel)
	}
	// Untouched keys keep their defaults.
	if cfg.PollInterval != Default().PollInterval {
		t.Fatalf("poll_interval = %v", cfg.PollInterval)
	}
}

func TestLoadWritesDefaultConfigWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config was not written: %v", err)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("addr: \":7000\"\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("LINECHAT_ADDR", ":8000")

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8000" {
		t.Fatalf("addr = %q, want env override", cfg.Addr)
	}
}

func TestUpdateFromSkipsZeroValues(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":5000", IdleTimeout: 2 * time.Minute})

	if cfg.Addr != ":5000" || cfg.IdleTimeout != 2*time.Minute {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != Default().LogLevel || cfg.PollInterval != Default().PollInterval {
		t.Fatalf("zero overrides clobbered defaults: %+v", cfg)
	}
}
