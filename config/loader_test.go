package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoaderDefaults(t *testing.T) {
	cfg, err := NewLoader("").Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":8080" {
		t.Errorf("expected default listen addr ':8080', got %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("expected default log level 'info', got %q", cfg.Log.Level)
	}
	if cfg.Flow.MaxDistance != 0 {
		t.Errorf("expected default max_distance 0, got %d", cfg.Flow.MaxDistance)
	}
}

func TestLoaderFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `
http:
  listen_addr: ":9090"
flow:
  max_distance: 4
log:
  level: debug
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTP.ListenAddr != ":9090" {
		t.Errorf("expected listen addr ':9090', got %q", cfg.HTTP.ListenAddr)
	}
	if cfg.Flow.MaxDistance != 4 {
		t.Errorf("expected max_distance 4, got %d", cfg.Flow.MaxDistance)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected log level 'debug', got %q", cfg.Log.Level)
	}
}

func TestLoaderMissingFileIsNotAnError(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "missing.yaml")).Load()
	if err != nil {
		t.Fatalf("expected a missing optional config file to be tolerated, got %v", err)
	}
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("FLOWENGINE_LOG_LEVEL", "warn")
	cfg, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected env override to win, got %q", cfg.Log.Level)
	}
}

func TestConfigValidateRejectsBadLogLevel(t *testing.T) {
	cfg := &Config{Log: LogConfig{Level: "nope", Format: "json"}}
	if err := cfg.Validate(); err == nil {
		t.Error("expected an error for an invalid log level")
	}
}
