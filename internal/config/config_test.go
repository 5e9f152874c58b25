package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.Port)
	}
	if cfg.ReplyDelay != 500*time.Millisecond {
		t.Fatalf("expected 500ms reply delay, got %s", cfg.ReplyDelay)
	}
	if cfg.SessionIdleTTL != 30*time.Minute {
		t.Fatalf("expected 30m idle ttl, got %s", cfg.SessionIdleTTL)
	}
	if cfg.SessionMax != 1000 {
		t.Fatalf("expected 1000 max sessions, got %d", cfg.SessionMax)
	}
}

func TestLoadFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "PORT=9090\nGENIE_REPLY_DELAY=0s\nADMIN_KEY=secret\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.AdminKey != "secret" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ReplyDelay != 0 {
		t.Fatalf("expected synchronous replies, got %s", cfg.ReplyDelay)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SESSION_MAX", "7")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SessionMax != 7 {
		t.Fatalf("expected env override, got %d", cfg.SessionMax)
	}
}
