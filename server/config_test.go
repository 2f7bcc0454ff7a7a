package server

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	data := []byte("addr: \":9000\"\nallowed_origins:\n  - https://example.com\nread_timeout: 10s\nmax_history: 50\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":9000" {
		t.Errorf("unexpected addr %q", cfg.Addr)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "https://example.com" {
		t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
	}
	if cfg.ReadTimeout.Duration() != 10*time.Second {
		t.Errorf("unexpected read timeout %v", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout.Duration() != 60*time.Second {
		t.Errorf("expected default write timeout, got %v", cfg.WriteTimeout)
	}
	if cfg.MaxHistory != 50 {
		t.Errorf("unexpected max history %d", cfg.MaxHistory)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}
