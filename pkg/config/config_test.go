package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoadFileValuesAndDefaults(t *testing.T) {
	p := writeConfig(t, `
backend:
  base_url: "https://api.ignacio.example"
  api_key: "sk_live"
  timeout: 5s
  transport: fasthttp
limits:
  rps: 4.5
  burst: 8
cache:
  ttl: 90s
  max_entries: 64
  max_bytes: 64MB
  sweep_cron: "*/5 * * * *"
logging:
  level: debug
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != "https://api.ignacio.example" || cfg.Backend.APIKey != "sk_live" {
		t.Fatalf("backend not parsed: %+v", cfg.Backend)
	}
	if cfg.Backend.Timeout.Duration() != 5*time.Second {
		t.Fatalf("timeout: got %v", cfg.Backend.Timeout.Duration())
	}
	if cfg.Backend.Transport != "fasthttp" {
		t.Fatalf("transport: got %q", cfg.Backend.Transport)
	}
	if cfg.Limits.RPS != 4.5 || cfg.Limits.Burst != 8 {
		t.Fatalf("limits not parsed: %+v", cfg.Limits)
	}
	if cfg.Cache.TTL.Duration() != 90*time.Second || cfg.Cache.MaxEntries != 64 {
		t.Fatalf("cache not parsed: %+v", cfg.Cache)
	}
	if cfg.Cache.MaxBytes.Int64() != 64*1000*1000 {
		t.Fatalf("max_bytes: got %d", cfg.Cache.MaxBytes.Int64())
	}
	if cfg.Cache.SweepCron != "*/5 * * * *" {
		t.Fatalf("sweep_cron: got %q", cfg.Cache.SweepCron)
	}
	// defaults still fill unset sections
	if cfg.Mockd.Address != DefaultMockAddr || cfg.Mockd.DBPath != DefaultMockDB {
		t.Fatalf("mockd defaults missing: %+v", cfg.Mockd)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != DefaultBaseURL {
		t.Fatalf("base_url default: got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout.Duration() != DefaultTimeout {
		t.Fatalf("timeout default: got %v", cfg.Backend.Timeout.Duration())
	}
	if cfg.Backend.Transport != "nethttp" {
		t.Fatalf("transport default: got %q", cfg.Backend.Transport)
	}
	if cfg.Cache.TTL.Duration() != DefaultCacheTTL || cfg.Cache.MaxEntries != 512 {
		t.Fatalf("cache defaults: %+v", cfg.Cache)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	p := writeConfig(t, `
backend:
  base_url: "http://from-file"
  timeout: 5s
`)
	t.Setenv("IGNACIO_BACKEND_URL", "http://from-env")
	t.Setenv("IGNACIO_BACKEND_TIMEOUT", "250ms")
	t.Setenv("IGNACIO_RPS", "2")
	t.Setenv("IGNACIO_LOG_LEVEL", "warn")

	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.BaseURL != "http://from-env" {
		t.Fatalf("env should win over file, got %q", cfg.Backend.BaseURL)
	}
	if cfg.Backend.Timeout.Duration() != 250*time.Millisecond {
		t.Fatalf("timeout: got %v", cfg.Backend.Timeout.Duration())
	}
	if cfg.Limits.RPS != 2 {
		t.Fatalf("rps: got %v", cfg.Limits.RPS)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("log level: got %q", cfg.Logging.Level)
	}
}

func TestDurationNumericSeconds(t *testing.T) {
	p := writeConfig(t, `
backend:
  timeout: 3
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.Timeout.Duration() != 3*time.Second {
		t.Fatalf("numeric seconds: got %v", cfg.Backend.Timeout.Duration())
	}
}

func TestResolveConfigPath(t *testing.T) {
	if got := ResolveConfigPath("/flag/path.yaml", true); got != "/flag/path.yaml" {
		t.Fatalf("explicit flag should win, got %q", got)
	}
	t.Setenv("IGNACIO_CONFIG", "/env/path.yaml")
	if got := ResolveConfigPath("/default.yaml", false); got != "/env/path.yaml" {
		t.Fatalf("env should win over default, got %q", got)
	}
	os.Unsetenv("IGNACIO_CONFIG")
	if got := ResolveConfigPath("/default.yaml", false); got != "/default.yaml" {
		t.Fatalf("default path expected, got %q", got)
	}
}
