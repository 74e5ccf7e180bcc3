package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Config is the main configuration struct for the client toolkit and the
// development mock backend.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Limits  LimitsConfig  `yaml:"limits"`
	Cache   CacheConfig   `yaml:"cache"`
	Logging LoggingConfig `yaml:"logging"`
	Mockd   MockdConfig   `yaml:"mockd"`
}

// BackendConfig describes how to reach the Ignacio API.
type BackendConfig struct {
	BaseURL string   `yaml:"base_url"`
	APIKey  string   `yaml:"api_key"`
	Timeout Duration `yaml:"timeout"`
	// Transport selects the HTTP engine: "nethttp" (default) or "fasthttp".
	Transport string `yaml:"transport"`
}

// LimitsConfig holds client-side request rate limits.
type LimitsConfig struct {
	RPS   float64 `yaml:"rps"`
	Burst int     `yaml:"burst"`
}

// CacheConfig controls the stale-while-revalidate fetch cache.
type CacheConfig struct {
	TTL        Duration  `yaml:"ttl"`
	MaxEntries int       `yaml:"max_entries"`
	MaxBytes   SizeBytes `yaml:"max_bytes"`
	// SweepCron schedules the expired-entry sweep; empty disables it.
	SweepCron string `yaml:"sweep_cron"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// MockdConfig holds settings for the local development backend.
type MockdConfig struct {
	Address string `yaml:"address"`
	DBPath  string `yaml:"db_path"`
	APIKey  string `yaml:"api_key"`
}

// SizeBytes represents a number of bytes, unmarshaled from human-friendly
// strings like "64MB" or plain integers.
type SizeBytes int64

func (s *SizeBytes) UnmarshalYAML(node *yaml.Node) error {
	if node == nil {
		*s = 0
		return nil
	}
	raw := strings.TrimSpace(node.Value)
	if raw == "" {
		*s = 0
		return nil
	}
	if v, err := humanize.ParseBytes(raw); err == nil {
		*s = SizeBytes(v)
		return nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		*s = SizeBytes(i)
		return nil
	}
	return fmt.Errorf("invalid size value: %q", node.Value)
}

func (s SizeBytes) Int64() int64 { return int64(s) }

// Duration is a wrapper around time.Duration that supports YAML parsing
// from strings like "100ms" or plain numbers (interpreted as seconds).
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node == nil {
		*d = Duration(0)
		return nil
	}
	raw := strings.TrimSpace(node.Value)
	if raw == "" {
		*d = Duration(0)
		return nil
	}
	if td, err := time.ParseDuration(raw); err == nil {
		*d = Duration(td)
		return nil
	}
	// allow numeric seconds
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		*d = Duration(time.Duration(f * float64(time.Second)))
		return nil
	}
	return fmt.Errorf("invalid duration value: %q", node.Value)
}

func (d Duration) Duration() time.Duration { return time.Duration(d) }
