package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither file nor environment provide a value.
const (
	DefaultBaseURL  = "http://localhost:8977"
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 30 * time.Second
	DefaultMockAddr = ":8977"
	DefaultMockDB   = "./.ignacio-mock"
)

// Load reads the YAML config file at path. A missing file is not an error;
// defaults plus environment overrides still apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		} else if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// ResolveConfigPath picks the config path: an explicitly set flag wins,
// then IGNACIO_CONFIG, then the flag default.
func ResolveConfigPath(flagVal string, flagSet bool) string {
	if flagSet {
		return flagVal
	}
	if v := os.Getenv("IGNACIO_CONFIG"); v != "" {
		return v
	}
	return flagVal
}

// applyEnv overrides file values from IGNACIO_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("IGNACIO_BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("IGNACIO_API_KEY"); v != "" {
		cfg.Backend.APIKey = v
	}
	if v := os.Getenv("IGNACIO_BACKEND_TIMEOUT"); v != "" {
		if td, err := time.ParseDuration(v); err == nil {
			cfg.Backend.Timeout = Duration(td)
		}
	}
	if v := os.Getenv("IGNACIO_TRANSPORT"); v != "" {
		cfg.Backend.Transport = v
	}
	if v := os.Getenv("IGNACIO_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Limits.RPS = f
		}
	}
	if v := os.Getenv("IGNACIO_BURST"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			cfg.Limits.Burst = i
		}
	}
	if v := os.Getenv("IGNACIO_CACHE_TTL"); v != "" {
		if td, err := time.ParseDuration(v); err == nil {
			cfg.Cache.TTL = Duration(td)
		}
	}
	if v := os.Getenv("IGNACIO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("IGNACIO_MOCKD_ADDR"); v != "" {
		cfg.Mockd.Address = v
	}
	if v := os.Getenv("IGNACIO_MOCKD_DB_PATH"); v != "" {
		cfg.Mockd.DBPath = v
	}
	if v := os.Getenv("IGNACIO_MOCKD_API_KEY"); v != "" {
		cfg.Mockd.APIKey = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Backend.BaseURL == "" {
		cfg.Backend.BaseURL = DefaultBaseURL
	}
	if cfg.Backend.Timeout.Duration() == 0 {
		cfg.Backend.Timeout = Duration(DefaultTimeout)
	}
	if cfg.Backend.Transport == "" {
		cfg.Backend.Transport = "nethttp"
	}
	if cfg.Cache.TTL.Duration() == 0 {
		cfg.Cache.TTL = Duration(DefaultCacheTTL)
	}
	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = 512
	}
	if cfg.Mockd.Address == "" {
		cfg.Mockd.Address = DefaultMockAddr
	}
	if cfg.Mockd.DBPath == "" {
		cfg.Mockd.DBPath = DefaultMockDB
	}
}
