package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"k8s.io/utils/ptr"
)

// Config is the top level configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`   // HTTP proxy settings
	Logging  LoggingConfig  `toml:"logging"`  // Application logging settings
	Upstream UpstreamConfig `toml:"upstream"` // aviationweather.gov client settings
}

// ServerConfig contains HTTP server configuration settings
type ServerConfig struct {
	Host               string   `toml:"host"`
	Port               int      `toml:"port"`
	CORSAllowedOrigins []string `toml:"cors_allowed_origins"` // use ["*"] for all origins
	ReadTimeoutSecs    int      `toml:"read_timeout_seconds"`
	WriteTimeoutSecs   int      `toml:"write_timeout_seconds"`
	IdleTimeoutSecs    int      `toml:"idle_timeout_seconds"`
	ShutdownTimeoutSec int      `toml:"shutdown_timeout_seconds"`
}

// LoggingConfig contains application logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`  // "debug", "info", "warn" or "error"
	Format string `toml:"format"` // "json" or "console"
}

// UpstreamConfig configures the METAR/TAF source
type UpstreamConfig struct {
	APIBaseURL            string  `toml:"api_base_url"`
	RequestTimeoutSeconds int     `toml:"request_timeout_seconds"`
	MaxRetries            int     `toml:"max_retries"`
	RequestsPerSecond     float64 `toml:"requests_per_second"`
	Burst                 int     `toml:"burst"`
	METARHours            int     `toml:"metar_hours"` // how far back to look for the latest METAR
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               8080,
			CORSAllowedOrigins: []string{"*"},
			ReadTimeoutSecs:    10,
			WriteTimeoutSecs:   30,
			IdleTimeoutSecs:    60,
			ShutdownTimeoutSec: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Upstream: UpstreamConfig{
			APIBaseURL:            "https://aviationweather.gov/api/data",
			RequestTimeoutSeconds: 10,
			MaxRetries:            2,
			RequestsPerSecond:     5,
			Burst:                 2,
			METARHours:            3,
		},
	}
}

// LoadConfig loads the TOML file at path on top of the defaults, then applies
// WXDECODE_* environment overrides. An empty path skips the file. A .env file
// in the working directory is loaded first if present.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnv overrides selected settings from the environment
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	get := func(key string) *string {
		if v, ok := lookup(key); ok && v != "" {
			return ptr.To(v)
		}
		return nil
	}

	if v := get("WXDECODE_PORT"); v != nil {
		port, err := strconv.Atoi(*v)
		if err != nil {
			return fmt.Errorf("invalid WXDECODE_PORT %q: %w", *v, err)
		}
		c.Server.Port = port
	}
	c.Logging.Level = ptr.Deref(get("WXDECODE_LOG_LEVEL"), c.Logging.Level)
	c.Upstream.APIBaseURL = ptr.Deref(get("WXDECODE_API_BASE_URL"), c.Upstream.APIBaseURL)

	return nil
}

// Validate checks the configuration for values the services cannot run with
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Upstream.APIBaseURL == "" {
		return fmt.Errorf("upstream.api_base_url cannot be empty")
	}
	if c.Upstream.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("upstream.request_timeout_seconds must be greater than 0")
	}
	if c.Upstream.MaxRetries < 0 {
		return fmt.Errorf("upstream.max_retries must be 0 or greater")
	}
	if c.Upstream.RequestsPerSecond <= 0 {
		return fmt.Errorf("upstream.requests_per_second must be greater than 0")
	}
	if c.Upstream.Burst < 1 {
		return fmt.Errorf("upstream.burst must be at least 1")
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("logging.format must be \"json\" or \"console\"")
	}
	return nil
}
