// Package config provides configuration loading and validation for the
// ats-checker server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Defaults applied when a field is absent from the config file.
const (
	DefaultPort               = 8080
	DefaultMaxUploadBytes     = 10 * 1024 * 1024 // multipart envelope; the PDF limit is enforced separately
	DefaultRateLimitPerMinute = 30
	DefaultRateLimitBurst     = 5
)

// Config represents configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	Port               int   `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	MaxUploadBytes     int64 `json:"max_upload_bytes,omitempty" validate:"omitempty,min=1024"`
	RateLimitPerMinute int   `json:"rate_limit_per_minute,omitempty" validate:"omitempty,min=1"`
	RateLimitBurst     int   `json:"rate_limit_burst,omitempty" validate:"omitempty,min=1"`
	RateLimitDisabled  bool  `json:"rate_limit_disabled,omitempty"`
}

// Default returns a Config populated with defaults.
func Default() *Config {
	return &Config{
		Port:               DefaultPort,
		MaxUploadBytes:     DefaultMaxUploadBytes,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		RateLimitBurst:     DefaultRateLimitBurst,
	}
}

// Load reads configuration from a JSON file and fills unset fields with
// defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if c.RateLimitPerMinute == 0 {
		c.RateLimitPerMinute = DefaultRateLimitPerMinute
	}
	if c.RateLimitBurst == 0 {
		c.RateLimitBurst = DefaultRateLimitBurst
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
