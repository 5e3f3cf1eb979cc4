// Copyright 2026 The Jotview Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for jotview.
//
// Configuration is loaded from a single YAML file specified by:
//   - JOTVIEW_CONFIG environment variable, or
//   - --config flag passed to the command
//
// When neither is set, built-in defaults apply: jotview is expected to
// work against a local jotform service with zero setup. Environment
// variables never override values from the file; the only expansion
// performed is ${VAR} and ${VAR:-default} in path-like fields for
// portability.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the jotform service endpoint used when no config
// file or flag says otherwise.
const DefaultBaseURL = "http://localhost:3030"

// Theme selects the color palette for the interface.
type Theme string

const (
	// ThemeAuto picks dark or light based on the terminal background.
	ThemeAuto Theme = "auto"
	// ThemeDark forces the dark palette.
	ThemeDark Theme = "dark"
	// ThemeLight forces the light palette.
	ThemeLight Theme = "light"
)

// Config is the master configuration for jotview.
type Config struct {
	// Service configures the jotform service connection.
	Service ServiceConfig `yaml:"service"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`

	// UI configures interface appearance.
	UI UIConfig `yaml:"ui"`
}

// ServiceConfig configures the jotform service connection.
type ServiceConfig struct {
	// BaseURL is the root URL of the jotform service.
	// Default: http://localhost:3030
	BaseURL string `yaml:"base_url"`

	// RequestTimeout bounds each HTTP request, as a Go duration
	// string. Default: 10s
	RequestTimeout string `yaml:"request_timeout"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Output is a file path for the debug log. Empty disables file
	// logging; a .zst suffix enables zstd compression. Interactive
	// log lines still appear in the status area regardless.
	Output string `yaml:"output"`

	// Level is the minimum level written to the log output.
	// Values: "debug", "info", "warn", "error". Default: info
	Level string `yaml:"level"`
}

// UIConfig configures interface appearance.
type UIConfig struct {
	// Theme selects the palette. Values: "auto", "dark", "light".
	// Default: auto
	Theme Theme `yaml:"theme"`
}

// Default returns the built-in configuration. Unlike most of the
// fields, these are real operating defaults, not just zero-value
// placeholders: jotview runs without any config file at all.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			BaseURL:        DefaultBaseURL,
			RequestTimeout: "10s",
		},
		Log: LogConfig{
			Output: "",
			Level:  "info",
		},
		UI: UIConfig{
			Theme: ThemeAuto,
		},
	}
}

// Load loads configuration from the JOTVIEW_CONFIG environment
// variable. When the variable is unset the built-in defaults are
// returned; a set-but-unreadable path is an error, never silently
// ignored.
func Load() (*Config, error) {
	configPath := os.Getenv("JOTVIEW_CONFIG")
	if configPath == "" {
		return Default(), nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merging the
// file's values over the built-in defaults.
//
// Environment variables do not override config values. The only
// expansion performed is ${HOME} and similar variables in path fields
// for portability.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	cfg.expandVariables()

	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in the
// fields where paths or endpoints may reasonably embed them.
func (c *Config) expandVariables() {
	vars := map[string]string{
		"HOME": os.Getenv("HOME"),
	}

	c.Service.BaseURL = expandVars(c.Service.BaseURL, vars)
	c.Log.Output = expandVars(c.Log.Output, vars)
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Service.BaseURL == "" {
		errs = append(errs, fmt.Errorf("service.base_url is required"))
	} else if parsed, err := url.Parse(c.Service.BaseURL); err != nil {
		errs = append(errs, fmt.Errorf("service.base_url is not a valid URL: %w", err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errs = append(errs, fmt.Errorf("service.base_url must use http or https, got %q", parsed.Scheme))
	}

	if c.Service.RequestTimeout != "" {
		timeout, err := time.ParseDuration(c.Service.RequestTimeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("service.request_timeout is not a valid duration: %w", err))
		} else if timeout <= 0 {
			errs = append(errs, fmt.Errorf("service.request_timeout must be positive, got %s", timeout))
		}
	}

	logLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(logLevels, c.Log.Level) {
		errs = append(errs, fmt.Errorf("log.level must be one of: %v", logLevels))
	}

	themes := []Theme{ThemeAuto, ThemeDark, ThemeLight}
	if !slices.Contains(themes, c.UI.Theme) {
		errs = append(errs, fmt.Errorf("ui.theme must be one of: %v", themes))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// RequestTimeout returns the parsed request timeout, falling back to
// the default when the field is empty. Call Validate first; a field
// that fails to parse here is treated as the default.
func (c *Config) RequestTimeout() time.Duration {
	if c.Service.RequestTimeout == "" {
		return 10 * time.Second
	}
	timeout, err := time.ParseDuration(c.Service.RequestTimeout)
	if err != nil || timeout <= 0 {
		return 10 * time.Second
	}
	return timeout
}
