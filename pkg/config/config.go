package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path loads
// defaults plus environment overrides only.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyEnvironmentOverrides()
	cfg.Wiki.Token = expandEnvVar(cfg.Wiki.Token)

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.ServerDir == "" {
		return errors.New("server_dir: required (or set " + EnvServerDir + ")")
	}

	if cfg.Wiki.BaseURL != "" {
		u, err := url.Parse(cfg.Wiki.BaseURL)
		if err != nil {
			return fmt.Errorf("wiki.base_url: %w", err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("wiki.base_url: scheme must be http or https, got %q", u.Scheme)
		}
		if u.Host == "" {
			return errors.New("wiki.base_url: must have a host")
		}
	}

	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	return os.ExpandEnv(s)
}
