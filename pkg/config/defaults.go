package config

import "os"

// DefaultWikiURL is used when no wiki base URL is configured.
const DefaultWikiURL = "https://wiki.xandaris.space"

// Environment variable names.
const (
	EnvServerDir = "XNMC_SERVER_DIR"
	EnvBotsFile  = "XNMC_BOTS_FILE"
	EnvWikiURL   = "XNMC_WIKI_URL"
	EnvWikiToken = "XNMC_WIKI_TOKEN"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Wiki: WikiConfig{
			BaseURL: DefaultWikiURL,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the
// config. Environment always wins over file values.
func (c *Config) applyEnvironmentOverrides() {
	if dir := os.Getenv(EnvServerDir); dir != "" {
		c.ServerDir = dir
	}
	if path := os.Getenv(EnvBotsFile); path != "" {
		c.BotsFile = path
	}
	if u := os.Getenv(EnvWikiURL); u != "" {
		c.Wiki.BaseURL = u
	}
	if token := os.Getenv(EnvWikiToken); token != "" {
		c.Wiki.Token = token
	}
}
