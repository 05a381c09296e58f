// Package config loads and validates tool configuration. The loaded value
// is passed explicitly to whatever needs it; there is no process-global
// config state.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// ServerDir is the Minecraft server root, holding logs/, world/,
	// usercache.json and banned-players.json.
	ServerDir string `yaml:"server_dir"`

	// BotsFile is the chatbot personalities JSON listing the automated
	// account names excluded from all reports.
	BotsFile string `yaml:"bots_file"`

	Wiki WikiConfig `yaml:"wiki,omitempty"`
}

// WikiConfig holds wiki connection settings.
type WikiConfig struct {
	// BaseURL is the wiki root, e.g. https://wiki.xandaris.space.
	BaseURL string `yaml:"base_url,omitempty"`

	// Token is the bearer token for editing requests. Supports ${VAR}
	// environment expansion.
	Token string `yaml:"token,omitempty"`
}
