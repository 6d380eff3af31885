// Package config loads and saves the jot configuration file at
// <UserConfigDir>/jot/config.json. A missing file yields defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	appDir     = "jot"
	configFile = "config.json"
)

// Config is the root configuration structure.
type Config struct {
	Notes NotesConfig `json:"notes"`
	UI    UIConfig    `json:"ui"`
}

// NotesConfig configures persistence.
type NotesConfig struct {
	// Dir overrides the notes directory (supports ~ expansion).
	// Empty means <UserConfigDir>/jot/notes.
	Dir string `json:"dir,omitempty"`
}

// UIConfig configures appearance.
type UIConfig struct {
	// SidebarWidth is the sidebar pane width in cells.
	SidebarWidth int `json:"sidebarWidth"`
	// MarkdownStyle is the glamour style name ("auto", "dark", "light", ...).
	MarkdownStyle string `json:"markdownStyle"`
	// ShowFooter toggles the status footer.
	ShowFooter bool `json:"showFooter"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			SidebarWidth:  36,
			MarkdownStyle: "auto",
			ShowFooter:    true,
		},
	}
}

// ConfigPath returns the default config file path, or "" if the platform
// config directory cannot be resolved.
func ConfigPath() string {
	cfgDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(cfgDir, appDir, configFile)
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path. If path is empty, the
// default location is used. A missing file returns defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = ConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Save writes the configuration to the default location.
func Save(cfg *Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot resolve config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the configuration to a specific path.
func SaveTo(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// applyDefaults fills zero values left by a partial config file.
func (c *Config) applyDefaults() {
	if c.UI.SidebarWidth <= 0 {
		c.UI.SidebarWidth = 36
	}
	if c.UI.MarkdownStyle == "" {
		c.UI.MarkdownStyle = "auto"
	}
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
