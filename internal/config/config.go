package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration
type Config struct {
	General GeneralConfig `toml:"general"`
	Session SessionConfig `toml:"session"`
	Audit   AuditConfig   `toml:"audit"`
}

// GeneralConfig holds store-wide display settings
type GeneralConfig struct {
	StoreName string `toml:"store_name"`
	Spool     string `toml:"spool"`
	Detail    bool   `toml:"detail"`
	Width     int    `toml:"width"`
}

// SessionConfig holds the operator identity used until a login step exists
type SessionConfig struct {
	User  string `toml:"user"`
	Level int    `toml:"level"`
}

// AuditConfig holds audit trail settings
type AuditConfig struct {
	Persist       bool   `toml:"persist"`
	DatabasePath  string `toml:"database_path"`
	DesktopAlerts bool   `toml:"desktop_alerts"`
	SlackWebhook  string `toml:"slack_webhook"`
}

// AlertsEnabled reports whether denied attempts are pushed to supervisors
func (a AuditConfig) AlertsEnabled() bool {
	return a.DesktopAlerts || a.SlackWebhook != ""
}

// Default returns a Config with sensible defaults
func Default() *Config {
	home, _ := os.UserHomeDir()
	return &Config{
		General: GeneralConfig{
			StoreName: "Mi Comercio S.A.",
			Spool:     "",
			Width:     60,
		},
		Session: SessionConfig{
			User:  "DEMO",
			Level: 3,
		},
		Audit: AuditConfig{
			Persist:      true,
			DatabasePath: filepath.Join(home, ".erp-console", "audit.db"),
		},
	}
}

// Load reads configuration from a TOML file, falling back to defaults
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	// Expand paths
	cfg.General.Spool = ExpandPath(cfg.General.Spool)
	cfg.Audit.DatabasePath = ExpandPath(cfg.Audit.DatabasePath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values the console cannot work with
func (c *Config) Validate() error {
	if c.Session.Level < 0 {
		return fmt.Errorf("session.level must not be negative, got %d", c.Session.Level)
	}
	if c.General.Width < 0 {
		return fmt.Errorf("general.width must not be negative, got %d", c.General.Width)
	}
	if c.Audit.Persist && c.Audit.DatabasePath == "" {
		return fmt.Errorf("audit.database_path is required when audit.persist is set")
	}
	return nil
}

// ExpandPath expands ~ to the user's home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// DefaultConfigPath returns the default config file location
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "erp-console", "config.toml")
}

// LocalConfigName is the per-directory config file looked up by FindLocalConfig
const LocalConfigName = ".erp-console.toml"

// FindLocalConfig walks up from the working directory looking for
// LocalConfigName and returns its path, or "" when none exists
func FindLocalConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		candidate := filepath.Join(dir, LocalConfigName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// LoadWithLocalFallback loads the explicit path when given, otherwise a
// local config found from the working directory, otherwise the default path
func LoadWithLocalFallback(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if local := FindLocalConfig(); local != "" {
		return Load(local)
	}
	return Load(DefaultConfigPath())
}
