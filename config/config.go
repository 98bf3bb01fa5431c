// Package config loads the xraykit configuration through Viper, merging
// system, user, and project TOML files below XRAYKIT_* environment
// variables.
package config

// Config represents the xraykit configuration
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig configures the SQLite database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig configures console logging
type LogConfig struct {
	Theme     string `mapstructure:"theme"`     // Color theme: gruvbox, everforest
	JSON      bool   `mapstructure:"json"`      // Structured JSON output instead of console
	Verbosity int    `mapstructure:"verbosity"` // 0 quiet .. 3 trace
}

// DefaultDatabaseFile is the database filename used when no path is
// configured.
const DefaultDatabaseFile = "xraykit.db"

// DefaultDirPermissions for created configuration directories
const DefaultDirPermissions = 0o755
