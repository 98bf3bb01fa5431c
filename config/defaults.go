package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", DefaultDatabaseFile)

	// Logging defaults
	v.SetDefault("log.theme", "gruvbox")
	v.SetDefault("log.json", false)
	v.SetDefault("log.verbosity", 0)
}
