package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	// Isolated viper instance without loading user/system config
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadWithViper(v)
	if err != nil {
		t.Fatalf("LoadWithViper() failed: %v", err)
	}

	if cfg.Database.Path != DefaultDatabaseFile {
		t.Errorf("expected default database path %q, got %q", DefaultDatabaseFile, cfg.Database.Path)
	}
	if cfg.Log.Theme != "gruvbox" {
		t.Errorf("expected default log theme 'gruvbox', got %q", cfg.Log.Theme)
	}
	if cfg.Log.JSON {
		t.Error("expected JSON logging disabled by default")
	}
	if cfg.Log.Verbosity != 0 {
		t.Errorf("expected default verbosity 0, got %d", cfg.Log.Verbosity)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "xraykit.toml")
	content := `
[database]
path = "/var/lib/xraykit/data.db"

[log]
json = true
verbosity = 2
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config file: %v", err)
	}

	cfg, err := LoadFromFile(configPath)
	if err != nil {
		t.Fatalf("LoadFromFile() failed: %v", err)
	}

	if cfg.Database.Path != "/var/lib/xraykit/data.db" {
		t.Errorf("expected configured database path, got %q", cfg.Database.Path)
	}
	if !cfg.Log.JSON {
		t.Error("expected JSON logging enabled")
	}
	if cfg.Log.Verbosity != 2 {
		t.Errorf("expected verbosity 2, got %d", cfg.Log.Verbosity)
	}
	// Unset keys keep their defaults.
	if cfg.Log.Theme != "gruvbox" {
		t.Errorf("expected default log theme, got %q", cfg.Log.Theme)
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestEnvOverride(t *testing.T) {
	Reset()
	t.Cleanup(Reset)
	t.Setenv("XRAYKIT_DATABASE_PATH", "/tmp/env-override.db")

	if got := GetString("database.path"); got != "/tmp/env-override.db" {
		t.Errorf("expected env override, got %q", got)
	}
}
