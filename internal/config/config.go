package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Backend names accepted in the storage setting.
const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendSQLite = "sqlite"
)

// Config is the assistant runtime configuration. Values come from
// config.yaml (working dir, then XDG config dir), overridden by
// ASSISTANT_* environment variables.
type Config struct {
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
	Storage string `yaml:"storage" mapstructure:"storage"`
	Encrypt bool   `yaml:"encrypt" mapstructure:"encrypt"`
}

// Default returns the built-in configuration: plain JSON snapshot in
// the ./data directory.
func Default() *Config {
	return &Config{
		DataDir: "data",
		Storage: BackendJSON,
	}
}

// Load reads the configuration. A missing config file is not an
// error; defaults and environment variables still apply.
func Load() (*Config, error) {
	cfg := Default()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths
	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "assistant"))
	}
	home, _ := os.UserHomeDir()
	viper.AddConfigPath(filepath.Join(home, ".config", "assistant"))

	// Environment variables
	viper.SetEnvPrefix("ASSISTANT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("data_dir", cfg.DataDir)
	viper.SetDefault("storage", cfg.Storage)
	viper.SetDefault("encrypt", cfg.Encrypt)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// Config file not found; ignore and use defaults
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	switch cfg.Storage {
	case BackendJSON, BackendBolt, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown storage backend %q (use %s, %s or %s)",
			cfg.Storage, BackendJSON, BackendBolt, BackendSQLite)
	}
	return cfg, nil
}

// SnapshotPath returns the data file path for the configured backend.
func (c *Config) SnapshotPath() string {
	switch c.Storage {
	case BackendBolt:
		return filepath.Join(c.DataDir, "assistant.db")
	case BackendSQLite:
		return filepath.Join(c.DataDir, "assistant.sqlite")
	default:
		return filepath.Join(c.DataDir, "assistant.json")
	}
}
