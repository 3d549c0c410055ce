package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// viper держит глобальное состояние, сбрасываем перед каждым тестом
func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoadDefaults(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, BackendJSON, cfg.Storage)
	assert.False(t, cfg.Encrypt)
}

func TestLoadEnvOverrides(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("ASSISTANT_STORAGE", "bolt")
	t.Setenv("ASSISTANT_DATA_DIR", "/var/lib/assistant")
	t.Setenv("ASSISTANT_ENCRYPT", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendBolt, cfg.Storage)
	assert.Equal(t, "/var/lib/assistant", cfg.DataDir)
	assert.True(t, cfg.Encrypt)
}

func TestLoadConfigFile(t *testing.T) {
	resetViper(t)
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := "data_dir: /srv/assistant\nstorage: sqlite\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/assistant", cfg.DataDir)
	assert.Equal(t, BackendSQLite, cfg.Storage)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	resetViper(t)
	t.Chdir(t.TempDir())
	t.Setenv("ASSISTANT_STORAGE", "etcd")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage backend")
}

func TestSnapshotPath(t *testing.T) {
	tests := []struct {
		name    string
		storage string
		want    string
	}{
		{"json", BackendJSON, filepath.Join("data", "assistant.json")},
		{"bolt", BackendBolt, filepath.Join("data", "assistant.db")},
		{"sqlite", BackendSQLite, filepath.Join("data", "assistant.sqlite")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{DataDir: "data", Storage: tt.storage}
			assert.Equal(t, tt.want, cfg.SnapshotPath())
		})
	}
}
