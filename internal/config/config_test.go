package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFields(t *testing.T) {
	path := writeConfig(t, `data_dir: exports/2024
database: postgresql://loader@localhost/shop
timeout: 90s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "exports/2024", cfg.DataDir)
	assert.Equal(t, "postgresql://loader@localhost/shop", cfg.Database)
	assert.Equal(t, "90s", cfg.Timeout)

	d, err := cfg.ParsedTimeout()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Second, d)
}

func TestLoad_MinimalYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "database: shop.db\n"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.DataDir)
	assert.Equal(t, "shop.db", cfg.Database)

	d, err := cfg.ParsedTimeout()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), ConfigFileName))
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{{invalid"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_UnknownKey(t *testing.T) {
	cfg, err := Load(writeConfig(t, "datadir: typo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "datadir")
	assert.Nil(t, cfg)
}

func TestParsedTimeout_Invalid(t *testing.T) {
	for _, raw := range []string{"ten minutes", "-5m"} {
		_, err := (&ProjectConfig{Timeout: raw}).ParsedTimeout()
		assert.Error(t, err, raw)
	}
}

func TestParsedTimeout_NilConfig(t *testing.T) {
	var cfg *ProjectConfig
	d, err := cfg.ParsedTimeout()
	require.NoError(t, err)
	assert.Zero(t, d)
}

func TestLoad_CommentsOnly(t *testing.T) {
	cfg, err := Load(writeConfig(t, "# nothing configured yet\n"))
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}
