package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/xgeom/internal/config"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFromEnv(t *testing.T) {
	c, err := config.FromEnv(env(nil))
	require.Nil(t, err)
	require.Equal(t, config.Default(), c)

	c, err = config.FromEnv(env(map[string]string{
		"XGEOM_LOG_LEVEL":       "debug",
		"XGEOM_LOG_FILE":        "/tmp/geomcheck.log",
		"XGEOM_LOG_MAX_SIZE_MB": "1",
		"XGEOM_LOG_MAX_BACKUPS": "0",
	}))
	require.Nil(t, err)
	require.Equal(t, config.Config{
		LogLevel:      "debug",
		LogFile:       "/tmp/geomcheck.log",
		LogMaxSizeMB:  1,
		LogMaxBackups: 0,
	}, c)

	_, err = config.FromEnv(env(map[string]string{"XGEOM_LOG_MAX_SIZE_MB": "big"}))
	require.Error(t, err)
	_, err = config.FromEnv(env(map[string]string{"XGEOM_LOG_MAX_BACKUPS": "-1"}))
	require.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	err := os.WriteFile(path, []byte("XGEOM_LOG_LEVEL=warn\nXGEOM_LOG_MAX_BACKUPS=7\n"), 0o644)
	require.Nil(t, err)

	t.Setenv("XGEOM_LOG_LEVEL", "")
	os.Unsetenv("XGEOM_LOG_LEVEL")
	t.Setenv("XGEOM_LOG_MAX_BACKUPS", "")
	os.Unsetenv("XGEOM_LOG_MAX_BACKUPS")

	c, err := config.Load(path)
	require.Nil(t, err)
	require.Equal(t, "warn", c.LogLevel)
	require.Equal(t, 7, c.LogMaxBackups)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Nil(t, err)
}
