package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "munim.db", c.Database.Path)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, ".", c.Export.Dir)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "munim.yaml")
	body := "database:\n  path: /var/lib/munim/ledger.db\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/munim/ledger.db", c.Database.Path)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, ".", c.Export.Dir)
}

func TestLoad_ExplicitMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MUNIM_LOG_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "munim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", c.Log.Level)
}
