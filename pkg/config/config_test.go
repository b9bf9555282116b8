package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		writeFile(t, path, `
max_nodes = 200
workers = 3
strict = true

[log]
level = "debug"
`)
		config, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 200, config.MaxNodes)
		assert.Equal(t, 3, config.Workers)
		assert.True(t, config.Strict)
		assert.Equal(t, Default().SubtypeCacheSize, config.SubtypeCacheSize)

		level, err := config.LogLevel()
		require.NoError(t, err)
		assert.Equal(t, slog.LevelDebug, level)
	})

	t.Run("unknown keys", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		writeFile(t, path, "max_node = 1\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "unknown keys max_node")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		writeFile(t, path, "workers = 0\n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "workers must be at least 1, got 0")
	})

	t.Run("syntax error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		writeFile(t, path, "max_nodes = \n")
		_, err := Load(path)
		assert.ErrorContains(t, err, "parsing "+path)
	})
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, FileName), "max_nodes = 42\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, config, err := Find(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), path)
	assert.Equal(t, 42, config.MaxNodes)

	// a repository boundary hides the file above it
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", ".git"), 0o755))
	path, config, err = Find(nested)
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, Default(), config)
}

func TestApplyEnv(t *testing.T) {
	t.Run("overrides", func(t *testing.T) {
		env := map[string]string{
			"NARROW_MAX_NODES": "7",
			"NARROW_WORKERS":   "2",
			"NARROW_STRICT":    "true",
		}
		config := Default()
		require.NoError(t, config.ApplyEnv(func(k string) string { return env[k] }))
		assert.Equal(t, 7, config.MaxNodes)
		assert.Equal(t, 2, config.Workers)
		assert.True(t, config.Strict)
	})

	t.Run("process environment", func(t *testing.T) {
		t.Setenv("NARROW_WORKERS", "5")
		config := Default()
		require.NoError(t, config.ApplyEnv(nil))
		assert.Equal(t, 5, config.Workers)
	})

	t.Run("malformed", func(t *testing.T) {
		config := Default()
		err := config.ApplyEnv(func(k string) string {
			if k == "NARROW_STRICT" {
				return "maybe"
			}
			return ""
		})
		assert.ErrorContains(t, err, "NARROW_STRICT")
	})
}
