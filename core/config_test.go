package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("ENV", "")
		conf, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "DEV", conf.Env)
		assert.False(t, conf.TestMode)
		assert.Equal(t, "Study Saathi", conf.AppName)
		assert.Equal(t, DriverBolt, conf.Storage.Driver)
		assert.Equal(t, filepath.Join("data", "saathi.db"), conf.Storage.Path)
		assert.Equal(t, "json", conf.Storage.Encoding)
		assert.Equal(t, 5432, conf.Storage.Database.Port)
		assert.True(t, conf.Planner.Seed)
		assert.Equal(t, 5, conf.Planner.UpcomingLimit)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("ENV", "test")
		t.Setenv("TEST_STORAGE_DRIVER", "memory")
		t.Setenv("TEST_STORAGE_ASYNC", "true")
		t.Setenv("TEST_PLANNER_RECENTLIMIT", "9")
		conf, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
		assert.Equal(t, DriverMemory, conf.Storage.Driver)
		assert.True(t, conf.Storage.Async)
		assert.Equal(t, 9, conf.Planner.RecentLimit)
	})

	t.Run("config file", func(t *testing.T) {
		t.Setenv("ENV", "")
		path := filepath.Join(t.TempDir(), "saathi.yaml")
		content := "storage:\n  driver: sqlite\n  encoding: yaml\nplanner:\n  seed: false\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		conf, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, conf.Storage.Driver)
		assert.Equal(t, "yaml", conf.Storage.Encoding)
		assert.False(t, conf.Planner.Seed)
		assert.Equal(t, "info", conf.Log.Level)
	})

	t.Run("missing config file", func(t *testing.T) {
		t.Setenv("ENV", "")
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})
}

func TestDatabaseConfig_Address(t *testing.T) {
	dbc := DatabaseConfig{Host: "localhost", Port: 5432}
	assert.Equal(t, "localhost:5432", dbc.Address())
}
