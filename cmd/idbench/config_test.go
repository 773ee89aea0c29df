package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/idpool/idpool"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without flags", func(t *testing.T) {
		cfg, err := loadConfig(nil)
		assert.NoError(t, err)
		assert.Equal(t, defaultConfig(), cfg)
	})

	t.Run("flags override the defaults", func(t *testing.T) {
		cfg, err := loadConfig([]string{"-trials", "3", "-ids", "10", "-refill", "async", "-generator", "ulid"})
		assert.NoError(t, err)
		assert.Equal(t, 3, cfg.Trials)
		assert.Equal(t, 10, cfg.IDsPerTrial)
		assert.Equal(t, "async", cfg.Refill)
		assert.Equal(t, "ulid", cfg.Generator)

		// untouched settings keep their defaults
		assert.Equal(t, 4096, cfg.Capacity)
		assert.Equal(t, "table", cfg.Format)
	})

	t.Run("reading settings from a YAML file", func(t *testing.T) {
		path := writeConfigFile(t, "trials: 5\ncapacity: 128\nrefill: async\n")

		cfg, err := loadConfig([]string{"-config", path})
		assert.NoError(t, err)
		assert.Equal(t, 5, cfg.Trials)
		assert.Equal(t, 128, cfg.Capacity)
		assert.Equal(t, "async", cfg.Refill)
		assert.Equal(t, 1000, cfg.IDsPerTrial) // not in the file
	})

	t.Run("explicit flags win over the file", func(t *testing.T) {
		path := writeConfigFile(t, "trials: 5\ncapacity: 128\n")

		cfg, err := loadConfig([]string{"-config", path, "-trials", "7"})
		assert.NoError(t, err)
		assert.Equal(t, 7, cfg.Trials)
		assert.Equal(t, 128, cfg.Capacity)
	})

	t.Run("rejecting a missing file", func(t *testing.T) {
		_, err := loadConfig([]string{"-config", filepath.Join(t.TempDir(), "missing.yml")})
		assert.Error(t, err)
	})

	t.Run("rejecting a malformed file", func(t *testing.T) {
		path := writeConfigFile(t, "trials: [not a number\n")

		_, err := loadConfig([]string{"-config", path})
		assert.Error(t, err)
	})
}

func TestConfigTranslation(t *testing.T) {
	t.Run("refill policies", func(t *testing.T) {
		policy, err := config{Refill: "sync"}.refillPolicy()
		assert.NoError(t, err)
		assert.Equal(t, idpool.RefillSynchronous, policy)

		policy, err = config{Refill: "async"}.refillPolicy()
		assert.NoError(t, err)
		assert.Equal(t, idpool.RefillAsynchronous, policy)

		_, err = config{Refill: "eager"}.refillPolicy()
		assert.Error(t, err)
	})

	t.Run("generators", func(t *testing.T) {
		gen, err := config{Generator: "uuid"}.generator()
		assert.NoError(t, err)
		assert.NotNil(t, gen)

		gen, err = config{Generator: "ulid"}.generator()
		assert.NoError(t, err)
		assert.NotNil(t, gen)

		_, err = config{Generator: "snowflake"}.generator()
		assert.Error(t, err)
	})
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(content), 0o600)
	assert.NoError(t, err)
	return path
}
