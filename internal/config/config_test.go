package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)

	assert.Equal(t, "external/dictionaries/dictionaries", cfg.Paths.Dictionaries)
	assert.Equal(t, "solutions", cfg.Paths.Solutions)
	assert.Empty(t, cfg.Paths.Filters)
	assert.Equal(t, "cache", cfg.Cache.Dir)
	assert.Equal(t, "cache/solutions_filtered", cfg.Cache.SolutionsDir)
	assert.Equal(t, 64, cfg.Cache.IndexSize)
	assert.Equal(t, 6, cfg.Server.Rows)
	assert.Equal(t, 14*24*time.Hour, cfg.Server.TokenTTL)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "goaway", cfg.Filter.Profanity)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ANYLETTERS_DICTIONARIES", "/srv/dicts")
	t.Setenv("ANYLETTERS_INDEX_SIZE", "8")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, "/srv/dicts", cfg.Paths.Dictionaries)
	assert.Equal(t, 8, cfg.Cache.IndexSize)
	assert.Equal(t, "console", cfg.Log.Format)
}

func TestLoadUnlimitedRowsFromEnv(t *testing.T) {
	t.Setenv("GAME_ROWS", "0")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Server.Rows)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "anyletters.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
paths:
  dictionaries: dicts
  solutions: sol
cache:
  index_size: 16
server:
  rows: 8
daily:
  salt: pepper
`), 0o644))

	cfg, err := LoadFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, "dicts", cfg.Paths.Dictionaries)
	assert.Equal(t, "sol", cfg.Paths.Solutions)
	assert.Equal(t, 16, cfg.Cache.IndexSize)
	assert.Equal(t, 8, cfg.Server.Rows)
	assert.Equal(t, "pepper", cfg.Daily.Salt)
	assert.Equal(t, "cache", cfg.Cache.Dir, "defaults still apply")
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"), true)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Paths:  PathsConfig{Dictionaries: "d"},
			Cache:  CacheConfig{Dir: "c", SolutionsDir: "c/s", IndexSize: 1},
			Server: ServerConfig{TokenTTL: time.Hour},
			Log:    LogConfig{Format: "json"},
		}
	}
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"empty dictionaries", func(c *Config) { c.Paths.Dictionaries = " " }, true},
		{"empty cache dir", func(c *Config) { c.Cache.Dir = "" }, true},
		{"empty solutions cache dir", func(c *Config) { c.Cache.SolutionsDir = "" }, true},
		{"zero index size", func(c *Config) { c.Cache.IndexSize = 0 }, true},
		{"negative rows", func(c *Config) { c.Server.Rows = -1 }, true},
		{"zero token ttl", func(c *Config) { c.Server.TokenTTL = 0 }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}
