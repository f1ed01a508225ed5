package confs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0.0.0.0:3536", cfg.HTTPAddr)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "cafe_management.db", cfg.Database.SQLitePath)
	assert.Equal(t, 100, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_DRIVER", "POSTGRES")
	t.Setenv("DB_URL", "postgres://cafe:cafe@db:5432/cafe")
	t.Setenv("DB_MAX_OPEN_CONNS", "12")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://cafe:cafe@db:5432/cafe", cfg.Database.URL)
	assert.Equal(t, 12, cfg.Database.MaxOpenConns)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestConfig_Validate(t *testing.T) {
	t.Run("postgres without connection settings", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Driver: "postgres", Host: "localhost"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("postgres with individual parameters", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Driver: "postgres", Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "cafe"}}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Driver: "mysql"}}
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadClientConfig(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:3536", cfg.APIURL)

	t.Setenv("CAFE_API_URL", "https://cafe.example.com/")
	cfg, err = LoadClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "https://cafe.example.com", cfg.APIURL)
}
