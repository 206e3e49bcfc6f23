package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GIN_MODE", "")
	t.Setenv("AUTH_JWT_SECRET", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, devJWTSecret, cfg.AuthJWTSecret)
	assert.Equal(t, "postgres://postgres:@localhost:5432/contracting_cms?sslmode=disable", cfg.DSN())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Origins())
	assert.False(t, cfg.SeedOnStart)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://cms:secret@db:5432/cms")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com ,")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("SEED_ON_START", "true")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "postgres://cms:secret@db:5432/cms", cfg.DSN())
	assert.Equal(t, "s3cret", cfg.AuthJWTSecret)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.Origins())
	assert.Equal(t, 2, cfg.RedisDB)
	assert.True(t, cfg.SeedOnStart)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=from_file\n"), 0o600))
	t.Setenv("DB_NAME", "")
	os.Unsetenv("DB_NAME")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from_file", cfg.DBName)
}

func TestValidate_ReleaseNeedsSecret(t *testing.T) {
	cfg := &Config{GinMode: "release", DBHost: "db"}
	assert.ErrorContains(t, cfg.Validate(), "AUTH_JWT_SECRET")

	cfg = &Config{GinMode: "debug"}
	assert.ErrorContains(t, cfg.Validate(), "DB_HOST")
}
