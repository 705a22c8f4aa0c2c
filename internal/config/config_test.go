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
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDialect)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "http://localhost:8080", cfg.APIBaseURL)
	assert.Equal(t, cfg.APIBaseURL, cfg.PublicOrigin)
}

func TestLoadCustomValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("APP_PORT", "9000")
	t.Setenv("DB_DIALECT", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/store")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "2h")
	t.Setenv("PUBLIC_ORIGIN", "https://admin.example.com/")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "postgres", cfg.DBDialect)
	assert.Equal(t, "postgres://localhost/store", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "http://localhost:9000", cfg.APIBaseURL)
	assert.Equal(t, "https://admin.example.com", cfg.PublicOrigin)
	assert.NoError(t, cfg.Validate())
}

func TestLoadYAMLFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: \"7000\"\njwt_secret: from-file\nlog_level: debug\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("CONFIG_FILE", "")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STOREADMIN_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("STOREADMIN_TEST_DOTENV") })

	_, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "loaded", os.Getenv("STOREADMIN_TEST_DOTENV"))
}

func TestLoadInvalidSessionTTL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("SESSION_TTL", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{DBDialect: "sqlite", DatabaseURL: "file::memory:", JWTSecret: "x", SessionTTL: time.Hour}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.DBDialect = "oracle"
	assert.Error(t, bad.Validate())

	bad = valid
	bad.JWTSecret = ""
	assert.EqualError(t, bad.Validate(), "JWT_SECRET is required")

	bad = valid
	bad.SessionTTL = 0
	assert.Error(t, bad.Validate())
}
