package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV_FILE", filepath.Join(dir, "missing.env"))
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "missing.toml"))
	for _, key := range []string{"PORT", "APP_PORT", "DATABASE_URL", "DATABASE_DRIVER", "ADMIN_PASSWORD", "REDIS_ADDR", "RABBITMQ_URL", "MAX_BODY_BYTES"} {
		if value, ok := os.LookupEnv(key); ok {
			t.Setenv(key, value)
			require.NoError(t, os.Unsetenv(key))
		}
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.HTTPAddr())
	assert.Equal(t, int64(10<<20), cfg.App.MaxBodyBytes)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.False(t, cfg.Database.Configured())
	assert.Equal(t, "none", cfg.Database.URLPrefix())
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.RabbitMQ.Enabled())
	assert.Equal(t, "Ahmed Gamal", cfg.Profile.DefaultName)
	assert.Equal(t, "Welcome to my space", cfg.Profile.DefaultBio)
}

func TestLoadFileThenEnvOverride(t *testing.T) {
	dir := isolate(t)

	configPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
[app]
port = 9000

[admin]
password = "from-file"

[database]
driver = "sqlite"
url = "file.db"
`), 0o600))
	t.Setenv("CONFIG_FILE", configPath)
	t.Setenv("ADMIN_PASSWORD", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.App.Port)
	assert.Equal(t, "from-env", cfg.Admin.Password)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.True(t, cfg.Database.Configured())
}

func TestLoadEnvFile(t *testing.T) {
	dir := isolate(t)

	envPath := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("DATABASE_URL=postgresql://user:pw@host/db\nPORT=4000\n"), 0o600))
	t.Setenv("ENV_FILE", envPath)
	t.Cleanup(func() {
		_ = os.Unsetenv("DATABASE_URL")
		_ = os.Unsetenv("PORT")
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.App.Port)
	assert.Equal(t, "postgresql://us...", cfg.Database.URLPrefix())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	isolate(t)
	t.Setenv("DATABASE_DRIVER", "oracle")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}
