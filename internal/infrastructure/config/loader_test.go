package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
server:
  port: 9090
database:
  driver: sqlite
  sqlitePath: ":memory:"
  queryTimeout: 3
logger:
  level: debug
paymentMethods:
  cacheTTL: 60
draw:
  lockBackend: redis
  lockTTL: 30
`

func withConfigDir(t *testing.T, env, body string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, env+".yaml"), []byte(body), 0o600))

	oldPaths, oldDotEnv := ConfigPaths, DotEnvPaths
	ConfigPaths = []string{dir}
	DotEnvPaths = []string{filepath.Join(dir, ".env")}
	t.Cleanup(func() {
		ConfigPaths, DotEnvPaths = oldPaths, oldDotEnv
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("Reads file and converts durations", func(t *testing.T) {
		t.Setenv("RS_ENV", Test)
		withConfigDir(t, Test, testYAML)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, Test, cfg.Environment)
		assert.Equal(t, 9090, cfg.Server.Port)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
		assert.Equal(t, 3*time.Second, cfg.Database.QueryTimeout)
		assert.Equal(t, 200*time.Millisecond, cfg.Database.SlowQuery)
		assert.Equal(t, time.Minute, cfg.PaymentMethods.CacheTTL)
		assert.Equal(t, LockBackendRedis, cfg.Draw.LockBackend)
		assert.Equal(t, 30*time.Second, cfg.Draw.LockTTL)
		assert.Equal(t, 12*time.Hour, cfg.Auth.TokenTTL)
		assert.Equal(t, "debug", cfg.Logger.Level)
	})

	t.Run("Environment overrides file values", func(t *testing.T) {
		t.Setenv("RS_ENV", Test)
		t.Setenv("RS_DB_DRIVER", "postgres")
		t.Setenv("RS_DB_HOST", "db.internal")
		t.Setenv("RS_AUTH_JWT_SECRET", "s3cret")
		t.Setenv("RS_NOTIFICATION_ENABLED", "true")
		withConfigDir(t, Test, testYAML)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "db.internal", cfg.Database.Host)
		assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
		assert.True(t, cfg.Notification.Enabled)
	})

	t.Run("Missing file", func(t *testing.T) {
		t.Setenv("RS_ENV", "staging")
		withConfigDir(t, Test, testYAML)

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
