package database

import (
	"testing"
	"time"

	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func validPostgresConfig() *Config {
	return &Config{
		Driver:        DriverPostgres,
		Host:          "localhost",
		Port:          5432,
		Username:      "raffle",
		Password:      "secret",
		Database:      "raffle",
		SSLMode:       "disable",
		MaxOpenConns:  10,
		MaxIdleConns:  5,
		QueryTimeout:  5 * time.Second,
		LogLevel:      "info",
		RetryAttempts: 3,
	}
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"Valid postgres", func(c *Config) {}, false},
		{"Missing host", func(c *Config) { c.Host = "" }, true},
		{"Bad port", func(c *Config) { c.Port = 70000 }, true},
		{"Bad ssl mode", func(c *Config) { c.SSLMode = "maybe" }, true},
		{"Unknown driver", func(c *Config) { c.Driver = "oracle" }, true},
		{"Sqlite ignores credentials", func(c *Config) {
			c.Driver = DriverSQLite
			c.Host, c.Username, c.Password = "", "", ""
			c.SQLitePath = "raffle.db"
		}, false},
		{"Sqlite without path", func(c *Config) {
			c.Driver = DriverSQLite
			c.SQLitePath = ""
		}, true},
		{"Serializable isolation", func(c *Config) { c.IsolationLevel = "SERIALIZABLE" }, false},
		{"Unknown isolation", func(c *Config) { c.IsolationLevel = "snapshot" }, true},
		{"Zero timeout", func(c *Config) { c.QueryTimeout = 0 }, true},
		{"Bad log level", func(c *Config) { c.LogLevel = "trace" }, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validPostgresConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfigDSN(t *testing.T) {
	pg := validPostgresConfig()
	assert.Contains(t, pg.DSN(), "host=localhost port=5432 user=raffle")
	assert.Contains(t, pg.DSN(), "TimeZone=UTC")

	lite := &Config{Driver: DriverSQLite, SQLitePath: "data/raffle.db"}
	assert.Contains(t, lite.DSN(), "data/raffle.db?_pragma=busy_timeout(5000)")
}

func TestCreateConfigFromAppConfig(t *testing.T) {
	t.Setenv("RS_DB_HOST", "")
	t.Setenv("RS_DB_PASSWORD", "from-env")

	app := &config.Config{
		Database: config.DatabaseConfig{
			Driver:         DriverPostgres,
			Host:           "db",
			Port:           "6543",
			Username:       "raffle",
			Password:       "from-file",
			Database:       "raffle",
			IsolationLevel: "repeatable read",
			MaxOpenConns:   40,
			QueryTimeout:   7 * time.Second,
			SlowQuery:      50 * time.Millisecond,
			RetryAttempts:  2,
		},
		Logger: config.LoggerConfig{Level: "warn"},
	}

	cfg := CreateConfigFromAppConfig(app)

	assert.Equal(t, "db", cfg.Host)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, "from-env", cfg.Password)
	assert.Equal(t, "repeatable read", cfg.IsolationLevel)
	assert.Equal(t, 40, cfg.MaxOpenConns)
	assert.Equal(t, 7*time.Second, cfg.QueryTimeout)
	assert.Equal(t, 50*time.Millisecond, cfg.SlowThreshold)
	assert.Equal(t, 2, cfg.RetryAttempts)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.NoError(t, cfg.Validate())
}

func TestParsePort(t *testing.T) {
	assert.Equal(t, 5432, ParsePort("5432"))
	assert.Zero(t, ParsePort(""))
	assert.Zero(t, ParsePort("abc"))
	assert.Zero(t, ParsePort("99999"))
}
