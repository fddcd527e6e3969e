package database

import (
	"fmt"

	"github.com/amirhossein-jamali/raffle-service/internal/infrastructure/config"
)

// CreateConfigFromAppConfig adapts the application configuration to database configuration.
// Environment variables already applied by DefaultConfig win over file values for credentials.
func CreateConfigFromAppConfig(conf *config.Config) *Config {
	dbConf := DefaultConfig()
	src := conf.Database

	if src.Driver != "" {
		dbConf.Driver = src.Driver
	}
	if dbConf.Host == "" {
		dbConf.Host = src.Host
	}
	if p := ParsePort(src.Port); p > 0 {
		dbConf.Port = p
	}
	if dbConf.Username == "" {
		dbConf.Username = src.Username
	}
	if dbConf.Password == "" {
		dbConf.Password = src.Password
	}
	if dbConf.Database == "" {
		dbConf.Database = src.Database
	}

	if src.SSLMode != "" {
		dbConf.SSLMode = src.SSLMode
	}
	if src.SQLitePath != "" {
		dbConf.SQLitePath = src.SQLitePath
	}
	if src.IsolationLevel != "" {
		dbConf.IsolationLevel = src.IsolationLevel
	}
	if src.MaxOpenConns > 0 {
		dbConf.MaxOpenConns = src.MaxOpenConns
	}
	if src.MaxIdleConns > 0 {
		dbConf.MaxIdleConns = src.MaxIdleConns
	}
	if src.ConnMaxLifetime > 0 {
		dbConf.ConnMaxLifetime = src.ConnMaxLifetime
	}
	if src.ConnMaxIdleTime > 0 {
		dbConf.ConnMaxIdleTime = src.ConnMaxIdleTime
	}
	if src.QueryTimeout > 0 {
		dbConf.QueryTimeout = src.QueryTimeout
	}
	if src.SlowQuery > 0 {
		dbConf.SlowThreshold = src.SlowQuery
	}
	if src.RetryAttempts >= 0 {
		dbConf.RetryAttempts = src.RetryAttempts
	}
	if src.RetryDelay > 0 {
		dbConf.RetryDelay = src.RetryDelay
	}
	if conf.Logger.Level != "" {
		dbConf.LogLevel = conf.Logger.Level
	}

	return dbConf
}

// ParsePort converts a port string to an int, returning 0 when unset or invalid
func ParsePort(port string) int {
	var p int
	_, err := fmt.Sscanf(port, "%d", &p)
	if err != nil || p <= 0 || p > 65535 {
		return 0
	}
	return p
}
