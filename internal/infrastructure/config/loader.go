package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is the prefix of every environment override
const EnvPrefix = "RS"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
	"../configs/.env",
}

// LoadConfig loads configuration from file based on the environment
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")

	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	processDurations(&config)

	return &config, nil
}

// loadDotEnvFile attempts to load environment variables from .env files
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return fmt.Errorf("no .env file found in search paths")
}

// setDefaults sets default values for non-critical configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15)       // seconds
	v.SetDefault("server.writeTimeout", 30)      // seconds, proof uploads
	v.SetDefault("server.idleTimeout", 60)       // seconds
	v.SetDefault("server.readHeaderTimeout", 10) // seconds
	v.SetDefault("server.shutdownTimeout", 10)   // seconds
	v.SetDefault("server.corsOrigins", []string{"*"})

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.sqlitePath", "raffle.db")
	v.SetDefault("database.isolationLevel", "")
	v.SetDefault("database.maxOpenConns", 50)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", 30) // minutes
	v.SetDefault("database.connMaxIdleTime", 15) // minutes
	v.SetDefault("database.queryTimeout", 5)     // seconds
	v.SetDefault("database.slowQuery", 200)      // milliseconds
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", 1) // seconds

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
	v.SetDefault("logger.output", "stdout")
	v.SetDefault("logger.callerInfo", true)
	v.SetDefault("logger.maxSizeMB", 100)
	v.SetDefault("logger.maxBackups", 5)
	v.SetDefault("logger.maxAgeDays", 28)
	v.SetDefault("logger.compress", true)

	v.SetDefault("paymentMethods.cacheTTL", 300) // seconds

	v.SetDefault("purchase.serializePerRaffle", false)
	v.SetDefault("purchase.queueSize", 256)
	v.SetDefault("purchase.maxNumbers", 100)
	v.SetDefault("purchase.requestTimeout", 15) // seconds

	v.SetDefault("draw.lockBackend", LockBackendDatabase)
	v.SetDefault("draw.lockTTL", 60) // seconds

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.keyPrefix", "raffle:")

	v.SetDefault("notification.enabled", false)
	v.SetDefault("notification.queue", "raffle.transactions.verified")
	v.SetDefault("notification.publishTimeout", 5) // seconds

	v.SetDefault("storage.proofDir", "./uploads/proofs")
	v.SetDefault("storage.publicBaseURL", "/uploads/proofs")
	v.SetDefault("storage.maxProofBytes", 5<<20)

	v.SetDefault("auth.issuer", "raffle-service")
	v.SetDefault("auth.tokenTTL", 720) // minutes
}

// getEnvironment determines the environment from RS_ENV
func getEnvironment() string {
	env := os.Getenv(EnvPrefix + "_ENV")
	if env == "" {
		env = Development
	}
	return strings.ToLower(env)
}

// processEnvOverrides ensures environment variables override config values
func processEnvOverrides(v *viper.Viper) {
	stringOverrides := map[string]string{
		"RS_DB_DRIVER":         "database.driver",
		"RS_DB_HOST":           "database.host",
		"RS_DB_PORT":           "database.port",
		"RS_DB_USERNAME":       "database.username",
		"RS_DB_PASSWORD":       "database.password",
		"RS_DB_NAME":           "database.database",
		"RS_DB_SSL_MODE":       "database.sslMode",
		"RS_DB_SQLITE_PATH":    "database.sqlitePath",
		"RS_DB_ISOLATION":      "database.isolationLevel",
		"RS_SERVER_HOST":       "server.host",
		"RS_SERVER_PORT":       "server.port",
		"RS_LOGGER_LEVEL":      "logger.level",
		"RS_LOGGER_OUTPUT":     "logger.output",
		"RS_REDIS_ADDR":        "redis.addr",
		"RS_REDIS_PASSWORD":    "redis.password",
		"RS_AMQP_URL":          "notification.amqpURL",
		"RS_AUTH_JWT_SECRET":   "auth.jwtSecret",
		"RS_DRAW_LOCK_BACKEND": "draw.lockBackend",
		"RS_STORAGE_PROOF_DIR": "storage.proofDir",
	}
	for env, key := range stringOverrides {
		if value := os.Getenv(env); value != "" {
			v.Set(key, value)
		}
	}

	if maxOpenConns := getEnvInt("RS_DB_MAX_OPEN_CONNS", 0); maxOpenConns > 0 {
		v.Set("database.maxOpenConns", maxOpenConns)
	}
	if maxIdleConns := getEnvInt("RS_DB_MAX_IDLE_CONNS", 0); maxIdleConns > 0 {
		v.Set("database.maxIdleConns", maxIdleConns)
	}
	if queryTimeout := getEnvInt("RS_DB_QUERY_TIMEOUT_SECONDS", 0); queryTimeout > 0 {
		v.Set("database.queryTimeout", queryTimeout)
	}
	if retryAttempts := getEnvInt("RS_DB_RETRY_ATTEMPTS", -1); retryAttempts >= 0 {
		v.Set("database.retryAttempts", retryAttempts)
	}
	if redisDB := getEnvInt("RS_REDIS_DB", -1); redisDB >= 0 {
		v.Set("redis.db", redisDB)
	}
	if cacheTTL := getEnvInt("RS_PAYMENT_METHODS_CACHE_TTL_SECONDS", 0); cacheTTL > 0 {
		v.Set("paymentMethods.cacheTTL", cacheTTL)
	}
	if enabled := os.Getenv("RS_NOTIFICATION_ENABLED"); enabled != "" {
		if b, err := strconv.ParseBool(enabled); err == nil {
			v.Set("notification.enabled", b)
		}
	}
	if serialize := os.Getenv("RS_PURCHASE_SERIALIZE_PER_RAFFLE"); serialize != "" {
		if b, err := strconv.ParseBool(serialize); err == nil {
			v.Set("purchase.serializePerRaffle", b)
		}
	}
}

// Helper function to get environment variable as int
func getEnvInt(name string, defaultVal int) int {
	valStr := os.Getenv(name)
	if valStr == "" {
		return defaultVal
	}

	val, err := strconv.Atoi(valStr)
	if err != nil {
		return defaultVal
	}
	return val
}

// processDurations converts time.Duration fields from their raw values to actual durations
func processDurations(config *Config) {
	config.Server.ReadTimeout = time.Duration(config.Server.ReadTimeout) * time.Second
	config.Server.WriteTimeout = time.Duration(config.Server.WriteTimeout) * time.Second
	config.Server.IdleTimeout = time.Duration(config.Server.IdleTimeout) * time.Second
	config.Server.ReadHeaderTimeout = time.Duration(config.Server.ReadHeaderTimeout) * time.Second
	config.Server.ShutdownTimeout = time.Duration(config.Server.ShutdownTimeout) * time.Second

	config.Database.ConnMaxLifetime = time.Duration(config.Database.ConnMaxLifetime) * time.Minute
	config.Database.ConnMaxIdleTime = time.Duration(config.Database.ConnMaxIdleTime) * time.Minute
	config.Database.QueryTimeout = time.Duration(config.Database.QueryTimeout) * time.Second
	config.Database.SlowQuery = time.Duration(config.Database.SlowQuery) * time.Millisecond
	config.Database.RetryDelay = time.Duration(config.Database.RetryDelay) * time.Second

	config.PaymentMethods.CacheTTL = time.Duration(config.PaymentMethods.CacheTTL) * time.Second
	config.Purchase.RequestTimeout = time.Duration(config.Purchase.RequestTimeout) * time.Second
	config.Draw.LockTTL = time.Duration(config.Draw.LockTTL) * time.Second
	config.Notification.PublishTimeout = time.Duration(config.Notification.PublishTimeout) * time.Second
	config.Auth.TokenTTL = time.Duration(config.Auth.TokenTTL) * time.Minute
}
