package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment    string               `mapstructure:"environment"`
	Server         ServerConfig         `mapstructure:"server"`
	Database       DatabaseConfig       `mapstructure:"database"`
	Logger         LoggerConfig         `mapstructure:"logger"`
	PaymentMethods PaymentMethodsConfig `mapstructure:"paymentMethods"`
	Purchase       PurchaseConfig       `mapstructure:"purchase"`
	Draw           DrawConfig           `mapstructure:"draw"`
	Redis          RedisConfig          `mapstructure:"redis"`
	Notification   NotificationConfig   `mapstructure:"notification"`
	Storage        StorageConfig        `mapstructure:"storage"`
	Auth           AuthConfig           `mapstructure:"auth"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	CORSOrigins       []string      `mapstructure:"corsOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	SQLitePath      string        `mapstructure:"sqlitePath"`
	IsolationLevel  string        `mapstructure:"isolationLevel"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	SlowQuery       time.Duration `mapstructure:"slowQuery"`       // milliseconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	TimeFormat string `mapstructure:"timeFormat"`
	CallerInfo bool   `mapstructure:"callerInfo"`
	MaxSizeMB  int    `mapstructure:"maxSizeMB"`
	MaxBackups int    `mapstructure:"maxBackups"`
	MaxAgeDays int    `mapstructure:"maxAgeDays"`
	Compress   bool   `mapstructure:"compress"`
}

// PaymentMethodsConfig controls the payment method registry cache
type PaymentMethodsConfig struct {
	CacheTTL time.Duration `mapstructure:"cacheTTL"` // seconds
}

// PurchaseConfig contains purchase workflow settings
type PurchaseConfig struct {
	SerializePerRaffle bool          `mapstructure:"serializePerRaffle"`
	QueueSize          int           `mapstructure:"queueSize"`
	MaxNumbers         int           `mapstructure:"maxNumbers"`
	RequestTimeout     time.Duration `mapstructure:"requestTimeout"` // seconds
}

// DrawConfig contains winner draw settings
type DrawConfig struct {
	LockBackend string        `mapstructure:"lockBackend"`
	LockTTL     time.Duration `mapstructure:"lockTTL"` // seconds
}

// RedisConfig contains redis connection settings
type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"keyPrefix"`
}

// NotificationConfig contains the verified-transaction notifier settings
type NotificationConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	AMQPURL        string        `mapstructure:"amqpURL"`
	Queue          string        `mapstructure:"queue"`
	PublishTimeout time.Duration `mapstructure:"publishTimeout"` // seconds
}

// StorageConfig contains proof-of-payment storage settings
type StorageConfig struct {
	ProofDir      string `mapstructure:"proofDir"`
	PublicBaseURL string `mapstructure:"publicBaseURL"`
	MaxProofBytes int64  `mapstructure:"maxProofBytes"`
}

// AuthConfig contains admin token settings
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwtSecret"`
	Issuer    string        `mapstructure:"issuer"`
	TokenTTL  time.Duration `mapstructure:"tokenTTL"` // minutes
}

// Draw lock backends
const (
	LockBackendDatabase = "database"
	LockBackendRedis    = "redis"
)
