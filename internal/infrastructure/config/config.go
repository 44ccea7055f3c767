package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string           `mapstructure:"environment"`
	Server      ServerConfig     `mapstructure:"server"`
	Database    DatabaseConfig   `mapstructure:"database"`
	Logger      LoggerConfig     `mapstructure:"logger"`
	Redis       RedisConfig      `mapstructure:"redis"`
	RabbitMQ    RabbitMQConfig   `mapstructure:"rabbitmq"`
	Mailgun     MailgunConfig    `mapstructure:"mailgun"`
	Auth        AuthConfig       `mapstructure:"auth"`
	Cache       CacheConfig      `mapstructure:"cache"`
	Redemption  RedemptionConfig `mapstructure:"redemption"`
}

// IsProduction reports whether the service runs with production settings
func (c *Config) IsProduction() bool {
	return c.Environment == Production
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
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // postgres or sqlite
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"` // file path or ":memory:" for sqlite
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
	LogLevel        string        `mapstructure:"logLevel"`
	SeedCatalog     bool          `mapstructure:"seedCatalog"`
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"` // json or console
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// RedisConfig contains the view cache connection
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RabbitMQConfig contains the notification broker connection
type RabbitMQConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	URL     string `mapstructure:"url"`
	Queue   string `mapstructure:"queue"`
}

// MailgunConfig contains outbound email settings
type MailgunConfig struct {
	Domain  string `mapstructure:"domain"`
	APIKey  string `mapstructure:"apiKey"`
	Sender  string `mapstructure:"sender"`
	APIBase string `mapstructure:"apiBase"`
}

// AuthConfig contains session token verification settings
type AuthConfig struct {
	JWTSecret   string   `mapstructure:"jwtSecret"`
	Issuer      string   `mapstructure:"issuer"`
	CookieName  string   `mapstructure:"cookieName"`
	AdminEmails []string `mapstructure:"adminEmails"`
}

// CacheConfig contains view cache lifetimes
type CacheConfig struct {
	LeaderboardTTL time.Duration `mapstructure:"leaderboardTTL"` // seconds
	GiftShopTTL    time.Duration `mapstructure:"giftShopTTL"`    // seconds
}

// RedemptionConfig contains redemption workflow settings
type RedemptionConfig struct {
	Mode              string        `mapstructure:"mode"` // atomic or compensating
	SerializePerUser  bool          `mapstructure:"serializePerUser"`
	LockTimeout       time.Duration `mapstructure:"lockTimeout"` // seconds
	RecoveryAge       time.Duration `mapstructure:"recoveryAge"` // seconds
	RecoveryBatchSize int           `mapstructure:"recoveryBatchSize"`
	MaxRetries        int           `mapstructure:"maxRetries"`
}
