package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the full platform configuration
type Config struct {
	Server     ServerConfig     `json:"server"`
	Database   DatabaseConfig   `json:"database"`
	JWT        JWTConfig        `json:"jwt"`
	Email      EmailConfig      `json:"email"`
	SMS        SMSConfig        `json:"sms"`
	Storage    StorageConfig    `json:"storage"`
	Cache      CacheConfig      `json:"cache"`
	Drafts     DraftsConfig     `json:"drafts"`
	RateLimits RateLimitsConfig `json:"rateLimits"`
	App        AppConfig        `json:"app"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Host      string `json:"host"`
	Port      int    `json:"port"`
	BaseRoute string `json:"baseRoute"`
	WebDomain string `json:"webDomain"`
	Debug     bool   `json:"debug"`
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	Postgres PostgreSQLConfig `json:"postgres"`
}

// PostgreSQLConfig holds PostgreSQL-specific configuration
type PostgreSQLConfig struct {
	Host            string        `json:"host"`
	Port            int           `json:"port"`
	Username        string        `json:"username"`
	Password        string        `json:"password"`
	Database        string        `json:"database"`
	SSLMode         string        `json:"sslMode"`
	ConnectTimeout  int           `json:"connectTimeout"`
	MaxOpenConns    int           `json:"maxOpenConns"`
	MaxIdleConns    int           `json:"maxIdleConns"`
	ConnMaxLifetime time.Duration `json:"connMaxLifetime"`
}

// JWTConfig holds JWT validation keys. Token issuance is owned by the auth
// gateway; this service only validates.
type JWTConfig struct {
	PublicKey  string `json:"publicKey"`
	PrivateKey string `json:"privateKey"`
}

// EmailConfig holds SMTP configuration for verification emails
type EmailConfig struct {
	SMTPEmail string `json:"smtpEmail"`
	SMTPHost  string `json:"smtpHost"`
	SMTPPort  int    `json:"smtpPort"`
	SMTPUser  string `json:"smtpUser"`
	SMTPPass  string `json:"smtpPass"`
}

// SMSConfig holds the Plivo credentials for phone verification codes
type SMSConfig struct {
	AuthID       string `json:"authId"`
	AuthToken    string `json:"authToken"`
	SourceNumber string `json:"sourceNumber"`
	// LogOnly disables real delivery and logs codes instead (dev/test)
	LogOnly bool `json:"logOnly"`
}

// StorageConfig holds the S3-compatible media storage configuration
type StorageConfig struct {
	Endpoint        string `json:"endpoint"`
	AccountID       string `json:"accountId"`
	AccessKeyID     string `json:"accessKeyId"`
	SecretAccessKey string `json:"secretAccessKey"`
	BucketName      string `json:"bucketName"`
	Region          string `json:"region"`
	PublicURL       string `json:"publicUrl"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	Enabled bool          `json:"enabled"`
	Backend string        `json:"backend"`
	Prefix  string        `json:"prefix"`
	TTL     time.Duration `json:"ttl"`
	Redis   RedisConfig   `json:"redis"`
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Address      string        `json:"address"`
	Password     string        `json:"password"`
	Database     int           `json:"database"`
	PoolSize     int           `json:"poolSize"`
	MinIdleConns int           `json:"minIdleConns"`
	MaxConnAge   time.Duration `json:"maxConnAge"`
}

// DraftsConfig bounds the per-user draft cache
type DraftsConfig struct {
	// QuotaBytes is the approximate per-user budget for draft payloads.
	// Writes are refused once usage crosses the budget.
	QuotaBytes int64         `json:"quotaBytes"`
	TTL        time.Duration `json:"ttl"`
}

// RateLimitConfig holds rate limiting configuration for a specific endpoint
type RateLimitConfig struct {
	Enabled  bool          `json:"enabled"`
	Max      int           `json:"max"`
	Duration time.Duration `json:"duration"`
}

// RateLimitsConfig holds rate limiting configuration for all endpoints
type RateLimitsConfig struct {
	Verification RateLimitConfig `json:"verification"`
}

// AppConfig holds application-related configuration
type AppConfig struct {
	Name      string `json:"name"`
	OrgName   string `json:"orgName"`
	WebDomain string `json:"webDomain"`
	// BypassVerification skips the phone/email code steps on publish.
	// Never enable outside local development.
	BypassVerification bool `json:"bypassVerification"`
}

// LoadFromEnv loads configuration from the environment.
// Precedence: explicit environment variables, then .env file values, then
// hardcoded defaults.
func LoadFromEnv() (*Config, error) {
	envPaths := []string{".env", "../.env", "../../.env"}

	var loadErr error
	for _, envPath := range envPaths {
		loadErr = godotenv.Load(envPath)
		if loadErr == nil {
			break
		}
	}
	if loadErr != nil {
		// Not an error, the .env file is optional.
		fmt.Println("INFO: .env file not found, using environment variables and defaults.")
	}

	config := &Config{
		Server: ServerConfig{
			Host:      getEnvOrDefault("HOST", "localhost"),
			Port:      getEnvAsInt("SERVER_PORT", 8080),
			BaseRoute: getEnvOrDefault("BASE_ROUTE", "/api"),
			WebDomain: getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
			Debug:     getEnvAsBool("DEBUG", false),
		},
		Database: DatabaseConfig{
			Postgres: PostgreSQLConfig{
				Host:            getEnvOrDefault("POSTGRES_HOST", "localhost"),
				Port:            getEnvAsInt("POSTGRES_PORT", 5432),
				Username:        getEnvOrDefault("POSTGRES_USERNAME", ""),
				Password:        getEnvOrDefault("POSTGRES_PASSWORD", ""),
				Database:        getEnvOrDefault("POSTGRES_DATABASE", "marketplace"),
				SSLMode:         getEnvOrDefault("POSTGRES_SSL_MODE", "disable"),
				ConnectTimeout:  getEnvAsInt("POSTGRES_CONNECT_TIMEOUT", 10),
				MaxOpenConns:    getEnvAsInt("POSTGRES_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getEnvAsInt("POSTGRES_MAX_IDLE_CONNS", 25),
				ConnMaxLifetime: time.Duration(getEnvAsInt("POSTGRES_CONN_MAX_LIFETIME", 300)) * time.Second,
			},
		},
		JWT: JWTConfig{
			PublicKey:  getEnvOrDefault("JWT_PUBLIC_KEY", ""),
			PrivateKey: getEnvOrDefault("JWT_PRIVATE_KEY", ""),
		},
		Email: EmailConfig{
			SMTPEmail: getEnvOrDefault("SMTP_EMAIL", ""),
			SMTPHost:  getEnvOrDefault("SMTP_HOST", ""),
			SMTPPort:  getEnvAsInt("SMTP_PORT", 587),
			SMTPUser:  getEnvOrDefault("SMTP_USER", ""),
			SMTPPass:  getEnvOrDefault("SMTP_PASS", ""),
		},
		SMS: SMSConfig{
			AuthID:       getEnvOrDefault("PLIVO_AUTH_ID", ""),
			AuthToken:    getEnvOrDefault("PLIVO_AUTH_TOKEN", ""),
			SourceNumber: getEnvOrDefault("PLIVO_SOURCE_NUMBER", ""),
			LogOnly:      getEnvAsBool("SMS_LOG_ONLY", true),
		},
		Storage: StorageConfig{
			Endpoint:        getEnvOrDefault("STORAGE_ENDPOINT", ""),
			AccountID:       getEnvOrDefault("STORAGE_ACCOUNT_ID", ""),
			AccessKeyID:     getEnvOrDefault("STORAGE_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("STORAGE_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("STORAGE_BUCKET_NAME", ""),
			Region:          getEnvOrDefault("STORAGE_REGION", "auto"),
			PublicURL:       getEnvOrDefault("STORAGE_PUBLIC_URL", ""),
		},
		Cache: CacheConfig{
			Enabled: getEnvAsBool("CACHE_ENABLED", true),
			Backend: getEnvOrDefault("CACHE_BACKEND", "memory"),
			Prefix:  getEnvOrDefault("CACHE_PREFIX", "mkt:"),
			TTL:     getEnvAsDuration("CACHE_TTL", 1*time.Hour),
			Redis: RedisConfig{
				Address:      getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password:     getEnvOrDefault("REDIS_PASSWORD", ""),
				Database:     getEnvAsInt("REDIS_DATABASE", 0),
				PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
				MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
				MaxConnAge:   time.Duration(getEnvAsInt("REDIS_MAX_CONN_AGE", 300)) * time.Second,
			},
		},
		Drafts: DraftsConfig{
			QuotaBytes: getEnvAsInt64("DRAFT_QUOTA_BYTES", 5*1024*1024),
			TTL:        getEnvAsDuration("DRAFT_TTL", 30*24*time.Hour),
		},
		RateLimits: RateLimitsConfig{
			Verification: RateLimitConfig{
				Enabled:  getEnvAsBool("RATE_LIMIT_VERIFICATION_ENABLED", true),
				Max:      getEnvAsInt("RATE_LIMIT_VERIFICATION_MAX", 10),
				Duration: getEnvAsDuration("RATE_LIMIT_VERIFICATION_DURATION", 15*time.Minute),
			},
		},
		App: AppConfig{
			Name:               getEnvOrDefault("APP_NAME", "Influencer Marketplace"),
			OrgName:            getEnvOrDefault("ORG_NAME", "Marketplace"),
			WebDomain:          getEnvOrDefault("WEB_DOMAIN", "http://localhost:3000"),
			BypassVerification: getEnvAsBool("PUBLISH_BYPASS_VERIFICATION", false),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks the configuration for obvious mistakes
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	if c.Database.Postgres.Host == "" {
		return fmt.Errorf("postgres host is required")
	}
	if c.Cache.Backend != "memory" && c.Cache.Backend != "redis" {
		return fmt.Errorf("unsupported cache backend: %s", c.Cache.Backend)
	}
	if c.Drafts.QuotaBytes <= 0 {
		return fmt.Errorf("draft quota must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
