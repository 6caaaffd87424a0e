package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds all application configuration
type Config struct {
	Database  DatabaseConfig
	Services  ServicesConfig
	Storage   StorageConfig
	Redis     RedisConfig
	Kafka     KafkaConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// ServicesConfig holds external service API keys and configuration
type ServicesConfig struct {
	ResendAPIKey       string
	DefaultEmailSender string
	SiteBaseURL        string
}

// StorageConfig holds object storage settings for screenshot uploads
type StorageConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

// RedisConfig holds redis connection settings (rate limiting, background jobs)
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// KafkaConfig holds event streaming configuration
type KafkaConfig struct {
	Brokers       string
	Topic         string
	ConsumerGroup string
}

// AdminConfig holds credentials for the admin data-management surface
type AdminConfig struct {
	Username     string
	PasswordHash string // bcrypt hash
}

// RateLimitConfig holds signup velocity limiting settings
type RateLimitConfig struct {
	Enabled       bool
	MaxPerWindow  int
	WindowSeconds int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}

	cfg := &Config{}

	// Database configuration
	var err error
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}

	// Services configuration
	if cfg.Services.ResendAPIKey, err = requireEnv("RESEND_API_KEY"); err != nil {
		return nil, err
	}
	if cfg.Services.DefaultEmailSender, err = requireEnv("DEFAULT_EMAIL_SENDER_ADDRESS"); err != nil {
		return nil, err
	}
	if cfg.Services.SiteBaseURL, err = requireEnv("SITE_BASE_URL"); err != nil {
		return nil, err
	}

	// Screenshot storage configuration
	if cfg.Storage.Endpoint, err = requireEnv("STORAGE_ENDPOINT"); err != nil {
		return nil, err
	}
	cfg.Storage.Region = getEnvWithDefault("STORAGE_REGION", "auto")
	if cfg.Storage.AccessKeyID, err = requireEnv("STORAGE_ACCESS_KEY_ID"); err != nil {
		return nil, err
	}
	if cfg.Storage.SecretAccessKey, err = requireEnv("STORAGE_SECRET_ACCESS_KEY"); err != nil {
		return nil, err
	}
	cfg.Storage.Bucket = getEnvWithDefault("STORAGE_BUCKET", "startzatching-screenshots")

	// Redis configuration
	if cfg.Redis.Addr, err = requireEnv("REDIS_ADDR"); err != nil {
		return nil, err
	}
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	redisDB := getEnvWithDefault("REDIS_DB", "0")
	cfg.Redis.DB, err = strconv.Atoi(redisDB)
	if err != nil {
		return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
	}

	// Kafka configuration
	if cfg.Kafka.Brokers, err = requireEnv("KAFKA_BROKERS"); err != nil {
		return nil, err
	}
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "campaign-events")
	cfg.Kafka.ConsumerGroup = getEnvWithDefault("KAFKA_CONSUMER_GROUP", "campaign-notifications")

	// Admin configuration
	if cfg.Admin.Username, err = requireEnv("ADMIN_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Admin.PasswordHash, err = requireEnv("ADMIN_PASSWORD_HASH"); err != nil {
		return nil, err
	}

	// Rate limit configuration
	cfg.RateLimit.Enabled = getEnvWithDefault("RATE_LIMIT_ENABLED", "true") == "true"
	maxPerWindow := getEnvWithDefault("RATE_LIMIT_MAX_PER_WINDOW", "5")
	cfg.RateLimit.MaxPerWindow, err = strconv.Atoi(maxPerWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_MAX_PER_WINDOW: %w", err)
	}
	windowSeconds := getEnvWithDefault("RATE_LIMIT_WINDOW_SECONDS", "600")
	cfg.RateLimit.WindowSeconds, err = strconv.Atoi(windowSeconds)
	if err != nil {
		return nil, fmt.Errorf("failed to parse RATE_LIMIT_WINDOW_SECONDS: %w", err)
	}

	// Server configuration
	serverPort, err := requireEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
