package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yigit/personnel/internal/app/repositories"
	"github.com/yigit/personnel/internal/pkg/helpers"
)

// DefaultConfigPath is read when CONFIG_PATH is not set
const DefaultConfigPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port         string `yaml:"port" env:"SERVER_PORT"`
		Mode         string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout  string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host                 string `yaml:"host" env:"DB_HOST"`
		Port                 string `yaml:"port" env:"DB_PORT"`
		User                 string `yaml:"user" env:"DB_USER"`
		Password             string `yaml:"password" env:"DB_PASSWORD"`
		DBName               string `yaml:"dbname" env:"DB_NAME"`
		SSLMode              string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns         int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns         int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime      string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
		ConnectRetryInterval string `yaml:"connect_retry_interval" env:"DB_CONNECT_RETRY_INTERVAL"`
		ConnectMaxRetries    int    `yaml:"connect_max_retries" env:"DB_CONNECT_MAX_RETRIES"`
		QueryTimeout         string `yaml:"query_timeout" env:"DB_QUERY_TIMEOUT"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Pagination struct {
		DefaultLimit int `yaml:"default_limit" env:"PAGINATION_DEFAULT_LIMIT"`
		MaxLimit     int `yaml:"max_limit" env:"PAGINATION_MAX_LIMIT"`
		PageSize     int `yaml:"page_size" env:"PAGINATION_PAGE_SIZE"`
	} `yaml:"pagination"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// Load resolves the config file from CONFIG_PATH and loads it. Variables in
// a local .env file are exported first; a missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadConfig(GetEnv("CONFIG_PATH", DefaultConfigPath))
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Try to read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err = yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	// Server defaults
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "15s"
	config.Server.WriteTimeout = "30s"

	// Database defaults
	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "personnel"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"
	config.Database.ConnectRetryInterval = "2s"
	config.Database.ConnectMaxRetries = 0
	config.Database.QueryTimeout = "5s"

	// Logging defaults
	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Pagination defaults
	config.Pagination.DefaultLimit = 100
	config.Pagination.MaxLimit = 1000
	config.Pagination.PageSize = 10
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.ConnectMaxRetries < 0 {
		return fmt.Errorf("database connect_max_retries must not be negative")
	}

	durations := map[string]string{
		"server read_timeout":             config.Server.ReadTimeout,
		"server write_timeout":            config.Server.WriteTimeout,
		"database conn_max_lifetime":      config.Database.ConnMaxLifetime,
		"database connect_retry_interval": config.Database.ConnectRetryInterval,
		"database query_timeout":          config.Database.QueryTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	if config.Pagination.PageSize <= 0 || config.Pagination.DefaultLimit <= 0 {
		return fmt.Errorf("pagination sizes must be positive")
	}
	if config.Pagination.MaxLimit < config.Pagination.DefaultLimit {
		return fmt.Errorf("pagination max_limit must be at least default_limit")
	}
	if config.Pagination.MaxLimit > repositories.MaxListLimit || config.Pagination.PageSize > config.Pagination.MaxLimit {
		return fmt.Errorf("pagination max_limit must be between page_size and %d", repositories.MaxListLimit)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// ReadTimeout returns the HTTP server read timeout
func (c *Config) ReadTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.ReadTimeout, 15*time.Second)
}

// WriteTimeout returns the HTTP server write timeout
func (c *Config) WriteTimeout() time.Duration {
	return helpers.ParseDuration(c.Server.WriteTimeout, 30*time.Second)
}

// QueryTimeout returns the per-statement database timeout
func (c *Config) QueryTimeout() time.Duration {
	return helpers.ParseDuration(c.Database.QueryTimeout, 5*time.Second)
}

// ConnMaxLifetime returns how long a pooled connection may be reused
func (c *Config) ConnMaxLifetime() time.Duration {
	return helpers.ParseDuration(c.Database.ConnMaxLifetime, time.Hour)
}

// ConnectRetryInterval returns the pause between startup connection attempts
func (c *Config) ConnectRetryInterval() time.Duration {
	return helpers.ParseDuration(c.Database.ConnectRetryInterval, 2*time.Second)
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
