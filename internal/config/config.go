package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/yigit/workload/internal/app/workload"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Workload workload.Policy `yaml:"workload"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_DEMO_DATA"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file, an optional .env file and environment variables.
// Precedence, lowest first: defaults, YAML file, .env, process environment.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// godotenv never overrides variables already present in the environment
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "10s"
	config.Server.WriteTimeout = "10s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "workload"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 2
	config.Database.MaxOpenConns = 10
	config.Database.ConnMaxLifetime = "1h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Workload = workload.DefaultPolicy()
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.DBName == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := time.ParseDuration(config.Database.ConnMaxLifetime); err != nil {
		return fmt.Errorf("invalid database connection max lifetime: %w", err)
	}

	for name, value := range map[string]string{
		"read_timeout":     config.Server.ReadTimeout,
		"write_timeout":    config.Server.WriteTimeout,
		"shutdown_timeout": config.Server.ShutdownTimeout,
	} {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid server %s: %w", name, err)
		}
	}

	if err := config.Workload.Validate(); err != nil {
		return err
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
