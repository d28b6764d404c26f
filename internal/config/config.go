// internal/config/config.go
// Configuration management using environment variables and optional config files

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Auth        AuthConfig
	Sandbox     SandboxConfig
	Tournament  TournamentConfig
	Features    FeatureFlags
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	PublicURL    string
	FrontendURL  string
}

// DatabaseConfig contains all database connection settings
type DatabaseConfig struct {
	MySQL       MySQLConfig
	Redis       RedisConfig
	AutoMigrate bool
}

// MySQLConfig contains MySQL-specific settings
type MySQLConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig contains Redis-specific settings
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AuthConfig contains authentication and authorization settings
type AuthConfig struct {
	JWTSecret     string
	JWTExpiration time.Duration
}

// SandboxConfig contains the Docker image and timing budgets used to
// compile and run candidate strategies.
type SandboxConfig struct {
	CompilerImage  string
	RunnerImage    string
	CompileTimeout time.Duration
	RunTimeout     time.Duration
	UploadLimit    int64
}

// TournamentConfig contains the scheduler and aggregator tuning knobs.
type TournamentConfig struct {
	RoundInterval    time.Duration
	ScoreboardWindow int
}

// FeatureFlags allows toggling features without code changes
type FeatureFlags struct {
	MaintenanceMode bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		// It's okay if .env doesn't exist in production
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	cfg := &Config{
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnvOrDefault("PORT", "8080"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 15*time.Second),
			IdleTimeout:  getDurationOrDefault("SERVER_IDLE_TIMEOUT", 60*time.Second),
			PublicURL:    getEnvOrDefault("PUBLIC_URL", "http://localhost:8080"),
			FrontendURL:  getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"),
		},
		Database: DatabaseConfig{
			MySQL: MySQLConfig{
				DSN:             getEnvOrDefault("MYSQL_DSN", ""),
				MaxOpenConns:    getIntOrDefault("MYSQL_MAX_OPEN_CONNS", 25),
				MaxIdleConns:    getIntOrDefault("MYSQL_MAX_IDLE_CONNS", 5),
				ConnMaxLifetime: getDurationOrDefault("MYSQL_CONN_MAX_LIFETIME", 5*time.Minute),
			},
			Redis: RedisConfig{
				Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getIntOrDefault("REDIS_DB", 0),
			},
			AutoMigrate: getBoolOrDefault("AUTO_MIGRATE", true),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
			JWTExpiration: getDurationOrDefault("JWT_EXPIRATION", 24*time.Hour),
		},
		Sandbox: SandboxConfig{
			CompilerImage:  getEnvOrDefault("COMPILER_IMAGE", "openjdk:8-alpine"),
			RunnerImage:    getEnvOrDefault("RUNNER_IMAGE", "openjdk:8-alpine"),
			CompileTimeout: getDurationOrDefault("COMPILE_TIMEOUT", 5*time.Second),
			RunTimeout:     getDurationOrDefault("RUN_TIMEOUT", 1*time.Second),
			UploadLimit:    getInt64OrDefault("UPLOAD_LIMIT", 1024*1024),
		},
		Tournament: TournamentConfig{
			RoundInterval:    getDurationOrDefault("ROUND_INTERVAL", 15*time.Second),
			ScoreboardWindow: getIntOrDefault("SCOREBOARD_WINDOW", 5),
		},
		Features: FeatureFlags{
			MaintenanceMode: getBoolOrDefault("MAINTENANCE_MODE", false),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration is present
func (c *Config) Validate() error {
	if c.Database.MySQL.DSN == "" {
		return fmt.Errorf("MYSQL_DSN is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Tournament.ScoreboardWindow <= 0 {
		return fmt.Errorf("SCOREBOARD_WINDOW must be positive")
	}
	return nil
}

// Helper functions to read environment variables with defaults
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
