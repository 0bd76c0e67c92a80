package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Backup   BackupConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds the SQLite store configuration
type DatabaseConfig struct {
	Path     string
	LogLevel string
	Seed     bool
}

// AuthConfig holds the fixed admin credential pair for /login
type AuthConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
}

// BackupConfig holds the snapshot and upload directories
type BackupConfig struct {
	Dir       string
	UploadDir string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// MetricsConfig holds metrics-related configuration
type MetricsConfig struct {
	Prefix string
}

// Load loads the application configuration from environment variables
func Load() (*Config, error) {
	// Load environment variables from .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Env:  getEnv("APP_ENV", "development"),
		},
		Database: DatabaseConfig{
			Path:     getEnv("DB_PATH", "data/teamadmin.db"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
			Seed:     getEnvAsBool("DB_SEED_SAMPLE_DATA", true),
		},
		Auth: AuthConfig{
			AdminEmail:    getEnv("ADMIN_EMAIL", "admin@canva.com"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin@12345"),
			AdminName:     getEnv("ADMIN_NAME", "Admin"),
		},
		Backup: BackupConfig{
			Dir:       getEnv("BACKUP_DIR", "data/backups"),
			UploadDir: getEnv("UPLOAD_DIR", "data/uploads"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "teamadmin"),
		},
	}, nil
}

// Helper functions to get environment variables with defaults
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
