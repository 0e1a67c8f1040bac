package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Storage backends
const (
	StorageFile     = "file"
	StoragePostgres = "postgres"
)

// Config holds all application configuration
type Config struct {
	Storage        string
	VocabularyFile string
	Languages      []string
	LogLevel       string
	Database       DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		Storage:        strings.ToLower(getEnv("STORAGE", StorageFile)),
		VocabularyFile: getEnv("VOCABULARY_FILE", "vocabulary.json"),
		Languages:      splitList(getEnv("LANGUAGES", "Français,Arabe")),
		LogLevel:       getEnv("LOG_LEVEL", "warn"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "dictionnaire"),
			User:     getEnv("DB_USER", "dictionnaire"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage {
	case StorageFile:
		if c.VocabularyFile == "" {
			return fmt.Errorf("VOCABULARY_FILE is required")
		}
	case StoragePostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required for postgres storage")
		}
	default:
		return fmt.Errorf("unknown STORAGE %q: expected %q or %q", c.Storage, StorageFile, StoragePostgres)
	}

	if len(c.Languages) == 0 {
		return fmt.Errorf("LANGUAGES must name at least one language")
	}

	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
