package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads; getEnv treats empty as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORAGE", "VOCABULARY_FILE", "LANGUAGES", "LOG_LEVEL",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
	} {
		t.Setenv(key, "")
	}
}

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "two items", input: "Français,Arabe", expected: []string{"Français", "Arabe"}},
		{name: "spaces", input: " Français , Arabe ", expected: []string{"Français", "Arabe"}},
		{name: "empty items", input: "Français,,", expected: []string{"Français"}},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitList(tt.input))
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageFile, cfg.Storage)
	assert.Equal(t, "vocabulary.json", cfg.VocabularyFile)
	assert.Equal(t, []string{"Français", "Arabe"}, cfg.Languages)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "dictionnaire", cfg.Database.Name)
	assert.Equal(t, "dictionnaire", cfg.Database.User)
}

func TestLoad_CustomValues(t *testing.T) {
	clearEnv(t)
	t.Setenv("VOCABULARY_FILE", "/tmp/words.json")
	t.Setenv("LANGUAGES", "Espagnol, Allemand")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/words.json", cfg.VocabularyFile)
	assert.Equal(t, []string{"Espagnol", "Allemand"}, cfg.Languages)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "Postgres")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "test_db_password", cfg.Database.Password)
}

func TestLoad_MissingDBPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "postgres")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoad_UnknownStorage(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORAGE", "redis")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "STORAGE")
}

func TestLoad_NoLanguages(t *testing.T) {
	clearEnv(t)
	t.Setenv("LANGUAGES", " , ")

	cfg, err := Load()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "LANGUAGES")
}
