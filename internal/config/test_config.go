package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadTestConfig loads configuration for integration tests from the
// environment or a .env file. If TEST_DATABASE_URL is not set, a Config
// with empty values is returned so tests can skip themselves.
func LoadTestConfig() (*Config, error) {
	// Try both possible paths; the .env file is optional for tests
	_ = godotenv.Load("./../../.env")
	_ = godotenv.Load()

	cfg := &Config{}

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		// Return empty config so integration tests can skip
		return cfg, nil
	}
	cfg.Database.URL = dbURL

	dbName := os.Getenv("TEST_DB_NAME")
	if dbName == "" {
		dbName = "biolearn_test"
	}
	cfg.Database.Name = dbName

	return cfg, nil
}
