package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadTestConfig reads the TEST_DB_* environment variables used by the
// integration tests. A nil config (and nil error) means no test database
// is configured and the caller should skip the suite.
func LoadTestConfig() (*Config, error) {
	// .env is optional
	godotenv.Load()

	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost == "" {
		return nil, nil
	}

	dbPortStr := os.Getenv("TEST_DB_PORT")
	if dbPortStr == "" {
		dbPortStr = "3306"
	}
	dbPort, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TEST_DB_PORT: %w", err)
	}

	dbUser := os.Getenv("TEST_DB_USER")
	dbPassword := os.Getenv("TEST_DB_PASSWORD")
	dbName := os.Getenv("TEST_DB_NAME")
	if dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("TEST_DB_USER and TEST_DB_NAME are required when TEST_DB_HOST is set")
	}

	cfg := &Config{}
	cfg.Database.Host = dbHost
	cfg.Database.Port = dbPort
	cfg.Database.User = dbUser
	cfg.Database.Password = dbPassword
	cfg.Database.DBName = dbName
	return cfg, nil
}
