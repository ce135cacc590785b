package server

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the server configuration
type Config struct {
	Port  string
	Debug bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() Config {
	// Load .env file if it exists
	godotenv.Load()

	return Config{
		Port:  getEnv("PORT", "3000"),
		Debug: getEnv("DEBUG", "") != "",
	}
}

// getEnv retrieves an environment variable or returns a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
