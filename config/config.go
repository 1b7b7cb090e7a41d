// Package config loads the notes settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Logging
	Env      string
	LogLevel string

	// Storage
	StorePath string

	// Letters
	OutputDir    string
	LetterFormat string
	Currency     string
	Firm         string

	// Notes
	DueDays     int
	DefaultTerm int
}

// Load loads configuration from environment variables, after reading a
// .env file from the working directory if there is one. Variables already
// set in the environment take precedence over the .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not read .env file: %v", err)
	}

	return &Config{
		Env:      getEnv("NOTES_ENV", "development"),
		LogLevel: getEnv("NOTES_LOG_LEVEL", "warn"),

		StorePath: getEnv("NOTES_STORE", "investments.xlsx"),

		OutputDir:    getEnv("NOTES_OUTPUT_DIR", "output"),
		LetterFormat: getEnv("NOTES_LETTER_FORMAT", "pdf"),
		Currency:     getEnv("NOTES_CURRENCY", "USD"),
		Firm:         getEnv("NOTES_FIRM", "Your Investment Firm"),

		DueDays:     getEnvInt("NOTES_DUE_DAYS", 7),
		DefaultTerm: getEnvInt("NOTES_DEFAULT_TERM", 9),
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default
// value when it is unset or invalid.
func getEnvInt(key string, defaultValue int) int {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Warning: invalid %s value '%s', falling back to %d\n", key, value, defaultValue)
		return defaultValue
	}
	return n
}
