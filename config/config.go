package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// exit is swapped out in tests to observe the termination path.
var exit = os.Exit

// Config holds all configuration for the uploader
type Config struct {
	Telegram TelegramConfig
	Logging  LoggingConfig
	Output   OutputConfig
}

// TelegramConfig holds Telegram MTProto configuration
type TelegramConfig struct {
	APIID       int
	APIHash     string
	BotToken    string
	SessionFile string
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string
}

// OutputConfig holds CI output sink configuration
type OutputConfig struct {
	GitHubOutputPath string
}

// Load reads configuration from environment variables.
//
// The three credentials are checked in a fixed order: API_ID, API_HASH,
// BOT_TOKEN. The first missing one prints a diagnostic naming the key and
// terminates the process with status 1. An API_ID that is present but not a
// valid integer panics instead of exiting gracefully: an operator omission
// and a malformed value are different failures and keep different exits.
func Load() *Config {
	// Load .env file if exists
	_ = godotenv.Load()

	apiIDRaw := requireEnv("API_ID")
	apiID, err := strconv.Atoi(apiIDRaw)
	if err != nil {
		panic(fmt.Sprintf("API_ID must be an integer: %v", err))
	}

	apiHash := requireEnv("API_HASH")
	botToken := requireEnv("BOT_TOKEN")

	return &Config{
		Telegram: TelegramConfig{
			APIID:       apiID,
			APIHash:     apiHash,
			BotToken:    botToken,
			SessionFile: getEnv("SESSION_FILE", "bot.session.json"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Output: OutputConfig{
			GitHubOutputPath: os.Getenv("GITHUB_OUTPUT"),
		},
	}
}

// requireEnv returns the value of a required environment variable,
// terminating the process when it is absent or empty
func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		fmt.Println(key + " is missing")
		exit(1)
	}
	return value
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
