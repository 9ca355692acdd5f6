package config

import (
	"os"

	"github.com/devingeorge/global-sales-insights/internal/models"
)

// Config holds all application configuration
type Config struct {
	Port string

	// Slack credentials
	SlackBotToken      string
	SlackSigningSecret string

	// OpenAI-compatible generation endpoint
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string

	// Default content source for first-time users
	DefaultDataSource models.DataSource

	// Directory holding the preference snapshot
	DataDir string
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	defaultSource := models.DataSourceMock
	if parsed, ok := models.ParseDataSource(getEnv("DATA_SOURCE_DEFAULT", "")); ok {
		defaultSource = parsed
	}

	return &Config{
		Port:               getEnv("PORT", "3000"),
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		OpenAIAPIKey:       getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:        getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:      getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		DefaultDataSource:  defaultSource,
		DataDir:            getEnv("DATA_DIR", ".data"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
