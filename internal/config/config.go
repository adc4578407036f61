// package config loads application configuration from environment variables.
package config

import (
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	// server
	Port      int
	AppEnv    string // "development" or "production"
	StaticDir string

	// mail
	GmailUser        string
	GmailAppPassword string
	ContactEmail     string
	SMTPHost         string
	SMTPPort         int
	SendTimeoutSec   int

	// rate limiting
	RateLimitMax        int
	RateLimitWindowMins int

	// openai
	OpenAIAPIKey      string
	OpenAIModel       string
	OpenAIMaxTokens   int
	OpenAITemperature float64
	OpenAITimeoutSec  int

	// chatbot
	KnowledgeFile string

	// logging
	LogLevel string
	LogFile  string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	cfg := &Config{
		Port:                getEnvInt("PORT", 3001),
		AppEnv:              getEnv("APP_ENV", "development"),
		StaticDir:           getEnv("STATIC_DIR", ""),
		GmailUser:           getEnv("GMAIL_USER", ""),
		GmailAppPassword:    getEnv("GMAIL_APP_PASSWORD", ""),
		ContactEmail:        getEnv("CONTACT_EMAIL", ""),
		SMTPHost:            getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:            getEnvInt("SMTP_PORT", 587),
		SendTimeoutSec:      getEnvInt("SEND_TIMEOUT_SECONDS", 15),
		RateLimitMax:        getEnvInt("RATE_LIMIT_MAX", 5),
		RateLimitWindowMins: getEnvInt("RATE_LIMIT_WINDOW_MINUTES", 15),
		OpenAIAPIKey:        getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:         getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIMaxTokens:     getEnvInt("OPENAI_MAX_TOKENS", 300),
		OpenAITimeoutSec:    getEnvInt("OPENAI_TIMEOUT_SECONDS", 15),
		KnowledgeFile:       getEnv("KNOWLEDGE_FILE", ""),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		LogFile:             getEnv("LOG_FILE", ""),
	}

	cfg.OpenAITemperature = getEnvFloat("OPENAI_TEMPERATURE", 0.7)

	// contact messages go to the account inbox unless overridden
	if cfg.ContactEmail == "" {
		cfg.ContactEmail = cfg.GmailUser
	}

	return cfg, nil
}

// IsProduction reports whether the app runs with production error reporting.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns the integer value of an environment variable or a default.
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
