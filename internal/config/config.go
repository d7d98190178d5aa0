package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr       string
	BaseURL    string
	DBPath     string
	LogLevel   string
	AdminEmail string
	Auth       AuthConfig
	Email      EmailConfig
}

type AuthConfig struct {
	Enabled   bool
	JWTSecret string
}

type EmailConfig struct {
	FromEmail    string
	ResendAPIKey string
	SMTPEnabled  bool
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPass     string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return strings.EqualFold(v, "true") || v == "1"
}

// Load reads an optional .env file and then the environment. Every value
// has a default, so a dev server boots with no configuration at all.
func Load() Config {
	godotenv.Load()

	return Config{
		Addr:       getEnv("TASKHUB_ADDR", ":8080"),
		BaseURL:    getEnv("TASKHUB_BASE_URL", "http://localhost:8080"),
		DBPath:     getEnv("TASKHUB_DB_PATH", "taskhub.db"),
		LogLevel:   getEnv("TASKHUB_LOG_LEVEL", "info"),
		AdminEmail: getEnv("ADMIN_EMAIL", ""),
		Auth: AuthConfig{
			Enabled:   getBool("AUTH_ENABLED", false),
			JWTSecret: getEnv("JWT_SECRET", "taskhub-dev-secret"),
		},
		Email: EmailConfig{
			FromEmail:    getEnv("TASKHUB_FROM_EMAIL", "TaskHub <taskhub@resend.dev>"),
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			SMTPEnabled:  getBool("SMTP_ENABLED", false),
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUser:     getEnv("SMTP_USER", ""),
			SMTPPass:     getEnv("SMTP_PASS", ""),
		},
	}
}
