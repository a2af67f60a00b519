package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries every runtime setting the server needs. Values come
// from the environment (a .env file is loaded by cmd/server first).
type Config struct {
	ServerAddr string
	LogLevel   string

	// Postgres
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Redis (pub/sub bridge + notification queue broker)
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	RedisEnabled  bool

	// Auth
	JWTSecret string

	// Outbound email
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	EmailFrom string
	UseTLS    bool

	// Public origin used to build survey links, e.g. https://voice.campus.edu
	AppOrigin string

	// Optional Telegram admin alert channel
	TelegramBotToken string
	TelegramChatID   int64
}

// Load reads configuration from the environment, applying defaults
// suitable for local development.
func Load() *Config {
	cfg := &Config{
		ServerAddr:    getenv("SERVER_ADDR", ":8080"),
		LogLevel:      getenv("LOG_LEVEL", "info"),
		DBHost:        getenv("DB_HOST", "localhost"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBUser:        getenv("DB_USER", "user"),
		DBPassword:    getenv("DB_PASSWORD", "password"),
		DBName:        getenv("DB_NAME", "campusvoice"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getint("REDIS_DB", 0),
		RedisEnabled:  getenv("REDIS_ENABLED", "true") == "true",
		JWTSecret:     getenv("JWT_SECRET", "campusvoice-dev-secret"),
		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getint("SMTP_PORT", 587),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPass:      os.Getenv("SMTP_PASS"),
		EmailFrom:     getenv("EMAIL_FROM", "CampusVoice Support <support@campusvoice.local>"),
		UseTLS:        os.Getenv("SMTP_TLS") == "true",
		AppOrigin:     getenv("APP_ORIGIN", "http://localhost:5173"),
	}

	cfg.TelegramBotToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}

	return cfg
}

// DSN renders the Postgres connection string for gorm.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
