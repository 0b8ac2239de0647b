package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"vault-pulse/internal/domain"
)

type Config struct {
	TelegramBotToken string
	TelegramChatID   string
	MonitoringSecs   int
	ReportHistory    bool

	VaultAddress string
	MarketID     string
	MorphoAPIURL string

	HTTPPort int
	RedisURL string
}

func Load() *Config {
	cfg := &Config{
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		VaultAddress:     strings.TrimSpace(os.Getenv("VAULT_ADDRESS")),
		MarketID:         strings.TrimSpace(os.Getenv("MARKET_ID")),
		MorphoAPIURL:     strings.TrimSpace(os.Getenv("MORPHO_API_URL")),
		RedisURL:         os.Getenv("REDIS_URL"),
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set")
	}
	if cfg.TelegramChatID == "" {
		log.Println("Warning: TELEGRAM_CHAT_ID not set")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	cfg.MonitoringSecs = 60
	if v := os.Getenv("MONITORING_INTERVAL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MonitoringSecs = n
		}
	}

	cfg.ReportHistory = strings.EqualFold(strings.TrimSpace(os.Getenv("REPORT_HISTORY")), "true")

	cfg.HTTPPort = 8080
	if v := strings.TrimSpace(os.Getenv("HTTP_PORT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.HTTPPort = n
		}
	}

	return cfg
}

// Validate reports the required settings that are absent. Both entrypoints
// treat a non-nil result as fatal before any scheduling begins.
func (c *Config) Validate() error {
	var missing []string
	if c.TelegramBotToken == "" {
		missing = append(missing, "TELEGRAM_BOT_TOKEN")
	}
	if c.TelegramChatID == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return &domain.ConfigurationError{Missing: missing}
	}
	return nil
}
