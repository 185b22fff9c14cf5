package config

import (
	"log"
	"os"
	"strings"
)

type Config struct {
	DBPath        string
	TelegramToken string
	ReminderAt    string // "HH:MM", локальное время процесса
}

func Load() Config {
	return Config{
		DBPath:        envOr("CACHE_DB_PATH", defaultDBPath),
		TelegramToken: getBotToken(),
		ReminderAt:    envOr("REMINDER_AT", defaultReminderAt),
	}
}

func getBotToken() string {
	if data, err := os.ReadFile("/run/secrets/telegram_bot_token"); err == nil {
		token := strings.TrimSpace(string(data))
		if token != "" {
			return token
		}
	}
	token := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	if token != "" {
		return token
	}
	log.Fatal("❌ Токен не найден: отсутствует и Docker Secret, и переменная окружения")
	return ""
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

const (
	defaultDBPath     = "cache.db"
	defaultReminderAt = "18:00"
)
