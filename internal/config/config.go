package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken    string
	BotUsername string // без @; пустое значение заменяется на Self.UserName

	Port        string // вебхук-сервер верификаций
	AdminID     int64  // первый админ из окружения, 0 — не задан
	AdminSecret string // ключ для /setadmin

	WebhookRPS   float64
	WebhookBurst int
}

func MustLoad() Config {
	_ = godotenv.Load()

	bt := os.Getenv("BOT_TOKEN")
	if bt == "" {
		log.Fatal("BOT_TOKEN is required")
	}

	var adminID int64
	if raw := os.Getenv("ADMIN_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			log.Fatalf("ADMIN_ID must be an integer: %v", err)
		}
		adminID = id
	}

	rps := 5.0
	if raw := os.Getenv("WEBHOOK_RPS"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && v > 0 {
			rps = v
		}
	}

	return Config{
		BotToken:     bt,
		BotUsername:  os.Getenv("BOT_USERNAME"),
		Port:         getEnv("PORT", "8080"),
		AdminID:      adminID,
		AdminSecret:  getEnv("ADMIN_SECRET", "admin123"),
		WebhookRPS:   rps,
		WebhookBurst: 10,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
