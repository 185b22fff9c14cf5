package main

import (
	"telegram-nutrition-bot/internal/config"
	"telegram-nutrition-bot/internal/food"
	"telegram-nutrition-bot/internal/handlers"
	"telegram-nutrition-bot/internal/scheduler"
	"telegram-nutrition-bot/internal/session"
	"telegram-nutrition-bot/internal/storage"
	"telegram-nutrition-bot/internal/utils"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load() // TELEGRAM_BOT_TOKEN etc.

	cfg := config.Load()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramToken)
	utils.Must(err)

	db, err := storage.New(cfg.DBPath)
	utils.Must(err)

	users := session.NewRegistry()
	h := &handlers.Handler{Bot: bot, Users: users, Food: food.NewClient(db)}

	_, err = scheduler.Start(h, users, cfg.ReminderAt)
	utils.Must(err)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60

	updates := bot.GetUpdatesChan(updateConfig)

	for upd := range updates {
		if upd.Message == nil {
			continue
		}
		msg := upd.Message
		sess := users.Ensure(msg.Chat.ID)
		// ходы одного пользователя выполняются строго по очереди
		sess.Do(func() { h.HandleMessage(msg) })
	}
}
