package handlers

import (
	"fmt"
	"log"

	"telegram-nutrition-bot/internal/dialog"
	"telegram-nutrition-bot/internal/models"
	"telegram-nutrition-bot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender is the outbound side of the chat transport. *tgbotapi.BotAPI
// satisfies it; tests use a fake.
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// FoodLookup resolves a product query to its energy density.
// (nil, nil) means not found.
type FoodLookup interface {
	Find(query string) (*models.Product, error)
}

type Handler struct {
	Bot   Sender
	Users *session.Registry
	Food  FoodLookup
}

// HandleMessage processes one turn. Must run on the user's session queue
// so that turns of the same user never interleave.
func (h *Handler) HandleMessage(msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	sess, err := h.Users.Lookup(chatID)
	if err != nil {
		// сюда попадать нельзя: Ensure вызывается до постановки в очередь
		log.Printf("сессия не инициализирована для %d: %v", chatID, err)
		h.reply(chatID, textInternal)
		return
	}

	// внутри диалога всё, включая команды, трактуется как ответ на вопрос
	if sess.Step != models.StepIdle {
		h.reply(chatID, dialog.Advance(sess, msg.Text))
		return
	}

	if msg.IsCommand() {
		h.HandleCommand(sess, msg)
	}
	// свободный текст вне диалога игнорируем, как и исходный бот
}

// SendReminder pings a user who is still short of the daily water goal.
// Called by the scheduler on the user's session queue.
func (h *Handler) SendReminder(s *session.Session) {
	p, err := s.Progress()
	if err != nil || p.RemainingMl <= 0 {
		return
	}
	h.reply(s.ChatID, fmt.Sprintf(
		"💧 Напоминание: записано %d мл воды из %s мл. Не забудьте попить!",
		p.WaterMl, fmtFloat(p.WaterGoalMl)))
}

func (h *Handler) reply(chatID int64, text string) {
	if text == "" {
		return
	}
	if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Println("ошибка отправки сообщения:", err)
	}
}
