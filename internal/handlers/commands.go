package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode"

	"telegram-nutrition-bot/internal/calc"
	"telegram-nutrition-bot/internal/dialog"
	"telegram-nutrition-bot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleCommand dispatches an Idle-state command. Unknown commands are
// ignored, как и в исходном боте.
func (h *Handler) HandleCommand(sess *session.Session, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		h.reply(chatID, textWelcome)
	case "help":
		h.reply(chatID, textHelp)
	case "set_profile":
		h.reply(chatID, dialog.StartProfile(sess))
	case "log_water":
		h.handleLogWater(sess, args)
	case "log_food":
		h.handleLogFood(sess, args)
	case "log_workout":
		h.handleLogWorkout(sess, args)
	case "check_progress":
		h.handleProgress(sess)
	}
}

func (h *Handler) handleLogWater(sess *session.Session, args string) {
	ml, err := strconv.Atoi(args)
	if err != nil || ml < 0 {
		h.reply(sess.ChatID, textWaterUsage)
		return
	}
	if err := sess.RecordWater(ml); err != nil {
		h.reply(sess.ChatID, textWaterUsage)
		return
	}

	if g, err := sess.Goals(); err == nil {
		h.reply(sess.ChatID, fmt.Sprintf("Записано: %d мл.\nОсталось выпить: %s мл.",
			ml, fmtFloat(g.WaterMl-float64(ml))))
	} else {
		h.reply(sess.ChatID, fmt.Sprintf("Записано: %d мл.\n%s", ml, textNeedProfile))
	}
}

func (h *Handler) handleLogFood(sess *session.Session, args string) {
	if args == "" {
		h.reply(sess.ChatID, textFoodUsage)
		return
	}

	p, err := h.Food.Find(args)
	if err != nil {
		// сетевые ошибки для пользователя неотличимы от «не найдено»
		log.Println("ошибка поиска продукта:", err)
		p = nil
	}
	if p == nil {
		h.reply(sess.ChatID, textFoodNotFound)
		return
	}

	h.reply(sess.ChatID, dialog.StartFood(sess, p))
}

func (h *Handler) handleLogWorkout(sess *session.Session, args string) {
	parts := strings.Fields(args)
	if len(parts) < 2 {
		h.reply(sess.ChatID, textWorkoutUsage)
		return
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 {
		h.reply(sess.ChatID, textWorkoutBadTime)
		return
	}

	burned := calc.CaloriesBurned(parts[0], minutes)
	sess.AddBurned(burned)

	h.reply(sess.ChatID, fmt.Sprintf(
		"🏃‍♂️ %s %d минут — %s ккал.\nДополнительно: выпейте %d мл воды.",
		capitalize(parts[0]), minutes, fmtFloat(burned), calc.WorkoutWater(minutes)))
}

func (h *Handler) handleProgress(sess *session.Session) {
	p, err := sess.Progress()
	if errors.Is(err, session.ErrProfileNotConfigured) {
		h.reply(sess.ChatID, textNeedProfile)
		return
	}
	if err != nil {
		h.reply(sess.ChatID, textInternal)
		return
	}

	h.reply(sess.ChatID, fmt.Sprintf(
		"📊 Прогресс:\n"+
			"Вода:\n"+
			"- Выпито: %d мл из %s мл.\n"+
			"- Осталось: %s мл.\n\n"+
			"Калории:\n"+
			"- Потреблено: %s ккал из %s ккал.\n"+
			"- Сожжено: %s ккал.\n"+
			"- Баланс: %s ккал.",
		p.WaterMl, fmtFloat(p.WaterGoalMl),
		fmtFloat(p.RemainingMl),
		fmtFloat(p.Calories), fmtFloat(p.CalorieGoal),
		fmtFloat(p.Burned),
		fmtFloat(p.Balance)))
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
