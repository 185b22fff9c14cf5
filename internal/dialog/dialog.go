// Package dialog реализует пошаговые диалоги: анкета профиля и
// логирование еды. Каждый шаг принимает только своё поле; при ошибке
// разбора шаг не меняется и вопрос задаётся повторно.
package dialog

import (
	"fmt"
	"strconv"

	"telegram-nutrition-bot/internal/models"
	"telegram-nutrition-bot/internal/session"
)

const (
	askWeight   = "Введите ваш вес (в кг):"
	askHeight   = "Введите ваш рост (в см):"
	askAge      = "Введите ваш возраст:"
	askActivity = "Сколько минут активности у вас в день?"
	askCity     = "В каком городе вы находитесь?"

	profileDone = "Готово! Проверьте свой статус с помощью /check_progress"

	badNumber = "Пожалуйста, введите число."
	badGrams  = "Пожалуйста, введите корректное количество граммов."
)

// StartProfile resets the scratch buffer and enters the onboarding flow.
func StartProfile(s *session.Session) string {
	s.Draft = models.ProfileDraft{}
	s.Step = models.StepWeight
	return askWeight
}

// StartFood enters the grams-collection step for a looked-up product and
// returns the prompt. The energy density is parked in scratch until the
// user answers.
func StartFood(s *session.Session, p *models.Product) string {
	s.PendingFood = p
	s.Step = models.StepFoodGrams
	return fmt.Sprintf("%s — %s ккал на 100 г. Сколько грамм вы съели?",
		p.Name, trimFloat(p.KcalPer100g))
}

// Advance feeds one reply into the current step and returns the next
// prompt. The ledger is mutated only on flow completion (city step,
// grams step); aborted flows leave it untouched.
func Advance(s *session.Session, text string) string {
	switch s.Step {
	case models.StepWeight:
		w, err := strconv.ParseFloat(text, 64)
		if err != nil || w <= 0 {
			return badNumber + "\n" + askWeight
		}
		s.Draft.WeightKg = w
		s.Step = models.StepHeight
		return askHeight

	case models.StepHeight:
		h, err := strconv.ParseFloat(text, 64)
		if err != nil || h <= 0 {
			return badNumber + "\n" + askHeight
		}
		s.Draft.HeightCm = h
		s.Step = models.StepAge
		return askAge

	case models.StepAge:
		a, err := strconv.Atoi(text)
		if err != nil || a <= 0 {
			return badNumber + "\n" + askAge
		}
		s.Draft.Age = a
		s.Step = models.StepActivity
		return askActivity

	case models.StepActivity:
		m, err := strconv.Atoi(text)
		if err != nil || m < 0 {
			return badNumber + "\n" + askActivity
		}
		s.Draft.ActivityMin = m
		s.Step = models.StepCity
		return askCity

	case models.StepCity:
		// любой текст — коммитим анкету целиком
		s.SetProfile(models.UserProfile{
			WeightKg:    s.Draft.WeightKg,
			HeightCm:    s.Draft.HeightCm,
			Age:         s.Draft.Age,
			ActivityMin: s.Draft.ActivityMin,
			City:        text,
		})
		s.Draft = models.ProfileDraft{}
		s.Step = models.StepIdle
		return profileDone

	case models.StepFoodGrams:
		grams, err := strconv.ParseFloat(text, 64)
		if err != nil || grams < 0 {
			return badGrams
		}
		kcal := s.PendingFood.KcalPer100g * grams / 100
		if err := s.AddCalories(kcal); err != nil {
			return badGrams
		}
		s.PendingFood = nil
		s.Step = models.StepIdle
		return fmt.Sprintf("Записано: %.2f ккал.", kcal)
	}
	return ""
}

// trimFloat formats a float without a trailing ".0" tail.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
