package scheduler

import (
	"time"

	"telegram-nutrition-bot/internal/handlers"
	"telegram-nutrition-bot/internal/session"

	"github.com/go-co-op/gocron/v2"
)

// Start запускает ежеминутную проверку: в настроенное время (HH:MM)
// напоминаем всем пользователям, не добравшим дневную норму воды.
func Start(h *handlers.Handler, users *session.Registry, remindAt string) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	_, err = s.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			if time.Now().Format("15:04") != remindAt {
				return
			}
			users.Range(func(sess *session.Session) {
				// напоминание идёт через очередь пользователя,
				// чтобы не пересечься с его текущим ходом
				sess.Do(func() { h.SendReminder(sess) })
			})
		}),
	)
	if err != nil {
		return nil, err
	}

	s.Start()
	return s, nil
}
