// Package session владеет всем изменяемым состоянием пользователя:
// профиль, цели, журнал и текущий шаг диалога.
package session

import (
	"errors"
	"math"
	"sync"

	"telegram-nutrition-bot/internal/calc"
	"telegram-nutrition-bot/internal/models"
)

var (
	// ErrUninitialized means a ledger operation hit a user that was never
	// registered. That is a programming error, not user input.
	ErrUninitialized = errors.New("session: user not initialized")
	// ErrProfileNotConfigured means goals are requested before onboarding.
	ErrProfileNotConfigured = errors.New("session: profile not configured")
	// ErrInvalidAmount rejects negative or non-finite logged quantities.
	ErrInvalidAmount = errors.New("session: invalid amount")
)

// Session is the per-user unit of state. Dialog fields (Step, Draft,
// PendingFood) are touched only from the user's own turn queue; the
// mutex guards profile, goals and ledger, which the scheduler reads
// concurrently.
type Session struct {
	ChatID int64

	Step        models.Step
	Draft       models.ProfileDraft
	PendingFood *models.Product

	mu      sync.Mutex
	profile *models.UserProfile
	goals   models.Goals
	ledger  models.Ledger

	tasks chan func()
}

func newSession(chatID int64) *Session {
	s := &Session{
		ChatID: chatID,
		Step:   models.StepIdle,
		tasks:  make(chan func(), 16),
	}
	go s.loop()
	return s
}

// loop drains the per-user task queue. One goroutine per session keeps
// turns of the same user strictly ordered.
func (s *Session) loop() {
	for fn := range s.tasks {
		fn()
	}
}

// Do enqueues fn on the user's sequential queue.
func (s *Session) Do(fn func()) {
	s.tasks <- fn
}

// SetProfile stores the profile and recomputes goals. Overwrites any
// previous profile; the ledger is left untouched.
func (s *Session) SetProfile(p models.UserProfile) models.Goals {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = &p
	s.goals = models.Goals{
		WaterMl:  calc.WaterGoal(p.WeightKg, p.ActivityMin),
		Calories: calc.CalorieGoal(p.WeightKg, p.HeightCm, p.Age, p.ActivityMin),
	}
	return s.goals
}

// Onboarded reports whether the profile (and therefore goals) exist.
func (s *Session) Onboarded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile != nil
}

// RecordWater stores the reported water total in ml. The value replaces
// the previous one — пользователь сообщает итог, а не добавку.
func (s *Session) RecordWater(ml int) error {
	if ml < 0 {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.WaterMl = ml
	return nil
}

// AddCalories adds eaten kcal to the running sum.
func (s *Session) AddCalories(kcal float64) error {
	if kcal < 0 || math.IsNaN(kcal) || math.IsInf(kcal, 0) {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Calories += kcal
	return nil
}

// AddBurned adds workout kcal to the running sum.
func (s *Session) AddBurned(kcal float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger.Burned += kcal
}

// Goals returns the derived goals, or ErrProfileNotConfigured before
// onboarding completes.
func (s *Session) Goals() (models.Goals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.Goals{}, ErrProfileNotConfigured
	}
	return s.goals, nil
}

// Progress builds the /check_progress snapshot.
func (s *Session) Progress() (models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return models.Progress{}, ErrProfileNotConfigured
	}
	return models.Progress{
		WaterMl:     s.ledger.WaterMl,
		WaterGoalMl: s.goals.WaterMl,
		RemainingMl: s.goals.WaterMl - float64(s.ledger.WaterMl),
		Calories:    s.ledger.Calories,
		CalorieGoal: s.goals.Calories,
		Burned:      s.ledger.Burned,
		Balance:     s.goals.Calories - s.ledger.Calories + s.ledger.Burned,
	}, nil
}
