package session

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"telegram-nutrition-bot/internal/models"
)

func TestEnsureIdempotent(t *testing.T) {
	r := NewRegistry()
	a := r.Ensure(42)
	b := r.Ensure(42)
	assert.Same(t, a, b)
	assert.Equal(t, 1, r.Len())
}

func TestEnsureConcurrent(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ensure(7)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, r.Len())
}

func TestLookupUninitialized(t *testing.T) {
	r := NewRegistry()
	_, err := r.Lookup(99)
	assert.ErrorIs(t, err, ErrUninitialized)
}

func TestWaterOverwrites(t *testing.T) {
	s := NewRegistry().Ensure(1)
	require.NoError(t, s.RecordWater(500))
	require.NoError(t, s.RecordWater(300))

	s.SetProfile(models.UserProfile{WeightKg: 70, HeightCm: 175, Age: 30, ActivityMin: 60})
	p, err := s.Progress()
	require.NoError(t, err)
	assert.Equal(t, 300, p.WaterMl) // last report wins
}

func TestCaloriesAccumulate(t *testing.T) {
	s := NewRegistry().Ensure(1)
	require.NoError(t, s.AddCalories(200))
	require.NoError(t, s.AddCalories(100))
	s.AddBurned(50)

	s.SetProfile(models.UserProfile{WeightKg: 70, HeightCm: 175, Age: 30, ActivityMin: 60})
	p, err := s.Progress()
	require.NoError(t, err)
	assert.Equal(t, 300.0, p.Calories)
	assert.Equal(t, 50.0, p.Burned)
}

func TestInvalidAmounts(t *testing.T) {
	s := NewRegistry().Ensure(1)
	assert.ErrorIs(t, s.RecordWater(-1), ErrInvalidAmount)
	assert.ErrorIs(t, s.AddCalories(-10), ErrInvalidAmount)
	assert.ErrorIs(t, s.AddCalories(math.NaN()), ErrInvalidAmount)
	assert.ErrorIs(t, s.AddCalories(math.Inf(1)), ErrInvalidAmount)
}

func TestProgressBeforeOnboarding(t *testing.T) {
	s := NewRegistry().Ensure(1)
	_, err := s.Progress()
	assert.ErrorIs(t, err, ErrProfileNotConfigured)
	_, err = s.Goals()
	assert.ErrorIs(t, err, ErrProfileNotConfigured)
}

func TestSetProfileRecomputesGoals(t *testing.T) {
	s := NewRegistry().Ensure(1)
	g := s.SetProfile(models.UserProfile{WeightKg: 70, HeightCm: 175, Age: 30, ActivityMin: 60, City: "Москва"})
	assert.Equal(t, 3100.0, g.WaterMl)
	assert.InDelta(t, 1843.75, g.Calories, 1e-9)

	// a new onboarding run overwrites goals
	g = s.SetProfile(models.UserProfile{WeightKg: 50, HeightCm: 160, Age: 40, ActivityMin: 0})
	assert.Equal(t, 1500.0, g.WaterMl)
}

func TestProgressSnapshot(t *testing.T) {
	s := NewRegistry().Ensure(1)
	s.SetProfile(models.UserProfile{WeightKg: 70, HeightCm: 175, Age: 30, ActivityMin: 60})
	require.NoError(t, s.RecordWater(0))

	p, err := s.Progress()
	require.NoError(t, err)
	assert.Equal(t, 3100.0, p.WaterGoalMl)
	assert.Equal(t, 3100.0, p.RemainingMl)
	assert.InDelta(t, 1843.75, p.Balance, 1e-9)
}

func TestDoPreservesOrder(t *testing.T) {
	s := NewRegistry().Ensure(1)
	done := make(chan struct{})
	var got []int
	for i := 0; i < 10; i++ {
		i := i
		s.Do(func() { got = append(got, i) })
	}
	s.Do(func() { close(done) })
	<-done
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}
