package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWaterGoal(t *testing.T) {
	assert.Equal(t, 2600.0, WaterGoal(70, 45)) // 2100 + one full block
	assert.Equal(t, 3100.0, WaterGoal(70, 60)) // 2100 + two full blocks
	assert.Equal(t, 2100.0, WaterGoal(70, 29)) // partial block ignored
	assert.Equal(t, 1500.0, WaterGoal(50, 0))
}

func TestCalorieGoal(t *testing.T) {
	// 10*70 + 6.25*175 - 5*30 + 60*(200/60)
	assert.InDelta(t, 1843.75, CalorieGoal(70, 175, 30, 60), 1e-9)
	assert.InDelta(t, 1643.75, CalorieGoal(70, 175, 30, 0), 1e-9)
}

func TestCaloriesBurned(t *testing.T) {
	assert.Equal(t, 300.0, CaloriesBurned("running", 30))
	assert.Equal(t, 300.0, CaloriesBurned("Бег", 30))
	assert.Equal(t, 240.0, CaloriesBurned("cycling", 30))
	assert.Equal(t, 150.0, CaloriesBurned("yoga", 30)) // default rate
}

func TestWorkoutWater(t *testing.T) {
	assert.Equal(t, 200, WorkoutWater(45))
	assert.Equal(t, 400, WorkoutWater(60))
	assert.Equal(t, 0, WorkoutWater(29))
}
