// Package calc содержит чистые формулы расчёта норм воды и калорий.
package calc

import "strings"

// burnRates maps a workout type to kcal burned per minute. Keys are
// lower-case; both Russian and English names are accepted.
var burnRates = map[string]float64{
	"бег":       10,
	"running":   10,
	"велосипед": 8,
	"cycling":   8,
	"плавание":  7,
	"swimming":  7,
	"силовая":   6,
	"strength":  6,
}

const defaultBurnRate = 5 // kcal/min for unrecognized workout types

// WaterGoal returns the daily water norm in ml: 30 ml per kg of body
// weight plus 500 ml for every full 30 minutes of daily activity.
// Partial half-hour blocks contribute nothing.
func WaterGoal(weightKg float64, activityMin int) float64 {
	return weightKg*30 + float64(activityMin/30)*500
}

// CalorieGoal returns the daily calorie norm: a simplified resting-energy
// formula plus 200 kcal per hour of daily activity. Pathological inputs
// can yield a non-positive value; no lower bound is enforced.
func CalorieGoal(weightKg, heightCm float64, age, activityMin int) float64 {
	base := 10*weightKg + 6.25*heightCm - 5*float64(age)
	return base + float64(activityMin)*(200.0/60.0)
}

// CaloriesBurned returns kcal burned for a workout of the given type and
// duration in minutes.
func CaloriesBurned(workout string, minutes int) float64 {
	rate, ok := burnRates[strings.ToLower(workout)]
	if !ok {
		rate = defaultBurnRate
	}
	return rate * float64(minutes)
}

// WorkoutWater returns the supplemental water in ml recommended after a
// workout: 200 ml for every full 30 minutes.
func WorkoutWater(minutes int) int {
	return minutes / 30 * 200
}
