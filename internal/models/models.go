package models

// UserProfile holds the physiological data collected during /set_profile.
// Set only when the onboarding dialog completes; a new run overwrites it.
type UserProfile struct {
	WeightKg    float64
	HeightCm    float64
	Age         int
	ActivityMin int    // минут активности в день
	City        string // informational only
}

// Goals are derived from UserProfile, never entered by the user directly.
type Goals struct {
	WaterMl  float64
	Calories float64
}

// Ledger accumulates logged quantities for the lifetime of the process.
// WaterMl keeps the last reported total (overwrite), the calorie fields
// are running sums.
type Ledger struct {
	WaterMl  int
	Calories float64
	Burned   float64
}

// Progress is a snapshot for /check_progress.
type Progress struct {
	WaterMl     int
	WaterGoalMl float64
	RemainingMl float64
	Calories    float64
	CalorieGoal float64
	Burned      float64
	Balance     float64 // calorie goal - eaten + burned
}

// ProfileDraft is the scratch buffer of the onboarding dialog. Fields are
// committed to a UserProfile atomically on the city step.
type ProfileDraft struct {
	WeightKg    float64
	HeightCm    float64
	Age         int
	ActivityMin int
}

// Product is a food-lookup result: product name plus energy density.
type Product struct {
	Name        string
	KcalPer100g float64
}
