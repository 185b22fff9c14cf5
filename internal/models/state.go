package models

// Step is the current position of a user in a multi-turn dialog.
type Step int

const (
	StepIdle Step = iota
	StepWeight
	StepHeight
	StepAge
	StepActivity
	StepCity
	StepFoodGrams
)
