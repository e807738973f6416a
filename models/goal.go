package models

import "fmt"

// GoalDirection says which way a nutrient should move.
type GoalDirection string

const (
	GoalIncrease GoalDirection = "increase"
	GoalDecrease GoalDirection = "decrease"
)

// GoalType distinguishes goals with an exact target weight from goals stated
// as a rough intensity.
type GoalType string

const (
	GoalPrecise   GoalType = "precise"
	GoalImprecise GoalType = "imprecise"
)

// GoalIntensity is the qualitative strength of an imprecise goal.
type GoalIntensity string

const (
	IntensityLow    GoalIntensity = "low"
	IntensityMedium GoalIntensity = "medium"
	IntensityHigh   GoalIntensity = "high"
)

// Goal is one nutrient objective, e.g. "increase protein, high intensity" or
// "decrease sodium by 25". Goals are immutable value objects: they are built
// for a single swap-generation call and never persisted.
type Goal struct {
	Nutrient      Nutrient
	Type          GoalType
	Direction     GoalDirection
	PreciseAmount float64       // set only for precise goals
	Intensity     GoalIntensity // set only for imprecise goals
}

// NewPreciseGoal builds a goal with an exact target weight in (0, 100].
func NewPreciseGoal(nutrient Nutrient, direction GoalDirection, amount float64) Goal {
	return Goal{
		Nutrient:      nutrient,
		Type:          GoalPrecise,
		Direction:     direction,
		PreciseAmount: amount,
	}
}

// NewImpreciseGoal builds a goal weighted by a qualitative intensity.
func NewImpreciseGoal(nutrient Nutrient, direction GoalDirection, intensity GoalIntensity) Goal {
	return Goal{
		Nutrient:  nutrient,
		Type:      GoalImprecise,
		Direction: direction,
		Intensity: intensity,
	}
}

// IsValid checks that the goal is well-formed: nutrient and direction set,
// and exactly the target matching its type filled in.
func (g Goal) IsValid() bool {
	if g.Nutrient.ID == 0 {
		return false
	}
	if g.Direction != GoalIncrease && g.Direction != GoalDecrease {
		return false
	}
	switch g.Type {
	case GoalPrecise:
		return g.PreciseAmount > 0 && g.PreciseAmount <= 100 && g.Intensity == ""
	case GoalImprecise:
		switch g.Intensity {
		case IntensityLow, IntensityMedium, IntensityHigh:
			return g.PreciseAmount == 0
		}
	}
	return false
}

// Weight is the scoring weight of the goal: the precise amount when set,
// otherwise a multiplier derived from the intensity.
func (g Goal) Weight() float64 {
	if g.Type == GoalPrecise {
		return g.PreciseAmount
	}
	switch g.Intensity {
	case IntensityHigh:
		return 3.0
	case IntensityMedium:
		return 2.0
	default:
		return 1.5
	}
}

func (g Goal) String() string {
	dir := "Increase"
	if g.Direction == GoalDecrease {
		dir = "Decrease"
	}
	if g.Type == GoalPrecise {
		return fmt.Sprintf("%s %s by %.1f%%", dir, g.Nutrient.Name, g.PreciseAmount)
	}
	return fmt.Sprintf("%s %s (%s)", dir, g.Nutrient.Name, g.Intensity)
}
