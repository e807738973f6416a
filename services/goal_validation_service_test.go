package services

import (
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	protein = models.Nutrient{ID: 203, Name: "Protein", Unit: "g"}
	fat     = models.Nutrient{ID: 204, Name: "Fat", Unit: "g"}
	sodium  = models.Nutrient{ID: 307, Name: "Sodium", Unit: "mg"}
)

func TestValidateEmptyGoalSet(t *testing.T) {
	v := NewGoalValidator()

	result := v.Validate(nil)

	require.False(t, result.OK())
	assert.Contains(t, result.Errors[0], "at least one goal")
}

func TestValidateConflictingDirections(t *testing.T) {
	v := NewGoalValidator()
	goals := []models.Goal{
		models.NewPreciseGoal(sodium, models.GoalDecrease, 50),
		models.NewPreciseGoal(sodium, models.GoalIncrease, 50),
	}

	result := v.Validate(goals)

	require.False(t, result.OK())
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Sodium")
	assert.Contains(t, result.Errors[0], "conflicting goals")
}

func TestValidateSameNutrientSameDirectionIsNotAConflict(t *testing.T) {
	v := NewGoalValidator()
	goals := []models.Goal{
		models.NewPreciseGoal(sodium, models.GoalDecrease, 50),
		models.NewImpreciseGoal(sodium, models.GoalDecrease, models.IntensityLow),
	}

	assert.True(t, v.Validate(goals).OK())
}

func TestValidateReportsAllErrorsAtOnce(t *testing.T) {
	v := NewGoalValidator()
	goals := []models.Goal{
		{Nutrient: protein, Type: models.GoalPrecise, Direction: models.GoalIncrease}, // amount missing
		models.NewPreciseGoal(sodium, models.GoalDecrease, 50),
		models.NewPreciseGoal(sodium, models.GoalIncrease, 50),
	}

	result := v.Validate(goals)

	require.Len(t, result.Errors, 2)
	assert.Contains(t, result.Errors[0], "invalid goal")
	assert.Contains(t, result.Errors[1], "Sodium")
}

func TestValidateRejectsOutOfRangePreciseAmount(t *testing.T) {
	v := NewGoalValidator()

	for _, amount := range []float64{-5, 0, 101} {
		goals := []models.Goal{models.NewPreciseGoal(protein, models.GoalIncrease, amount)}
		assert.False(t, v.Validate(goals).OK(), "amount %v should be invalid", amount)
	}

	goals := []models.Goal{models.NewPreciseGoal(protein, models.GoalIncrease, 100)}
	assert.True(t, v.Validate(goals).OK())
}

func TestValidateRejectsGoalWithBothTargets(t *testing.T) {
	v := NewGoalValidator()
	goal := models.Goal{
		Nutrient:      protein,
		Type:          models.GoalPrecise,
		Direction:     models.GoalIncrease,
		PreciseAmount: 50,
		Intensity:     models.IntensityHigh,
	}

	assert.False(t, v.Validate([]models.Goal{goal}).OK())
}

func TestValidateInputsRequiresNutrientFirst(t *testing.T) {
	v := NewGoalValidator()

	result := v.ValidateInputs(false, models.GoalPrecise, nil, false, "Goal 1")

	// without a nutrient nothing else is checked
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Goal 1: please select a nutrient", result.Errors[0])
}

func TestValidateInputsPreciseAmountRange(t *testing.T) {
	v := NewGoalValidator()

	result := v.ValidateInputs(true, models.GoalPrecise, nil, false, "Goal 1")
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "enter a precise amount")

	zero := 0.0
	result = v.ValidateInputs(true, models.GoalPrecise, &zero, false, "Goal 1")
	assert.Contains(t, result.Errors[0], "greater than 0")

	over := 120.0
	result = v.ValidateInputs(true, models.GoalPrecise, &over, false, "Goal 2")
	assert.Contains(t, result.Errors[0], "cannot exceed 100%")

	ok := 25.0
	assert.True(t, v.ValidateInputs(true, models.GoalPrecise, &ok, false, "Goal 1").OK())
}

func TestValidateInputsImpreciseNeedsIntensity(t *testing.T) {
	v := NewGoalValidator()

	result := v.ValidateInputs(true, models.GoalImprecise, nil, false, "Goal 2")
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "Goal 2: please select an intensity level", result.Errors[0])

	assert.True(t, v.ValidateInputs(true, models.GoalImprecise, nil, true, "Goal 2").OK())
}
