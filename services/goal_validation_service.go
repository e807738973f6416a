package services

import (
	"fmt"

	"backend/models"
)

// GoalValidator checks that a set of goals is individually well-formed and
// mutually non-conflicting. It is pure: no state, no side effects.
type GoalValidator struct{}

func NewGoalValidator() *GoalValidator {
	return &GoalValidator{}
}

// ValidationResult collects every applicable error so a caller can present
// the complete list to the user in one pass.
type ValidationResult struct {
	Errors []string
}

func (r ValidationResult) OK() bool {
	return len(r.Errors) == 0
}

// Validate checks a full goal set. It never fails fast: all errors for all
// goals come back together.
func (v *GoalValidator) Validate(goals []models.Goal) ValidationResult {
	var errs []string

	if len(goals) == 0 {
		errs = append(errs, "at least one goal must be specified")
		return ValidationResult{Errors: errs}
	}

	for i, goal := range goals {
		if !goal.IsValid() {
			errs = append(errs, fmt.Sprintf("goal %d: invalid goal configuration", i+1))
		}
	}

	errs = append(errs, v.conflictErrors(goals)...)

	return ValidationResult{Errors: errs}
}

// conflictErrors reports nutrients targeted by both an increase and a
// decrease goal. This is the only cross-goal invariant.
func (v *GoalValidator) conflictErrors(goals []models.Goal) []string {
	byNutrient := make(map[uint][]models.Goal)
	var order []uint
	for _, g := range goals {
		if _, seen := byNutrient[g.Nutrient.ID]; !seen {
			order = append(order, g.Nutrient.ID)
		}
		byNutrient[g.Nutrient.ID] = append(byNutrient[g.Nutrient.ID], g)
	}

	var errs []string
	for _, nutrientID := range order {
		group := byNutrient[nutrientID]
		if len(group) < 2 {
			continue
		}
		var hasIncrease, hasDecrease bool
		for _, g := range group {
			switch g.Direction {
			case models.GoalIncrease:
				hasIncrease = true
			case models.GoalDecrease:
				hasDecrease = true
			}
		}
		if hasIncrease && hasDecrease {
			errs = append(errs, fmt.Sprintf(
				"conflicting goals for %s: cannot both increase and decrease the same nutrient",
				group[0].Nutrient.Name))
		}
	}
	return errs
}

// ValidateInputs validates a single in-progress goal's raw form fields before
// a Goal can even be constructed, so a caller can check partially-filled
// input incrementally. label names the goal in error messages ("Goal 1").
func (v *GoalValidator) ValidateInputs(
	nutrientSelected bool,
	goalType models.GoalType,
	preciseAmount *float64,
	intensitySelected bool,
	label string,
) ValidationResult {
	var errs []string

	if !nutrientSelected {
		// can't validate further without a nutrient
		errs = append(errs, label+": please select a nutrient")
		return ValidationResult{Errors: errs}
	}

	if goalType == models.GoalPrecise {
		switch {
		case preciseAmount == nil:
			errs = append(errs, label+": please enter a precise amount")
		case *preciseAmount <= 0:
			errs = append(errs, label+": amount must be greater than 0")
		case *preciseAmount > 100:
			errs = append(errs, label+": amount cannot exceed 100%")
		}
	} else {
		if !intensitySelected {
			errs = append(errs, label+": please select an intensity level")
		}
	}

	return ValidationResult{Errors: errs}
}
