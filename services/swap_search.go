package services

import (
	"time"

	"backend/models"
)

// findBeneficialAlternatives scans the whole catalog for replacements of
// oldFood that are beneficial for the goal set, tagging each candidate with
// the date the old food was logged. A plain linear scan is fine at catalog
// sizes of a few thousand foods.
func findBeneficialAlternatives(oldFood models.Food, catalog []models.Food, goals []models.Goal, mealDate *time.Time) []models.Swap {
	var swaps []models.Swap
	for _, newFood := range catalog {
		if newFood.ID == oldFood.ID {
			continue
		}
		if isSwapBeneficial(oldFood, newFood, goals) {
			swaps = append(swaps, models.Swap{OldFood: oldFood, NewFood: newFood, MealDate: mealDate})
		}
	}
	return swaps
}

// isSwapBeneficial tallies, per goal, whether replacing oldFood with newFood
// moves the nutrient the right way. The pair is beneficial iff it improves
// more goals than it worsens and improves at least one: a swap may slightly
// worsen a secondary goal if it clearly helps the primary ones, but a swap
// that improves nothing is never suggested.
func isSwapBeneficial(oldFood, newFood models.Food, goals []models.Goal) bool {
	improvements := 0
	regressions := 0

	for _, goal := range goals {
		delta := newFood.NutrientAmountOf(goal.Nutrient.ID) - oldFood.NutrientAmountOf(goal.Nutrient.ID)

		if goal.Direction == models.GoalIncrease {
			if delta > 0 {
				improvements++
			} else if delta < 0 {
				regressions++
			}
		} else {
			if delta < 0 {
				improvements++
			} else if delta > 0 {
				regressions++
			}
		}
	}

	return improvements > regressions && improvements > 0
}

// ScoreSwap rates how strongly a swap moves the goal nutrients in the wanted
// direction. Only favorable movement contributes, weighted by each goal's
// weight; unfavorable movement was already rejected pair-level by
// isSwapBeneficial and is not re-penalized here.
func ScoreSwap(swap models.Swap, goals []models.Goal) float64 {
	total := 0.0
	for _, goal := range goals {
		delta := swap.NewFood.NutrientAmountOf(goal.Nutrient.ID) - swap.OldFood.NutrientAmountOf(goal.Nutrient.ID)

		if goal.Direction == models.GoalIncrease {
			if delta > 0 {
				total += delta * goal.Weight()
			}
		} else {
			if delta < 0 {
				total += -delta * goal.Weight()
			}
		}
	}
	return total
}
