package services

import (
	"backend/models"
)

// SwapSimulator projects a chosen swap onto a meal history, producing the
// "after" list for side-by-side nutrient comparison. It is pure: inputs are
// never mutated and the output shares no slices with them.
type SwapSimulator struct{}

func NewSwapSimulator() *SwapSimulator {
	return &SwapSimulator{}
}

// Apply returns a new meal list in which every item of swap.OldFood now
// references swap.NewFood. Quantity and selected measure are kept exactly as
// logged; serving-size equivalence is the caller's concern. Meal ids, types,
// timestamps and owners are copied unchanged, so the output has the same
// shape as the input.
func (s *SwapSimulator) Apply(swap models.Swap, meals []models.Meal) []models.Meal {
	after := make([]models.Meal, len(meals))
	for i, meal := range meals {
		projected := meal
		projected.Items = make([]models.MealItem, len(meal.Items))
		for j, item := range meal.Items {
			if item.FoodID == swap.OldFood.ID {
				item.FoodID = swap.NewFood.ID
			}
			projected.Items[j] = item
		}
		after[i] = projected
	}
	return after
}
