package services

import (
	"backend/models"
)

// StatisticsService aggregates nutrient totals over a meal list. It sits
// downstream of the swap engine: the comparison endpoint runs it over the
// original and the projected meal lists to show the impact of a swap.
type StatisticsService struct {
	catalog FoodCatalog
}

func NewStatisticsService(catalog FoodCatalog) *StatisticsService {
	return &StatisticsService{catalog: catalog}
}

// NutrientTotals sums every nutrient across all items of all meals, scaling
// each food's per-100-unit amounts by the item's conversion factor and
// quantity. Totals are keyed by nutrient name and stay in the nutrient's own
// unit; no cross-unit conversion is attempted.
func (s *StatisticsService) NutrientTotals(meals []models.Meal) (map[string]float64, error) {
	catalog, err := s.catalog.FetchAll()
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Food, len(catalog))
	for _, f := range catalog {
		byID[f.ID] = f
	}

	totals := make(map[string]float64)
	for _, meal := range meals {
		for _, item := range meal.Items {
			food, ok := byID[item.FoodID]
			if !ok {
				continue
			}
			factor := food.ConversionValue(item.MeasureID)
			for _, na := range food.NutrientAmounts {
				if na.Amount <= 0 {
					continue
				}
				totals[na.Nutrient.Name] += na.Amount * factor * item.Quantity
			}
		}
	}
	return totals, nil
}

// TotalsFor picks the totals for the named nutrients only, with absent
// nutrients reported as 0. Handy for goal-focused comparisons.
func (s *StatisticsService) TotalsFor(meals []models.Meal, nutrients []models.Nutrient) (map[string]float64, error) {
	all, err := s.NutrientTotals(meals)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(nutrients))
	for _, n := range nutrients {
		out[n.Name] = all[n.Name]
	}
	return out, nil
}
