package services

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func foodWithMeasure(id uint, name string, proteinPer100 float64, measureID uint, factor float64) models.Food {
	f := testFood(id, name, nil)
	f.NutrientAmounts = []models.NutrientAmount{
		{FoodID: id, NutrientID: protein.ID, Nutrient: protein, Amount: proteinPer100},
	}
	f.Conversions = []models.ConversionFactor{
		{FoodID: id, MeasureID: measureID, Value: factor},
	}
	return f
}

func TestNutrientTotalsScaleByFactorAndQuantity(t *testing.T) {
	// 8g protein per 100 units, measure factor 1.5, quantity 2 → 24g
	food := foodWithMeasure(1, "bread", 8, 3, 1.5)
	stats := NewStatisticsService(&fakeCatalog{foods: []models.Food{food}})

	meals := []models.Meal{
		{
			Type:  "Lunch",
			AteAt: time.Now(),
			Items: []models.MealItem{{FoodID: 1, MeasureID: 3, Quantity: 2}},
		},
	}

	totals, err := stats.NutrientTotals(meals)

	require.NoError(t, err)
	assert.InDelta(t, 8*1.5*2, totals["Protein"], 1e-9)
}

func TestNutrientTotalsSumAcrossMealsAndItems(t *testing.T) {
	bread := foodWithMeasure(1, "bread", 8, 3, 1)
	yogurt := foodWithMeasure(2, "yogurt", 10, 4, 2)
	stats := NewStatisticsService(&fakeCatalog{foods: []models.Food{bread, yogurt}})

	meals := []models.Meal{
		{
			Type:  "Breakfast",
			AteAt: time.Now(),
			Items: []models.MealItem{
				{FoodID: 1, MeasureID: 3, Quantity: 1},
				{FoodID: 2, MeasureID: 4, Quantity: 1},
			},
		},
		{
			Type:  "Snack",
			AteAt: time.Now(),
			Items: []models.MealItem{{FoodID: 1, MeasureID: 3, Quantity: 2}},
		},
	}

	totals, err := stats.NutrientTotals(meals)

	require.NoError(t, err)
	// 8 + 10*2 + 16
	assert.InDelta(t, 44, totals["Protein"], 1e-9)
}

func TestTotalsForReportsRequestedNutrientsOnly(t *testing.T) {
	bread := foodWithMeasure(1, "bread", 8, 3, 1)
	stats := NewStatisticsService(&fakeCatalog{foods: []models.Food{bread}})

	meals := []models.Meal{
		{
			Type:  "Lunch",
			AteAt: time.Now(),
			Items: []models.MealItem{{FoodID: 1, MeasureID: 3, Quantity: 1}},
		},
	}

	totals, err := stats.TotalsFor(meals, []models.Nutrient{protein, sodium})

	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.InDelta(t, 8, totals["Protein"], 1e-9)
	assert.Zero(t, totals["Sodium"]) // absent nutrients report as 0
}
