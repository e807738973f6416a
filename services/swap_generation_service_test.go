package services

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	foods []models.Food
	err   error
}

func (f *fakeCatalog) FetchAll() ([]models.Food, error) {
	return f.foods, f.err
}

type fakeMealLog struct {
	meals []models.Meal
	err   error
}

func (f *fakeMealLog) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	return f.meals, f.err
}

func mealOn(date time.Time, foodIDs ...uint) models.Meal {
	meal := models.Meal{UserID: 1, Type: "Lunch", AteAt: date}
	for _, id := range foodIDs {
		meal.Items = append(meal.Items, models.MealItem{FoodID: id, MeasureID: 1, Quantity: 1})
	}
	return meal
}

func dayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.Add(24*time.Hour - time.Nanosecond)
}

func TestGenerateEndToEnd(t *testing.T) {
	whiteBread := testFood(1, "White Bread", map[uint]float64{protein.ID: 8})
	wholeWheat := testFood(2, "Whole Wheat Bread", map[uint]float64{protein.ID: 13})
	riceCake := testFood(3, "Rice Cake", map[uint]float64{protein.ID: 2})
	date := time.Date(2024, 1, 15, 12, 0, 0, 0, time.Local)

	generator := NewSwapGenerator(
		NewGoalValidator(),
		&fakeCatalog{foods: []models.Food{whiteBread, wholeWheat, riceCake}},
		&fakeMealLog{meals: []models.Meal{mealOn(date, whiteBread.ID)}},
	)
	goals := []models.Goal{models.NewImpreciseGoal(protein, models.GoalIncrease, models.IntensityHigh)}

	from, to := dayWindow(date)
	result := generator.Generate(1, goals, from, to)

	require.True(t, result.OK(), "errors: %v", result.Errors)
	require.Len(t, result.Swaps, 1)
	swap := result.Swaps[0]
	assert.Equal(t, whiteBread.ID, swap.OldFood.ID)
	assert.Equal(t, wholeWheat.ID, swap.NewFood.ID)
	assert.InDelta(t, (13-8)*3.0, ScoreSwap(swap, goals), 1e-9)
	require.NotNil(t, swap.MealDate)
	assert.True(t, swap.MealDate.Equal(date))
}

func TestGenerateValidationFailureReturnsNoPartialResults(t *testing.T) {
	generator := NewSwapGenerator(NewGoalValidator(), &fakeCatalog{}, &fakeMealLog{})
	goals := []models.Goal{
		models.NewPreciseGoal(sodium, models.GoalIncrease, 50),
		models.NewPreciseGoal(sodium, models.GoalDecrease, 50),
	}

	from, to := dayWindow(time.Now())
	result := generator.Generate(1, goals, from, to)

	assert.Equal(t, ResultValidationFailed, result.Kind)
	assert.Empty(t, result.Swaps)
	assert.NotEmpty(t, result.Errors)
}

func TestGenerateNoMealsLogged(t *testing.T) {
	generator := NewSwapGenerator(NewGoalValidator(), &fakeCatalog{}, &fakeMealLog{})
	goals := []models.Goal{models.NewImpreciseGoal(protein, models.GoalIncrease, models.IntensityLow)}

	from, to := dayWindow(time.Now())
	result := generator.Generate(1, goals, from, to)

	assert.Equal(t, ResultNoMealsLogged, result.Kind)
	assert.Empty(t, result.Swaps)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "no meals logged")
}

func TestGenerateNoSuitableSwap(t *testing.T) {
	best := testFood(1, "already the best", map[uint]float64{protein.ID: 50})
	worse := testFood(2, "worse", map[uint]float64{protein.ID: 10})
	date := time.Now()

	generator := NewSwapGenerator(
		NewGoalValidator(),
		&fakeCatalog{foods: []models.Food{best, worse}},
		&fakeMealLog{meals: []models.Meal{mealOn(date, best.ID)}},
	)
	goals := []models.Goal{models.NewImpreciseGoal(protein, models.GoalIncrease, models.IntensityHigh)}

	from, to := dayWindow(date)
	result := generator.Generate(1, goals, from, to)

	assert.Equal(t, ResultNoSuitableSwap, result.Kind)
	assert.Empty(t, result.Swaps)
}

func TestGenerateWrapsStoreFailures(t *testing.T) {
	goals := []models.Goal{models.NewImpreciseGoal(protein, models.GoalIncrease, models.IntensityLow)}
	from, to := dayWindow(time.Now())

	generator := NewSwapGenerator(
		NewGoalValidator(),
		&fakeCatalog{},
		&fakeMealLog{err: errors.New("connection refused")},
	)
	result := generator.Generate(1, goals, from, to)
	assert.Equal(t, ResultDataAccessError, result.Kind)
	assert.Contains(t, result.Errors[0], "meal log")

	generator = NewSwapGenerator(
		NewGoalValidator(),
		&fakeCatalog{err: errors.New("connection refused")},
		&fakeMealLog{meals: []models.Meal{mealOn(time.Now(), 1)}},
	)
	result = generator.Generate(1, goals, from, to)
	assert.Equal(t, ResultDataAccessError, result.Kind)
	assert.Contains(t, result.Errors[0], "food catalog")
}

func TestGenerateIsDeterministic(t *testing.T) {
	var catalog []models.Food
	for i := uint(1); i <= 40; i++ {
		catalog = append(catalog, testFood(i, fmt.Sprintf("food %d", i), map[uint]float64{
			protein.ID: float64(i % 17),
			sodium.ID:  float64((i * 7) % 23),
		}))
	}
	date := time.Date(2024, 3, 10, 9, 0, 0, 0, time.Local)
	meals := []models.Meal{mealOn(date, 1, 5), mealOn(date, 9)}
	goals := []models.Goal{
		models.NewImpreciseGoal(protein, models.GoalIncrease, models.IntensityMedium),
		models.NewPreciseGoal(sodium, models.GoalDecrease, 20),
	}

	generator := NewSwapGenerator(
		NewGoalValidator(),
		&fakeCatalog{foods: catalog},
		&fakeMealLog{meals: meals},
	)

	from, to := dayWindow(date)
	first := generator.Generate(1, goals, from, to)
	second := generator.Generate(1, goals, from, to)

	require.True(t, first.OK())
	require.Equal(t, len(first.Swaps), len(second.Swaps))
	for i := range first.Swaps {
		assert.Equal(t, first.Swaps[i].Key(), second.Swaps[i].Key(), "position %d", i)
	}
}

func TestGenerateRanksByScoreDescending(t *testing.T) {
	old := testFood(1, "old", map[uint]float64{protein.ID: 5})
	small := testFood(2, "small step", map[uint]float64{protein.ID: 7})
	big := testFood(3, "big step", map[uint]float64{protein.ID: 20})
	date := time.Now()

	generator := NewSwapGenerator(
		NewGoalValidator(),
		&fakeCatalog{foods: []models.Food{old, small, big}},
		&fakeMealLog{meals: []models.Meal{mealOn(date, old.ID)}},
	)
	goals := []models.Goal{models.NewImpreciseGoal(protein, models.GoalIncrease, models.IntensityLow)}

	from, to := dayWindow(date)
	result := generator.Generate(1, goals, from, to)

	require.True(t, result.OK())
	require.Len(t, result.Swaps, 2)
	assert.Equal(t, big.ID, result.Swaps[0].NewFood.ID)
	assert.Equal(t, small.ID, result.Swaps[1].NewFood.ID)
}

func TestGenerateDedupesPairsAcrossMeals(t *testing.T) {
	old := testFood(1, "porridge", map[uint]float64{protein.ID: 5})
	alt := testFood(2, "greek yogurt", map[uint]float64{protein.ID: 11})
	day1 := time.Date(2024, 2, 1, 8, 0, 0, 0, time.Local)
	day2 := day1.AddDate(0, 0, 1)

	generator := NewSwapGenerator(
		NewGoalValidator(),
		&fakeCatalog{foods: []models.Food{old, alt}},
		&fakeMealLog{meals: []models.Meal{mealOn(day1, old.ID), mealOn(day2, old.ID)}},
	)
	goals := []models.Goal{models.NewImpreciseGoal(protein, models.GoalIncrease, models.IntensityLow)}

	from, _ := dayWindow(day1)
	_, to := dayWindow(day2)
	result := generator.Generate(1, goals, from, to)

	require.True(t, result.OK())
	// the same (old,new) pair from two meals survives once, first date wins
	require.Len(t, result.Swaps, 1)
	require.NotNil(t, result.Swaps[0].MealDate)
	assert.True(t, result.Swaps[0].MealDate.Equal(day1))
}

func TestGenerateCapsResults(t *testing.T) {
	old := testFood(1, "base", map[uint]float64{protein.ID: 1})
	catalog := []models.Food{old}
	for i := uint(2); i <= 80; i++ {
		catalog = append(catalog, testFood(i, fmt.Sprintf("alt %d", i), map[uint]float64{protein.ID: float64(i)}))
	}
	goals := []models.Goal{models.NewImpreciseGoal(protein, models.GoalIncrease, models.IntensityLow)}
	day1 := time.Date(2024, 2, 1, 8, 0, 0, 0, time.Local)

	generator := NewSwapGenerator(
		NewGoalValidator(),
		&fakeCatalog{foods: catalog},
		&fakeMealLog{meals: []models.Meal{mealOn(day1, old.ID)}},
	)

	// single-day window caps at 10
	from, to := dayWindow(day1)
	result := generator.Generate(1, goals, from, to)
	require.True(t, result.OK())
	assert.Len(t, result.Swaps, 10)

	// multi-day range caps at 50
	_, to = dayWindow(day1.AddDate(0, 0, 6))
	result = generator.Generate(1, goals, from, to)
	require.True(t, result.OK())
	assert.Len(t, result.Swaps, 50)
}
