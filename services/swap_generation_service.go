package services

import (
	"fmt"
	"sort"
	"time"

	"backend/models"
	"backend/utils"
)

// FoodCatalog is the read-only catalog collaborator: every known food with
// its nutrient amounts and measures, treated as an immutable snapshot for the
// duration of one Generate call.
type FoodCatalog interface {
	FetchAll() ([]models.Food, error)
}

// MealLog is the meal-history collaborator.
type MealLog interface {
	ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error)
}

// ResultKind classifies the outcome of a generation call. Every kind except
// ResultOK is an expected condition the caller can explain to the user.
type ResultKind string

const (
	ResultOK               ResultKind = "ok"
	ResultValidationFailed ResultKind = "validation_failed"
	ResultNoMealsLogged    ResultKind = "no_meals_logged"
	ResultNoSuitableSwap   ResultKind = "no_suitable_swap"
	ResultDataAccessError  ResultKind = "data_access_error"
)

// GenerationResult is what Generate hands back: either ranked swaps, or a
// kind plus human-readable messages. It never carries partial results.
type GenerationResult struct {
	Kind   ResultKind
	Swaps  []models.Swap
	Errors []string
}

func (r GenerationResult) OK() bool {
	return r.Kind == ResultOK
}

// Caps on the ranked result list. The wider range cap reflects the larger
// candidate pool when more distinct foods were consumed.
const (
	singleDaySwapLimit = 10
	dateRangeSwapLimit = 50
)

// SwapGenerator orchestrates one generation request: validate the goals,
// fetch the meals actually logged in the window, search the catalog for
// beneficial replacements of each consumed food, then rank, dedupe and cap.
// Dependencies are injected; the generator holds no mutable state between
// calls and is safe to construct per request.
type SwapGenerator struct {
	validator *GoalValidator
	catalog   FoodCatalog
	meals     MealLog
}

func NewSwapGenerator(validator *GoalValidator, catalog FoodCatalog, meals MealLog) *SwapGenerator {
	return &SwapGenerator{validator: validator, catalog: catalog, meals: meals}
}

// Generate produces ranked swap suggestions for the user's meals logged
// between from and to (inclusive). Given the same goals, meal log and catalog
// snapshot it returns identical ordered results.
func (g *SwapGenerator) Generate(userID uint, goals []models.Goal, from, to time.Time) GenerationResult {
	if validation := g.validator.Validate(goals); !validation.OK() {
		return GenerationResult{Kind: ResultValidationFailed, Errors: validation.Errors}
	}

	meals, err := g.meals.ListMealsByDateRange(userID, from, to)
	if err != nil {
		return GenerationResult{
			Kind:   ResultDataAccessError,
			Errors: []string{fmt.Sprintf("error accessing meal log: %v", err)},
		}
	}
	if len(meals) == 0 {
		return GenerationResult{
			Kind:   ResultNoMealsLogged,
			Errors: []string{"no meals logged for the selected dates; please log some meals first before generating swaps"},
		}
	}

	catalog, err := g.catalog.FetchAll()
	if err != nil {
		return GenerationResult{
			Kind:   ResultDataAccessError,
			Errors: []string{fmt.Sprintf("error accessing food catalog: %v", err)},
		}
	}

	candidates := g.searchMeals(meals, catalog, goals)

	limit := singleDaySwapLimit
	if !utils.SameDay(from, to) {
		limit = dateRangeSwapLimit
	}
	top := rankAndDedupe(candidates, goals, limit)

	if len(top) == 0 {
		return GenerationResult{
			Kind:   ResultNoSuitableSwap,
			Errors: []string{"no suitable food swaps found for your logged meals with the specified goals"},
		}
	}

	return GenerationResult{Kind: ResultOK, Swaps: top}
}

// searchMeals walks every logged item and collects beneficial alternatives
// for its food, carrying the date of the meal it was eaten in. Items whose
// food has since left the catalog are skipped. The same food eaten in two
// meals produces duplicate pairs here; rankAndDedupe keeps the first.
func (g *SwapGenerator) searchMeals(meals []models.Meal, catalog []models.Food, goals []models.Goal) []models.Swap {
	byID := make(map[uint]models.Food, len(catalog))
	for _, f := range catalog {
		byID[f.ID] = f
	}

	seen := make(map[uint]bool)
	var candidates []models.Swap
	for _, meal := range meals {
		mealDate := meal.AteAt
		for _, item := range meal.Items {
			if seen[item.FoodID] {
				continue
			}
			seen[item.FoodID] = true
			oldFood, ok := byID[item.FoodID]
			if !ok {
				continue
			}
			candidates = append(candidates, findBeneficialAlternatives(oldFood, catalog, goals, &mealDate)...)
		}
	}
	return candidates
}

// rankAndDedupe sorts candidates by score descending (stable, so catalog
// enumeration order breaks ties), drops duplicate (old,new) pairs keeping the
// first occurrence, and caps the list.
func rankAndDedupe(candidates []models.Swap, goals []models.Goal, limit int) []models.Swap {
	sort.SliceStable(candidates, func(i, j int) bool {
		return ScoreSwap(candidates[i], goals) > ScoreSwap(candidates[j], goals)
	})

	seen := make(map[models.SwapKey]bool)
	var top []models.Swap
	for _, s := range candidates {
		if seen[s.Key()] {
			continue
		}
		seen[s.Key()] = true
		top = append(top, s)
		if len(top) == limit {
			break
		}
	}
	return top
}
