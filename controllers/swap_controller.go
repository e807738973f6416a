package controllers

import (
	"fmt"
	"net/http"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// SwapController is the thin caller in front of the swap engine: it turns
// raw JSON into Goal objects, runs generation/simulation, and renders result
// objects. All decision logic lives in the services.
type SwapController struct {
	Catalog *services.CatalogService
	Meals   *services.MealService
	Hub     *services.RealtimeHub
}

func NewSwapController(catalog *services.CatalogService, meals *services.MealService, hub *services.RealtimeHub) *SwapController {
	return &SwapController{Catalog: catalog, Meals: meals, Hub: hub}
}

type GoalRequest struct {
	NutrientID    uint     `json:"nutrient_id"`
	Direction     string   `json:"direction"` // "increase" | "decrease"
	Type          string   `json:"type"`      // "precise" | "imprecise"
	PreciseAmount *float64 `json:"precise_amount,omitempty"`
	Intensity     string   `json:"intensity,omitempty"` // "low" | "medium" | "high"
}

type GenerateSwapsRequest struct {
	Goals []GoalRequest `json:"goals" binding:"required"`
	From  string        `json:"from" binding:"required"` // YYYY-MM-DD
	To    string        `json:"to"`                      // optional; defaults to From
}

// SwapResponse is one ranked suggestion.
type SwapResponse struct {
	OldFoodID      uint    `json:"old_food_id"`
	OldDescription string  `json:"old_description"`
	NewFoodID      uint    `json:"new_food_id"`
	NewDescription string  `json:"new_description"`
	Score          float64 `json:"score"`
	MealDate       string  `json:"meal_date,omitempty"`
}

// POST /swaps/generate
func (sc *SwapController) GenerateSwaps(c *gin.Context) {
	var req GenerateSwapsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, to, err := parseDateWindow(req.From, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	validator := services.NewGoalValidator()
	goals, formErrors := sc.buildGoals(validator, req.Goals)
	if len(formErrors) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"kind": services.ResultValidationFailed, "errors": formErrors})
		return
	}

	userID := c.GetUint("userID")
	generator := services.NewSwapGenerator(validator, sc.Catalog, sc.Meals)
	result := generator.Generate(userID, goals, from, to)

	if !result.OK() {
		c.JSON(statusForKind(result.Kind), gin.H{"kind": result.Kind, "errors": result.Errors})
		return
	}

	resp := make([]SwapResponse, 0, len(result.Swaps))
	for _, s := range result.Swaps {
		r := SwapResponse{
			OldFoodID:      s.OldFood.ID,
			OldDescription: s.OldFood.Description,
			NewFoodID:      s.NewFood.ID,
			NewDescription: s.NewFood.Description,
			Score:          services.ScoreSwap(s, goals),
		}
		if s.MealDate != nil {
			r.MealDate = s.MealDate.Format(dateLayout)
		}
		resp = append(resp, r)
	}

	sc.Hub.Broadcast(userID, services.Event{Type: "swaps_generated", Payload: gin.H{"count": len(resp)}})
	c.JSON(http.StatusOK, gin.H{"kind": result.Kind, "swaps": resp})
}

type SimulateSwapRequest struct {
	OldFoodID uint   `json:"old_food_id" binding:"required"`
	NewFoodID uint   `json:"new_food_id" binding:"required"`
	From      string `json:"from" binding:"required"`
	To        string `json:"to"`
}

// POST /swaps/simulate — projects the chosen swap onto the meals in the
// window and reports nutrient totals before and after.
func (sc *SwapController) SimulateSwap(c *gin.Context) {
	var req SimulateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	from, to, err := parseDateWindow(req.From, req.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	oldFood, err := sc.Catalog.FindByID(req.OldFoodID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	newFood, err := sc.Catalog.FindByID(req.NewFoodID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	userID := c.GetUint("userID")
	before, err := sc.Meals.ListMealsByDateRange(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(before) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"kind": services.ResultNoMealsLogged, "errors": []string{"no meals logged for the selected dates"}})
		return
	}

	swap := models.Swap{OldFood: oldFood, NewFood: newFood}
	after := services.NewSwapSimulator().Apply(swap, before)

	stats := services.NewStatisticsService(sc.Catalog)
	beforeTotals, err := stats.NutrientTotals(before)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	afterTotals, err := stats.NutrientTotals(after)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"before_meals":  before,
		"after_meals":   after,
		"before_totals": beforeTotals,
		"after_totals":  afterTotals,
	})
}

// buildGoals validates raw goal fields incrementally, then constructs the
// immutable Goal values. Nutrients are resolved against the catalog so a
// goal can't reference an unknown nutrient.
func (sc *SwapController) buildGoals(validator *services.GoalValidator, reqs []GoalRequest) ([]models.Goal, []string) {
	nutrients, err := sc.Catalog.Nutrients()
	if err != nil {
		return nil, []string{fmt.Sprintf("error accessing nutrient catalog: %v", err)}
	}
	byID := make(map[uint]models.Nutrient, len(nutrients))
	for _, n := range nutrients {
		byID[n.ID] = n
	}

	var goals []models.Goal
	var formErrors []string
	for i, r := range reqs {
		label := fmt.Sprintf("Goal %d", i+1)
		nutrient, nutrientSelected := byID[r.NutrientID]

		goalType := models.GoalType(r.Type)
		if goalType != models.GoalPrecise {
			goalType = models.GoalImprecise
		}

		inputResult := validator.ValidateInputs(
			nutrientSelected,
			goalType,
			r.PreciseAmount,
			r.Intensity != "",
			label,
		)
		if !inputResult.OK() {
			formErrors = append(formErrors, inputResult.Errors...)
			continue
		}

		direction := models.GoalDirection(r.Direction)
		if direction != models.GoalIncrease && direction != models.GoalDecrease {
			formErrors = append(formErrors, label+": direction must be \"increase\" or \"decrease\"")
			continue
		}

		if goalType == models.GoalPrecise {
			goals = append(goals, models.NewPreciseGoal(nutrient, direction, *r.PreciseAmount))
		} else {
			goals = append(goals, models.NewImpreciseGoal(nutrient, direction, models.GoalIntensity(r.Intensity)))
		}
	}
	return goals, formErrors
}

func statusForKind(kind services.ResultKind) int {
	switch kind {
	case services.ResultValidationFailed:
		return http.StatusBadRequest
	case services.ResultNoMealsLogged, services.ResultNoSuitableSwap:
		return http.StatusNotFound
	case services.ResultDataAccessError:
		return http.StatusInternalServerError
	}
	return http.StatusOK
}
