package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MealController struct {
	Meals *services.MealService
	Hub   *services.RealtimeHub
}

func NewMealController(meals *services.MealService, hub *services.RealtimeHub) *MealController {
	return &MealController{Meals: meals, Hub: hub}
}

// POST /meals
func (mc *MealController) LogMeal(c *gin.Context) {
	var body struct {
		Type  string                     `json:"type" binding:"required"`
		AteAt time.Time                  `json:"ate_at" binding:"required"`
		Items []services.MealItemRequest `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	userID := c.GetUint("userID")

	meal, err := mc.Meals.AddMeal(userID, body.Type, body.AteAt, body.Items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mc.Hub.Broadcast(userID, services.Event{Type: "meal_logged", Payload: gin.H{"meal_id": meal.ID}})
	c.JSON(http.StatusCreated, meal)
}

// GET /meals?from=2024-01-15&to=2024-01-20 — to defaults to from (one day)
func (mc *MealController) ListMeals(c *gin.Context) {
	userID := c.GetUint("userID")

	from, to, err := parseDateWindow(c.Query("from"), c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	meals, err := mc.Meals.ListMealsByDateRange(userID, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

// DELETE /meals/:id
func (mc *MealController) DeleteMeal(c *gin.Context) {
	userID := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.Meals.DeleteMeal(userID, uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
