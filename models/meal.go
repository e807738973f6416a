package models

import (
	"time"

	"gorm.io/gorm"
)

// One Meal (breakfast/lunch/dinner/snack)
type Meal struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"` // FK → users.id
	Type   string    `gorm:"not null"`       // "Breakfast"|"Lunch"|"Dinner"|"Snack"
	AteAt  time.Time // timestamp of the meal
	Items  []MealItem
}

// MealItem is one food logged as part of a meal. It references the catalog
// food/measure by id; nothing nutritional is duplicated onto the item.
type MealItem struct {
	gorm.Model
	MealID uint

	FoodID uint `gorm:"not null"`
	// given measures like "10 chips", "1 head of lettuce", "10 mL"
	// a quantity of 5 would represent "50 chips", "5 heads of lettuce", "50 mL"
	MeasureID uint    `gorm:"not null"`
	Quantity  float64 `gorm:"not null"`
}

// ValidMealTypes are the accepted values for Meal.Type.
var ValidMealTypes = []string{"Breakfast", "Lunch", "Dinner", "Snack"}

// IsValidMealType reports whether t is one of the accepted meal types.
func IsValidMealType(t string) bool {
	for _, v := range ValidMealTypes {
		if v == t {
			return true
		}
	}
	return false
}
