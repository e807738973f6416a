package services

import (
	"fmt"
	"time"

	"backend/models"

	"gorm.io/gorm"
)

// MealService is the meal-log collaborator: it records what the user ate and
// retrieves it by date range. Item invariants (positive quantity, measure
// belongs to the food) are enforced on write so readers can rely on them.
type MealService struct {
	db      *gorm.DB
	catalog *CatalogService
}

func NewMealService(db *gorm.DB, catalog *CatalogService) *MealService {
	return &MealService{db: db, catalog: catalog}
}

type MealItemRequest struct {
	FoodID    uint    `json:"food_id"`
	MeasureID uint    `json:"measure_id"`
	Quantity  float64 `json:"quantity"`
}

func (s *MealService) AddMeal(
	userID uint,
	mealType string,
	ateAt time.Time,
	items []MealItemRequest,
) (*models.Meal, error) {
	if !models.IsValidMealType(mealType) {
		return nil, fmt.Errorf("invalid meal type %q", mealType)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("a meal needs at least one item")
	}

	mealItems := make([]models.MealItem, 0, len(items))
	for _, it := range items {
		food, err := s.catalog.FindByID(it.FoodID)
		if err != nil {
			return nil, err
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("quantity for %s must be positive", food.Description)
		}
		if !food.HasMeasure(it.MeasureID) {
			return nil, fmt.Errorf("measure %d is not available for %s", it.MeasureID, food.Description)
		}
		mealItems = append(mealItems, models.MealItem{
			FoodID:    it.FoodID,
			MeasureID: it.MeasureID,
			Quantity:  it.Quantity,
		})
	}

	meal := &models.Meal{UserID: userID, Type: mealType, AteAt: ateAt, Items: mealItems}
	if err := s.db.Create(meal).Error; err != nil {
		return nil, err
	}

	// reload with items
	var populated models.Meal
	if err := s.db.Preload("Items").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

// ListMealsByDateRange returns the user's meals with ate_at inside
// [from, to], oldest first, items preloaded.
func (s *MealService) ListMealsByDateRange(userID uint, from, to time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ? AND ate_at BETWEEN ? AND ?", userID, from, to).
		Order("ate_at ASC").
		Find(&meals).Error
	return meals, err
}

// DeleteMeal removes one of the user's meals and its items. The meal is
// resolved by id and owner first, so a caller can never touch another
// user's data; gorm.ErrRecordNotFound comes back when it isn't theirs.
func (s *MealService) DeleteMeal(userID, mealID uint) error {
	var meal models.Meal
	if err := s.db.
		Where("id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error; err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}
