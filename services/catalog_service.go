package services

import (
	"fmt"
	"sync"

	"backend/models"

	"gorm.io/gorm"
)

// CatalogService serves the food/nutrient catalog from the database behind a
// read-through cache keyed by food id. The cached snapshot is immutable from
// the caller's point of view; Reset is the only invalidation and is left to
// whoever rewrites the underlying tables (the importer).
type CatalogService struct {
	db *gorm.DB

	mu     sync.RWMutex
	loaded bool
	all    []models.Food
	byID   map[uint]models.Food
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// FetchAll returns every food with nutrient amounts and measures preloaded.
// The returned slice is a copy; mutating it does not touch the cache.
func (c *CatalogService) FetchAll() ([]models.Food, error) {
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Food, len(c.all))
	copy(out, c.all)
	return out, nil
}

// FindByID returns the food with the given id, or an error when the catalog
// has no such food.
func (c *CatalogService) FindByID(id uint) (models.Food, error) {
	if err := c.ensureLoaded(); err != nil {
		return models.Food{}, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	food, ok := c.byID[id]
	if !ok {
		return models.Food{}, fmt.Errorf("food not found with id %d", id)
	}
	return food, nil
}

// SearchByDescription finds foods whose description contains the query,
// case-insensitively. Search goes to the database so it stays usable while a
// reimport is in flight.
func (c *CatalogService) SearchByDescription(query string) ([]models.Food, error) {
	var foods []models.Food
	err := c.db.
		Preload("FoodGroup").
		Where("description ILIKE ?", "%"+query+"%").
		Order("id").
		Limit(25).
		Find(&foods).Error
	return foods, err
}

// Nutrients lists the nutrient reference entries.
func (c *CatalogService) Nutrients() ([]models.Nutrient, error) {
	var nutrients []models.Nutrient
	err := c.db.Order("id").Find(&nutrients).Error
	return nutrients, err
}

// Reset drops the cached snapshot; the next read reloads from the database.
func (c *CatalogService) Reset() {
	c.mu.Lock()
	c.loaded = false
	c.all = nil
	c.byID = nil
	c.mu.Unlock()
}

func (c *CatalogService) ensureLoaded() error {
	c.mu.RLock()
	if c.loaded {
		c.mu.RUnlock()
		return nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.loaded {
		return nil
	}

	var foods []models.Food
	if err := c.db.
		Preload("FoodGroup").
		Preload("NutrientAmounts.Nutrient").
		Preload("Conversions.Measure").
		Order("id").
		Find(&foods).Error; err != nil {
		return err
	}

	byID := make(map[uint]models.Food, len(foods))
	for _, f := range foods {
		byID[f.ID] = f
	}
	c.all = foods
	c.byID = byID
	c.loaded = true
	return nil
}
