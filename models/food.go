package models

// FoodGroup categorizes foods (e.g. "Baked Products", "Vegetables").
type FoodGroup struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// Food is a catalog entry with its per-100-unit nutrient amounts and the
// measures it can be logged in. Treated as immutable once loaded.
type Food struct {
	ID              uint   `gorm:"primaryKey"`
	Description     string `gorm:"not null"`
	FoodGroupID     uint
	FoodGroup       FoodGroup
	NutrientAmounts []NutrientAmount   `gorm:"foreignKey:FoodID"`
	Conversions     []ConversionFactor `gorm:"foreignKey:FoodID"`
}

// NutrientAmount is the amount of one nutrient per 100 base units of a food.
type NutrientAmount struct {
	FoodID     uint `gorm:"primaryKey;autoIncrement:false"`
	NutrientID uint `gorm:"primaryKey;autoIncrement:false"`
	Nutrient   Nutrient
	Amount     float64
}

// Measure is a serving measure (e.g. "250mL", "1 slice").
type Measure struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
}

// ConversionFactor scales a food's base nutrient amounts to one unit of a
// measure. A food is loggable only in measures it has a conversion for.
type ConversionFactor struct {
	FoodID    uint `gorm:"primaryKey;autoIncrement:false"`
	MeasureID uint `gorm:"primaryKey;autoIncrement:false"`
	Measure   Measure
	Value     float64
}

// NutrientAmountOf returns the food's per-100-unit amount for the given
// nutrient, or 0 when the food has no recorded amount for it.
func (f Food) NutrientAmountOf(nutrientID uint) float64 {
	for _, na := range f.NutrientAmounts {
		if na.NutrientID == nutrientID {
			return na.Amount
		}
	}
	return 0
}

// HasMeasure reports whether the food can be logged in the given measure.
func (f Food) HasMeasure(measureID uint) bool {
	for _, cf := range f.Conversions {
		if cf.MeasureID == measureID {
			return true
		}
	}
	return false
}

// ConversionValue returns the multiplier for the given measure, or 1 when the
// food has no conversion recorded for it.
func (f Food) ConversionValue(measureID uint) float64 {
	for _, cf := range f.Conversions {
		if cf.MeasureID == measureID {
			return cf.Value
		}
	}
	return 1
}
