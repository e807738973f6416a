package models

// Nutrient is a catalog entry from the nutrient reference file.
// IDs are stable identifiers from the source data, not auto-increments.
type Nutrient struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"not null"`
	Unit string // "g", "mg", "µg", "kcal", …
}

func (n Nutrient) String() string {
	if n.Unit == "" {
		return n.Name
	}
	return n.Name + " (" + n.Unit + ")"
}
