package models

import "time"

// Swap is a proposed one-for-one food substitution. MealDate is the date the
// old food was actually logged, when known; it scopes which meals a chosen
// swap applies to but does not take part in swap identity.
type Swap struct {
	OldFood  Food
	NewFood  Food
	MealDate *time.Time
}

// SwapKey identifies a swap by its food pair. Two swaps with the same pair
// are duplicates regardless of meal date.
type SwapKey struct {
	OldFoodID uint
	NewFoodID uint
}

// Key returns the identity of the swap for deduplication.
func (s Swap) Key() SwapKey {
	return SwapKey{OldFoodID: s.OldFood.ID, NewFoodID: s.NewFood.ID}
}
