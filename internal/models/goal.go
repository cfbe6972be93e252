package models

import (
	"errors"
	"fmt"
)

// ErrInvalidLevels is returned for level lists that no pet can hold
var ErrInvalidLevels = errors.New("invalid levels")

// Goal is what the pet must reach. Levels is a per-tier minimum that applies
// once the pet has entered that tier; StatMin is a minimum stat total.
// The zero Goal is met by every state.
type Goal struct {
	Levels  []int
	StatMin float64
}

// HasLevels reports whether the goal constrains sub-levels
func (g Goal) HasLevels() bool {
	return len(g.Levels) > 0
}

// CheckLevels validates a progress state (or a levels goal) against the tables
func (t *Tables) CheckLevels(levels []int) error {
	if len(levels) >= t.NumTiers {
		return fmt.Errorf("%w: %d tiers entered, at most %d", ErrInvalidLevels, len(levels), t.NumTiers-1)
	}
	for i, level := range levels {
		tier := Tier(i + 1)
		if level < 1 || level > t.Capacity[tier] {
			return fmt.Errorf("%w: tier %s level %d not in [1, %d]", ErrInvalidLevels, tier, level, t.Capacity[tier])
		}
	}
	return nil
}
