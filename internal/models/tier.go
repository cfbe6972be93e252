package models

import "fmt"

// Tier is a raising stage. The tier of a pet is the number of stages it has
// entered, so the egg is tier 0.
type Tier int

const (
	Egg Tier = iota
	TierF
	TierE
	TierD
	TierC
	TierB
	TierA
	TierS
)

// MaxTiers bounds the number of tiers any table can describe. Usage vectors
// are fixed-size arrays indexed by Tier.
const MaxTiers = 8

var tierNames = [MaxTiers]string{"egg", "f", "e", "d", "c", "b", "a", "s"}

func (t Tier) String() string {
	if t < 0 || int(t) >= MaxTiers {
		return fmt.Sprintf("tier(%d)", int(t))
	}
	return tierNames[t]
}

// AllTiers returns the default tiers in raising order
func AllTiers() []Tier {
	return []Tier{Egg, TierF, TierE, TierD, TierC, TierB, TierA, TierS}
}

// SacrificeTiers returns the tiers a sacrifice pet can have
func SacrificeTiers() []Tier {
	return []Tier{TierE, TierD, TierC, TierB, TierA, TierS}
}

// CandyTiers returns the tiers candy is sold in
func CandyTiers() []Tier {
	return []Tier{TierF, TierE, TierD, TierC, TierB, TierA}
}

// TierByName resolves a lowercase tier name ("egg", "f" ... "s")
func TierByName(name string) (Tier, bool) {
	for i, n := range tierNames {
		if n == name {
			return Tier(i), true
		}
	}
	return 0, false
}
