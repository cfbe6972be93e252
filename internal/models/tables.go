package models

import (
	"fmt"
	"math"
)

// probabilityTolerance bounds how far a distribution may sum away from 1
const probabilityTolerance = 1e-9

// Tables holds the static raising data: tier capacities, sub-level
// distributions and candy consumption. Distributions are indexed so that
// dist[k] is the probability of ending at sub-level k+1.
type Tables struct {
	NumTiers int
	Capacity [MaxTiers]int

	// Entry[t] is the sub-level distribution when a pet enters tier t
	Entry [MaxTiers][]float64

	// Sacrifice[t][s] is the distribution when a tier-s pet is sacrificed
	// into a tier-t pet. A tier without entries cannot take sacrifices.
	Sacrifice [MaxTiers][MaxTiers][]float64

	// FeedCount[t] candies of tier FeedItem[t] advance a pet out of tier t
	FeedCount [MaxTiers]int
	FeedItem  [MaxTiers]Tier
}

// DefaultTables returns the live game data
func DefaultTables() *Tables {
	t := &Tables{
		NumTiers: MaxTiers,
		Capacity: [MaxTiers]int{0, 1, 2, 3, 4, 5, 7, 9},
		FeedCount: [MaxTiers]int{
			Egg: 20, TierF: 20, TierE: 20, TierD: 25, TierC: 25, TierB: 25, TierA: 50,
		},
		FeedItem: [MaxTiers]Tier{
			Egg: TierF, TierF: TierF, TierE: TierE, TierD: TierD, TierC: TierC, TierB: TierB, TierA: TierA,
		},
	}

	t.Sacrifice[TierE] = [MaxTiers][]float64{
		TierE: {0.7, 0.3},
		TierD: {0.6, 0.4},
		TierC: {0.5, 0.5},
		TierB: {0.4, 0.6},
		TierA: {0.3, 0.7},
		TierS: {0.2, 0.8},
	}
	t.Sacrifice[TierD] = [MaxTiers][]float64{
		TierD: {0.57, 0.25, 0.18},
		TierC: {0.35, 0.47, 0.18},
		TierB: {0.25, 0.50, 0.25},
		TierA: {0.23, 0.45, 0.32},
		TierS: {0.20, 0.35, 0.45},
	}
	t.Sacrifice[TierC] = [MaxTiers][]float64{
		TierC: {0.45, 0.31, 0.18, 0.06},
		TierB: {0.31, 0.45, 0.18, 0.06},
		TierA: {0.18, 0.28, 0.45, 0.09},
		TierS: {0.15, 0.27, 0.43, 0.15},
	}
	t.Sacrifice[TierB] = [MaxTiers][]float64{
		TierB: {0.40, 0.28, 0.18, 0.10, 0.04},
		TierA: {0.28, 0.35, 0.18, 0.13, 0.06},
		TierS: {0.18, 0.25, 0.33, 0.15, 0.09},
	}
	t.Sacrifice[TierA] = [MaxTiers][]float64{
		TierA: {0.35, 0.23, 0.17, 0.12, 0.07, 0.04, 0.02},
		TierS: {0.11, 0.15, 0.26, 0.25, 0.14, 0.06, 0.03},
	}
	t.Sacrifice[TierS] = [MaxTiers][]float64{
		TierS: {0.27, 0.21, 0.17, 0.13, 0.09, 0.06, 0.04, 0.02, 0.01},
	}

	// Hatching always gives F1; later tiers roll like a same-tier sacrifice.
	t.Entry[TierF] = []float64{1}
	for tier := TierE; tier <= TierS; tier++ {
		t.Entry[tier] = t.Sacrifice[tier][tier]
	}

	return t
}

// Terminal returns the last tier; pets there cannot advance
func (t *Tables) Terminal() Tier {
	return Tier(t.NumTiers - 1)
}

// SacrificeOptions returns the sacrifice tiers accepted by a tier, ascending
func (t *Tables) SacrificeOptions(tier Tier) []Tier {
	if tier < 0 || int(tier) >= t.NumTiers {
		return nil
	}
	var opts []Tier
	for s := 0; s < t.NumTiers; s++ {
		if len(t.Sacrifice[tier][s]) > 0 {
			opts = append(opts, Tier(s))
		}
	}
	return opts
}

// Validate checks that capacities and distributions are consistent
func (t *Tables) Validate() error {
	if t.NumTiers < 2 || t.NumTiers > MaxTiers {
		return fmt.Errorf("tier count %d out of range [2, %d]", t.NumTiers, MaxTiers)
	}
	if t.Capacity[Egg] != 0 {
		return fmt.Errorf("egg capacity must be 0, got %d", t.Capacity[Egg])
	}
	for i := 1; i < t.NumTiers; i++ {
		tier := Tier(i)
		if t.Capacity[tier] < 1 || t.Capacity[tier] > 15 {
			return fmt.Errorf("tier %s: capacity %d out of range [1, 15]", tier, t.Capacity[tier])
		}
		if err := checkDistribution(t.Entry[tier], t.Capacity[tier]); err != nil {
			return fmt.Errorf("tier %s entry: %w", tier, err)
		}
		for s := 0; s < t.NumTiers; s++ {
			dist := t.Sacrifice[tier][s]
			if len(dist) == 0 {
				continue
			}
			if len(dist) != t.Capacity[tier] {
				return fmt.Errorf("tier %s sacrifice %s: %d outcomes for capacity %d",
					tier, Tier(s), len(dist), t.Capacity[tier])
			}
			if err := checkDistribution(dist, t.Capacity[tier]); err != nil {
				return fmt.Errorf("tier %s sacrifice %s: %w", tier, Tier(s), err)
			}
		}
	}
	for i := 0; i < t.NumTiers-1; i++ {
		tier := Tier(i)
		if t.FeedCount[tier] < 0 {
			return fmt.Errorf("tier %s: negative feed count", tier)
		}
		item := t.FeedItem[tier]
		if item < 0 || int(item) >= t.NumTiers {
			return fmt.Errorf("tier %s: feed item tier %d out of range", tier, int(item))
		}
	}
	return nil
}

func checkDistribution(dist []float64, capacity int) error {
	if len(dist) == 0 || len(dist) > capacity {
		return fmt.Errorf("%d outcomes for capacity %d", len(dist), capacity)
	}
	var sum float64
	for _, p := range dist {
		if p < 0 || math.IsNaN(p) {
			return fmt.Errorf("invalid probability %v", p)
		}
		sum += p
	}
	if math.Abs(sum-1) > probabilityTolerance {
		return fmt.Errorf("probabilities sum to %v", sum)
	}
	return nil
}
