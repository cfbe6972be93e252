package models

import "fmt"

// Prices holds the market price of one sacrifice pet per tier and of one
// candy per tier. Unused slots stay zero.
type Prices struct {
	Sacrifice [MaxTiers]float64
	Candy     [MaxTiers]float64
}

// DefaultPrices returns the market prices the calculator starts with
func DefaultPrices() Prices {
	return Prices{
		Sacrifice: [MaxTiers]float64{
			TierE: 6000000,
			TierD: 20000000,
			TierC: 57500000,
			TierB: 120000000,
			TierA: 220000000,
			TierS: 545000000,
		},
		Candy: [MaxTiers]float64{
			TierF: 200000,
			TierE: 700000,
			TierD: 1500000,
			TierC: 2500000,
			TierB: 4000000,
			TierA: 6500000,
		},
	}
}

// Validate rejects negative prices
func (p Prices) Validate() error {
	for i := 0; i < MaxTiers; i++ {
		if p.Sacrifice[i] < 0 {
			return fmt.Errorf("sacrifice price for %s is negative", Tier(i))
		}
		if p.Candy[i] < 0 {
			return fmt.Errorf("candy price for %s is negative", Tier(i))
		}
	}
	return nil
}
