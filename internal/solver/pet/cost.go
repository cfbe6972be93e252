package pet

import (
	"math"
	"sort"

	"github.com/napolitain/solver-pet/internal/models"
)

// Cost is a monetary cost, or the unreachable tag. An unreachable cost is
// never a number: it cannot be summed into a finite total by accident.
type Cost struct {
	Value       float64
	Unreachable bool
}

// Less reports whether c is a strictly smaller finite cost than o
func (c Cost) Less(o Cost) bool {
	if c.Unreachable {
		return false
	}
	return o.Unreachable || c.Value < o.Value
}

// CostBook prices usage vectors for one query
type CostBook struct {
	sacrifice [models.MaxTiers]float64
	advance   [models.MaxTiers]float64
	item      [models.MaxTiers]models.Tier
}

// NewCostBook prices every action. Feeds eating the same candy as the pet's
// current tier are reduced by the experience already fed (percent), rounded
// to whole candies. Hatching and leaving F share F candy, so an egg query
// discounts both.
func NewCostBook(tables *models.Tables, prices models.Prices, current models.Tier, experience float64) CostBook {
	var b CostBook
	b.sacrifice = prices.Sacrifice
	b.item = tables.FeedItem

	discounted := int(current) < tables.NumTiers-1
	for i := 0; i < tables.NumTiers-1; i++ {
		tier := models.Tier(i)
		candies := float64(tables.FeedCount[tier])
		if discounted && tables.FeedItem[tier] == tables.FeedItem[current] {
			candies = math.Round(candies * (1 - experience/100))
		}
		b.advance[tier] = candies * prices.Candy[tables.FeedItem[tier]]
	}

	return b
}

// AdvanceCost returns the cost of one feed out of a tier
func (b CostBook) AdvanceCost(tier models.Tier) float64 {
	return b.advance[tier]
}

// SacrificeCost returns the price of one sacrifice pet
func (b CostBook) SacrificeCost(tier models.Tier) float64 {
	return b.sacrifice[tier]
}

// Cost prices a usage vector
func (b CostBook) Cost(u Usage) Cost {
	if u.Kind == Unreachable {
		return Cost{Unreachable: true}
	}

	var total float64
	for i := 0; i < models.MaxTiers; i++ {
		total += u.Feed[i] * b.advance[i]
	}
	for i := 0; i < models.MaxTiers; i++ {
		total += u.Sacrifice[i] * b.sacrifice[i]
	}
	return Cost{Value: total}
}

// Breakdown splits a cost into sacrifice spending per sacrifice tier and
// candy spending per candy tier
type Breakdown struct {
	Unreachable bool
	Sacrifice   [models.MaxTiers]float64
	Candy       [models.MaxTiers]float64
}

// SacrificeTotal sums the sacrifice spending
func (bd Breakdown) SacrificeTotal() float64 {
	var sum float64
	for _, v := range bd.Sacrifice {
		sum += v
	}
	return sum
}

// CandyTotal sums the candy spending
func (bd Breakdown) CandyTotal() float64 {
	var sum float64
	for _, v := range bd.Candy {
		sum += v
	}
	return sum
}

// Breakdown returns the per-tier spending of a usage vector
func (b CostBook) Breakdown(u Usage) Breakdown {
	if u.Kind == Unreachable {
		return Breakdown{Unreachable: true}
	}

	var bd Breakdown
	for i := 0; i < models.MaxTiers; i++ {
		bd.Sacrifice[i] = u.Sacrifice[i] * b.sacrifice[i]
		if u.Feed[i] != 0 {
			bd.Candy[b.item[i]] += u.Feed[i] * b.advance[i]
		}
	}
	return bd
}

// RankedAction is an action with its expected usage and cost
type RankedAction struct {
	Action Action
	Usage  Usage
	Cost   Cost
}

// Rank orders actions by cost. The sort is stable and only moves an action
// ahead of another when its cost is a strictly smaller finite number, so
// equal and unreachable costs keep their generation order.
func Rank(actions []RankedAction) {
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Cost.Less(actions[j].Cost)
	})
}
