package pet

import (
	"math"

	"github.com/napolitain/solver-pet/internal/models"
)

// selfLoopTables is an egg plus one tier of capacity 2 whose only sacrifice
// succeeds half the time
func selfLoopTables() *models.Tables {
	t := &models.Tables{
		NumTiers: 2,
		Capacity: [models.MaxTiers]int{0, 2},
	}
	t.Entry[1] = []float64{1, 0}
	t.Sacrifice[1][1] = []float64{0.5, 0.5}
	t.FeedCount[models.Egg] = 1
	t.FeedItem[models.Egg] = models.TierF
	return t
}

// chainTables is an egg plus two single-level tiers
func chainTables() *models.Tables {
	t := &models.Tables{
		NumTiers: 3,
		Capacity: [models.MaxTiers]int{0, 1, 1},
	}
	t.Entry[1] = []float64{1}
	t.Entry[2] = []float64{1}
	t.FeedCount = [models.MaxTiers]int{1, 1}
	t.FeedItem = [models.MaxTiers]models.Tier{models.TierF, models.TierF}
	return t
}

// deadEndTables is an egg plus one tier of capacity 2 that takes no sacrifices
func deadEndTables() *models.Tables {
	t := &models.Tables{
		NumTiers: 2,
		Capacity: [models.MaxTiers]int{0, 2},
	}
	t.Entry[1] = []float64{1}
	t.FeedCount[models.Egg] = 1
	t.FeedItem[models.Egg] = models.TierF
	return t
}

func defaultQuery(levels []int) Query {
	return Query{
		Creature: models.Unicorn,
		Levels:   levels,
		Goal:     models.Goal{StatMin: 7162},
		Prices:   models.DefaultPrices(),
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}
