package pet

import (
	"testing"

	"github.com/napolitain/solver-pet/internal/models"
)

func TestRankPutsCheaperFirst(t *testing.T) {
	cheap := RankedAction{Action: AttemptAction(models.TierD), Cost: Cost{Value: 80}}
	dear := RankedAction{Action: AttemptAction(models.TierE), Cost: Cost{Value: 100}}

	for _, input := range [][]RankedAction{{dear, cheap}, {cheap, dear}} {
		Rank(input)
		if input[0] != cheap {
			t.Errorf("first = %s, want the 80 cost action", input[0].Action)
		}
	}
}

func TestRankKeepsTiesAndUnreachableInOrder(t *testing.T) {
	feed := RankedAction{Action: AdvanceAction(), Cost: Cost{Unreachable: true}}
	e := RankedAction{Action: AttemptAction(models.TierE), Cost: Cost{Value: 50}}
	d := RankedAction{Action: AttemptAction(models.TierD), Cost: Cost{Value: 50}}
	s := RankedAction{Action: AttemptAction(models.TierS), Cost: Cost{Unreachable: true}}

	actions := []RankedAction{feed, e, s, d}
	Rank(actions)

	want := []RankedAction{e, d, feed, s}
	for i := range want {
		if actions[i] != want[i] {
			t.Errorf("rank %d = %s, want %s", i, actions[i].Action, want[i].Action)
		}
	}
}

func TestCostLess(t *testing.T) {
	tests := []struct {
		a, b Cost
		want bool
	}{
		{Cost{Value: 1}, Cost{Value: 2}, true},
		{Cost{Value: 2}, Cost{Value: 1}, false},
		{Cost{Value: 1}, Cost{Value: 1}, false},
		{Cost{Value: 1e18}, Cost{Unreachable: true}, true},
		{Cost{Unreachable: true}, Cost{Value: 1}, false},
		{Cost{Unreachable: true}, Cost{Unreachable: true}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Less(tt.b); got != tt.want {
			t.Errorf("%+v.Less(%+v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCombineIsPure(t *testing.T) {
	base := Usage{Kind: Finite}
	base.Sacrifice[models.TierE] = 1

	other := Usage{Kind: Finite}
	other.Feed[models.TierF] = 2

	got := Combine(base, other, 0.5)
	if got.Sacrifice[models.TierE] != 1 || got.Feed[models.TierF] != 1 {
		t.Errorf("Combine = %+v", got)
	}
	if base.Feed[models.TierF] != 0 || other.Feed[models.TierF] != 2 {
		t.Error("Combine changed its inputs")
	}

	if Combine(GoalMetUsage, other, 1).Feed[models.TierF] != 2 {
		t.Error("goal-met vector should act as zero")
	}
	if GoalMetUsage.Feed[models.TierF] != 0 {
		t.Error("goal-met flyweight was modified")
	}
}

func TestCombineUnreachableAbsorbs(t *testing.T) {
	finite := Usage{Kind: Finite}
	finite.Feed[models.TierE] = 3

	if !Combine(finite, UnreachableUsage, 0.1).IsUnreachable() {
		t.Error("unreachable successor should poison the sum")
	}
	if !Combine(UnreachableUsage, finite, 1).IsUnreachable() {
		t.Error("unreachable accumulator should stay unreachable")
	}
	if Combine(finite, UnreachableUsage, 0).IsUnreachable() {
		t.Error("zero-weight successor should not count")
	}
}

func TestCostBookUnreachable(t *testing.T) {
	book := NewCostBook(models.DefaultTables(), models.DefaultPrices(), models.TierE, 0)

	if c := book.Cost(UnreachableUsage); !c.Unreachable {
		t.Errorf("cost = %+v, want unreachable", c)
	}
	if bd := book.Breakdown(UnreachableUsage); !bd.Unreachable {
		t.Error("breakdown should be unreachable")
	}
	if c := book.Cost(GoalMetUsage); c.Unreachable || c.Value != 0 {
		t.Errorf("cost = %+v, want 0", c)
	}
}

func TestCostBookFeedItems(t *testing.T) {
	book := NewCostBook(models.DefaultTables(), models.DefaultPrices(), models.TierC, 40)

	tests := []struct {
		tier models.Tier
		want float64
	}{
		{models.Egg, 20 * 200000},   // hatching eats F candy
		{models.TierF, 20 * 200000}, // F candy
		{models.TierE, 20 * 700000},
		{models.TierD, 25 * 1500000},
		{models.TierC, 15 * 2500000}, // current tier, 40% fed
		{models.TierB, 25 * 4000000},
		{models.TierA, 50 * 6500000},
	}
	for _, tt := range tests {
		if got := book.AdvanceCost(tt.tier); got != tt.want {
			t.Errorf("AdvanceCost(%s) = %v, want %v", tt.tier, got, tt.want)
		}
	}

	u := Usage{Kind: Finite}
	u.Feed[models.Egg] = 1
	u.Feed[models.TierF] = 1
	u.Sacrifice[models.TierS] = 2
	bd := book.Breakdown(u)
	if bd.Candy[models.TierF] != 2*20*200000 {
		t.Errorf("F candy = %v, want both feeds", bd.Candy[models.TierF])
	}
	if bd.Sacrifice[models.TierS] != 2*545000000 {
		t.Errorf("S sacrifice = %v", bd.Sacrifice[models.TierS])
	}
	if got, want := bd.CandyTotal()+bd.SacrificeTotal(), book.Cost(u).Value; got != want {
		t.Errorf("breakdown total %v != cost %v", got, want)
	}
}

func TestCostBookSharedCandyDiscount(t *testing.T) {
	tests := []struct {
		name    string
		current models.Tier
		want    [models.MaxTiers]float64
	}{
		{"egg", models.Egg, [models.MaxTiers]float64{
			models.Egg: 10 * 200000, models.TierF: 10 * 200000, models.TierE: 20 * 700000,
		}},
		{"F", models.TierF, [models.MaxTiers]float64{
			models.Egg: 10 * 200000, models.TierF: 10 * 200000, models.TierE: 20 * 700000,
		}},
		{"E", models.TierE, [models.MaxTiers]float64{
			models.Egg: 20 * 200000, models.TierF: 20 * 200000, models.TierE: 10 * 700000,
		}},
		{"S", models.TierS, [models.MaxTiers]float64{
			models.Egg: 20 * 200000, models.TierF: 20 * 200000, models.TierE: 20 * 700000,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := NewCostBook(models.DefaultTables(), models.DefaultPrices(), tt.current, 50)
			for _, tier := range []models.Tier{models.Egg, models.TierF, models.TierE} {
				if got := book.AdvanceCost(tier); got != tt.want[tier] {
					t.Errorf("AdvanceCost(%s) = %v, want %v", tier, got, tt.want[tier])
				}
			}
		})
	}
}
