package pet

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"testing"

	"github.com/napolitain/solver-pet/internal/models"
)

// TestSolveIdempotent verifies that solving the same query twice yields
// bit-identical action tables for every state.
func TestSolveIdempotent(t *testing.T) {
	q := defaultQuery([]int{1, 2, 1})
	q.Experience = 30

	first, err := Solve(DefaultSpace(), q)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	baseline := resultDigest(first)

	for i := 1; i < 5; i++ {
		again, err := Solve(DefaultSpace(), q)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}
		if got := resultDigest(again); got != baseline {
			t.Fatalf("iteration %d: digest %x, want %x", i, got, baseline)
		}
	}
}

// TestQueriesDoNotShareResults guards against one query's vectors leaking
// into another through the shared space.
func TestQueriesDoNotShareResults(t *testing.T) {
	cheap := defaultQuery([]int{1, 1})
	dear := defaultQuery([]int{1, 1})
	for i := range dear.Prices.Sacrifice {
		dear.Prices.Sacrifice[i] *= 10
	}

	before, err := Solve(DefaultSpace(), cheap)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	digest := resultDigest(before)

	if _, err := Solve(DefaultSpace(), dear); err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if resultDigest(before) != digest {
		t.Error("second solve changed the first result")
	}
}

func resultDigest(r *Result) [32]byte {
	h := sha256.New()
	buf := make([]byte, 8)
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(buf, math.Float64bits(f))
		h.Write(buf)
	}

	sp := r.Space()
	for i := 0; i < sp.Len(); i++ {
		for _, ra := range r.Ranked(StateID(i)) {
			h.Write([]byte{byte(ra.Action.Kind), byte(ra.Action.Sacrifice), byte(ra.Usage.Kind)})
			for j := 0; j < models.MaxTiers; j++ {
				writeFloat(ra.Usage.Sacrifice[j])
				writeFloat(ra.Usage.Feed[j])
			}
			writeFloat(ra.Cost.Value)
		}
	}

	var sum [32]byte
	copy(sum[:], h.Sum(nil))
	return sum
}

// FuzzSolveCosts checks cost invariants for arbitrary goals and experience
func FuzzSolveCosts(f *testing.F) {
	f.Add(uint16(7162), uint8(0), uint8(0))
	f.Add(uint16(0), uint8(50), uint8(3))
	f.Add(uint16(9000), uint8(100), uint8(8))
	f.Add(uint16(300), uint8(17), uint8(5))

	sp := DefaultSpace()
	creatures := models.AllCreatures()

	f.Fuzz(func(t *testing.T, stat uint16, experience uint8, creature uint8) {
		q := Query{
			Creature:   creatures[int(creature)%len(creatures)],
			Levels:     []int{1, 1},
			Experience: float64(experience % 101),
			Goal:       models.Goal{StatMin: float64(stat)},
			Prices:     models.DefaultPrices(),
		}

		r, err := Solve(sp, q)
		if err != nil {
			t.Fatalf("Solve: %v", err)
		}

		for i := 0; i < sp.Len(); i++ {
			id := StateID(i)
			for _, ra := range r.Ranked(id) {
				c := ra.Cost
				if c.Unreachable {
					continue
				}
				if c.Value < 0 || math.IsNaN(c.Value) || math.IsInf(c.Value, 0) {
					t.Fatalf("state %v: %s has cost %v", sp.State(id).Levels, ra.Action, c.Value)
				}
				if r.Status(id) == GoodEnd && c.Value != 0 {
					t.Fatalf("goal-met state %v costs %v", sp.State(id).Levels, c.Value)
				}
			}
		}
	})
}

func BenchmarkSolveDefault(b *testing.B) {
	sp := DefaultSpace()
	q := defaultQuery(nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Solve(sp, q); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNewSpace(b *testing.B) {
	tables := models.DefaultTables()
	for i := 0; i < b.N; i++ {
		NewSpace(tables)
	}
}
