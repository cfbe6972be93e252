package pet

import "github.com/napolitain/solver-pet/internal/models"

// UsageKind tags a usage vector
type UsageKind uint8

const (
	Finite UsageKind = iota
	GoalMet
	Unreachable
)

// Usage is the expected number of times each action is taken on the way to
// the goal. Sacrifice is indexed by sacrifice tier, Feed by the tier being
// left. Usage is a value type; combining always returns a new vector.
type Usage struct {
	Kind      UsageKind
	Sacrifice [models.MaxTiers]float64
	Feed      [models.MaxTiers]float64
}

var (
	// GoalMetUsage is the all-zero vector of a state that already meets the goal
	GoalMetUsage = Usage{Kind: GoalMet}
	// UnreachableUsage marks a state or action that cannot reach the goal
	UnreachableUsage = Usage{Kind: Unreachable}
)

// IsUnreachable reports whether the vector is the unreachable tag
func (u Usage) IsUnreachable() bool {
	return u.Kind == Unreachable
}

// Combine returns v + weight*other. Unreachable absorbs: if either side is
// unreachable (and other carries positive weight) so is the result.
func Combine(v, other Usage, weight float64) Usage {
	if v.Kind == Unreachable || (other.Kind == Unreachable && weight > 0) {
		return UnreachableUsage
	}

	out := Usage{Kind: Finite}
	for i := 0; i < models.MaxTiers; i++ {
		out.Sacrifice[i] = v.Sacrifice[i] + other.Sacrifice[i]*weight
		out.Feed[i] = v.Feed[i] + other.Feed[i]*weight
	}
	return out
}
