package pet

import "github.com/napolitain/solver-pet/internal/models"

// Status classifies a state for one query
type Status uint8

const (
	// Open states still need a decision
	Open Status = iota
	// GoodEnd states already satisfy the goal
	GoodEnd
	// BadEnd states can never satisfy the goal
	BadEnd
)

func (s Status) String() string {
	switch s {
	case GoodEnd:
		return "goal met"
	case BadEnd:
		return "impossible"
	default:
		return "open"
	}
}

// Classifier decides terminal states for one creature and goal
type Classifier struct {
	tables *models.Tables
	goal   models.Goal
	info   models.CreatureInfo
}

// NewClassifier binds a goal to the creature's stat table
func NewClassifier(tables *models.Tables, goal models.Goal, info models.CreatureInfo) Classifier {
	return Classifier{tables: tables, goal: goal, info: info}
}

// IsGoalMet reports whether every goal level the pet has reached is high
// enough, the pet has reached the last goal tier, and the stat minimum holds
func (c Classifier) IsGoalMet(levels []int) bool {
	if len(c.goal.Levels) > len(levels) {
		return false
	}
	for i, want := range c.goal.Levels {
		if levels[i] < want {
			return false
		}
	}
	if c.goal.StatMin == 0 {
		return true
	}
	return c.info.StatTotal(levels) >= c.goal.StatMin
}

// IsUnreachable reports whether a tier already left behind is below its goal
// level, or the pet has no action left without meeting the goal
func (c Classifier) IsUnreachable(levels []int) bool {
	for i := 0; i < len(levels)-1 && i < len(c.goal.Levels); i++ {
		if levels[i] < c.goal.Levels[i] {
			return true
		}
	}

	if c.hasAction(levels) {
		return false
	}
	return !c.IsGoalMet(levels)
}

// hasAction mirrors Space.Actions: a pet below the last tier can be fed, and
// a pet below capacity can take a sacrifice if its tier accepts any
func (c Classifier) hasAction(levels []int) bool {
	tier := models.Tier(len(levels))
	if tier != c.tables.Terminal() {
		return true
	}
	if len(levels) == 0 || levels[len(levels)-1] >= c.tables.Capacity[tier] {
		return false
	}
	return len(c.tables.SacrificeOptions(tier)) > 0
}

// Classify returns the status of a level list
func (c Classifier) Classify(levels []int) Status {
	switch {
	case c.IsGoalMet(levels):
		return GoodEnd
	case c.IsUnreachable(levels):
		return BadEnd
	default:
		return Open
	}
}
