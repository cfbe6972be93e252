package pet

import (
	"errors"
	"fmt"

	"github.com/napolitain/solver-pet/internal/models"
)

// ErrUnknownState is returned when the pet's levels are not a reachable state
var ErrUnknownState = errors.New("unknown state")

// Query is one cost question: a pet, where it is, where it should get to and
// what things cost. Inputs are expected to be validated by the caller.
type Query struct {
	Creature models.Creature
	Levels   []int
	// Experience is the percent of the current tier's candy already fed
	Experience float64
	Goal       models.Goal
	Prices     models.Prices
}

// Result holds the solved action table of every state for one query
type Result struct {
	space      *Space
	classifier Classifier
	book       CostBook
	current    StateID

	status []Status
	value  []Usage
	ranked [][]RankedAction
}

// Solve computes the expected usage of every action at every state, working
// from the highest potential down so every successor is solved first.
func Solve(space *Space, q Query) (*Result, error) {
	info, err := q.Creature.Info()
	if err != nil {
		return nil, err
	}
	current, ok := space.Lookup(q.Levels)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownState, q.Levels)
	}

	tables := space.Tables()
	r := &Result{
		space:      space,
		classifier: NewClassifier(tables, q.Goal, info),
		book:       NewCostBook(tables, q.Prices, models.Tier(len(q.Levels)), q.Experience),
		current:    current,
		status:     make([]Status, space.Len()),
		value:      make([]Usage, space.Len()),
		ranked:     make([][]RankedAction, space.Len()),
	}

	for potential := space.MaxPotential(); potential >= 0; potential-- {
		for _, id := range space.Group(potential) {
			r.solveState(id)
		}
	}

	return r, nil
}

func (r *Result) solveState(id StateID) {
	levels := r.space.State(id).Levels
	actions := r.space.Actions(id)

	status := r.classifier.Classify(levels)
	r.status[id] = status

	if status != Open {
		flyweight := GoalMetUsage
		if status == BadEnd {
			flyweight = UnreachableUsage
		}
		cost := r.book.Cost(flyweight)
		ranked := make([]RankedAction, len(actions))
		for i, a := range actions {
			ranked[i] = RankedAction{Action: a, Usage: flyweight, Cost: cost}
		}
		r.value[id] = flyweight
		r.ranked[id] = ranked
		return
	}

	ranked := make([]RankedAction, len(actions))
	for i, a := range actions {
		u := r.actionUsage(id, a)
		ranked[i] = RankedAction{Action: a, Usage: u, Cost: r.book.Cost(u)}
	}
	Rank(ranked)

	if len(ranked) == 0 {
		panic(fmt.Sprintf("BUG: open state %v has no action", levels))
	}
	r.ranked[id] = ranked
	r.value[id] = ranked[0].Usage
}

// actionUsage computes the expected usage of taking an action now and
// playing the best action afterwards. A failed sacrifice returns to the same
// state, so the attempt repeats until it escapes: 1/(1-pSelf) attempts on
// average, with the escape spread over the successors in proportion.
func (r *Result) actionUsage(id StateID, a Action) Usage {
	tr := r.space.Successors(id, a)
	if len(tr.Next) == 0 {
		return UnreachableUsage
	}

	tier := r.space.State(id).Tier()
	u := Usage{Kind: Finite}

	switch a.Kind {
	case Advance:
		for _, next := range tr.Next {
			u = Combine(u, r.value[next.To], next.P)
		}
		if u.IsUnreachable() {
			return u
		}
		u.Feed[tier]++

	case Attempt:
		repeats := 1 / (1 - tr.Self)
		for _, next := range tr.Next {
			u = Combine(u, r.value[next.To], next.P*repeats)
		}
		if u.IsUnreachable() {
			return u
		}
		u.Sacrifice[a.Sacrifice] += repeats
	}

	return u
}

// Space returns the state space the result was solved over
func (r *Result) Space() *Space {
	return r.space
}

// Current returns the id of the queried state
func (r *Result) Current() StateID {
	return r.current
}

// Best returns the cheapest action at the queried state. ok is false when
// the queried state is already settled or has no action left.
func (r *Result) Best() (best RankedAction, ok bool) {
	if r.status[r.current] != Open || len(r.ranked[r.current]) == 0 {
		return RankedAction{}, false
	}
	return r.ranked[r.current][0], true
}

// Status returns the classification of a state
func (r *Result) Status(id StateID) Status {
	return r.status[id]
}

// Value returns the expected usage of playing optimally from a state
func (r *Result) Value(id StateID) Usage {
	return r.value[id]
}

// Ranked returns the actions of a state, cheapest first
func (r *Result) Ranked(id StateID) []RankedAction {
	return append([]RankedAction(nil), r.ranked[id]...)
}

// StateActions returns the ranked actions of the state with the given levels
func (r *Result) StateActions(levels []int) ([]RankedAction, error) {
	id, ok := r.space.Lookup(levels)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownState, levels)
	}
	return r.Ranked(id), nil
}

// Cost prices a usage vector with this query's prices
func (r *Result) Cost(u Usage) Cost {
	return r.book.Cost(u)
}

// Breakdown splits a usage vector's cost per tier with this query's prices
func (r *Result) Breakdown(u Usage) Breakdown {
	return r.book.Breakdown(u)
}

// Book returns the cost book of the query
func (r *Result) Book() CostBook {
	return r.book
}

// Outcome is one immediate result of an action
type Outcome struct {
	State  StateID
	P      float64
	Status Status
	Cost   Cost
}

// Outcomes lists what can happen right after taking an action, including
// staying put, with the expected remaining cost from each outcome
func (r *Result) Outcomes(id StateID, a Action) []Outcome {
	tr := r.space.Successors(id, a)

	var outcomes []Outcome
	if tr.Self > 0 {
		outcomes = append(outcomes, r.outcome(id, tr.Self))
	}
	for _, next := range tr.Next {
		outcomes = append(outcomes, r.outcome(next.To, next.P))
	}
	return outcomes
}

func (r *Result) outcome(id StateID, p float64) Outcome {
	return Outcome{
		State:  id,
		P:      p,
		Status: r.status[id],
		Cost:   r.book.Cost(r.value[id]),
	}
}
