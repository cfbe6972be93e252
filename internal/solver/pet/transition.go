package pet

import "fmt"

// Transition is one non-self outcome of an action
type Transition struct {
	To StateID
	P  float64
}

// Transitions is the outcome distribution of an action. Self is the
// probability of staying in the same state; Self plus every Next.P is 1.
type Transitions struct {
	Self float64
	Next []Transition
}

// Successors returns the outcome distribution of taking an action at a state.
// Zero-probability outcomes are left out. Asking for an action that is not
// available is a caller bug and panics.
func (sp *Space) Successors(id StateID, a Action) Transitions {
	if !sp.Available(id, a) {
		panic(fmt.Sprintf("BUG: action %s not available at state %v", a, sp.states[id].Levels))
	}

	s := sp.states[id]
	tier := s.Tier()

	var tr Transitions
	switch a.Kind {
	case Advance:
		for k, p := range sp.tables.Entry[tier+1] {
			if p == 0 {
				continue
			}
			tr.Next = append(tr.Next, Transition{
				To: sp.mustLookup(append(cloneLevels(s.Levels), k+1)),
				P:  p,
			})
		}

	case Attempt:
		dist := sp.tables.Sacrifice[tier][a.Sacrifice]
		current := s.Last()
		for k, p := range dist {
			if k < current {
				tr.Self += p
				continue
			}
			if p == 0 {
				continue
			}
			levels := cloneLevels(s.Levels)
			levels[len(levels)-1] = k + 1
			tr.Next = append(tr.Next, Transition{To: sp.mustLookup(levels), P: p})
		}
	}

	return tr
}

func (sp *Space) mustLookup(levels []int) StateID {
	id, ok := sp.Lookup(levels)
	if !ok {
		panic(fmt.Sprintf("BUG: successor %v missing from state space", levels))
	}
	return id
}
