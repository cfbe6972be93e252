package pet

import (
	"sync"

	"github.com/napolitain/solver-pet/internal/models"
)

// StateID is the dense index of a state in a Space
type StateID int32

// State is one progress state: Levels[i] is the sub-level held in tier i+1
type State struct {
	Levels    []int
	Potential int
}

// Tier returns the tier the pet is currently in
func (s State) Tier() models.Tier {
	return models.Tier(len(s.Levels))
}

// Last returns the sub-level in the current tier (0 for the egg)
func (s State) Last() int {
	if len(s.Levels) == 0 {
		return 0
	}
	return s.Levels[len(s.Levels)-1]
}

// Space is every state reachable from the egg, grouped by potential.
// It depends only on the tables and is read-only once built.
type Space struct {
	tables *models.Tables
	states []State
	groups [][]StateID
	index  map[uint64]StateID
}

// NewSpace enumerates the state space breadth first from the egg
func NewSpace(tables *models.Tables) *Space {
	sp := &Space{
		tables: tables,
		index:  make(map[uint64]StateID),
	}

	terminal := tables.Terminal()
	sp.add(nil)
	for next := 0; next < len(sp.states); next++ {
		s := sp.states[next]
		tier := s.Tier()

		if len(s.Levels) > 0 && s.Last() < tables.Capacity[tier] {
			child := cloneLevels(s.Levels)
			child[len(child)-1]++
			sp.add(child)
		}
		if tier != terminal {
			sp.add(append(cloneLevels(s.Levels), 1))
		}
	}

	return sp
}

var (
	defaultSpace     *Space
	defaultSpaceOnce sync.Once
)

// DefaultSpace returns the space for the default tables, built once per process
func DefaultSpace() *Space {
	defaultSpaceOnce.Do(func() {
		defaultSpace = NewSpace(models.DefaultTables())
	})
	return defaultSpace
}

func (sp *Space) add(levels []int) {
	key := packLevels(levels)
	if _, ok := sp.index[key]; ok {
		return
	}

	potential := 0
	for _, l := range levels {
		potential += l
	}

	id := StateID(len(sp.states))
	sp.states = append(sp.states, State{Levels: levels, Potential: potential})
	sp.index[key] = id

	for len(sp.groups) <= potential {
		sp.groups = append(sp.groups, nil)
	}
	sp.groups[potential] = append(sp.groups[potential], id)
}

// Tables returns the tables the space was built from
func (sp *Space) Tables() *models.Tables {
	return sp.tables
}

// Len returns the number of states
func (sp *Space) Len() int {
	return len(sp.states)
}

// State returns the state with the given id
func (sp *Space) State(id StateID) State {
	return sp.states[id]
}

// MaxPotential returns the highest potential of any state
func (sp *Space) MaxPotential() int {
	return len(sp.groups) - 1
}

// Group returns the ids of all states with the given potential
func (sp *Space) Group(potential int) []StateID {
	if potential < 0 || potential >= len(sp.groups) {
		return nil
	}
	return sp.groups[potential]
}

// Lookup resolves a level list to its state id
func (sp *Space) Lookup(levels []int) (StateID, bool) {
	if len(levels) >= sp.tables.NumTiers {
		return 0, false
	}
	for _, l := range levels {
		if l < 1 || l > 15 {
			return 0, false
		}
	}
	id, ok := sp.index[packLevels(levels)]
	return id, ok
}

// packLevels encodes the length followed by one nibble per level.
// Capacities are at most 15, so the encoding is unique.
func packLevels(levels []int) uint64 {
	key := uint64(len(levels))
	for _, l := range levels {
		key = key<<4 | uint64(l)
	}
	return key
}

func cloneLevels(levels []int) []int {
	out := make([]int, len(levels), len(levels)+1)
	copy(out, levels)
	return out
}
