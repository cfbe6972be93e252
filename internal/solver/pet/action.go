package pet

import (
	"fmt"

	"github.com/napolitain/solver-pet/internal/models"
)

// ActionKind distinguishes feeding from sacrificing
type ActionKind uint8

const (
	// Advance feeds candy to move into the next tier
	Advance ActionKind = iota
	// Attempt sacrifices a pet to raise the current sub-level
	Attempt
)

// Action is one choice available at a state. Sacrifice is only set for Attempt.
type Action struct {
	Kind      ActionKind
	Sacrifice models.Tier
}

// AdvanceAction returns the feed action
func AdvanceAction() Action {
	return Action{Kind: Advance}
}

// AttemptAction returns the sacrifice action for a sacrifice tier
func AttemptAction(sacrifice models.Tier) Action {
	return Action{Kind: Attempt, Sacrifice: sacrifice}
}

func (a Action) String() string {
	if a.Kind == Advance {
		return "feed"
	}
	return fmt.Sprintf("sacrifice %s", a.Sacrifice)
}

// Actions returns the actions available at a state: feed first, then
// sacrifices by ascending tier. This order breaks ranking ties.
func (sp *Space) Actions(id StateID) []Action {
	s := sp.states[id]
	tier := s.Tier()

	var actions []Action
	if tier != sp.tables.Terminal() {
		actions = append(actions, AdvanceAction())
	}
	if len(s.Levels) > 0 && s.Last() < sp.tables.Capacity[tier] {
		for _, sac := range sp.tables.SacrificeOptions(tier) {
			actions = append(actions, AttemptAction(sac))
		}
	}
	return actions
}

// Available reports whether an action can be taken at a state
func (sp *Space) Available(id StateID, a Action) bool {
	for _, candidate := range sp.Actions(id) {
		if candidate == a {
			return true
		}
	}
	return false
}
