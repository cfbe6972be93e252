package models

import (
	"errors"
	"fmt"
)

// ErrUnknownCreature is returned when a creature name is not in the tables
var ErrUnknownCreature = errors.New("unknown creature")

// Creature represents the different pet types
type Creature string

const (
	Unicorn Creature = "unicorn"
	Dragon  Creature = "dragon"
	Griffin Creature = "griffin"
	Angel   Creature = "angel"
	Crab    Creature = "crab"
	Tiger   Creature = "tiger"
	Lion    Creature = "lion"
	Rabbit  Creature = "rabbit"
	Fox     Creature = "fox"
)

// AllCreatures returns all creature types in deterministic order
func AllCreatures() []Creature {
	return []Creature{Unicorn, Dragon, Griffin, Angel, Crab, Tiger, Lion, Rabbit, Fox}
}

// CreatureInfo describes the stat a creature raises and the usual target for it
type CreatureInfo struct {
	StatName string
	// Stats[k] is the stat gained by a tier held at sub-level k+1
	Stats       []float64
	DefaultGoal float64
}

var creatureInfo = map[Creature]CreatureInfo{
	Unicorn: {StatName: "HP", DefaultGoal: 7162, Stats: []float64{96, 191, 383, 670, 1053, 1356, 1628, 2539, 3161}},
	Dragon:  {StatName: "Attack", DefaultGoal: 500, Stats: []float64{7, 13, 27, 47, 73, 95, 113, 165, 220}},
	Griffin: {StatName: "DEF", DefaultGoal: 450, Stats: []float64{6, 12, 24, 42, 66, 88, 102, 140, 198}},
	Angel:   {StatName: "% Critical Chance", DefaultGoal: 31, Stats: []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	Crab:    {StatName: "% Critical Damage", DefaultGoal: 45, Stats: []float64{2, 3, 4, 5, 6, 7, 9, 11, 16}},
	Tiger:   {StatName: "STR", DefaultGoal: 75, Stats: []float64{1, 2, 4, 7, 11, 15, 17, 24, 33}},
	Lion:    {StatName: "STA", DefaultGoal: 75, Stats: []float64{1, 2, 4, 7, 11, 15, 17, 24, 33}},
	Rabbit:  {StatName: "DEX", DefaultGoal: 75, Stats: []float64{1, 2, 4, 7, 11, 15, 17, 24, 33}},
	Fox:     {StatName: "INT", DefaultGoal: 75, Stats: []float64{1, 2, 4, 7, 11, 15, 17, 24, 33}},
}

// Info returns the stat table for a creature
func (c Creature) Info() (CreatureInfo, error) {
	info, ok := creatureInfo[c]
	if !ok {
		return CreatureInfo{}, fmt.Errorf("%w: %q", ErrUnknownCreature, string(c))
	}
	return info, nil
}

// StatTotal sums the stat increments of every entered tier.
// Levels outside the table contribute nothing.
func (ci CreatureInfo) StatTotal(levels []int) float64 {
	var sum float64
	for _, level := range levels {
		if level >= 1 && level <= len(ci.Stats) {
			sum += ci.Stats[level-1]
		}
	}
	return sum
}
