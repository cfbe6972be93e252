package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PetConfig is the YAML query file accepted by the CLI
type PetConfig struct {
	Pet        string       `yaml:"pet"`
	Levels     []int        `yaml:"levels"`
	Experience float64      `yaml:"experience"`
	Goal       GoalConfig   `yaml:"goal"`
	Prices     PricesConfig `yaml:"prices"`
}

// GoalConfig is the goal block. A missing stat means the creature's default
// goal; an explicit 0 means no stat requirement.
type GoalConfig struct {
	Stat   *float64 `yaml:"stat"`
	Levels []int    `yaml:"levels"`
}

// PricesConfig maps tier names to prices. Missing tiers keep default prices.
type PricesConfig struct {
	Sacrifice map[string]float64 `yaml:"sacrifice"`
	Candy     map[string]float64 `yaml:"candy"`
}

// LoadPetConfig loads a query from a YAML file
func LoadPetConfig(path string) (*PetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := &PetConfig{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}

	return config, nil
}

// ValidatePetConfig checks a query file against the tables
func ValidatePetConfig(c *PetConfig, tables *Tables) error {
	if _, err := Creature(c.Pet).Info(); err != nil {
		return err
	}
	if err := tables.CheckLevels(c.Levels); err != nil {
		return fmt.Errorf("levels: %w", err)
	}
	if err := tables.CheckLevels(c.Goal.Levels); err != nil {
		return fmt.Errorf("goal levels: %w", err)
	}
	if c.Experience < 0 || c.Experience > 100 {
		return fmt.Errorf("experience %v not in [0, 100]", c.Experience)
	}
	if c.Goal.Stat != nil && *c.Goal.Stat < 0 {
		return fmt.Errorf("goal stat %v is negative", *c.Goal.Stat)
	}

	prices, err := PetConfigToPrices(c)
	if err != nil {
		return err
	}
	return prices.Validate()
}

// PetConfigToGoal converts the goal block, filling in the creature default
func PetConfigToGoal(c *PetConfig) (Goal, error) {
	info, err := Creature(c.Pet).Info()
	if err != nil {
		return Goal{}, err
	}

	goal := Goal{
		Levels:  append([]int(nil), c.Goal.Levels...),
		StatMin: info.DefaultGoal,
	}
	if c.Goal.Stat != nil {
		goal.StatMin = *c.Goal.Stat
	}
	return goal, nil
}

// PetConfigToPrices overlays configured prices on the defaults
func PetConfigToPrices(c *PetConfig) (Prices, error) {
	return c.Prices.Apply(DefaultPrices())
}

// Apply overlays the configured prices on base
func (pc PricesConfig) Apply(base Prices) (Prices, error) {
	prices := base

	for name, price := range pc.Sacrifice {
		tier, ok := TierByName(name)
		if !ok || tier < TierE {
			return Prices{}, fmt.Errorf("no sacrifice pets of tier %q", name)
		}
		prices.Sacrifice[tier] = price
	}
	for name, price := range pc.Candy {
		tier, ok := TierByName(name)
		if !ok || tier < TierF || tier == TierS {
			return Prices{}, fmt.Errorf("no candy of tier %q", name)
		}
		prices.Candy[tier] = price
	}

	return prices, nil
}
