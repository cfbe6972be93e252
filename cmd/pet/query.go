package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/napolitain/solver-pet/internal/converter"
	"github.com/napolitain/solver-pet/internal/models"
	"github.com/napolitain/solver-pet/internal/solver/pet"
	"github.com/napolitain/solver-pet/internal/store"
)

// levelsValue is a pflag.Value holding a levels list such as "1,2,1" or "121"
type levelsValue struct {
	levels []int
}

var _ pflag.Value = (*levelsValue)(nil)

func (v *levelsValue) String() string {
	parts := make([]string, len(v.levels))
	for i, l := range v.levels {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, ",")
}

func (v *levelsValue) Set(s string) error {
	levels, err := converter.ParseLevels(s)
	if err != nil {
		return err
	}
	v.levels = levels
	return nil
}

func (v *levelsValue) Type() string {
	return "levels"
}

// queryFlags are the flags shared by every command that solves a query
type queryFlags struct {
	pet        string
	levels     levelsValue
	experience float64
	goalStat   float64
	goalLevels levelsValue
	profile    string
	sacrifice  map[string]string
	candy      map[string]string
}

func (qf *queryFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&qf.pet, "pet", "p", string(models.Unicorn), "Creature to raise")
	fs.VarP(&qf.levels, "levels", "l", `Current levels, e.g. "1,2,1" or "121" (empty for an egg)`)
	fs.Float64VarP(&qf.experience, "experience", "x", 0, "Percent of the current tier's candy already fed")
	fs.Float64VarP(&qf.goalStat, "goal", "g", 0, "Minimum stat total (default: the creature's usual goal, 0 for none)")
	fs.Var(&qf.goalLevels, "goal-levels", "Minimum level per tier, e.g. \"1,2,3\"")
	fs.StringVar(&qf.profile, "profile", "", "Use a saved price profile")
	fs.StringToStringVar(&qf.sacrifice, "sacrifice", nil, "Sacrifice pet prices per tier, e.g. e=6000000,s=545000000")
	fs.StringToStringVar(&qf.candy, "candy", nil, "Candy prices per tier, e.g. f=200000,a=6500000")
}

// petConfig merges the config file (if any) with the flags that were set
func (qf *queryFlags) petConfig(fs *pflag.FlagSet, configPath string) (*models.PetConfig, error) {
	cfg := &models.PetConfig{Pet: string(models.Unicorn)}
	if configPath != "" {
		loaded, err := models.LoadPetConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("config %s: %w", configPath, err)
		}
		cfg = loaded
	}

	if fs.Changed("pet") || cfg.Pet == "" {
		cfg.Pet = qf.pet
	}
	creature, err := converter.ParseCreature(cfg.Pet)
	if err != nil {
		return nil, err
	}
	cfg.Pet = string(creature)

	if fs.Changed("levels") {
		cfg.Levels = qf.levels.levels
	}
	if fs.Changed("experience") {
		cfg.Experience = qf.experience
	}
	if fs.Changed("goal") {
		stat := qf.goalStat
		cfg.Goal.Stat = &stat
	}
	if fs.Changed("goal-levels") {
		cfg.Goal.Levels = qf.goalLevels.levels
	}

	if err := mergePrices(&cfg.Prices.Sacrifice, qf.sacrifice); err != nil {
		return nil, fmt.Errorf("--sacrifice: %w", err)
	}
	if err := mergePrices(&cfg.Prices.Candy, qf.candy); err != nil {
		return nil, fmt.Errorf("--candy: %w", err)
	}

	return cfg, nil
}

func mergePrices(dst *map[string]float64, flags map[string]string) error {
	for name, raw := range flags {
		tier, err := converter.ParseTier(name)
		if err != nil {
			return err
		}
		price, err := strconv.ParseFloat(strings.ReplaceAll(raw, "_", ""), 64)
		if err != nil {
			return fmt.Errorf("price %q for tier %s: %w", raw, name, err)
		}
		if *dst == nil {
			*dst = make(map[string]float64)
		}
		(*dst)[tier.String()] = price
	}
	return nil
}

// query builds a validated solver query. Prices start from the saved profile
// when one is named, otherwise from the defaults, and the config file and
// flags override single tiers.
func (qf *queryFlags) query(fs *pflag.FlagSet, configPath, dbPath string, tables *models.Tables) (pet.Query, error) {
	cfg, err := qf.petConfig(fs, configPath)
	if err != nil {
		return pet.Query{}, err
	}
	if err := models.ValidatePetConfig(cfg, tables); err != nil {
		return pet.Query{}, fmt.Errorf("invalid query: %w", err)
	}

	goal, err := models.PetConfigToGoal(cfg)
	if err != nil {
		return pet.Query{}, err
	}

	base := models.DefaultPrices()
	if qf.profile != "" {
		s, err := store.NewStore(dbPath)
		if err != nil {
			return pet.Query{}, err
		}
		defer s.Close()
		profile, err := s.Get(qf.profile)
		if err != nil {
			return pet.Query{}, err
		}
		base = profile.Prices
	}
	prices, err := cfg.Prices.Apply(base)
	if err != nil {
		return pet.Query{}, err
	}

	return pet.Query{
		Creature:   models.Creature(cfg.Pet),
		Levels:     cfg.Levels,
		Experience: cfg.Experience,
		Goal:       goal,
		Prices:     prices,
	}, nil
}
