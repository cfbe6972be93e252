// Package converter provides conversions between user input, model types and display text
package converter

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"github.com/napolitain/solver-pet/internal/models"
)

// ParseCreature converts a creature name to models.Creature.
// Matching is case-insensitive; a close typo gets a suggestion in the error.
func ParseCreature(name string) (models.Creature, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	candidates := make([]string, 0, len(models.AllCreatures()))
	for _, c := range models.AllCreatures() {
		if string(c) == key {
			return c, nil
		}
		candidates = append(candidates, string(c))
	}

	if s, ok := Suggest(key, candidates); ok {
		return "", fmt.Errorf("%w: %q (did you mean %q?)", models.ErrUnknownCreature, name, s)
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownCreature, name)
}

// ParseTier converts a tier name ("egg", "F" ... "S") to models.Tier
func ParseTier(name string) (models.Tier, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if t, ok := models.TierByName(key); ok {
		return t, nil
	}

	candidates := make([]string, 0, models.MaxTiers)
	for _, t := range models.AllTiers() {
		candidates = append(candidates, t.String())
	}
	if s, ok := Suggest(key, candidates); ok {
		return 0, fmt.Errorf("unknown tier %q (did you mean %q?)", name, s)
	}
	return 0, fmt.Errorf("unknown tier %q", name)
}

// ParseLevels parses a levels list. Separated forms ("1,2,1", "1 2 1") allow
// any level; a bare digit string ("121") reads one level per digit. An empty
// string or "egg" is the egg.
func ParseLevels(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, models.Egg.String()) {
		return nil, nil
	}

	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '-' || unicode.IsSpace(r)
	})

	if len(fields) == 1 {
		digits := fields[0]
		levels := make([]int, 0, len(digits))
		for _, r := range digits {
			if r < '0' || r > '9' {
				return nil, fmt.Errorf("%w: %q is not a number", models.ErrInvalidLevels, s)
			}
			levels = append(levels, int(r-'0'))
		}
		return levels, nil
	}

	levels := make([]int, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", models.ErrInvalidLevels, f)
		}
		levels = append(levels, v)
	}
	return levels, nil
}

// FormatLevels renders levels with tier labels, e.g. "F1 E2 D1"
func FormatLevels(levels []int) string {
	if len(levels) == 0 {
		return models.Egg.String()
	}
	parts := make([]string, len(levels))
	for i, level := range levels {
		parts[i] = fmt.Sprintf("%s%d", strings.ToUpper(models.Tier(i+1).String()), level)
	}
	return strings.Join(parts, " ")
}

// FormatTier renders a tier label the way the game shows it
func FormatTier(t models.Tier) string {
	if t == models.Egg {
		return "Egg"
	}
	return strings.ToUpper(t.String())
}

// Suggest returns the candidate closest to input within an edit distance
// that grows with the candidate's length
func Suggest(input string, candidates []string) (string, bool) {
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(input, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best, bestDist >= 0
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
