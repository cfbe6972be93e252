package converter

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/napolitain/solver-pet/internal/models"
	"github.com/napolitain/solver-pet/internal/solver/pet"
)

// Impossible is how an unreachable cost is shown
const Impossible = "impossible"

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatThousands rounds a value and groups its digits, e.g. 1234567.8 -> "1,234,568"
func FormatThousands(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// FormatCost renders a cost, or Impossible when the goal cannot be reached
func FormatCost(c pet.Cost) string {
	if c.Unreachable {
		return Impossible
	}
	return FormatThousands(c.Value)
}

// FormatCount renders an expected action count with two decimals
func FormatCount(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatProbability renders a probability as a percentage
func FormatProbability(p float64) string {
	return fmt.Sprintf("%.2f%%", p*100)
}

// FormatAction renders an action for tables and prompts
func FormatAction(a pet.Action) string {
	switch a.Kind {
	case pet.Advance:
		return "Feed"
	case pet.Attempt:
		return "Sacrifice " + FormatTier(a.Sacrifice)
	}
	return a.String()
}

// FormatStat renders a stat total with its name, e.g. "7,162 HP"
func FormatStat(v float64, info models.CreatureInfo) string {
	return FormatThousands(v) + " " + info.StatName
}
