package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-pet/internal/converter"
	"github.com/napolitain/solver-pet/internal/models"
	"github.com/napolitain/solver-pet/internal/solver/pet"
)

var (
	titleColor   = color.New(color.FgCyan, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	failColor    = color.New(color.FgRed, color.Bold)

	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1)
	label = lipgloss.NewStyle().Bold(true)
)

// Summary writes the headline panel of a solved query
func Summary(w io.Writer, q pet.Query, r *pet.Result) error {
	info, err := q.Creature.Info()
	if err != nil {
		return err
	}

	current := r.Current()
	cost := r.Cost(r.Value(current))

	lines := []string{
		row("Pet", fmt.Sprintf("%s (%s)", titleCase(string(q.Creature)), info.StatName)),
		row("State", fmt.Sprintf("%s  %s", converter.FormatLevels(q.Levels), converter.FormatStat(info.StatTotal(q.Levels), info))),
		row("Goal", formatGoal(q.Goal, info)),
	}
	tables := r.Space().Tables()
	if tier := models.Tier(len(q.Levels)); tier < tables.Terminal() {
		item := converter.FormatTier(tables.FeedItem[tier])
		lines = append(lines, row("Experience", fmt.Sprintf("%.0f%% of %s candy fed", q.Experience, item)))
	}
	lines = append(lines,
		row("Status", r.Status(current).String()),
		row("Expected cost", converter.FormatCost(cost)),
	)
	if best, ok := r.Best(); ok {
		lines = append(lines, row("Best action", converter.FormatAction(best.Action)))
	}

	_, err = fmt.Fprintln(w, panel.Render(strings.Join(lines, "\n")))
	return err
}

func row(name, value string) string {
	return label.Render(fmt.Sprintf("%-14s", name)) + value
}

func formatGoal(goal models.Goal, info models.CreatureInfo) string {
	var parts []string
	if goal.StatMin > 0 {
		parts = append(parts, "≥ "+converter.FormatStat(goal.StatMin, info))
	}
	if goal.HasLevels() {
		parts = append(parts, "levels "+converter.FormatLevels(goal.Levels))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Breakdown writes where the expected cost of the best plan goes: sacrifice
// pets per tier and candy per tier
func Breakdown(w io.Writer, r *pet.Result) error {
	u := r.Value(r.Current())
	if u.IsUnreachable() {
		failColor.Fprintln(w, "\n❌ The goal cannot be reached from this state")
		return nil
	}

	bd := r.Breakdown(u)
	book := r.Book()

	titleColor.Fprintln(w, "\n💰 Cost Breakdown:")
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Item", "Expected Uses", "Cost"}),
	)

	for _, tier := range models.AllTiers() {
		if u.Sacrifice[tier] > 0 {
			table.Append([]string{
				"Sacrifice " + converter.FormatTier(tier),
				converter.FormatCount(u.Sacrifice[tier]),
				converter.FormatThousands(u.Sacrifice[tier] * book.SacrificeCost(tier)),
			})
		}
	}
	for _, tier := range models.AllTiers() {
		if u.Feed[tier] > 0 {
			table.Append([]string{
				"Feed out of " + converter.FormatTier(tier),
				converter.FormatCount(u.Feed[tier]),
				converter.FormatThousands(u.Feed[tier] * book.AdvanceCost(tier)),
			})
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "   Sacrifice pets: %s\n", converter.FormatThousands(bd.SacrificeTotal()))
	for _, tier := range models.AllTiers() {
		if bd.Candy[tier] > 0 {
			fmt.Fprintf(w, "   %s candy: %s\n", converter.FormatTier(tier), converter.FormatThousands(bd.Candy[tier]))
		}
	}
	fmt.Fprintf(w, "   Candy total: %s\n", converter.FormatThousands(bd.CandyTotal()))
	successColor.Fprintf(w, "   Total: %s\n", converter.FormatCost(r.Cost(u)))
	return nil
}

// Actions writes every action of a state ranked by expected total cost, with
// the premium each one carries over the best
func Actions(w io.Writer, r *pet.Result, id pet.StateID) error {
	ranked := r.Ranked(id)

	titleColor.Fprintf(w, "\n📋 Actions at %s:\n", converter.FormatLevels(r.Space().State(id).Levels))
	if len(ranked) == 0 {
		fmt.Fprintln(w, "   none")
		return nil
	}

	best := ranked[0].Cost
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"#", "Action", "Expected Cost", "Extra"}),
	)
	for i, ra := range ranked {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			converter.FormatAction(ra.Action),
			converter.FormatCost(ra.Cost),
			extra(ra.Cost, best),
		})
	}
	return table.Render()
}

func extra(c, best pet.Cost) string {
	if c.Unreachable || best.Unreachable {
		return "-"
	}
	return "+" + converter.FormatThousands(c.Value-best.Value)
}

// Outcomes writes what can happen right after an action, with the expected
// remaining cost from each outcome
func Outcomes(w io.Writer, r *pet.Result, id pet.StateID, a pet.Action) error {
	sp := r.Space()
	titleColor.Fprintf(w, "\n🎲 %s at %s:\n", converter.FormatAction(a), converter.FormatLevels(sp.State(id).Levels))

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Outcome", "Probability", "Status", "Remaining Cost"}),
	)
	for _, o := range r.Outcomes(id, a) {
		name := converter.FormatLevels(sp.State(o.State).Levels)
		if o.State == id {
			name += " (no change)"
		}
		table.Append([]string{
			name,
			converter.FormatProbability(o.P),
			o.Status.String(),
			converter.FormatCost(o.Cost),
		})
	}
	return table.Render()
}

// States writes the size of every potential group of a state space
func States(w io.Writer, sp *pet.Space) error {
	titleColor.Fprintln(w, "\n🧮 State Space:")

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Potential", "States", "Highest Tier"}),
	)
	for p := 0; p <= sp.MaxPotential(); p++ {
		group := sp.Group(p)
		highest := models.Egg
		for _, id := range group {
			if t := sp.State(id).Tier(); t > highest {
				highest = t
			}
		}
		table.Append([]string{
			fmt.Sprintf("%d", p),
			converter.FormatThousands(float64(len(group))),
			converter.FormatTier(highest),
		})
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "   Total: %s states, max potential %d\n",
		converter.FormatThousands(float64(sp.Len())), sp.MaxPotential())
	return nil
}

// NextAction writes the best action at the queried state in a short
// machine-readable form: "feed", "sacrifice:<tier>", "done" or "impossible"
func NextAction(w io.Writer, r *pet.Result) error {
	var out string
	switch r.Status(r.Current()) {
	case pet.GoodEnd:
		out = "done"
	case pet.BadEnd:
		out = "impossible"
	default:
		best, ok := r.Best()
		switch {
		case !ok || best.Cost.Unreachable:
			out = "impossible"
		case best.Action.Kind == pet.Advance:
			out = "feed"
		default:
			out = "sacrifice:" + best.Action.Sacrifice.String()
		}
	}
	_, err := fmt.Fprintln(w, out)
	return err
}
