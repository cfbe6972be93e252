package explore

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/napolitain/solver-pet/internal/converter"
	"github.com/napolitain/solver-pet/internal/models"
	"github.com/napolitain/solver-pet/internal/solver/pet"
)

// Run starts the interactive explorer at the queried state
func Run(r *pet.Result, info models.CreatureInfo) error {
	p := tea.NewProgram(New(r, info), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var (
	title    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	selected = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	normal   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	dim      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	good     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	bad      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

type screen int

const (
	screenActions screen = iota
	screenOutcomes
)

// Model walks the solved state graph: pick an action, see its outcomes,
// step into one of them
type Model struct {
	result *pet.Result
	info   models.CreatureInfo

	state   pet.StateID
	history []pet.StateID

	screen   screen
	cursor   int
	ranked   []pet.RankedAction
	action   pet.Action
	outcomes []pet.Outcome
}

// New returns an explorer positioned at the queried state
func New(r *pet.Result, info models.CreatureInfo) Model {
	m := Model{result: r, info: info}
	m.enter(r.Current())
	return m
}

func (m *Model) enter(id pet.StateID) {
	m.state = id
	m.screen = screenActions
	m.cursor = 0
	m.ranked = m.result.Ranked(id)
	m.outcomes = nil
}

// State returns the state being looked at
func (m Model) State() pet.StateID {
	return m.state
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if n := m.items(); n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case "down", "j":
		if n := m.items(); n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case "enter":
		m.choose()
	case "esc", "backspace":
		m.back()
	case "r":
		m.history = nil
		m.enter(m.result.Current())
	}
	return m, nil
}

func (m Model) items() int {
	if m.screen == screenOutcomes {
		return len(m.outcomes)
	}
	return len(m.ranked)
}

func (m *Model) choose() {
	switch m.screen {
	case screenActions:
		if len(m.ranked) == 0 {
			return
		}
		m.action = m.ranked[m.cursor].Action
		m.outcomes = m.result.Outcomes(m.state, m.action)
		m.screen = screenOutcomes
		m.cursor = 0
	case screenOutcomes:
		if len(m.outcomes) == 0 {
			return
		}
		next := m.outcomes[m.cursor].State
		m.history = append(m.history, m.state)
		m.enter(next)
	}
}

func (m *Model) back() {
	if m.screen == screenOutcomes {
		m.screen = screenActions
		m.cursor = 0
		m.outcomes = nil
		return
	}
	if len(m.history) == 0 {
		return
	}
	prev := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.enter(prev)
}

func (m Model) View() string {
	sp := m.result.Space()
	levels := sp.State(m.state).Levels
	status := m.result.Status(m.state)

	var b strings.Builder
	b.WriteString(title.Render("Pet raising explorer") + "\n")
	fmt.Fprintf(&b, "%s  %s\n", converter.FormatLevels(levels), dim.Render(converter.FormatStat(m.info.StatTotal(levels), m.info)))
	fmt.Fprintf(&b, "Expected cost: %s  %s\n\n",
		converter.FormatCost(m.result.Cost(m.result.Value(m.state))), statusStyle(status).Render(status.String()))

	switch m.screen {
	case screenActions:
		if len(m.ranked) == 0 {
			b.WriteString(dim.Render("No actions left") + "\n")
		}
		for i, ra := range m.ranked {
			line := fmt.Sprintf("%-14s %s", converter.FormatAction(ra.Action), converter.FormatCost(ra.Cost))
			b.WriteString(m.line(i, line))
		}
		b.WriteString("\n" + dim.Render("↑/↓ move, Enter outcomes, Esc back, r restart, q quit") + "\n")

	case screenOutcomes:
		b.WriteString(title.Render(converter.FormatAction(m.action)) + "\n")
		for i, o := range m.outcomes {
			name := converter.FormatLevels(sp.State(o.State).Levels)
			if o.State == m.state {
				name += " (no change)"
			}
			line := fmt.Sprintf("%-28s %8s  %s", name, converter.FormatProbability(o.P), converter.FormatCost(o.Cost))
			b.WriteString(m.line(i, line))
		}
		b.WriteString("\n" + dim.Render("↑/↓ move, Enter step in, Esc actions, q quit") + "\n")
	}

	return b.String()
}

func (m Model) line(i int, text string) string {
	if i == m.cursor {
		return "> " + selected.Render(text) + "\n"
	}
	return "  " + normal.Render(text) + "\n"
}

func statusStyle(s pet.Status) lipgloss.Style {
	switch s {
	case pet.GoodEnd:
		return good
	case pet.BadEnd:
		return bad
	}
	return dim
}
