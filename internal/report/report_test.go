package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/napolitain/solver-pet/internal/models"
	"github.com/napolitain/solver-pet/internal/solver/pet"
)

func solve(t *testing.T, levels []int, goal models.Goal) (pet.Query, *pet.Result) {
	t.Helper()
	q := pet.Query{
		Creature: models.Unicorn,
		Levels:   levels,
		Goal:     goal,
		Prices:   models.DefaultPrices(),
	}
	r, err := pet.Solve(pet.DefaultSpace(), q)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	return q, r
}

func defaultGoal() models.Goal {
	return models.Goal{StatMin: 7162}
}

func TestSummary(t *testing.T) {
	q, r := solve(t, []int{1, 1}, defaultGoal())
	q.Experience = 25

	var buf bytes.Buffer
	if err := Summary(&buf, q, r); err != nil {
		t.Fatalf("Summary: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Unicorn (HP)", "F1 E1", "7,162 HP", "25% of E candy", "open", "Best action"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestSummaryGoalMet(t *testing.T) {
	q, r := solve(t, nil, models.Goal{})

	var buf bytes.Buffer
	if err := Summary(&buf, q, r); err != nil {
		t.Fatalf("Summary: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "goal met") || !strings.Contains(out, "none") {
		t.Errorf("summary:\n%s", out)
	}
	if strings.Contains(out, "Best action") {
		t.Error("settled state should not show a best action")
	}
}

func TestBreakdown(t *testing.T) {
	_, r := solve(t, []int{1, 1}, defaultGoal())

	var buf bytes.Buffer
	if err := Breakdown(&buf, r); err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Sacrifice pets:", "Candy total:", "Total:", "Feed out of E"} {
		if !strings.Contains(out, want) {
			t.Errorf("breakdown missing %q:\n%s", want, out)
		}
	}
}

func TestBreakdownUnreachable(t *testing.T) {
	_, r := solve(t, []int{1, 1, 1, 1, 1, 1, 9}, defaultGoal())

	var buf bytes.Buffer
	if err := Breakdown(&buf, r); err != nil {
		t.Fatalf("Breakdown: %v", err)
	}
	if !strings.Contains(buf.String(), "cannot be reached") {
		t.Errorf("breakdown:\n%s", buf.String())
	}
}

func TestActionsListsEveryAction(t *testing.T) {
	_, r := solve(t, []int{1, 1}, defaultGoal())

	var buf bytes.Buffer
	if err := Actions(&buf, r, r.Current()); err != nil {
		t.Fatalf("Actions: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Feed", "Sacrifice E", "Sacrifice S", "+0"} {
		if !strings.Contains(out, want) {
			t.Errorf("actions missing %q:\n%s", want, out)
		}
	}
}

func TestOutcomes(t *testing.T) {
	_, r := solve(t, []int{1, 1}, defaultGoal())

	var buf bytes.Buffer
	if err := Outcomes(&buf, r, r.Current(), pet.AttemptAction(models.TierE)); err != nil {
		t.Fatalf("Outcomes: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"F1 E1 (no change)", "70.00%", "F1 E2", "30.00%"} {
		if !strings.Contains(out, want) {
			t.Errorf("outcomes missing %q:\n%s", want, out)
		}
	}
}

func TestStates(t *testing.T) {
	var buf bytes.Buffer
	if err := States(&buf, pet.DefaultSpace()); err != nil {
		t.Fatalf("States: %v", err)
	}
	if !strings.Contains(buf.String(), "8,554 states, max potential 31") {
		t.Errorf("states:\n%s", buf.String())
	}
}

func TestNextAction(t *testing.T) {
	tests := []struct {
		name   string
		levels []int
		goal   models.Goal
		want   string
	}{
		{"goal met", nil, models.Goal{}, "done\n"},
		{"impossible", []int{1, 1, 1, 1, 1, 1, 9}, defaultGoal(), "impossible\n"},
		{"only feed", []int{1}, defaultGoal(), "feed\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, r := solve(t, tt.levels, tt.goal)
			var buf bytes.Buffer
			if err := NextAction(&buf, r); err != nil {
				t.Fatalf("NextAction: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("NextAction = %q, want %q", buf.String(), tt.want)
			}
		})
	}

	_, r := solve(t, []int{1, 1}, defaultGoal())
	var buf bytes.Buffer
	NextAction(&buf, r)
	if got := buf.String(); got != "feed\n" && !strings.HasPrefix(got, "sacrifice:") {
		t.Errorf("NextAction = %q", got)
	}
}
