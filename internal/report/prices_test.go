package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/napolitain/solver-pet/internal/models"
	"github.com/napolitain/solver-pet/internal/store"
)

func TestPrices(t *testing.T) {
	var buf bytes.Buffer
	if err := Prices(&buf, models.DefaultPrices()); err != nil {
		t.Fatalf("Prices: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"545,000,000", "200,000", "6,500,000"} {
		if !strings.Contains(out, want) {
			t.Errorf("prices missing %q:\n%s", want, out)
		}
	}
}

func TestProfiles(t *testing.T) {
	var buf bytes.Buffer
	if err := Profiles(&buf, nil); err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	if !strings.Contains(buf.String(), "No saved price profiles") {
		t.Errorf("empty profiles:\n%s", buf.String())
	}

	buf.Reset()
	profiles := []store.Profile{{
		Name:      "server-12",
		Prices:    models.DefaultPrices(),
		UpdatedAt: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC),
	}}
	if err := Profiles(&buf, profiles); err != nil {
		t.Fatalf("Profiles: %v", err)
	}
	for _, want := range []string{"server-12", "2026-03-01 10:30", "545,000,000"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("profiles missing %q:\n%s", want, buf.String())
		}
	}
}
