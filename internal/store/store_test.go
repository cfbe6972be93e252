package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/napolitain/solver-pet/internal/models"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := NewStore(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndGet(t *testing.T) {
	s := tempDB(t)
	prices := models.DefaultPrices()
	prices.Sacrifice[models.TierS] = 600000000
	prices.Candy[models.TierF] = 180000

	saved, err := s.Save("server-12", prices)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected non-empty profile ID")
	}

	got, err := s.Get("server-12")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != saved.ID || got.Name != "server-12" {
		t.Errorf("got %s/%s, want %s/server-12", got.ID, got.Name, saved.ID)
	}
	if got.Prices != prices {
		t.Errorf("prices = %+v, want %+v", got.Prices, prices)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.Before(got.CreatedAt) {
		t.Errorf("timestamps = %v / %v", got.CreatedAt, got.UpdatedAt)
	}
}

func TestSaveReplacesExisting(t *testing.T) {
	s := tempDB(t)
	first, err := s.Save("main", models.DefaultPrices())
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	cheaper := models.DefaultPrices()
	cheaper.Sacrifice[models.TierE] = 1
	second, err := s.Save("main", cheaper)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("ID changed on update: %s -> %s", first.ID, second.ID)
	}

	got, err := s.Get("main")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Prices.Sacrifice[models.TierE] != 1 {
		t.Errorf("E sacrifice = %v, want 1", got.Prices.Sacrifice[models.TierE])
	}

	profiles, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(profiles) != 1 {
		t.Errorf("List returned %d profiles, want 1", len(profiles))
	}
}

func TestListOrderedByName(t *testing.T) {
	s := tempDB(t)
	for _, name := range []string{"zeta", "alpha", "mid"} {
		if _, err := s.Save(name, models.DefaultPrices()); err != nil {
			t.Fatalf("Save(%s): %v", name, err)
		}
	}

	profiles, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(profiles) != len(want) {
		t.Fatalf("List returned %d profiles, want %d", len(profiles), len(want))
	}
	for i, p := range profiles {
		if p.Name != want[i] {
			t.Errorf("profile %d = %s, want %s", i, p.Name, want[i])
		}
		if p.Prices != models.DefaultPrices() {
			t.Errorf("profile %s prices not loaded", p.Name)
		}
	}
}

func TestDeleteCascades(t *testing.T) {
	s := tempDB(t)
	if _, err := s.Save("gone", models.DefaultPrices()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Delete("gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if _, err := s.Get("gone"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Get after delete: %v, want ErrProfileNotFound", err)
	}

	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM profile_prices`).Scan(&n); err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Errorf("%d price rows left behind", n)
	}

	if err := s.Delete("gone"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("second Delete: %v, want ErrProfileNotFound", err)
	}
}

func TestSaveRejectsInvalid(t *testing.T) {
	s := tempDB(t)
	if _, err := s.Save("", models.DefaultPrices()); err == nil {
		t.Error("expected error for empty name")
	}

	bad := models.DefaultPrices()
	bad.Candy[models.TierA] = -1
	if _, err := s.Save("bad", bad); err == nil {
		t.Error("expected error for negative price")
	}
	if _, err := s.Get("bad"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("rejected profile was stored: %v", err)
	}
}

func TestReopenKeepsProfiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet.db")
	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	if _, err := s.Save("keep", models.DefaultPrices()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Close()

	reopened, err := NewStore(path)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	defer reopened.Close()
	if _, err := reopened.Get("keep"); err != nil {
		t.Errorf("Get after reopen: %v", err)
	}
}
