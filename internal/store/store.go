package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/napolitain/solver-pet/internal/models"
)

// ErrProfileNotFound is returned when no price profile has the given name
var ErrProfileNotFound = errors.New("price profile not found")

const schema = `
CREATE TABLE IF NOT EXISTS price_profiles (
	profile_id  TEXT PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	created_at  TEXT NOT NULL,
	updated_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS profile_prices (
	profile_id  TEXT NOT NULL,
	kind        TEXT NOT NULL CHECK (kind IN ('sacrifice', 'candy')),
	tier        TEXT NOT NULL,
	price       REAL NOT NULL CHECK (price >= 0),
	PRIMARY KEY (profile_id, kind, tier),
	FOREIGN KEY (profile_id) REFERENCES price_profiles(profile_id) ON DELETE CASCADE
);
`

const (
	kindSacrifice = "sacrifice"
	kindCandy     = "candy"
)

// Profile is a named price table
type Profile struct {
	ID        string
	Name      string
	Prices    models.Prices
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Store keeps price profiles in SQLite
type Store struct {
	db *sql.DB
}

// NewStore opens a SQLite database and runs migrations
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// one connection so the pragmas hold for every statement
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Save creates or replaces the profile with the given name
func (s *Store) Save(name string, prices models.Prices) (Profile, error) {
	if name == "" {
		return Profile{}, fmt.Errorf("profile name is empty")
	}
	if err := prices.Validate(); err != nil {
		return Profile{}, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Profile{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	p := Profile{Name: name, Prices: prices, UpdatedAt: now}

	var createdAt string
	err = tx.QueryRow(`SELECT profile_id, created_at FROM price_profiles WHERE name = ?`, name).
		Scan(&p.ID, &createdAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		p.ID = uuid.New().String()
		p.CreatedAt = now
		_, err = tx.Exec(
			`INSERT INTO price_profiles (profile_id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
			p.ID, name, now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
		)
		if err != nil {
			return Profile{}, fmt.Errorf("insert profile: %w", err)
		}
	case err != nil:
		return Profile{}, fmt.Errorf("lookup profile: %w", err)
	default:
		p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
		if _, err := tx.Exec(`UPDATE price_profiles SET updated_at = ? WHERE profile_id = ?`,
			now.Format(time.RFC3339Nano), p.ID); err != nil {
			return Profile{}, fmt.Errorf("update profile: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM profile_prices WHERE profile_id = ?`, p.ID); err != nil {
			return Profile{}, fmt.Errorf("clear prices: %w", err)
		}
	}

	insert := `INSERT INTO profile_prices (profile_id, kind, tier, price) VALUES (?, ?, ?, ?)`
	for _, tier := range models.SacrificeTiers() {
		if _, err := tx.Exec(insert, p.ID, kindSacrifice, tier.String(), prices.Sacrifice[tier]); err != nil {
			return Profile{}, fmt.Errorf("insert price: %w", err)
		}
	}
	for _, tier := range models.CandyTiers() {
		if _, err := tx.Exec(insert, p.ID, kindCandy, tier.String(), prices.Candy[tier]); err != nil {
			return Profile{}, fmt.Errorf("insert price: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Profile{}, fmt.Errorf("commit: %w", err)
	}
	return p, nil
}

// Get returns the profile with the given name
func (s *Store) Get(name string) (Profile, error) {
	var p Profile
	var createdAt, updatedAt string
	err := s.db.QueryRow(
		`SELECT profile_id, name, created_at, updated_at FROM price_profiles WHERE name = ?`, name,
	).Scan(&p.ID, &p.Name, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Profile{}, fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	if err != nil {
		return Profile{}, fmt.Errorf("get profile: %w", err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	p.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)

	if err := s.loadPrices(&p); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Store) loadPrices(p *Profile) error {
	rows, err := s.db.Query(`SELECT kind, tier, price FROM profile_prices WHERE profile_id = ?`, p.ID)
	if err != nil {
		return fmt.Errorf("query prices: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, name string
		var price float64
		if err := rows.Scan(&kind, &name, &price); err != nil {
			return fmt.Errorf("scan price: %w", err)
		}
		tier, ok := models.TierByName(name)
		if !ok {
			return fmt.Errorf("profile %q: unknown tier %q", p.Name, name)
		}
		switch kind {
		case kindSacrifice:
			p.Prices.Sacrifice[tier] = price
		case kindCandy:
			p.Prices.Candy[tier] = price
		}
	}
	return rows.Err()
}

// List returns every profile ordered by name
func (s *Store) List() ([]Profile, error) {
	rows, err := s.db.Query(`SELECT name FROM price_profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan profile: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	profiles := make([]Profile, 0, len(names))
	for _, name := range names {
		p, err := s.Get(name)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Delete removes the profile with the given name and its prices
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM price_profiles WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrProfileNotFound, name)
	}
	return nil
}
