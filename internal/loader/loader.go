package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/napolitain/solver-pet/internal/models"
)

// TablesFile is the name of the raising data file inside the data directory
const TablesFile = "tables.json"

// TablesJSON represents the JSON structure of the raising data
type TablesJSON struct {
	Tiers []TierJSON `json:"tiers"`
}

// TierJSON represents the JSON structure of one tier
type TierJSON struct {
	Name      string               `json:"name"`
	Capacity  int                  `json:"capacity"`
	Entry     []float64            `json:"entry,omitempty"`
	Sacrifice map[string][]float64 `json:"sacrifice,omitempty"`
	FeedCount int                  `json:"feed_count,omitempty"`
	FeedItem  string               `json:"feed_item,omitempty"`
}

// LoadTables loads raising data from the JSON file in dataDir
func LoadTables(dataDir string) (*models.Tables, error) {
	filePath := filepath.Join(dataDir, TablesFile)
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", TablesFile, err)
	}

	var raw TablesJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", TablesFile, err)
	}

	tables, err := tablesFromJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", TablesFile, err)
	}
	if err := tables.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", TablesFile, err)
	}

	return tables, nil
}

// LoadTablesOrDefault loads raising data, falling back to the built-in
// tables when the data directory has no tables file
func LoadTablesOrDefault(dataDir string) (*models.Tables, bool, error) {
	tables, err := LoadTables(dataDir)
	if errors.Is(err, os.ErrNotExist) {
		return models.DefaultTables(), false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return tables, true, nil
}

func tablesFromJSON(raw TablesJSON) (*models.Tables, error) {
	if len(raw.Tiers) > models.MaxTiers {
		return nil, fmt.Errorf("%d tiers, at most %d supported", len(raw.Tiers), models.MaxTiers)
	}

	tables := &models.Tables{NumTiers: len(raw.Tiers)}

	byName := make(map[string]models.Tier, len(raw.Tiers))
	for i, tj := range raw.Tiers {
		tier := models.Tier(i)
		if tj.Name != tier.String() {
			return nil, fmt.Errorf("tier %d is named %q, want %q", i, tj.Name, tier.String())
		}
		byName[tj.Name] = tier
	}

	for i, tj := range raw.Tiers {
		tier := models.Tier(i)
		tables.Capacity[tier] = tj.Capacity
		tables.Entry[tier] = tj.Entry
		tables.FeedCount[tier] = tj.FeedCount

		for name, dist := range tj.Sacrifice {
			sac, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("tier %s: unknown sacrifice tier %q", tj.Name, name)
			}
			tables.Sacrifice[tier][sac] = dist
		}

		if i < len(raw.Tiers)-1 {
			item, ok := byName[tj.FeedItem]
			if !ok {
				return nil, fmt.Errorf("tier %s: unknown feed item %q", tj.Name, tj.FeedItem)
			}
			tables.FeedItem[tier] = item
		}
	}

	return tables, nil
}
