package report

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/solver-pet/internal/converter"
	"github.com/napolitain/solver-pet/internal/models"
	"github.com/napolitain/solver-pet/internal/store"
)

// Prices writes a price table, one row per tier
func Prices(w io.Writer, prices models.Prices) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Tier", "Sacrifice Pet", "Candy"}),
	)
	for _, tier := range models.AllTiers()[1:] {
		table.Append([]string{
			converter.FormatTier(tier),
			priceCell(prices.Sacrifice[tier], tier >= models.TierE),
			priceCell(prices.Candy[tier], tier <= models.TierA),
		})
	}
	return table.Render()
}

func priceCell(v float64, sold bool) string {
	if !sold {
		return "-"
	}
	return converter.FormatThousands(v)
}

// Profiles writes the saved price profiles
func Profiles(w io.Writer, profiles []store.Profile) error {
	if len(profiles) == 0 {
		titleColor.Fprintln(w, "No saved price profiles")
		return nil
	}

	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Name", "Updated", "S Pet", "A Candy"}),
	)
	for _, p := range profiles {
		table.Append([]string{
			p.Name,
			p.UpdatedAt.Format("2006-01-02 15:04"),
			converter.FormatThousands(p.Prices.Sacrifice[models.TierS]),
			converter.FormatThousands(p.Prices.Candy[models.TierA]),
		})
	}
	return table.Render()
}
