// Package export renders a computed series as tabular output. It is a
// pure function of the series: nothing here touches the ledger.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hsmb/treasury/internal/models"
)

// Header lists every report column in output order. Every metric the
// engine computes appears in exactly one column; historical columns
// are blank on projected rows and vice versa.
var Header = []string{
	"Date",
	"Assets",
	"Liabilities",
	"Capital",
	"Dues",
	"Donations",
	"Food donations",
	"Food expenses",
	"Rent",
	"Expenses",
	"Income",
	"Members",
	"Donating members",
	"Joined",
	"Departed",
	"Capital target",
	"Projected capital",
	"Projected dues",
	"Projected donations",
	"Projected members",
	"Projected donating members",
	"Projected capital target",
	"Projected food profit",
}

// WriteCSV emits the series as CSV, one row per window boundary in
// ascending date order.
func WriteCSV(w io.Writer, series models.Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, snap := range series {
		if err := cw.Write(row(snap)); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func row(s models.Snapshot) []string {
	cells := []string{s.Date.Format("2006-01-02")}

	hist := func(v fmt.Stringer) string {
		if s.Historical {
			return v.String()
		}
		return ""
	}
	histInt := func(v int) string {
		if s.Historical {
			return strconv.Itoa(v)
		}
		return ""
	}
	proj := func(v fmt.Stringer) string {
		if s.Projected {
			return v.String()
		}
		return ""
	}
	projInt := func(v int) string {
		if s.Projected {
			return strconv.Itoa(v)
		}
		return ""
	}

	cells = append(cells,
		hist(s.Assets),
		hist(s.Liabilities),
		hist(s.Capital),
		hist(s.Dues),
		hist(s.Donations),
		hist(s.FoodDonations),
		hist(s.FoodExpenses),
		hist(s.Rent),
		hist(s.Expenses),
		hist(s.Income),
		histInt(s.Members),
		histInt(s.DonatingMembers),
		histInt(s.Joined),
		histInt(s.Departed),
		hist(s.CapitalTarget),
		proj(s.ProjectedCapital),
		proj(s.ProjectedDues),
		proj(s.ProjectedDonations),
		projInt(s.ProjectedMembers),
		projInt(s.ProjectedDonatingMembers),
		proj(s.ProjectedCapitalTarget),
		proj(s.ProjectedFoodProfit),
	)
	return cells
}

// RosterHeader lists the roster export columns.
var RosterHeader = []string{"Name", "Email address", "Membership type", "Account balance"}

// WriteRosterCSV emits the active-member roster as CSV.
func WriteRosterCSV(w io.Writer, roster []models.Member) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(RosterHeader); err != nil {
		return fmt.Errorf("failed to write roster header: %w", err)
	}
	for _, m := range roster {
		record := []string{m.Name, m.Email, m.Type, m.EffectiveBalance.String()}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write roster row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
