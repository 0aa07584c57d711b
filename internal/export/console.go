package export

import (
	"fmt"
	"io"

	"github.com/hsmb/treasury/internal/models"
)

// WriteText prints the series in the long-hand per-month form the
// treasurer reads at the console.
func WriteText(w io.Writer, series models.Series) {
	for _, snap := range series {
		fmt.Fprintln(w, snap.Date.Format("2006-01-02"))

		if snap.Historical {
			fmt.Fprintln(w, "Total assets: ", snap.Assets)
			fmt.Fprintln(w, "Total liability: ", snap.Liabilities)
			fmt.Fprintln(w, "Available capital: ", snap.Capital)
			fmt.Fprintln(w, "Capital target: ", snap.CapitalTarget)
			fmt.Fprintln(w, "Dues collected last month: ", snap.Dues)
			fmt.Fprintln(w, "Dues paying members: ", snap.Members)
			fmt.Fprintln(w, "Members joined: ", snap.Joined)
			fmt.Fprintln(w, "Members departed: ", snap.Departed)
			fmt.Fprintln(w, "Regular donations collected last month: ", snap.Donations)
			fmt.Fprintln(w, "Regularly donating members: ", snap.DonatingMembers)
			fmt.Fprintln(w, "Food donations: ", snap.FoodDonations)
			fmt.Fprintln(w, "Total expected income: ", snap.Income)
			fmt.Fprintln(w, "Expenses: ", snap.Expenses)
		}
		if snap.Projected {
			fmt.Fprintln(w, "Projected capital: ", snap.ProjectedCapital)
			fmt.Fprintln(w, "Projected capital target: ", snap.ProjectedCapitalTarget)
		}
		fmt.Fprintln(w)
	}
}
