// Package service implements the aggregation and projection engine: it
// drives the calendar over a loaded ledger to build the historical
// metric series and extends it forward with a run-rate model.
package service

import "github.com/shopspring/decimal"

// Sign is a per-metric sign convention applied to a raw split sum.
// Income and liability accounts carry money flowing out as negative
// splits, so metrics reported as positive income flip the sign; the
// flip is declared per metric, never assumed globally.
type Sign int

const (
	KeepSign Sign = 1
	FlipSign Sign = -1
)

func (s Sign) apply(d decimal.Decimal) decimal.Decimal {
	if s == FlipSign {
		return d.Neg()
	}
	return d
}

// Metric declares how one report column is computed from the ledger:
// the account to resolve, whether descendant splits are included,
// which children to skip when summing per child, the sign convention,
// and whether the sum is cumulative through the boundary date rather
// than limited to the window.
type Metric struct {
	Name string

	// Account is resolved by exact name anywhere in the tree.
	Account string

	// PerChild sums each child of Account separately so that the
	// Exclusions list can drop one-off sub-accounts from the rollup.
	PerChild   bool
	Exclusions []string

	// Recursive includes splits of all descendants instead of only the
	// directly posted ones.
	Recursive bool

	Sign Sign

	// Cumulative switches the date filter from (start, end] to
	// date <= end. Used by the balance-sheet metrics only.
	Cumulative bool
}

func (m Metric) excluded(name string) bool {
	for _, e := range m.Exclusions {
		if e == name {
			return true
		}
	}
	return false
}

// Metrics is the full declared metric set of the report. Defining the
// set once here keeps the aggregator, the series builder and the
// emitters agreed on which columns exist.
type Metrics struct {
	Assets        Metric
	Liabilities   Metric
	Dues          Metric
	Donations     Metric
	FoodDonations Metric
	FoodExpenses  Metric
	Rent          Metric
	Expenses      Metric
}

// DefaultMetrics mirrors the chart of accounts the report was designed
// around. Exclusions drop the sub-accounts that do not belong in a
// recurring rollup (prepaid rent held aside, a one-off event account).
func DefaultMetrics() Metrics {
	return Metrics{
		Assets: Metric{
			Name:       "Assets",
			Account:    "Current Assets",
			PerChild:   true,
			Exclusions: []string{"Prepaid Rent"},
			Sign:       KeepSign,
			Cumulative: true,
		},
		Liabilities: Metric{
			Name:       "Liabilities",
			Account:    "Active Members",
			Recursive:  true,
			Sign:       KeepSign,
			Cumulative: true,
		},
		Dues: Metric{
			Name:      "Dues",
			Account:   "Member Dues",
			Recursive: true,
			Sign:      FlipSign,
		},
		Donations: Metric{
			Name:      "Donations",
			Account:   "Regular donations",
			Recursive: true,
			Sign:      FlipSign,
		},
		FoodDonations: Metric{
			Name:      "Food donations",
			Account:   "Food and Drink Donations",
			Recursive: true,
			Sign:      FlipSign,
		},
		FoodExpenses: Metric{
			Name:      "Food expenses",
			Account:   "Food and Drink",
			Recursive: true,
			Sign:      FlipSign,
		},
		Rent: Metric{
			Name:      "Rent",
			Account:   "Rent",
			Recursive: true,
			Sign:      FlipSign,
		},
		Expenses: Metric{
			Name:       "Expenses",
			Account:    "Expenses",
			PerChild:   true,
			Exclusions: []string{"Anti-social 10-04"},
			Sign:       FlipSign,
		},
	}
}
