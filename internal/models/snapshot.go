package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is one row of the report time series: a window boundary date
// plus every metric computed for that window. Historical fields are
// populated when Historical is set, Projected* fields when Projected is
// set; the seam row at the end of the historical span carries both.
type Snapshot struct {
	Date time.Time `json:"date"`

	Historical bool `json:"historical"`
	Projected  bool `json:"projected"`

	// Balance-sheet metrics, cumulative through the boundary date.
	Assets      decimal.Decimal `json:"assets"`
	Liabilities decimal.Decimal `json:"liabilities"`
	Capital     decimal.Decimal `json:"capital"`

	// Windowed metrics over (previous boundary, boundary].
	Dues          decimal.Decimal `json:"dues"`
	Donations     decimal.Decimal `json:"donations"`
	FoodDonations decimal.Decimal `json:"food_donations"`
	FoodExpenses  decimal.Decimal `json:"food_expenses"`
	Rent          decimal.Decimal `json:"rent"`
	Expenses      decimal.Decimal `json:"expenses"`
	Income        decimal.Decimal `json:"income"`
	CapitalTarget decimal.Decimal `json:"capital_target"`

	Members         int `json:"members"`
	DonatingMembers int `json:"donating_members"`
	Joined          int `json:"joined"`
	Departed        int `json:"departed"`

	ProjectedCapital         decimal.Decimal `json:"projected_capital"`
	ProjectedDues            decimal.Decimal `json:"projected_dues"`
	ProjectedDonations       decimal.Decimal `json:"projected_donations"`
	ProjectedMembers         int             `json:"projected_members"`
	ProjectedDonatingMembers int             `json:"projected_donating_members"`
	ProjectedCapitalTarget   decimal.Decimal `json:"projected_capital_target"`
	ProjectedFoodProfit      decimal.Decimal `json:"projected_food_profit"`
}

// Series is the report time series: historical snapshots in ascending
// date order followed by projected snapshots in ascending date order.
type Series []Snapshot

// Last returns the final snapshot of the series. The series must not be
// empty.
func (s Series) Last() Snapshot {
	return s[len(s)-1]
}
