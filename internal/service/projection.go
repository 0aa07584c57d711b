package service

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/hsmb/treasury/internal/calendar"
	"github.com/hsmb/treasury/internal/models"
)

// negThree scales a monthly net expense into the three-month reserve
// target.
var negThree = decimal.NewFromInt(-3)

// RentSchedule returns the projected rent charge for a future window
// boundary. Rent is kept out of the general expense run rate because
// it can change on its own schedule while everything else is assumed
// flat.
type RentSchedule func(boundary time.Time) decimal.Decimal

// FlatRent repeats the same charge for every future window.
func FlatRent(charge decimal.Decimal) RentSchedule {
	return func(time.Time) decimal.Decimal { return charge }
}

// Project extends the historical series MonthsAfter windows forward
// using trailing averages. The last historical snapshot is re-emitted
// as the projection seed: its capital, dues, donations and member
// counts are copied verbatim onto its own projected fields, so the
// first projected capital equals the last historical capital exactly.
// Membership and non-rent expenses are deliberately held flat; this is
// a run-rate model, not a growth model.
func (s *Service) Project(history models.Series, today time.Time) (models.Series, error) {
	if len(history) == 0 {
		return nil, ErrEmptyWindowSet
	}

	avg := trailingAverages(history)

	rentSchedule := s.cfg.Rent
	if rentSchedule == nil {
		rentSchedule = FlatRent(avg.rent)
	}

	// Seam row: the last real values seed the projection loop.
	seam := &history[len(history)-1]
	seam.Projected = true
	seam.ProjectedCapital = seam.Capital
	seam.ProjectedDues = seam.Dues
	seam.ProjectedDonations = seam.Donations
	seam.ProjectedMembers = seam.Members
	seam.ProjectedDonatingMembers = seam.DonatingMembers
	seam.ProjectedCapitalTarget = seam.CapitalTarget

	anchor := s.cfg.AnchorDay
	end := today
	for i := 0; i < s.cfg.MonthsAfter; i++ {
		end = calendar.AddMonth(end, anchor)
	}

	series := history
	for boundary := range calendar.Boundaries(today, end, anchor) {
		prev := series.Last()
		rent := rentSchedule(boundary)

		series = append(series, models.Snapshot{
			Date:      boundary,
			Projected: true,

			ProjectedCapital: prev.ProjectedCapital.
				Add(avg.income).
				Add(avg.generalExpense).
				Add(rent),
			ProjectedDues:            prev.ProjectedDues,
			ProjectedDonations:       prev.ProjectedDonations,
			ProjectedMembers:         prev.ProjectedMembers,
			ProjectedDonatingMembers: prev.ProjectedDonatingMembers,
			ProjectedCapitalTarget:   avg.generalExpense.Add(rent).Mul(negThree),
			ProjectedFoodProfit:      avg.foodIncome.Add(avg.foodExpense),
		})
	}

	s.log.Infof("Projected %d windows at income %s/mo, general expenses %s/mo",
		len(series)-len(history), avg.income, avg.generalExpense)
	return series, nil
}

type averages struct {
	income         decimal.Decimal // dues + donations
	foodIncome     decimal.Decimal
	foodExpense    decimal.Decimal
	rent           decimal.Decimal
	generalExpense decimal.Decimal // expenses with rent netted out
}

// trailingAverages computes the flat per-category run rates over the
// whole historical span. Rent is netted out of the general expense
// average so the rent schedule can re-add it per window.
func trailingAverages(history models.Series) averages {
	var dues, donations, foodIn, foodOut, rent, expenses decimal.Decimal
	for _, snap := range history {
		dues = dues.Add(snap.Dues)
		donations = donations.Add(snap.Donations)
		foodIn = foodIn.Add(snap.FoodDonations)
		foodOut = foodOut.Add(snap.FoodExpenses)
		rent = rent.Add(snap.Rent)
		expenses = expenses.Add(snap.Expenses)
	}

	n := decimal.NewFromInt(int64(len(history)))
	rentAvg := rent.Div(n)
	return averages{
		income:         dues.Add(donations).Div(n),
		foodIncome:     foodIn.Div(n),
		foodExpense:    foodOut.Div(n),
		rent:           rentAvg,
		generalExpense: expenses.Div(n).Sub(rentAvg),
	}
}
