package service

import (
	"time"

	"github.com/hsmb/treasury/internal/calendar"
	"github.com/hsmb/treasury/internal/models"
)

// BuildHistory computes one snapshot per window boundary in the span
// (today - MonthsBefore months, today], ascending. Any missing metric
// account aborts the run: the projection needs a complete series, and
// a partial report would silently corrupt every derived value.
func (s *Service) BuildHistory(today time.Time) (models.Series, error) {
	anchor := s.cfg.AnchorDay
	m := s.cfg.Metrics

	duesAcct, err := s.book.FindAccount(m.Dues.Account)
	if err != nil {
		return nil, err
	}
	donationsAcct, err := s.book.FindAccount(m.Donations.Account)
	if err != nil {
		return nil, err
	}

	start := today
	for i := 0; i < s.cfg.MonthsBefore; i++ {
		start = calendar.SubtractMonth(start, anchor)
	}

	var history models.Series
	var prevMembers map[string]struct{}

	for boundary := range calendar.Boundaries(start, today, anchor) {
		w := calendar.WindowEnding(boundary, anchor)

		assets, err := s.agg.Sum(m.Assets, w)
		if err != nil {
			return nil, err
		}
		liabilities, err := s.agg.Sum(m.Liabilities, w)
		if err != nil {
			return nil, err
		}
		dues, err := s.agg.Sum(m.Dues, w)
		if err != nil {
			return nil, err
		}
		donations, err := s.agg.Sum(m.Donations, w)
		if err != nil {
			return nil, err
		}
		foodDonations, err := s.agg.Sum(m.FoodDonations, w)
		if err != nil {
			return nil, err
		}
		foodExpenses, err := s.agg.Sum(m.FoodExpenses, w)
		if err != nil {
			return nil, err
		}
		rent, err := s.agg.Sum(m.Rent, w)
		if err != nil {
			return nil, err
		}
		expenses, err := s.agg.Sum(m.Expenses, w)
		if err != nil {
			return nil, err
		}

		members := Participants(duesAcct, w)
		donors := Participants(donationsAcct, w)

		var diff MembershipDiff
		if prevMembers == nil {
			// No previous window to diff against; an injected seed
			// stands in for books kept in another file.
			diff.Joined = s.cfg.SeedOverrides[boundary.Format("2006-01-02")]
		} else {
			diff = DiffParticipants(members, prevMembers)
		}
		prevMembers = members

		snap := models.Snapshot{
			Date:            boundary,
			Historical:      true,
			Assets:          assets,
			Liabilities:     liabilities,
			Capital:         assets.Add(liabilities),
			Dues:            dues,
			Donations:       donations,
			FoodDonations:   foodDonations,
			FoodExpenses:    foodExpenses,
			Rent:            rent,
			Expenses:        expenses,
			Income:          dues.Add(donations).Add(foodDonations),
			CapitalTarget:   expenses.Mul(negThree),
			Members:         len(members),
			DonatingMembers: len(donors),
			Joined:          diff.Joined,
			Departed:        diff.Departed,
		}
		history = append(history, snap)

		s.log.Debugf("Snapshot %s: capital %s, dues %s, members %d",
			boundary.Format("2006-01-02"), snap.Capital, snap.Dues, snap.Members)
	}

	if len(history) == 0 {
		return nil, ErrEmptyWindowSet
	}
	return history, nil
}
