package service

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/calendar"
	"github.com/hsmb/treasury/internal/ledger"
)

// Aggregator resolves metric accounts against a loaded book and sums
// split values over report windows.
type Aggregator struct {
	book *ledger.Book
	log  *logrus.Logger
}

// NewAggregator initializes an aggregator over a loaded book.
func NewAggregator(book *ledger.Book, log *logrus.Logger) *Aggregator {
	return &Aggregator{book: book, log: log}
}

// SumWindow sums the values of splits whose transaction date falls in
// (w.Start, w.End], multiplied by the sign. An empty match set is a
// legitimate zero, never an error.
func SumWindow(splits []*ledger.Split, w calendar.Window, sign Sign) decimal.Decimal {
	total := decimal.Zero
	for _, s := range splits {
		if w.Contains(s.Transaction.Date) {
			total = total.Add(s.Value)
		}
	}
	return sign.apply(total)
}

// SumThrough is the point-in-time variant used by the balance-sheet
// metrics: it sums every split dated on or before the boundary.
func SumThrough(splits []*ledger.Split, boundary time.Time, sign Sign) decimal.Decimal {
	total := decimal.Zero
	for _, s := range splits {
		if !s.Transaction.Date.After(boundary) {
			total = total.Add(s.Value)
		}
	}
	return sign.apply(total)
}

// Sum computes one metric for the window ending at w.End, honoring the
// metric's resolution mode, exclusions, date filter and sign. A
// missing account is fatal to the run: every later metric and the
// projection depend on a complete series.
func (a *Aggregator) Sum(m Metric, w calendar.Window) (decimal.Decimal, error) {
	acct, err := a.book.FindAccount(m.Account)
	if err != nil {
		return decimal.Zero, fmt.Errorf("metric %s: %w", m.Name, err)
	}

	total := decimal.Zero
	if m.PerChild {
		for _, child := range acct.Children {
			if m.excluded(child.Name) {
				a.log.Debugf("Metric %s: excluding child account %q", m.Name, child.Name)
				continue
			}
			total = total.Add(a.rawSum(m, splitsOf(child, m.Recursive), w))
		}
	} else {
		total = a.rawSum(m, splitsOf(acct, m.Recursive), w)
	}
	return m.Sign.apply(total), nil
}

func (a *Aggregator) rawSum(m Metric, splits []*ledger.Split, w calendar.Window) decimal.Decimal {
	total := decimal.Zero
	for _, s := range splits {
		date := s.Transaction.Date
		if m.Cumulative {
			if date.After(w.End) {
				continue
			}
		} else if !w.Contains(date) {
			continue
		}
		total = total.Add(s.Value)
	}
	return total
}

func splitsOf(acct *ledger.Account, recursive bool) []*ledger.Split {
	if recursive {
		return acct.AllSplits()
	}
	return acct.Splits
}
