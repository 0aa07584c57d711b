package service

import (
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/ledger"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newAccount(name string, children ...*ledger.Account) *ledger.Account {
	a := &ledger.Account{Name: name, Children: children}
	for _, c := range children {
		c.Parent = a
	}
	return a
}

type leg struct {
	account *ledger.Account
	value   string
}

// post records a balanced transaction across the given account legs.
func post(date string, legs ...leg) *ledger.Transaction {
	tx := &ledger.Transaction{Date: day(date)}
	for _, l := range legs {
		split := &ledger.Split{
			Account:     l.account,
			Transaction: tx,
			Value:       dec(l.value),
		}
		tx.Splits = append(tx.Splits, split)
		l.account.Splits = append(l.account.Splits, split)
	}
	return tx
}

// testChart builds the default chart of accounts with a handful of
// member leaves, returning the book and the accounts tests post to.
type testChart struct {
	book      *ledger.Book
	bank      *ledger.Account
	prepaid   *ledger.Account
	alice     *ledger.Account
	bob       *ledger.Account
	carol     *ledger.Account
	dues      *ledger.Account
	donations *ledger.Account
	foodIn    *ledger.Account
	foodOut   *ledger.Account
	rent      *ledger.Account
	oneOff    *ledger.Account
}

func newTestChart() *testChart {
	c := &testChart{
		bank:      newAccount("Bank"),
		prepaid:   newAccount("Prepaid Rent"),
		alice:     newAccount("Alice"),
		bob:       newAccount("Bob"),
		carol:     newAccount("Carol"),
		dues:      newAccount("Member Dues"),
		donations: newAccount("Regular donations"),
		foodIn:    newAccount("Food and Drink Donations"),
		foodOut:   newAccount("Food and Drink"),
		rent:      newAccount("Rent"),
		oneOff:    newAccount("Anti-social 10-04"),
	}
	root := newAccount("Root Account",
		newAccount("Current Assets", c.bank, c.prepaid),
		newAccount("Active Members",
			newAccount("Full Members", c.alice, c.bob),
			newAccount("Student Members", c.carol),
		),
		c.dues,
		c.donations,
		c.foodIn,
		newAccount("Expenses", c.rent, c.foodOut, c.oneOff),
	)
	c.book = &ledger.Book{Root: root}
	return c
}
