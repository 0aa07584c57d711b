// Package ledger holds the read-only fact base for reporting: the
// chart-of-accounts tree with its transactions and splits, loaded once
// from a GnuCash v2 XML file and never mutated afterwards.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// ErrAccountNotFound is returned when a named account does not exist
// anywhere in the searched subtree.
var ErrAccountNotFound = errors.New("account not found")

// Account is a node in the chart-of-accounts tree. Individual members
// appear as leaf accounts; the Description free text may embed a
// member's email address.
type Account struct {
	GUID        string
	Name        string
	Type        string
	Description string
	Parent      *Account
	Children    []*Account
	Splits      []*Split
}

// Transaction groups the balanced splits posted on one calendar day.
// Date carries no time-of-day component.
type Transaction struct {
	GUID        string
	Date        time.Time
	Description string
	Splits      []*Split
}

// Split is one leg of a transaction, posted to exactly one account.
type Split struct {
	Account     *Account
	Transaction *Transaction
	Value       decimal.Decimal
	Memo        string
}

// Book is a loaded ledger file.
type Book struct {
	Root         *Account
	Transactions []*Transaction
}

// FindAccount searches the subtree rooted at a for an account with the
// given name. The search is a pre-order depth-first walk with children
// in document order; when the same name appears at several positions
// the first match wins.
func (a *Account) FindAccount(name string) (*Account, error) {
	if a.Name == name {
		return a, nil
	}
	for _, child := range a.Children {
		if found, err := child.FindAccount(name); err == nil {
			return found, nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrAccountNotFound)
}

// FindAccount resolves a named account anywhere in the book.
func (b *Book) FindAccount(name string) (*Account, error) {
	return b.Root.FindAccount(name)
}

// AllSplits returns the account's own splits together with those of all
// its descendants. Callers must not rely on the order of the result.
func (a *Account) AllSplits() []*Split {
	splits := append([]*Split(nil), a.Splits...)
	for _, child := range a.Children {
		splits = append(splits, child.AllSplits()...)
	}
	return splits
}
