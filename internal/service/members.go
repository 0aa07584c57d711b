package service

import (
	"github.com/hsmb/treasury/internal/calendar"
	"github.com/hsmb/treasury/internal/ledger"
)

// Participants collects the distinct counterparties posting to acct
// within the window: for every in-window split on the account (or its
// descendants), the names of the accounts on the other legs of the
// same transaction. Set semantics: a member paying twice in one window
// counts once.
func Participants(acct *ledger.Account, w calendar.Window) map[string]struct{} {
	members := make(map[string]struct{})
	for _, s := range acct.AllSplits() {
		if !w.Contains(s.Transaction.Date) {
			continue
		}
		for _, leg := range s.Transaction.Splits {
			if leg.Account == s.Account {
				continue
			}
			members[leg.Account.Name] = struct{}{}
		}
	}
	return members
}

// MembershipDiff holds the set-difference counts between a window's
// participants and the previous window's.
type MembershipDiff struct {
	Joined   int
	Departed int
}

// DiffParticipants counts who appears only in the current window
// (joined) and who appears only in the previous one (departed). The
// underlying sets are transient; only the counts are reported.
func DiffParticipants(current, previous map[string]struct{}) MembershipDiff {
	var d MembershipDiff
	for name := range current {
		if _, ok := previous[name]; !ok {
			d.Joined++
		}
	}
	for name := range previous {
		if _, ok := current[name]; !ok {
			d.Departed++
		}
	}
	return d
}
