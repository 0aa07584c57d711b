package models

import "github.com/shopspring/decimal"

// Member is one active-member row of the roster export. Balance is the
// amount the member has on account; EffectiveBalance is the balance
// after the current month's dues. Email is empty when no address could
// be extracted from the member account's description.
type Member struct {
	Name             string          `json:"name"`
	Email            string          `json:"email,omitempty"`
	Type             string          `json:"membership_type"`
	Balance          decimal.Decimal `json:"balance"`
	EffectiveBalance decimal.Decimal `json:"effective_balance"`
}
