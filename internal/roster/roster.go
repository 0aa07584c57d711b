// Package roster derives the active-member list from the same account
// tree the report runs on: per-member balances, dues tiers and email
// addresses extracted from account descriptions.
package roster

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/hsmb/treasury/internal/ledger"
	"github.com/hsmb/treasury/internal/models"
)

// emailPattern matches the first local@domain.tld shaped substring of
// an account description.
var emailPattern = regexp.MustCompile(`[^@ ]+@[^@ ]+\.[^@ ]+`)

// Tier is a membership category: the sub-account holding its member
// accounts and the monthly dues rate charged against their balances.
type Tier struct {
	Name        string
	Account     string
	MonthlyDues decimal.Decimal
}

// DefaultTiers covers the two dues rates in use: full members and the
// reduced student rate.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: "Regular", Account: "Full Members", MonthlyDues: decimal.NewFromInt(40)},
		{Name: "Student", Account: "Student Members", MonthlyDues: decimal.NewFromInt(20)},
	}
}

// Build walks each tier's sub-account under "Active Members" and
// derives one roster row per member account. A member without an
// extractable email address is a data-quality warning, not an error.
func Build(book *ledger.Book, tiers []Tier, log *logrus.Logger) ([]models.Member, error) {
	active, err := book.FindAccount("Active Members")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve member accounts: %w", err)
	}

	var roster []models.Member
	for _, tier := range tiers {
		tierAcct, err := active.FindAccount(tier.Account)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s tier: %w", tier.Name, err)
		}
		for _, acct := range tierAcct.Children {
			balance := balanceOf(acct)
			member := models.Member{
				Name:             acct.Name,
				Email:            Email(acct.Description),
				Type:             tier.Name,
				Balance:          balance,
				EffectiveBalance: balance.Sub(tier.MonthlyDues),
			}
			if member.Email == "" {
				log.Warnf("%s does not have an email address on record", member.Name)
			}
			roster = append(roster, member)
		}
	}
	return roster, nil
}

// balanceOf is the amount the member has on account. Member accounts
// are liabilities, so credits arrive as negative splits and the
// balance flips the sign.
func balanceOf(acct *ledger.Account) decimal.Decimal {
	total := decimal.Zero
	for _, s := range acct.Splits {
		total = total.Add(s.Value)
	}
	return total.Neg()
}

// Email extracts the first email-shaped substring of a free-text
// account description, or "" when none is present.
func Email(description string) string {
	return emailPattern.FindString(description)
}
