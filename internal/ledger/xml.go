package ledger

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// LoadFile reads a GnuCash v2 XML ledger from disk.
func LoadFile(path string, log *logrus.Logger) (*Book, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("failed to read ledger file: %w", err)
	}
	return parseDocument(doc, log)
}

// LoadBytes parses a GnuCash v2 XML ledger held in memory.
func LoadBytes(data []byte, log *logrus.Logger) (*Book, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to parse ledger XML: %w", err)
	}
	return parseDocument(doc, log)
}

func parseDocument(doc *etree.Document, log *logrus.Logger) (*Book, error) {
	bookEl := doc.FindElement("//gnc:book")
	if bookEl == nil {
		return nil, errors.New("not a GnuCash v2 ledger: missing gnc:book element")
	}

	accounts := make(map[string]*Account)
	var root *Account
	for _, el := range bookEl.FindElements("./gnc:account") {
		acct := &Account{
			GUID:        childText(el, "act:id"),
			Name:        childText(el, "act:name"),
			Type:        childText(el, "act:type"),
			Description: childText(el, "act:description"),
		}
		accounts[acct.GUID] = acct

		if parentID := childText(el, "act:parent"); parentID != "" {
			parent := accounts[parentID]
			if parent == nil {
				log.Warnf("Account %q references unknown parent %s; skipping", acct.Name, parentID)
				continue
			}
			acct.Parent = parent
			parent.Children = append(parent.Children, acct)
		} else if root == nil {
			root = acct
		}
	}
	if root == nil {
		return nil, errors.New("ledger has no root account")
	}

	var transactions []*Transaction
	for _, el := range bookEl.FindElements("./gnc:transaction") {
		tx := &Transaction{
			GUID:        childText(el, "trn:id"),
			Description: childText(el, "trn:description"),
		}

		posted := el.FindElement("./trn:date-posted/ts:date")
		if posted == nil {
			log.Warnf("Transaction %s has no posted date; skipping", tx.GUID)
			continue
		}
		date, err := parsePostedDate(posted.Text())
		if err != nil {
			log.Warnf("Transaction %s has unparseable date %q; skipping", tx.GUID, posted.Text())
			continue
		}
		tx.Date = date

		for _, splitEl := range el.FindElements("./trn:splits/trn:split") {
			value, err := parseValue(childText(splitEl, "split:value"))
			if err != nil {
				return nil, fmt.Errorf("failed to parse split value in transaction %s: %w", tx.GUID, err)
			}
			acct := accounts[childText(splitEl, "split:account")]
			if acct == nil {
				log.Warnf("Transaction %s has a split on an unknown account; skipping the split", tx.GUID)
				continue
			}
			split := &Split{
				Account:     acct,
				Transaction: tx,
				Value:       value,
				Memo:        childText(splitEl, "split:memo"),
			}
			tx.Splits = append(tx.Splits, split)
			acct.Splits = append(acct.Splits, split)
		}

		// Integrity checks are advisory: the book is trusted to be
		// balanced, and reporting keeps going either way.
		if len(tx.Splits) < 2 {
			log.Warnf("Transaction %s on %s has %d split(s); double-entry expects at least 2",
				tx.GUID, tx.Date.Format("2006-01-02"), len(tx.Splits))
		} else if sum := splitSum(tx.Splits); !sum.IsZero() {
			log.Warnf("Transaction %s on %s is unbalanced: splits sum to %s",
				tx.GUID, tx.Date.Format("2006-01-02"), sum)
		}

		transactions = append(transactions, tx)
	}

	log.Debugf("Loaded ledger: %d accounts, %d transactions", len(accounts), len(transactions))
	return &Book{Root: root, Transactions: transactions}, nil
}

func childText(el *etree.Element, tag string) string {
	if child := el.SelectElement(tag); child != nil {
		return child.Text()
	}
	return ""
}

// parsePostedDate keeps only the calendar day of a GnuCash timestamp
// such as "2014-03-06 00:00:00 -0600"; any time-of-day or zone part is
// discarded before window comparisons.
func parsePostedDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) < 10 {
		return time.Time{}, fmt.Errorf("date %q too short", raw)
	}
	return time.Parse("2006-01-02", raw[:10])
}

// parseValue converts a GnuCash "num/denom" rational into a decimal.
func parseValue(raw string) (decimal.Decimal, error) {
	numStr, denomStr, ok := strings.Cut(strings.TrimSpace(raw), "/")
	if !ok {
		return decimal.NewFromString(raw)
	}
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad numerator in %q: %w", raw, err)
	}
	denom, err := strconv.ParseInt(denomStr, 10, 64)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad denominator in %q: %w", raw, err)
	}
	if denom == 0 {
		return decimal.Zero, fmt.Errorf("zero denominator in %q", raw)
	}
	return decimal.New(num, 0).Div(decimal.New(denom, 0)), nil
}

func splitSum(splits []*Split) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range splits {
		sum = sum.Add(s.Value)
	}
	return sum
}
