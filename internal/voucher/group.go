package voucher

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

// CurrencyGroup is the per-currency view of a voucher: the debit and credit
// rows and their totals. Groups are derived, recomputed on every mutation,
// and never stored.
type CurrencyGroup struct {
	CurrencyCode string
	DebitItems   []model.LineItem
	CreditItems  []model.LineItem
}

// Group splits line items into currency groups in order of first appearance.
func Group(items []model.LineItem) []CurrencyGroup {
	index := make(map[string]int)
	var groups []CurrencyGroup
	for _, it := range items {
		i, seen := index[it.CurrencyCode]
		if !seen {
			i = len(groups)
			index[it.CurrencyCode] = i
			groups = append(groups, CurrencyGroup{CurrencyCode: it.CurrencyCode})
		}
		if it.Side == model.SideDebit {
			groups[i].DebitItems = append(groups[i].DebitItems, it)
		} else {
			groups[i].CreditItems = append(groups[i].CreditItems, it)
		}
	}
	return groups
}

// SideTotal sums the valid amounts of one side's rows. Incomplete rows
// contribute nothing.
func SideTotal(items []model.LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.AmountOrZero())
	}
	return total
}

// DebitTotal returns the group's debit total.
func (g CurrencyGroup) DebitTotal() decimal.Decimal {
	return SideTotal(g.DebitItems)
}

// CreditTotal returns the group's credit total.
func (g CurrencyGroup) CreditTotal() decimal.Decimal {
	return SideTotal(g.CreditItems)
}

// Balanced reports exact decimal equality of the two totals. No tolerance.
func (g CurrencyGroup) Balanced() bool {
	return g.DebitTotal().Equal(g.CreditTotal())
}

// CurrencyLocked reports whether the group's currency may no longer be
// changed: once any row references an original line item, switching currency
// underneath the offset would silently break it.
func (g CurrencyGroup) CurrencyLocked() bool {
	for _, it := range g.DebitItems {
		if it.Offsets() {
			return true
		}
	}
	for _, it := range g.CreditItems {
		if it.Offsets() {
			return true
		}
	}
	return false
}

// CanDelete reports whether a row may be removed from its group: offsetting
// rows are immutable, and the last row on a side stays.
func CanDelete(item model.LineItem, g CurrencyGroup) bool {
	if item.Offsets() {
		return false
	}
	side := g.DebitItems
	if item.Side == model.SideCredit {
		side = g.CreditItems
	}
	return len(side) > 1
}

// DateFloor returns the latest date among the original line items referenced
// by any row, and whether any row references one. The voucher date must not
// be earlier than this; it is recomputed whenever a link changes.
func DateFloor(items []model.LineItem) (time.Time, bool) {
	var floor time.Time
	found := false
	for _, it := range items {
		if !it.Offsets() {
			continue
		}
		if !found || it.OriginalLineItemDate.After(floor) {
			floor = it.OriginalLineItemDate
			found = true
		}
	}
	return floor, found
}
