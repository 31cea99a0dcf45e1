package offset

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerforms/ledgerforms/internal/format"
	"github.com/ledgerforms/ledgerforms/internal/model"
)

// NetBalance computes an original line item's effective net balance while a
// form is being edited: the bare balance minus the offsets staged on other
// rows of the same form. The row identified by excludeFormID is left out so
// that a user editing an offset does not see their own not-yet-committed
// amount subtracted from itself.
//
// The result must be recomputed on every open of the candidate selector;
// other rows may have changed since it was last shown.
func NetBalance(candidate model.OriginalLineItem, excludeFormID uuid.UUID, items []model.LineItem) decimal.Decimal {
	staged := decimal.Zero
	for _, it := range items {
		if it.OriginalLineItemID != candidate.ID {
			continue
		}
		if it.FormID == excludeFormID {
			continue
		}
		staged = staged.Add(it.AmountOrZero())
	}
	return candidate.BareNetBalance.Sub(staged)
}

// Query narrows the offset candidates offered for the row being edited.
type Query struct {
	Side          model.Side // side of the row being edited
	CurrencyCode  string
	Date          time.Time // the voucher's date
	Keyword       string
	ExcludeFormID uuid.UUID
	Items         []model.LineItem // all line items currently on the form
}

// Candidate is an original line item offered for offsetting, with its
// effective net balance at query time.
type Candidate struct {
	Original   model.OriginalLineItem
	NetBalance decimal.Decimal
}

// Candidates filters the original line items down to those the edited row
// may offset: effective balance still positive (exhausted candidates are
// hidden, not disabled), dated no later than the voucher, on the opposite
// side, in the same currency, and matching the keyword. The keyword also
// matches the net balance rendered as text, so a user can search by amount.
func Candidates(originals []model.OriginalLineItem, fm *format.Formatter, q Query) []Candidate {
	var out []Candidate
	for _, o := range originals {
		net := NetBalance(o, q.ExcludeFormID, q.Items)
		if !net.IsPositive() {
			continue
		}
		if o.Date.After(q.Date) {
			continue
		}
		if o.Side != q.Side.Opposite() {
			continue
		}
		if o.CurrencyCode != q.CurrencyCode {
			continue
		}
		if !matchesKeyword(o, net, fm, q.Keyword) {
			continue
		}
		out = append(out, Candidate{Original: o, NetBalance: net})
	}
	return out
}

func matchesKeyword(o model.OriginalLineItem, net decimal.Decimal, fm *format.Formatter, keyword string) bool {
	if keyword == "" {
		return true
	}
	kw := strings.ToLower(keyword)
	for _, tok := range o.QueryTokens() {
		if strings.Contains(tok, kw) {
			return true
		}
	}
	if strings.Contains(net.StringFixed(2), kw) {
		return true
	}
	return fm != nil && strings.Contains(fm.Amount(net), kw)
}

// Range bounds the amount of the row being edited.
type Range struct {
	Min    decimal.Decimal
	HasMin bool
	Max    decimal.Decimal
	HasMax bool
}

// Contains reports whether an amount satisfies the bounds.
func (r Range) Contains(amount decimal.Decimal) bool {
	if r.HasMin && amount.LessThan(r.Min) {
		return false
	}
	if r.HasMax && amount.GreaterThan(r.Max) {
		return false
	}
	return true
}

// OriginalResolver looks up original line items by ID.
type OriginalResolver interface {
	Get(id int64) (model.OriginalLineItem, bool)
}

// AmountRange computes the bounds for the row being edited, fresh from the
// current form state.
//
// When the row offsets an original, its ceiling is that original's effective
// net balance with the row itself excluded. When the row is itself a posted
// offsettable item that other rows on the form offset, its floor is the
// total staged against it: the row must retain at least what co-offsets
// already claim. Both are enforced at validation time, not merely hinted.
func AmountRange(edited model.LineItem, originals OriginalResolver, items []model.LineItem) Range {
	var r Range

	if edited.Offsets() {
		if o, ok := originals.Get(edited.OriginalLineItemID); ok {
			r.Max = NetBalance(o, edited.FormID, items)
			r.HasMax = true
		}
	}

	if edited.ID != 0 && edited.AccountNeedsOffset {
		floor := decimal.Zero
		for _, it := range items {
			if it.FormID == edited.FormID {
				continue
			}
			if it.OriginalLineItemID != edited.ID {
				continue
			}
			floor = floor.Add(it.AmountOrZero())
		}
		if floor.IsPositive() {
			r.Min = floor
			r.HasMin = true
		}
	}

	return r
}

// ProposedAmount decides what to put in the amount field when a candidate is
// chosen: the full net balance, unless an amount is already entered and does
// not exceed it, in which case the existing amount is kept.
func ProposedAmount(existing decimal.NullDecimal, net decimal.Decimal) decimal.Decimal {
	if existing.Valid && existing.Decimal.IsPositive() && existing.Decimal.LessThanOrEqual(net) {
		return existing.Decimal
	}
	return net
}
