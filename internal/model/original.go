package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// OriginalLineItem is a previously posted line item in an account that
// requires offsetting (a payable or receivable).
//
// BareNetBalance is the original amount minus offsets already persisted
// server-side. It is fixed for the lifetime of a form session; the effective
// balance additionally subtracts offsets staged on the in-progress form and
// is always computed fresh by the offset package.
type OriginalLineItem struct {
	ID             int64
	Date           time.Time
	CurrencyCode   string
	Side           Side
	AccountCode    string
	Description    string
	BareNetBalance decimal.Decimal
}

// DisplayText returns the date and description as shown in the candidate
// selector.
func (o OriginalLineItem) DisplayText() string {
	return o.Date.Format("2006-01-02") + " " + o.Description
}

// QueryTokens returns the lowercase tokens a candidate keyword search
// matches against.
func (o OriginalLineItem) QueryTokens() []string {
	tokens := []string{
		strings.ToLower(o.AccountCode),
		o.Date.Format("2006-01-02"),
	}
	for _, w := range strings.Fields(strings.ToLower(o.Description)) {
		tokens = append(tokens, w)
	}
	return tokens
}
