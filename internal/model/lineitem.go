package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is one row on one side of a voucher form.
//
// FormID identifies the row within the form session; unsaved rows have no
// persisted ID yet, and the offset reconciler needs stable identity to
// exclude the row being edited from its own net-balance computation.
type LineItem struct {
	FormID       uuid.UUID
	ID           int64 // persisted row ID, 0 until saved
	Side         Side
	CurrencyCode string

	AccountCode        string
	AccountText        string
	AccountNeedsOffset bool

	Description string
	Amount      decimal.NullDecimal // invalid while the row is incomplete

	// Link to the original line item this row offsets, zero when none.
	OriginalLineItemID   int64
	OriginalLineItemDate time.Time
	OriginalLineItemText string

	Order int
}

// NewLineItem returns a blank row for the given side with a fresh form ID.
func NewLineItem(side Side, currencyCode string) LineItem {
	return LineItem{
		FormID:       uuid.New(),
		Side:         side,
		CurrencyCode: currencyCode,
	}
}

// Offsets reports whether the row is linked to an original line item.
func (li LineItem) Offsets() bool {
	return li.OriginalLineItemID != 0
}

// AmountOrZero returns the amount, or zero while the row is incomplete.
func (li LineItem) AmountOrZero() decimal.Decimal {
	if !li.Amount.Valid {
		return decimal.Zero
	}
	return li.Amount.Decimal
}
