package model

import "time"

// Voucher is an in-progress journal entry form: a date and the line items
// currently present across all of its currency groups.
type Voucher struct {
	Date  time.Time
	Items []LineItem
}

// ItemsOffsetting returns the items linked to the given original line item.
func (v Voucher) ItemsOffsetting(originalID int64) []LineItem {
	var out []LineItem
	for _, it := range v.Items {
		if it.OriginalLineItemID == originalID {
			out = append(out, it)
		}
	}
	return out
}
