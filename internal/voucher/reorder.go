package voucher

import "github.com/ledgerforms/ledgerforms/internal/model"

// Reorder moves the row at index from to index to and renumbers the hidden
// Order field 1..n. Out-of-range indexes only renumber.
func Reorder(items []model.LineItem, from, to int) []model.LineItem {
	if from < 0 || from >= len(items) || to < 0 || to >= len(items) || from == to {
		Renumber(items)
		return items
	}

	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	items = append(items, model.LineItem{})
	copy(items[to+1:], items[to:])
	items[to] = moved

	Renumber(items)
	return items
}

// Renumber rewrites Order sequentially from one.
func Renumber(items []model.LineItem) {
	for i := range items {
		items[i].Order = i + 1
	}
}
