package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

func orderedAccounts(items []model.LineItem) []string {
	var codes []string
	for _, it := range items {
		codes = append(codes, it.AccountCode)
	}
	return codes
}

func TestReorder_MoveDown(t *testing.T) {
	items := []model.LineItem{
		item(model.SideDebit, "USD", "a", "1.00"),
		item(model.SideDebit, "USD", "b", "1.00"),
		item(model.SideDebit, "USD", "c", "1.00"),
	}

	items = Reorder(items, 0, 2)
	assert.Equal(t, []string{"b", "c", "a"}, orderedAccounts(items))
	for i, it := range items {
		assert.Equal(t, i+1, it.Order)
	}
}

func TestReorder_MoveUp(t *testing.T) {
	items := []model.LineItem{
		item(model.SideDebit, "USD", "a", "1.00"),
		item(model.SideDebit, "USD", "b", "1.00"),
		item(model.SideDebit, "USD", "c", "1.00"),
	}

	items = Reorder(items, 2, 0)
	assert.Equal(t, []string{"c", "a", "b"}, orderedAccounts(items))
}

func TestReorder_OutOfRangeOnlyRenumbers(t *testing.T) {
	items := []model.LineItem{
		item(model.SideDebit, "USD", "a", "1.00"),
		item(model.SideDebit, "USD", "b", "1.00"),
	}

	items = Reorder(items, 0, 5)
	assert.Equal(t, []string{"a", "b"}, orderedAccounts(items))
	assert.Equal(t, 1, items[0].Order)
	assert.Equal(t, 2, items[1].Order)
}
