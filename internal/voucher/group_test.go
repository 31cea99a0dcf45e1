package voucher

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func item(side model.Side, currency, account, amount string) model.LineItem {
	it := model.NewLineItem(side, currency)
	it.AccountCode = account
	if amount != "" {
		it.Amount = decimal.NewNullDecimal(dec(amount))
	}
	return it
}

func TestGroup_SplitsByCurrencyAndSide(t *testing.T) {
	items := []model.LineItem{
		item(model.SideDebit, "USD", "6272", "40.00"),
		item(model.SideCredit, "USD", "1111", "40.00"),
		item(model.SideDebit, "EUR", "6260", "15.00"),
		item(model.SideCredit, "EUR", "1113", "15.00"),
		item(model.SideDebit, "USD", "6260", "5.00"),
	}

	groups := Group(items)
	require.Len(t, groups, 2)
	assert.Equal(t, "USD", groups[0].CurrencyCode)
	assert.Len(t, groups[0].DebitItems, 2)
	assert.Len(t, groups[0].CreditItems, 1)
	assert.Equal(t, "EUR", groups[1].CurrencyCode)
}

func TestSideTotal_SkipsIncompleteRows(t *testing.T) {
	items := []model.LineItem{
		item(model.SideDebit, "USD", "6272", "40.00"),
		item(model.SideDebit, "USD", "6260", ""),
	}
	assert.True(t, SideTotal(items).Equal(dec("40.00")))
}

func TestBalanced(t *testing.T) {
	g := CurrencyGroup{
		CurrencyCode: "USD",
		DebitItems:   []model.LineItem{item(model.SideDebit, "USD", "6272", "100.00")},
		CreditItems:  []model.LineItem{item(model.SideCredit, "USD", "1111", "100.00")},
	}
	assert.True(t, g.Balanced())

	g.CreditItems[0].Amount = decimal.NewNullDecimal(dec("100.01"))
	assert.False(t, g.Balanced(), "no tolerance: 100.00 vs 100.01 must fail")
}

func TestCurrencyLocked(t *testing.T) {
	g := CurrencyGroup{
		CurrencyCode: "USD",
		DebitItems:   []model.LineItem{item(model.SideDebit, "USD", "6272", "10.00")},
		CreditItems:  []model.LineItem{item(model.SideCredit, "USD", "1141", "10.00")},
	}
	assert.False(t, g.CurrencyLocked())

	g.CreditItems[0].OriginalLineItemID = 7
	assert.True(t, g.CurrencyLocked(), "a staged offset pins the group's currency")
}

func TestCanDelete(t *testing.T) {
	a := item(model.SideDebit, "USD", "6272", "10.00")
	b := item(model.SideDebit, "USD", "6260", "5.00")
	c := item(model.SideCredit, "USD", "1111", "15.00")
	g := Group([]model.LineItem{a, b, c})[0]

	assert.True(t, CanDelete(a, g))
	assert.False(t, CanDelete(c, g), "the last row on a side stays")

	matched := a
	matched.OriginalLineItemID = 7
	assert.False(t, CanDelete(matched, g), "offsetting rows are immutable")
}

func TestDateFloor(t *testing.T) {
	plain := item(model.SideDebit, "USD", "6272", "10.00")

	_, ok := DateFloor([]model.LineItem{plain})
	assert.False(t, ok)

	early := item(model.SideCredit, "USD", "1141", "4.00")
	early.OriginalLineItemID = 1
	early.OriginalLineItemDate = date(2026, time.June, 1)

	late := item(model.SideCredit, "USD", "1141", "6.00")
	late.OriginalLineItemID = 2
	late.OriginalLineItemDate = date(2026, time.July, 15)

	floor, ok := DateFloor([]model.LineItem{plain, early, late})
	require.True(t, ok)
	assert.Equal(t, date(2026, time.July, 15), floor)
}
