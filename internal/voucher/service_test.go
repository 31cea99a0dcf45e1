package voucher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerforms/ledgerforms/internal/accounts"
	"github.com/ledgerforms/ledgerforms/internal/config"
	"github.com/ledgerforms/ledgerforms/internal/description"
	"github.com/ledgerforms/ledgerforms/internal/model"
	"github.com/ledgerforms/ledgerforms/internal/offset"
)

func newTestService() *Service {
	accts := accounts.NewService(accounts.DefaultChart())
	originals := offset.NewRegistry([]model.OriginalLineItem{{
		ID:             7,
		Date:           date(2026, time.July, 1),
		CurrencyCode:   "USD",
		Side:           model.SideDebit,
		AccountCode:    "1141",
		Description:    "July invoice",
		BareNetBalance: dec("50.00"),
	}})
	return NewService(config.Default(), accts, originals)
}

func TestService_ParseDescription(t *testing.T) {
	s := newTestService()

	shape := s.ParseDescription("Rent for August", date(2026, time.August, 1))
	r, ok := shape.(description.Recurring)
	require.True(t, ok, "the configured rent template matches for an August date")
	assert.Equal(t, "rent", r.Name)

	shape = s.ParseDescription("Rent for August", date(2026, time.September, 1))
	_, ok = shape.(description.Annotation)
	assert.True(t, ok, "the same text no longer matches once the form date moves on")
}

func TestService_SuggestAccounts(t *testing.T) {
	s := newTestService()

	sel := s.SuggestAccounts("Bus", nil)
	require.Len(t, sel.Options, 1)
	assert.Equal(t, "6260", sel.Options[0].Code)
	assert.Equal(t, 0, sel.Selected)
}

func TestService_OffsetCandidates(t *testing.T) {
	s := newTestService()

	got := s.OffsetCandidates(offset.Query{
		Side:         model.SideCredit,
		CurrencyCode: "USD",
		Date:         date(2026, time.August, 1),
	})
	require.Len(t, got, 1)
	assert.True(t, got[0].NetBalance.Equal(dec("50.00")))
}

func TestService_ValidateResolvesNeedsOffsetFromChart(t *testing.T) {
	accts := accounts.NewService(accounts.DefaultChart())
	originals := offset.NewRegistry([]model.OriginalLineItem{{
		ID:             42,
		Date:           date(2026, time.July, 1),
		CurrencyCode:   "USD",
		Side:           model.SideDebit,
		AccountCode:    "1141",
		BareNetBalance: dec("50.00"),
	}})
	s := NewService(config.Default(), accts, originals)

	// Rows as they come off voucher.csv: no account flags set. The first is
	// a posted receivable row shrunk to 20.00 while the second stages a
	// 30.00 offset against it.
	posted := item(model.SideDebit, "USD", "1141", "20.00")
	posted.ID = 42

	co := item(model.SideCredit, "USD", "1141", "30.00")
	co.OriginalLineItemID = 42
	co.OriginalLineItemDate = date(2026, time.July, 1)

	v := model.Voucher{
		Date: date(2026, time.August, 1),
		Items: []model.LineItem{
			posted,
			co,
			item(model.SideCredit, "USD", "1111", "20.00"),
			item(model.SideDebit, "USD", "6272", "30.00"),
		},
	}

	errs := s.Validate(v)
	assert.Contains(t, messages(errs),
		"amount 20.00 is less than the 30.00 already offset against this line item")
}

func TestService_DefaultDirection(t *testing.T) {
	s := newTestService()
	assert.Equal(t, description.DirectionOneWay, s.DefaultDirection())
}

func TestLoadService(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, config.Save(root+"/ledgerforms.yaml", config.Default()))
	require.NoError(t, accounts.NewService(accounts.DefaultChart()).Save(root))

	s, err := LoadService(root)
	require.NoError(t, err)
	assert.True(t, s.Accounts().Exists("1141"))
	assert.Empty(t, s.Originals().All(), "a book without originals.csv has nothing to offset")
}

func TestLoadService_MissingConfig(t *testing.T) {
	_, err := LoadService(t.TempDir())
	assert.Error(t, err)
}
