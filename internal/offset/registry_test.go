package offset

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

func TestRegistry_Get(t *testing.T) {
	reg := NewRegistry([]model.OriginalLineItem{receivable(1, "10.00"), receivable(2, "20.00")})

	o, ok := reg.Get(2)
	require.True(t, ok)
	assert.True(t, o.BareNetBalance.Equal(dec("20.00")))

	_, ok = reg.Get(99)
	assert.False(t, ok)
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	reg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, reg.All())
}

func TestLoad_RoundTrip(t *testing.T) {
	originals := []model.OriginalLineItem{
		receivable(1, "100.00"),
		{
			ID:             2,
			Date:           time.Date(2026, time.June, 3, 0, 0, 0, 0, time.UTC),
			CurrencyCode:   "EUR",
			Side:           model.SideCredit,
			AccountCode:    "2141",
			Description:    "Office chairs, net 30",
			BareNetBalance: dec("450.00"),
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteOriginals(&buf, originals))

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "originals.csv"), buf.Bytes(), 0o644))

	reg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, originals, reg.All())
}

func TestUnmarshalOriginal_BadRow(t *testing.T) {
	_, err := UnmarshalOriginal([]string{"x", "2026-06-03", "USD", "debit", "1141", "d", "1.00"})
	assert.Error(t, err)

	_, err = UnmarshalOriginal([]string{"1", "June 3", "USD", "debit", "1141", "d", "1.00"})
	assert.Error(t, err)

	_, err = UnmarshalOriginal([]string{"1", "2026-06-03", "USD", "debit", "1141", "d", "abc"})
	assert.Error(t, err)
}
