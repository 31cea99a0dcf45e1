package accounts

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAndExists(t *testing.T) {
	s := NewService(DefaultChart())

	a, ok := s.Get("1141")
	require.True(t, ok)
	assert.Equal(t, "Accounts Receivable", a.Title)
	assert.True(t, a.NeedsOffset)

	assert.True(t, s.Exists("6260"))
	assert.False(t, s.Exists("9999"))
}

func TestNeedingOffset(t *testing.T) {
	s := NewService(DefaultChart())

	var codes []string
	for _, a := range s.NeedingOffset() {
		codes = append(codes, a.Code)
	}
	assert.Equal(t, []string{"1141", "2141"}, codes)
}

func TestSearch(t *testing.T) {
	s := NewService(DefaultChart())

	found := s.Search("receivable")
	require.Len(t, found, 1)
	assert.Equal(t, "1141", found[0].Code)

	byCode := s.Search("626")
	require.Len(t, byCode, 1)
	assert.Equal(t, "Travel Expense", byCode[0].Title)

	assert.Len(t, s.Search(""), len(DefaultChart()))
}

func TestSaveAndLoad(t *testing.T) {
	root := t.TempDir()

	s := NewService(DefaultChart())
	require.NoError(t, s.Save(root))

	loaded, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, s.All(), loaded.All())
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "empty"))
	assert.Error(t, err)
}
