package offset

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

// Registry holds the original line items available for offsetting during one
// form session. Bare net balances are fixed for its lifetime.
type Registry struct {
	originals []model.OriginalLineItem
	byID      map[int64]model.OriginalLineItem
}

// NewRegistry creates a Registry from a slice of original line items.
func NewRegistry(originals []model.OriginalLineItem) *Registry {
	byID := make(map[int64]model.OriginalLineItem, len(originals))
	for _, o := range originals {
		byID[o.ID] = o
	}
	return &Registry{originals: originals, byID: byID}
}

// Load reads originals.csv from a book root. A missing file is an empty
// registry, not an error: a book with nothing to offset is normal.
func Load(bookRoot string) (*Registry, error) {
	path := filepath.Join(bookRoot, "originals.csv")
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening originals: %w", err)
	}
	defer f.Close()

	originals, err := ReadOriginals(f)
	if err != nil {
		return nil, fmt.Errorf("reading originals: %w", err)
	}
	return NewRegistry(originals), nil
}

// All returns all original line items.
func (r *Registry) All() []model.OriginalLineItem {
	return r.originals
}

// Get returns an original line item by ID.
func (r *Registry) Get(id int64) (model.OriginalLineItem, bool) {
	o, ok := r.byID[id]
	return o, ok
}
