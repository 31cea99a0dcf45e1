package suggest

import (
	"github.com/ledgerforms/ledgerforms/internal/config"
	"github.com/ledgerforms/ledgerforms/internal/model"
)

// ChartLookup resolves account codes against the chart of accounts.
type ChartLookup interface {
	Get(code string) (model.Account, bool)
}

// Resolver maps recognized description tags to their whitelisted accounts.
type Resolver struct {
	chart ChartLookup
	byTag map[string][]string
}

// NewResolver creates a Resolver from configured tag suggestions. Codes that
// do not resolve against the chart are dropped at lookup time, not here, so
// a stale config does not fail construction.
func NewResolver(chart ChartLookup, suggestions []config.TagSuggestion) *Resolver {
	byTag := make(map[string][]string, len(suggestions))
	for _, s := range suggestions {
		byTag[s.Tag] = s.Accounts
	}
	return &Resolver{chart: chart, byTag: byTag}
}

// Selection is the account option list shown for a tag, with single-select
// semantics: Selected indexes Options, or is -1 when nothing is selected.
type Selection struct {
	Options  []model.Account
	Selected int
}

// Resolve returns the accounts to offer for a tag.
//
// With no confirmed account the configured accounts are shown in order and
// the first one is pre-selected. A confirmed account (one the user already
// chose, or attached to the row being edited) is prepended and selected
// instead, and the auto-select of the first suggestion is skipped; if it also
// appears in the configured list it simply moves to the front. An
// unrecognized tag with no confirmed account clears everything.
func (r *Resolver) Resolve(tag string, confirmed *model.Account) Selection {
	sel := Selection{Selected: -1}

	if confirmed != nil {
		sel.Options = append(sel.Options, *confirmed)
		sel.Selected = 0
	}

	for _, code := range r.byTag[tag] {
		if confirmed != nil && code == confirmed.Code {
			continue
		}
		a, ok := r.chart.Get(code)
		if !ok {
			continue
		}
		sel.Options = append(sel.Options, a)
	}

	if confirmed == nil && len(sel.Options) > 0 {
		sel.Selected = 0
	}
	return sel
}

// SelectedAccount returns the selected option, if any.
func (s Selection) SelectedAccount() (model.Account, bool) {
	if s.Selected < 0 || s.Selected >= len(s.Options) {
		return model.Account{}, false
	}
	return s.Options[s.Selected], true
}
