package voucher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/ledgerforms/ledgerforms/internal/accounts"
	"github.com/ledgerforms/ledgerforms/internal/config"
	"github.com/ledgerforms/ledgerforms/internal/description"
	"github.com/ledgerforms/ledgerforms/internal/format"
	"github.com/ledgerforms/ledgerforms/internal/model"
	"github.com/ledgerforms/ledgerforms/internal/offset"
	"github.com/ledgerforms/ledgerforms/internal/suggest"
)

// Service ties the description engine, the account suggestions, and the
// offset reconciler to one form session. One instance is constructed per
// book and handed to collaborators; there are no package-level singletons.
type Service struct {
	cfg       *config.Config
	accounts  *accounts.Service
	originals *offset.Registry
	formatter *format.Formatter
	resolver  *suggest.Resolver
}

// NewService creates a Service from its collaborators.
func NewService(cfg *config.Config, accts *accounts.Service, originals *offset.Registry) *Service {
	return &Service{
		cfg:       cfg,
		accounts:  accts,
		originals: originals,
		formatter: format.NewFormatter(cfg.Locale),
		resolver:  suggest.NewResolver(accts, cfg.Suggestions),
	}
}

// LoadService loads config, chart of accounts, and originals from a book root.
func LoadService(bookRoot string) (*Service, error) {
	cfg, err := config.Load(filepath.Join(bookRoot, "ledgerforms.yaml"))
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	accts, err := accounts.Load(bookRoot)
	if err != nil {
		return nil, fmt.Errorf("loading accounts: %w", err)
	}

	originals, err := offset.Load(bookRoot)
	if err != nil {
		return nil, fmt.Errorf("loading originals: %w", err)
	}

	return NewService(cfg, accts, originals), nil
}

// Accounts returns the chart-of-accounts service.
func (s *Service) Accounts() *accounts.Service {
	return s.accounts
}

// Originals returns the offset candidate registry.
func (s *Service) Originals() *offset.Registry {
	return s.originals
}

// Formatter returns the configured amount formatter.
func (s *Service) Formatter() *format.Formatter {
	return s.formatter
}

// DefaultDirection returns the trip direction pre-selected when no trip has
// been parsed yet.
func (s *Service) DefaultDirection() description.Direction {
	if s.cfg.DefaultDirection == string(description.DirectionRoundTrip) {
		return description.DirectionRoundTrip
	}
	return description.DirectionOneWay
}

// RecurringTemplates expands the configured recurring templates for a date.
func (s *Service) RecurringTemplates(asOf time.Time) []description.ExpandedTemplate {
	templates := make([]description.Template, 0, len(s.cfg.Recurring))
	for _, t := range s.cfg.Recurring {
		templates = append(templates, description.Template{Name: t.Name, Pattern: t.Template})
	}
	return description.ExpandTemplates(templates, asOf)
}

// ParseDescription parses a description against the templates for a date.
func (s *Service) ParseDescription(text string, asOf time.Time) description.Shape {
	return description.Parse(text, s.RecurringTemplates(asOf))
}

// SuggestAccounts resolves the account options for a recognized tag.
func (s *Service) SuggestAccounts(tag string, confirmed *model.Account) suggest.Selection {
	return s.resolver.Resolve(tag, confirmed)
}

// OffsetCandidates lists the originals the row being edited may offset.
func (s *Service) OffsetCandidates(q offset.Query) []offset.Candidate {
	return offset.Candidates(s.originals.All(), s.formatter, q)
}

// AmountRange bounds the amount of the row being edited.
func (s *Service) AmountRange(edited model.LineItem, items []model.LineItem) offset.Range {
	return offset.AmountRange(edited, s.originals, items)
}

// Validate runs every form rule against a voucher. Rows loaded from CSV do
// not carry account flags, so the needs-offset flag is resolved against the
// chart first; without it the co-offset amount floor never fires.
func (s *Service) Validate(v model.Voucher) []ValidationError {
	items := make([]model.LineItem, len(v.Items))
	copy(items, v.Items)
	for i := range items {
		if a, ok := s.accounts.Get(items[i].AccountCode); ok {
			items[i].AccountNeedsOffset = a.NeedsOffset
		}
	}
	v.Items = items
	return Validate(v, s.accounts, s.originals)
}
