package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledgerforms/ledgerforms/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return &Service{accounts: accounts, byCode: byCode}
}

// Load reads chart-of-accounts.csv from a book root and returns a Service.
func Load(bookRoot string) (*Service, error) {
	path := filepath.Join(bookRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// NeedingOffset returns the accounts whose line items must be offset.
func (s *Service) NeedingOffset() []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.NeedsOffset {
			result = append(result, a)
		}
	}
	return result
}

// Search returns the accounts whose query tokens contain the keyword,
// case-insensitively. An empty keyword matches everything.
func (s *Service) Search(keyword string) []model.Account {
	if keyword == "" {
		return s.accounts
	}
	kw := strings.ToLower(keyword)
	var result []model.Account
	for _, a := range s.accounts {
		for _, tok := range a.QueryTokens() {
			if strings.Contains(tok, kw) {
				result = append(result, a)
				break
			}
		}
	}
	return result
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(bookRoot string) error {
	dir := filepath.Join(bookRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
