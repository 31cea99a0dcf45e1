package model

import "strings"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Code        string
	Title       string
	Type        AccountType
	NeedsOffset bool // payable/receivable accounts whose line items must be offset
	Description string
}

// DisplayText returns the code and title as shown in account selectors.
func (a Account) DisplayText() string {
	return a.Code + " " + a.Title
}

// QueryTokens returns the lowercase tokens a free-text account search
// matches against.
func (a Account) QueryTokens() []string {
	tokens := []string{strings.ToLower(a.Code)}
	for _, w := range strings.Fields(strings.ToLower(a.Title)) {
		tokens = append(tokens, w)
	}
	return tokens
}
