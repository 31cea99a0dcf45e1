package accounts

import "github.com/ledgerforms/ledgerforms/internal/model"

// DefaultChart returns the default chart of accounts for a new book.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: "1111", Title: "Cash", Type: model.AccountTypeAsset},
		{Code: "1113", Title: "Bank", Type: model.AccountTypeAsset, Description: "Primary bank account"},
		{Code: "1141", Title: "Accounts Receivable", Type: model.AccountTypeAsset, NeedsOffset: true},
		{Code: "2141", Title: "Accounts Payable", Type: model.AccountTypeLiability, NeedsOffset: true},
		{Code: "3351", Title: "Accumulated Surplus", Type: model.AccountTypeEquity},
		{Code: "4010", Title: "Salary Revenue", Type: model.AccountTypeRevenue},
		{Code: "4020", Title: "Service Revenue", Type: model.AccountTypeRevenue},
		{Code: "6260", Title: "Travel Expense", Type: model.AccountTypeExpense, Description: "Bus, rail, taxi fares"},
		{Code: "6272", Title: "Meal Expense", Type: model.AccountTypeExpense},
		{Code: "6290", Title: "Utilities Expense", Type: model.AccountTypeExpense},
	}
}
