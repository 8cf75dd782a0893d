// Package chart provides the chart of accounts the engine is constructed with.
package chart

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// RetainedEarningsID is the equity account closing entries settle into.
const RetainedEarningsID = "acc-10"

// Default returns the built-in chart of accounts.
func Default() []domain.Account {
	return []domain.Account{
		{ID: "acc-1", Name: "Cash / Bank", Type: domain.Asset},
		{ID: "acc-2", Name: "Accounts Receivable", Type: domain.Asset},
		{ID: "acc-3", Name: "Inventory", Type: domain.Asset},
		{ID: "acc-4", Name: "Accounts Payable", Type: domain.Liability},
		{ID: "acc-5", Name: "Loans", Type: domain.Liability},
		{ID: "acc-6", Name: "Sales Revenue", Type: domain.Revenue},
		{ID: "acc-7", Name: "Operating Expenses", Type: domain.Expense},
		{ID: "acc-8", Name: "Salary Expenses", Type: domain.Expense},
		{ID: "acc-9", Name: "Share Capital", Type: domain.Equity},
		{ID: RetainedEarningsID, Name: "Retained Earnings", Type: domain.Equity},
	}
}

// Load reads a chart of accounts from a JSON file. Balances in the file are
// ignored; every account starts at zero.
func Load(path string) ([]domain.Account, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chart file: %w", err)
	}

	var accounts []domain.Account

	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("parsing chart file %s: %w", path, err)
	}

	for i := range accounts {
		accounts[i].Balance = decimal.Zero
	}

	return accounts, nil
}
