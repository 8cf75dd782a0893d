// Package domain provides defenitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that a transaction line references an account
	// that is not part of the chart of accounts.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateAccountID indicates that the chart of accounts contains the same id twice.
	ErrDuplicateAccountID = errors.New("duplicate account id")
	// ErrBlankAccountID indicates an account without an id in the chart of accounts.
	ErrBlankAccountID = errors.New("blank account id")
	// ErrInvalidAccountType indicates an unknown account type in the chart of accounts.
	ErrInvalidAccountType = errors.New("invalid account type")
)

// AccountType classifies an account for natural-balance and reporting purposes.
type AccountType string

// All supported account types.
const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes holds all supported account types.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// Valid returns true if t is a supported account type.
func (t AccountType) Valid() bool {
	for _, at := range AccountTypes {
		if t == at {
			return true
		}
	}

	return false
}

// NaturalDebit returns true for account types whose balance increases with
// debits (assets and expenses). The remaining types increase with credits.
func (t AccountType) NaturalDebit() bool {
	return t == Asset || t == Expense
}

// Account holds a chart-of-accounts position and its current balance.
//
// The type is fixed at engine construction and the balance is derived solely
// from applied transaction lines.
type Account struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    AccountType     `json:"type"`
	Balance decimal.Decimal `json:"balance"`
}

// Stats holds the aggregate balances per account type.
// TotalLiabilities is reported as a non-negative magnitude.
type Stats struct {
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
}
