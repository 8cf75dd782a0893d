// Package reports computes read-only projections over ledger snapshots.
//
// Every function is pure: it receives account and journal copies taken from
// the engine and never mutates them. Business rules stay in the engine; the
// projections only group and sum.
package reports

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// displayTolerance is the slack used when flagging a trial balance as
// balanced for display.
var displayTolerance = decimal.New(1, -2) // 0.01

// LedgerRow is a single account movement in the general ledger.
type LedgerRow struct {
	EntryID     string          `json:"entry_id"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Side        domain.Side     `json:"side"`
	Amount      decimal.Decimal `json:"amount"`
	IsClosing   bool            `json:"is_closing"`
}

// AccountLedger holds all movements of one account in posting order.
type AccountLedger struct {
	AccountID   string             `json:"account_id"`
	AccountName string             `json:"account_name"`
	AccountType domain.AccountType `json:"account_type"`
	Balance     decimal.Decimal    `json:"balance"`
	Rows        []LedgerRow        `json:"rows"`
}

// BuildGeneralLedger groups journal lines by account.
func BuildGeneralLedger(accounts []domain.Account, entries []domain.JournalEntry) []AccountLedger {
	ledgers := make([]AccountLedger, 0, len(accounts))

	for _, a := range accounts {
		al := AccountLedger{
			AccountID:   a.ID,
			AccountName: a.Name,
			AccountType: a.Type,
			Balance:     a.Balance,
		}

		for _, e := range entries {
			for _, l := range e.Lines {
				if l.AccountID != a.ID {
					continue
				}

				al.Rows = append(al.Rows, LedgerRow{
					EntryID:     e.ID,
					Date:        e.Date,
					Description: e.Description,
					Side:        l.Side,
					Amount:      l.Amount,
					IsClosing:   e.IsClosing,
				})
			}
		}

		ledgers = append(ledgers, al)
	}

	return ledgers
}

// TrialBalanceRow holds the four columns of one trial balance line.
type TrialBalanceRow struct {
	AccountID    string          `json:"account_id"`
	AccountName  string          `json:"account_name"`
	TotalDebits  decimal.Decimal `json:"total_debits"`
	TotalCredits decimal.Decimal `json:"total_credits"`
	Balance      decimal.Decimal `json:"balance"`
}

// TrialBalance is the four-column trial balance with control sums.
type TrialBalance struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"total_debits"`
	TotalCredits decimal.Decimal   `json:"total_credits"`
	Balanced     bool              `json:"balanced"`
}

// BuildTrialBalance sums debit and credit movements per account and checks
// the control totals against each other.
func BuildTrialBalance(accounts []domain.Account, entries []domain.JournalEntry) TrialBalance {
	var tb TrialBalance

	debits := make(map[string]decimal.Decimal, len(accounts))
	credits := make(map[string]decimal.Decimal, len(accounts))

	for _, e := range entries {
		for _, l := range e.Lines {
			if l.Side == domain.Debit {
				debits[l.AccountID] = debits[l.AccountID].Add(l.Amount)
			} else {
				credits[l.AccountID] = credits[l.AccountID].Add(l.Amount)
			}
		}
	}

	for _, a := range accounts {
		row := TrialBalanceRow{
			AccountID:    a.ID,
			AccountName:  a.Name,
			TotalDebits:  debits[a.ID],
			TotalCredits: credits[a.ID],
			Balance:      a.Balance,
		}

		tb.Rows = append(tb.Rows, row)
		tb.TotalDebits = tb.TotalDebits.Add(row.TotalDebits)
		tb.TotalCredits = tb.TotalCredits.Add(row.TotalCredits)
	}

	tb.Balanced = tb.TotalDebits.Sub(tb.TotalCredits).Abs().LessThan(displayTolerance) &&
		tb.TotalDebits.IsPositive()

	return tb
}

// StatementLine is one account's contribution to a financial statement.
type StatementLine struct {
	AccountID   string          `json:"account_id"`
	AccountName string          `json:"account_name"`
	Balance     decimal.Decimal `json:"balance"`
}

// IncomeStatement breaks the period result down by account.
type IncomeStatement struct {
	RevenueLines  []StatementLine `json:"revenue_lines"`
	ExpenseLines  []StatementLine `json:"expense_lines"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetResult     decimal.Decimal `json:"net_result"`
}

// BuildIncomeStatement lists revenue and expense balances and their net result.
func BuildIncomeStatement(accounts []domain.Account) IncomeStatement {
	var is IncomeStatement

	for _, a := range accounts {
		line := StatementLine{AccountID: a.ID, AccountName: a.Name, Balance: a.Balance}

		switch a.Type {
		case domain.Revenue:
			is.RevenueLines = append(is.RevenueLines, line)
			is.TotalRevenue = is.TotalRevenue.Add(a.Balance)
		case domain.Expense:
			is.ExpenseLines = append(is.ExpenseLines, line)
			is.TotalExpenses = is.TotalExpenses.Add(a.Balance)
		}
	}

	is.NetResult = is.TotalRevenue.Sub(is.TotalExpenses)

	return is
}

// BalanceSheet lays assets against liabilities, equity and the current result.
type BalanceSheet struct {
	AssetLines       []StatementLine `json:"asset_lines"`
	LiabilityLines   []StatementLine `json:"liability_lines"`
	EquityLines      []StatementLine `json:"equity_lines"`
	TotalAssets      decimal.Decimal `json:"total_assets"`
	TotalLiabilities decimal.Decimal `json:"total_liabilities"`
	TotalEquity      decimal.Decimal `json:"total_equity"`
	CurrentResult    decimal.Decimal `json:"current_result"`
	Balanced         bool            `json:"balanced"`
}

// BuildBalanceSheet checks the accounting identity
// Assets = Liabilities + Equity + (Revenue - Expenses).
func BuildBalanceSheet(accounts []domain.Account) BalanceSheet {
	var bs BalanceSheet

	var revenue, expenses decimal.Decimal

	for _, a := range accounts {
		line := StatementLine{AccountID: a.ID, AccountName: a.Name, Balance: a.Balance}

		switch a.Type {
		case domain.Asset:
			bs.AssetLines = append(bs.AssetLines, line)
			bs.TotalAssets = bs.TotalAssets.Add(a.Balance)
		case domain.Liability:
			bs.LiabilityLines = append(bs.LiabilityLines, line)
			bs.TotalLiabilities = bs.TotalLiabilities.Add(a.Balance)
		case domain.Equity:
			bs.EquityLines = append(bs.EquityLines, line)
			bs.TotalEquity = bs.TotalEquity.Add(a.Balance)
		case domain.Revenue:
			revenue = revenue.Add(a.Balance)
		case domain.Expense:
			expenses = expenses.Add(a.Balance)
		}
	}

	bs.CurrentResult = revenue.Sub(expenses)
	bs.Balanced = bs.TotalAssets.Equal(bs.TotalLiabilities.Add(bs.TotalEquity).Add(bs.CurrentResult))

	return bs
}
