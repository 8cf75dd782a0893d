package ledgerengine

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/randompkg"
)

func testChart() []domain.Account {
	return []domain.Account{
		{ID: "cash", Name: "Cash", Type: domain.Asset},
		{ID: "receivables", Name: "Accounts Receivable", Type: domain.Asset},
		{ID: "payables", Name: "Accounts Payable", Type: domain.Liability},
		{ID: "capital", Name: "Share Capital", Type: domain.Equity},
		{ID: "retained", Name: "Retained Earnings", Type: domain.Equity},
		{ID: "sales", Name: "Sales Revenue", Type: domain.Revenue},
		{ID: "opex", Name: "Operating Expenses", Type: domain.Expense},
	}
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	engine, err := New(testChart(), opts...)
	require.NoError(t, err)

	return engine
}

func simpleParams(key string, amount decimal.Decimal) domain.PostEntryParams {
	return domain.PostEntryParams{
		Date:        time.Now().UTC(),
		Description: randompkg.Description(),
		Lines: []domain.TransactionLine{
			{AccountID: "cash", Side: domain.Debit, Amount: amount},
			{AccountID: "sales", Side: domain.Credit, Amount: amount},
		},
		IdempotencyKey: key,
	}
}

func balanceOf(t *testing.T, engine *Engine, accountID string) decimal.Decimal {
	t.Helper()

	for _, a := range engine.Accounts() {
		if a.ID == accountID {
			return a.Balance
		}
	}

	t.Fatalf("account %q not found in snapshot", accountID)

	return decimal.Decimal{}
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		chart   []domain.Account
		wantErr error
	}{
		{
			name:  "OK",
			chart: testChart(),
		},
		{
			name:  "EmptyChart",
			chart: nil,
		},
		{
			name: "BlankAccountID",
			chart: []domain.Account{
				{ID: "", Name: "Cash", Type: domain.Asset},
			},
			wantErr: domain.ErrBlankAccountID,
		},
		{
			name: "DuplicateAccountID",
			chart: []domain.Account{
				{ID: "cash", Name: "Cash", Type: domain.Asset},
				{ID: "cash", Name: "Cash Again", Type: domain.Asset},
			},
			wantErr: domain.ErrDuplicateAccountID,
		},
		{
			name: "InvalidAccountType",
			chart: []domain.Account{
				{ID: "cash", Name: "Cash", Type: "CASHFLOW"},
			},
			wantErr: domain.ErrInvalidAccountType,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			engine, err := New(tc.chart)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, engine)

				return
			}

			require.NoError(t, err)
			require.Len(t, engine.Accounts(), len(tc.chart))
			require.Empty(t, engine.Entries())
		})
	}
}

func TestNewCopiesChart(t *testing.T) {
	chart := testChart()

	engine, err := New(chart)
	require.NoError(t, err)

	chart[0].Name = "mutated"
	chart[0].Balance = decimal.NewFromInt(1_000_000)

	got := engine.Accounts()
	require.Equal(t, "Cash", got[0].Name)
	require.True(t, got[0].Balance.IsZero())
}

func TestPostTransaction(t *testing.T) {
	amount100 := decimal.NewFromInt(100)

	testCases := []struct {
		name       string
		opts       []Option
		setup      func(t *testing.T, engine *Engine)
		params     domain.PostEntryParams
		wantErr    error
		wantErrMsg string
	}{
		{
			name:   "OK",
			params: simpleParams("k1", amount100),
		},
		{
			name: "DuplicateIdempotencyKey",
			setup: func(t *testing.T, engine *Engine) {
				_, err := engine.PostTransaction(simpleParams("k1", amount100))
				require.NoError(t, err)
			},
			params:  simpleParams("k1", amount100),
			wantErr: domain.ErrDuplicateTransaction,
		},
		{
			name: "UnbalancedEntry",
			params: domain.PostEntryParams{
				Description: "unbalanced",
				Lines: []domain.TransactionLine{
					{AccountID: "cash", Side: domain.Debit, Amount: amount100},
					{AccountID: "sales", Side: domain.Credit, Amount: decimal.RequireFromString("99.99")},
				},
				IdempotencyKey: "k2",
			},
			wantErr:    domain.ErrUnbalancedEntry,
			wantErrMsg: "debits (100.00) != credits (99.99)",
		},
		{
			name: "WithinTolerance",
			params: domain.PostEntryParams{
				Description: "rounding dust",
				Lines: []domain.TransactionLine{
					{AccountID: "cash", Side: domain.Debit, Amount: decimal.RequireFromString("100.0005")},
					{AccountID: "sales", Side: domain.Credit, Amount: amount100},
				},
				IdempotencyKey: "k3",
			},
		},
		{
			name: "NoLines",
			params: domain.PostEntryParams{
				Description:    "empty",
				IdempotencyKey: "k4",
			},
			wantErr: domain.ErrEmptyEntry,
		},
		{
			name: "NegativeAmount",
			params: domain.PostEntryParams{
				Description: "negative",
				Lines: []domain.TransactionLine{
					{AccountID: "cash", Side: domain.Debit, Amount: decimal.NewFromInt(-100)},
					{AccountID: "sales", Side: domain.Credit, Amount: decimal.NewFromInt(-100)},
				},
				IdempotencyKey: "k5",
			},
			wantErr: domain.ErrNegativeAmount,
		},
		{
			name: "UnknownAccount",
			params: domain.PostEntryParams{
				Description: "unknown account",
				Lines: []domain.TransactionLine{
					{AccountID: "cash", Side: domain.Debit, Amount: amount100},
					{AccountID: "nonexistent", Side: domain.Credit, Amount: amount100},
				},
				IdempotencyKey: "k6",
			},
			wantErr: domain.ErrAccountNotFound,
		},
		{
			name: "ZeroTotalAcceptedByDefault",
			params: domain.PostEntryParams{
				Description: "degenerate",
				Lines: []domain.TransactionLine{
					{AccountID: "cash", Side: domain.Debit, Amount: decimal.Zero},
					{AccountID: "sales", Side: domain.Credit, Amount: decimal.Zero},
				},
				IdempotencyKey: "k7",
			},
		},
		{
			name: "ZeroTotalRejectedByPolicy",
			opts: []Option{RejectZeroTotal()},
			params: domain.PostEntryParams{
				Description: "degenerate",
				Lines: []domain.TransactionLine{
					{AccountID: "cash", Side: domain.Debit, Amount: decimal.Zero},
					{AccountID: "sales", Side: domain.Credit, Amount: decimal.Zero},
				},
				IdempotencyKey: "k8",
			},
			wantErr: domain.ErrZeroTotalEntry,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			engine := newTestEngine(t, tc.opts...)

			if tc.setup != nil {
				tc.setup(t, engine)
			}

			accountsBefore := engine.Accounts()
			entriesBefore := engine.Entries()

			entry, err := engine.PostTransaction(tc.params)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				if tc.wantErrMsg != "" {
					require.Contains(t, err.Error(), tc.wantErrMsg)
				}

				// A rejected call must leave engine state untouched.
				if diff := cmp.Diff(accountsBefore, engine.Accounts()); diff != "" {
					t.Errorf("accounts mismatch after rejected post (-want +got):\n%s", diff)
				}
				if diff := cmp.Diff(entriesBefore, engine.Entries()); diff != "" {
					t.Errorf("entries mismatch after rejected post (-want +got):\n%s", diff)
				}

				return
			}

			require.NoError(t, err)
			require.NotEmpty(t, entry.ID)
			require.Equal(t, tc.params.IdempotencyKey, entry.IdempotencyKey)

			entries := engine.Entries()
			require.Len(t, entries, len(entriesBefore)+1)
			require.Equal(t, entry, entries[len(entries)-1])
		})
	}
}

func TestPostTransactionScenario(t *testing.T) {
	engine := newTestEngine(t)
	amount100 := decimal.NewFromInt(100)

	// Scenario A: debit Cash 100 / credit Sales 100.
	_, err := engine.PostTransaction(simpleParams("k1", amount100))
	require.NoError(t, err)
	require.True(t, balanceOf(t, engine, "cash").Equal(amount100))
	require.True(t, balanceOf(t, engine, "sales").Equal(amount100))

	// Scenario B: same key again fails and changes nothing.
	_, err = engine.PostTransaction(simpleParams("k1", amount100))
	require.ErrorIs(t, err, domain.ErrDuplicateTransaction)
	require.True(t, balanceOf(t, engine, "cash").Equal(amount100))
	require.True(t, balanceOf(t, engine, "sales").Equal(amount100))

	// Scenario C: unbalanced entry fails and changes nothing.
	_, err = engine.PostTransaction(domain.PostEntryParams{
		Description: "unbalanced",
		Lines: []domain.TransactionLine{
			{AccountID: "cash", Side: domain.Debit, Amount: amount100},
			{AccountID: "sales", Side: domain.Credit, Amount: decimal.RequireFromString("99.99")},
		},
		IdempotencyKey: "k2",
	})
	require.ErrorIs(t, err, domain.ErrUnbalancedEntry)
	require.True(t, balanceOf(t, engine, "cash").Equal(amount100))
	require.True(t, balanceOf(t, engine, "sales").Equal(amount100))
}

func TestPostTransactionAllOrNothing(t *testing.T) {
	engine := newTestEngine(t)

	// The first line references a valid account but the entry must not be
	// applied at all because the last line does not.
	_, err := engine.PostTransaction(domain.PostEntryParams{
		Description: "partially valid",
		Lines: []domain.TransactionLine{
			{AccountID: "cash", Side: domain.Debit, Amount: decimal.NewFromInt(70)},
			{AccountID: "receivables", Side: domain.Debit, Amount: decimal.NewFromInt(30)},
			{AccountID: "ghost", Side: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
		IdempotencyKey: "k1",
	})
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	for _, a := range engine.Accounts() {
		require.True(t, a.Balance.IsZero(), "account %q balance = %s, want 0", a.ID, a.Balance)
	}

	require.Empty(t, engine.Entries())

	// The key must remain usable.
	_, err = engine.PostTransaction(simpleParams("k1", decimal.NewFromInt(10)))
	require.NoError(t, err)
}

func TestDeleteTransaction(t *testing.T) {
	engine := newTestEngine(t)
	amount100 := decimal.NewFromInt(100)

	entry, err := engine.PostTransaction(simpleParams("k1", amount100))
	require.NoError(t, err)

	// Unknown id fails without touching state.
	err = engine.DeleteTransaction("no-such-entry")
	require.ErrorIs(t, err, domain.ErrEntryNotFound)
	require.Len(t, engine.Entries(), 1)

	// Scenario D: deletion restores both balances and releases the key.
	err = engine.DeleteTransaction(entry.ID)
	require.NoError(t, err)
	require.True(t, balanceOf(t, engine, "cash").IsZero())
	require.True(t, balanceOf(t, engine, "sales").IsZero())
	require.Empty(t, engine.Entries())

	_, err = engine.PostTransaction(simpleParams("k1", amount100))
	require.NoError(t, err)
}

func TestDeleteTransactionIsExactInverse(t *testing.T) {
	engine := newTestEngine(t)

	// Seed some history so reversal happens on non-zero balances.
	_, err := engine.PostTransaction(domain.PostEntryParams{
		Description: "seed",
		Lines: []domain.TransactionLine{
			{AccountID: "cash", Side: domain.Debit, Amount: decimal.RequireFromString("250.4817")},
			{AccountID: "capital", Side: domain.Credit, Amount: decimal.RequireFromString("250.4817")},
		},
		IdempotencyKey: "seed",
	})
	require.NoError(t, err)

	before := engine.Accounts()

	amount := randompkg.AmountBetween(0.01, 10_000)
	entry, err := engine.PostTransaction(domain.PostEntryParams{
		Description: randompkg.Description(),
		Lines: []domain.TransactionLine{
			{AccountID: "receivables", Side: domain.Debit, Amount: amount},
			{AccountID: "opex", Side: domain.Debit, Amount: amount},
			{AccountID: "sales", Side: domain.Credit, Amount: amount},
			{AccountID: "payables", Side: domain.Credit, Amount: amount},
		},
		IdempotencyKey: randompkg.IdempotencyKey(),
	})
	require.NoError(t, err)

	require.NoError(t, engine.DeleteTransaction(entry.ID))

	if diff := cmp.Diff(before, engine.Accounts()); diff != "" {
		t.Errorf("balances not restored after delete (-want +got):\n%s", diff)
	}
}

func TestUpdateTransaction(t *testing.T) {
	amount100 := decimal.NewFromInt(100)
	amount150 := decimal.NewFromInt(150)

	t.Run("OK", func(t *testing.T) {
		engine := newTestEngine(t)

		oldEntry, err := engine.PostTransaction(simpleParams("k1", amount100))
		require.NoError(t, err)

		newEntry, err := engine.UpdateTransaction(oldEntry.ID, simpleParams("k2", amount150))
		require.NoError(t, err)
		require.NotEqual(t, oldEntry.ID, newEntry.ID)

		require.True(t, balanceOf(t, engine, "cash").Equal(amount150))
		require.True(t, balanceOf(t, engine, "sales").Equal(amount150))

		entries := engine.Entries()
		require.Len(t, entries, 1)
		require.Equal(t, newEntry, entries[0])

		// The old key was released by the delete phase.
		_, err = engine.PostTransaction(simpleParams("k1", amount100))
		require.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		engine := newTestEngine(t)

		_, err := engine.UpdateTransaction("no-such-entry", simpleParams("k1", amount100))
		require.ErrorIs(t, err, domain.ErrEntryNotFound)
		require.Empty(t, engine.Entries())
	})

	// The delete-then-post sequence is not atomic: a failing post leaves the
	// old entry deleted. This pins the current behavior on purpose.
	t.Run("FailedPostDoesNotRestoreOldEntry", func(t *testing.T) {
		engine := newTestEngine(t)

		oldEntry, err := engine.PostTransaction(simpleParams("k1", amount100))
		require.NoError(t, err)

		_, err = engine.UpdateTransaction(oldEntry.ID, domain.PostEntryParams{
			Description: "unbalanced replacement",
			Lines: []domain.TransactionLine{
				{AccountID: "cash", Side: domain.Debit, Amount: amount150},
				{AccountID: "sales", Side: domain.Credit, Amount: amount100},
			},
			IdempotencyKey: "k2",
		})
		require.ErrorIs(t, err, domain.ErrUnbalancedEntry)

		require.Empty(t, engine.Entries())
		require.True(t, balanceOf(t, engine, "cash").IsZero())
		require.True(t, balanceOf(t, engine, "sales").IsZero())
	})
}

func TestClosingEntry(t *testing.T) {
	engine := newTestEngine(t)

	// Build up Revenue=500 and Expense=200.
	_, err := engine.PostTransaction(domain.PostEntryParams{
		Description: "sales for the period",
		Lines: []domain.TransactionLine{
			{AccountID: "cash", Side: domain.Debit, Amount: decimal.NewFromInt(500)},
			{AccountID: "sales", Side: domain.Credit, Amount: decimal.NewFromInt(500)},
		},
		IdempotencyKey: "k1",
	})
	require.NoError(t, err)

	_, err = engine.PostTransaction(domain.PostEntryParams{
		Description: "expenses for the period",
		Lines: []domain.TransactionLine{
			{AccountID: "opex", Side: domain.Debit, Amount: decimal.NewFromInt(200)},
			{AccountID: "cash", Side: domain.Credit, Amount: decimal.NewFromInt(200)},
		},
		IdempotencyKey: "k2",
	})
	require.NoError(t, err)

	// Scenario E: close revenue and expenses into retained earnings.
	closing, err := engine.PostTransaction(domain.PostEntryParams{
		Description: "year-end closing",
		Lines: []domain.TransactionLine{
			{AccountID: "sales", Side: domain.Debit, Amount: decimal.NewFromInt(500)},
			{AccountID: "opex", Side: domain.Credit, Amount: decimal.NewFromInt(200)},
			{AccountID: "retained", Side: domain.Credit, Amount: decimal.NewFromInt(300)},
		},
		IdempotencyKey: "close",
		IsClosing:      true,
	})
	require.NoError(t, err)
	require.True(t, closing.IsClosing)

	require.True(t, balanceOf(t, engine, "sales").IsZero())
	require.True(t, balanceOf(t, engine, "opex").IsZero())
	require.True(t, balanceOf(t, engine, "retained").Equal(decimal.NewFromInt(300)))

	// Reopening restores the pre-closing balances.
	require.NoError(t, engine.DeleteTransaction(closing.ID))
	require.True(t, balanceOf(t, engine, "sales").Equal(decimal.NewFromInt(500)))
	require.True(t, balanceOf(t, engine, "opex").Equal(decimal.NewFromInt(200)))
	require.True(t, balanceOf(t, engine, "retained").IsZero())
}

// TestBalanceInvariant posts a sequence of random balanced entries and checks
// that sum(balance * naturalSign) over all accounts stays zero throughout.
func TestBalanceInvariant(t *testing.T) {
	engine := newTestEngine(t)
	chart := testChart()

	checkInvariant := func() {
		var sum decimal.Decimal

		for _, a := range engine.Accounts() {
			if a.Type.NaturalDebit() {
				sum = sum.Add(a.Balance)
			} else {
				sum = sum.Sub(a.Balance)
			}
		}

		require.True(t, sum.IsZero(), "accounting identity violated: signed balance sum = %s", sum)
	}

	var posted []string

	for i := 0; i < 50; i++ {
		debitAccount := chart[randompkg.Intn(len(chart))]
		creditAccount := chart[randompkg.Intn(len(chart))]
		amount := randompkg.AmountBetween(0.01, 5_000)

		entry, err := engine.PostTransaction(domain.PostEntryParams{
			Description: randompkg.Description(),
			Lines: []domain.TransactionLine{
				{AccountID: debitAccount.ID, Side: domain.Debit, Amount: amount},
				{AccountID: creditAccount.ID, Side: domain.Credit, Amount: amount},
			},
			IdempotencyKey: randompkg.IdempotencyKey(),
		})
		require.NoError(t, err)

		posted = append(posted, entry.ID)

		checkInvariant()
	}

	// Deleting random entries must keep the identity as well.
	for _, id := range posted[:25] {
		require.NoError(t, engine.DeleteTransaction(id))
		checkInvariant()
	}
}

func TestSnapshotsDoNotAlias(t *testing.T) {
	engine := newTestEngine(t)

	entry, err := engine.PostTransaction(simpleParams("k1", decimal.NewFromInt(100)))
	require.NoError(t, err)

	accounts := engine.Accounts()
	accounts[0].Balance = decimal.NewFromInt(999_999)
	accounts[0].Name = "mutated"

	entries := engine.Entries()
	entries[0].Description = "mutated"
	entries[0].Lines[0].Amount = decimal.NewFromInt(999_999)

	gotAccounts := engine.Accounts()
	require.Equal(t, "Cash", gotAccounts[0].Name)
	require.True(t, gotAccounts[0].Balance.Equal(decimal.NewFromInt(100)))

	gotEntries := engine.Entries()
	require.Equal(t, entry.Description, gotEntries[0].Description)
	require.True(t, gotEntries[0].Lines[0].Amount.Equal(decimal.NewFromInt(100)))
}

func TestStats(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.PostTransaction(domain.PostEntryParams{
		Description: "loan received",
		Lines: []domain.TransactionLine{
			{AccountID: "cash", Side: domain.Debit, Amount: decimal.NewFromInt(1_000)},
			{AccountID: "payables", Side: domain.Credit, Amount: decimal.NewFromInt(1_000)},
		},
		IdempotencyKey: "k1",
	})
	require.NoError(t, err)

	_, err = engine.PostTransaction(domain.PostEntryParams{
		Description: "cash sale with costs",
		Lines: []domain.TransactionLine{
			{AccountID: "cash", Side: domain.Debit, Amount: decimal.NewFromInt(400)},
			{AccountID: "opex", Side: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountID: "sales", Side: domain.Credit, Amount: decimal.NewFromInt(500)},
		},
		IdempotencyKey: "k2",
	})
	require.NoError(t, err)

	stats := engine.Stats()
	require.True(t, stats.TotalAssets.Equal(decimal.NewFromInt(1_400)))
	require.True(t, stats.TotalLiabilities.Equal(decimal.NewFromInt(1_000)))
	require.True(t, stats.TotalRevenue.Equal(decimal.NewFromInt(500)))
	require.True(t, stats.TotalExpenses.Equal(decimal.NewFromInt(100)))
}
