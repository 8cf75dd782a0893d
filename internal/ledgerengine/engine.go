// Package ledgerengine implements the double-entry bookkeeping core.
//
// The engine owns the chart of accounts, the journal and the idempotency key
// set. Every mutation routes through PostTransaction, DeleteTransaction or
// UpdateTransaction; readers only ever receive copies of engine state.
package ledgerengine

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// balanceTolerance is the accepted absolute difference between total debits
// and total credits of a single entry.
var balanceTolerance = decimal.New(1, -3) // 0.001

// Option configures engine policy.
type Option func(*Engine)

// RejectZeroTotal makes the engine reject entries whose debit and credit
// totals are both zero. The default accepts them since 0 == 0 passes the
// balance check.
func RejectZeroTotal() Option {
	return func(e *Engine) { e.rejectZeroTotal = true }
}

// Engine holds the ledger state and enforces the accounting identity.
//
// A single mutex serializes all operations; the validate-then-mutate
// sequences below are not safe under interleaving.
type Engine struct {
	mu sync.Mutex

	accounts map[string]*domain.Account
	order    []string // account ids in chart order
	entries  []domain.JournalEntry
	keys     map[string]struct{}

	rejectZeroTotal bool
}

// New returns an engine initialized with a copy of the given chart of
// accounts, an empty journal and an empty idempotency set.
//
// Accounts with blank or duplicate ids or an unknown type are rejected.
func New(chart []domain.Account, opts ...Option) (*Engine, error) {
	e := &Engine{
		accounts: make(map[string]*domain.Account, len(chart)),
		order:    make([]string, 0, len(chart)),
		keys:     make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(e)
	}

	for _, a := range chart {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: account %q", domain.ErrBlankAccountID, a.Name)
		}

		if !a.Type.Valid() {
			return nil, fmt.Errorf("%w: account %q has type %q", domain.ErrInvalidAccountType, a.ID, a.Type)
		}

		if _, ok := e.accounts[a.ID]; ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateAccountID, a.ID)
		}

		account := a
		e.accounts[a.ID] = &account
		e.order = append(e.order, a.ID)
	}

	return e, nil
}

// PostTransaction validates and applies a new journal entry.
//
// Validation happens before any balance mutates, so a failed call leaves the
// engine exactly as it was. On success the entry is appended to the journal
// under a freshly assigned id and its idempotency key is recorded.
func (e *Engine) PostTransaction(params domain.PostEntryParams) (domain.JournalEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.post(params)
}

func (e *Engine) post(params domain.PostEntryParams) (domain.JournalEntry, error) {
	if _, ok := e.keys[params.IdempotencyKey]; ok {
		return domain.JournalEntry{}, domain.ErrDuplicateTransaction
	}

	if len(params.Lines) == 0 {
		return domain.JournalEntry{}, domain.ErrEmptyEntry
	}

	var debits, credits decimal.Decimal

	for _, l := range params.Lines {
		if l.Amount.IsNegative() {
			return domain.JournalEntry{}, fmt.Errorf("%w: %s on account %q", domain.ErrNegativeAmount, l.Amount, l.AccountID)
		}

		if l.Side == domain.Debit {
			debits = debits.Add(l.Amount)
		} else {
			credits = credits.Add(l.Amount)
		}
	}

	if debits.Sub(credits).Abs().GreaterThan(balanceTolerance) {
		return domain.JournalEntry{}, fmt.Errorf("%w: debits (%s) != credits (%s)",
			domain.ErrUnbalancedEntry, debits.StringFixed(2), credits.StringFixed(2))
	}

	if e.rejectZeroTotal && debits.IsZero() && credits.IsZero() {
		return domain.JournalEntry{}, domain.ErrZeroTotalEntry
	}

	// Check every account reference before touching any balance so a bad
	// line cannot leave a partially applied entry.
	for _, l := range params.Lines {
		if _, ok := e.accounts[l.AccountID]; !ok {
			return domain.JournalEntry{}, fmt.Errorf("%w: %q", domain.ErrAccountNotFound, l.AccountID)
		}
	}

	for _, l := range params.Lines {
		e.apply(l)
	}

	entry := domain.JournalEntry{
		ID:             uuid.NewString(),
		Date:           params.Date,
		Description:    params.Description,
		Lines:          copyLines(params.Lines),
		IdempotencyKey: params.IdempotencyKey,
		IsClosing:      params.IsClosing,
	}

	e.entries = append(e.entries, entry)
	e.keys[params.IdempotencyKey] = struct{}{}

	return entry, nil
}

// apply adjusts the balance of the line's account by amount * sign, where
// the sign is positive when the line side matches the account's natural
// balance side. The caller must have verified that the account exists.
func (e *Engine) apply(l domain.TransactionLine) {
	account := e.accounts[l.AccountID]

	naturalDebit := account.Type.NaturalDebit()

	sign := decimal.NewFromInt(-1)
	if (l.Side == domain.Debit) == naturalDebit {
		sign = decimal.NewFromInt(1)
	}

	account.Balance = account.Balance.Add(l.Amount.Mul(sign))
}

// DeleteTransaction reverses and removes the entry with the given id.
//
// Each line is applied with the opposite side, which is the exact algebraic
// inverse of posting, so balances return to their pre-post values.
func (e *Engine) DeleteTransaction(id string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.delete(id)
}

func (e *Engine) delete(id string) error {
	idx := -1

	for i := range e.entries {
		if e.entries[i].ID == id {
			idx = i
			break
		}
	}

	if idx == -1 {
		return fmt.Errorf("%w: %q", domain.ErrEntryNotFound, id)
	}

	entry := e.entries[idx]

	for _, l := range entry.Lines {
		l.Side = l.Side.Opposite()
		e.apply(l)
	}

	e.entries = append(e.entries[:idx], e.entries[idx+1:]...)
	delete(e.keys, entry.IdempotencyKey)

	return nil
}

// UpdateTransaction replaces the entry with the given id by deleting it and
// posting params as a new entry under a new id.
//
// The two phases are not atomic: when the post fails (duplicate key,
// unbalanced lines) the old entry has already been removed and is not
// restored.
func (e *Engine) UpdateTransaction(id string, params domain.PostEntryParams) (domain.JournalEntry, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.delete(id); err != nil {
		return domain.JournalEntry{}, err
	}

	return e.post(params)
}

// Accounts returns a copy of all accounts in chart order.
func (e *Engine) Accounts() []domain.Account {
	e.mu.Lock()
	defer e.mu.Unlock()

	accounts := make([]domain.Account, 0, len(e.order))
	for _, id := range e.order {
		accounts = append(accounts, *e.accounts[id])
	}

	return accounts
}

// Entries returns a copy of the journal in posting order.
func (e *Engine) Entries() []domain.JournalEntry {
	e.mu.Lock()
	defer e.mu.Unlock()

	entries := make([]domain.JournalEntry, len(e.entries))

	for i, entry := range e.entries {
		entry.Lines = copyLines(entry.Lines)
		entries[i] = entry
	}

	return entries
}

// Stats returns the aggregate balances per account type.
func (e *Engine) Stats() domain.Stats {
	e.mu.Lock()
	defer e.mu.Unlock()

	var s domain.Stats

	for _, id := range e.order {
		a := e.accounts[id]

		switch a.Type {
		case domain.Asset:
			s.TotalAssets = s.TotalAssets.Add(a.Balance)
		case domain.Liability:
			s.TotalLiabilities = s.TotalLiabilities.Add(a.Balance)
		case domain.Revenue:
			s.TotalRevenue = s.TotalRevenue.Add(a.Balance)
		case domain.Expense:
			s.TotalExpenses = s.TotalExpenses.Add(a.Balance)
		}
	}

	s.TotalLiabilities = s.TotalLiabilities.Abs()

	return s
}

func copyLines(lines []domain.TransactionLine) []domain.TransactionLine {
	cp := make([]domain.TransactionLine, len(lines))
	copy(cp, lines)

	return cp
}
