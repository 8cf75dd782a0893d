package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrDuplicateTransaction indicates that the idempotency key of the entry
	// has already been processed.
	ErrDuplicateTransaction = errors.New("transaction already processed")
	// ErrUnbalancedEntry indicates that total debits and total credits differ
	// beyond the accepted tolerance.
	ErrUnbalancedEntry = errors.New("unbalanced entry")
	// ErrZeroTotalEntry indicates an entry whose debit and credit totals are both zero.
	// It is returned only when the engine is configured to reject such entries.
	ErrZeroTotalEntry = errors.New("zero total entry")
	// ErrNegativeAmount indicates a transaction line with a negative amount.
	ErrNegativeAmount = errors.New("negative amount")
	// ErrInvalidAmount indicates a line amount that is not a positive decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrEntryNotFound indicates an unknown journal entry id.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrEmptyEntry indicates an entry without transaction lines.
	ErrEmptyEntry = errors.New("entry has no lines")
	// ErrNothingToClose indicates that no revenue or expense account carries a
	// balance to close.
	ErrNothingToClose = errors.New("no result account balances to close")
	// ErrNoClosingEntry indicates that the journal holds no closing entry to reverse.
	ErrNoClosingEntry = errors.New("no closing entry found")
)

// Side is the posting side of a transaction line.
type Side string

// The two posting sides.
const (
	Debit  Side = "DEBIT"
	Credit Side = "CREDIT"
)

// Valid returns true if s is DEBIT or CREDIT.
func (s Side) Valid() bool {
	return s == Debit || s == Credit
}

// Opposite returns the reversing side for s.
func (s Side) Opposite() Side {
	if s == Debit {
		return Credit
	}

	return Debit
}

// TransactionLine holds a single leg of a journal entry.
type TransactionLine struct {
	AccountID string          `json:"account_id"`
	Side      Side            `json:"side"`
	Amount    decimal.Decimal `json:"amount"`
}

// JournalEntry holds a posted, balanced set of transaction lines.
//
// Line order is preserved for display only. Entries are kept in posting
// order regardless of their Date field.
type JournalEntry struct {
	ID             string            `json:"id"`
	Date           time.Time         `json:"date"`
	Description    string            `json:"description"`
	Lines          []TransactionLine `json:"lines"`
	IdempotencyKey string            `json:"idempotency_key"`
	IsClosing      bool              `json:"is_closing"`
}

// PostEntryParams is the input data to post a journal entry.
// The entry id is assigned by the engine.
type PostEntryParams struct {
	Date           time.Time         `json:"date"`
	Description    string            `json:"description"`
	Lines          []TransactionLine `json:"lines"`
	IdempotencyKey string            `json:"idempotency_key"`
	IsClosing      bool              `json:"is_closing"`
}
