// Package ledgerservice manages business logic layer of the ledger.
package ledgerservice

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/reports"
)

// Engine provides the accounting core interface needed by the service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package ledgerservice
type Engine interface {
	PostTransaction(params domain.PostEntryParams) (domain.JournalEntry, error)
	DeleteTransaction(id string) error
	UpdateTransaction(id string, params domain.PostEntryParams) (domain.JournalEntry, error)
	Accounts() []domain.Account
	Entries() []domain.JournalEntry
	Stats() domain.Stats
}

// Service facilitates ledger service layer logic.
type Service struct {
	engine             Engine
	retainedEarningsID string
}

// New returns a ledger service on top of the given engine. Closing entries
// settle the period result into the account with retainedEarningsID.
func New(engine Engine, retainedEarningsID string) *Service {
	return &Service{
		engine:             engine,
		retainedEarningsID: retainedEarningsID,
	}
}

// Post posts a new journal entry. A missing date defaults to now and a
// missing idempotency key is generated.
func (s *Service) Post(ctx context.Context, params domain.PostEntryParams) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	params = withDefaults(params)

	entry, err := s.engine.PostTransaction(params)
	if err != nil {
		l.Info().Err(err).Str("idempotency_key", params.IdempotencyKey).Msg("post rejected")
		return domain.JournalEntry{}, err
	}

	return entry, nil
}

// Delete reverses and removes the entry with the given id.
func (s *Service) Delete(ctx context.Context, id string) error {
	l := zerolog.Ctx(ctx)

	if err := s.engine.DeleteTransaction(id); err != nil {
		l.Info().Err(err).Str("entry_id", id).Msg("delete rejected")
		return err
	}

	return nil
}

// Update replaces the entry with the given id by a new one posted from params.
// The replacement gets a fresh id and, unless supplied, a fresh idempotency key.
func (s *Service) Update(ctx context.Context, id string, params domain.PostEntryParams) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	params = withDefaults(params)

	entry, err := s.engine.UpdateTransaction(id, params)
	if err != nil {
		l.Info().Err(err).Str("entry_id", id).Msg("update rejected")
		return domain.JournalEntry{}, err
	}

	return entry, nil
}

// Accounts returns a snapshot of all accounts.
func (s *Service) Accounts(ctx context.Context) []domain.Account {
	return s.engine.Accounts()
}

// Entries returns a snapshot of the journal in posting order.
func (s *Service) Entries(ctx context.Context) []domain.JournalEntry {
	return s.engine.Entries()
}

// Stats returns the aggregate balances per account type.
func (s *Service) Stats(ctx context.Context) domain.Stats {
	return s.engine.Stats()
}

// GeneralLedger returns the per-account movement projection.
func (s *Service) GeneralLedger(ctx context.Context) []reports.AccountLedger {
	return reports.BuildGeneralLedger(s.engine.Accounts(), s.engine.Entries())
}

// TrialBalance returns the four-column trial balance projection.
func (s *Service) TrialBalance(ctx context.Context) reports.TrialBalance {
	return reports.BuildTrialBalance(s.engine.Accounts(), s.engine.Entries())
}

// IncomeStatement returns the period result projection.
func (s *Service) IncomeStatement(ctx context.Context) reports.IncomeStatement {
	return reports.BuildIncomeStatement(s.engine.Accounts())
}

// BalanceSheet returns the balance sheet projection.
func (s *Service) BalanceSheet(ctx context.Context) reports.BalanceSheet {
	return reports.BuildBalanceSheet(s.engine.Accounts())
}

// CloseBooks posts the closing entry: every revenue account with a balance is
// debited back to zero, every expense account credited back to zero, and the
// net result is settled into retained earnings.
func (s *Service) CloseBooks(ctx context.Context) (domain.JournalEntry, error) {
	l := zerolog.Ctx(ctx)

	var lines []domain.TransactionLine

	var netResult decimal.Decimal

	for _, a := range s.engine.Accounts() {
		if a.Balance.IsZero() {
			continue
		}

		switch a.Type {
		case domain.Revenue:
			lines = append(lines, closingLine(a, domain.Debit))
			netResult = netResult.Add(a.Balance)
		case domain.Expense:
			lines = append(lines, closingLine(a, domain.Credit))
			netResult = netResult.Sub(a.Balance)
		}
	}

	if len(lines) == 0 {
		return domain.JournalEntry{}, domain.ErrNothingToClose
	}

	if netResult.IsPositive() {
		lines = append(lines, domain.TransactionLine{
			AccountID: s.retainedEarningsID,
			Side:      domain.Credit,
			Amount:    netResult,
		})
	} else if netResult.IsNegative() {
		lines = append(lines, domain.TransactionLine{
			AccountID: s.retainedEarningsID,
			Side:      domain.Debit,
			Amount:    netResult.Abs(),
		})
	}

	entry, err := s.engine.PostTransaction(domain.PostEntryParams{
		Date:           time.Now().UTC(),
		Description:    "Automatic year-end closing",
		Lines:          lines,
		IdempotencyKey: "closing-" + uuid.NewString(),
		IsClosing:      true,
	})
	if err != nil {
		l.Error().Err(err).Msg("closing entry rejected")
		return domain.JournalEntry{}, err
	}

	l.Info().Str("entry_id", entry.ID).Str("net_result", netResult.String()).Msg("books closed")

	return entry, nil
}

// ReopenBooks reverses the most recent closing entry.
func (s *Service) ReopenBooks(ctx context.Context) error {
	l := zerolog.Ctx(ctx)

	entries := s.engine.Entries()

	for i := len(entries) - 1; i >= 0; i-- {
		if !entries[i].IsClosing {
			continue
		}

		if err := s.engine.DeleteTransaction(entries[i].ID); err != nil {
			l.Error().Err(err).Str("entry_id", entries[i].ID).Msg("reopen failed")
			return err
		}

		l.Info().Str("entry_id", entries[i].ID).Msg("books reopened")

		return nil
	}

	return domain.ErrNoClosingEntry
}

// closingLine zeroes the account: its balance becomes the line amount on the
// given side. A negative (contra) balance flips the side so the amount stays
// positive.
func closingLine(a domain.Account, side domain.Side) domain.TransactionLine {
	if a.Balance.IsNegative() {
		return domain.TransactionLine{
			AccountID: a.ID,
			Side:      side.Opposite(),
			Amount:    a.Balance.Abs(),
		}
	}

	return domain.TransactionLine{AccountID: a.ID, Side: side, Amount: a.Balance}
}

func withDefaults(params domain.PostEntryParams) domain.PostEntryParams {
	if params.Date.IsZero() {
		params.Date = time.Now().UTC()
	}

	if params.IdempotencyKey == "" {
		params.IdempotencyKey = uuid.NewString()
	}

	return params
}
