// Package ledgerdelivery manages delivery layer of the ledger.
package ledgerdelivery

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/internal/reports"
	"github.com/go-petr/pet-ledger/pkg/errorspkg"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides service layer interface needed by ledger delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package ledgerdelivery
type Service interface {
	Post(ctx context.Context, params domain.PostEntryParams) (domain.JournalEntry, error)
	Update(ctx context.Context, id string, params domain.PostEntryParams) (domain.JournalEntry, error)
	Delete(ctx context.Context, id string) error
	Accounts(ctx context.Context) []domain.Account
	Entries(ctx context.Context) []domain.JournalEntry
	Stats(ctx context.Context) domain.Stats
	GeneralLedger(ctx context.Context) []reports.AccountLedger
	TrialBalance(ctx context.Context) reports.TrialBalance
	IncomeStatement(ctx context.Context) reports.IncomeStatement
	BalanceSheet(ctx context.Context) reports.BalanceSheet
	CloseBooks(ctx context.Context) (domain.JournalEntry, error)
	ReopenBooks(ctx context.Context) error
}

// Handler facilitates ledger delivery layer logic.
type Handler struct {
	service Service
}

// NewHandler returns ledger handler.
func NewHandler(s Service) Handler {
	return Handler{service: s}
}

type lineRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Side      string `json:"side" binding:"required,side"`
	Amount    string `json:"amount" binding:"required"`
}

type entryRequest struct {
	Date           time.Time     `json:"date"`
	Description    string        `json:"description" binding:"required"`
	Lines          []lineRequest `json:"lines" binding:"required,min=1,dive"`
	IdempotencyKey string        `json:"idempotency_key"`
	IsClosing      bool          `json:"is_closing"`
}

func (r entryRequest) toParams() (domain.PostEntryParams, error) {
	params := domain.PostEntryParams{
		Date:           r.Date,
		Description:    r.Description,
		IdempotencyKey: r.IdempotencyKey,
		IsClosing:      r.IsClosing,
	}

	for _, l := range r.Lines {
		amount, err := decimal.NewFromString(l.Amount)
		if err != nil {
			return params, domain.ErrInvalidAmount
		}

		if !amount.IsPositive() {
			return params, domain.ErrInvalidAmount
		}

		params.Lines = append(params.Lines, domain.TransactionLine{
			AccountID: l.AccountID,
			Side:      domain.Side(l.Side),
			Amount:    amount,
		})
	}

	return params, nil
}

func bindingErrorMsg(err error) string {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		field := ve[0]
		return field.Field() + web.GetErrorMsg(field)
	}

	return "invalid request body"
}

// respondError maps domain errors to HTTP statuses.
func respondError(gctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		gctx.JSON(http.StatusNotFound, web.Error(err))
	case errors.Is(err, domain.ErrDuplicateTransaction):
		gctx.JSON(http.StatusConflict, web.Error(err))
	case errors.Is(err, domain.ErrUnbalancedEntry),
		errors.Is(err, domain.ErrZeroTotalEntry),
		errors.Is(err, domain.ErrNegativeAmount),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrEmptyEntry),
		errors.Is(err, domain.ErrAccountNotFound),
		errors.Is(err, domain.ErrNothingToClose),
		errors.Is(err, domain.ErrNoClosingEntry):
		gctx.JSON(http.StatusBadRequest, web.Error(err))
	default:
		gctx.JSON(http.StatusInternalServerError, web.Error(errorspkg.ErrInternal))
	}
}

type entryData struct {
	Entry domain.JournalEntry `json:"entry"`
}

// Post handles http request to post a journal entry.
func (h *Handler) Post(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var req entryRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	params, err := req.toParams()
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	entry, err := h.service.Post(ctx, params)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: entryData{entry}})
}

type entryURI struct {
	ID string `uri:"id" binding:"required"`
}

// Update handles http request to replace a journal entry.
func (h *Handler) Update(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri entryURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	var req entryRequest
	if err := gctx.ShouldBindJSON(&req); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	params, err := req.toParams()
	if err != nil {
		gctx.JSON(http.StatusBadRequest, web.Error(err))
		return
	}

	entry, err := h.service.Update(ctx, uri.ID, params)
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: entryData{entry}})
}

// Delete handles http request to delete a journal entry.
func (h *Handler) Delete(gctx *gin.Context) {
	ctx := gctx.Request.Context()
	l := zerolog.Ctx(ctx)

	var uri entryURI
	if err := gctx.ShouldBindUri(&uri); err != nil {
		l.Info().Err(err).Send()
		gctx.JSON(http.StatusBadRequest, web.Response{Error: bindingErrorMsg(err)})

		return
	}

	if err := h.service.Delete(ctx, uri.ID); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}

type accountsData struct {
	Accounts []domain.Account `json:"accounts"`
}

// Accounts handles http request to list all accounts.
func (h *Handler) Accounts(gctx *gin.Context) {
	accounts := h.service.Accounts(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: accountsData{accounts}})
}

type entriesData struct {
	Entries []domain.JournalEntry `json:"entries"`
}

// Entries handles http request to list the journal.
func (h *Handler) Entries(gctx *gin.Context) {
	entries := h.service.Entries(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: entriesData{entries}})
}

type statsData struct {
	Stats domain.Stats `json:"stats"`
}

// Stats handles http request for the aggregate balances.
func (h *Handler) Stats(gctx *gin.Context) {
	stats := h.service.Stats(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: statsData{stats}})
}

type generalLedgerData struct {
	GeneralLedger []reports.AccountLedger `json:"general_ledger"`
}

// GeneralLedger handles http request for the per-account movements report.
func (h *Handler) GeneralLedger(gctx *gin.Context) {
	gl := h.service.GeneralLedger(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: generalLedgerData{gl}})
}

type trialBalanceData struct {
	TrialBalance reports.TrialBalance `json:"trial_balance"`
}

// TrialBalance handles http request for the trial balance report.
func (h *Handler) TrialBalance(gctx *gin.Context) {
	tb := h.service.TrialBalance(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: trialBalanceData{tb}})
}

type incomeStatementData struct {
	IncomeStatement reports.IncomeStatement `json:"income_statement"`
}

// IncomeStatement handles http request for the income statement report.
func (h *Handler) IncomeStatement(gctx *gin.Context) {
	is := h.service.IncomeStatement(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: incomeStatementData{is}})
}

type balanceSheetData struct {
	BalanceSheet reports.BalanceSheet `json:"balance_sheet"`
}

// BalanceSheet handles http request for the balance sheet report.
func (h *Handler) BalanceSheet(gctx *gin.Context) {
	bs := h.service.BalanceSheet(gctx.Request.Context())

	gctx.JSON(http.StatusOK, web.Response{Data: balanceSheetData{bs}})
}

// CloseBooks handles http request to post the year-end closing entry.
func (h *Handler) CloseBooks(gctx *gin.Context) {
	entry, err := h.service.CloseBooks(gctx.Request.Context())
	if err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{Data: entryData{entry}})
}

// ReopenBooks handles http request to reverse the latest closing entry.
func (h *Handler) ReopenBooks(gctx *gin.Context) {
	if err := h.service.ReopenBooks(gctx.Request.Context()); err != nil {
		respondError(gctx, err)
		return
	}

	gctx.JSON(http.StatusOK, web.Response{})
}
