// Package insightdelivery manages delivery layer of AI insights.
package insightdelivery

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/go-petr/pet-ledger/internal/domain"
	"github.com/go-petr/pet-ledger/pkg/web"
)

// Service provides the insight generation interface needed by the delivery layer.
//
//go:generate mockgen -source http.go -destination http_mock.go -package insightdelivery
type Service interface {
	Insights(ctx context.Context, accounts []domain.Account, entries []domain.JournalEntry) string
}

// Snapshotter provides the read-only ledger snapshots fed to the insight service.
type Snapshotter interface {
	Accounts(ctx context.Context) []domain.Account
	Entries(ctx context.Context) []domain.JournalEntry
}

// Handler facilitates insight delivery layer logic.
type Handler struct {
	service Service
	ledger  Snapshotter
}

// NewHandler returns insight handler.
func NewHandler(s Service, ledger Snapshotter) Handler {
	return Handler{service: s, ledger: ledger}
}

type data struct {
	Insights string `json:"insights"`
}

// Get handles http request to generate ledger insights.
func (h *Handler) Get(gctx *gin.Context) {
	ctx := gctx.Request.Context()

	text := h.service.Insights(ctx, h.ledger.Accounts(ctx), h.ledger.Entries(ctx))

	gctx.JSON(http.StatusOK, web.Response{Data: data{Insights: text}})
}
