// Package insightservice generates narrative financial insights from ledger
// snapshots. It is a pure read-side collaborator: failures never affect
// ledger state and degrade to a placeholder message.
package insightservice

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/go-petr/pet-ledger/internal/domain"
)

// Placeholder is returned whenever the model cannot produce insights.
const Placeholder = "Unable to generate insights right now. Check your connection or API key."

// recentEntries caps how much journal history is sent to the model.
const recentEntries = 5

// Generator produces text for a prompt.
//
//go:generate mockgen -source service.go -destination service_mock.go -package insightservice
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service builds prompts from ledger snapshots and delegates to a Generator.
type Service struct {
	generator Generator
}

// New returns an insight service using the given text generator.
func New(g Generator) *Service {
	return &Service{generator: g}
}

type accountSummary struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Balance string `json:"balance"`
}

type entrySummary struct {
	Description string `json:"description"`
	Date        string `json:"date"`
	Total       string `json:"total"`
}

// Insights asks the model for recommendations based on current balances and
// the most recent journal entries. Any failure returns the placeholder text.
func (s *Service) Insights(ctx context.Context, accounts []domain.Account, entries []domain.JournalEntry) string {
	l := zerolog.Ctx(ctx)

	summary := struct {
		Accounts      []accountSummary `json:"accounts"`
		RecentEntries []entrySummary   `json:"recent_entries"`
	}{}

	for _, a := range accounts {
		summary.Accounts = append(summary.Accounts, accountSummary{
			Name:    a.Name,
			Type:    string(a.Type),
			Balance: a.Balance.String(),
		})
	}

	start := len(entries) - recentEntries
	if start < 0 {
		start = 0
	}

	for _, e := range entries[start:] {
		es := entrySummary{
			Description: e.Description,
			Date:        e.Date.Format("2006-01-02"),
		}

		if len(e.Lines) > 0 {
			es.Total = e.Lines[0].Amount.String()
		}

		summary.RecentEntries = append(summary.RecentEntries, es)
	}

	data, err := json.Marshal(summary)
	if err != nil {
		l.Error().Err(err).Msg("marshaling ledger summary")
		return Placeholder
	}

	prompt := fmt.Sprintf(`As a senior financial advisor, analyse this bookkeeping data and provide 3 concise insights or recommendations.
Focus on net worth, spending patterns and liquidity.
Data: %s
Return the answer strictly as a plain list.`, data)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		l.Warn().Err(err).Msg("insight generation failed")
		return Placeholder
	}

	if text == "" {
		return Placeholder
	}

	return text
}

// GeminiGenerator generates text with the Gemini API.
//
// The client is created per call so that a missing or invalid API key
// surfaces as a Generate error and never prevents server startup.
type GeminiGenerator struct {
	apiKey string
	model  string
}

// NewGeminiGenerator returns a Generator backed by the Gemini model.
func NewGeminiGenerator(apiKey, model string) *GeminiGenerator {
	return &GeminiGenerator{apiKey: apiKey, model: model}
}

// Generate implements Generator.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("initializing gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}

	return resp.Candidates[0].Content.Parts[0].Text, nil
}
