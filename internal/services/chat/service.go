// Package chat implements the market chat conversation service.
package chat

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
	"github.com/fizenhive/fizen/internal/models"
)

// systemPrompt frames every conversation as educational analysis.
const systemPrompt = `Act as a professional, unbiased investment analyst providing educational information only. Evaluate this investment for an individual investor.

Investment: [NAME OF STOCK / ETF / CRYPTO / PROPERTY / FUND]

Provide your answer in this structure and keep response strictly between 500 to 700 words only:
1) Simple overview (what it is + why people invest in it)
2) Bull case (main reasons it could perform well)
3) Bear case & risks (valuation, macro, competition, liquidity, etc.)
4) Who this investment is suitable for (time horizon, risk level, portfolio role)
5) Short-term vs long-term outlook
6) Clear bottom-line verdict in plain English (not vague)

Keep it concise, practical, and decision-focused.
If needed, ask me follow-up questions about my budget, timeline, location, or risk tolerance before concluding.`

// maxContextTickers bounds the live-quote lookups per message
const maxContextTickers = 2

// tickerStopWords are all-cap words that are never treated as symbols.
var tickerStopWords = map[string]bool{
	"A": true, "I": true, "IS": true, "OF": true, "THE": true, "AND": true, "ETF": true,
}

// Service answers market chat turns, enriching the system instruction with
// live quotes for tickers detected in the latest user message.
type Service struct {
	quotes    interfaces.QuoteProvider
	narrative interfaces.NarrativeProvider
	logger    *common.Logger
}

// NewService creates the chat service.
func NewService(quotes interfaces.QuoteProvider, narrative interfaces.NarrativeProvider, logger *common.Logger) *Service {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Service{quotes: quotes, narrative: narrative, logger: logger}
}

// Reply generates the assistant's next message.
func (s *Service) Reply(ctx context.Context, req models.ChatRequest) (*models.ChatMessage, error) {
	if len(req.Messages) == 0 {
		return nil, fmt.Errorf("%w: messages array is required", common.ErrInvalidRequest)
	}

	var latestUser string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		if req.Messages[i].Role == models.ChatRoleUser {
			latestUser = req.Messages[i].Content
			break
		}
	}

	instruction := systemPrompt
	if latestUser != "" {
		if marketContext := s.fetchTickerContext(ctx, latestUser); marketContext != "" {
			instruction += "\n\nLive market context:" + marketContext
		}
	}

	text, err := s.narrative.GenerateChat(ctx, instruction, req.Messages)
	if err != nil {
		return nil, fmt.Errorf("chat generation failed: %w", err)
	}

	return &models.ChatMessage{
		Role:    models.ChatRoleAssistant,
		Content: strings.TrimSpace(text),
	}, nil
}

// detectTickers applies the symbol heuristic: 1-5 character all-cap words,
// punctuation stripped, stop words excluded.
func detectTickers(query string) []string {
	var cleaned strings.Builder
	for _, r := range query {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			cleaned.WriteRune(r)
		case r == ' ', r == '\t', r == '\n', r == '\r':
			cleaned.WriteRune(r)
		}
	}

	var tickers []string
	for _, w := range strings.Fields(cleaned.String()) {
		if len(w) < 1 || len(w) > 5 {
			continue
		}
		if w != strings.ToUpper(w) || tickerStopWords[w] {
			continue
		}
		tickers = append(tickers, w)
	}
	return tickers
}

// fetchTickerContext looks up live quotes for detected tickers. Lookup
// failures are ignored; the chat proceeds without context.
func (s *Service) fetchTickerContext(ctx context.Context, query string) string {
	tickers := detectTickers(query)
	if len(tickers) > maxContextTickers {
		tickers = tickers[:maxContextTickers]
	}

	var sb strings.Builder
	for _, ticker := range tickers {
		quote, err := s.quotes.GetQuote(ctx, ticker)
		if err != nil || quote == nil || quote.RegularMarketPrice == 0 {
			continue
		}

		pe := "N/A"
		if quote.TrailingPE != nil && *quote.TrailingPE != 0 {
			pe = strconv.FormatFloat(*quote.TrailingPE, 'f', -1, 64)
		}

		fmt.Fprintf(&sb, "\nLatest data for %s: Price: $%s, Market Cap: %s, PE: %s. ",
			ticker,
			strconv.FormatFloat(quote.RegularMarketPrice, 'f', -1, 64),
			strconv.FormatFloat(quote.MarketCap, 'f', -1, 64),
			pe,
		)
		if quote.QuoteType == "ETF" {
			sb.WriteString("This is an ETF. ")
		} else {
			sb.WriteString("This is a company/stock. ")
		}
	}
	return sb.String()
}

// Ensure Service implements ChatService
var _ interfaces.ChatService = (*Service)(nil)
