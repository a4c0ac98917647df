package server

import (
	"net/http"
	"strings"

	"github.com/fizenhive/fizen/internal/models"
)

// handleQuote handles GET /api/finance/quote?symbol= — quote plus summary blocks.
func (s *Server) handleQuote(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "symbol query parameter is required")
		return
	}

	quote, summary, err := s.deps.Quotes.GetQuoteWithSummary(r.Context(), symbol)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"quote":   quote,
		"summary": summary,
	})
}

// handleChart handles GET /api/finance/chart?symbol=&range=.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := strings.TrimSpace(r.URL.Query().Get("symbol"))
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "symbol query parameter is required")
		return
	}
	rng := r.URL.Query().Get("range")

	bars, err := s.deps.Quotes.GetChart(r.Context(), symbol, rng)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"symbol": strings.ToUpper(symbol),
		"range":  rng,
		"bars":   bars,
	})
}

// handleSearch handles GET /api/finance/search?q=.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		WriteError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	results, err := s.deps.Quotes.Search(r.Context(), query)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
	})
}

// handleInsights handles POST /api/finance/insights — the single-ticker
// intrinsic-value pipeline.
func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.InsightRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	insight, err := s.deps.Insights.AnalyzeTicker(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, insight)
}

// handleScreener handles GET /api/finance/screener?region=&filter=&sector=.
func (s *Server) handleScreener(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	rows, err := s.deps.Screener.Screen(r.Context(), q.Get("region"), q.Get("filter"), q.Get("sector"))
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"quotes": rows,
		"count":  len(rows),
	})
}

// handleScreenerRegions handles GET /api/finance/screener/regions.
func (s *Server) handleScreenerRegions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"regions": s.deps.Screener.Regions(),
	})
}

// handleChat handles POST /api/chat.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.ChatRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	reply, err := s.deps.Chat.Reply(r.Context(), req)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, reply)
}
