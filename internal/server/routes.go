package server

import (
	"net/http"

	"github.com/fizenhive/fizen/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Auth
	mux.HandleFunc("/api/auth/register", s.handleAuthRegister)
	mux.HandleFunc("/api/auth/login", s.handleAuthLogin)

	// Market data
	mux.HandleFunc("/api/finance/quote", s.handleQuote)
	mux.HandleFunc("/api/finance/chart", s.handleChart)
	mux.HandleFunc("/api/finance/search", s.handleSearch)
	mux.HandleFunc("/api/finance/insights", s.handleInsights)
	mux.HandleFunc("/api/finance/screener", s.handleScreener)
	mux.HandleFunc("/api/finance/screener/regions", s.handleScreenerRegions)

	// Chat
	mux.HandleFunc("/api/chat", s.handleChat)

	// Portfolio (JWT required)
	mux.HandleFunc("/api/portfolio/holdings", s.handleHoldings)
	mux.HandleFunc("/api/portfolio/holdings/", s.handleHoldingByID)

	// Saved insights (JWT required)
	mux.HandleFunc("/api/insights/saved", s.handleSavedInsights)
	mux.HandleFunc("/api/insights/saved/", s.handleSavedInsightByTicker)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
