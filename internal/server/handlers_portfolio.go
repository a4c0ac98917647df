package server

import (
	"net/http"

	"github.com/fizenhive/fizen/internal/models"
)

type holdingRequest struct {
	Ticker   string  `json:"ticker"`
	Quantity float64 `json:"quantity"`
	BuyPrice float64 `json:"buy_price"`
	PriceAim float64 `json:"price_aim"`
}

// handleHoldings handles GET/POST /api/portfolio/holdings.
func (s *Server) handleHoldings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	userID := s.requireUser(w, r)
	if userID == "" {
		return
	}

	switch r.Method {
	case http.MethodGet:
		valuation, err := s.deps.Portfolio.ListHoldings(r.Context(), userID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, valuation)

	case http.MethodPost:
		var req holdingRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		holding, err := s.deps.Portfolio.AddHolding(r.Context(), userID, req.Ticker, req.Quantity, req.BuyPrice, req.PriceAim)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusCreated, holding)
	}
}

// handleHoldingByID handles PUT/DELETE /api/portfolio/holdings/{id}.
func (s *Server) handleHoldingByID(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut, http.MethodDelete) {
		return
	}

	userID := s.requireUser(w, r)
	if userID == "" {
		return
	}

	id := PathParam(r, "/api/portfolio/holdings/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "holding id is required in path")
		return
	}

	switch r.Method {
	case http.MethodPut:
		var req holdingRequest
		if !DecodeJSON(w, r, &req) {
			return
		}
		holding, err := s.deps.Portfolio.UpdateHolding(r.Context(), userID, id, req.Quantity, req.BuyPrice, req.PriceAim)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, holding)

	case http.MethodDelete:
		if err := s.deps.Portfolio.DeleteHolding(r.Context(), userID, id); err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	}
}

// handleSavedInsights handles GET/PUT /api/insights/saved.
func (s *Server) handleSavedInsights(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPut) {
		return
	}

	userID := s.requireUser(w, r)
	if userID == "" {
		return
	}

	switch r.Method {
	case http.MethodGet:
		saved, err := s.deps.Vault.List(r.Context(), userID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"insights": saved,
			"count":    len(saved),
		})

	case http.MethodPut:
		var insight models.ScoredInsight
		if !DecodeJSON(w, r, &insight) {
			return
		}
		if err := s.deps.Vault.Save(r.Context(), userID, &insight); err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]string{"status": "saved", "ticker": insight.Ticker})
	}
}

// handleSavedInsightByTicker handles DELETE /api/insights/saved/{ticker}.
func (s *Server) handleSavedInsightByTicker(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodDelete) {
		return
	}

	userID := s.requireUser(w, r)
	if userID == "" {
		return
	}

	ticker := PathParam(r, "/api/insights/saved/")
	if ticker == "" {
		WriteError(w, http.StatusBadRequest, "ticker is required in path")
		return
	}

	if err := s.deps.Vault.Delete(r.Context(), userID, ticker); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
