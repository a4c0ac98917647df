package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
)

// Deps bundles everything the HTTP layer needs.
type Deps struct {
	Config    *common.Config
	Logger    *common.Logger
	Storage   interfaces.StorageManager
	Insights  interfaces.InsightService
	Screener  interfaces.ScreenerService
	Quotes    interfaces.QuoteService
	Chat      interfaces.ChatService
	Portfolio interfaces.PortfolioService
	Vault     interfaces.InsightVault
}

// Server wraps the HTTP server and service references.
type Server struct {
	deps   Deps
	server *http.Server
	logger *common.Logger
}

// NewServer creates a new HTTP REST API server.
func NewServer(deps Deps) *Server {
	s := &Server{
		deps:   deps,
		logger: deps.Logger,
	}

	mux := http.NewServeMux()
	s.registerRoutes(mux)

	handler := applyMiddleware(mux, deps.Logger, deps.Config, deps.Storage.InternalStore())

	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", deps.Config.Server.Host, deps.Config.Server.Port),
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server (blocking).
func (s *Server) Start() error {
	s.logger.Info().
		Str("addr", s.server.Addr).
		Msg("Starting REST API server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
