package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/models"
	"github.com/fizenhive/fizen/internal/storage"
)

// --- stub services ---

type stubInsights struct {
	insight *models.ScoredInsight
	err     error
	lastReq models.InsightRequest
}

func (s *stubInsights) AnalyzeTicker(ctx context.Context, req models.InsightRequest) (*models.ScoredInsight, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.insight, nil
}

type stubScreener struct {
	rows       []models.ScreenerRow
	err        error
	lastRegion string
	lastFilter string
	lastSector string
}

func (s *stubScreener) Screen(ctx context.Context, region, filter, sector string) ([]models.ScreenerRow, error) {
	s.lastRegion, s.lastFilter, s.lastSector = region, filter, sector
	return s.rows, s.err
}

func (s *stubScreener) Regions() []string {
	return []string{"US", "France"}
}

type stubQuoteService struct {
	quote   *models.QuoteSnapshot
	summary *models.FinancialsBundle
	bars    []models.HistoryBar
	results []models.SearchResult
	err     error
}

func (s *stubQuoteService) GetQuote(ctx context.Context, symbol string) (*models.QuoteSnapshot, error) {
	return s.quote, s.err
}

func (s *stubQuoteService) GetQuoteWithSummary(ctx context.Context, symbol string) (*models.QuoteSnapshot, *models.FinancialsBundle, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.quote, s.summary, nil
}

func (s *stubQuoteService) GetChart(ctx context.Context, symbol, rng string) ([]models.HistoryBar, error) {
	return s.bars, s.err
}

func (s *stubQuoteService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	return s.results, s.err
}

type stubChat struct {
	reply *models.ChatMessage
	err   error
}

func (s *stubChat) Reply(ctx context.Context, req models.ChatRequest) (*models.ChatMessage, error) {
	return s.reply, s.err
}

// --- harness ---

type testServer struct {
	*Server
	insights *stubInsights
	screener *stubScreener
	quotes   *stubQuoteService
	chat     *stubChat
}

// newTestServer builds a server over real temp-dir storage with stubbed
// market and narrative services.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	cfg := common.NewDefaultConfig()
	cfg.Auth.JWTSecret = "test-secret-key"
	cfg.Storage.Internal.Path = t.TempDir()
	cfg.Storage.User.Path = t.TempDir()

	logger := common.NewSilentLogger()

	mgr, err := storage.NewManager(logger, cfg)
	if err != nil {
		t.Fatalf("failed to create storage manager: %v", err)
	}
	t.Cleanup(func() { mgr.Close() })

	insights := &stubInsights{insight: &models.ScoredInsight{Ticker: "AAPL", QualityScore: 4, RiskFlags: []string{}}}
	screener := &stubScreener{rows: []models.ScreenerRow{}}
	quotes := &stubQuoteService{
		quote: &models.QuoteSnapshot{Symbol: "AAPL", RegularMarketPrice: 230.5},
	}
	chat := &stubChat{reply: &models.ChatMessage{Role: models.ChatRoleAssistant, Content: "hello"}}

	// Portfolio and vault tests exercise the handlers through stubs in
	// their own files; the real services are covered in services/portfolio.
	srv := NewServer(Deps{
		Config:    cfg,
		Logger:    logger,
		Storage:   mgr,
		Insights:  insights,
		Screener:  screener,
		Quotes:    quotes,
		Chat:      chat,
		Portfolio: &stubPortfolio{},
		Vault:     &stubVault{},
	})

	return &testServer{Server: srv, insights: insights, screener: screener, quotes: quotes, chat: chat}
}

type stubPortfolio struct {
	valuation *models.PortfolioValuation
	holding   *models.Holding
	err       error
}

func (s *stubPortfolio) ListHoldings(ctx context.Context, userID string) (*models.PortfolioValuation, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.valuation != nil {
		return s.valuation, nil
	}
	return &models.PortfolioValuation{Holdings: []models.EnrichedHolding{}}, nil
}

func (s *stubPortfolio) AddHolding(ctx context.Context, userID, ticker string, quantity, buyPrice, priceAim float64) (*models.Holding, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.holding != nil {
		return s.holding, nil
	}
	return &models.Holding{ID: "h1", UserID: userID, Ticker: ticker, Quantity: quantity, BuyPrice: buyPrice, PriceAim: priceAim}, nil
}

func (s *stubPortfolio) UpdateHolding(ctx context.Context, userID, id string, quantity, buyPrice, priceAim float64) (*models.Holding, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Holding{ID: id, UserID: userID, Quantity: quantity}, nil
}

func (s *stubPortfolio) DeleteHolding(ctx context.Context, userID, id string) error {
	return s.err
}

type stubVault struct {
	saved []models.SavedInsight
	err   error
}

func (s *stubVault) Save(ctx context.Context, userID string, insight *models.ScoredInsight) error {
	if s.err != nil {
		return s.err
	}
	s.saved = append(s.saved, models.SavedInsight{UserID: userID, Ticker: insight.Ticker, Insight: *insight})
	return nil
}

func (s *stubVault) List(ctx context.Context, userID string) ([]models.SavedInsight, error) {
	return s.saved, s.err
}

func (s *stubVault) Delete(ctx context.Context, userID, ticker string) error {
	return s.err
}

// --- request helpers ---

func jsonBody(t *testing.T, v interface{}) io.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	return bytes.NewReader(data)
}

// doRequest runs a request through the full middleware stack.
func doRequest(srv *testServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

// registerUser registers a test account and returns its bearer token.
func registerUser(t *testing.T, srv *testServer, email string) string {
	t.Helper()
	body := jsonBody(t, map[string]string{
		"email":    email,
		"password": "correct-horse-battery",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	rec := doRequest(srv, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected non-empty token")
	}
	return resp.Token
}
