// Package yahoo provides a client for the Yahoo Finance public API
package yahoo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/fizenhive/fizen/internal/common"
	"github.com/fizenhive/fizen/internal/interfaces"
	"github.com/fizenhive/fizen/internal/models"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 10 // requests per second
)

// ErrSymbolNotFound indicates the provider has no data for a symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// IsNotFound reports whether err means the provider has no data for the
// requested symbol (as opposed to a transport or server failure).
func IsNotFound(err error) bool {
	if errors.Is(err, ErrSymbolNotFound) {
		return true
	}
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// Client implements the QuoteProvider interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Yahoo Finance client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; fizen/1.0)")

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Yahoo API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// summaryValue handles quote-summary numbers that arrive either bare,
// wrapped as {"raw": n, "fmt": "..."}, or as an empty object when absent.
type summaryValue struct {
	set bool
	val float64
}

func (v *summaryValue) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == "{}" {
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		v.set = true
		v.val = num
		return nil
	}

	var wrapped struct {
		Raw *float64 `json:"raw"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		if wrapped.Raw != nil {
			v.set = true
			v.val = *wrapped.Raw
		}
		return nil
	}

	return fmt.Errorf("cannot unmarshal %s into summary value", s)
}

// ptr returns the value as a nullable pointer; nil when absent.
func (v summaryValue) ptr() *float64 {
	if !v.set {
		return nil
	}
	val := v.val
	return &val
}

// GetQuote retrieves a point-in-time quote snapshot for one symbol.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.QuoteSnapshot, error) {
	params := url.Values{}
	params.Set("symbols", symbol)

	var resp quoteResponse
	if err := c.get(ctx, "/v7/finance/quote", params, &resp); err != nil {
		return nil, err
	}

	if resp.QuoteResponse.Error != nil {
		return nil, &APIError{
			StatusCode: http.StatusBadGateway,
			Message:    resp.QuoteResponse.Error.Description,
			Endpoint:   "/v7/finance/quote",
		}
	}

	if len(resp.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrSymbolNotFound)
	}

	q := resp.QuoteResponse.Result[0]
	return &models.QuoteSnapshot{
		Symbol:                     q.Symbol,
		ShortName:                  q.ShortName,
		LongName:                   q.LongName,
		Currency:                   q.Currency,
		QuoteType:                  q.QuoteType,
		Exchange:                   q.FullExchangeName,
		RegularMarketPrice:         q.RegularMarketPrice.val,
		RegularMarketChange:        q.RegularMarketChange.val,
		RegularMarketChangePercent: q.RegularMarketChangePercent.val,
		RegularMarketVolume:        int64(q.RegularMarketVolume.val),
		MarketCap:                  q.MarketCap.val,
		SharesOutstanding:          q.SharesOutstanding.val,
		TrailingPE:                 q.TrailingPE.ptr(),
		ForwardPE:                  q.ForwardPE.ptr(),
		DividendYield:              q.DividendYield.ptr(),
		EpsTrailingTwelveMonths:    q.EpsTrailingTwelveMonths.ptr(),
		FiftyTwoWeekLow:            q.FiftyTwoWeekLow.val,
		FiftyTwoWeekHigh:           q.FiftyTwoWeekHigh.val,
		FiftyTwoWeekChangePercent:  q.FiftyTwoWeekChangePercent.ptr(),
	}, nil
}

type quoteResult struct {
	Symbol                     string       `json:"symbol"`
	ShortName                  string       `json:"shortName"`
	LongName                   string       `json:"longName"`
	Currency                   string       `json:"currency"`
	QuoteType                  string       `json:"quoteType"`
	FullExchangeName           string       `json:"fullExchangeName"`
	RegularMarketPrice         summaryValue `json:"regularMarketPrice"`
	RegularMarketChange        summaryValue `json:"regularMarketChange"`
	RegularMarketChangePercent summaryValue `json:"regularMarketChangePercent"`
	RegularMarketVolume        summaryValue `json:"regularMarketVolume"`
	MarketCap                  summaryValue `json:"marketCap"`
	SharesOutstanding          summaryValue `json:"sharesOutstanding"`
	TrailingPE                 summaryValue `json:"trailingPE"`
	ForwardPE                  summaryValue `json:"forwardPE"`
	DividendYield              summaryValue `json:"dividendYield"`
	EpsTrailingTwelveMonths    summaryValue `json:"epsTrailingTwelveMonths"`
	FiftyTwoWeekLow            summaryValue `json:"fiftyTwoWeekLow"`
	FiftyTwoWeekHigh           summaryValue `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekChangePercent  summaryValue `json:"fiftyTwoWeekChangePercent"`
}

type apiErrorBody struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type quoteResponse struct {
	QuoteResponse struct {
		Result []quoteResult `json:"result"`
		Error  *apiErrorBody `json:"error"`
	} `json:"quoteResponse"`
}

// GetFinancials retrieves the requested quote-summary statement modules.
// Fields of absent modules stay nil; only a missing symbol is an error.
func (c *Client) GetFinancials(ctx context.Context, symbol string, modules []string) (*models.FinancialsBundle, error) {
	params := url.Values{}
	params.Set("modules", strings.Join(modules, ","))

	var resp summaryResponse
	if err := c.get(ctx, "/v10/finance/quoteSummary/"+url.PathEscape(symbol), params, &resp); err != nil {
		return nil, err
	}

	if resp.QuoteSummary.Error != nil {
		if resp.QuoteSummary.Error.Code == "Not Found" {
			return nil, fmt.Errorf("%s: %w", symbol, ErrSymbolNotFound)
		}
		return nil, &APIError{
			StatusCode: http.StatusBadGateway,
			Message:    resp.QuoteSummary.Error.Description,
			Endpoint:   "/v10/finance/quoteSummary",
		}
	}

	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrSymbolNotFound)
	}

	r := resp.QuoteSummary.Result[0]
	bundle := &models.FinancialsBundle{
		FreeCashflow:      r.FinancialData.FreeCashflow.ptr(),
		OperatingCashflow: r.FinancialData.OperatingCashflow.ptr(),
		TotalDebt:         r.FinancialData.TotalDebt.ptr(),
		TotalCash:         r.FinancialData.TotalCash.ptr(),
		CurrentRatio:      r.FinancialData.CurrentRatio.ptr(),
		QuickRatio:        r.FinancialData.QuickRatio.ptr(),
		DebtToEquity:      r.FinancialData.DebtToEquity.ptr(),
		RevenueGrowth:     r.FinancialData.RevenueGrowth.ptr(),
		OperatingMargins:  r.FinancialData.OperatingMargins.ptr(),
		ProfitMargins:     r.FinancialData.ProfitMargins.ptr(),
		ReturnOnEquity:    r.FinancialData.ReturnOnEquity.ptr(),
		RevenuePerShare:   r.FinancialData.RevenuePerShare.ptr(),
		TargetMeanPrice:   r.FinancialData.TargetMeanPrice.ptr(),

		TrailingPE:                  r.SummaryDetail.TrailingPE.ptr(),
		ForwardPE:                   r.SummaryDetail.ForwardPE.ptr(),
		DividendYield:               r.SummaryDetail.DividendYield.ptr(),
		TrailingAnnualDividendYield: r.SummaryDetail.TrailingAnnualDividendYield.ptr(),
		MarketCap:                   r.SummaryDetail.MarketCap.ptr(),
		Volume:                      r.SummaryDetail.Volume.ptr(),
		FiftyTwoWeekLow:             r.SummaryDetail.FiftyTwoWeekLow.ptr(),
		FiftyTwoWeekHigh:            r.SummaryDetail.FiftyTwoWeekHigh.ptr(),
		PriceToSales:                r.SummaryDetail.PriceToSales.ptr(),

		TrailingEps:        r.DefaultKeyStatistics.TrailingEps.ptr(),
		SharesOutstanding:  r.DefaultKeyStatistics.SharesOutstanding.ptr(),
		EnterpriseValue:    r.DefaultKeyStatistics.EnterpriseValue.ptr(),
		PegRatio:           r.DefaultKeyStatistics.PegRatio.ptr(),
		PriceToBook:        r.DefaultKeyStatistics.PriceToBook.ptr(),
		EnterpriseToEbitda: r.DefaultKeyStatistics.EnterpriseToEbitda.ptr(),
		FiftyTwoWeekChange: r.DefaultKeyStatistics.FiftyTwoWeekChange.ptr(),

		RegularMarketPrice:         r.Price.RegularMarketPrice.ptr(),
		RegularMarketChangePercent: r.Price.RegularMarketChangePercent.ptr(),
		RegularMarketVolume:        r.Price.RegularMarketVolume.ptr(),
		ShortName:                  r.Price.ShortName,
		LongName:                   r.Price.LongName,
		QuoteType:                  r.Price.QuoteType,

		Sector:   r.AssetProfile.Sector,
		Industry: r.AssetProfile.Industry,
	}

	// Latest cashflow statement, when the module is present
	if len(r.CashflowStatementHistory.CashflowStatements) > 0 {
		latest := r.CashflowStatementHistory.CashflowStatements[0]
		bundle.TotalCashFromOperatingActivities = latest.TotalCashFromOperatingActivities.ptr()
		bundle.CapitalExpenditures = latest.CapitalExpenditures.ptr()
	}

	return bundle, nil
}

type summaryResponse struct {
	QuoteSummary struct {
		Result []summaryResult `json:"result"`
		Error  *apiErrorBody   `json:"error"`
	} `json:"quoteSummary"`
}

type summaryResult struct {
	FinancialData struct {
		FreeCashflow      summaryValue `json:"freeCashflow"`
		OperatingCashflow summaryValue `json:"operatingCashflow"`
		TotalDebt         summaryValue `json:"totalDebt"`
		TotalCash         summaryValue `json:"totalCash"`
		CurrentRatio      summaryValue `json:"currentRatio"`
		QuickRatio        summaryValue `json:"quickRatio"`
		DebtToEquity      summaryValue `json:"debtToEquity"`
		RevenueGrowth     summaryValue `json:"revenueGrowth"`
		OperatingMargins  summaryValue `json:"operatingMargins"`
		ProfitMargins     summaryValue `json:"profitMargins"`
		ReturnOnEquity    summaryValue `json:"returnOnEquity"`
		RevenuePerShare   summaryValue `json:"revenuePerShare"`
		TargetMeanPrice   summaryValue `json:"targetMeanPrice"`
	} `json:"financialData"`
	SummaryDetail struct {
		TrailingPE                  summaryValue `json:"trailingPE"`
		ForwardPE                   summaryValue `json:"forwardPE"`
		DividendYield               summaryValue `json:"dividendYield"`
		TrailingAnnualDividendYield summaryValue `json:"trailingAnnualDividendYield"`
		MarketCap                   summaryValue `json:"marketCap"`
		Volume                      summaryValue `json:"volume"`
		FiftyTwoWeekLow             summaryValue `json:"fiftyTwoWeekLow"`
		FiftyTwoWeekHigh            summaryValue `json:"fiftyTwoWeekHigh"`
		PriceToSales                summaryValue `json:"priceToSalesTrailing12Months"`
	} `json:"summaryDetail"`
	DefaultKeyStatistics struct {
		TrailingEps        summaryValue `json:"trailingEps"`
		SharesOutstanding  summaryValue `json:"sharesOutstanding"`
		EnterpriseValue    summaryValue `json:"enterpriseValue"`
		PegRatio           summaryValue `json:"pegRatio"`
		PriceToBook        summaryValue `json:"priceToBook"`
		EnterpriseToEbitda summaryValue `json:"enterpriseToEbitda"`
		FiftyTwoWeekChange summaryValue `json:"52WeekChange"`
	} `json:"defaultKeyStatistics"`
	Price struct {
		RegularMarketPrice         summaryValue `json:"regularMarketPrice"`
		RegularMarketChangePercent summaryValue `json:"regularMarketChangePercent"`
		RegularMarketVolume        summaryValue `json:"regularMarketVolume"`
		ShortName                  string       `json:"shortName"`
		LongName                   string       `json:"longName"`
		QuoteType                  string       `json:"quoteType"`
	} `json:"price"`
	AssetProfile struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`
	CashflowStatementHistory struct {
		CashflowStatements []struct {
			TotalCashFromOperatingActivities summaryValue `json:"totalCashFromOperatingActivities"`
			CapitalExpenditures              summaryValue `json:"capitalExpenditures"`
		} `json:"cashflowStatements"`
	} `json:"cashflowStatementHistory"`
}

// GetHistory retrieves ordered daily/intraday price history bars.
func (c *Client) GetHistory(ctx context.Context, symbol string, start, end time.Time, interval string) ([]models.HistoryBar, error) {
	params := url.Values{}
	params.Set("period1", strconv.FormatInt(start.Unix(), 10))
	params.Set("period2", strconv.FormatInt(end.Unix(), 10))
	params.Set("interval", interval)

	var resp chartResponse
	if err := c.get(ctx, "/v8/finance/chart/"+url.PathEscape(symbol), params, &resp); err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		if resp.Chart.Error.Code == "Not Found" {
			return nil, fmt.Errorf("%s: %w", symbol, ErrSymbolNotFound)
		}
		return nil, &APIError{
			StatusCode: http.StatusBadGateway,
			Message:    resp.Chart.Error.Description,
			Endpoint:   "/v8/finance/chart",
		}
	}

	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, ErrSymbolNotFound)
	}

	r := resp.Chart.Result[0]
	if len(r.Indicators.Quote) == 0 {
		return nil, nil
	}

	q := r.Indicators.Quote[0]
	bars := make([]models.HistoryBar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		// Skip incomplete bars (nulls decode as zero-length entries)
		if i >= len(q.Close) || q.Close[i] == nil {
			continue
		}
		bar := models.HistoryBar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *q.Close[i],
		}
		if i < len(q.Open) && q.Open[i] != nil {
			bar.Open = *q.Open[i]
		}
		if i < len(q.High) && q.High[i] != nil {
			bar.High = *q.High[i]
		}
		if i < len(q.Low) && q.Low[i] != nil {
			bar.Low = *q.Low[i]
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			bar.Volume = *q.Volume[i]
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close  []*float64 `json:"close"`
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *apiErrorBody `json:"error"`
	} `json:"chart"`
}

// Search retrieves the top equity/ETF matches for a free-text query.
func (c *Client) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("quotesCount", "10")
	params.Set("newsCount", "0")

	var resp searchResponse
	if err := c.get(ctx, "/v1/finance/search", params, &resp); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(resp.Quotes))
	for _, q := range resp.Quotes {
		if q.QuoteType != "EQUITY" && q.QuoteType != "ETF" {
			continue
		}
		results = append(results, models.SearchResult{
			Symbol:    q.Symbol,
			ShortName: q.ShortName,
			Exchange:  q.Exchange,
			QuoteType: q.QuoteType,
		})
		if len(results) == 5 {
			break
		}
	}

	return results, nil
}

type searchResponse struct {
	Quotes []struct {
		Symbol    string `json:"symbol"`
		ShortName string `json:"shortname"`
		Exchange  string `json:"exchange"`
		QuoteType string `json:"quoteType"`
	} `json:"quotes"`
}

// Ensure Client implements QuoteProvider
var _ interfaces.QuoteProvider = (*Client)(nil)
