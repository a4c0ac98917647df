package insight

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"github.com/fizenhive/fizen/internal/models"
)

// Fixed fallback narrative used whenever the generative call fails or its
// output cannot be parsed. The numeric insight is always returned regardless.
const (
	FallbackTakeaway = "AI Analysis currently unavailable due to API limits or errors. Please review the raw metrics."
	FallbackContext  = "Please evaluate the metrics independently."
)

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// buildPrompt packages the scored metrics into the narrative prompt. The
// model is instructed to answer with a bare two-key JSON object in the
// requested language.
func buildPrompt(s *models.ScoredInsight, language string) string {
	riskFlags := "None Detected"
	if len(s.RiskFlags) > 0 {
		riskFlags = strings.Join(s.RiskFlags, ", ")
	}

	peTrailing := "N/A"
	if s.Valuation.PETrailing != nil {
		peTrailing = formatNumber(*s.Valuation.PETrailing)
	}

	lang := "English"
	if language == "fr" {
		lang = "French"
	}

	return fmt.Sprintf(`Analyze the following structured financial data for %s (%s) acting as a neutral financial educator.

Data:
- Price: $%s
- Margin of Safety: %.2f%%
- Quality Score: %d out of 5
- Risk Flags: %s
- P/E (Trailing): %s
- Debt to Equity: %.2f
- Dividend Yield: %.2f%%

Goal: Return a JSON object ONLY with exactly two keys: "takeaway" and "context".

1. "takeaway": A beginner-friendly paragraph explaining what these specific metrics mean for this company's financial health, valuation, and safety. Do not give any buy/sell recommendations or instructions. Be educational.
2. "context": A brief paragraph comparing these metrics to general sector benchmarks (e.g. is this P/E high or low for a typical company?) and summarizing the overall stance neutrally.

Important: Provide the text in %s.

Respond ONLY with valid JSON in this exact format, without markdown wrapping:
{
  "takeaway": "Your explanation here...",
  "context": "Your context here..."
}`,
		s.Ticker, s.CompanyInfo.Name,
		formatNumber(s.CompanyInfo.Price),
		s.MarginOfSafety,
		s.QualityScore,
		riskFlags,
		peTrailing,
		s.Strength.DebtToEquity,
		s.Cashflow.DividendYield,
		lang,
	)
}

type narrativeResponse struct {
	Takeaway string `json:"takeaway"`
	Context  string `json:"context"`
}

// parseNarrative extracts the two-key payload from the raw model text.
// Code fences are stripped first; a repair pass gives slightly malformed
// model output a second chance before the caller falls back.
func parseNarrative(text string) (*narrativeResponse, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var resp narrativeResponse
	if err := json.Unmarshal([]byte(cleaned), &resp); err == nil && resp.Takeaway != "" {
		return &resp, nil
	}

	repaired, err := jsonrepair.RepairJSON(cleaned)
	if err != nil {
		return nil, fmt.Errorf("narrative output is not valid JSON: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &resp); err != nil {
		return nil, fmt.Errorf("narrative output is not valid JSON after repair: %w", err)
	}
	if resp.Takeaway == "" {
		return nil, fmt.Errorf("narrative output missing takeaway key")
	}
	return &resp, nil
}
