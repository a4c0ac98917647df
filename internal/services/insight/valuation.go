package insight

import "github.com/fizenhive/fizen/internal/models"

const (
	DefaultTargetPE       = 15.0
	DefaultTargetFCFYield = 0.05
)

// ComputeIntrinsic derives the two valuation estimates, reconciles them into
// a final figure, and returns the margin of safety in percentage points.
// Every division is guarded by a positivity check on its denominator so
// degenerate inputs resolve to 0 rather than NaN or Inf.
func ComputeIntrinsic(m *models.NormalizedMetrics, in models.ValuationInputs) (models.IntrinsicValue, float64) {
	normEPS := m.CurrentEPS
	if in.NormalizedEPS != nil {
		normEPS = *in.NormalizedEPS
	}
	targetPE := DefaultTargetPE
	if in.TargetPE != nil {
		targetPE = *in.TargetPE
	}
	targetFCFYield := DefaultTargetFCFYield
	if in.TargetFCFYield != nil {
		targetFCFYield = *in.TargetFCFYield
	}

	peBased := 0.0
	if normEPS > 0 {
		peBased = normEPS * targetPE
	}

	fcfBased := 0.0
	if m.FCF > 0 && m.SharesOutstanding != nil && *m.SharesOutstanding > 0 && targetFCFYield > 0 {
		fcfBased = (m.FCF / *m.SharesOutstanding) / targetFCFYield
	}

	// Reconciliation: a manual override wins outright. Otherwise the lower
	// of the two positive methods, or whichever one is positive.
	final := 0.0
	switch {
	case in.ManualOverride != nil:
		final = *in.ManualOverride
	case peBased > 0 && fcfBased > 0:
		final = min(peBased, fcfBased)
	case peBased > 0:
		final = peBased
	default:
		final = fcfBased
	}

	mos := 0.0
	if final > 0 {
		mos = (final - m.Price) / final * 100
	}

	return models.IntrinsicValue{
		Methods: models.IntrinsicMethods{PEBased: peBased, FCFBased: fcfBased},
		Final:   final,
	}, mos
}
