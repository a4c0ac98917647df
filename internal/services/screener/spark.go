package screener

// flatSpark is the placeholder series used when no history is available.
var flatSpark = []float64{50, 50, 50, 50, 50}

// sparkline normalizes a closing-price series to a 0-100 scale for UI
// styling. A flat or single-point series maps every point to 50.
func sparkline(closes []float64) []float64 {
	if len(closes) == 0 {
		out := make([]float64, len(flatSpark))
		copy(out, flatSpark)
		return out
	}

	minClose, maxClose := closes[0], closes[0]
	for _, c := range closes[1:] {
		if c < minClose {
			minClose = c
		}
		if c > maxClose {
			maxClose = c
		}
	}

	out := make([]float64, len(closes))
	for i, c := range closes {
		if maxClose == minClose {
			out[i] = 50
		} else {
			out[i] = (c - minClose) / (maxClose - minClose) * 100
		}
	}
	return out
}
