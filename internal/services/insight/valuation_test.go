package insight

import (
	"math"
	"testing"

	"github.com/fizenhive/fizen/internal/models"
)

func fptr(v float64) *float64 { return &v }

func TestComputeIntrinsic(t *testing.T) {
	shares := fptr(1e9)

	tests := []struct {
		name        string
		metrics     models.NormalizedMetrics
		inputs      models.ValuationInputs
		wantPE      float64
		wantFCF     float64
		wantFinal   float64
		wantMOSNear float64
	}{
		{
			name: "minimum rule when both methods positive",
			metrics: models.NormalizedMetrics{
				Price:             60,
				CurrentEPS:        10,  // pe_based = 150
				FCF:               4e9, // fcf_based = 4 / 0.05 = 80
				SharesOutstanding: shares,
			},
			wantPE:      150,
			wantFCF:     80,
			wantFinal:   80,
			wantMOSNear: (80.0 - 60.0) / 80.0 * 100,
		},
		{
			name: "single positive method wins",
			metrics: models.NormalizedMetrics{
				Price:             100,
				CurrentEPS:        -2,
				FCF:               4e9,
				SharesOutstanding: shares,
			},
			wantPE:      0,
			wantFCF:     80,
			wantFinal:   80,
			wantMOSNear: (80.0 - 100.0) / 80.0 * 100,
		},
		{
			name: "neither positive yields zero and zero margin",
			metrics: models.NormalizedMetrics{
				Price:      50,
				CurrentEPS: -1,
				FCF:        -1e9,
			},
			wantPE:    0,
			wantFCF:   0,
			wantFinal: 0,
		},
		{
			name: "manual override short-circuits",
			metrics: models.NormalizedMetrics{
				Price:             10,
				CurrentEPS:        5,
				FCF:               4e9,
				SharesOutstanding: shares,
			},
			inputs:      models.ValuationInputs{ManualOverride: fptr(42)},
			wantPE:      75,
			wantFCF:     80,
			wantFinal:   42,
			wantMOSNear: (42.0 - 10.0) / 42.0 * 100,
		},
		{
			name: "missing shares outstanding disables fcf method",
			metrics: models.NormalizedMetrics{
				Price:      100,
				CurrentEPS: 10,
				FCF:        4e9,
			},
			wantPE:      150,
			wantFCF:     0,
			wantFinal:   150,
			wantMOSNear: (150.0 - 100.0) / 150.0 * 100,
		},
		{
			name: "overrides replace defaults",
			metrics: models.NormalizedMetrics{
				Price:             100,
				CurrentEPS:        10,
				FCF:               4e9,
				SharesOutstanding: shares,
			},
			inputs: models.ValuationInputs{
				NormalizedEPS:  fptr(8),
				TargetPE:       fptr(20),
				TargetFCFYield: fptr(0.04),
			},
			wantPE:      160,
			wantFCF:     100,
			wantFinal:   100,
			wantMOSNear: 0,
		},
		{
			name: "zero shares outstanding guards division",
			metrics: models.NormalizedMetrics{
				Price:             100,
				CurrentEPS:        10,
				FCF:               4e9,
				SharesOutstanding: fptr(0),
			},
			wantPE:    150,
			wantFCF:   0,
			wantFinal: 150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			iv, mos := ComputeIntrinsic(&tt.metrics, tt.inputs)
			if iv.Methods.PEBased != tt.wantPE {
				t.Errorf("pe_based = %v, want %v", iv.Methods.PEBased, tt.wantPE)
			}
			if iv.Methods.FCFBased != tt.wantFCF {
				t.Errorf("fcf_based = %v, want %v", iv.Methods.FCFBased, tt.wantFCF)
			}
			if iv.Final != tt.wantFinal {
				t.Errorf("final = %v, want %v", iv.Final, tt.wantFinal)
			}
			if tt.wantFinal == 0 && mos != 0 {
				t.Errorf("margin of safety = %v, want 0 when final is 0", mos)
			}
			if tt.wantFinal > 0 && math.Abs(mos-tt.wantMOSNear) > 1e-9 {
				t.Errorf("margin of safety = %v, want %v", mos, tt.wantMOSNear)
			}
			if math.IsNaN(iv.Final) || math.IsInf(iv.Final, 0) || math.IsNaN(mos) || math.IsInf(mos, 0) {
				t.Errorf("non-finite output: final=%v mos=%v", iv.Final, mos)
			}
		})
	}
}

func TestMarginOfSafetyRoundTrip(t *testing.T) {
	metrics := models.NormalizedMetrics{Price: 100, CurrentEPS: 10}
	iv, mos := ComputeIntrinsic(&metrics, models.ValuationInputs{})
	if iv.Final != 150 {
		t.Fatalf("final = %v, want 150", iv.Final)
	}
	recomputed := (iv.Final - metrics.Price) / iv.Final * 100
	if math.Abs(mos-recomputed) > 1e-9 {
		t.Errorf("reported %v, recomputed %v", mos, recomputed)
	}
	if math.Abs(mos-33.333333333333336) > 1e-9 {
		t.Errorf("margin of safety = %v, want ~33.33", mos)
	}
}
