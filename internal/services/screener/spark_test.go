package screener

import (
	"reflect"
	"testing"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		want   []float64
	}{
		{
			name:   "empty history falls back to flat placeholder",
			closes: nil,
			want:   []float64{50, 50, 50, 50, 50},
		},
		{
			name:   "flat series maps every point to 50",
			closes: []float64{100, 100, 100, 100, 100},
			want:   []float64{50, 50, 50, 50, 50},
		},
		{
			name:   "single point maps to 50",
			closes: []float64{42},
			want:   []float64{50},
		},
		{
			name:   "linear series spans the full scale",
			closes: []float64{10, 15, 20},
			want:   []float64{0, 50, 100},
		},
		{
			name:   "descending series",
			closes: []float64{20, 10},
			want:   []float64{100, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sparkline(tt.closes)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("sparkline(%v) = %v, want %v", tt.closes, got, tt.want)
			}
		})
	}
}
