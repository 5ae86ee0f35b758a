package economics

import (
	"math"
	"testing"
)

func TestAnnuity(t *testing.T) {
	tests := []struct {
		name  string
		capex float64
		n     int
		wacc  float64
		want  float64
	}{
		{
			name:  "single period repays capex plus interest",
			capex: 1000,
			n:     1,
			wacc:  0.05,
			want:  1050,
		},
		{
			name:  "wind park investment",
			capex: 1750000,
			n:     20,
			wacc:  0.05,
			want:  140424.52,
		},
		{
			name:  "storage expansion",
			capex: 1000000,
			n:     10,
			wacc:  0.05,
			want:  129504.57,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Annuity(tt.capex, tt.n, tt.wacc)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("Annuity(%v, %d, %v) = %v, want %v", tt.capex, tt.n, tt.wacc, got, tt.want)
			}
		})
	}
}
