package interview

import "testing"

func TestDecide_Boundaries(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Recommendation
	}{
		{"hire at threshold", 75.0, RecommendHire},
		{"consider just under hire", 74.9, RecommendConsider},
		{"consider at threshold", 50.0, RecommendConsider},
		{"reject just under consider", 49.9, RecommendReject},
		{"reject at zero", 0, RecommendReject},
		{"hire at max", 100, RecommendHire},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decide(tt.score); got != tt.want {
				t.Errorf("Decide(%v) = %q, want %q", tt.score, got, tt.want)
			}
		})
	}
}

func TestDimensions_Order(t *testing.T) {
	dims := Dimensions()
	want := []string{DimRelevance, DimTechnicalDepth, DimClarity, DimStructure}
	if len(dims) != len(want) {
		t.Fatalf("expected %d dimensions, got %d", len(want), len(dims))
	}
	for i, d := range want {
		if dims[i] != d {
			t.Errorf("dimension %d = %q, want %q", i, dims[i], d)
		}
	}
}
