package models

import "testing"

func TestMeetsThreshold(t *testing.T) {
	result := &PredictionResult{
		HomeWinPct: 55.4,
		DrawPct:    24.6,
		AwayWinPct: 20.0,
		Outcome:    OutcomeHomeWin,
		Confidence: 55.4,
	}

	cases := []struct {
		threshold float64
		want      bool
	}{
		{0, true},
		{50.0, true},
		{55.4, true},
		{55.5, false},
		{100.0, false},
	}
	for _, tc := range cases {
		if got := result.MeetsThreshold(tc.threshold); got != tc.want {
			t.Errorf("MeetsThreshold(%v) = %v, want %v", tc.threshold, got, tc.want)
		}
	}
}
