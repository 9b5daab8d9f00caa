package predict

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/matchcast/internal/models"
)

func TestFinalizeSumsToExactlyOneHundred(t *testing.T) {
	cases := []RawScores{
		{Home: 0.80, Draw: 0.1772, Away: 0.08},
		{Home: 0.333, Draw: 0.333, Away: 0.334},
		{Home: 0.08, Draw: 0.38, Away: 0.70},
		{Home: 0.51, Draw: 0.17, Away: 0.29},
		{Home: 1e-9, Draw: 1e-9, Away: 1e-9},
	}

	for _, raw := range cases {
		result, err := Finalize(raw)
		if err != nil {
			t.Fatalf("expected no error for %+v, got %v", raw, err)
		}

		sum := result.HomeWinPct + result.DrawPct + result.AwayWinPct
		// The away residual makes the sum exact in one-decimal arithmetic.
		if math.Round(sum*10)/10 != 100.0 {
			t.Errorf("percentages for %+v sum to %v, want 100.0", raw, sum)
		}

		for _, pct := range []float64{result.HomeWinPct, result.DrawPct, result.AwayWinPct} {
			if pct < 0 || pct > 100 {
				t.Errorf("percentage %v out of [0, 100] for %+v", pct, raw)
			}
		}

		want := math.Max(result.HomeWinPct, math.Max(result.DrawPct, result.AwayWinPct))
		if result.Confidence != want {
			t.Errorf("confidence %v, want max percentage %v", result.Confidence, want)
		}
	}
}

func TestFinalizeAwayAbsorbsRoundingDrift(t *testing.T) {
	// 1/3 each rounds home and draw to 33.3; away must take the 33.4 residual.
	result, err := Finalize(RawScores{Home: 1, Draw: 1, Away: 1})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if result.HomeWinPct != 33.3 || result.DrawPct != 33.3 {
		t.Errorf("expected 33.3/33.3 for home/draw, got %v/%v", result.HomeWinPct, result.DrawPct)
	}
	if result.AwayWinPct != 33.4 {
		t.Errorf("expected away residual 33.4, got %v", result.AwayWinPct)
	}
}

func TestFinalizeDegenerateScores(t *testing.T) {
	for _, raw := range []RawScores{
		{},
		{Home: 0, Draw: 0, Away: 0},
		{Home: -0.2, Draw: 0.1, Away: 0.1},
	} {
		_, err := Finalize(raw)
		if !errors.Is(err, models.ErrDegenerateScore) {
			t.Errorf("expected ErrDegenerateScore for %+v, got %v", raw, err)
		}
	}
}

func TestFinalizeTieBreaks(t *testing.T) {
	cases := []struct {
		name string
		raw  RawScores
		want models.Outcome
	}{
		{"home beats all", RawScores{Home: 0.5, Draw: 0.2, Away: 0.3}, models.OutcomeHomeWin},
		{"home away tie goes home", RawScores{Home: 0.4, Draw: 0.2, Away: 0.4}, models.OutcomeHomeWin},
		{"three way tie goes home", RawScores{Home: 0.3, Draw: 0.3, Away: 0.3}, models.OutcomeHomeWin},
		{"away draw tie goes away", RawScores{Home: 0.2, Draw: 0.4, Away: 0.4}, models.OutcomeAwayWin},
		{"away beats all", RawScores{Home: 0.2, Draw: 0.3, Away: 0.5}, models.OutcomeAwayWin},
		{"draw only when strictly greatest", RawScores{Home: 0.2, Draw: 0.5, Away: 0.3}, models.OutcomeDraw},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := Finalize(tc.raw)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if result.Outcome != tc.want {
				t.Errorf("expected %s, got %s", tc.want, result.Outcome)
			}
		})
	}
}
