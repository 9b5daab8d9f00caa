package models

// Outcome is the predicted result label of a fixture.
type Outcome string

const (
	OutcomeHomeWin Outcome = "Home Win"
	OutcomeDraw    Outcome = "Draw"
	OutcomeAwayWin Outcome = "Away Win"
)

// PredictionResult is the final output of the prediction pipeline.
// The three percentages carry one decimal of precision and sum to exactly
// 100.0; the away percentage is assigned as the residual so rounding drift
// never breaks the total. A result is immutable once constructed.
type PredictionResult struct {
	HomeWinPct float64 `json:"home_win_pct" validate:"gte=0,lte=100"`
	DrawPct    float64 `json:"draw_pct" validate:"gte=0,lte=100"`
	AwayWinPct float64 `json:"away_win_pct" validate:"gte=0,lte=100"`
	Outcome    Outcome `json:"predicted_outcome" validate:"required"`
	Confidence float64 `json:"confidence" validate:"gte=0,lte=100"`
	Backend    string  `json:"backend,omitempty"`
}

// MeetsThreshold checks if the confidence meets the given threshold.
func (p *PredictionResult) MeetsThreshold(threshold float64) bool {
	return p.Confidence >= threshold
}
