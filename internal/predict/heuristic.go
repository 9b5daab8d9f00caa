package predict

import (
	"math"

	"github.com/yourusername/matchcast/internal/feature"
)

// Heuristic constants, empirically tuned against historical Premier League
// seasons. Do not re-derive: downstream consumers are validated against
// worked examples produced with exactly these values.
const (
	// HomeAdvantage is the flat home-field advantage added to the home score
	// and subtracted from the away score.
	HomeAdvantage = 0.12

	baseHome = 0.38
	baseDraw = 0.28
	baseAway = 0.34

	strengthScale = 3.0
	attackWeight  = 0.15
	formWeight    = 0.2
	drawShrink    = 0.3

	homeMin = 0.08
	homeMax = 0.80
	drawMin = 0.10
	drawMax = 0.38
	awayMin = 0.08
	awayMax = 0.70
)

// Heuristic is the closed-form probability backend. It needs no trained
// artifact and reads only the core feature families, which makes it the
// fallback wherever no model is available.
type Heuristic struct{}

// NewHeuristic creates the heuristic backend.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Name returns the backend identifier.
func (h *Heuristic) Name() string {
	return "heuristic"
}

// FeatureSet reports that the heuristic never reads shot columns.
func (h *Heuristic) FeatureSet() feature.Set {
	return feature.SetCore
}

// Estimate scores a fixture from four difference signals. Clamping keeps
// every outcome away from 0% and 100%, and the draw score shrinks as the
// strength gap grows: lopsided fixtures are less likely to end level.
func (h *Heuristic) Estimate(vec feature.Vector) (RawScores, error) {
	strengthDelta := vec.At(feature.ColPPGDiff) / strengthScale
	attackDelta := vec.At(feature.ColAttackVsDefense) * attackWeight
	defenseDelta := vec.At(feature.ColDefenseVsAttack) * attackWeight
	formDelta := vec.At(feature.ColWinRateDiff) * formWeight

	raw := RawScores{
		Home: clamp(baseHome+HomeAdvantage+strengthDelta+attackDelta+formDelta, homeMin, homeMax),
		Draw: clamp(baseDraw-math.Abs(strengthDelta)*drawShrink, drawMin, drawMax),
		Away: clamp(baseAway-HomeAdvantage-strengthDelta-defenseDelta-formDelta, awayMin, awayMax),
	}
	return raw, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
