package service

import (
	"fmt"

	"github.com/yourusername/matchcast/internal/feature"
	"github.com/yourusername/matchcast/internal/ml"
	"github.com/yourusername/matchcast/internal/models"
)

// resultLabels maps FTR codes to training labels.
var resultLabels = map[string]int{
	models.ResultHomeWin: ml.LabelHomeWin,
	models.ResultDraw:    ml.LabelDraw,
	models.ResultAwayWin: ml.LabelAwayWin,
}

// BuildTrainingSet builds the supervised table: one full feature row per
// match, labelled with its outcome. Matches involving a team absent from the
// stats map are skipped.
func BuildTrainingSet(matches []models.Match, stats map[string]*models.TeamStats) (*ml.Dataset, error) {
	ds := &ml.Dataset{}

	for i := range matches {
		m := &matches[i]
		home, ok := stats[m.HomeTeam]
		if !ok {
			continue
		}
		away, ok := stats[m.AwayTeam]
		if !ok {
			continue
		}

		label, ok := resultLabels[m.Result]
		if !ok {
			continue
		}

		vec, err := feature.Build(home, away, feature.SetFull)
		if err != nil {
			return nil, fmt.Errorf("match %s vs %s: %w", m.HomeTeam, m.AwayTeam, err)
		}
		ds.Append(vec.Values(), label)
	}

	if ds.Len() == 0 {
		return nil, fmt.Errorf("no matches usable for training")
	}
	return ds, nil
}
