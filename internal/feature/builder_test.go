package feature

import (
	"errors"
	"math"
	"testing"

	"github.com/yourusername/matchcast/internal/models"
)

func ptr(f float64) *float64 { return &f }

func sampleStats() (*models.TeamStats, *models.TeamStats) {
	home := &models.TeamStats{
		TeamID:           "Arsenal",
		WinRate:          0.631,
		DrawRate:         0.184,
		GoalsScoredAvg:   2.017,
		GoalsConcededAvg: 0.972,
		GoalDiffAvg:      1.045,
		PointsPerGame:    2.089,
		HomeWinRate:      0.7,
		AwayWinRate:      0.55,
		ShotsAvg:         ptr(16.2),
		ShotsOnTargetAvg: ptr(7.1),
	}
	away := &models.TeamStats{
		TeamID:           "Wolves",
		WinRate:          0.291,
		DrawRate:         0.188,
		GoalsScoredAvg:   1.067,
		GoalsConcededAvg: 1.592,
		GoalDiffAvg:      -0.525,
		PointsPerGame:    1.061,
		HomeWinRate:      0.35,
		AwayWinRate:      0.22,
		ShotsAvg:         ptr(10.8),
		ShotsOnTargetAvg: ptr(3.9),
	}
	return home, away
}

func TestBuildFullVector(t *testing.T) {
	home, away := sampleStats()

	vec, err := Build(home, away, SetFull)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	values := vec.Values()
	if len(values) != Dim {
		t.Fatalf("expected %d features, got %d", Dim, len(values))
	}

	if got := vec.At(ColHomePPG); got != 2.089 {
		t.Errorf("expected home ppg 2.089, got %v", got)
	}
	if got := vec.At(ColAwayAwayWinRate); got != 0.22 {
		t.Errorf("expected away_away_win_rate 0.22, got %v", got)
	}
	if got := vec.At(ColHomeShotsAvg); got != 16.2 {
		t.Errorf("expected home shots avg 16.2, got %v", got)
	}

	wantPPGDiff := 2.089 - 1.061
	if got := vec.At(ColPPGDiff); math.Abs(got-wantPPGDiff) > 1e-12 {
		t.Errorf("expected ppg_diff %v, got %v", wantPPGDiff, got)
	}
	wantAttack := 2.017 - 1.592
	if got := vec.At(ColAttackVsDefense); math.Abs(got-wantAttack) > 1e-12 {
		t.Errorf("expected attack_vs_defense %v, got %v", wantAttack, got)
	}
	wantDefense := 1.067 - 0.972
	if got := vec.At(ColDefenseVsAttack); math.Abs(got-wantDefense) > 1e-12 {
		t.Errorf("expected defense_vs_attack %v, got %v", wantDefense, got)
	}
}

func TestBuildIsPure(t *testing.T) {
	home, away := sampleStats()

	first, err := Build(home, away, SetFull)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	second, err := Build(home, away, SetFull)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	for i := 0; i < Dim; i++ {
		if first.At(i) != second.At(i) {
			t.Fatalf("column %d differs between builds: %v vs %v", i, first.At(i), second.At(i))
		}
	}
}

func TestBuildFullRequiresShotStats(t *testing.T) {
	home, away := sampleStats()
	away.ShotsAvg = nil

	_, err := Build(home, away, SetFull)
	if !errors.Is(err, models.ErrMissingStat) {
		t.Fatalf("expected ErrMissingStat, got %v", err)
	}
}

func TestBuildCoreToleratesMissingShotStats(t *testing.T) {
	home, away := sampleStats()
	home.ShotsAvg = nil
	home.ShotsOnTargetAvg = nil

	vec, err := Build(home, away, SetCore)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if vec.Set() != SetCore {
		t.Errorf("expected core feature set, got %v", vec.Set())
	}
}

func TestColumnNamesMatchLayout(t *testing.T) {
	if Columns[ColHomeWinRate] != "home_win_rate" {
		t.Errorf("unexpected first column: %s", Columns[ColHomeWinRate])
	}
	if Columns[ColDefenseVsAttack] != "defense_vs_attack" {
		t.Errorf("unexpected last column: %s", Columns[ColDefenseVsAttack])
	}
	seen := make(map[string]bool, Dim)
	for _, name := range Columns {
		if seen[name] {
			t.Fatalf("duplicate column name: %s", name)
		}
		seen[name] = true
	}
}
