package ml

import (
	"math"
	"testing"
)

func TestFitScaler(t *testing.T) {
	rows := [][]float64{
		{1, 10, 5},
		{3, 10, 7},
		{5, 10, 9},
	}

	scaler, err := FitScaler(rows)
	if err != nil {
		t.Fatalf("FitScaler: %v", err)
	}

	if scaler.Dim() != 3 {
		t.Fatalf("expected dim 3, got %d", scaler.Dim())
	}
	if scaler.Mean[0] != 3 || scaler.Mean[1] != 10 || scaler.Mean[2] != 7 {
		t.Errorf("unexpected means: %v", scaler.Mean)
	}

	// Column 1 has zero variance; its scale falls back to 1 so the
	// transform is an offset only.
	if scaler.Scale[1] != 1 {
		t.Errorf("zero-variance column should scale by 1, got %v", scaler.Scale[1])
	}

	want := math.Sqrt(8.0 / 3.0)
	if math.Abs(scaler.Scale[0]-want) > 1e-12 {
		t.Errorf("expected scale %v for column 0, got %v", want, scaler.Scale[0])
	}
}

func TestScalerTransform(t *testing.T) {
	scaler := &Scaler{Mean: []float64{2, 10}, Scale: []float64{2, 1}}

	out := scaler.Transform([]float64{6, 10})
	if out[0] != 2 || out[1] != 0 {
		t.Errorf("unexpected transform: %v", out)
	}
}

func TestScalerTransformedStats(t *testing.T) {
	rows := [][]float64{{1, 2}, {5, 4}, {9, 12}, {3, 6}}

	scaler, err := FitScaler(rows)
	if err != nil {
		t.Fatalf("FitScaler: %v", err)
	}

	scaled := scaler.TransformAll(rows)
	for j := 0; j < 2; j++ {
		var mean, variance float64
		for _, row := range scaled {
			mean += row[j]
		}
		mean /= float64(len(scaled))
		for _, row := range scaled {
			d := row[j] - mean
			variance += d * d
		}
		variance /= float64(len(scaled))

		if math.Abs(mean) > 1e-12 {
			t.Errorf("column %d: expected zero mean, got %v", j, mean)
		}
		if math.Abs(variance-1) > 1e-12 {
			t.Errorf("column %d: expected unit variance, got %v", j, variance)
		}
	}
}

func TestFitScalerErrors(t *testing.T) {
	if _, err := FitScaler(nil); err == nil {
		t.Error("expected error for empty dataset")
	}
	if _, err := FitScaler([][]float64{{1, 2}, {1}}); err == nil {
		t.Error("expected error for ragged rows")
	}
}
