// Package ml implements the learned probability backend: a standard scaler
// plus a multinomial logistic regression, trained offline and loaded from a
// JSON artifact at startup.
package ml

import (
	"fmt"
	"math"
)

// Scaler standardizes features to zero mean and unit variance using
// parameters fixed at training time. Applying it at prediction time must use
// the training-set parameters, never re-fit ones.
type Scaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// FitScaler computes per-column mean and standard deviation over the rows.
// Columns with zero variance get scale 1 so transformation is a no-op there.
func FitScaler(rows [][]float64) (*Scaler, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("cannot fit scaler on empty dataset")
	}
	dim := len(rows[0])

	mean := make([]float64, dim)
	for _, row := range rows {
		if len(row) != dim {
			return nil, fmt.Errorf("inconsistent row width: expected %d, got %d", dim, len(row))
		}
		for j, v := range row {
			mean[j] += v
		}
	}
	n := float64(len(rows))
	for j := range mean {
		mean[j] /= n
	}

	scale := make([]float64, dim)
	for _, row := range rows {
		for j, v := range row {
			d := v - mean[j]
			scale[j] += d * d
		}
	}
	for j := range scale {
		scale[j] = math.Sqrt(scale[j] / n)
		if scale[j] == 0 {
			scale[j] = 1
		}
	}

	return &Scaler{Mean: mean, Scale: scale}, nil
}

// Transform standardizes a single feature row.
func (s *Scaler) Transform(row []float64) []float64 {
	out := make([]float64, len(row))
	for j, v := range row {
		out[j] = (v - s.Mean[j]) / s.Scale[j]
	}
	return out
}

// TransformAll standardizes every row.
func (s *Scaler) TransformAll(rows [][]float64) [][]float64 {
	out := make([][]float64, len(rows))
	for i, row := range rows {
		out[i] = s.Transform(row)
	}
	return out
}

// Dim returns the number of features the scaler was fit on.
func (s *Scaler) Dim() int {
	return len(s.Mean)
}
