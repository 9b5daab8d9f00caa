package ml

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/yourusername/matchcast/internal/feature"
)

// Label values in the training table's result column.
const (
	LabelHomeWin = 0
	LabelDraw    = 1
	LabelAwayWin = 2
)

// ClassNames lists outcome display names in label order.
var ClassNames = [NumClasses]string{"Home Win", "Draw", "Away Win"}

// Dataset is the supervised training table: one feature row and outcome
// label per historical match.
type Dataset struct {
	Rows   [][]float64
	Labels []int
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// Append adds one sample.
func (d *Dataset) Append(row []float64, label int) {
	d.Rows = append(d.Rows, row)
	d.Labels = append(d.Labels, label)
}

// Subset returns a dataset view containing the given sample indices.
func (d *Dataset) Subset(indices []int) *Dataset {
	sub := &Dataset{
		Rows:   make([][]float64, 0, len(indices)),
		Labels: make([]int, 0, len(indices)),
	}
	for _, i := range indices {
		sub.Rows = append(sub.Rows, d.Rows[i])
		sub.Labels = append(sub.Labels, d.Labels[i])
	}
	return sub
}

// WriteCSV writes the dataset with a header of feature columns plus the
// trailing result column.
func (d *Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, feature.Dim+1)
	header = append(header, feature.Columns[:]...)
	header = append(header, "result")
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, feature.Dim+1)
	for i, row := range d.Rows {
		if len(row) != feature.Dim {
			return fmt.Errorf("row %d has %d features, expected %d", i, len(row), feature.Dim)
		}
		for j, v := range row {
			record[j] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		record[feature.Dim] = strconv.Itoa(d.Labels[i])
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV parses a dataset written by WriteCSV, verifying the header matches
// the current feature layout.
func ReadCSV(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if len(header) != feature.Dim+1 || header[feature.Dim] != "result" {
		return nil, fmt.Errorf("unexpected header: %d columns, last %q", len(header), header[len(header)-1])
	}
	for j, name := range feature.Columns {
		if header[j] != name {
			return nil, fmt.Errorf("column %d is %q, expected %q", j, header[j], name)
		}
	}

	ds := &Dataset{}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}

		row := make([]float64, feature.Dim)
		for j := 0; j < feature.Dim; j++ {
			row[j], err = strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d column %d: %w", line, j, err)
			}
		}
		label, err := strconv.Atoi(record[feature.Dim])
		if err != nil || label < 0 || label >= NumClasses {
			return nil, fmt.Errorf("line %d: invalid label %q", line, record[feature.Dim])
		}
		ds.Append(row, label)
	}

	return ds, nil
}

// LoadDataset reads a training table from a CSV file on disk.
func LoadDataset(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open training data: %w", err)
	}
	defer f.Close()

	return ReadCSV(f)
}
