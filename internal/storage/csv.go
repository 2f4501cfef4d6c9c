package storage

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadColumns reads two numeric columns from a CSV file. A first row that does
// not parse as numbers is treated as a header. Blank lines are skipped.
func ReadColumns(path string, xcol, ycol int) (x, y []float64, err error) {
	cols, err := readCSV(path, xcol, ycol)
	if err != nil {
		return nil, nil, err
	}
	return cols[0], cols[1], nil
}

// ReadColumn reads a single numeric column, e.g. raw histogram data.
func ReadColumn(path string, col int) ([]float64, error) {
	cols, err := readCSV(path, col)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

func readCSV(path string, cols ...int) ([][]float64, error) {
	for _, c := range cols {
		if c < 0 {
			return nil, fmt.Errorf("%s: negative column index %d", path, c)
		}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comment = '#'

	out := make([][]float64, len(cols))
	for line := 1; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && strings.TrimSpace(record[0]) == "" {
			continue
		}

		row := make([]float64, len(cols))
		for i, c := range cols {
			if c >= len(record) {
				return nil, fmt.Errorf("%s:%d: no column %d", path, line, c)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(record[c]), 64)
			if err != nil {
				if line == 1 {
					row = nil
					break
				}
				return nil, fmt.Errorf("%s:%d: %w", path, line, err)
			}
			row[i] = v
		}
		if row == nil {
			continue
		}
		for i, v := range row {
			out[i] = append(out[i], v)
		}
	}
	if len(out[0]) == 0 {
		return nil, fmt.Errorf("%s: no numeric rows", path)
	}
	return out, nil
}
