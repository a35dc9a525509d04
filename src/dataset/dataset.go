// Package dataset loads benchmark result CSVs and projects named columns
// into ordered numeric series for plotting.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Record is one CSV data row keyed by header column name.
type Record map[string]string

// Dataset is the in-memory form of one loaded CSV file: an ordered sequence
// of records sharing the header's column set. Immutable after Load.
type Dataset struct {
	path    string
	header  []string
	records []Record
}

// Load reads the CSV at path, preserving row order. The first row is the
// header; every data row must have the same number of fields.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &NotFoundError{Path: path, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, &FormatError{Path: path, Err: fmt.Errorf("missing header row: %w", err)}
	}
	var records []Record
	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &FormatError{Path: path, Err: err}
		}
		rec := make(Record, len(header))
		for i, name := range header {
			rec[name] = row[i]
		}
		records = append(records, rec)
	}
	return &Dataset{path: path, header: header, records: records}, nil
}

// Len returns the number of data rows.
func (d *Dataset) Len() int { return len(d.records) }

// Path returns the source file the dataset was loaded from.
func (d *Dataset) Path() string { return d.path }

// Column projects one named column as an ordered float64 series, aligned
// with row order.
func (d *Dataset) Column(name string) ([]float64, error) {
	return d.ColumnScaled(name, 1)
}

// ColumnScaled projects a column and multiplies every value by factor, for
// unit conversions such as kB to MB. Any non-numeric cell fails the whole
// projection; there are no partial results.
func (d *Dataset) ColumnScaled(name string, factor float64) ([]float64, error) {
	if !d.hasColumn(name) {
		return nil, &FormatError{Path: d.path, Err: fmt.Errorf("column %q not in header", name)}
	}
	vals := make([]float64, len(d.records))
	for i, rec := range d.records {
		raw := rec[name]
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return nil, &ConversionError{Path: d.path, Column: name, Row: i, Value: raw, Err: err}
		}
		vals[i] = v * factor
	}
	return vals, nil
}

func (d *Dataset) hasColumn(name string) bool {
	for _, h := range d.header {
		if h == name {
			return true
		}
	}
	return false
}
