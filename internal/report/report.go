// SPDX-License-Identifier: MIT

// Package report summarizes evaluation outputs for the command line.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/lvchoice/field"
)

// Row is the summary of one output field.
type Row struct {
	Name string
	Sum  float64
	Mean float64
	Min  float64
	Max  float64
}

// Summarize computes the total, mean and range of f over all units.
func Summarize(name string, f *field.Field) (Row, error) {
	if f == nil {
		return Row{}, fmt.Errorf("%q: %w", name, field.ErrNilField)
	}
	data := stats.Float64Data(f.Raw())
	row := Row{Name: name}
	var err error
	if row.Sum, err = data.Sum(); err != nil {
		return Row{}, fmt.Errorf("%q sum: %w", name, err)
	}
	if row.Mean, err = data.Mean(); err != nil {
		return Row{}, fmt.Errorf("%q mean: %w", name, err)
	}
	if row.Min, err = data.Min(); err != nil {
		return Row{}, fmt.Errorf("%q min: %w", name, err)
	}
	if row.Max, err = data.Max(); err != nil {
		return Row{}, fmt.Errorf("%q max: %w", name, err)
	}

	return row, nil
}

// SummarizeAll summarizes every field of m, sorted by name.
func SummarizeAll(m map[string]*field.Field) ([]Row, error) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		row, err := Summarize(name, m[name])
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// Write renders rows as an aligned table.
func Write(w io.Writer, rows []Row) error {
	if _, err := fmt.Fprintf(w, "  %-12s %14s %10s %10s %10s\n", "Code", "Sum", "Mean", "Min", "Max"); err != nil {
		return err
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "  %-12s %14.4f %10.4f %10.4f %10.4f\n", r.Name, r.Sum, r.Mean, r.Min, r.Max); err != nil {
			return err
		}
	}

	return nil
}
