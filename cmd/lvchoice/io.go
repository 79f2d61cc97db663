// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchoice/field"
	"github.com/katalvlaran/lvchoice/internal/report"
	"github.com/katalvlaran/lvchoice/rawio"
)

// shapeFlags selects how input files are interpreted.
type shapeFlags struct {
	rank int
	n    int
}

func (s *shapeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&s.rank, "rank", field.RankSquare, "1 for flat vectors, 2 for square zone matrices")
	cmd.Flags().IntVar(&s.n, "n", 0, "Vector length or zone count (0 infers it from the file size)")
}

// read loads one input file.
func (s shapeFlags) read(path string) (*field.Field, error) {
	if s.n > 0 {
		return rawio.ReadFile(path, field.Shape{Rank: s.rank, N: s.n})
	}
	switch s.rank {
	case field.RankVector:
		return rawio.ReadFlatFile(path)
	case field.RankSquare:
		return rawio.ReadSquareFile(path)
	default:
		return nil, fmt.Errorf("rank %d: %w", s.rank, field.ErrBadShape)
	}
}

// parsePairs turns ["auto=a.bin", ...] into a name → path map.
func parsePairs(flag string, pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, p := range pairs {
		name, path, ok := strings.Cut(p, "=")
		if !ok || name == "" || path == "" {
			return nil, fmt.Errorf("--%s %q: want name=path", flag, p)
		}
		if err := checkName(name); err != nil {
			return nil, fmt.Errorf("--%s: %w", flag, err)
		}
		if _, dup := out[name]; dup {
			return nil, fmt.Errorf("--%s: %q given twice", flag, name)
		}
		out[name] = path
	}

	return out, nil
}

// checkName rejects names that would escape the output directory once
// joined as <dir>/<name>.bin.
func checkName(name string) error {
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return fmt.Errorf("name %q: must be a plain file name", name)
	}

	return nil
}

// readAll loads every name → path entry.
func (s shapeFlags) readAll(paths map[string]string) (map[string]*field.Field, error) {
	out := make(map[string]*field.Field, len(paths))
	for name, path := range paths {
		f, err := s.read(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		slog.Debug("Loaded input", "name", name, "path", path, "shape", f.Shape().String())
		out[name] = f
	}

	return out, nil
}

// writeAll writes <dir>/<name>.bin for every entry except skip.
func writeAll(dir string, fields map[string]*field.Field, skip string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, name := range field.SortedKeys(fields) {
		if name == skip {
			continue
		}
		if err := checkName(name); err != nil {
			return err
		}
		path := filepath.Join(dir, name+".bin")
		if err := rawio.WriteFile(path, fields[name]); err != nil {
			return err
		}
		slog.Debug("Wrote output", "name", name, "path", path)
	}

	return nil
}

// writeLogsum writes the logsum field to path when both are set.
func writeLogsum(path string, f *field.Field) error {
	if path == "" || f == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	slog.Debug("Wrote logsum", "path", path)

	return rawio.WriteFile(path, f)
}

// printSummary renders the per-code report.
func printSummary(w io.Writer, fields map[string]*field.Field) error {
	rows, err := report.SummarizeAll(fields)
	if err != nil {
		return err
	}

	return report.Write(w, rows)
}
