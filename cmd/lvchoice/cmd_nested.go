// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchoice/field"
	"github.com/katalvlaran/lvchoice/internal/config"
	"github.com/katalvlaran/lvchoice/nested"
	"github.com/katalvlaran/lvchoice/rawio"
)

func newNestedCommand() *cobra.Command {
	var (
		configPath string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "nested --config run.yaml",
		Short: "Evaluate a nested logit from a YAML run definition",
		Long: `Evaluate a nested logit over the tree, leaf utility files and shape
described by a YAML run definition.

Writes <output_dir>/<code>.bin with the unconditional probability of every
nest and leaf, and the ROOT logsum when the definition names a logsum file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			run, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if workers > 0 {
				run.Workers = workers
			}
			tree, err := run.BuildTree()
			if err != nil {
				return err
			}

			shape := run.FieldShape()
			leaves := make(map[string]*field.Field, len(run.Leaves))
			for _, code := range tree.Leaves() {
				f, err := rawio.ReadFile(run.Leaves[code], shape)
				if err != nil {
					return err
				}
				leaves[code] = f
			}
			slog.Debug("Loaded leaves", "count", len(leaves), "shape", shape.String())

			opts := nested.Options{Logsum: run.Logsum != "", Workers: run.Workers}
			res, err := nested.Evaluate(cmd.Context(), tree, leaves, shape, &opts)
			if err != nil {
				return err
			}
			slog.Info("Nested logit evaluated", "levels", tree.Depth(), "codes", len(res.Probabilities))

			if err = writeAll(run.OutputDir, res.Probabilities, nested.RootCode); err != nil {
				return err
			}
			if err = writeLogsum(run.Logsum, res.Logsum); err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), res.Probabilities)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML run definition")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Nests evaluated concurrently per level (overrides the definition)")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
