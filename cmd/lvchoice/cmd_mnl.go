// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchoice/mnl"
)

func newMNLCommand() *cobra.Command {
	var (
		shape     shapeFlags
		alts      []string
		outDir    string
		logsum    string
		stabilize bool
	)

	cmd := &cobra.Command{
		Use:   "mnl --alt name=path [--alt name=path ...]",
		Short: "Evaluate a flat multinomial logit",
		Long: `Evaluate a flat multinomial logit over one utility file per alternative.

Writes <out>/<name>.bin with each alternative's probability and, with
--logsum, the accessibility logsum of the whole choice set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := parsePairs("alt", alts)
			if err != nil {
				return err
			}
			utils, err := shape.readAll(paths)
			if err != nil {
				return err
			}

			opts := mnl.Options{Logsum: logsum != "", Stabilize: stabilize}
			res, err := mnl.Multinomial(utils, &opts)
			if err != nil {
				return err
			}
			slog.Info("Multinomial evaluated", "alternatives", len(utils))

			if err = writeAll(outDir, res.Probabilities, ""); err != nil {
				return err
			}
			if err = writeLogsum(logsum, res.Logsum); err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), res.Probabilities)
		},
	}

	shape.register(cmd)
	cmd.Flags().StringArrayVar(&alts, "alt", nil, "Alternative utility file as name=path (repeatable)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory for probability files")
	cmd.Flags().StringVar(&logsum, "logsum", "", "Write the logsum to this file")
	cmd.Flags().BoolVar(&stabilize, "stabilize", false, "Shift utilities by their per-unit maximum before exponentiating")
	_ = cmd.MarkFlagRequired("alt")

	return cmd
}
