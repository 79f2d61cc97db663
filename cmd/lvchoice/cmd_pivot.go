// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvchoice/mnl"
)

func newPivotCommand() *cobra.Command {
	var (
		shape         shapeFlags
		base, updated []string
		probs         []string
		outDir        string
	)

	cmd := &cobra.Command{
		Use:   "pivot --base name=path --updated name=path --prob name=path ...",
		Short: "Evaluate a pivot-point logit",
		Long: `Reweight base-scenario probabilities by the change in utility between a
base and an updated scenario. Every alternative needs all three files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs := make([]map[string]string, 3)
			for i, pair := range []struct {
				flag  string
				value []string
			}{{"base", base}, {"updated", updated}, {"prob", probs}} {
				m, err := parsePairs(pair.flag, pair.value)
				if err != nil {
					return err
				}
				inputs[i] = m
			}

			baseU, err := shape.readAll(inputs[0])
			if err != nil {
				return err
			}
			updU, err := shape.readAll(inputs[1])
			if err != nil {
				return err
			}
			po, err := shape.readAll(inputs[2])
			if err != nil {
				return err
			}

			out, err := mnl.PivotPoint(baseU, updU, po)
			if err != nil {
				return err
			}
			slog.Info("Pivot point evaluated", "alternatives", len(out))

			if err = writeAll(outDir, out, ""); err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), out)
		},
	}

	shape.register(cmd)
	cmd.Flags().StringArrayVar(&base, "base", nil, "Base utility file as name=path (repeatable)")
	cmd.Flags().StringArrayVar(&updated, "updated", nil, "Updated utility file as name=path (repeatable)")
	cmd.Flags().StringArrayVar(&probs, "prob", nil, "Base probability file as name=path (repeatable)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory for probability files")
	for _, f := range []string{"base", "updated", "prob"} {
		_ = cmd.MarkFlagRequired(f)
	}

	return cmd
}
