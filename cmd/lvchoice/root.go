// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lvchoice",
		Short: "lvchoice - discrete-choice probabilities from utility matrices",
		Long: `lvchoice evaluates multinomial, pivot-point and nested logit models.

Utilities are read from headerless little-endian float64 files (vectors or
square zone matrices); probabilities are written back in the same format,
one file per alternative.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	cmd.AddCommand(newMNLCommand())
	cmd.AddCommand(newPivotCommand())
	cmd.AddCommand(newNestedCommand())

	return cmd
}

func execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCommand().ExecuteContext(ctx)
}
