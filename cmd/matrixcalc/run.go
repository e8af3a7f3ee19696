// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixlab/config"
	"github.com/katalvlaran/matrixlab/log"
	"github.com/katalvlaran/matrixlab/worksheet"
)

func newRunCmd(loadConfig func(*cobra.Command) (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "run <worksheet.yaml>",
		Short: "Executes a worksheet and prints every step result.",
		Long: `Executes the steps of a worksheet in order. Each result is printed as
"[index] op [-> saved]" followed by the rendered matrix. The run stops at the
first failing step; results computed before it are still printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			doc, err := worksheet.ParseFile(args[0])
			if err != nil {
				return err
			}

			runner := worksheet.NewRunner(
				worksheet.WithSolver(cfg.DeterminantSolver()),
				worksheet.WithMaxDeterminantSize(cfg.MaxDeterminantSize),
				worksheet.WithSeed(cfg.Seed),
			)
			log.Infof("running %s (solver=%s)", args[0], cfg.Solver)

			rep, err := runner.Run(commandContext(cmd), doc)
			printReport(cmd.OutOrStdout(), rep)
			if err != nil {
				return err
			}
			log.Infof("[%s] completed %d steps", rep.ID, len(rep.Results))

			return nil
		},
	}
}

func printReport(w io.Writer, rep *worksheet.Report) {
	if rep == nil {
		return
	}
	for _, res := range rep.Results {
		if res.Saved != "" {
			fmt.Fprintf(w, "[%d] %s -> %s\n", res.Index, res.Op, res.Saved)
		} else {
			fmt.Fprintf(w, "[%d] %s\n", res.Index, res.Op)
		}
		fmt.Fprintf(w, "%s\n\n", res)
	}
}
