// SPDX-License-Identifier: MIT

package main

import (
	"context"
	stdlog "log"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/matrixlab/config"
	"github.com/katalvlaran/matrixlab/log"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// newRootCmd builds the command tree. A fresh tree per call keeps flag state
// out of package globals.
func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "matrixcalc",
		Short:         "Dense matrix calculator driven by YAML worksheets.",
		Long:          `matrixcalc evaluates worksheets of named matrices and ordered operations (add, mul, det, inverse, softmax, ...) and prints every result.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&configPath, "config", "c", "", "path to a config file (yaml, json or toml)")
	flags.String("log-level", "", "log level: debug, info, warning, error")
	flags.String("solver", "", "determinant solver: cofactor or lu")
	flags.Int("max-det-size", 0, "largest n accepted by det and inverse")
	flags.Int64("seed", 0, "seed for random matrices (0 = time-seeded)")

	bind := map[string]string{
		config.KeyLogLevel:           "log-level",
		config.KeySolver:             "solver",
		config.KeyMaxDeterminantSize: "max-det-size",
		config.KeySeed:               "seed",
	}

	// Flags take precedence over env and file only when set explicitly.
	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		v := config.NewViper(configPath)
		for key, flag := range bind {
			if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
				return nil, err
			}
		}
		cfg, err := config.ReadFrom(v)
		if err != nil {
			return nil, err
		}
		if err := setupLogging(cmd, cfg); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	root.AddCommand(newRunCmd(loadConfig), newVersionCmd())

	return root
}

func setupLogging(cmd *cobra.Command, cfg *config.Config) error {
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	if err := log.SetLevel(level); err != nil {
		return err
	}
	log.New(cmd.ErrOrStderr(), "matrixcalc ", stdlog.Ldate|stdlog.Ltime)

	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
