// SPDX-License-Identifier: MIT
// Package: moddecomp/cmd/moddecomp
//
// root.go — cobra command tree. Grounded on matzehuels-stacktower's
// internal/cli/root.go and internal/cli/log.go: a single PersistentPreRun
// wiring --verbose into the charmbracelet/log level, a logger threaded
// through instead of a global, and a per-run correlation id for log lines.

package main

import (
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var (
		inputPath  string
		configPath string
		verbose    bool
		logger     *charmlog.Logger
	)

	cmd := &cobra.Command{
		Use:          "moddecomp",
		Short:        "Compute the modular decomposition tree of an undirected graph",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()

			cfg := defaultRunConfig()
			if configPath != "" {
				var err error
				cfg, err = loadRunConfig(configPath)
				if err != nil {
					return err
				}
			}

			in := cmd.InOrStdin()
			if inputPath != "" {
				f, err := os.Open(inputPath)
				if err != nil {
					return errorf("RunE", ErrBadInput, "opening %s: %v", inputPath, err)
				}
				defer f.Close()
				in = f
			}

			logger.Info("starting decomposition", "run_id", runID, "input", inputSourceName(inputPath))
			if err := decompose(in, cmd.OutOrStdout(), cfg, logger, runID); err != nil {
				logger.Error("decomposition failed", "run_id", runID, "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&inputPath, "input", "", "path to an edge-list file (default: stdin)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML run configuration")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func inputSourceName(path string) string {
	if path == "" {
		return "stdin"
	}
	return path
}
