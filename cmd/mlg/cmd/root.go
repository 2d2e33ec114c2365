// SPDX-FileCopyrightText: © 2021 The mlg authors <https://github.com/golangee/mlg/blob/main/AUTHORS>
// SPDX-License-Identifier: Apache-2.0

// Package cmd contains the commands of the mlg tool.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/golangee/mlg/config"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mlg",
	Short: "mlg checks and formats ChalkTalk documents",
	Long: `mlg parses documents written in ChalkTalk with TexTalk statements,
reports every problem it finds and prints the canonical form of a document.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.yaml or .toml), defaults apply if omitted")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger logs to stderr. Each invocation gets its own run id, so that the
// output of concurrent runs, e.g. in watch mode, can be told apart.
func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return log.With("run", uuid.NewString())
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
