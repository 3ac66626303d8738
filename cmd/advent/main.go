// Package main is the entry point for the advent CLI.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/advent/internal/config"
	"github.com/katalvlaran/advent/internal/logging"
	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/puzzle/all"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := rootCmd(all.Registry()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// globals are the persistent flags shared by every subcommand.
type globals struct {
	envFile string
	format  string
}

func rootCmd(reg *puzzle.Registry) *cobra.Command {
	g := &globals{}
	cmd := &cobra.Command{
		Use:           "advent",
		Short:         "Solve daily puzzles",
		Long:          `advent reads a day's puzzle input and prints the answers to both parts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&g.envFile, "env-file", ".env", "Path to .env file; a missing file is ignored")
	cmd.PersistentFlags().StringVarP(&g.format, "format", "f", string(formatText), "Output format: text, json, yaml")

	cmd.AddCommand(solveCmd(reg, g))
	cmd.AddCommand(listCmd(reg, g))
	cmd.AddCommand(versionCmd())
	return cmd
}

// setup loads configuration and builds the logger writing to the command's
// error stream.
func setup(cmd *cobra.Command, g *globals) (config.Config, *logrus.Logger, error) {
	cfg, err := config.Load(g.envFile)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logging.New(cmd.ErrOrStderr(), cfg), nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "advent version %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", commit)
		},
	}
}
