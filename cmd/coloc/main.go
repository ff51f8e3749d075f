// Command coloc runs cooperative localization algorithms over sample
// files: one-shot solving, per-iteration animation frames, and
// multi-algorithm comparison grids.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	coloc "github.com/k3ap/cooperative-localization"
)

var logLevel string

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "coloc",
		Short:         "Estimate node positions from noisy distance measurements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn",
		"minimum log level (debug, info, warn, error)")

	cmd.AddCommand(solveCmd())
	cmd.AddCommand(animateCmd())
	cmd.AddCommand(compareCmd())
	cmd.AddCommand(listCmd())
	return cmd
}

func newLogger() (*coloc.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", logLevel, err)
	}
	return coloc.NewTextLogger(level), nil
}

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered algorithms",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range coloc.Algorithms() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "coloc:", err)
		os.Exit(1)
	}
}
