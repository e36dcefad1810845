package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	schemaFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "lazyenv",
	Short: "Typed, validated environment configuration from a declarative schema",
	Long: `Lazyenv manages environment-backed configuration declaratively.

A YAML schema names the environment variables an application uses, their
defaults, and their validation rules. Lazyenv loads an optional .env
overlay, resolves each variable against the merged environment, and
validates the values, replacing hand-written get-env-or-default
boilerplate with one schema.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: level,
		})))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&schemaFile, "schema", "s", "lazyenv.yaml", "schema file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
