// Package cmd implements the chartspec CLI command tree.
// This file defines the root command and registers all global persistent flags.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/app"
	"github.com/derickschaefer/chartspec/internal/config"
)

// globalFlags holds the parsed values of all persistent (global) flags.
// Commands read from this struct via the deps they receive.
var globalFlags struct {
	Format  string
	DB      string
	Out     string
	Indent  int
	Quiet   bool
	Verbose bool
	Debug   bool
}

// rootCmd is the base command. Running `chartspec` with no subcommand
// prints help.
var rootCmd = &cobra.Command{
	Use:   "chartspec",
	Short: "chartspec: build, format and check ECharts option documents",
	Long: `chartspec reads, writes and checks ECharts option documents.

Documents are decoded into a typed chart model, so anything chartspec
writes back out is normalised: fields are ordered, empty options dropped
and single-element lists written as a single object.

Quick start:
  chartspec fmt chart.json                     # normalise a document
  chartspec validate charts/*.json             # check a batch of files
  chartspec inspect chart.yaml                 # per-series statistics
  cat rain.jsonl | chartspec line --title Rain # build a chart from data`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// buildDeps resolves config and constructs the dependency container.
// Called at the start of each command's RunE.
func buildDeps() (*app.Deps, error) {
	cfg, err := config.Load(globalFlags.Format, globalFlags.DB)
	if err != nil {
		return nil, err
	}

	// Apply CLI flag overrides
	cfg.Quiet = globalFlags.Quiet
	cfg.Verbose = globalFlags.Verbose
	cfg.Debug = globalFlags.Debug
	if globalFlags.Indent > 0 {
		cfg.Indent = globalFlags.Indent
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.New(cfg, os.Stderr), nil
}

func init() {
	pf := rootCmd.PersistentFlags()

	pf.StringVar(&globalFlags.Format, "format", "",
		"document format: json|compact|yaml (default: json)")
	pf.StringVar(&globalFlags.DB, "db", "",
		"chart store path (overrides env CHARTSPEC_DB_PATH and chartspec.toml)")
	pf.StringVar(&globalFlags.Out, "out", "",
		"write output to file instead of stdout")
	pf.IntVar(&globalFlags.Indent, "indent", 0,
		"spaces per indent level for json and yaml (default: 2)")
	pf.BoolVar(&globalFlags.Quiet, "quiet", false,
		"suppress all non-error output")
	pf.BoolVar(&globalFlags.Verbose, "verbose", false,
		"log progress and show timing stats after output")
	pf.BoolVar(&globalFlags.Debug, "debug", false,
		"log decoding and store operations")

	_ = rootCmd.RegisterFlagCompletionFunc("format", fixedValues(config.Formats...))
}
