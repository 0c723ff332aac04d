package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/app"
	"github.com/derickschaefer/chartspec/internal/model"
)

// ─── fmt ──────────────────────────────────────────────────────────────────────

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Normalise a chart document",
	Long: `Read a JSON or YAML chart document (stdin when no file is given), decode it
into the chart model and write it back in canonical form.

--format json writes indented JSON with code fragments (formatters, custom
renderers) unquoted, ready to paste into a page. compact and yaml keep those
fragments as strings so the output decodes again.`,
	Example: `  chartspec fmt chart.json
  chartspec fmt chart.yaml --format compact
  cat chart.json | chartspec fmt --format yaml --out chart.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		c, err := readChart(cmd, deps, args)
		if err != nil {
			return err
		}
		return writeChart(cmd, deps, c)
	},
}

// ─── validate ─────────────────────────────────────────────────────────────────

var validateReport string

var validateCmd = &cobra.Command{
	Use:   "validate <file> [file...]",
	Short: "Check that chart documents decode",
	Long: `Decode every file and report the outcome of each. All files are checked
even when some fail; the command exits non-zero if any of them is invalid.`,
	Example: `  chartspec validate chart.json
  chartspec validate charts/*.json --report csv`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveReport(validateReport)
		if err != nil {
			return err
		}
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		start := time.Now()
		progress := app.NewProgress(deps.Logger)
		results, verr := validateFiles(cmd.Context(), deps, args)
		progress.Done(fmt.Sprintf("checked %d files", len(args)))

		result := buildResult(model.KindValidation, "validate", results, len(results), start)
		if err := writeResult(cmd, deps, result, format); err != nil {
			return err
		}
		if verr != nil {
			return fmt.Errorf("invalid documents: %w", verr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVar(&validateReport, "report", "",
		"report format: table|json|jsonl|csv|tsv|md (default: table)")
}
