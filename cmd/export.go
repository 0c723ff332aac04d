package cmd

import (
	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/pipeline"
)

var exportSeries string

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the observations behind a date-axis chart as JSONL",
	Long: `Recover {"date","value"} observations from a chart whose first x-axis
carries YYYY-MM-DD categories, as built by 'chartspec line' and 'chartspec bar'.
The output feeds straight back into those commands.`,
	Example: `  chartspec export chart.json
  chartspec export chart.json --series 1 | chartspec bar --title "Second series"`,
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
		idx, err := seriesIndex(c, exportSeries)
		if err != nil {
			return err
		}
		name, obs, err := pipeline.Observations(c, idx)
		if err != nil {
			return err
		}

		w, closeFn, err := outputWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := pipeline.WriteJSONL(w, name, obs); err != nil {
			closeFn()
			return err
		}
		deps.Logger.Info("exported observations", "series", idx, "count", len(obs))
		return closeFn()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVar(&exportSeries, "series", "", "series index or id (default: first series)")
}
