package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/preview"
)

var previewFlags struct {
	Series string
	Style  string
	Width  int
	Height int
}

var previewCmd = &cobra.Command{
	Use:   "preview [file]",
	Short: "Draw one series of a chart in the terminal",
	Long: `Decode a chart document (stdin when no file is given) and draw one of its
series as text. Category labels of the first x-axis are used when there is
one per point.

Styles:
  bars   one horizontal bar per point (default)
  lines  a fixed-height plot; long series are averaged per column`,
	Example: `  chartspec preview chart.json
  chartspec preview chart.json --series revenue --style lines --height 16
  cat rain.jsonl | chartspec line | chartspec preview --width 60`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		draw := preview.Bars
		switch previewFlags.Style {
		case "", "bars":
		case "lines":
			draw = preview.Lines
		default:
			return fmt.Errorf("unknown style %q (expected bars or lines)", previewFlags.Style)
		}
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		c, err := readChart(cmd, deps, args)
		if err != nil {
			return err
		}
		idx, err := seriesIndex(c, previewFlags.Series)
		if err != nil {
			return err
		}
		title, samples, err := preview.FromSeries(c, idx)
		if err != nil {
			return err
		}

		w, closeFn, err := outputWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if err := draw(w, title, samples, preview.Options{Width: previewFlags.Width, Height: previewFlags.Height}); err != nil {
			closeFn()
			return err
		}
		return closeFn()
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().StringVar(&previewFlags.Series, "series", "", "series index or id (default: first series)")
	previewCmd.Flags().StringVar(&previewFlags.Style, "style", "bars", "drawing style: bars|lines")
	previewCmd.Flags().IntVar(&previewFlags.Width, "width", 0, "columns to use (default: $COLUMNS or 80)")
	previewCmd.Flags().IntVar(&previewFlags.Height, "height", 0, "rows for --style lines (default: 12)")
	_ = previewCmd.RegisterFlagCompletionFunc("style", fixedValues("bars", "lines"))
}
