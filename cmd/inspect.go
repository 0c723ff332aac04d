package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/analyze"
	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/internal/render"
	"github.com/derickschaefer/chartspec/pkg/chart"
)

// ─── inspect ──────────────────────────────────────────────────────────────────

var inspectReport string

var inspectCmd = &cobra.Command{
	Use:   "inspect [file]",
	Short: "Show the series of a chart with descriptive statistics",
	Long: `Decode a chart document (stdin when no file is given) and list its series:
index, type, id, name, point count, missing points and min/max/mean of the
numeric values.`,
	Example: `  chartspec inspect chart.json
  chartspec inspect chart.yaml --report md
  chartspec store get sales --format compact | chartspec inspect --report json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveReport(inspectReport)
		if err != nil {
			return err
		}
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		start := time.Now()
		c, err := readChart(cmd, deps, args)
		if err != nil {
			return err
		}
		sums := analyze.SummarizeChart(c)
		result := buildResult(model.KindSummary, "inspect", sums, len(sums), start)
		for _, s := range sums {
			if s.Points > 0 && s.Missing == s.Points {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("series %d has no numeric points", s.Index))
			}
		}
		return writeResult(cmd, deps, result, format)
	},
}

// ─── trend ────────────────────────────────────────────────────────────────────

var (
	trendSeries string
	trendMethod string
	trendReport string
)

var trendCmd = &cobra.Command{
	Use:   "trend [file]",
	Short: "Fit a straight line through one series: slope, intercept, R², direction",
	Long: `Fit a trend line through the numeric points of one series. The x value of
a point is its first coordinate for [x, y] data, otherwise its position.`,
	Example: `  chartspec trend chart.json
  chartspec trend chart.json --series 2 --method theil-sen
  chartspec trend chart.json --series revenue --report json`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := analyze.TrendMethod(trendMethod)
		if method != analyze.TrendLinear && method != analyze.TrendTheilSen {
			return fmt.Errorf("unknown method %q (expected linear or theil-sen)", trendMethod)
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
		idx, err := seriesIndex(c, trendSeries)
		if err != nil {
			return err
		}
		tr, err := analyze.Trend(idx, c.SeriesList()[idx], method)
		if err != nil {
			return err
		}

		w, closeFn, err := outputWriter(cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer closeFn()
		if trendReport == render.FormatJSON {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(tr)
		}

		rows := [][]string{
			{"series", fmt.Sprintf("%d", tr.Index)},
			{"method", string(tr.Method)},
			{"direction", tr.Direction},
			{"slope", fmt.Sprintf("%.6f", tr.Slope)},
			{"intercept", fmt.Sprintf("%.4f", tr.Intercept)},
			{"r2", fmt.Sprintf("%.4f", tr.R2)},
		}
		printKVTable(w, rows)
		return nil
	},
}

// seriesIndex resolves --series: a position, or the id of a series. Empty
// selects the first series.
func seriesIndex(c *chart.Chart, ref string) (int, error) {
	n := c.SeriesCount()
	if ref == "" {
		ref = "0"
	}
	for i, s := range c.SeriesList() {
		if id := s.SeriesID(); id != "" && id == ref {
			return i, nil
		}
	}
	idx, err := parseIntID(ref, "series")
	if err != nil {
		return 0, fmt.Errorf("%w: %q", chart.ErrSeriesNotFound, ref)
	}
	if idx >= n {
		return 0, fmt.Errorf("%w: %d (have %d)", chart.ErrSeriesIndex, idx, n)
	}
	return idx, nil
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(trendCmd)

	inspectCmd.Flags().StringVar(&inspectReport, "report", "",
		"report format: table|json|jsonl|csv|tsv|md (default: table)")

	trendCmd.Flags().StringVar(&trendSeries, "series", "", "series index or id (default: first series)")
	trendCmd.Flags().StringVar(&trendMethod, "method", "linear", "regression method: linear|theil-sen")
	trendCmd.Flags().StringVar(&trendReport, "report", "", "output: table|json (default: table)")

	_ = inspectCmd.RegisterFlagCompletionFunc("report", fixedValues(render.ReportFormats...))
	_ = trendCmd.RegisterFlagCompletionFunc("method", fixedValues(string(analyze.TrendLinear), string(analyze.TrendTheilSen)))
	_ = trendCmd.RegisterFlagCompletionFunc("report", fixedValues(render.FormatTable, render.FormatJSON))
}
