package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/app"
	"github.com/derickschaefer/chartspec/internal/pipeline"
	"github.com/derickschaefer/chartspec/internal/transform"
	"github.com/derickschaefer/chartspec/pkg/chart"
)

// buildFlags are shared by line, bar and scatter.
var buildFlags struct {
	Title  string
	Name   string
	Smooth bool
	Save   string
	Apply  []string
}

func buildOptions() pipeline.Options {
	return pipeline.Options{
		Title:  buildFlags.Title,
		Name:   buildFlags.Name,
		Smooth: buildFlags.Smooth,
	}
}

// emitBuilt writes a freshly built chart and, with --save, stores it too.
func emitBuilt(cmd *cobra.Command, deps *app.Deps, c *chart.Chart) error {
	if buildFlags.Save != "" {
		st, err := deps.Store()
		if err != nil {
			return err
		}
		rec, err := st.Save(buildFlags.Save, c)
		if err != nil {
			return fmt.Errorf("saving chart: %w", err)
		}
		deps.Logger.Info("saved chart", "name", rec.Name, "id", rec.ID)
	}
	return writeChart(cmd, deps, c)
}

func timeChartCommand(kind, short string) *cobra.Command {
	return &cobra.Command{
		Use:   kind,
		Short: short,
		Long: fmt.Sprintf(`Build a %s chart from JSONL observations on stdin.

Each line is {"date":"YYYY-MM-DD","value":<number|null|".">}. Dates become
the category x-axis; missing values are plotted as gaps. The series name is
--name, or the first "name" field in the input.

--apply reshapes the observations first and may be repeated; steps run in
order:
  pct[:lag]                 percent change over lag observations (default 1)
  diff[:order]              differences, applied order times (default 1)
  roll:<n>[:stat]           trailing window of n: mean|sum|min|max|last
  resample:<period>[:stat]  month|quarter|year buckets, mean by default
  since:<date> until:<date> keep observations within the bounds
  dropna                    remove missing observations`, kind),
		Example: fmt.Sprintf(`  cat rain.jsonl | chartspec %[1]s --title "Rainfall"
  chartspec export chart.json | chartspec %[1]s --name rain --save rain-%[1]s
  cat cpi.jsonl | chartspec %[1]s --apply resample:year:last --apply pct`, kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := buildDeps()
			if err != nil {
				return err
			}
			defer deps.Close()

			name, obs, err := pipeline.ReadObservations(cmd.InOrStdin())
			if err != nil {
				return err
			}
			deps.Logger.Debug("read observations", "count", len(obs), "name", name)
			if len(buildFlags.Apply) > 0 {
				step, err := transform.Chain(buildFlags.Apply)
				if err != nil {
					return err
				}
				if obs, err = step(obs); err != nil {
					return err
				}
				deps.Logger.Debug("applied steps", "steps", buildFlags.Apply, "count", len(obs))
			}
			c, err := pipeline.TimeChart(kind, name, obs, buildOptions())
			if err != nil {
				return err
			}
			return emitBuilt(cmd, deps, c)
		},
	}
}

var (
	lineCmd = timeChartCommand(pipeline.KindLine, "Build a line chart from JSONL observations")
	barCmd  = timeChartCommand(pipeline.KindBar, "Build a bar chart from JSONL observations")
)

var scatterCmd = &cobra.Command{
	Use:   pipeline.KindScatter,
	Short: "Build a scatter chart from JSONL points",
	Long: `Build a scatter chart on two value axes from {"x":<number>,"y":<number>}
JSONL rows on stdin.`,
	Example: `  cat points.jsonl | chartspec scatter --title "Height vs weight" --name people`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		pts, err := pipeline.ReadPoints(cmd.InOrStdin())
		if err != nil {
			return err
		}
		deps.Logger.Debug("read points", "count", len(pts))
		return emitBuilt(cmd, deps, pipeline.ScatterChart(pts, buildOptions()))
	},
}

func init() {
	for _, c := range []*cobra.Command{lineCmd, barCmd, scatterCmd} {
		rootCmd.AddCommand(c)
		c.Flags().StringVar(&buildFlags.Title, "title", "", "chart title")
		c.Flags().StringVar(&buildFlags.Name, "name", "", "series name")
		c.Flags().StringVar(&buildFlags.Save, "save", "", "also save the chart to the store under this name")
	}
	for _, c := range []*cobra.Command{lineCmd, barCmd} {
		c.Flags().StringArrayVar(&buildFlags.Apply, "apply", nil, "transform step applied before charting (repeatable)")
	}
	lineCmd.Flags().BoolVar(&buildFlags.Smooth, "smooth", false, "draw a smoothed line")
}
