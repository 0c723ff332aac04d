package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/app"
	"github.com/derickschaefer/chartspec/internal/pipeline"
	"github.com/derickschaefer/chartspec/internal/render"
	"github.com/derickschaefer/chartspec/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Reformat a chart document every time it changes",
	Long: `Watch a JSON or YAML chart document and write its canonical form to --out
(or stdout) on start and after every save. A document that fails to decode is
reported and the previous output is left in place.

Runs are spaced at least watch_interval apart (chartspec.toml, default 500ms).
Stop with Ctrl-C.`,
	Example: `  chartspec watch chart.yaml --out chart.json
  chartspec watch chart.json --format compact --out chart.min.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		handle := func(ctx context.Context, path string) error {
			return reformat(ctx, deps, path)
		}
		w, err := watch.New(args[0], deps.Config.WatchInterval, deps.Logger, handle)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return w.Run(app.WithLogger(ctx, deps.Logger))
	},
}

// reformat decodes path and rewrites --out (or stdout). The output file is
// only touched once the document has decoded.
func reformat(ctx context.Context, deps *app.Deps, path string) error {
	logger := app.LoggerFromContext(ctx)
	progress := app.NewProgress(logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	c, err := pipeline.DecodeChart(data)
	if err != nil {
		return err
	}
	if err := render.ChartTo(globalFlags.Out, c, deps.Config.Format, deps.Config.Indent); err != nil {
		return err
	}
	progress.Done(fmt.Sprintf("wrote %d series", c.SeriesCount()))
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
