package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/app"
	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/internal/pipeline"
	"github.com/derickschaefer/chartspec/internal/render"
	"github.com/derickschaefer/chartspec/internal/util"
	"github.com/derickschaefer/chartspec/pkg/chart"
)

// outputWriter returns def, or a file writer when --out is set. The returned
// closer is always safe to call.
func outputWriter(def io.Writer) (io.Writer, func() error, error) {
	if globalFlags.Out == "" {
		return def, func() error { return nil }, nil
	}
	f, err := os.Create(globalFlags.Out)
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, f.Close, nil
}

// resolveReport returns the effective report format, falling back to "table".
func resolveReport(flag string) (string, error) {
	if flag == "" {
		return render.FormatTable, nil
	}
	for _, f := range render.ReportFormats {
		if f == flag {
			return flag, nil
		}
	}
	return "", fmt.Errorf("unknown report format %q (expected one of %s)",
		flag, strings.Join(render.ReportFormats, ", "))
}

// readInput reads the named file, or stdin when args is empty or "-".
// The returned label names the source in messages.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("reading stdin: %w", err)
		}
		return data, "stdin", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return data, args[0], nil
}

// readChart decodes the document named by args (or stdin).
func readChart(cmd *cobra.Command, deps *app.Deps, args []string) (*chart.Chart, error) {
	data, src, err := readInput(cmd, args)
	if err != nil {
		return nil, err
	}
	c, err := pipeline.DecodeChart(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src, err)
	}
	deps.Logger.Debug("decoded chart", "source", src, "series", c.SeriesCount())
	return c, nil
}

// writeChart writes c to --out or the command's stdout in the configured
// document format.
func writeChart(cmd *cobra.Command, deps *app.Deps, c *chart.Chart) error {
	w, closeFn, err := outputWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := render.Chart(w, c, deps.Config.Format, deps.Config.Indent); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

// writeResult renders a report to --out or stdout, followed by the footer
// on stderr.
func writeResult(cmd *cobra.Command, deps *app.Deps, result *model.Result, format string) error {
	w, closeFn, err := outputWriter(cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if err := render.Render(w, result, format); err != nil {
		closeFn()
		return err
	}
	if !deps.Config.Quiet {
		render.PrintFooter(cmd.ErrOrStderr(), result, deps.Config.Verbose)
	}
	return closeFn()
}

// validateFiles decodes every file concurrently, bounded by
// deps.Config.Concurrency. Results come back in input order; the error
// aggregates every failure.
func validateFiles(ctx context.Context, deps *app.Deps, paths []string) ([]model.Validation, error) {
	concurrency := deps.Config.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	sem := make(chan struct{}, concurrency)
	results := make([]model.Validation, len(paths))
	errs := make([]error, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		i, path := i, path
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			results[i] = model.Validation{File: path}
			if err := ctx.Err(); err != nil {
				errs[i] = err
				results[i].Error = err.Error()
				return
			}
			data, err := os.ReadFile(path)
			if err == nil {
				var c *chart.Chart
				if c, err = pipeline.DecodeChart(data); err == nil {
					results[i].OK = true
					results[i].Series = c.SeriesCount()
					return
				}
			}
			errs[i] = fmt.Errorf("%s: %w", path, err)
			results[i].Error = err.Error()
		}()
	}
	wg.Wait()

	var me util.MultiError
	for i, err := range errs {
		if err != nil {
			deps.Logger.Debug("invalid document", "file", paths[i], "err", err)
			me.Add(err)
		}
	}
	return results, me.Err()
}

// buildResult wraps a report payload in a Result envelope.
func buildResult(kind, command string, data interface{}, items int, start time.Time) *model.Result {
	return &model.Result{
		Kind:        kind,
		GeneratedAt: time.Now(),
		Command:     command,
		Data:        data,
		Stats: model.ResultStats{
			DurationMs: time.Since(start).Milliseconds(),
			Items:      items,
		},
	}
}

// printSimpleTable renders a simple table with headers using tablewriter.
// The add callback is called with row values as variadic strings.
func printSimpleTable(w io.Writer, headers []string, fill func(add func(...string))) {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(headers)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)

	fill(func(cols ...string) {
		tw.Append(cols)
	})
	tw.Render()
}

// printKVTable renders a two-column key/value list using aligned columns.
func printKVTable(w io.Writer, rows [][]string) {
	maxKey := 0
	for _, r := range rows {
		if len(r[0]) > maxKey {
			maxKey = len(r[0])
		}
	}
	for _, r := range rows {
		padding := strings.Repeat(" ", maxKey-len(r[0]))
		fmt.Fprintf(w, "  %s%s  %s\n", r[0], padding, r[1])
	}
}

// parseIntID parses a string as a non-negative integer, with a descriptive
// label for errors.
func parseIntID(s, label string) (int, error) {
	var id int
	if _, err := fmt.Sscanf(s, "%d", &id); err != nil || id < 0 {
		return 0, fmt.Errorf("invalid %s %q: expected a non-negative integer", label, s)
	}
	return id, nil
}

func humanBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
