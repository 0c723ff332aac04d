package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/internal/render"
	"github.com/derickschaefer/chartspec/internal/store"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Save and retrieve named chart documents",
	Long: `Commands for the local chart library, a bbolt database at --db
(default ~/.chartspec/charts.db).

Charts are saved under a name and can be read back by name or id. Saving over
an existing name replaces the document and keeps the id.`,
}

// ─── store save ───────────────────────────────────────────────────────────────

var storeSaveCmd = &cobra.Command{
	Use:   "save <name> [file]",
	Short: "Decode a chart document and save it under a name",
	Example: `  chartspec store save sales chart.json
  cat chart.yaml | chartspec store save sales`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		c, err := readChart(cmd, deps, args[1:])
		if err != nil {
			return err
		}
		st, err := deps.Store()
		if err != nil {
			return err
		}
		rec, err := st.Save(args[0], c)
		if err != nil {
			return fmt.Errorf("saving chart: %w", err)
		}
		if !deps.Config.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s  (%s, %d series)\n", rec.Name, rec.ID, rec.Series)
		}
		return nil
	},
}

// ─── store get ────────────────────────────────────────────────────────────────

var storeGetCmd = &cobra.Command{
	Use:   "get <name|id>",
	Short: "Print a saved chart",
	Example: `  chartspec store get sales
  chartspec store get sales --format yaml --out sales.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		st, err := deps.Store()
		if err != nil {
			return err
		}
		rec, found, err := st.Get(args[0])
		if err != nil {
			return fmt.Errorf("reading store: %w", err)
		}
		if !found {
			return fmt.Errorf("no chart named %q in %s", args[0], st.Path())
		}
		c, err := rec.Chart()
		if err != nil {
			return fmt.Errorf("decoding %s: %w", rec.Name, err)
		}
		return writeChart(cmd, deps, c)
	},
}

// ─── store list ───────────────────────────────────────────────────────────────

var storeListReport string

var storeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved charts",
	Example: `  chartspec store list
  chartspec store list --report csv`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := resolveReport(storeListReport)
		if err != nil {
			return err
		}
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		start := time.Now()
		st, err := deps.Store()
		if err != nil {
			return err
		}
		recs, err := st.List()
		if err != nil {
			return fmt.Errorf("reading store: %w", err)
		}
		return writeResult(cmd, deps, buildResult(model.KindRecords, "store list", recs, len(recs), start), format)
	},
}

// ─── store delete ─────────────────────────────────────────────────────────────

var storeDeleteCmd = &cobra.Command{
	Use:     "delete <name|id>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved chart",
	Example: `  chartspec store delete sales`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		st, err := deps.Store()
		if err != nil {
			return err
		}
		found, err := st.Delete(args[0])
		if err != nil {
			return fmt.Errorf("deleting %q: %w", args[0], err)
		}
		if !found {
			return fmt.Errorf("no chart named %q in %s", args[0], st.Path())
		}
		if !deps.Config.Quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Deleted %s\n", args[0])
		}
		return nil
	},
}

// ─── store stats ──────────────────────────────────────────────────────────────

var storeStatsCmd = &cobra.Command{
	Use:     "stats",
	Short:   "Show row counts and sizes for each bucket",
	Example: `  chartspec store stats`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		st, err := deps.Store()
		if err != nil {
			return err
		}
		stats, err := st.Stats()
		if err != nil {
			return fmt.Errorf("reading store stats: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Database: %s\n\n", st.Path())
		printSimpleTable(cmd.OutOrStdout(), []string{"BUCKET", "ROWS", "SIZE"}, func(add func(...string)) {
			for _, s := range stats {
				add(s.Name, fmt.Sprintf("%d", s.Count), humanBytes(s.Bytes))
			}
		})
		return nil
	},
}

// ─── store clear ──────────────────────────────────────────────────────────────

var (
	storeClearAll    bool
	storeClearBucket string
)

var storeClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete entries from the store",
	Long: `Delete entries from one or all buckets.

bbolt does not shrink the database file after clearing; free pages are reused
on the next write. Run 'chartspec store compact' to reclaim disk space.`,
	Example: `  chartspec store clear --all
  chartspec store clear --bucket names`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !storeClearAll && storeClearBucket == "" {
			return fmt.Errorf("specify --all or --bucket <name>\n\nBuckets: %s", strings.Join(store.AllBuckets, ", "))
		}
		if storeClearBucket != "" && !knownBucket(storeClearBucket) {
			return fmt.Errorf("unknown bucket %q (expected one of %s)", storeClearBucket, strings.Join(store.AllBuckets, ", "))
		}

		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		st, err := deps.Store()
		if err != nil {
			return err
		}
		if storeClearAll {
			if err := st.ClearAll(); err != nil {
				return fmt.Errorf("clearing all buckets: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Cleared all buckets")
			return nil
		}
		if err := st.ClearBucket(storeClearBucket); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Cleared bucket %q\n", storeClearBucket)
		return nil
	},
}

func knownBucket(name string) bool {
	for _, b := range store.AllBuckets {
		if b == name {
			return true
		}
	}
	return false
}

// ─── store compact ────────────────────────────────────────────────────────────

var storeCompactCmd = &cobra.Command{
	Use:     "compact",
	Short:   "Rewrite the database file to reclaim freed disk space",
	Example: `  chartspec store compact`,
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		deps, err := buildDeps()
		if err != nil {
			return err
		}
		defer deps.Close()

		st, err := deps.Store()
		if err != nil {
			return err
		}
		before, after, err := st.Compact()
		if err != nil {
			return fmt.Errorf("compaction failed: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Compacted %s\n", st.Path())
		fmt.Fprintf(cmd.OutOrStdout(), "  Before: %s\n", humanBytes(before))
		fmt.Fprintf(cmd.OutOrStdout(), "  After:  %s\n", humanBytes(after))
		return nil
	},
}

// ─── Registration ─────────────────────────────────────────────────────────────

func init() {
	rootCmd.AddCommand(storeCmd)
	storeCmd.AddCommand(storeSaveCmd)
	storeCmd.AddCommand(storeGetCmd)
	storeCmd.AddCommand(storeListCmd)
	storeCmd.AddCommand(storeDeleteCmd)
	storeCmd.AddCommand(storeStatsCmd)
	storeCmd.AddCommand(storeClearCmd)
	storeCmd.AddCommand(storeCompactCmd)

	storeListCmd.Flags().StringVar(&storeListReport, "report", "",
		"report format: table|json|jsonl|csv|tsv|md (default: table)")
	storeClearCmd.Flags().BoolVar(&storeClearAll, "all", false, "clear all buckets")
	storeClearCmd.Flags().StringVar(&storeClearBucket, "bucket", "", "clear one bucket: charts|names")

	_ = storeListCmd.RegisterFlagCompletionFunc("report", fixedValues(render.ReportFormats...))
	_ = storeClearCmd.RegisterFlagCompletionFunc("bucket", fixedValues(store.AllBuckets...))
}
