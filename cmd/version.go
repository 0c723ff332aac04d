package cmd

import (
	"encoding/json"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/derickschaefer/chartspec/internal/config"
	"github.com/derickschaefer/chartspec/pkg/series"
)

// Version is overwritten by release builds:
//
//	go build -ldflags "-X github.com/derickschaefer/chartspec/cmd.Version=v0.3.0"
var Version = "v0.2.0"

// BuildTime is set the same way, as an RFC 3339 timestamp.
var BuildTime = ""

// versionInfo is the --report json|jsonl payload.
type versionInfo struct {
	Version     string   `json:"version"`
	GoVersion   string   `json:"go_version"`
	Platform    string   `json:"platform"`
	BuildTime   string   `json:"build_time,omitempty"`
	SeriesTypes []string `json:"series_types"`
	Formats     []string `json:"formats"`
}

var versionReport string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the chartspec version and the document types it understands",
	Long: `Print the chartspec version, build metadata, the series types accepted in
documents and the output formats of --format.`,
	Example: `  chartspec version
  chartspec version --report json | jq -r '.series_types[]'`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := versionInfo{
			Version:     Version,
			GoVersion:   runtime.Version(),
			Platform:    runtime.GOOS + "/" + runtime.GOARCH,
			BuildTime:   BuildTime,
			SeriesTypes: series.Known(),
			Formats:     config.Formats,
		}
		w := cmd.OutOrStdout()

		switch versionReport {
		case "", "text":
			rows := [][]string{
				{"chartspec", info.Version},
				{"go", info.GoVersion},
				{"platform", info.Platform},
			}
			if info.BuildTime != "" {
				rows = append(rows, []string{"built", info.BuildTime})
			}
			rows = append(rows,
				[]string{"series", fmt.Sprintf("%d types", len(info.SeriesTypes))},
				[]string{"formats", strings.Join(info.Formats, ", ")})
			for _, r := range rows {
				fmt.Fprintf(w, "%-10s%s\n", r[0], r[1])
			}
			return nil
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		case "jsonl":
			return json.NewEncoder(w).Encode(info)
		}
		return fmt.Errorf("unknown report %q (expected text, json or jsonl)", versionReport)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.Flags().StringVar(&versionReport, "report", "", "output: text|json|jsonl (default: text)")
}
