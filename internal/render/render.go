// Package render writes chart documents and command results.
//
// Chart documents come in three forms: json (indented, raw code fragments
// unquoted, meant for a browser), compact (one line of plain JSON that
// decodes again) and yaml. Results are rendered as tables or in one of the
// machine-readable formats; Render dispatches on the format string.
package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/internal/util"
	"github.com/derickschaefer/chartspec/pkg/chart"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// Chart document formats matching --format flag values.
const (
	FormatJSON    = "json"
	FormatCompact = "compact"
	FormatYAML    = "yaml"
)

// Result formats matching --report flag values.
const (
	FormatTable = "table"
	FormatJSONL = "jsonl"
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatMD    = "md"
)

// ReportFormats lists the values accepted by Render.
var ReportFormats = []string{FormatTable, FormatJSON, FormatJSONL, FormatCSV, FormatTSV, FormatMD}

// ─── Chart documents ──────────────────────────────────────────────────────────

// Chart writes c to w in the given document format, followed by a newline.
// indent is the number of spaces per level for json and yaml.
func Chart(w io.Writer, c *chart.Chart, format string, indent int) error {
	var (
		out []byte
		err error
	)
	switch format {
	case FormatCompact:
		out, err = encode(c, "")
	case FormatYAML:
		out, err = encode(c, "")
		if err == nil {
			out, err = util.JSONToYAML(out, indent)
		}
		if err == nil {
			out = bytes.TrimSuffix(out, []byte("\n"))
		}
	case FormatJSON, "":
		out, err = encode(c, strings.Repeat(" ", indent))
		if err == nil {
			out = []byte(element.ProcessRawStrings(string(out)))
		}
	default:
		return fmt.Errorf("unknown format %q (expected json, compact or yaml)", format)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

// ChartTo writes to stdout by default; if path is non-empty, writes to file.
func ChartTo(path string, c *chart.Chart, format string, indent int) error {
	if path == "" {
		return Chart(os.Stdout, c, format, indent)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()
	return Chart(f, c, format, indent)
}

func encode(c *chart.Chart, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encoding chart: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ─── Results ──────────────────────────────────────────────────────────────────

// Render writes result to w in the specified format.
func Render(w io.Writer, result *model.Result, format string) error {
	switch format {
	case FormatJSON:
		return renderJSON(w, result)
	case FormatJSONL:
		return renderJSONL(w, result)
	case FormatCSV:
		return renderDelimited(w, result, ',')
	case FormatTSV:
		return renderDelimited(w, result, '\t')
	case FormatMD:
		return renderMarkdown(w, result)
	default:
		return renderTable(w, result)
	}
}

// rows returns the header and cells of a result's tabular form.
func rows(result *model.Result) ([]string, [][]string, error) {
	switch data := result.Data.(type) {
	case []model.SeriesSummary:
		header := []string{"#", "TYPE", "ID", "NAME", "POINTS", "MISSING", "MIN", "MAX", "MEAN"}
		var out [][]string
		for _, s := range data {
			out = append(out, []string{
				fmt.Sprintf("%d", s.Index),
				s.Type,
				s.ID,
				s.Name,
				fmt.Sprintf("%d", s.Points),
				fmt.Sprintf("%d", s.Missing),
				formatValue(s.Min),
				formatValue(s.Max),
				formatValue(s.Mean),
			})
		}
		return header, out, nil
	case []model.ChartRecord:
		header := []string{"NAME", "ID", "SERIES", "UPDATED"}
		var out [][]string
		for _, r := range data {
			out = append(out, []string{
				r.Name,
				r.ID,
				fmt.Sprintf("%d", r.Series),
				r.UpdatedAt.Format(time.RFC3339),
			})
		}
		return header, out, nil
	case []model.Validation:
		header := []string{"FILE", "STATUS", "SERIES", "ERROR"}
		var out [][]string
		for _, v := range data {
			status := "ok"
			if !v.OK {
				status = "FAIL"
			}
			out = append(out, []string{v.File, status, fmt.Sprintf("%d", v.Series), v.Error})
		}
		return header, out, nil
	default:
		return nil, nil, fmt.Errorf("no tabular form for %s results", result.Kind)
	}
}

// ─── JSON ─────────────────────────────────────────────────────────────────────

func renderJSON(w io.Writer, result *model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonSafe(result))
}

// ─── JSONL ────────────────────────────────────────────────────────────────────

func renderJSONL(w io.Writer, result *model.Result) error {
	enc := json.NewEncoder(w)
	switch data := jsonSafe(result).Data.(type) {
	case []summaryRow:
		for _, s := range data {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
	case []model.ChartRecord:
		for _, r := range data {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
	case []model.Validation:
		for _, v := range data {
			if err := enc.Encode(v); err != nil {
				return err
			}
		}
	default:
		return enc.Encode(data)
	}
	return nil
}

// summaryRow is the JSON-safe form of a SeriesSummary: statistics of a
// series without numeric points are null rather than NaN, which
// encoding/json cannot handle.
type summaryRow struct {
	Index   int      `json:"index"`
	Type    string   `json:"type"`
	ID      string   `json:"id,omitempty"`
	Name    string   `json:"name,omitempty"`
	Points  int      `json:"points"`
	Missing int      `json:"missing"`
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Mean    *float64 `json:"mean"`
	Std     *float64 `json:"std"`
	Median  *float64 `json:"median"`
	First   *float64 `json:"first"`
	Last    *float64 `json:"last"`
}

func nullable(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

// jsonSafe returns a copy of result whose payload encodes without error.
func jsonSafe(result *model.Result) *model.Result {
	sums, ok := result.Data.([]model.SeriesSummary)
	if !ok {
		return result
	}
	out := make([]summaryRow, len(sums))
	for i, s := range sums {
		out[i] = summaryRow{
			Index: s.Index, Type: s.Type, ID: s.ID, Name: s.Name,
			Points: s.Points, Missing: s.Missing,
			Min: nullable(s.Min), Max: nullable(s.Max), Mean: nullable(s.Mean),
			Std: nullable(s.Std), Median: nullable(s.Median),
			First: nullable(s.First), Last: nullable(s.Last),
		}
	}
	cp := *result
	cp.Data = out
	return &cp
}

// ─── Table ────────────────────────────────────────────────────────────────────

func renderTable(w io.Writer, result *model.Result) error {
	header, cells, err := rows(result)
	if err != nil {
		return renderJSON(w, result)
	}
	if len(cells) == 0 {
		_, err := fmt.Fprintln(w, "(none)")
		return err
	}

	tw := tablewriter.NewWriter(w)
	tw.SetHeader(header)
	tw.SetBorder(true)
	tw.SetRowLine(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	tw.SetColWidth(60)
	for _, r := range cells {
		tw.Append(r)
	}
	tw.Render()
	return nil
}

// ─── CSV / TSV ────────────────────────────────────────────────────────────────

func renderDelimited(w io.Writer, result *model.Result, sep rune) error {
	header, cells, err := rows(result)
	if err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	cw.Comma = sep
	lower := make([]string, len(header))
	for i, h := range header {
		lower[i] = strings.ToLower(h)
	}
	_ = cw.Write(lower)
	for _, r := range cells {
		_ = cw.Write(r)
	}
	cw.Flush()
	return cw.Error()
}

// ─── Markdown ─────────────────────────────────────────────────────────────────

func renderMarkdown(w io.Writer, result *model.Result) error {
	header, cells, err := rows(result)
	if err != nil {
		return renderJSON(w, result)
	}
	fmt.Fprintf(w, "| %s |\n", strings.Join(header, " | "))
	fmt.Fprintf(w, "|%s\n", strings.Repeat("----|", len(header)))
	for _, r := range cells {
		esc := make([]string, len(r))
		for i, c := range r {
			esc[i] = mdEscape(c)
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(esc, " | "))
	}
	return nil
}

// ─── Warnings / Stats Footer ─────────────────────────────────────────────────

// PrintFooter writes warnings and stats to w when verbose mode is on.
func PrintFooter(w io.Writer, result *model.Result, verbose bool) {
	for _, warn := range result.Warnings {
		fmt.Fprintf(w, "⚠  %s\n", warn)
	}
	if verbose {
		fmt.Fprintf(w, "\n[%s • %d items • %dms]\n",
			result.GeneratedAt.Format(time.RFC3339),
			result.Stats.Items,
			result.Stats.DurationMs,
		)
	}
}

// ─── Helpers ─────────────────────────────────────────────────────────────────

// formatValue formats a statistic for display.
// Trims unnecessary trailing zeros (e.g. 3.400000 → 3.4).
// Missing values (NaN) render as "-".
func formatValue(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	s := strings.TrimRight(fmt.Sprintf("%.4f", v), "0")
	return strings.TrimSuffix(s, ".")
}

func mdEscape(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
