// Package preview draws one series of a chart in the terminal, as a quick
// check of a document without opening a browser.
//
//   - Bars: one horizontal bar per point, for short or categorical series
//   - Lines: a fixed-height plot with a value axis, for long series
//
// Missing values are gaps in both renderers, never zeros.
package preview

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/derickschaefer/chartspec/pkg/chart"
	"github.com/derickschaefer/chartspec/pkg/datatype"
)

// Sample is one labelled value. Value is NaN when the point has no magnitude.
type Sample struct {
	Label string
	Value float64
}

// FromSeries extracts series i of c. Labels come from the first x-axis
// categories when there is one per point, otherwise from point positions.
func FromSeries(c *chart.Chart, i int) (string, []Sample, error) {
	list := c.SeriesList()
	if i < 0 || i >= len(list) {
		return "", nil, fmt.Errorf("%w: %d (have %d)", chart.ErrSeriesIndex, i, len(list))
	}
	s := list[i]
	data := s.SeriesData()

	var labels []string
	if axes := c.XAxes(); len(axes) > 0 {
		labels = axes[0].Categories()
	}
	out := make([]Sample, len(data))
	for j, p := range data {
		name := strconv.Itoa(j)
		if len(labels) >= len(data) {
			name = labels[j]
		}
		v, ok := datatype.Measure(p)
		if !ok {
			v = math.NaN()
		}
		out[j] = Sample{Label: name, Value: v}
	}

	title := s.SeriesName()
	if title == "" {
		title = fmt.Sprintf("series %d (%s)", i, s.Type())
	}
	return title, out, nil
}

// Options controls the drawing area. Zero values pick defaults: the width of
// $COLUMNS (80 without it) and a height of 12 rows.
type Options struct {
	Width  int
	Height int
}

func (o Options) width() int {
	if o.Width > 0 {
		return o.Width
	}
	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 20 {
		return n
	}
	return 80
}

func (o Options) height() int {
	if o.Height > 0 {
		return o.Height
	}
	return 12
}

// ─── Bars ─────────────────────────────────────────────────────────────────────

// Bars writes one bar per sample. Bars grow from a zero column, to the left
// for negative values.
func Bars(w io.Writer, title string, samples []Sample, opts Options) error {
	lo, hi, ok := bounds(samples)
	if !ok {
		return fmt.Errorf("preview: no numeric points to draw")
	}
	lo, hi = math.Min(lo, 0), math.Max(hi, 0)

	labelW, valueW := 0, 0
	for _, s := range samples {
		labelW = max(labelW, len(s.Label))
		valueW = max(valueW, len(label(s.Value)))
	}
	area := max(opts.width()-labelW-valueW-4, 4)
	span := hi - lo
	if span == 0 {
		span = 1
	}
	zero := int(math.Round(-lo / span * float64(area-1)))

	fmt.Fprintln(w, title)
	for _, s := range samples {
		row := []rune(strings.Repeat(" ", area))
		if lo < 0 {
			row[zero] = '│'
		}
		if !math.IsNaN(s.Value) {
			n := int(math.Round(math.Abs(s.Value) / span * float64(area-1)))
			if n == 0 && s.Value != 0 {
				n = 1
			}
			for k := 1; k <= n; k++ {
				if s.Value > 0 && zero+k < area {
					row[zero+k] = '█'
				} else if s.Value < 0 && zero-k >= 0 {
					row[zero-k] = '█'
				}
			}
			if lo >= 0 && s.Value > 0 {
				row[zero] = '█'
			}
		}
		fmt.Fprintf(w, "%-*s  %*s  %s\n", labelW, s.Label, valueW, label(s.Value),
			strings.TrimRight(string(row), " "))
	}
	return nil
}

// ─── Lines ────────────────────────────────────────────────────────────────────

// Lines plots the samples on a grid of opts.Height rows. When there are more
// samples than columns, each column shows the mean of its bucket.
func Lines(w io.Writer, title string, samples []Sample, opts Options) error {
	lo, hi, ok := bounds(samples)
	if !ok {
		return fmt.Errorf("preview: no numeric points to draw")
	}
	height := opts.height()

	ticks := map[int]string{0: label(hi), height - 1: label(lo)}
	if height > 4 {
		ticks[(height-1)/2] = label(lo + (hi-lo)/2)
	}
	axisW := 0
	for _, t := range ticks {
		axisW = max(axisW, len(t))
	}
	cols := columns(samples, min(max(opts.width()-axisW-1, 10), len(samples)))

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", len(cols)))
	}
	prev := -1
	for c, v := range cols {
		if math.IsNaN(v) {
			prev = -1
			continue
		}
		r := rowOf(v, lo, hi, height)
		if prev >= 0 {
			for k := min(r, prev) + 1; k < max(r, prev); k++ {
				grid[k][c] = '│'
			}
		}
		grid[r][c] = '•'
		prev = r
	}

	fmt.Fprintf(w, "%s  (%s to %s)\n", title, samples[0].Label, samples[len(samples)-1].Label)
	for r, line := range grid {
		axis := ' '
		if _, ok := ticks[r]; ok {
			axis = '┤'
		}
		fmt.Fprintf(w, "%*s%c%s\n", axisW, ticks[r], axis, strings.TrimRight(string(line), " "))
	}
	fmt.Fprintf(w, "%s└%s\n", strings.Repeat(" ", axisW), strings.Repeat("─", len(cols)))
	return nil
}

// columns reduces samples to n bucket means; an all-missing bucket is NaN.
func columns(samples []Sample, n int) []float64 {
	out := make([]float64, n)
	for c := range out {
		from, to := c*len(samples)/n, (c+1)*len(samples)/n
		sum, count := 0.0, 0
		for _, s := range samples[from:to] {
			if !math.IsNaN(s.Value) {
				sum += s.Value
				count++
			}
		}
		out[c] = math.NaN()
		if count > 0 {
			out[c] = sum / float64(count)
		}
	}
	return out
}

// rowOf maps v to a grid row, 0 being the top (hi).
func rowOf(v, lo, hi float64, height int) int {
	if hi == lo {
		return height / 2
	}
	return int(math.Round((hi - v) / (hi - lo) * float64(height-1)))
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

// bounds returns the smallest and largest numeric value.
func bounds(samples []Sample) (lo, hi float64, ok bool) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range samples {
		if math.IsNaN(s.Value) {
			continue
		}
		lo, hi, ok = math.Min(lo, s.Value), math.Max(hi, s.Value), true
	}
	return lo, hi, ok
}

// label formats an axis or bar value compactly: K and M suffixes for large
// magnitudes, at most four decimals otherwise, "-" for missing.
func label(v float64) string {
	abs := math.Abs(v)
	switch {
	case math.IsNaN(v):
		return "-"
	case abs >= 1e6:
		return strconv.FormatFloat(v/1e6, 'f', 1, 64) + "M"
	case abs >= 1e4:
		return strconv.FormatFloat(v/1e3, 'f', 1, 64) + "K"
	}
	s := strings.TrimRight(strconv.FormatFloat(v, 'f', 4, 64), "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" || s == "-" || s == "-0" {
		return "0"
	}
	return s
}
