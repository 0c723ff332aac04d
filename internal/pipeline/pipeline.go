// Package pipeline moves data between JSONL streams, chart documents, and
// stdin/stdout. JSONL rows are the canonical pipe format for observations;
// chart documents are JSON or YAML.
package pipeline

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/internal/util"
	"github.com/derickschaefer/chartspec/pkg/chart"
	"github.com/derickschaefer/chartspec/pkg/component"
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
	"github.com/derickschaefer/chartspec/pkg/series"
)

// Chart kinds built from observation streams.
const (
	KindLine    = "line"
	KindBar     = "bar"
	KindScatter = "scatter"
)

// missing is how a gap in the data is plotted.
const missing = datatype.String("-")

// ─── Reading ──────────────────────────────────────────────────────────────────

// lines calls fn for every non-blank, non-comment line of r with its
// 1-based line number.
func lines(r io.Reader, fn func(n int, line []byte) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNum++
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if err := fn(lineNum, []byte(line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// ReadObservations reads JSONL records from r and returns the series name
// and the observations. Each line must be a JSON object with at least "date"
// and "value" fields; the name comes from the first "name" field seen.
func ReadObservations(r io.Reader) (string, []model.Observation, error) {
	type row struct {
		Name     string      `json:"name"`
		Date     string      `json:"date"`
		Value    interface{} `json:"value"`
		ValueRaw string      `json:"value_raw"`
	}

	var obs []model.Observation
	name := ""
	err := lines(r, func(n int, line []byte) error {
		var rec row
		if err := json.Unmarshal(line, &rec); err != nil {
			return fmt.Errorf("line %d: invalid JSON: %w", n, err)
		}
		if name == "" && rec.Name != "" {
			name = rec.Name
		}

		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			return fmt.Errorf("line %d: invalid date %q", n, rec.Date)
		}

		var val float64
		raw := rec.ValueRaw
		switch v := rec.Value.(type) {
		case nil:
			val = math.NaN()
			if raw == "" {
				raw = "."
			}
		case float64:
			val = v
			if raw == "" {
				raw = fmt.Sprintf("%g", v)
			}
		case string:
			parsed, err := util.ParseValue(v)
			if err != nil {
				return fmt.Errorf("line %d: unexpected string value %q", n, v)
			}
			val = parsed
			if raw == "" {
				raw = v
			}
		default:
			return fmt.Errorf("line %d: unexpected value type %T", n, rec.Value)
		}

		obs = append(obs, model.Observation{Date: date, Value: val, ValueRaw: raw})
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	if len(obs) == 0 {
		return "", nil, fmt.Errorf("no observations read from input (is stdin empty?)")
	}
	return name, obs, nil
}

// ReadPoints reads {"x":..,"y":..} JSONL records from r.
func ReadPoints(r io.Reader) ([]model.Point, error) {
	type row struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}

	var pts []model.Point
	err := lines(r, func(n int, line []byte) error {
		var rec row
		if err := json.Unmarshal(line, &rec); err != nil {
			return fmt.Errorf("line %d: invalid JSON: %w", n, err)
		}
		if rec.X == nil || rec.Y == nil {
			return fmt.Errorf("line %d: both x and y are required", n)
		}
		pts = append(pts, model.Point{X: *rec.X, Y: *rec.Y})
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("no points read from input (is stdin empty?)")
	}
	return pts, nil
}

// ─── Building ─────────────────────────────────────────────────────────────────

// Options carries the presentation flags shared by the chart builders.
type Options struct {
	Title  string
	Name   string
	Smooth bool
}

func (o Options) apply(c *chart.Chart, trigger element.Trigger) {
	if o.Title != "" {
		c.Title(component.NewTitle().Text(o.Title))
	}
	c.Tooltip(element.NewTooltip().Trigger(trigger))
}

// TimeChart builds a line or bar chart with one category x-axis label per
// observation date. Missing values are plotted as gaps.
func TimeChart(kind, name string, obs []model.Observation, opts Options) (*chart.Chart, error) {
	if opts.Name != "" {
		name = opts.Name
	}

	labels := make([]string, len(obs))
	data := make(datatype.DataFrame, len(obs))
	for i, o := range obs {
		labels[i] = util.FormatDate(o.Date)
		if o.IsMissing() {
			data[i] = missing
		} else {
			data[i] = datatype.Num(o.Value)
		}
	}

	var s series.Series
	switch kind {
	case KindLine:
		l := series.NewLine().Data(data)
		if name != "" {
			l.Name(name)
		}
		if opts.Smooth {
			l.Smooth(element.Smooth(true))
		}
		s = l
	case KindBar:
		b := series.NewBar().Data(data)
		if name != "" {
			b.Name(name)
		}
		s = b
	default:
		return nil, fmt.Errorf("unsupported chart kind %q (expected line or bar)", kind)
	}

	c := chart.New().
		XAxis(component.NewAxis().Type(element.AxisCategory).Data(labels...)).
		YAxis(component.NewAxis().Type(element.AxisValue)).
		Series(s)
	opts.apply(c, element.TriggerAxis)
	return c, nil
}

// ScatterChart builds a scatter chart on two value axes.
func ScatterChart(pts []model.Point, opts Options) *chart.Chart {
	rows := make([][]float64, len(pts))
	for i, p := range pts {
		rows[i] = []float64{p.X, p.Y}
	}
	s := series.NewScatter().Data(datatype.Rows(rows...))
	if opts.Name != "" {
		s.Name(opts.Name)
	}

	c := chart.New().
		XAxis(component.NewAxis().Type(element.AxisValue)).
		YAxis(component.NewAxis().Type(element.AxisValue)).
		Series(s)
	opts.apply(c, element.TriggerItem)
	return c
}

// ─── Chart documents ──────────────────────────────────────────────────────────

// DecodeChart decodes a JSON or YAML chart document. Anything that does not
// start like JSON is read as YAML.
func DecodeChart(data []byte) (*chart.Chart, error) {
	if !util.LooksLikeJSON(data) {
		converted, err := util.YAMLToJSON(data)
		if err != nil {
			return nil, err
		}
		data = converted
	}
	return chart.Parse(data)
}

// ReadChart reads a whole JSON or YAML chart document from r.
func ReadChart(r io.Reader) (*chart.Chart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return DecodeChart(data)
}

// ─── Export ───────────────────────────────────────────────────────────────────

// ErrNoDates is returned when a chart's first x-axis does not carry date
// categories for every point of the exported series.
var ErrNoDates = errors.New("x-axis has no date categories")

// Observations recovers the observations behind series i of a chart built
// on a category axis of dates. It is the inverse of TimeChart.
func Observations(c *chart.Chart, i int) (string, []model.Observation, error) {
	list := c.SeriesList()
	if i < 0 || i >= len(list) {
		return "", nil, fmt.Errorf("%w: %d (have %d)", chart.ErrSeriesIndex, i, len(list))
	}
	s := list[i]
	axes := c.XAxes()
	if len(axes) == 0 {
		return "", nil, ErrNoDates
	}
	labels := axes[0].Categories()
	data := s.SeriesData()
	if len(labels) < len(data) {
		return "", nil, fmt.Errorf("%w: %d labels for %d points", ErrNoDates, len(labels), len(data))
	}

	obs := make([]model.Observation, len(data))
	for j, p := range data {
		date, err := util.ParseDate(labels[j])
		if err != nil {
			return "", nil, fmt.Errorf("%w: %v", ErrNoDates, err)
		}
		v, ok := datatype.Measure(p)
		if !ok {
			v = math.NaN()
		}
		raw := "."
		if ok {
			raw = util.FormatValue(v)
		}
		obs[j] = model.Observation{Date: date, Value: v, ValueRaw: raw}
	}
	return s.SeriesName(), obs, nil
}

// WriteJSONL writes observations as JSONL to w.
func WriteJSONL(w io.Writer, name string, obs []model.Observation) error {
	enc := json.NewEncoder(w)
	for _, o := range obs {
		var val interface{}
		if math.IsNaN(o.Value) {
			val = nil
		} else {
			val = o.Value
		}
		rec := map[string]interface{}{
			"date":      util.FormatDate(o.Date),
			"value":     val,
			"value_raw": o.ValueRaw,
		}
		if name != "" {
			rec["name"] = name
		}
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}
