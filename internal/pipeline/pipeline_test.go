package pipeline_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/derickschaefer/chartspec/internal/model"
	"github.com/derickschaefer/chartspec/internal/pipeline"
	"github.com/derickschaefer/chartspec/pkg/chart"
	"github.com/derickschaefer/chartspec/pkg/element"
	"github.com/derickschaefer/chartspec/pkg/series"
)

// ─── Helpers ──────────────────────────────────────────────────────────────────

func isNaN(v float64) bool { return math.IsNaN(v) }

// jsonl joins lines with newlines and appends a trailing newline.
func jsonl(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// mkobs builds a single model.Observation for build and write tests.
func mkobs(year, month, day int, value float64) model.Observation {
	return model.Observation{
		Date:  time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC),
		Value: value,
	}
}

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return string(b)
}

// ─── ReadObservations ─────────────────────────────────────────────────────────

func TestReadBasicFloat(t *testing.T) {
	input := jsonl(
		`{"name":"rain","date":"2020-01-01","value":3.5}`,
		`{"name":"rain","date":"2020-02-01","value":3.6}`,
	)
	name, obs, err := pipeline.ReadObservations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "rain" {
		t.Errorf("name: expected rain, got %q", name)
	}
	if len(obs) != 2 {
		t.Fatalf("expected 2 observations, got %d", len(obs))
	}
	if obs[0].Value != 3.5 || obs[1].Value != 3.6 {
		t.Errorf("values: got %g, %g", obs[0].Value, obs[1].Value)
	}
	if obs[0].ValueRaw != "3.5" {
		t.Errorf("ValueRaw default: expected 3.5, got %q", obs[0].ValueRaw)
	}
}

func TestReadMissingValues(t *testing.T) {
	input := jsonl(
		`{"date":"2020-01-01","value":null}`,
		`{"date":"2020-02-01","value":"."}`,
		`{"date":"2020-03-01","value":""}`,
		`{"date":"2020-04-01","value":"12.5"}`,
	)
	_, obs, err := pipeline.ReadObservations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		if !isNaN(obs[i].Value) {
			t.Errorf("obs[%d]: expected NaN, got %g", i, obs[i].Value)
		}
	}
	if obs[0].ValueRaw != "." {
		t.Errorf("null ValueRaw: expected '.', got %q", obs[0].ValueRaw)
	}
	if obs[3].Value != 12.5 {
		t.Errorf("numeric string: expected 12.5, got %g", obs[3].Value)
	}
}

func TestReadSkipsBlankAndCommentLines(t *testing.T) {
	input := jsonl(
		`// exported 2024-01-01`,
		``,
		`{"date":"2020-01-01","value":1}`,
	)
	name, obs, err := pipeline.ReadObservations(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(obs) != 1 || name != "" {
		t.Errorf("expected 1 unnamed observation, got %d %q", len(obs), name)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "no observations"},
		{"blank only", "\n\n", "no observations"},
		{"invalid json", `{"date":`, "line 1: invalid JSON"},
		{"invalid date", `{"date":"01/02/2020","value":1}`, "invalid date"},
		{"bad string value", `{"date":"2020-01-01","value":"abc"}`, "unexpected string value"},
		{"bad value type", `{"date":"2020-01-01","value":[1]}`, "unexpected value type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := pipeline.ReadObservations(strings.NewReader(tt.input))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

// ─── ReadPoints ───────────────────────────────────────────────────────────────

func TestReadPoints(t *testing.T) {
	pts, err := pipeline.ReadPoints(strings.NewReader(jsonl(`{"x":1,"y":2}`, `{"x":3.5,"y":-1}`)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pts) != 2 || pts[1] != (model.Point{X: 3.5, Y: -1}) {
		t.Errorf("unexpected points %v", pts)
	}
}

func TestReadPointsRequiresBothCoordinates(t *testing.T) {
	if _, err := pipeline.ReadPoints(strings.NewReader(`{"x":1}`)); err == nil {
		t.Error("expected error for missing y")
	}
	if _, err := pipeline.ReadPoints(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}

// ─── TimeChart / ScatterChart ─────────────────────────────────────────────────

func TestTimeChartLine(t *testing.T) {
	obs := []model.Observation{mkobs(2024, 1, 1, 1.5), mkobs(2024, 2, 1, math.NaN()), mkobs(2024, 3, 1, 2)}
	c, err := pipeline.TimeChart(pipeline.KindLine, "rain", obs, pipeline.Options{Title: "Rain", Smooth: true})
	if err != nil {
		t.Fatalf("TimeChart: %v", err)
	}
	want := `{"title":[{"text":"Rain"}],"tooltip":{"trigger":"axis"},` +
		`"xAxis":{"type":"category","data":["2024-01-01","2024-02-01","2024-03-01"]},` +
		`"yAxis":{"type":"value"},` +
		`"series":[{"type":"line","name":"rain","smooth":true,"data":[1.5,"-",2.0]}]}`
	if got := mustMarshal(t, c); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestTimeChartBarNameOverride(t *testing.T) {
	c, err := pipeline.TimeChart(pipeline.KindBar, "from-stream", []model.Observation{mkobs(2024, 1, 1, 3)}, pipeline.Options{Name: "flag"})
	if err != nil {
		t.Fatalf("TimeChart: %v", err)
	}
	s := c.SeriesList()[0]
	if s.Type() != series.TypeBar || s.SeriesName() != "flag" {
		t.Errorf("expected bar named flag, got %s %q", s.Type(), s.SeriesName())
	}
	if ax := c.XAxes(); len(ax) != 1 || ax[0].AxisType() != element.AxisCategory {
		t.Errorf("expected one category x-axis, got %v", ax)
	}
}

func TestTimeChartRejectsUnknownKind(t *testing.T) {
	if _, err := pipeline.TimeChart("pie", "", []model.Observation{mkobs(2024, 1, 1, 1)}, pipeline.Options{}); err == nil {
		t.Error("expected error for pie")
	}
}

func TestScatterChart(t *testing.T) {
	c := pipeline.ScatterChart([]model.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, pipeline.Options{Name: "pts"})
	want := `{"tooltip":{"trigger":"item"},"xAxis":{"type":"value"},"yAxis":{"type":"value"},` +
		`"series":[{"type":"scatter","name":"pts","data":[[1.0,2.0],[3.0,4.0]]}]}`
	if got := mustMarshal(t, c); got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

// ─── DecodeChart ──────────────────────────────────────────────────────────────

func TestDecodeChartJSONAndYAML(t *testing.T) {
	fromJSON, err := pipeline.DecodeChart([]byte(`{"series":[{"type":"line","data":[1,2]}]}`))
	if err != nil {
		t.Fatalf("DecodeChart json: %v", err)
	}
	fromYAML, err := pipeline.DecodeChart([]byte("series:\n  - type: line\n    data: [1, 2]\n"))
	if err != nil {
		t.Fatalf("DecodeChart yaml: %v", err)
	}
	if a, b := mustMarshal(t, fromJSON), mustMarshal(t, fromYAML); a != b {
		t.Errorf("JSON and YAML decode differ\njson: %s\nyaml: %s", a, b)
	}
}

func TestDecodeChartYAMLUnknownSeries(t *testing.T) {
	_, err := pipeline.DecodeChart([]byte("series:\n  - type: bogus\n"))
	if !errors.Is(err, series.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestReadChart(t *testing.T) {
	c, err := pipeline.ReadChart(strings.NewReader(`{"backgroundColor":"#fff"}`))
	if err != nil {
		t.Fatalf("ReadChart: %v", err)
	}
	if got := mustMarshal(t, c); got != `{"backgroundColor":"#fff"}` {
		t.Errorf("unexpected document %s", got)
	}
}

// ─── Observations / WriteJSONL ────────────────────────────────────────────────

func TestObservationsInvertsTimeChart(t *testing.T) {
	in := []model.Observation{mkobs(2024, 1, 1, 1.5), mkobs(2024, 2, 1, math.NaN())}
	c, err := pipeline.TimeChart(pipeline.KindLine, "rain", in, pipeline.Options{})
	if err != nil {
		t.Fatalf("TimeChart: %v", err)
	}
	name, out, err := pipeline.Observations(c, 0)
	if err != nil {
		t.Fatalf("Observations: %v", err)
	}
	if name != "rain" || len(out) != 2 {
		t.Fatalf("expected 2 observations of rain, got %d of %q", len(out), name)
	}
	if !out[0].Date.Equal(in[0].Date) || out[0].Value != 1.5 {
		t.Errorf("obs[0]: got %+v", out[0])
	}
	if !out[1].IsMissing() || out[1].ValueRaw != "." {
		t.Errorf("obs[1] should be missing, got %+v", out[1])
	}
}

func TestObservationsErrors(t *testing.T) {
	c := chart.New().Series(series.NewLine())
	if _, _, err := pipeline.Observations(c, 1); !errors.Is(err, chart.ErrSeriesIndex) {
		t.Errorf("expected ErrSeriesIndex, got %v", err)
	}
	if _, _, err := pipeline.Observations(c, 0); !errors.Is(err, pipeline.ErrNoDates) {
		t.Errorf("expected ErrNoDates without axis, got %v", err)
	}
}

func TestWriteJSONL(t *testing.T) {
	var buf bytes.Buffer
	obs := []model.Observation{mkobs(2024, 1, 1, 2.5), mkobs(2024, 2, 1, math.NaN())}
	obs[0].ValueRaw = "2.5"
	if err := pipeline.WriteJSONL(&buf, "rain", obs); err != nil {
		t.Fatalf("WriteJSONL: %v", err)
	}
	lines := nonEmptyLines(buf.String())
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != `{"date":"2024-01-01","name":"rain","value":2.5,"value_raw":"2.5"}` {
		t.Errorf("unexpected line %s", lines[0])
	}
	if !strings.Contains(lines[1], `"value":null`) {
		t.Errorf("NaN should be written as null: %s", lines[1])
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	in := []model.Observation{mkobs(2024, 1, 1, 1), mkobs(2024, 1, 2, math.NaN()), mkobs(2024, 1, 3, 3.25)}
	if err := pipeline.WriteJSONL(&buf, "x", in); err != nil {
		t.Fatalf("WriteJSONL: %v", err)
	}
	name, out, err := pipeline.ReadObservations(&buf)
	if err != nil {
		t.Fatalf("ReadObservations: %v", err)
	}
	if name != "x" || len(out) != len(in) {
		t.Fatalf("expected %d observations of x, got %d of %q", len(in), len(out), name)
	}
	for i := range in {
		if !out[i].Date.Equal(in[i].Date) {
			t.Errorf("obs[%d] date: expected %v, got %v", i, in[i].Date, out[i].Date)
		}
		if in[i].IsMissing() != out[i].IsMissing() || (!in[i].IsMissing() && in[i].Value != out[i].Value) {
			t.Errorf("obs[%d] value: expected %g, got %g", i, in[i].Value, out[i].Value)
		}
	}
}
