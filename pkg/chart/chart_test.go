package chart_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/derickschaefer/chartspec/pkg/chart"
	"github.com/derickschaefer/chartspec/pkg/component"
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
	"github.com/derickschaefer/chartspec/pkg/series"
)

func mustMarshal(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return string(b)
}

// ─── Encoding ─────────────────────────────────────────────────────────────────

func TestEmptyChartEncodesAsEmptyObject(t *testing.T) {
	if got := mustMarshal(t, chart.New()); got != "{}" {
		t.Errorf("expected {}, got %s", got)
	}
}

func TestResetSequencesAreOmitted(t *testing.T) {
	c := chart.New().
		XAxis(component.NewAxis()).
		Color("#c23531").
		Series(series.NewLine()).
		ResetXAxis().ResetColor().ResetSeries()
	if got := mustMarshal(t, c); got != "{}" {
		t.Errorf("expected {}, got %s", got)
	}
}

func TestSingleAxisIsWrittenBare(t *testing.T) {
	c := chart.New().XAxis(component.NewAxis().Type(element.AxisCategory))
	want := `{"xAxis":{"type":"category"}}`
	if got := mustMarshal(t, c); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestTwoAxesAreWrittenAsArray(t *testing.T) {
	c := chart.New().XAxis(
		component.NewAxis().Type(element.AxisCategory),
		component.NewAxis().Type(element.AxisValue),
	)
	want := `{"xAxis":[{"type":"category"},{"type":"value"}]}`
	if got := mustMarshal(t, c); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestAxisDecodesBothShapes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`{"xAxis":{"type":"category"}}`, 1},
		{`{"xAxis":[{"type":"category"},{"type":"value"}]}`, 2},
		{`{"xAxis":[]}`, 0},
		{`{"xAxis":null}`, 0},
	}
	for _, tt := range tests {
		c, err := chart.Parse([]byte(tt.in))
		if err != nil {
			t.Fatalf("%s: Parse: %v", tt.in, err)
		}
		if got := len(c.XAxes()); got != tt.want {
			t.Errorf("%s: expected %d axes, got %d", tt.in, tt.want, got)
		}
	}
}

func TestLegendFollowsSingularRule(t *testing.T) {
	c := chart.New().
		Title(component.NewTitle().Text("a"), component.NewTitle().Text("b")).
		Legend(component.NewLegend().Data("x"))
	want := `{"title":[{"text":"a"},{"text":"b"}],"legend":{"data":["x"]}}`
	if got := mustMarshal(t, c); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestSingleTitleIsWrittenAsArray(t *testing.T) {
	c := chart.New().Title(component.NewTitle().Text("a"))
	if got, want := mustMarshal(t, c), `{"title":[{"text":"a"}]}`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestBareTitleDecodes(t *testing.T) {
	c, err := chart.Parse([]byte(`{"title":{"text":"a"}}`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if titles := c.Titles(); len(titles) != 1 || titles[0].TitleText() != "a" {
		t.Errorf("expected one title a, got %d", len(titles))
	}
	if got, want := mustMarshal(t, c), `{"title":[{"text":"a"}]}`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestParseRejectsMiscasedKeys(t *testing.T) {
	for _, in := range []string{
		`{"Title":{"text":"a"}}`,
		`{"title":{"TEXT":"a"}}`,
		`{"xAxis":{"Type":"category"}}`,
		`{"series":[{"type":"bar","Data":[1]}]}`,
	} {
		if _, err := chart.Parse([]byte(in)); !errors.Is(err, element.ErrKeyCase) {
			t.Errorf("%s: expected ErrKeyCase, got %v", in, err)
		}
	}
}

func TestGeoMapIsNotWritten(t *testing.T) {
	c := chart.New().
		GeoMap(component.NewSVGMap("floor", "<svg></svg>")).
		BackgroundColor("#fff")
	if got, want := mustMarshal(t, c), `{"backgroundColor":"#fff"}`; got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	maps := c.GeoMaps()
	if len(maps) != 1 || maps[0].Name() != "floor" || maps[0].Source() != component.GeoMapSVG {
		t.Errorf("unexpected maps %+v", maps)
	}
}

func TestDocumentKeepsHTMLCharacters(t *testing.T) {
	c := chart.New().
		Title(component.NewTitle().Text("R&D")).
		Series(series.NewLine().Name("a<b"))
	b, err := c.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	want := `{"title":[{"text":"R&D"}],"series":[{"type":"line","name":"a<b"}]}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
	if !strings.Contains(c.String(), `"name": "a<b"`) {
		t.Errorf("expected unescaped name in\n%s", c.String())
	}
}

func TestLineDataRoundTrip(t *testing.T) {
	in := `{"series":[{"type":"line","data":[[0,1],[2,3]]}]}`
	c, err := chart.Parse([]byte(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := mustMarshal(t, c); got != in {
		t.Errorf("expected %s, got %s", in, got)
	}
}

func TestFullDocumentRoundTrip(t *testing.T) {
	c := chart.New().
		Title(component.NewTitle().Text("Rainfall").Padding(element.Pad2(5, 10))).
		Tooltip(element.NewTooltip().Trigger(element.TriggerAxis)).
		XAxis(component.NewAxis().Type(element.AxisCategory).Data("Jan", "Feb", "Mar")).
		YAxis(component.NewAxis().Type(element.AxisValue)).
		Color("#5470c6", "#91cc75").
		Series(
			series.NewBar().ID("rain").Name("Rain").Data(datatype.Values(2.6, 5.9, 9.0)),
			series.NewLine().ID("avg").Name("Average").Smooth(element.Smooth(true)).Data(datatype.Values(2, 4, 7)),
		)
	first := mustMarshal(t, c)
	back, err := chart.Parse([]byte(first))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if second := mustMarshal(t, back); second != first {
		t.Errorf("round trip changed document\nfirst:  %s\nsecond: %s", first, second)
	}
}

func TestParseRejectsUnknownSeries(t *testing.T) {
	_, err := chart.Parse([]byte(`{"series":[{"type":"bogus"}]}`))
	if !errors.Is(err, series.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestFailedDecodeLeavesChartUnchanged(t *testing.T) {
	c := chart.New().Color("#fff")
	if err := json.Unmarshal([]byte(`{"color":["#000"],"series":[{"name":"x"}]}`), c); err == nil {
		t.Fatal("expected error")
	}
	if cols := c.Colors(); len(cols) != 1 || cols[0] != "#fff" {
		t.Errorf("expected palette untouched, got %v", cols)
	}
}

func TestStringUnquotesRawLiterals(t *testing.T) {
	c := chart.New().
		Tooltip(element.NewTooltip().FormatterFunc("function (p) { return p.value > 1 && p.value < 9; }")).
		Series(series.NewCustom().RenderItem("function (params, api) { return null; }"))
	out := c.String()
	if !strings.Contains(out, `"formatter": function (p) { return p.value > 1 && p.value < 9; }`) {
		t.Errorf("expected unquoted formatter, got\n%s", out)
	}
	if !strings.Contains(out, `"renderItem": function (params, api) { return null; }`) {
		t.Errorf("expected unquoted renderItem, got\n%s", out)
	}
	if strings.Contains(out, element.RawStart) {
		t.Errorf("sentinel left in output:\n%s", out)
	}
}

func TestStringIsIndented(t *testing.T) {
	out := chart.New().BackgroundColor("#fff").String()
	want := "{\n  \"backgroundColor\": \"#fff\"\n}"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestEncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	c := chart.New().Series(series.NewPie().Name("share").Data(datatype.Frame(datatype.Named(335, "Direct"))))
	if err := c.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	back, err := chart.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if back.SeriesCount() != 1 || back.SeriesList()[0].Type() != series.TypePie {
		t.Errorf("unexpected series after decode: %v", back.SeriesList())
	}
}

// ─── Accessors ────────────────────────────────────────────────────────────────

func TestSeriesIsCopiedIn(t *testing.T) {
	l := series.NewLine().Name("a")
	c := chart.New().Series(l)
	l.Name("b")
	if got := c.SeriesList()[0].SeriesName(); got != "a" {
		t.Errorf("expected a, got %s", got)
	}
}

func TestSeriesIDs(t *testing.T) {
	c := chart.New().Series(
		series.NewLine().ID("one"),
		series.NewBar(),
		series.NewScatter().ID("three"),
	)
	ids := c.SeriesIDs()
	if len(ids) != 2 || ids[0] != "one" || ids[1] != "three" {
		t.Errorf("expected [one three], got %v", ids)
	}
	s, ok := c.SeriesByID("three")
	if !ok || s.Type() != series.TypeScatter {
		t.Errorf("expected scatter for three, got %v %v", s, ok)
	}
	if _, ok := c.SeriesByID(""); ok {
		t.Error("empty id should not match")
	}
}

func TestColorsIsCopy(t *testing.T) {
	c := chart.New().Color("#a", "#b")
	cols := c.Colors()
	cols[0] = "#z"
	if c.Colors()[0] != "#a" {
		t.Error("Colors should return a copy")
	}
}

func TestSaveAsImageType(t *testing.T) {
	if _, ok := chart.New().SaveAsImageType(); ok {
		t.Error("expected no type without toolbox")
	}
	c := chart.New().Toolbox(component.NewToolbox().Feature(
		component.NewFeature().SaveAsImage(component.NewSaveAsImage().Type(component.SaveAsSVG))))
	if typ, ok := c.SaveAsImageType(); !ok || typ != component.SaveAsSVG {
		t.Errorf("expected svg, got %q %v", typ, ok)
	}
}

// ─── WithMutable ──────────────────────────────────────────────────────────────

func TestWithMutableEditsSeries(t *testing.T) {
	c := chart.New().Series(series.NewLine().ID("l").Name("before"))
	err := c.WithMutable(func(ctl *chart.Controller) error {
		sc, err := ctl.SeriesWithID("l")
		if err != nil {
			return err
		}
		lc, err := sc.AsLine()
		if err != nil {
			return err
		}
		lc.Name("after").Data(datatype.Values(1, 2))
		ctl.ResetXAxis().XAxis(component.NewAxis().Type(element.AxisTime))
		return nil
	})
	if err != nil {
		t.Fatalf("WithMutable: %v", err)
	}
	s := c.SeriesList()[0]
	if s.SeriesName() != "after" || len(s.SeriesData()) != 2 {
		t.Errorf("edit not applied: %s %v", s.SeriesName(), s.SeriesData())
	}
	if ax := c.XAxes(); len(ax) != 1 || ax[0].AxisType() != element.AxisTime {
		t.Errorf("expected one time axis, got %v", ax)
	}
}

func TestWithMutableWrongVariant(t *testing.T) {
	c := chart.New().Series(series.NewLine())
	err := c.WithMutable(func(ctl *chart.Controller) error {
		sc, err := ctl.SeriesAt(0)
		if err != nil {
			return err
		}
		_, err = sc.AsScatter()
		return err
	})
	if err == nil || err.Error() != "series: expected Scatter series variant, got Line" {
		t.Errorf("unexpected error %v", err)
	}
	if !errors.Is(err, series.ErrWrongVariant) {
		t.Error("expected ErrWrongVariant in chain")
	}
}

func TestWithMutableSeriesLookupErrors(t *testing.T) {
	c := chart.New().Series(series.NewBar())
	err := c.WithMutable(func(ctl *chart.Controller) error {
		if _, err := ctl.SeriesAt(1); !errors.Is(err, chart.ErrSeriesIndex) {
			t.Errorf("expected ErrSeriesIndex, got %v", err)
		}
		if _, err := ctl.SeriesAt(-1); !errors.Is(err, chart.ErrSeriesIndex) {
			t.Errorf("expected ErrSeriesIndex, got %v", err)
		}
		if _, err := ctl.SeriesWithID("missing"); !errors.Is(err, chart.ErrSeriesNotFound) {
			t.Errorf("expected ErrSeriesNotFound, got %v", err)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithMutable: %v", err)
	}
}

func TestWithMutableReturnsCallbackError(t *testing.T) {
	boom := errors.New("boom")
	if err := chart.New().WithMutable(func(*chart.Controller) error { return boom }); err != boom {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestControllerExpiresAfterScope(t *testing.T) {
	c := chart.New().Series(series.NewLine())
	var kept *chart.Controller
	var keptSeries *series.Controller
	if err := c.WithMutable(func(ctl *chart.Controller) error {
		kept = ctl
		var err error
		keptSeries, err = ctl.SeriesAt(0)
		return err
	}); err != nil {
		t.Fatalf("WithMutable: %v", err)
	}

	assertPanics(t, "chart controller", func() { kept.ResetSeries() })
	assertPanics(t, "series controller", func() { keptSeries.Type() })
}

func assertPanics(t *testing.T, what string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", what)
		}
	}()
	fn()
}
