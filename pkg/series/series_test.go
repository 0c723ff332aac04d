package series_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
	"github.com/derickschaefer/chartspec/pkg/series"
)

// ─── Helpers ──────────────────────────────────────────────────────────────────

func sample() []series.Series {
	return []series.Series{
		series.NewBar().Name("sales").Stack("total").BarWidth(element.AtLabel("60%")).Data(datatype.Values(5, 20, 36)),
		series.NewBar3D().Name("cube").Shading("lambert").Data(datatype.Rows([]int{0, 1, 4})),
		series.NewBoxplot().Name("spread").BoxWidth(element.At(7), element.AtLabel("50%")).Data(datatype.Rows([]float64{1, 2, 3, 4, 5})),
		series.NewCandlestick().Name("ohlc").Data(datatype.Rows([]float64{20, 34, 10, 38})),
		series.NewCustom().Name("bespoke").RenderItem("function (params, api) { return null; }"),
		series.NewEffectScatter().Name("pulse").ShowEffectOn("render").Data(datatype.Rows([]int{1, 2})),
		series.NewFunnel().Name("stages").Sort("descending").Data(datatype.Frame(datatype.Named(60, "Visit"), datatype.Named(40, "Click"))),
		series.NewGauge().Name("speed").Min(0).Max(240).Data(datatype.Frame(datatype.Named(72.5, "km/h"))),
		series.NewGraph().Name("net").Layout("force").Links(series.Edge("a", "b", 1)).Data(datatype.Strings("a", "b")),
		series.NewHeatmap().Name("heat").Data(datatype.Rows([]int{0, 0, 5}, []int{0, 1, 7})),
		series.NewLine().Name("temp").Smooth(element.Smooth(true)).Data(datatype.Rows([]int{0, 1}, []int{2, 3})),
		series.NewMap("USA").Name("states").Roam(true).NameMap("TX", "Texas"),
		series.NewParallel().Name("cars").Smooth(element.SmoothRatio(0.3)).Data(datatype.Rows([]float64{1, 55, 9})),
		series.NewPictorialBar().Name("icons").Data(datatype.Values(10, 20)),
		series.NewPie().Name("share").Radius(element.AtLabel("40%"), element.AtLabel("70%")).Data(datatype.Frame(datatype.Named(335, "Direct"))),
		series.NewRadar().Name("budget").Data(datatype.Rows([]int{4200, 3000, 20000})),
		series.NewSankey().Name("flow").Links(series.Edge("a", "b", 5)).Data(datatype.Strings("a", "b")),
		series.NewScatter().Name("pts").SymbolSize(element.Size(8)).Data(datatype.Rows([]float64{10.0, 8.04})),
		series.NewSunburst().Name("rings").Radius(element.AtLabel("90%")).Data(datatype.Frame(datatype.Named(4, "root").Children(datatype.Named(2, "leaf")))),
		series.NewThemeRiver().Name("themes").Data(datatype.Frame(datatype.Tuple(datatype.String("2015/11/08"), datatype.Int(10), datatype.String("DQ")))),
		series.NewTree().Name("org").Layout("radial").Data(datatype.Frame(datatype.NewItem().Name("ceo").Children(datatype.NewItem().Name("cto")))),
		series.NewTreemap().Name("disk").LeafDepth(2).Data(datatype.Frame(datatype.Named(40, "src"))),
	}
}

// ─── Tagged codec ─────────────────────────────────────────────────────────────

func TestEveryVariantIsCovered(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range sample() {
		seen[s.Type()] = true
	}
	for _, typ := range series.Known() {
		if !seen[typ] {
			t.Errorf("expected a sample for %s", typ)
		}
	}
	if len(series.Known()) != 22 {
		t.Errorf("expected 22 known types, got %d", len(series.Known()))
	}
}

func TestTypeKeyIsWrittenFirst(t *testing.T) {
	for _, s := range sample() {
		b, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("%s: Marshal: %v", s.Type(), err)
		}
		prefix := `{"type":"` + s.Type() + `"`
		if !strings.HasPrefix(string(b), prefix) {
			t.Errorf("%s: expected prefix %s, got %s", s.Type(), prefix, b)
		}
	}
}

func TestRoundTripEveryVariant(t *testing.T) {
	for _, s := range sample() {
		first, err := json.Marshal(s)
		if err != nil {
			t.Fatalf("%s: Marshal: %v", s.Type(), err)
		}
		back, err := series.Unmarshal(first)
		if err != nil {
			t.Fatalf("%s: Unmarshal: %v", s.Type(), err)
		}
		if back.Type() != s.Type() {
			t.Errorf("expected type %s, got %s", s.Type(), back.Type())
		}
		if back.SeriesName() != s.SeriesName() {
			t.Errorf("%s: expected name %q, got %q", s.Type(), s.SeriesName(), back.SeriesName())
		}
		second, err := json.Marshal(back)
		if err != nil {
			t.Fatalf("%s: re-Marshal: %v", s.Type(), err)
		}
		if string(first) != string(second) {
			t.Errorf("%s: round trip changed document\nfirst:  %s\nsecond: %s", s.Type(), first, second)
		}
	}
}

func TestEmptyVariantEncodesTypeOnly(t *testing.T) {
	b, err := json.Marshal(series.NewLine())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"type":"line"}` {
		t.Errorf(`expected {"type":"line"}, got %s`, b)
	}
}

func TestLineEncoding(t *testing.T) {
	l := series.NewLine().Name("x").Smooth(element.Smooth(true)).Data(datatype.Rows([]int{0, 1}, []int{2, 3}))
	b, err := json.Marshal(l)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"line","name":"x","smooth":true,"data":[[0,1],[2,3]]}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}

func TestBar3DDefaultsToCartesian3D(t *testing.T) {
	b, err := json.Marshal(series.NewBar3D())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"type":"bar3D","coordinateSystem":"cartesian3D"}` {
		t.Errorf("unexpected encoding %s", b)
	}
}

func TestPieSingleRadiusIsBare(t *testing.T) {
	b, err := json.Marshal(series.NewPie().Radius(element.AtLabel("55%")))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"type":"pie","radius":"55%"}` {
		t.Errorf("unexpected encoding %s", b)
	}
}

func TestUnmarshalDecodesData(t *testing.T) {
	s, err := series.Unmarshal([]byte(`{"type":"line","data":[[0,1],[2,3.5]]}`))
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	l, ok := s.(*series.Line)
	if !ok {
		t.Fatalf("expected *series.Line, got %T", s)
	}
	data := l.SeriesData()
	if len(data) != 2 {
		t.Fatalf("expected 2 points, got %d", len(data))
	}
	row, ok := data[1].(datatype.Array)
	if !ok || len(row) != 2 {
		t.Fatalf("expected a pair, got %#v", data[1])
	}
	if _, ok := row[0].(datatype.Int); !ok {
		t.Errorf("expected Int, got %T", row[0])
	}
	if _, ok := row[1].(datatype.Float); !ok {
		t.Errorf("expected Float, got %T", row[1])
	}
}

// ─── Decode errors ────────────────────────────────────────────────────────────

func TestUnknownType(t *testing.T) {
	_, err := series.Unmarshal([]byte(`{"type":"not_a_real_type"}`))
	var ute *series.UnknownTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("expected UnknownTypeError, got %v", err)
	}
	if ute.Type != "not_a_real_type" {
		t.Errorf("expected type not_a_real_type, got %s", ute.Type)
	}
	if !errors.Is(err, series.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType in chain")
	}
	if !strings.Contains(err.Error(), "line") {
		t.Errorf("expected known types listed, got %s", err)
	}
}

func TestTypeMatchIsCaseSensitive(t *testing.T) {
	_, err := series.Unmarshal([]byte(`{"type":"Line"}`))
	if !errors.Is(err, series.ErrUnknownType) {
		t.Errorf("expected ErrUnknownType, got %v", err)
	}
}

func TestMissingType(t *testing.T) {
	for _, in := range []string{`{"name":"x"}`, `{"type":7}`, `{"type":null}`, `{"type":""}`, `{"type": null ,"data":[1]}`} {
		_, err := series.Unmarshal([]byte(in))
		if !errors.Is(err, series.ErrMissingType) {
			t.Errorf("%s: expected ErrMissingType, got %v", in, err)
		}
	}
}

func TestFieldErrorNamesField(t *testing.T) {
	_, err := series.Unmarshal([]byte(`{"type":"line","name":"ok","smooth":"yes"}`))
	var de *series.DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Variant != "line" {
		t.Errorf("expected variant line, got %s", de.Variant)
	}
	if de.Field != "smooth" {
		t.Errorf("expected field smooth, got %q", de.Field)
	}
}

func TestVariantRejectsOtherType(t *testing.T) {
	l := series.NewLine().Name("keep")
	err := l.UnmarshalJSON([]byte(`{"type":"bar","name":"x"}`))
	var de *series.DecodeError
	if !errors.As(err, &de) || de.Field != "type" {
		t.Fatalf("expected type DecodeError, got %v", err)
	}
	if l.SeriesName() != "keep" {
		t.Errorf("failed decode should leave the series untouched, got name %q", l.SeriesName())
	}
}

func TestKeysMustMatchExactly(t *testing.T) {
	for _, tc := range []struct {
		in    string
		field string
	}{
		{`{"type":"line","DATA":[[0,1]]}`, "DATA"},
		{`{"type":"line","Name":"a"}`, "Name"},
		{`{"type":"line","Type":"line"}`, "Type"},
		{`{"type":"line","label":{"SHOW":true}}`, "label"},
	} {
		_, err := series.Unmarshal([]byte(tc.in))
		if !errors.Is(err, element.ErrKeyCase) {
			t.Errorf("%s: expected ErrKeyCase, got %v", tc.in, err)
			continue
		}
		var de *series.DecodeError
		if !errors.As(err, &de) || de.Field != tc.field {
			t.Errorf("%s: expected field %s, got %v", tc.in, tc.field, err)
		}
	}
}

func TestOnlyTypeKeySelectsVariant(t *testing.T) {
	_, err := series.Unmarshal([]byte(`{"TYPE":"line"}`))
	if !errors.Is(err, series.ErrMissingType) {
		t.Errorf("expected ErrMissingType, got %v", err)
	}
}

func TestFrame(t *testing.T) {
	var f series.Frame
	if err := json.Unmarshal([]byte(`[{"type":"line","name":"a"},{"type":"bar","name":"b"}]`), &f); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(f) != 2 || f[0].Type() != "line" || f[1].Type() != "bar" {
		t.Errorf("unexpected frame %v", f)
	}

	err := json.Unmarshal([]byte(`[{"type":"line"},{"type":"nope"}]`), &f)
	if !errors.Is(err, series.ErrUnknownType) {
		t.Fatalf("expected ErrUnknownType, got %v", err)
	}
	if !strings.Contains(err.Error(), "series[1]") {
		t.Errorf("expected index in error, got %s", err)
	}
}

// ─── Cloning ──────────────────────────────────────────────────────────────────

func TestCloneDoesNotAlias(t *testing.T) {
	l := series.NewLine().Name("a").Data(datatype.Values(1, 2))
	c := series.Clone(l).(*series.Line)
	c.Name("b").AppendData(datatype.Int(3))
	if l.SeriesName() != "a" {
		t.Errorf("expected original name a, got %s", l.SeriesName())
	}
	if len(l.SeriesData()) != 2 {
		t.Errorf("expected original data untouched, got %d points", len(l.SeriesData()))
	}
}

func TestDataIsCopiedIn(t *testing.T) {
	df := datatype.Values(1, 2)
	b := series.NewBar().Data(df)
	df[0] = datatype.Int(99)
	if got := b.SeriesData()[0]; got != datatype.DataPoint(datatype.Int(1)) {
		t.Errorf("expected 1, got %v", got)
	}
}

// ─── Controllers ──────────────────────────────────────────────────────────────

func TestControllerWrongVariant(t *testing.T) {
	c := series.NewController(series.NewLine(), nil)
	_, err := c.AsScatter()
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "series: expected Scatter series variant, got Line" {
		t.Errorf("unexpected message %q", err)
	}
	if !errors.Is(err, series.ErrWrongVariant) {
		t.Errorf("expected ErrWrongVariant in chain")
	}
	var ve *series.VariantError
	if !errors.As(err, &ve) || ve.Want != "Scatter" || ve.Got != "Line" {
		t.Errorf("unexpected VariantError %+v", ve)
	}
}

func TestLineControllerEditsInPlace(t *testing.T) {
	l := series.NewLine()
	c := series.NewController(l, nil)
	lc, err := c.AsLine()
	if err != nil {
		t.Fatalf("AsLine: %v", err)
	}
	lc.Name("edited").Stack("s").Smooth(element.SmoothRatio(0.5))
	if l.SeriesName() != "edited" || l.StackName() != "s" {
		t.Errorf("controller did not edit the series: %q %q", l.SeriesName(), l.StackName())
	}
	if sm, ok := l.Smoothness(); !ok {
		t.Error("expected smoothness set")
	} else if r, isRatio := sm.Ratio(); !isRatio || r != 0.5 {
		t.Errorf("expected ratio 0.5, got %v", r)
	}
}

func TestBarAndScatterControllers(t *testing.T) {
	b := series.NewBar()
	bc, err := series.NewController(b, nil).AsBar()
	if err != nil {
		t.Fatalf("AsBar: %v", err)
	}
	bc.Name("b").Stack("total")
	if b.StackName() != "total" {
		t.Errorf("expected stack total, got %s", b.StackName())
	}

	s := series.NewScatter()
	sc, err := series.NewController(s, nil).AsScatter()
	if err != nil {
		t.Fatalf("AsScatter: %v", err)
	}
	sc.Name("pts").Data(datatype.Rows([]int{1, 2}))
	if s.SeriesName() != "pts" || len(s.SeriesData()) != 1 {
		t.Errorf("scatter controller did not apply edits")
	}
}

func TestExpiredControllerPanics(t *testing.T) {
	live := true
	c := series.NewController(series.NewLine(), func() bool { return live })
	lc, err := c.AsLine()
	if err != nil {
		t.Fatalf("AsLine: %v", err)
	}
	live = false

	defer func() {
		if recover() == nil {
			t.Error("expected panic from expired controller")
		}
	}()
	lc.Name("too late")
}
