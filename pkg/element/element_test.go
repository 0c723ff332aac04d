package element_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── Raw strings ──────────────────────────────────────────────────────────────

func TestRawStringEncodesWithSentinels(t *testing.T) {
	b, err := json.Marshal(element.RawString("function (p) { return p; }"))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `"` + element.RawStart + `function (p) { return p; }` + element.RawEnd + `"`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}

func TestRawStringRoundTrip(t *testing.T) {
	in := element.RawString(`function (v) { return v > 1 ? "big" : "<small>"; }`)
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out element.RawString
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if out != in {
		t.Errorf("expected %q, got %q", in, out)
	}
}

func TestProcessRawStrings(t *testing.T) {
	doc, err := json.Marshal(map[string]any{
		"formatter": element.RawString(`function (p) { return "v=" + p.value; }`),
		"plain":     "untouched",
	})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	out := element.ProcessRawStrings(string(doc))
	want := `"formatter":function (p) { return "v=" + p.value; }`
	if !strings.Contains(out, want) {
		t.Errorf("expected %s in output, got %s", want, out)
	}
	if !strings.Contains(out, `"plain":"untouched"`) {
		t.Errorf("ordinary strings should stay quoted: %s", out)
	}
	if strings.Contains(out, element.RawStart) || strings.Contains(out, element.RawEnd) {
		t.Errorf("sentinels left in output: %s", out)
	}
}

func TestProcessRawStringsMultiple(t *testing.T) {
	in := `["` + element.WrapRaw("a()") + `","x","` + element.WrapRaw("b()") + `"]`
	if got := element.ProcessRawStrings(in); got != `[a(),"x",b()]` {
		t.Errorf("unexpected output %s", got)
	}
}

func TestUnwrapRaw(t *testing.T) {
	if s, ok := element.UnwrapRaw(element.WrapRaw("f")); !ok || s != "f" {
		t.Errorf("UnwrapRaw(WrapRaw(f)) = %q, %v", s, ok)
	}
	if s, ok := element.UnwrapRaw("plain"); ok || s != "plain" {
		t.Errorf("UnwrapRaw(plain) = %q, %v", s, ok)
	}
}

// ─── Smoothness ───────────────────────────────────────────────────────────────

func TestSmoothnessShapes(t *testing.T) {
	tests := []struct {
		in   element.Smoothness
		wire string
	}{
		{element.Smooth(true), `true`},
		{element.Smooth(false), `false`},
		{element.SmoothRatio(0.4), `0.4`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(b) != tt.wire {
			t.Errorf("expected %s, got %s", tt.wire, b)
		}
		var got element.Smoothness
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal %s: %v", b, err)
		}
		if !reflect.DeepEqual(got, tt.in) {
			t.Errorf("round trip of %s changed value", b)
		}
	}
	var s element.Smoothness
	if err := json.Unmarshal([]byte(`"yes"`), &s); err == nil {
		t.Error("string smoothness should fail")
	}
}

// ─── SymbolSize ───────────────────────────────────────────────────────────────

func TestSymbolSizeShapes(t *testing.T) {
	tests := []struct {
		in   element.SymbolSize
		wire string
	}{
		{element.Size(10), `10`},
		{element.SizePair(10, 4), `[10,4]`},
		{element.SizeFunc("function (v) { return v[1]; }"),
			`"` + element.WrapRaw("function (v) { return v[1]; }") + `"`},
	}
	for _, tt := range tests {
		b, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if string(b) != tt.wire {
			t.Errorf("expected %s, got %s", tt.wire, b)
		}
		var got element.SymbolSize
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal %s: %v", b, err)
		}
		if !reflect.DeepEqual(got, tt.in) {
			t.Errorf("round trip of %s changed value", b)
		}
	}
}

func TestSymbolSizeRejectsTriple(t *testing.T) {
	var s element.SymbolSize
	err := json.Unmarshal([]byte(`[1,2,3]`), &s)
	if !errors.Is(err, element.ErrInvalidLength) {
		t.Errorf("expected ErrInvalidLength, got %v", err)
	}
}

// ─── AnimationTime / Coord ────────────────────────────────────────────────────

func TestAnimationTimeRoundTrip(t *testing.T) {
	for _, a := range []element.AnimationTime{element.Millis(750), element.TimeFunc("function (i) { return i * 10; }")} {
		b, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var got element.AnimationTime
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal %s: %v", b, err)
		}
		if !reflect.DeepEqual(got, a) {
			t.Errorf("round trip of %s changed value", b)
		}
	}
}

func TestCoordRoundTrip(t *testing.T) {
	for _, c := range []element.Coord{element.At(3), element.AtLabel("Mon")} {
		b, err := json.Marshal(c)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var got element.Coord
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal %s: %v", b, err)
		}
		if got != c {
			t.Errorf("round trip of %s changed value", b)
		}
	}
}

// ─── Records ──────────────────────────────────────────────────────────────────

func TestEmptyRecordsEncodeAsEmptyObject(t *testing.T) {
	for _, v := range []any{element.NewItemStyle(), element.NewLabel(), element.NewTooltip(), element.NewMarkLine()} {
		b, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("Marshal %T: %v", v, err)
		}
		if string(b) != `{}` {
			t.Errorf("%T: expected {}, got %s", v, b)
		}
	}
}

func TestValueBuildersDoNotAlias(t *testing.T) {
	base := element.NewMarkPoint().Data(element.MarkPointData{Name: strPtr("a")})
	one := base.Data(element.MarkPointData{Name: strPtr("b")})
	two := base.Data(element.MarkPointData{Name: strPtr("c")})

	b1, _ := json.Marshal(one)
	b2, _ := json.Marshal(two)
	if !strings.Contains(string(b1), `"b"`) || strings.Contains(string(b1), `"c"`) {
		t.Errorf("first builder corrupted: %s", b1)
	}
	if !strings.Contains(string(b2), `"c"`) || strings.Contains(string(b2), `"b"`) {
		t.Errorf("second builder corrupted: %s", b2)
	}
}

func TestTooltipRoundTrip(t *testing.T) {
	in := element.NewTooltip().
		Trigger(element.TriggerAxis).
		Padding(element.Pad2(4, 8)).
		AxisPointer(element.NewAxisPointer().Type(element.AxisPointerCross)).
		ValueFormatterFunc("function (v) { return v + ' ms'; }")
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out element.Tooltip
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip changed tooltip: %s", b)
	}
}

func TestDimsShapes(t *testing.T) {
	enc := element.DimensionEncode{X: element.Dims{"date"}, Y: element.Dims{"a", "b"}}
	b, err := json.Marshal(enc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"x":"date","y":["a","b"]}` {
		t.Errorf("unexpected encoding %s", b)
	}
	var got element.DimensionEncode
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(got, enc) {
		t.Errorf("round trip changed encode: %+v", got)
	}
}

func strPtr(s string) *string { return &s }

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	b, err := element.Marshal(map[string]string{"formatter": "a < b && c > d"})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `{"formatter":"a < b && c > d"}` {
		t.Errorf("expected unescaped output without newline, got %q", b)
	}
}

func TestNestedRecordsKeepHTMLCharacters(t *testing.T) {
	tip := element.NewTooltip().
		AxisPointer(element.NewAxisPointer().Type(element.AxisPointerCross)).
		ValueFormatterFunc("function (v) { return v < 0 ? '&minus;' : v; }")
	b, err := tip.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if strings.Contains(string(b), `\u003c`) || strings.Contains(string(b), `\u0026`) {
		t.Errorf("nested encoding escaped HTML characters: %s", b)
	}
	if !strings.Contains(string(b), "v < 0 ? '&minus;'") {
		t.Errorf("expected formatter text verbatim, got %s", b)
	}
}

// ─── Key matching ─────────────────────────────────────────────────────────────

func TestDecodeRejectsKeyThatDiffersOnlyInCase(t *testing.T) {
	l := element.NewLabel().Show(false)
	err := json.Unmarshal([]byte(`{"show":true,"Position":"top"}`), &l)
	if !errors.Is(err, element.ErrKeyCase) {
		t.Fatalf("expected ErrKeyCase, got %v", err)
	}
	var kc *element.KeyCaseError
	if !errors.As(err, &kc) || kc.Key != "Position" || kc.Want != "position" {
		t.Errorf("expected Position -> position, got %+v", kc)
	}
	b, _ := l.MarshalJSON()
	if string(b) != `{"show":false}` {
		t.Errorf("failed decode should leave the label untouched, got %s", b)
	}
}

func TestDecodeIgnoresUnknownKeys(t *testing.T) {
	var l element.Label
	if err := json.Unmarshal([]byte(`{"show":true,"overflow":"truncate"}`), &l); err != nil {
		t.Fatalf("unknown keys should pass, got %v", err)
	}
	b, _ := l.MarshalJSON()
	if string(b) != `{"show":true}` {
		t.Errorf("expected {\"show\":true}, got %s", b)
	}
}

func TestDecodeChecksNestedRecords(t *testing.T) {
	var tip element.Tooltip
	err := json.Unmarshal([]byte(`{"axisPointer":{"TYPE":"cross"}}`), &tip)
	if !errors.Is(err, element.ErrKeyCase) {
		t.Errorf("expected ErrKeyCase from nested axisPointer, got %v", err)
	}
}

func TestDecodeWalksPlainStructs(t *testing.T) {
	type inner struct {
		Left float64 `json:"left"`
	}
	type outer struct {
		Areas map[string]inner `json:"areas"`
		List  []*inner         `json:"list"`
	}
	var o outer
	err := element.Decode([]byte(`{"areas":{"AK":{"left":1}},"list":[{"left":2},{"LEFT":3}]}`), &o)
	var kc *element.KeyCaseError
	if !errors.As(err, &kc) {
		t.Fatalf("expected KeyCaseError, got %v", err)
	}
	if kc.Path != "list[1]" || kc.Key != "LEFT" {
		t.Errorf("expected LEFT at list[1], got %+v", kc)
	}
	if o.Areas != nil || o.List != nil {
		t.Errorf("failed decode should leave the value untouched, got %+v", o)
	}
}
