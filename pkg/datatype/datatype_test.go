package datatype_test

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"

	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── Constructors ─────────────────────────────────────────────────────────────

func TestNumPicksVariantByKind(t *testing.T) {
	if _, ok := datatype.Num(3).(datatype.Int); !ok {
		t.Errorf("Num(int) should be Int, got %T", datatype.Num(3))
	}
	if _, ok := datatype.Num(uint8(3)).(datatype.Int); !ok {
		t.Errorf("Num(uint8) should be Int")
	}
	if _, ok := datatype.Num(3.0).(datatype.Float); !ok {
		t.Errorf("Num(float64) should be Float, got %T", datatype.Num(3.0))
	}
	if _, ok := datatype.Num(float32(1)).(datatype.Float); !ok {
		t.Errorf("Num(float32) should be Float")
	}
}

func TestNumLargeUnsignedDoesNotWrap(t *testing.T) {
	big := uint64(math.MaxInt64) + 1
	v, ok := datatype.Num(big).(datatype.Float)
	if !ok {
		t.Fatalf("Num(%d) should be Float, got %T", big, datatype.Num(big))
	}
	if float64(v) != float64(big) {
		t.Errorf("expected %v, got %v", float64(big), float64(v))
	}
	b, err := json.Marshal(datatype.Values(uint64(1), big))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `[1,9223372036854775808.0]` {
		t.Errorf("expected [1,9223372036854775808.0], got %s", b)
	}
	if i, ok := datatype.Num(uint64(math.MaxInt64)).(datatype.Int); !ok || int64(i) != math.MaxInt64 {
		t.Errorf("MaxInt64 should stay Int, got %v", datatype.Num(uint64(math.MaxInt64)))
	}
	if i, ok := datatype.Num(int64(-5)).(datatype.Int); !ok || int64(i) != -5 {
		t.Errorf("negative ints should stay Int, got %v", datatype.Num(int64(-5)))
	}
}

func TestRowsEncoding(t *testing.T) {
	b, err := json.Marshal(datatype.Rows([]int{0, 1}, []int{2, 3}))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `[[0,1],[2,3]]` {
		t.Errorf("expected [[0,1],[2,3]], got %s", b)
	}
}

func TestValuesFloatKeepsDecimalPoint(t *testing.T) {
	b, err := json.Marshal(datatype.Values(1.0, 2.5, -3.0))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `[1.0,2.5,-3.0]` {
		t.Errorf("expected [1.0,2.5,-3.0], got %s", b)
	}
}

func TestEmptyConstructorsReturnNil(t *testing.T) {
	if datatype.Values[int]() != nil || datatype.Rows[float64]() != nil || datatype.Frame() != nil {
		t.Error("constructors with no input should return a nil frame")
	}
}

func TestFloatRejectsNaN(t *testing.T) {
	if _, err := json.Marshal(datatype.Float(math.NaN())); err == nil {
		t.Error("NaN should not encode")
	}
	if _, err := json.Marshal(datatype.Values(math.Inf(1))); err == nil {
		t.Error("Inf should not encode")
	}
}

// ─── Decoding ─────────────────────────────────────────────────────────────────

func TestDecodeDistinguishesIntAndFloat(t *testing.T) {
	var df datatype.DataFrame
	if err := json.Unmarshal([]byte(`[1, 1.0, 2e3, -7, "Mon"]`), &df); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := datatype.DataFrame{
		datatype.Int(1),
		datatype.Float(1),
		datatype.Float(2000),
		datatype.Int(-7),
		datatype.String("Mon"),
	}
	if !reflect.DeepEqual(df, want) {
		t.Errorf("expected %#v, got %#v", want, df)
	}
}

func TestDecodeNestedArrays(t *testing.T) {
	var df datatype.DataFrame
	if err := json.Unmarshal([]byte(`[[0,1],[2,[3.5,"x"]]]`), &df); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := datatype.DataFrame{
		datatype.Array{datatype.Int(0), datatype.Int(1)},
		datatype.Array{datatype.Int(2), datatype.Array{datatype.Float(3.5), datatype.String("x")}},
	}
	if !reflect.DeepEqual(df, want) {
		t.Errorf("expected %#v, got %#v", want, df)
	}
}

func TestDecodeObjectBecomesItem(t *testing.T) {
	var df datatype.DataFrame
	if err := json.Unmarshal([]byte(`[{"value":40,"name":"rose 1"}]`), &df); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	it, ok := df[0].(datatype.Item)
	if !ok {
		t.Fatalf("expected Item, got %T", df[0])
	}
	if it.ItemName() != "rose 1" || it.ItemValue() != datatype.Int(40) {
		t.Errorf("unexpected item %q %v", it.ItemName(), it.ItemValue())
	}
}

func TestDecodeRejectsNullAndBooleans(t *testing.T) {
	for _, in := range []string{`[null]`, `[true]`, `[[1,false]]`, `{"a":1}`} {
		var df datatype.DataFrame
		if err := json.Unmarshal([]byte(in), &df); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestFrameRoundTrip(t *testing.T) {
	in := datatype.Frame(
		datatype.Int(3),
		datatype.Float(4),
		datatype.Tuple(datatype.String("Tue"), datatype.Float(0.25)),
		datatype.Named(12, "north").
			ItemStyle(element.NewItemStyle().Color("#c23531")).
			SymbolSize(element.Size(8)),
	)
	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var out datatype.DataFrame
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal %s: %v", b, err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("round trip changed frame: %s", b)
	}
}

// ─── Access ───────────────────────────────────────────────────────────────────

func TestMeasure(t *testing.T) {
	tests := []struct {
		p    datatype.DataPoint
		want float64
		ok   bool
	}{
		{datatype.Int(4), 4, true},
		{datatype.Float(2.5), 2.5, true},
		{datatype.Tuple(datatype.Int(0), datatype.Float(9.5)), 9.5, true},
		{datatype.Named(7, "x"), 7, true},
		{datatype.String("Mon"), 0, false},
		{datatype.NewItem().Name("empty"), 0, false},
		{datatype.Array{}, 0, false},
	}
	for _, tt := range tests {
		got, ok := datatype.Measure(tt.p)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Measure(%#v) = %v, %v; expected %v, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	df := datatype.Values(1, 2, 3)
	cp := df.Clone()
	cp[0] = datatype.Int(99)
	if df[0] != datatype.Int(1) {
		t.Error("Clone shares backing array with source")
	}
}

// ─── Dataset ──────────────────────────────────────────────────────────────────

func TestDatasetRoundTrip(t *testing.T) {
	ds := datatype.NewDataset().
		Dimensions("product", "2015", "2016").
		Row(datatype.String("Matcha Latte"), datatype.Float(43.3), datatype.Int(85)).
		Row(datatype.String("Milk Tea"), datatype.Float(83.1), datatype.Float(73.4))
	b, err := json.Marshal(ds)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"dimensions":["product","2015","2016"],"source":[["Matcha Latte",43.3,85],["Milk Tea",83.1,73.4]]}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
	var out datatype.Dataset
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(ds, out) {
		t.Errorf("round trip changed dataset")
	}
}
