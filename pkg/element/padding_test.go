package element_test

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── Encode ───────────────────────────────────────────────────────────────────

func TestPaddingEncodeShapes(t *testing.T) {
	tests := []struct {
		name string
		in   element.Padding
		want string
	}{
		{"single", element.Pad(5), `5`},
		{"single fractional", element.Pad(2.5), `2.5`},
		{"double", element.Pad2(10, 20), `[10,20]`},
		{"quadruple", element.Pad4(1, 2, 3, 4), `[1,2,3,4]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Errorf("expected %s, got %s", tt.want, b)
			}
		})
	}
}

func TestPaddingZeroValueFailsToEncode(t *testing.T) {
	if _, err := json.Marshal(element.Padding{}); err == nil {
		t.Error("zero Padding should not encode")
	}
}

// ─── Decode ───────────────────────────────────────────────────────────────────

func TestPaddingDecodeShapes(t *testing.T) {
	tests := []struct {
		in    string
		shape element.PaddingShape
		vals  []float64
	}{
		{`7`, element.PaddingSingle, []float64{7}},
		{`[7]`, element.PaddingSingle, []float64{7}},
		{`[4, 8]`, element.PaddingDouble, []float64{4, 8}},
		{`[1,2,3,4]`, element.PaddingQuadruple, []float64{1, 2, 3, 4}},
		{` -3.5 `, element.PaddingSingle, []float64{-3.5}},
	}
	for _, tt := range tests {
		var p element.Padding
		if err := json.Unmarshal([]byte(tt.in), &p); err != nil {
			t.Errorf("%s: unexpected error: %v", tt.in, err)
			continue
		}
		if p.Shape() != tt.shape {
			t.Errorf("%s: shape %d, expected %d", tt.in, p.Shape(), tt.shape)
		}
		if !reflect.DeepEqual(p.Values(), tt.vals) {
			t.Errorf("%s: values %v, expected %v", tt.in, p.Values(), tt.vals)
		}
	}
}

func TestPaddingDecodeRejectsUnsupportedLengths(t *testing.T) {
	for _, in := range []string{`[]`, `[1,2,3]`, `[1,2,3,4,5]`, `[1,2,3,4,5,6,7,8]`} {
		var p element.Padding
		err := json.Unmarshal([]byte(in), &p)
		if err == nil {
			t.Errorf("%s: expected error, got padding %v", in, p.Values())
			continue
		}
		if !errors.Is(err, element.ErrInvalidLength) {
			t.Errorf("%s: expected ErrInvalidLength, got %v", in, err)
		}
		var le *element.LengthError
		if !errors.As(err, &le) {
			t.Fatalf("%s: expected *LengthError, got %T", in, err)
		}
		if le.Type != "padding" {
			t.Errorf("%s: LengthError.Type = %q", in, le.Type)
		}
	}
}

func TestPaddingDecodeLengthThreeNamesLength(t *testing.T) {
	var p element.Padding
	err := json.Unmarshal([]byte(`[1,2,3]`), &p)
	if err == nil || !strings.Contains(err.Error(), "invalid length 3") {
		t.Errorf("expected message naming length 3, got %v", err)
	}
}

func TestPaddingDecodeRejectsWrongKinds(t *testing.T) {
	for _, in := range []string{`"5"`, `{"top":1}`, `true`, `null`, `["a","b"]`} {
		var p element.Padding
		if err := json.Unmarshal([]byte(in), &p); err == nil {
			t.Errorf("%s: expected error", in)
		}
	}
}

func TestPaddingDecodeFailureLeavesValueUntouched(t *testing.T) {
	p := element.Pad(9)
	_ = json.Unmarshal([]byte(`[1,2,3]`), &p)
	if p.Shape() != element.PaddingSingle || p.Values()[0] != 9 {
		t.Errorf("failed decode modified padding: %v", p.Values())
	}
}

// ─── Construction ─────────────────────────────────────────────────────────────

func TestNewPadding(t *testing.T) {
	p, err := element.NewPadding(1, 2)
	if err != nil {
		t.Fatalf("NewPadding(1, 2): %v", err)
	}
	if !reflect.DeepEqual(p, element.Pad2(1, 2)) {
		t.Errorf("NewPadding(1, 2) != Pad2(1, 2)")
	}
	if _, err := element.NewPadding(1, 2, 3); !errors.Is(err, element.ErrInvalidLength) {
		t.Errorf("NewPadding with 3 values: expected ErrInvalidLength, got %v", err)
	}
	if _, err := element.NewPadding(); err == nil {
		t.Error("NewPadding with no values should fail")
	}
}

func TestPaddingSides(t *testing.T) {
	tests := []struct {
		p    element.Padding
		want [4]float64
	}{
		{element.Pad(3), [4]float64{3, 3, 3, 3}},
		{element.Pad2(1, 2), [4]float64{1, 2, 1, 2}},
		{element.Pad4(1, 2, 3, 4), [4]float64{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		top, right, bottom, left := tt.p.Sides()
		got := [4]float64{top, right, bottom, left}
		if got != tt.want {
			t.Errorf("Sides(%v) = %v, expected %v", tt.p.Values(), got, tt.want)
		}
	}
}

func TestPaddingRoundTrip(t *testing.T) {
	for _, p := range []element.Padding{element.Pad(0), element.Pad2(5, 10), element.Pad4(1.5, 0, 2, 8)} {
		b, err := json.Marshal(p)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var got element.Padding
		if err := json.Unmarshal(b, &got); err != nil {
			t.Fatalf("Unmarshal %s: %v", b, err)
		}
		if !reflect.DeepEqual(got, p) {
			t.Errorf("round trip of %s produced %v", b, got.Values())
		}
	}
}
