package element

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ─── Smoothness ───────────────────────────────────────────────────────────────

// Smoothness is a line's `smooth` option: either a flag or a ratio in [0, 1].
type Smoothness struct {
	ratio   float64
	isRatio bool
	on      bool
}

// Smooth returns a boolean smoothness.
func Smooth(on bool) Smoothness { return Smoothness{on: on} }

// SmoothRatio returns a numeric smoothness.
func SmoothRatio(r float64) Smoothness { return Smoothness{ratio: r, isRatio: true} }

// Ratio returns the numeric value and whether the ratio variant is active.
func (s Smoothness) Ratio() (float64, bool) { return s.ratio, s.isRatio }

// Enabled reports whether smoothing is on. A non-zero ratio counts as on.
func (s Smoothness) Enabled() bool {
	if s.isRatio {
		return s.ratio != 0
	}
	return s.on
}

func (s Smoothness) MarshalJSON() ([]byte, error) {
	if s.isRatio {
		return Marshal(s.ratio)
	}
	return Marshal(s.on)
}

func (s *Smoothness) UnmarshalJSON(data []byte) error {
	switch c := firstByte(data); {
	case c == 't' || c == 'f':
		var on bool
		if err := json.Unmarshal(data, &on); err != nil {
			return fmt.Errorf("smooth: %w", err)
		}
		*s = Smooth(on)
	case isNumberStart(c):
		var r float64
		if err := json.Unmarshal(data, &r); err != nil {
			return fmt.Errorf("smooth: %w", err)
		}
		*s = SmoothRatio(r)
	default:
		return fmt.Errorf("smooth: expected a boolean or a number, got %s", describe(c))
	}
	return nil
}

// ─── SymbolSize ───────────────────────────────────────────────────────────────

// SymbolSize is a symbol's size: one number, a [width, height] pair, or a
// callback literal.
type SymbolSize struct {
	values []float64
	fn     RawString
}

// Size returns a square symbol size.
func Size(n float64) SymbolSize { return SymbolSize{values: []float64{n}} }

// SizePair returns a width/height symbol size.
func SizePair(width, height float64) SymbolSize {
	return SymbolSize{values: []float64{width, height}}
}

// SizeFunc returns a symbol size computed by a JavaScript callback.
func SizeFunc(js string) SymbolSize { return SymbolSize{fn: RawString(js)} }

// Values returns the numeric sizes; nil for the callback variant.
func (s SymbolSize) Values() []float64 { return append([]float64(nil), s.values...) }

func (s SymbolSize) MarshalJSON() ([]byte, error) {
	if s.fn != "" {
		return s.fn.MarshalJSON()
	}
	if len(s.values) == 0 {
		return nil, errors.New("symbolSize: zero value has no shape")
	}
	return encodeTuple(s.values)
}

func (s *SymbolSize) UnmarshalJSON(data []byte) error {
	if firstByte(data) == '"' {
		var fn RawString
		if err := fn.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("symbolSize: %w", err)
		}
		*s = SizeFunc(string(fn))
		return nil
	}
	vs, err := decodeTuple(data, "symbolSize", 1, 2)
	if err != nil {
		return err
	}
	*s = SymbolSize{values: vs}
	return nil
}

// ─── AnimationTime ────────────────────────────────────────────────────────────

// AnimationTime is a duration or delay in milliseconds, or a callback literal
// computing one per data item.
type AnimationTime struct {
	ms float64
	fn RawString
}

// Millis returns a fixed animation time.
func Millis(ms float64) AnimationTime { return AnimationTime{ms: ms} }

// TimeFunc returns an animation time computed by a JavaScript callback.
func TimeFunc(js string) AnimationTime { return AnimationTime{fn: RawString(js)} }

func (a AnimationTime) MarshalJSON() ([]byte, error) {
	if a.fn != "" {
		return a.fn.MarshalJSON()
	}
	return Marshal(a.ms)
}

func (a *AnimationTime) UnmarshalJSON(data []byte) error {
	switch c := firstByte(data); {
	case c == '"':
		var fn RawString
		if err := fn.UnmarshalJSON(data); err != nil {
			return fmt.Errorf("animation time: %w", err)
		}
		*a = TimeFunc(string(fn))
	case isNumberStart(c):
		var ms float64
		if err := json.Unmarshal(data, &ms); err != nil {
			return fmt.Errorf("animation time: %w", err)
		}
		*a = Millis(ms)
	default:
		return fmt.Errorf("animation time: expected a number or a function, got %s", describe(c))
	}
	return nil
}

// ─── Coord ────────────────────────────────────────────────────────────────────

// Coord is a position on an axis: a number on value axes, a label on
// category axes.
type Coord struct {
	label string
	num   float64
	isNum bool
}

// At returns a numeric coordinate.
func At(n float64) Coord { return Coord{num: n, isNum: true} }

// AtLabel returns a category coordinate.
func AtLabel(s string) Coord { return Coord{label: s} }

func (c Coord) MarshalJSON() ([]byte, error) {
	if c.isNum {
		return Marshal(c.num)
	}
	return Marshal(c.label)
}

func (c *Coord) UnmarshalJSON(data []byte) error {
	switch b := firstByte(data); {
	case b == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*c = AtLabel(s)
	case isNumberStart(b):
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*c = At(n)
	default:
		return fmt.Errorf("coord: expected a number or a string, got %s", describe(b))
	}
	return nil
}
