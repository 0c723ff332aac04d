// Package datatype defines the values a series plots.
//
// A DataFrame is an ordered list of DataPoints. A point is either a plain
// Value (Int, Float, String or a nested Array of values) or an Item, which
// wraps a value with a name and per-item styling:
//
//	datatype.Rows([]int{0, 1}, []int{2, 3})  // [[0,1],[2,3]]
//	datatype.Values(3.5, 4.0)                // [3.5,4.0]
//	datatype.Named(40, "rose 1")             // {"value":40,"name":"rose 1"}
//
// Integers and floats stay distinct on the wire: a Float always carries a
// decimal point so decoding yields the same variant back.
package datatype

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DataPoint is one entry of a DataFrame. The set of implementations is closed:
// Int, Float, String, Array and Item.
type DataPoint interface {
	dataPoint()
}

// Value is a composite cell value: Int, Float, String or Array.
type Value interface {
	DataPoint
	value()
}

// Int is an integral number.
type Int int64

// Float is a floating point number. NaN and infinities cannot be encoded.
type Float float64

// String is a label or a category name.
type String string

// Array is a tuple of values, typically [x, y] or [x, y, size].
type Array []Value

func (Int) dataPoint()    {}
func (Float) dataPoint()  {}
func (String) dataPoint() {}
func (Array) dataPoint()  {}
func (Item) dataPoint()   {}

func (Int) value()    {}
func (Float) value()  {}
func (String) value() {}
func (Array) value()  {}

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("datatype: cannot encode %v", v)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return []byte(s), nil
}

func (a *Array) UnmarshalJSON(data []byte) error {
	v, err := DecodeValue(data)
	if err != nil {
		return err
	}
	arr, ok := v.(Array)
	if !ok {
		return fmt.Errorf("datatype: expected an array, got %T", v)
	}
	*a = arr
	return nil
}

// ─── DataFrame ────────────────────────────────────────────────────────────────

// DataFrame is the ordered data of one series.
type DataFrame []DataPoint

func (df *DataFrame) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return fmt.Errorf("data: %w", err)
	}
	if raws == nil {
		*df = nil
		return nil
	}
	out := make(DataFrame, 0, len(raws))
	for i, raw := range raws {
		p, err := DecodePoint(raw)
		if err != nil {
			return fmt.Errorf("data[%d]: %w", i, err)
		}
		out = append(out, p)
	}
	*df = out
	return nil
}

// Clone returns a copy of df that shares no backing array with it.
func (df DataFrame) Clone() DataFrame {
	if df == nil {
		return nil
	}
	out := make(DataFrame, len(df))
	copy(out, df)
	return out
}

// DecodePoint decodes one data entry: an object becomes an Item, anything else
// a Value.
func DecodePoint(data []byte) (DataPoint, error) {
	if firstByte(data) == '{' {
		var it Item
		if err := json.Unmarshal(data, &it); err != nil {
			return nil, err
		}
		return it, nil
	}
	return DecodeValue(data)
}

// DecodeValue decodes a number, string or array. Numbers written without a
// fraction or exponent decode as Int, all others as Float.
func DecodeValue(data []byte) (Value, error) {
	data = bytes.TrimSpace(data)
	switch c := firstByte(data); {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return String(s), nil
	case c == '[':
		var raws []json.RawMessage
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, err
		}
		arr := make(Array, 0, len(raws))
		for i, raw := range raws {
			v, err := DecodeValue(raw)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			arr = append(arr, v)
		}
		return arr, nil
	case c == '-' || (c >= '0' && c <= '9'):
		lit := string(data)
		if !strings.ContainsAny(lit, ".eE") {
			if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
				return Int(n), nil
			}
		}
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %s", lit)
		}
		return Float(f), nil
	case c == 0:
		return nil, fmt.Errorf("empty value")
	default:
		return nil, fmt.Errorf("expected a number, string or array, got %s", string(data))
	}
}

func firstByte(data []byte) byte {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// ─── Numeric access ───────────────────────────────────────────────────────────

// Number is the set of Go numeric types the constructors accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float64 returns v as a float64 when it is numeric.
func Float64(v Value) (float64, bool) {
	switch n := v.(type) {
	case Int:
		return float64(n), true
	case Float:
		return float64(n), true
	}
	return 0, false
}

// Measure returns the plotted magnitude of a point: the number itself, the
// last element of an [x, y] tuple, or the value of an Item.
func Measure(p DataPoint) (float64, bool) {
	switch v := p.(type) {
	case Item:
		if v.value == nil {
			return 0, false
		}
		return Measure(v.value)
	case Array:
		if len(v) == 0 {
			return 0, false
		}
		return Float64(v[len(v)-1])
	case Value:
		return Float64(v)
	}
	return 0, false
}
