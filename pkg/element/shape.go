// Package element holds the small value types shared by charts, components
// and series: paddings, colors, styles, labels, marks and the shape-polymorphic
// scalars whose wire form depends on which variant is active.
//
// Every record type is an immutable value builder: setters take the receiver
// by value and return the modified copy, so a value handed to a chart can no
// longer be changed from outside.
//
//	style := element.NewItemStyle().Color("#5470c6").BorderRadius(8)
package element

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidLength is wrapped by every LengthError.
var ErrInvalidLength = errors.New("invalid length")

// LengthError reports a shape-polymorphic value whose backing array has an
// element count outside the supported set.
type LengthError struct {
	Type    string // "padding", "symbolSize", ...
	Got     int
	Allowed []int
}

func (e *LengthError) Error() string {
	allowed := make([]string, len(e.Allowed))
	for i, n := range e.Allowed {
		allowed[i] = strconv.Itoa(n)
	}
	return fmt.Sprintf("%s: invalid length %d, expected one of %s",
		e.Type, e.Got, strings.Join(allowed, ", "))
}

func (e *LengthError) Unwrap() error { return ErrInvalidLength }

// firstByte returns the first non-whitespace byte of data, or 0 if there is none.
func firstByte(data []byte) byte {
	data = bytes.TrimLeft(data, " \t\r\n")
	if len(data) == 0 {
		return 0
	}
	return data[0]
}

// isNumberStart reports whether c can begin a JSON number.
func isNumberStart(c byte) bool {
	return c == '-' || (c >= '0' && c <= '9')
}

// decodeTuple decodes either a bare number or an array of numbers whose length
// is one of allowed. Decoding never pads or truncates.
func decodeTuple(data []byte, typ string, allowed ...int) ([]float64, error) {
	switch c := firstByte(data); {
	case isNumberStart(c):
		var v float64
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		return []float64{v}, nil
	case c == '[':
		var vs []float64
		if err := json.Unmarshal(data, &vs); err != nil {
			return nil, fmt.Errorf("%s: %w", typ, err)
		}
		for _, n := range allowed {
			if len(vs) == n {
				return vs, nil
			}
		}
		return nil, &LengthError{Type: typ, Got: len(vs), Allowed: allowed}
	default:
		return nil, fmt.Errorf("%s: expected a number or an array of numbers, got %s", typ, describe(c))
	}
}

// encodeTuple writes a single value as a bare number and anything longer as
// an array.
func encodeTuple(vs []float64) ([]byte, error) {
	if len(vs) == 1 {
		return Marshal(vs[0])
	}
	return Marshal(vs)
}

func describe(c byte) string {
	switch {
	case c == 0:
		return "empty input"
	case c == '"':
		return "string"
	case c == '{':
		return "object"
	case c == 't' || c == 'f':
		return "boolean"
	case c == 'n':
		return "null"
	default:
		return fmt.Sprintf("%q", c)
	}
}

// ptr returns a pointer to a copy of v.
func ptr[T any](v T) *T { return &v }

// appendCopy appends vs to a fresh copy of s so value builders never share a
// backing array.
func appendCopy[T any](s []T, vs ...T) []T {
	out := make([]T, 0, len(s)+len(vs))
	out = append(out, s...)
	return append(out, vs...)
}
