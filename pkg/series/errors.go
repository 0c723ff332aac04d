package series

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingType is returned when a series object has no string "type" key.
	ErrMissingType = errors.New("missing series type")
	// ErrUnknownType is wrapped by UnknownTypeError.
	ErrUnknownType = errors.New("unknown series type")
	// ErrWrongVariant is wrapped by VariantError.
	ErrWrongVariant = errors.New("wrong series variant")
)

// DecodeError reports a series object that could not be decoded. Variant is
// the discriminant being decoded, empty when it was never determined; Field is
// the offending key when known.
type DecodeError struct {
	Variant string
	Field   string
	Err     error
}

func (e *DecodeError) Error() string {
	var b strings.Builder
	b.WriteString("series")
	if e.Variant != "" {
		b.WriteString(" " + e.Variant)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, ": field %q", e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// UnknownTypeError reports a "type" value outside the known set. Matching is
// exact and case-sensitive.
type UnknownTypeError struct {
	Type  string
	Known []string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("series: unknown type %q (known: %s)", e.Type, strings.Join(e.Known, ", "))
}

func (e *UnknownTypeError) Unwrap() error { return ErrUnknownType }

// VariantError reports a typed controller requested for a series of another
// variant. Want and Got are variant names such as "Line".
type VariantError struct {
	Want string
	Got  string
}

func (e *VariantError) Error() string {
	return fmt.Sprintf("series: expected %s series variant, got %s", e.Want, e.Got)
}

func (e *VariantError) Unwrap() error { return ErrWrongVariant }
