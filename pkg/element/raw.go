package element

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
)

// Sentinels that mark a string as a raw code fragment. ProcessRawStrings
// removes them together with the surrounding quotes.
const (
	RawStart = "__RAW_STRING_START__"
	RawEnd   = "__RAW_STRING_END__"
)

// RawString is emitted unquoted by ProcessRawStrings, which lets callers pass
// JavaScript function literals to options that accept callbacks:
//
//	element.RawString("function (p) { return p.value + '%'; }")
type RawString string

// WrapRaw returns s wrapped in the raw sentinels, for string-typed options
// that may also carry a function literal.
func WrapRaw(s string) string {
	return RawStart + s + RawEnd
}

// UnwrapRaw strips the raw sentinels. ok is false when s is not wrapped.
func UnwrapRaw(s string) (string, bool) {
	if !strings.HasPrefix(s, RawStart) || !strings.HasSuffix(s, RawEnd) ||
		len(s) < len(RawStart)+len(RawEnd) {
		return s, false
	}
	return s[len(RawStart) : len(s)-len(RawEnd)], true
}

func (r RawString) MarshalJSON() ([]byte, error) {
	return Marshal(WrapRaw(string(r)))
}

func (r *RawString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	inner, _ := UnwrapRaw(s)
	*r = RawString(inner)
	return nil
}

// A JSON string literal holding a wrapped raw fragment. Escapes inside the
// literal are matched pairwise so an escaped quote never ends the match.
var rawLiteral = regexp.MustCompile(`"` + RawStart + `(?:[^"\\]|\\.)*?` + RawEnd + `"`)

// ProcessRawStrings replaces every quoted raw fragment in a JSON document with
// its unescaped content.
func ProcessRawStrings(doc string) string {
	return rawLiteral.ReplaceAllStringFunc(doc, func(lit string) string {
		var s string
		if err := json.Unmarshal([]byte(lit), &s); err != nil {
			return lit
		}
		inner, _ := UnwrapRaw(s)
		return inner
	})
}

// Marshal is json.Marshal without HTML escaping. The standard encoder
// re-escapes whatever a nested MarshalJSON returns, so every marshaler in a
// chart document encodes through Marshal or '<', '>' and '&' leak out as
// \u003c and friends.
func Marshal(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(b.Bytes(), []byte("\n")), nil
}
