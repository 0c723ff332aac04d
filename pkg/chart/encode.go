package chart

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/derickschaefer/chartspec/pkg/element"
)

// OneOrMany is a sequence written as a bare value when it holds exactly one
// element and as an array otherwise. Both shapes decode.
type OneOrMany[T any] []T

func (m OneOrMany[T]) MarshalJSON() ([]byte, error) {
	if len(m) == 1 {
		return element.Marshal(m[0])
	}
	return element.Marshal([]T(m))
}

func (m *OneOrMany[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		var many []T
		if err := json.Unmarshal(data, &many); err != nil {
			return err
		}
		*m = many
		return nil
	}
	if bytes.Equal(data, []byte("null")) {
		*m = nil
		return nil
	}
	var one T
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*m = OneOrMany[T]{one}
	return nil
}

// Many is a sequence that is always written as an array. A bare value still
// decodes, as a sequence of one.
type Many[T any] []T

func (m *Many[T]) UnmarshalJSON(data []byte) error {
	var o OneOrMany[T]
	if err := o.UnmarshalJSON(data); err != nil {
		return err
	}
	*m = Many[T](o)
	return nil
}

// ─── Document codec ───────────────────────────────────────────────────────────

func (c *Chart) MarshalJSON() ([]byte, error) {
	return element.Marshal(&c.o)
}

// UnmarshalJSON replaces the chart's contents with the decoded document. On
// error the chart is left unchanged.
func (c *Chart) UnmarshalJSON(data []byte) error {
	var o chartFields
	if err := element.Decode(data, &o); err != nil {
		return err
	}
	c.o = o
	return nil
}

// Pretty returns the document indented by two spaces with raw code fragments
// written unquoted. The result is meant for a browser runtime and is not
// always valid JSON.
func (c *Chart) Pretty() (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", fmt.Errorf("encoding chart: %w", err)
	}
	return element.ProcessRawStrings(string(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))), nil
}

// String returns Pretty's output, or an empty string when the chart cannot be
// encoded (for example a NaN data value).
func (c *Chart) String() string {
	s, err := c.Pretty()
	if err != nil {
		return ""
	}
	return s
}

// Encode writes Pretty's output followed by a newline.
func (c *Chart) Encode(w io.Writer) error {
	s, err := c.Pretty()
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s+"\n")
	return err
}

// Parse decodes a JSON option document.
func Parse(data []byte) (*Chart, error) {
	c := New()
	if err := json.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing chart: %w", err)
	}
	return c, nil
}

// Decode reads a whole JSON option document from r.
func Decode(r io.Reader) (*Chart, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading chart: %w", err)
	}
	return Parse(data)
}
