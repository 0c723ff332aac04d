// Package series implements the closed set of chart series variants and the
// tagged codec that moves them to and from the option document.
//
// Every variant encodes as a flat object whose "type" key names the variant.
// Decoding reads that key first and hands the whole object to the matching
// variant, so a document can be parsed without knowing its series up front:
//
//	s, err := series.Unmarshal([]byte(`{"type":"line","data":[[0,1],[2,3]]}`))
//	line := s.(*series.Line)
//
// Unknown or missing type keys are reported as typed errors; see
// UnknownTypeError and ErrMissingType.
package series

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// Series is one plotted data set. Implementations are the variant types of
// this package; the set cannot be extended from outside.
type Series interface {
	json.Marshaler

	// Type returns the discriminant written under the "type" key.
	Type() string
	SeriesID() string
	SeriesName() string
	// SeriesData returns a copy of the series data.
	SeriesData() datatype.DataFrame

	clone() Series
}

// Clone returns a deep enough copy of s that mutating either one through its
// setters leaves the other untouched.
func Clone(s Series) Series {
	if s == nil {
		return nil
	}
	return s.clone()
}

// Discriminants.
const (
	TypeBar           = "bar"
	TypeBar3D         = "bar3D"
	TypeBoxplot       = "boxplot"
	TypeCandlestick   = "candlestick"
	TypeCustom        = "custom"
	TypeEffectScatter = "effectScatter"
	TypeFunnel        = "funnel"
	TypeGauge         = "gauge"
	TypeGraph         = "graph"
	TypeHeatmap       = "heatmap"
	TypeLine          = "line"
	TypeMap           = "map"
	TypeParallel      = "parallel"
	TypePictorialBar  = "pictorialBar"
	TypePie           = "pie"
	TypeRadar         = "radar"
	TypeSankey        = "sankey"
	TypeScatter       = "scatter"
	TypeSunburst      = "sunburst"
	TypeThemeRiver    = "themeRiver"
	TypeTree          = "tree"
	TypeTreemap       = "treemap"
)

// ─── Registry ─────────────────────────────────────────────────────────────────

type variant struct {
	typ    string
	name   string
	decode func([]byte) (Series, error)
}

var registry = []variant{
	{TypeBar, "Bar", decodeAs[Bar, *Bar]},
	{TypeBar3D, "Bar3D", decodeAs[Bar3D, *Bar3D]},
	{TypeBoxplot, "Boxplot", decodeAs[Boxplot, *Boxplot]},
	{TypeCandlestick, "Candlestick", decodeAs[Candlestick, *Candlestick]},
	{TypeCustom, "Custom", decodeAs[Custom, *Custom]},
	{TypeEffectScatter, "EffectScatter", decodeAs[EffectScatter, *EffectScatter]},
	{TypeFunnel, "Funnel", decodeAs[Funnel, *Funnel]},
	{TypeGauge, "Gauge", decodeAs[Gauge, *Gauge]},
	{TypeGraph, "Graph", decodeAs[Graph, *Graph]},
	{TypeHeatmap, "Heatmap", decodeAs[Heatmap, *Heatmap]},
	{TypeLine, "Line", decodeAs[Line, *Line]},
	{TypeMap, "Map", decodeAs[Map, *Map]},
	{TypeParallel, "Parallel", decodeAs[Parallel, *Parallel]},
	{TypePictorialBar, "PictorialBar", decodeAs[PictorialBar, *PictorialBar]},
	{TypePie, "Pie", decodeAs[Pie, *Pie]},
	{TypeRadar, "Radar", decodeAs[Radar, *Radar]},
	{TypeSankey, "Sankey", decodeAs[Sankey, *Sankey]},
	{TypeScatter, "Scatter", decodeAs[Scatter, *Scatter]},
	{TypeSunburst, "Sunburst", decodeAs[Sunburst, *Sunburst]},
	{TypeThemeRiver, "ThemeRiver", decodeAs[ThemeRiver, *ThemeRiver]},
	{TypeTree, "Tree", decodeAs[Tree, *Tree]},
	{TypeTreemap, "Treemap", decodeAs[Treemap, *Treemap]},
}

var byType = func() map[string]variant {
	m := make(map[string]variant, len(registry))
	for _, v := range registry {
		m[v.typ] = v
	}
	return m
}()

type decodable[T any] interface {
	*T
	Series
	json.Unmarshaler
}

func decodeAs[T any, P decodable[T]](data []byte) (Series, error) {
	p := P(new(T))
	if err := p.UnmarshalJSON(data); err != nil {
		return nil, err
	}
	return p, nil
}

// Known returns the sorted list of discriminants this package decodes.
func Known() []string {
	out := make([]string, 0, len(registry))
	for _, v := range registry {
		out = append(out, v.typ)
	}
	sort.Strings(out)
	return out
}

// VariantName returns the Go type name of the variant with discriminant typ,
// or typ itself when it is unknown.
func VariantName(typ string) string {
	if v, ok := byType[typ]; ok {
		return v.name
	}
	return typ
}

// ─── Decoding ─────────────────────────────────────────────────────────────────

// Unmarshal decodes one series object, selecting the variant by its "type"
// key. Nothing is returned alongside an error.
func Unmarshal(data []byte) (Series, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, &DecodeError{Err: err}
	}
	raw, ok := obj["type"]
	if !ok || string(raw) == "null" {
		return nil, &DecodeError{Field: "type", Err: ErrMissingType}
	}
	var typ string
	if err := json.Unmarshal(raw, &typ); err != nil {
		return nil, &DecodeError{Field: "type", Err: fmt.Errorf("%w: type is not a string", ErrMissingType)}
	}
	if typ == "" {
		return nil, &DecodeError{Field: "type", Err: fmt.Errorf("%w: type is empty", ErrMissingType)}
	}
	v, ok := byType[typ]
	if !ok {
		return nil, &UnknownTypeError{Type: typ, Known: Known()}
	}
	return v.decode(data)
}

// Frame is an ordered list of series that decodes through Unmarshal.
type Frame []Series

func (f *Frame) UnmarshalJSON(data []byte) error {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return &DecodeError{Err: err}
	}
	if raws == nil {
		*f = nil
		return nil
	}
	out := make(Frame, 0, len(raws))
	for i, raw := range raws {
		s, err := Unmarshal(raw)
		if err != nil {
			return fmt.Errorf("series[%d]: %w", i, err)
		}
		out = append(out, s)
	}
	*f = out
	return nil
}

// ─── Shared fields ────────────────────────────────────────────────────────────

// common holds the keys every variant accepts.
type common struct {
	ID        *string            `json:"id,omitempty"`
	Name      *string            `json:"name,omitempty"`
	ItemStyle *element.ItemStyle `json:"itemStyle,omitempty"`
	Label     *element.Label     `json:"label,omitempty"`
	Emphasis  *element.Emphasis  `json:"emphasis,omitempty"`
	Tooltip   *element.Tooltip   `json:"tooltip,omitempty"`
	Silent    *bool              `json:"silent,omitempty"`
	Z         *float64           `json:"z,omitempty"`
}

func (c *common) id() string   { return deref(c.ID) }
func (c *common) name() string { return deref(c.Name) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func appendCopy[T any](s []T, vs ...T) []T {
	out := make([]T, 0, len(s)+len(vs))
	out = append(out, s...)
	return append(out, vs...)
}
