package series

import (
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── Scatter ──────────────────────────────────────────────────────────────────

type scatterFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	PolarIndex       *int                      `json:"polarIndex,omitempty"`
	CalendarIndex    *int                      `json:"calendarIndex,omitempty"`
	Symbol           *element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       *element.SymbolSize       `json:"symbolSize,omitempty"`
	SymbolRotate     *float64                  `json:"symbolRotate,omitempty"`
	Large            *bool                     `json:"large,omitempty"`
	LargeThreshold   *int                      `json:"largeThreshold,omitempty"`
	MarkPoint        *element.MarkPoint        `json:"markPoint,omitempty"`
	MarkLine         *element.MarkLine         `json:"markLine,omitempty"`
	MarkArea         *element.MarkArea         `json:"markArea,omitempty"`
	DatasetID        *string                   `json:"datasetId,omitempty"`
	Encode           *element.DimensionEncode  `json:"encode,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Scatter plots individual points, optionally sized by a data dimension.
type Scatter struct{ o scatterFields }

func NewScatter() *Scatter { return &Scatter{} }

func (s *Scatter) Type() string                   { return TypeScatter }
func (s *Scatter) SeriesID() string               { return s.o.id() }
func (s *Scatter) SeriesName() string             { return s.o.name() }
func (s *Scatter) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Scatter) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeScatter, &s.o) }
func (s *Scatter) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeScatter, &s.o) }
func (s *Scatter) clone() Series                  { c := *s; return &c }

func (s *Scatter) ID(id string) *Scatter                                { s.o.ID = &id; return s }
func (s *Scatter) Name(n string) *Scatter                               { s.o.Name = &n; return s }
func (s *Scatter) ItemStyle(v element.ItemStyle) *Scatter               { s.o.ItemStyle = &v; return s }
func (s *Scatter) Label(v element.Label) *Scatter                       { s.o.Label = &v; return s }
func (s *Scatter) Emphasis(v element.Emphasis) *Scatter                 { s.o.Emphasis = &v; return s }
func (s *Scatter) Tooltip(v element.Tooltip) *Scatter                   { s.o.Tooltip = &v; return s }
func (s *Scatter) Silent(b bool) *Scatter                               { s.o.Silent = &b; return s }
func (s *Scatter) Z(z float64) *Scatter                                 { s.o.Z = &z; return s }
func (s *Scatter) CoordinateSystem(c element.CoordinateSystem) *Scatter { s.o.CoordinateSystem = &c; return s }
func (s *Scatter) XAxisIndex(i int) *Scatter                            { s.o.XAxisIndex = &i; return s }
func (s *Scatter) YAxisIndex(i int) *Scatter                            { s.o.YAxisIndex = &i; return s }
func (s *Scatter) PolarIndex(i int) *Scatter                            { s.o.PolarIndex = &i; return s }
func (s *Scatter) CalendarIndex(i int) *Scatter                         { s.o.CalendarIndex = &i; return s }
func (s *Scatter) Symbol(v element.Symbol) *Scatter                     { s.o.Symbol = &v; return s }
func (s *Scatter) SymbolSize(v element.SymbolSize) *Scatter             { s.o.SymbolSize = &v; return s }
func (s *Scatter) SymbolRotate(deg float64) *Scatter                    { s.o.SymbolRotate = &deg; return s }
func (s *Scatter) Large(b bool) *Scatter                                { s.o.Large = &b; return s }
func (s *Scatter) LargeThreshold(n int) *Scatter                        { s.o.LargeThreshold = &n; return s }
func (s *Scatter) MarkPoint(v element.MarkPoint) *Scatter               { s.o.MarkPoint = &v; return s }
func (s *Scatter) MarkLine(v element.MarkLine) *Scatter                 { s.o.MarkLine = &v; return s }
func (s *Scatter) MarkArea(v element.MarkArea) *Scatter                 { s.o.MarkArea = &v; return s }
func (s *Scatter) DatasetID(id string) *Scatter                         { s.o.DatasetID = &id; return s }
func (s *Scatter) Encode(v element.DimensionEncode) *Scatter            { s.o.Encode = &v; return s }
func (s *Scatter) Data(df datatype.DataFrame) *Scatter                  { s.o.Data = df.Clone(); return s }

// AppendData adds points after the existing data.
func (s *Scatter) AppendData(points ...datatype.DataPoint) *Scatter {
	s.o.Data = appendCopy(s.o.Data, points...)
	return s
}

// ─── EffectScatter ────────────────────────────────────────────────────────────

// RippleEffect animates the halo of an effect scatter point.
type RippleEffect struct {
	Period    *float64       `json:"period,omitempty"`
	Scale     *float64       `json:"scale,omitempty"`
	BrushType *string        `json:"brushType,omitempty"`
	Color     *element.Color `json:"color,omitempty"`
}

type effectScatterFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	Symbol           *element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       *element.SymbolSize       `json:"symbolSize,omitempty"`
	ShowEffectOn     *string                   `json:"showEffectOn,omitempty"`
	RippleEffect     *RippleEffect             `json:"rippleEffect,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// EffectScatter is a scatter whose points pulse to draw attention.
type EffectScatter struct{ o effectScatterFields }

func NewEffectScatter() *EffectScatter { return &EffectScatter{} }

func (s *EffectScatter) Type() string                   { return TypeEffectScatter }
func (s *EffectScatter) SeriesID() string               { return s.o.id() }
func (s *EffectScatter) SeriesName() string             { return s.o.name() }
func (s *EffectScatter) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *EffectScatter) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeEffectScatter, &s.o) }
func (s *EffectScatter) UnmarshalJSON(b []byte) error {
	return unmarshalTagged(b, TypeEffectScatter, &s.o)
}
func (s *EffectScatter) clone() Series { c := *s; return &c }

func (s *EffectScatter) ID(id string) *EffectScatter                    { s.o.ID = &id; return s }
func (s *EffectScatter) Name(n string) *EffectScatter                   { s.o.Name = &n; return s }
func (s *EffectScatter) ItemStyle(v element.ItemStyle) *EffectScatter   { s.o.ItemStyle = &v; return s }
func (s *EffectScatter) Label(v element.Label) *EffectScatter           { s.o.Label = &v; return s }
func (s *EffectScatter) Symbol(v element.Symbol) *EffectScatter         { s.o.Symbol = &v; return s }
func (s *EffectScatter) SymbolSize(v element.SymbolSize) *EffectScatter { s.o.SymbolSize = &v; return s }
func (s *EffectScatter) ShowEffectOn(on string) *EffectScatter          { s.o.ShowEffectOn = &on; return s }
func (s *EffectScatter) RippleEffect(r RippleEffect) *EffectScatter     { s.o.RippleEffect = &r; return s }
func (s *EffectScatter) Data(df datatype.DataFrame) *EffectScatter      { s.o.Data = df.Clone(); return s }
func (s *EffectScatter) CoordinateSystem(c element.CoordinateSystem) *EffectScatter {
	s.o.CoordinateSystem = &c
	return s
}
