package series

import (
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

type lineFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	PolarIndex       *int                      `json:"polarIndex,omitempty"`
	Symbol           *element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       *element.SymbolSize       `json:"symbolSize,omitempty"`
	ShowSymbol       *bool                     `json:"showSymbol,omitempty"`
	Stack            *string                   `json:"stack,omitempty"`
	ConnectNulls     *bool                     `json:"connectNulls,omitempty"`
	Step             *element.Step             `json:"step,omitempty"`
	Smooth           *element.Smoothness       `json:"smooth,omitempty"`
	Sampling         *element.Sampling         `json:"sampling,omitempty"`
	LineStyle        *element.LineStyle        `json:"lineStyle,omitempty"`
	AreaStyle        *element.AreaStyle        `json:"areaStyle,omitempty"`
	MarkPoint        *element.MarkPoint        `json:"markPoint,omitempty"`
	MarkLine         *element.MarkLine         `json:"markLine,omitempty"`
	MarkArea         *element.MarkArea         `json:"markArea,omitempty"`
	DatasetID        *string                   `json:"datasetId,omitempty"`
	Encode           *element.DimensionEncode  `json:"encode,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Line is a broken-line or area series.
type Line struct{ o lineFields }

func NewLine() *Line { return &Line{} }

func (s *Line) Type() string                   { return TypeLine }
func (s *Line) SeriesID() string               { return s.o.id() }
func (s *Line) SeriesName() string             { return s.o.name() }
func (s *Line) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Line) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeLine, &s.o) }
func (s *Line) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeLine, &s.o) }
func (s *Line) clone() Series                  { c := *s; return &c }

func (s *Line) ID(id string) *Line                                { s.o.ID = &id; return s }
func (s *Line) Name(n string) *Line                               { s.o.Name = &n; return s }
func (s *Line) ItemStyle(v element.ItemStyle) *Line               { s.o.ItemStyle = &v; return s }
func (s *Line) Label(v element.Label) *Line                       { s.o.Label = &v; return s }
func (s *Line) Emphasis(v element.Emphasis) *Line                 { s.o.Emphasis = &v; return s }
func (s *Line) Tooltip(v element.Tooltip) *Line                   { s.o.Tooltip = &v; return s }
func (s *Line) Silent(b bool) *Line                               { s.o.Silent = &b; return s }
func (s *Line) Z(z float64) *Line                                 { s.o.Z = &z; return s }
func (s *Line) CoordinateSystem(c element.CoordinateSystem) *Line { s.o.CoordinateSystem = &c; return s }
func (s *Line) XAxisIndex(i int) *Line                            { s.o.XAxisIndex = &i; return s }
func (s *Line) YAxisIndex(i int) *Line                            { s.o.YAxisIndex = &i; return s }
func (s *Line) PolarIndex(i int) *Line                            { s.o.PolarIndex = &i; return s }
func (s *Line) Symbol(v element.Symbol) *Line                     { s.o.Symbol = &v; return s }
func (s *Line) SymbolSize(v element.SymbolSize) *Line             { s.o.SymbolSize = &v; return s }
func (s *Line) ShowSymbol(b bool) *Line                           { s.o.ShowSymbol = &b; return s }
func (s *Line) Stack(name string) *Line                           { s.o.Stack = &name; return s }
func (s *Line) ConnectNulls(b bool) *Line                         { s.o.ConnectNulls = &b; return s }
func (s *Line) Step(v element.Step) *Line                         { s.o.Step = &v; return s }
func (s *Line) Smooth(v element.Smoothness) *Line                 { s.o.Smooth = &v; return s }
func (s *Line) Sampling(v element.Sampling) *Line                 { s.o.Sampling = &v; return s }
func (s *Line) LineStyle(v element.LineStyle) *Line               { s.o.LineStyle = &v; return s }
func (s *Line) AreaStyle(v element.AreaStyle) *Line               { s.o.AreaStyle = &v; return s }
func (s *Line) MarkPoint(v element.MarkPoint) *Line               { s.o.MarkPoint = &v; return s }
func (s *Line) MarkLine(v element.MarkLine) *Line                 { s.o.MarkLine = &v; return s }
func (s *Line) MarkArea(v element.MarkArea) *Line                 { s.o.MarkArea = &v; return s }
func (s *Line) DatasetID(id string) *Line                         { s.o.DatasetID = &id; return s }
func (s *Line) Encode(v element.DimensionEncode) *Line            { s.o.Encode = &v; return s }
func (s *Line) Data(df datatype.DataFrame) *Line                  { s.o.Data = df.Clone(); return s }

// AppendData adds points after the existing data.
func (s *Line) AppendData(points ...datatype.DataPoint) *Line {
	s.o.Data = appendCopy(s.o.Data, points...)
	return s
}

// Smoothness returns the smoothing setting, if any.
func (s *Line) Smoothness() (element.Smoothness, bool) {
	if s.o.Smooth == nil {
		return element.Smoothness{}, false
	}
	return *s.o.Smooth, true
}

// StackName returns the stack group, "" when the series is not stacked.
func (s *Line) StackName() string { return deref(s.o.Stack) }
