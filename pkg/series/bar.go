package series

import (
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── Bar ──────────────────────────────────────────────────────────────────────

type barFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	PolarIndex       *int                      `json:"polarIndex,omitempty"`
	Stack            *string                   `json:"stack,omitempty"`
	BarWidth         *element.Coord            `json:"barWidth,omitempty"`
	BarMaxWidth      *element.Coord            `json:"barMaxWidth,omitempty"`
	BarGap           *string                   `json:"barGap,omitempty"`
	BarCategoryGap   *string                   `json:"barCategoryGap,omitempty"`
	ShowBackground   *bool                     `json:"showBackground,omitempty"`
	BackgroundStyle  *element.ItemStyle        `json:"backgroundStyle,omitempty"`
	RealtimeSort     *bool                     `json:"realtimeSort,omitempty"`
	MarkPoint        *element.MarkPoint        `json:"markPoint,omitempty"`
	MarkLine         *element.MarkLine         `json:"markLine,omitempty"`
	MarkArea         *element.MarkArea         `json:"markArea,omitempty"`
	DatasetID        *string                   `json:"datasetId,omitempty"`
	Encode           *element.DimensionEncode  `json:"encode,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Bar is a column or bar series.
type Bar struct{ o barFields }

func NewBar() *Bar { return &Bar{} }

func (s *Bar) Type() string                   { return TypeBar }
func (s *Bar) SeriesID() string               { return s.o.id() }
func (s *Bar) SeriesName() string             { return s.o.name() }
func (s *Bar) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Bar) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeBar, &s.o) }
func (s *Bar) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeBar, &s.o) }
func (s *Bar) clone() Series                  { c := *s; return &c }

func (s *Bar) ID(id string) *Bar                                { s.o.ID = &id; return s }
func (s *Bar) Name(n string) *Bar                               { s.o.Name = &n; return s }
func (s *Bar) ItemStyle(v element.ItemStyle) *Bar               { s.o.ItemStyle = &v; return s }
func (s *Bar) Label(v element.Label) *Bar                       { s.o.Label = &v; return s }
func (s *Bar) Emphasis(v element.Emphasis) *Bar                 { s.o.Emphasis = &v; return s }
func (s *Bar) Tooltip(v element.Tooltip) *Bar                   { s.o.Tooltip = &v; return s }
func (s *Bar) Silent(b bool) *Bar                               { s.o.Silent = &b; return s }
func (s *Bar) Z(z float64) *Bar                                 { s.o.Z = &z; return s }
func (s *Bar) CoordinateSystem(c element.CoordinateSystem) *Bar { s.o.CoordinateSystem = &c; return s }
func (s *Bar) XAxisIndex(i int) *Bar                            { s.o.XAxisIndex = &i; return s }
func (s *Bar) YAxisIndex(i int) *Bar                            { s.o.YAxisIndex = &i; return s }
func (s *Bar) PolarIndex(i int) *Bar                            { s.o.PolarIndex = &i; return s }
func (s *Bar) Stack(name string) *Bar                           { s.o.Stack = &name; return s }
func (s *Bar) BarWidth(w element.Coord) *Bar                    { s.o.BarWidth = &w; return s }
func (s *Bar) BarMaxWidth(w element.Coord) *Bar                 { s.o.BarMaxWidth = &w; return s }
func (s *Bar) BarGap(g string) *Bar                             { s.o.BarGap = &g; return s }
func (s *Bar) BarCategoryGap(g string) *Bar                     { s.o.BarCategoryGap = &g; return s }
func (s *Bar) ShowBackground(b bool) *Bar                       { s.o.ShowBackground = &b; return s }
func (s *Bar) BackgroundStyle(v element.ItemStyle) *Bar         { s.o.BackgroundStyle = &v; return s }
func (s *Bar) RealtimeSort(b bool) *Bar                         { s.o.RealtimeSort = &b; return s }
func (s *Bar) MarkPoint(v element.MarkPoint) *Bar               { s.o.MarkPoint = &v; return s }
func (s *Bar) MarkLine(v element.MarkLine) *Bar                 { s.o.MarkLine = &v; return s }
func (s *Bar) MarkArea(v element.MarkArea) *Bar                 { s.o.MarkArea = &v; return s }
func (s *Bar) DatasetID(id string) *Bar                         { s.o.DatasetID = &id; return s }
func (s *Bar) Encode(v element.DimensionEncode) *Bar            { s.o.Encode = &v; return s }
func (s *Bar) Data(df datatype.DataFrame) *Bar                  { s.o.Data = df.Clone(); return s }

// AppendData adds points after the existing data.
func (s *Bar) AppendData(points ...datatype.DataPoint) *Bar {
	s.o.Data = appendCopy(s.o.Data, points...)
	return s
}

// StackName returns the stack group, "" when the series is not stacked.
func (s *Bar) StackName() string { return deref(s.o.Stack) }

// ─── Bar3D ────────────────────────────────────────────────────────────────────

type bar3DFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	Grid3DIndex      *int                      `json:"grid3DIndex,omitempty"`
	Shading          *string                   `json:"shading,omitempty"`
	BevelSize        *float64                  `json:"bevelSize,omitempty"`
	Stack            *string                   `json:"stack,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Bar3D is a bar series in a 3D cartesian grid.
type Bar3D struct{ o bar3DFields }

// NewBar3D returns a 3D bar series bound to the 3D cartesian system.
func NewBar3D() *Bar3D {
	cs := element.CoordinateCartesian3D
	return &Bar3D{o: bar3DFields{CoordinateSystem: &cs}}
}

func (s *Bar3D) Type() string                   { return TypeBar3D }
func (s *Bar3D) SeriesID() string               { return s.o.id() }
func (s *Bar3D) SeriesName() string             { return s.o.name() }
func (s *Bar3D) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Bar3D) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeBar3D, &s.o) }
func (s *Bar3D) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeBar3D, &s.o) }
func (s *Bar3D) clone() Series                  { c := *s; return &c }

func (s *Bar3D) ID(id string) *Bar3D                  { s.o.ID = &id; return s }
func (s *Bar3D) Name(n string) *Bar3D                 { s.o.Name = &n; return s }
func (s *Bar3D) ItemStyle(v element.ItemStyle) *Bar3D { s.o.ItemStyle = &v; return s }
func (s *Bar3D) Label(v element.Label) *Bar3D         { s.o.Label = &v; return s }
func (s *Bar3D) Grid3DIndex(i int) *Bar3D             { s.o.Grid3DIndex = &i; return s }
func (s *Bar3D) Shading(sh string) *Bar3D             { s.o.Shading = &sh; return s }
func (s *Bar3D) BevelSize(b float64) *Bar3D           { s.o.BevelSize = &b; return s }
func (s *Bar3D) Stack(name string) *Bar3D             { s.o.Stack = &name; return s }
func (s *Bar3D) Data(df datatype.DataFrame) *Bar3D    { s.o.Data = df.Clone(); return s }

// ─── PictorialBar ─────────────────────────────────────────────────────────────

type pictorialBarFields struct {
	common
	XAxisIndex     *int                `json:"xAxisIndex,omitempty"`
	YAxisIndex     *int                `json:"yAxisIndex,omitempty"`
	Symbol         *element.Symbol     `json:"symbol,omitempty"`
	SymbolSize     *element.SymbolSize `json:"symbolSize,omitempty"`
	SymbolRepeat   *bool               `json:"symbolRepeat,omitempty"`
	SymbolClip     *bool               `json:"symbolClip,omitempty"`
	SymbolMargin   *element.Coord      `json:"symbolMargin,omitempty"`
	BarCategoryGap *string             `json:"barCategoryGap,omitempty"`
	Data           datatype.DataFrame  `json:"data,omitempty"`
}

// PictorialBar draws bars out of repeated or clipped symbols.
type PictorialBar struct{ o pictorialBarFields }

func NewPictorialBar() *PictorialBar { return &PictorialBar{} }

func (s *PictorialBar) Type() string                   { return TypePictorialBar }
func (s *PictorialBar) SeriesID() string               { return s.o.id() }
func (s *PictorialBar) SeriesName() string             { return s.o.name() }
func (s *PictorialBar) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *PictorialBar) MarshalJSON() ([]byte, error)   { return marshalTagged(TypePictorialBar, &s.o) }
func (s *PictorialBar) UnmarshalJSON(b []byte) error {
	return unmarshalTagged(b, TypePictorialBar, &s.o)
}
func (s *PictorialBar) clone() Series { c := *s; return &c }

func (s *PictorialBar) ID(id string) *PictorialBar                    { s.o.ID = &id; return s }
func (s *PictorialBar) Name(n string) *PictorialBar                   { s.o.Name = &n; return s }
func (s *PictorialBar) ItemStyle(v element.ItemStyle) *PictorialBar   { s.o.ItemStyle = &v; return s }
func (s *PictorialBar) Label(v element.Label) *PictorialBar           { s.o.Label = &v; return s }
func (s *PictorialBar) XAxisIndex(i int) *PictorialBar                { s.o.XAxisIndex = &i; return s }
func (s *PictorialBar) YAxisIndex(i int) *PictorialBar                { s.o.YAxisIndex = &i; return s }
func (s *PictorialBar) Symbol(v element.Symbol) *PictorialBar         { s.o.Symbol = &v; return s }
func (s *PictorialBar) SymbolSize(v element.SymbolSize) *PictorialBar { s.o.SymbolSize = &v; return s }
func (s *PictorialBar) SymbolRepeat(b bool) *PictorialBar             { s.o.SymbolRepeat = &b; return s }
func (s *PictorialBar) SymbolClip(b bool) *PictorialBar               { s.o.SymbolClip = &b; return s }
func (s *PictorialBar) SymbolMargin(m element.Coord) *PictorialBar    { s.o.SymbolMargin = &m; return s }
func (s *PictorialBar) BarCategoryGap(g string) *PictorialBar         { s.o.BarCategoryGap = &g; return s }
func (s *PictorialBar) Data(df datatype.DataFrame) *PictorialBar      { s.o.Data = df.Clone(); return s }
