package series

import (
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── Boxplot ──────────────────────────────────────────────────────────────────

type boxplotFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	Layout           *element.Orient           `json:"layout,omitempty"`
	BoxWidth         []element.Coord           `json:"boxWidth,omitempty"`
	DatasetID        *string                   `json:"datasetId,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Boxplot summarizes distributions as [min, Q1, median, Q3, max] boxes.
type Boxplot struct{ o boxplotFields }

func NewBoxplot() *Boxplot { return &Boxplot{} }

func (s *Boxplot) Type() string                   { return TypeBoxplot }
func (s *Boxplot) SeriesID() string               { return s.o.id() }
func (s *Boxplot) SeriesName() string             { return s.o.name() }
func (s *Boxplot) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Boxplot) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeBoxplot, &s.o) }
func (s *Boxplot) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeBoxplot, &s.o) }
func (s *Boxplot) clone() Series                  { c := *s; return &c }

func (s *Boxplot) ID(id string) *Boxplot                  { s.o.ID = &id; return s }
func (s *Boxplot) Name(n string) *Boxplot                 { s.o.Name = &n; return s }
func (s *Boxplot) ItemStyle(v element.ItemStyle) *Boxplot { s.o.ItemStyle = &v; return s }
func (s *Boxplot) Tooltip(v element.Tooltip) *Boxplot     { s.o.Tooltip = &v; return s }
func (s *Boxplot) XAxisIndex(i int) *Boxplot              { s.o.XAxisIndex = &i; return s }
func (s *Boxplot) YAxisIndex(i int) *Boxplot              { s.o.YAxisIndex = &i; return s }
func (s *Boxplot) Layout(o element.Orient) *Boxplot       { s.o.Layout = &o; return s }
func (s *Boxplot) DatasetID(id string) *Boxplot           { s.o.DatasetID = &id; return s }
func (s *Boxplot) Data(df datatype.DataFrame) *Boxplot    { s.o.Data = df.Clone(); return s }

// BoxWidth bounds the box width between lo and hi.
func (s *Boxplot) BoxWidth(lo, hi element.Coord) *Boxplot {
	s.o.BoxWidth = []element.Coord{lo, hi}
	return s
}

// ─── Candlestick ──────────────────────────────────────────────────────────────

type candlestickFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	BarWidth         *element.Coord            `json:"barWidth,omitempty"`
	Large            *bool                     `json:"large,omitempty"`
	MarkPoint        *element.MarkPoint        `json:"markPoint,omitempty"`
	MarkLine         *element.MarkLine         `json:"markLine,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Candlestick plots [open, close, lowest, highest] rows.
type Candlestick struct{ o candlestickFields }

func NewCandlestick() *Candlestick { return &Candlestick{} }

func (s *Candlestick) Type() string                   { return TypeCandlestick }
func (s *Candlestick) SeriesID() string               { return s.o.id() }
func (s *Candlestick) SeriesName() string             { return s.o.name() }
func (s *Candlestick) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Candlestick) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeCandlestick, &s.o) }
func (s *Candlestick) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeCandlestick, &s.o) }
func (s *Candlestick) clone() Series                  { c := *s; return &c }

func (s *Candlestick) ID(id string) *Candlestick                  { s.o.ID = &id; return s }
func (s *Candlestick) Name(n string) *Candlestick                 { s.o.Name = &n; return s }
func (s *Candlestick) ItemStyle(v element.ItemStyle) *Candlestick { s.o.ItemStyle = &v; return s }
func (s *Candlestick) XAxisIndex(i int) *Candlestick              { s.o.XAxisIndex = &i; return s }
func (s *Candlestick) YAxisIndex(i int) *Candlestick              { s.o.YAxisIndex = &i; return s }
func (s *Candlestick) BarWidth(w element.Coord) *Candlestick      { s.o.BarWidth = &w; return s }
func (s *Candlestick) Large(b bool) *Candlestick                  { s.o.Large = &b; return s }
func (s *Candlestick) MarkPoint(v element.MarkPoint) *Candlestick { s.o.MarkPoint = &v; return s }
func (s *Candlestick) MarkLine(v element.MarkLine) *Candlestick   { s.o.MarkLine = &v; return s }
func (s *Candlestick) Data(df datatype.DataFrame) *Candlestick    { s.o.Data = df.Clone(); return s }

// ─── Heatmap ──────────────────────────────────────────────────────────────────

type heatmapFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	CalendarIndex    *int                      `json:"calendarIndex,omitempty"`
	PointSize        *float64                  `json:"pointSize,omitempty"`
	BlurSize         *float64                  `json:"blurSize,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Heatmap colors cells of a grid or calendar by value.
type Heatmap struct{ o heatmapFields }

func NewHeatmap() *Heatmap { return &Heatmap{} }

func (s *Heatmap) Type() string                   { return TypeHeatmap }
func (s *Heatmap) SeriesID() string               { return s.o.id() }
func (s *Heatmap) SeriesName() string             { return s.o.name() }
func (s *Heatmap) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Heatmap) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeHeatmap, &s.o) }
func (s *Heatmap) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeHeatmap, &s.o) }
func (s *Heatmap) clone() Series                  { c := *s; return &c }

func (s *Heatmap) ID(id string) *Heatmap                                { s.o.ID = &id; return s }
func (s *Heatmap) Name(n string) *Heatmap                               { s.o.Name = &n; return s }
func (s *Heatmap) Label(v element.Label) *Heatmap                       { s.o.Label = &v; return s }
func (s *Heatmap) Emphasis(v element.Emphasis) *Heatmap                 { s.o.Emphasis = &v; return s }
func (s *Heatmap) CoordinateSystem(c element.CoordinateSystem) *Heatmap { s.o.CoordinateSystem = &c; return s }
func (s *Heatmap) XAxisIndex(i int) *Heatmap                            { s.o.XAxisIndex = &i; return s }
func (s *Heatmap) YAxisIndex(i int) *Heatmap                            { s.o.YAxisIndex = &i; return s }
func (s *Heatmap) CalendarIndex(i int) *Heatmap                         { s.o.CalendarIndex = &i; return s }
func (s *Heatmap) PointSize(n float64) *Heatmap                         { s.o.PointSize = &n; return s }
func (s *Heatmap) BlurSize(n float64) *Heatmap                          { s.o.BlurSize = &n; return s }
func (s *Heatmap) Data(df datatype.DataFrame) *Heatmap                  { s.o.Data = df.Clone(); return s }

// ─── Custom ───────────────────────────────────────────────────────────────────

type customFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	XAxisIndex       *int                      `json:"xAxisIndex,omitempty"`
	YAxisIndex       *int                      `json:"yAxisIndex,omitempty"`
	RenderItem       *element.RawString        `json:"renderItem,omitempty"`
	Encode           *element.DimensionEncode  `json:"encode,omitempty"`
	DatasetID        *string                   `json:"datasetId,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Custom draws each data item with a user supplied renderItem function.
type Custom struct{ o customFields }

func NewCustom() *Custom { return &Custom{} }

func (s *Custom) Type() string                   { return TypeCustom }
func (s *Custom) SeriesID() string               { return s.o.id() }
func (s *Custom) SeriesName() string             { return s.o.name() }
func (s *Custom) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Custom) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeCustom, &s.o) }
func (s *Custom) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeCustom, &s.o) }
func (s *Custom) clone() Series                  { c := *s; return &c }

func (s *Custom) ID(id string) *Custom                                { s.o.ID = &id; return s }
func (s *Custom) Name(n string) *Custom                               { s.o.Name = &n; return s }
func (s *Custom) ItemStyle(v element.ItemStyle) *Custom               { s.o.ItemStyle = &v; return s }
func (s *Custom) CoordinateSystem(c element.CoordinateSystem) *Custom { s.o.CoordinateSystem = &c; return s }
func (s *Custom) XAxisIndex(i int) *Custom                            { s.o.XAxisIndex = &i; return s }
func (s *Custom) YAxisIndex(i int) *Custom                            { s.o.YAxisIndex = &i; return s }
func (s *Custom) Encode(v element.DimensionEncode) *Custom            { s.o.Encode = &v; return s }
func (s *Custom) DatasetID(id string) *Custom                         { s.o.DatasetID = &id; return s }
func (s *Custom) Data(df datatype.DataFrame) *Custom                  { s.o.Data = df.Clone(); return s }

// RenderItem sets the JavaScript function that draws one item. It is emitted
// unquoted by chart printing.
func (s *Custom) RenderItem(js string) *Custom {
	fn := element.RawString(js)
	s.o.RenderItem = &fn
	return s
}
