package series

import (
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// Hierarchical series take Items with nested children as data; see
// datatype.Item.Children.

// ─── Tree ─────────────────────────────────────────────────────────────────────

type treeFields struct {
	common
	Layout            *string             `json:"layout,omitempty"`
	Orient            *string             `json:"orient,omitempty"`
	Symbol            *element.Symbol     `json:"symbol,omitempty"`
	SymbolSize        *element.SymbolSize `json:"symbolSize,omitempty"`
	Roam              *bool               `json:"roam,omitempty"`
	InitialTreeDepth  *int                `json:"initialTreeDepth,omitempty"`
	ExpandAndCollapse *bool               `json:"expandAndCollapse,omitempty"`
	LineStyle         *element.LineStyle  `json:"lineStyle,omitempty"`
	Left              *element.Coord      `json:"left,omitempty"`
	Top               *element.Coord      `json:"top,omitempty"`
	Right             *element.Coord      `json:"right,omitempty"`
	Bottom            *element.Coord      `json:"bottom,omitempty"`
	Data              datatype.DataFrame  `json:"data,omitempty"`
}

// Tree draws a node-link tree, orthogonal or radial.
type Tree struct{ o treeFields }

func NewTree() *Tree { return &Tree{} }

func (s *Tree) Type() string                   { return TypeTree }
func (s *Tree) SeriesID() string               { return s.o.id() }
func (s *Tree) SeriesName() string             { return s.o.name() }
func (s *Tree) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Tree) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeTree, &s.o) }
func (s *Tree) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeTree, &s.o) }
func (s *Tree) clone() Series                  { c := *s; return &c }

func (s *Tree) ID(id string) *Tree                    { s.o.ID = &id; return s }
func (s *Tree) Name(n string) *Tree                   { s.o.Name = &n; return s }
func (s *Tree) ItemStyle(v element.ItemStyle) *Tree   { s.o.ItemStyle = &v; return s }
func (s *Tree) Label(v element.Label) *Tree           { s.o.Label = &v; return s }
func (s *Tree) Layout(l string) *Tree                 { s.o.Layout = &l; return s }
func (s *Tree) Orient(o string) *Tree                 { s.o.Orient = &o; return s }
func (s *Tree) Symbol(v element.Symbol) *Tree         { s.o.Symbol = &v; return s }
func (s *Tree) SymbolSize(v element.SymbolSize) *Tree { s.o.SymbolSize = &v; return s }
func (s *Tree) Roam(b bool) *Tree                     { s.o.Roam = &b; return s }
func (s *Tree) InitialTreeDepth(d int) *Tree          { s.o.InitialTreeDepth = &d; return s }
func (s *Tree) ExpandAndCollapse(b bool) *Tree        { s.o.ExpandAndCollapse = &b; return s }
func (s *Tree) LineStyle(v element.LineStyle) *Tree   { s.o.LineStyle = &v; return s }
func (s *Tree) Left(c element.Coord) *Tree            { s.o.Left = &c; return s }
func (s *Tree) Top(c element.Coord) *Tree             { s.o.Top = &c; return s }
func (s *Tree) Right(c element.Coord) *Tree           { s.o.Right = &c; return s }
func (s *Tree) Bottom(c element.Coord) *Tree          { s.o.Bottom = &c; return s }
func (s *Tree) Data(df datatype.DataFrame) *Tree      { s.o.Data = df.Clone(); return s }

// ─── Treemap ──────────────────────────────────────────────────────────────────

// Breadcrumb is the navigation trail of a drilled-down treemap.
type Breadcrumb struct {
	Show   *bool          `json:"show,omitempty"`
	Left   *element.Coord `json:"left,omitempty"`
	Bottom *element.Coord `json:"bottom,omitempty"`
}

type treemapFields struct {
	common
	LeafDepth   *int               `json:"leafDepth,omitempty"`
	Roam        *bool              `json:"roam,omitempty"`
	NodeClick   *string            `json:"nodeClick,omitempty"`
	SquareRatio *float64           `json:"squareRatio,omitempty"`
	VisibleMin  *float64           `json:"visibleMin,omitempty"`
	Breadcrumb  *Breadcrumb        `json:"breadcrumb,omitempty"`
	Width       *element.Coord     `json:"width,omitempty"`
	Height      *element.Coord     `json:"height,omitempty"`
	Data        datatype.DataFrame `json:"data,omitempty"`
}

// Treemap tiles nested rectangles sized by value.
type Treemap struct{ o treemapFields }

func NewTreemap() *Treemap { return &Treemap{} }

func (s *Treemap) Type() string                   { return TypeTreemap }
func (s *Treemap) SeriesID() string               { return s.o.id() }
func (s *Treemap) SeriesName() string             { return s.o.name() }
func (s *Treemap) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Treemap) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeTreemap, &s.o) }
func (s *Treemap) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeTreemap, &s.o) }
func (s *Treemap) clone() Series                  { c := *s; return &c }

func (s *Treemap) ID(id string) *Treemap                  { s.o.ID = &id; return s }
func (s *Treemap) Name(n string) *Treemap                 { s.o.Name = &n; return s }
func (s *Treemap) ItemStyle(v element.ItemStyle) *Treemap { s.o.ItemStyle = &v; return s }
func (s *Treemap) Label(v element.Label) *Treemap         { s.o.Label = &v; return s }
func (s *Treemap) LeafDepth(d int) *Treemap               { s.o.LeafDepth = &d; return s }
func (s *Treemap) Roam(b bool) *Treemap                   { s.o.Roam = &b; return s }
func (s *Treemap) NodeClick(mode string) *Treemap         { s.o.NodeClick = &mode; return s }
func (s *Treemap) SquareRatio(r float64) *Treemap         { s.o.SquareRatio = &r; return s }
func (s *Treemap) VisibleMin(v float64) *Treemap          { s.o.VisibleMin = &v; return s }
func (s *Treemap) Breadcrumb(b Breadcrumb) *Treemap       { s.o.Breadcrumb = &b; return s }
func (s *Treemap) Width(c element.Coord) *Treemap         { s.o.Width = &c; return s }
func (s *Treemap) Height(c element.Coord) *Treemap        { s.o.Height = &c; return s }
func (s *Treemap) Data(df datatype.DataFrame) *Treemap    { s.o.Data = df.Clone(); return s }

// ─── Sunburst ─────────────────────────────────────────────────────────────────

type sunburstFields struct {
	common
	Radius     Extent             `json:"radius,omitempty"`
	Center     []element.Coord    `json:"center,omitempty"`
	Sort       *string            `json:"sort,omitempty"`
	NodeClick  *string            `json:"nodeClick,omitempty"`
	StartAngle *float64           `json:"startAngle,omitempty"`
	Data       datatype.DataFrame `json:"data,omitempty"`
}

// Sunburst draws a hierarchy as concentric rings.
type Sunburst struct{ o sunburstFields }

func NewSunburst() *Sunburst { return &Sunburst{} }

func (s *Sunburst) Type() string                   { return TypeSunburst }
func (s *Sunburst) SeriesID() string               { return s.o.id() }
func (s *Sunburst) SeriesName() string             { return s.o.name() }
func (s *Sunburst) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Sunburst) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeSunburst, &s.o) }
func (s *Sunburst) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeSunburst, &s.o) }
func (s *Sunburst) clone() Series                  { c := *s; return &c }

func (s *Sunburst) ID(id string) *Sunburst                  { s.o.ID = &id; return s }
func (s *Sunburst) Name(n string) *Sunburst                 { s.o.Name = &n; return s }
func (s *Sunburst) ItemStyle(v element.ItemStyle) *Sunburst { s.o.ItemStyle = &v; return s }
func (s *Sunburst) Label(v element.Label) *Sunburst         { s.o.Label = &v; return s }
func (s *Sunburst) Emphasis(v element.Emphasis) *Sunburst   { s.o.Emphasis = &v; return s }
func (s *Sunburst) Sort(order string) *Sunburst             { s.o.Sort = &order; return s }
func (s *Sunburst) NodeClick(mode string) *Sunburst         { s.o.NodeClick = &mode; return s }
func (s *Sunburst) StartAngle(deg float64) *Sunburst        { s.o.StartAngle = &deg; return s }
func (s *Sunburst) Data(df datatype.DataFrame) *Sunburst    { s.o.Data = df.Clone(); return s }

// Radius sets the outer radius, or inner and outer radius.
func (s *Sunburst) Radius(r ...element.Coord) *Sunburst {
	s.o.Radius = Extent(appendCopy([]element.Coord(nil), r...))
	return s
}

// Center sets the [x, y] center.
func (s *Sunburst) Center(x, y element.Coord) *Sunburst {
	s.o.Center = []element.Coord{x, y}
	return s
}
