package series

import (
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// Link is an edge between two named nodes of a graph or sankey.
type Link struct {
	Source    *string            `json:"source,omitempty"`
	Target    *string            `json:"target,omitempty"`
	Value     *float64           `json:"value,omitempty"`
	LineStyle *element.LineStyle `json:"lineStyle,omitempty"`
	Label     *element.Label     `json:"label,omitempty"`
}

// Edge returns a link from source to target carrying value.
func Edge(source, target string, value float64) Link {
	return Link{Source: &source, Target: &target, Value: &value}
}

// GraphCategory groups graph nodes for coloring and legend toggling.
type GraphCategory struct {
	Name      *string            `json:"name,omitempty"`
	Symbol    *element.Symbol    `json:"symbol,omitempty"`
	ItemStyle *element.ItemStyle `json:"itemStyle,omitempty"`
}

// Force tunes the force-directed layout.
type Force struct {
	Repulsion       *float64 `json:"repulsion,omitempty"`
	Gravity         *float64 `json:"gravity,omitempty"`
	EdgeLength      *float64 `json:"edgeLength,omitempty"`
	LayoutAnimation *bool    `json:"layoutAnimation,omitempty"`
}

// ─── Graph ────────────────────────────────────────────────────────────────────

type graphFields struct {
	common
	Layout           *string                   `json:"layout,omitempty"`
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	Roam             *bool                     `json:"roam,omitempty"`
	Draggable        *bool                     `json:"draggable,omitempty"`
	Symbol           *element.Symbol           `json:"symbol,omitempty"`
	SymbolSize       *element.SymbolSize       `json:"symbolSize,omitempty"`
	EdgeSymbol       []element.Symbol          `json:"edgeSymbol,omitempty"`
	Force            *Force                    `json:"force,omitempty"`
	Categories       []GraphCategory           `json:"categories,omitempty"`
	LineStyle        *element.LineStyle        `json:"lineStyle,omitempty"`
	Links            []Link                    `json:"links,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// Graph draws nodes and the links between them.
type Graph struct{ o graphFields }

func NewGraph() *Graph { return &Graph{} }

func (s *Graph) Type() string                   { return TypeGraph }
func (s *Graph) SeriesID() string               { return s.o.id() }
func (s *Graph) SeriesName() string             { return s.o.name() }
func (s *Graph) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Graph) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeGraph, &s.o) }
func (s *Graph) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeGraph, &s.o) }
func (s *Graph) clone() Series                  { c := *s; return &c }

func (s *Graph) ID(id string) *Graph                                { s.o.ID = &id; return s }
func (s *Graph) Name(n string) *Graph                               { s.o.Name = &n; return s }
func (s *Graph) ItemStyle(v element.ItemStyle) *Graph               { s.o.ItemStyle = &v; return s }
func (s *Graph) Label(v element.Label) *Graph                       { s.o.Label = &v; return s }
func (s *Graph) Emphasis(v element.Emphasis) *Graph                 { s.o.Emphasis = &v; return s }
func (s *Graph) Layout(l string) *Graph                             { s.o.Layout = &l; return s }
func (s *Graph) CoordinateSystem(c element.CoordinateSystem) *Graph { s.o.CoordinateSystem = &c; return s }
func (s *Graph) Roam(b bool) *Graph                                 { s.o.Roam = &b; return s }
func (s *Graph) Draggable(b bool) *Graph                            { s.o.Draggable = &b; return s }
func (s *Graph) Symbol(v element.Symbol) *Graph                     { s.o.Symbol = &v; return s }
func (s *Graph) SymbolSize(v element.SymbolSize) *Graph             { s.o.SymbolSize = &v; return s }
func (s *Graph) Force(f Force) *Graph                               { s.o.Force = &f; return s }
func (s *Graph) LineStyle(v element.LineStyle) *Graph               { s.o.LineStyle = &v; return s }
func (s *Graph) Data(df datatype.DataFrame) *Graph                  { s.o.Data = df.Clone(); return s }

// EdgeSymbol sets the markers at the two ends of every link.
func (s *Graph) EdgeSymbol(from, to element.Symbol) *Graph {
	s.o.EdgeSymbol = []element.Symbol{from, to}
	return s
}

// Categories appends node categories.
func (s *Graph) Categories(c ...GraphCategory) *Graph {
	s.o.Categories = appendCopy(s.o.Categories, c...)
	return s
}

// Links appends edges.
func (s *Graph) Links(l ...Link) *Graph {
	s.o.Links = appendCopy(s.o.Links, l...)
	return s
}

// ─── Sankey ───────────────────────────────────────────────────────────────────

type sankeyFields struct {
	common
	Orient           *element.Orient    `json:"orient,omitempty"`
	NodeWidth        *float64           `json:"nodeWidth,omitempty"`
	NodeGap          *float64           `json:"nodeGap,omitempty"`
	NodeAlign        *string            `json:"nodeAlign,omitempty"`
	LayoutIterations *int               `json:"layoutIterations,omitempty"`
	Draggable        *bool              `json:"draggable,omitempty"`
	LineStyle        *element.LineStyle `json:"lineStyle,omitempty"`
	Left             *element.Coord     `json:"left,omitempty"`
	Top              *element.Coord     `json:"top,omitempty"`
	Right            *element.Coord     `json:"right,omitempty"`
	Bottom           *element.Coord     `json:"bottom,omitempty"`
	Links            []Link             `json:"links,omitempty"`
	Data             datatype.DataFrame `json:"data,omitempty"`
}

// Sankey draws flows between nodes with widths proportional to value.
type Sankey struct{ o sankeyFields }

func NewSankey() *Sankey { return &Sankey{} }

func (s *Sankey) Type() string                   { return TypeSankey }
func (s *Sankey) SeriesID() string               { return s.o.id() }
func (s *Sankey) SeriesName() string             { return s.o.name() }
func (s *Sankey) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Sankey) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeSankey, &s.o) }
func (s *Sankey) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeSankey, &s.o) }
func (s *Sankey) clone() Series                  { c := *s; return &c }

func (s *Sankey) ID(id string) *Sankey                  { s.o.ID = &id; return s }
func (s *Sankey) Name(n string) *Sankey                 { s.o.Name = &n; return s }
func (s *Sankey) ItemStyle(v element.ItemStyle) *Sankey { s.o.ItemStyle = &v; return s }
func (s *Sankey) Label(v element.Label) *Sankey         { s.o.Label = &v; return s }
func (s *Sankey) Emphasis(v element.Emphasis) *Sankey   { s.o.Emphasis = &v; return s }
func (s *Sankey) Orient(o element.Orient) *Sankey       { s.o.Orient = &o; return s }
func (s *Sankey) NodeWidth(w float64) *Sankey           { s.o.NodeWidth = &w; return s }
func (s *Sankey) NodeGap(g float64) *Sankey             { s.o.NodeGap = &g; return s }
func (s *Sankey) NodeAlign(a string) *Sankey            { s.o.NodeAlign = &a; return s }
func (s *Sankey) LayoutIterations(n int) *Sankey        { s.o.LayoutIterations = &n; return s }
func (s *Sankey) Draggable(b bool) *Sankey              { s.o.Draggable = &b; return s }
func (s *Sankey) LineStyle(v element.LineStyle) *Sankey { s.o.LineStyle = &v; return s }
func (s *Sankey) Left(c element.Coord) *Sankey          { s.o.Left = &c; return s }
func (s *Sankey) Top(c element.Coord) *Sankey           { s.o.Top = &c; return s }
func (s *Sankey) Right(c element.Coord) *Sankey         { s.o.Right = &c; return s }
func (s *Sankey) Bottom(c element.Coord) *Sankey        { s.o.Bottom = &c; return s }
func (s *Sankey) Data(df datatype.DataFrame) *Sankey    { s.o.Data = df.Clone(); return s }

// Links appends flows.
func (s *Sankey) Links(l ...Link) *Sankey {
	s.o.Links = appendCopy(s.o.Links, l...)
	return s
}

// LinkList returns a copy of the flows.
func (s *Sankey) LinkList() []Link { return append([]Link(nil), s.o.Links...) }
