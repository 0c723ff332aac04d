package series

import (
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── Map ──────────────────────────────────────────────────────────────────────

type mapFields struct {
	common
	Map      *string            `json:"map,omitempty"`
	GeoIndex *int               `json:"geoIndex,omitempty"`
	Roam     *bool              `json:"roam,omitempty"`
	Zoom     *float64           `json:"zoom,omitempty"`
	Center   []float64          `json:"center,omitempty"`
	NameMap  map[string]string  `json:"nameMap,omitempty"`
	Data     datatype.DataFrame `json:"data,omitempty"`
}

// Map colors regions of a registered geographic map. The map geometry itself
// is registered with the renderer and never part of the document.
type Map struct{ o mapFields }

// NewMap returns a series drawing the registered map named mapName.
func NewMap(mapName string) *Map { return &Map{o: mapFields{Map: &mapName}} }

func (s *Map) Type() string                   { return TypeMap }
func (s *Map) SeriesID() string               { return s.o.id() }
func (s *Map) SeriesName() string             { return s.o.name() }
func (s *Map) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Map) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeMap, &s.o) }
func (s *Map) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeMap, &s.o) }
func (s *Map) clone() Series                  { c := *s; return &c }

func (s *Map) ID(id string) *Map                  { s.o.ID = &id; return s }
func (s *Map) Name(n string) *Map                 { s.o.Name = &n; return s }
func (s *Map) ItemStyle(v element.ItemStyle) *Map { s.o.ItemStyle = &v; return s }
func (s *Map) Label(v element.Label) *Map         { s.o.Label = &v; return s }
func (s *Map) Emphasis(v element.Emphasis) *Map   { s.o.Emphasis = &v; return s }
func (s *Map) GeoIndex(i int) *Map                { s.o.GeoIndex = &i; return s }
func (s *Map) Roam(b bool) *Map                   { s.o.Roam = &b; return s }
func (s *Map) Zoom(z float64) *Map                { s.o.Zoom = &z; return s }
func (s *Map) Data(df datatype.DataFrame) *Map    { s.o.Data = df.Clone(); return s }

// Center sets the [longitude, latitude] view center.
func (s *Map) Center(lng, lat float64) *Map {
	s.o.Center = []float64{lng, lat}
	return s
}

// NameMap renames regions from the geometry's names to display names.
func (s *Map) NameMap(from, to string) *Map {
	m := make(map[string]string, len(s.o.NameMap)+1)
	for k, v := range s.o.NameMap {
		m[k] = v
	}
	m[from] = to
	s.o.NameMap = m
	return s
}

// ─── Parallel ─────────────────────────────────────────────────────────────────

type parallelFields struct {
	common
	ParallelIndex *int                `json:"parallelIndex,omitempty"`
	Smooth        *element.Smoothness `json:"smooth,omitempty"`
	Realtime      *bool               `json:"realtime,omitempty"`
	LineStyle     *element.LineStyle  `json:"lineStyle,omitempty"`
	Data          datatype.DataFrame  `json:"data,omitempty"`
}

// Parallel draws each row as a polyline across parallel axes.
type Parallel struct{ o parallelFields }

func NewParallel() *Parallel { return &Parallel{} }

func (s *Parallel) Type() string                   { return TypeParallel }
func (s *Parallel) SeriesID() string               { return s.o.id() }
func (s *Parallel) SeriesName() string             { return s.o.name() }
func (s *Parallel) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Parallel) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeParallel, &s.o) }
func (s *Parallel) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeParallel, &s.o) }
func (s *Parallel) clone() Series                  { c := *s; return &c }

func (s *Parallel) ID(id string) *Parallel                  { s.o.ID = &id; return s }
func (s *Parallel) Name(n string) *Parallel                 { s.o.Name = &n; return s }
func (s *Parallel) ParallelIndex(i int) *Parallel           { s.o.ParallelIndex = &i; return s }
func (s *Parallel) Smooth(v element.Smoothness) *Parallel   { s.o.Smooth = &v; return s }
func (s *Parallel) Realtime(b bool) *Parallel               { s.o.Realtime = &b; return s }
func (s *Parallel) LineStyle(v element.LineStyle) *Parallel { s.o.LineStyle = &v; return s }
func (s *Parallel) Data(df datatype.DataFrame) *Parallel    { s.o.Data = df.Clone(); return s }

// ─── Radar ────────────────────────────────────────────────────────────────────

type radarFields struct {
	common
	RadarIndex *int                `json:"radarIndex,omitempty"`
	Symbol     *element.Symbol     `json:"symbol,omitempty"`
	SymbolSize *element.SymbolSize `json:"symbolSize,omitempty"`
	LineStyle  *element.LineStyle  `json:"lineStyle,omitempty"`
	AreaStyle  *element.AreaStyle  `json:"areaStyle,omitempty"`
	Data       datatype.DataFrame  `json:"data,omitempty"`
}

// Radar plots multivariate values on the spokes of a radar component.
type Radar struct{ o radarFields }

func NewRadar() *Radar { return &Radar{} }

func (s *Radar) Type() string                   { return TypeRadar }
func (s *Radar) SeriesID() string               { return s.o.id() }
func (s *Radar) SeriesName() string             { return s.o.name() }
func (s *Radar) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Radar) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeRadar, &s.o) }
func (s *Radar) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeRadar, &s.o) }
func (s *Radar) clone() Series                  { c := *s; return &c }

func (s *Radar) ID(id string) *Radar                    { s.o.ID = &id; return s }
func (s *Radar) Name(n string) *Radar                   { s.o.Name = &n; return s }
func (s *Radar) ItemStyle(v element.ItemStyle) *Radar   { s.o.ItemStyle = &v; return s }
func (s *Radar) Label(v element.Label) *Radar           { s.o.Label = &v; return s }
func (s *Radar) RadarIndex(i int) *Radar                { s.o.RadarIndex = &i; return s }
func (s *Radar) Symbol(v element.Symbol) *Radar         { s.o.Symbol = &v; return s }
func (s *Radar) SymbolSize(v element.SymbolSize) *Radar { s.o.SymbolSize = &v; return s }
func (s *Radar) LineStyle(v element.LineStyle) *Radar   { s.o.LineStyle = &v; return s }
func (s *Radar) AreaStyle(v element.AreaStyle) *Radar   { s.o.AreaStyle = &v; return s }
func (s *Radar) Data(df datatype.DataFrame) *Radar      { s.o.Data = df.Clone(); return s }

// ─── ThemeRiver ───────────────────────────────────────────────────────────────

type themeRiverFields struct {
	common
	CoordinateSystem *element.CoordinateSystem `json:"coordinateSystem,omitempty"`
	SingleAxisIndex  *int                      `json:"singleAxisIndex,omitempty"`
	BoundaryGap      []element.Coord           `json:"boundaryGap,omitempty"`
	Data             datatype.DataFrame        `json:"data,omitempty"`
}

// ThemeRiver stacks [time, value, theme] rows into flowing streams along a
// single axis.
type ThemeRiver struct{ o themeRiverFields }

func NewThemeRiver() *ThemeRiver { return &ThemeRiver{} }

func (s *ThemeRiver) Type() string                   { return TypeThemeRiver }
func (s *ThemeRiver) SeriesID() string               { return s.o.id() }
func (s *ThemeRiver) SeriesName() string             { return s.o.name() }
func (s *ThemeRiver) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *ThemeRiver) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeThemeRiver, &s.o) }
func (s *ThemeRiver) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeThemeRiver, &s.o) }
func (s *ThemeRiver) clone() Series                  { c := *s; return &c }

func (s *ThemeRiver) ID(id string) *ThemeRiver                { s.o.ID = &id; return s }
func (s *ThemeRiver) Name(n string) *ThemeRiver               { s.o.Name = &n; return s }
func (s *ThemeRiver) Label(v element.Label) *ThemeRiver       { s.o.Label = &v; return s }
func (s *ThemeRiver) Emphasis(v element.Emphasis) *ThemeRiver { s.o.Emphasis = &v; return s }
func (s *ThemeRiver) SingleAxisIndex(i int) *ThemeRiver       { s.o.SingleAxisIndex = &i; return s }
func (s *ThemeRiver) Data(df datatype.DataFrame) *ThemeRiver  { s.o.Data = df.Clone(); return s }
func (s *ThemeRiver) CoordinateSystem(c element.CoordinateSystem) *ThemeRiver {
	s.o.CoordinateSystem = &c
	return s
}

// BoundaryGap sets the gap at the two ends of the single axis.
func (s *ThemeRiver) BoundaryGap(lo, hi element.Coord) *ThemeRiver {
	s.o.BoundaryGap = []element.Coord{lo, hi}
	return s
}
