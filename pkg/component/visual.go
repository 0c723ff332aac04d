package component

import "github.com/derickschaefer/chartspec/pkg/element"

// ─── DataZoom ─────────────────────────────────────────────────────────────────

// DataZoomType selects the zoom interaction.
type DataZoomType string

const (
	DataZoomInside DataZoomType = "inside"
	DataZoomSlider DataZoomType = "slider"
)

type dataZoomFields struct {
	Type       *DataZoomType   `json:"type,omitempty"`
	ID         *string         `json:"id,omitempty"`
	Show       *bool           `json:"show,omitempty"`
	XAxisIndex []int           `json:"xAxisIndex,omitempty"`
	YAxisIndex []int           `json:"yAxisIndex,omitempty"`
	Start      *float64        `json:"start,omitempty"`
	End        *float64        `json:"end,omitempty"`
	MinSpan    *float64        `json:"minSpan,omitempty"`
	MaxSpan    *float64        `json:"maxSpan,omitempty"`
	Orient     *element.Orient `json:"orient,omitempty"`
	FilterMode *string         `json:"filterMode,omitempty"`
}

// DataZoom restricts the visible window of one or more axes.
type DataZoom struct{ o dataZoomFields }

// NewDataZoom returns a zoom of the given kind.
func NewDataZoom(kind DataZoomType) DataZoom {
	return DataZoom{o: dataZoomFields{Type: &kind}}
}

func (z DataZoom) ID(id string) DataZoom            { z.o.ID = &id; return z }
func (z DataZoom) Show(b bool) DataZoom             { z.o.Show = &b; return z }
func (z DataZoom) Start(pct float64) DataZoom       { z.o.Start = &pct; return z }
func (z DataZoom) End(pct float64) DataZoom         { z.o.End = &pct; return z }
func (z DataZoom) MinSpan(pct float64) DataZoom     { z.o.MinSpan = &pct; return z }
func (z DataZoom) MaxSpan(pct float64) DataZoom     { z.o.MaxSpan = &pct; return z }
func (z DataZoom) Orient(o element.Orient) DataZoom { z.o.Orient = &o; return z }
func (z DataZoom) FilterMode(m string) DataZoom     { z.o.FilterMode = &m; return z }

// XAxisIndex sets the x axes the zoom controls.
func (z DataZoom) XAxisIndex(idx ...int) DataZoom {
	z.o.XAxisIndex = appendCopy([]int(nil), idx...)
	return z
}

// YAxisIndex sets the y axes the zoom controls.
func (z DataZoom) YAxisIndex(idx ...int) DataZoom {
	z.o.YAxisIndex = appendCopy([]int(nil), idx...)
	return z
}

func (z DataZoom) MarshalJSON() ([]byte, error)  { return element.Marshal(z.o) }
func (z *DataZoom) UnmarshalJSON(b []byte) error { return element.Decode(b, &z.o) }

// ─── VisualMap ────────────────────────────────────────────────────────────────

// VisualMapType selects between a gradient and a set of buckets.
type VisualMapType string

const (
	VisualMapContinuous VisualMapType = "continuous"
	VisualMapPiecewise  VisualMapType = "piecewise"
)

// VisualRange maps values to visual channels.
type VisualRange struct {
	Color      []element.Color `json:"color,omitempty"`
	SymbolSize []float64       `json:"symbolSize,omitempty"`
	Opacity    []float64       `json:"opacity,omitempty"`
}

// VisualPiece is one bucket of a piecewise visual map.
type VisualPiece struct {
	Min   *float64       `json:"min,omitempty"`
	Max   *float64       `json:"max,omitempty"`
	Value *float64       `json:"value,omitempty"`
	Label *string        `json:"label,omitempty"`
	Color *element.Color `json:"color,omitempty"`
}

type visualMapFields struct {
	Type        *VisualMapType  `json:"type,omitempty"`
	ID          *string         `json:"id,omitempty"`
	Show        *bool           `json:"show,omitempty"`
	Min         *float64        `json:"min,omitempty"`
	Max         *float64        `json:"max,omitempty"`
	Calculable  *bool           `json:"calculable,omitempty"`
	Dimension   *int            `json:"dimension,omitempty"`
	SeriesIndex []int           `json:"seriesIndex,omitempty"`
	Orient      *element.Orient `json:"orient,omitempty"`
	Text        []string        `json:"text,omitempty"`
	InRange     *VisualRange    `json:"inRange,omitempty"`
	OutOfRange  *VisualRange    `json:"outOfRange,omitempty"`
	Pieces      []VisualPiece   `json:"pieces,omitempty"`
	Box
}

// VisualMap encodes a data dimension as color, size or opacity.
type VisualMap struct{ o visualMapFields }

// NewVisualMap returns a visual map of the given kind.
func NewVisualMap(kind VisualMapType) VisualMap {
	return VisualMap{o: visualMapFields{Type: &kind}}
}

func (v VisualMap) ID(id string) VisualMap             { v.o.ID = &id; return v }
func (v VisualMap) Show(b bool) VisualMap              { v.o.Show = &b; return v }
func (v VisualMap) Min(m float64) VisualMap            { v.o.Min = &m; return v }
func (v VisualMap) Max(m float64) VisualMap            { v.o.Max = &m; return v }
func (v VisualMap) Calculable(b bool) VisualMap        { v.o.Calculable = &b; return v }
func (v VisualMap) Dimension(d int) VisualMap          { v.o.Dimension = &d; return v }
func (v VisualMap) Orient(o element.Orient) VisualMap  { v.o.Orient = &o; return v }
func (v VisualMap) InRange(r VisualRange) VisualMap    { v.o.InRange = &r; return v }
func (v VisualMap) OutOfRange(r VisualRange) VisualMap { v.o.OutOfRange = &r; return v }
func (v VisualMap) Left(c element.Coord) VisualMap     { v.o.Left = &c; return v }
func (v VisualMap) Top(c element.Coord) VisualMap      { v.o.Top = &c; return v }
func (v VisualMap) Right(c element.Coord) VisualMap    { v.o.Right = &c; return v }
func (v VisualMap) Bottom(c element.Coord) VisualMap   { v.o.Bottom = &c; return v }

// SeriesIndex restricts the map to the given series.
func (v VisualMap) SeriesIndex(idx ...int) VisualMap {
	v.o.SeriesIndex = appendCopy([]int(nil), idx...)
	return v
}

// Text sets the labels at the high and low ends.
func (v VisualMap) Text(high, low string) VisualMap {
	v.o.Text = []string{high, low}
	return v
}

// Pieces appends piecewise buckets.
func (v VisualMap) Pieces(p ...VisualPiece) VisualMap {
	v.o.Pieces = appendCopy(v.o.Pieces, p...)
	return v
}

func (v VisualMap) MarshalJSON() ([]byte, error)  { return element.Marshal(v.o) }
func (v *VisualMap) UnmarshalJSON(b []byte) error { return element.Decode(b, &v.o) }

// ─── Calendar ─────────────────────────────────────────────────────────────────

type calendarFields struct {
	ID         *string            `json:"id,omitempty"`
	Range      []string           `json:"range,omitempty"`
	CellSize   []element.Coord    `json:"cellSize,omitempty"`
	Orient     *element.Orient    `json:"orient,omitempty"`
	SplitLine  *SplitLine         `json:"splitLine,omitempty"`
	ItemStyle  *element.ItemStyle `json:"itemStyle,omitempty"`
	DayLabel   *element.Label     `json:"dayLabel,omitempty"`
	MonthLabel *element.Label     `json:"monthLabel,omitempty"`
	YearLabel  *element.Label     `json:"yearLabel,omitempty"`
	Box
}

// Calendar is a calendar coordinate system for heatmaps and scatters.
type Calendar struct{ o calendarFields }

func NewCalendar() Calendar { return Calendar{} }

func (c Calendar) ID(id string) Calendar                  { c.o.ID = &id; return c }
func (c Calendar) Orient(o element.Orient) Calendar       { c.o.Orient = &o; return c }
func (c Calendar) SplitLine(l SplitLine) Calendar         { c.o.SplitLine = &l; return c }
func (c Calendar) ItemStyle(s element.ItemStyle) Calendar { c.o.ItemStyle = &s; return c }
func (c Calendar) DayLabel(l element.Label) Calendar      { c.o.DayLabel = &l; return c }
func (c Calendar) MonthLabel(l element.Label) Calendar    { c.o.MonthLabel = &l; return c }
func (c Calendar) YearLabel(l element.Label) Calendar     { c.o.YearLabel = &l; return c }
func (c Calendar) Left(x element.Coord) Calendar          { c.o.Left = &x; return c }
func (c Calendar) Top(x element.Coord) Calendar           { c.o.Top = &x; return c }
func (c Calendar) Right(x element.Coord) Calendar         { c.o.Right = &x; return c }
func (c Calendar) Bottom(x element.Coord) Calendar        { c.o.Bottom = &x; return c }

// Range sets the covered period: a year ("2017"), a month ("2017-02") or a
// start and end date.
func (c Calendar) Range(bounds ...string) Calendar {
	c.o.Range = appendCopy([]string(nil), bounds...)
	return c
}

// CellSize sets the [width, height] of a day cell.
func (c Calendar) CellSize(w, h element.Coord) Calendar {
	c.o.CellSize = []element.Coord{w, h}
	return c
}

func (c Calendar) MarshalJSON() ([]byte, error)  { return element.Marshal(c.o) }
func (c *Calendar) UnmarshalJSON(b []byte) error { return element.Decode(b, &c.o) }

// ─── Radar ────────────────────────────────────────────────────────────────────

// RadarIndicator is one spoke of a radar.
type RadarIndicator struct {
	Name  *string        `json:"name,omitempty"`
	Min   *float64       `json:"min,omitempty"`
	Max   *float64       `json:"max,omitempty"`
	Color *element.Color `json:"color,omitempty"`
}

// Indicator returns a spoke named name with the given upper bound.
func Indicator(name string, upper float64) RadarIndicator {
	return RadarIndicator{Name: &name, Max: &upper}
}

type radarFields struct {
	ID          *string            `json:"id,omitempty"`
	Shape       *string            `json:"shape,omitempty"`
	Center      []element.Coord    `json:"center,omitempty"`
	Radius      *element.Coord     `json:"radius,omitempty"`
	StartAngle  *float64           `json:"startAngle,omitempty"`
	SplitNumber *int               `json:"splitNumber,omitempty"`
	AxisName    *element.TextStyle `json:"axisName,omitempty"`
	SplitLine   *SplitLine         `json:"splitLine,omitempty"`
	Indicator   []RadarIndicator   `json:"indicator,omitempty"`
}

// Radar is the coordinate system of radar series.
type Radar struct{ o radarFields }

func NewRadar() Radar { return Radar{} }

func (r Radar) ID(id string) Radar                 { r.o.ID = &id; return r }
func (r Radar) Shape(s string) Radar               { r.o.Shape = &s; return r }
func (r Radar) Radius(c element.Coord) Radar       { r.o.Radius = &c; return r }
func (r Radar) StartAngle(deg float64) Radar       { r.o.StartAngle = &deg; return r }
func (r Radar) SplitNumber(n int) Radar            { r.o.SplitNumber = &n; return r }
func (r Radar) AxisName(s element.TextStyle) Radar { r.o.AxisName = &s; return r }
func (r Radar) SplitLine(l SplitLine) Radar        { r.o.SplitLine = &l; return r }

// Center sets the [x, y] center.
func (r Radar) Center(x, y element.Coord) Radar {
	r.o.Center = []element.Coord{x, y}
	return r
}

// Indicator appends spokes.
func (r Radar) Indicator(ind ...RadarIndicator) Radar {
	r.o.Indicator = appendCopy(r.o.Indicator, ind...)
	return r
}

// Indicators returns a copy of the spokes.
func (r Radar) Indicators() []RadarIndicator { return append([]RadarIndicator(nil), r.o.Indicator...) }

func (r Radar) MarshalJSON() ([]byte, error)  { return element.Marshal(r.o) }
func (r *Radar) UnmarshalJSON(b []byte) error { return element.Decode(b, &r.o) }

// ─── Aria ─────────────────────────────────────────────────────────────────────

// AriaLabel controls the generated screen-reader description.
type AriaLabel struct {
	Enabled     *bool   `json:"enabled,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AriaDecal controls pattern fills that replace color as the only cue.
type AriaDecal struct {
	Show *bool `json:"show,omitempty"`
}

type ariaFields struct {
	Enabled *bool      `json:"enabled,omitempty"`
	Label   *AriaLabel `json:"label,omitempty"`
	Decal   *AriaDecal `json:"decal,omitempty"`
}

// Aria holds accessibility options.
type Aria struct{ o ariaFields }

func NewAria() Aria { return Aria{} }

func (a Aria) Enabled(b bool) Aria    { a.o.Enabled = &b; return a }
func (a Aria) Label(l AriaLabel) Aria { a.o.Label = &l; return a }
func (a Aria) Decal(d AriaDecal) Aria { a.o.Decal = &d; return a }

// Description sets a fixed description and enables the label.
func (a Aria) Description(text string) Aria {
	on := true
	a.o.Label = &AriaLabel{Enabled: &on, Description: &text}
	return a
}

func (a Aria) MarshalJSON() ([]byte, error)  { return element.Marshal(a.o) }
func (a *Aria) UnmarshalJSON(b []byte) error { return element.Decode(b, &a.o) }
