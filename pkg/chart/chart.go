// Package chart is the root of a chart option document.
//
// A Chart collects components and series through fluent setters and encodes
// to the JSON option object a browser charting runtime consumes:
//
//	c := chart.New().
//		Title(component.NewTitle().Text("Rainfall")).
//		XAxis(component.NewAxis().Type(element.AxisCategory).Data("Jan", "Feb")).
//		YAxis(component.NewAxis().Type(element.AxisValue)).
//		Series(series.NewBar().Name("2024").Data(datatype.Values(2.6, 5.9)))
//	fmt.Println(c)
//
// Unset options and empty sequences are left out of the document entirely.
package chart

import (
	"sync"

	"github.com/derickschaefer/chartspec/pkg/component"
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
	"github.com/derickschaefer/chartspec/pkg/series"
)

type chartFields struct {
	Title                   Many[component.Title]       `json:"title,omitempty"`
	Animation               *bool                       `json:"animation,omitempty"`
	AnimationDuration       *element.AnimationTime      `json:"animationDuration,omitempty"`
	AnimationThreshold      *float64                    `json:"animationThreshold,omitempty"`
	AnimationEasing         *element.Easing             `json:"animationEasing,omitempty"`
	AnimationDelay          *element.AnimationTime      `json:"animationDelay,omitempty"`
	AnimationDurationUpdate *element.AnimationTime      `json:"animationDurationUpdate,omitempty"`
	AnimationEasingUpdate   *element.Easing             `json:"animationEasingUpdate,omitempty"`
	AnimationDelayUpdate    *element.AnimationTime      `json:"animationDelayUpdate,omitempty"`
	Tooltip                 *element.Tooltip            `json:"tooltip,omitempty"`
	Legend                  OneOrMany[component.Legend] `json:"legend,omitempty"`
	Toolbox                 *component.Toolbox          `json:"toolbox,omitempty"`
	Grid                    []component.Grid            `json:"grid,omitempty"`
	Grid3D                  []component.Grid3D          `json:"grid3D,omitempty"`
	XAxis                   OneOrMany[component.Axis]   `json:"xAxis,omitempty"`
	XAxis3D                 []component.Axis3D          `json:"xAxis3D,omitempty"`
	YAxis                   OneOrMany[component.Axis]   `json:"yAxis,omitempty"`
	YAxis3D                 []component.Axis3D          `json:"yAxis3D,omitempty"`
	ZAxis3D                 []component.Axis3D          `json:"zAxis3D,omitempty"`
	Polar                   []component.Polar           `json:"polar,omitempty"`
	AngleAxis               []component.AngleAxis       `json:"angleAxis,omitempty"`
	RadiusAxis              []component.RadiusAxis      `json:"radiusAxis,omitempty"`
	SingleAxis              *component.SingleAxis       `json:"singleAxis,omitempty"`
	ParallelAxis            []component.ParallelAxis    `json:"parallelAxis,omitempty"`
	AxisPointer             []element.AxisPointer       `json:"axisPointer,omitempty"`
	VisualMap               []component.VisualMap       `json:"visualMap,omitempty"`
	DataZoom                []component.DataZoom        `json:"dataZoom,omitempty"`
	Parallel                *component.Parallel         `json:"parallel,omitempty"`
	Calendar                *component.Calendar         `json:"calendar,omitempty"`
	Dataset                 *datatype.Dataset           `json:"dataset,omitempty"`
	Radar                   []component.Radar           `json:"radar,omitempty"`
	Color                   []element.Color             `json:"color,omitempty"`
	BackgroundColor         *element.Color              `json:"backgroundColor,omitempty"`
	MarkLine                *element.MarkLine           `json:"markLine,omitempty"`
	Aria                    *component.Aria             `json:"aria,omitempty"`
	Series                  series.Frame                `json:"series,omitempty"`
	GeoMap                  []component.GeoMap          `json:"-"`
}

// Chart is an option document. The zero value is an empty chart; a Chart must
// not be copied after first use.
type Chart struct {
	mu sync.Mutex
	o  chartFields
}

// New returns an empty chart.
func New() *Chart { return &Chart{} }

// ─── Singletons ───────────────────────────────────────────────────────────────

func (c *Chart) Animation(on bool) *Chart                         { c.o.Animation = &on; return c }
func (c *Chart) AnimationDuration(t element.AnimationTime) *Chart { c.o.AnimationDuration = &t; return c }
func (c *Chart) AnimationThreshold(n float64) *Chart              { c.o.AnimationThreshold = &n; return c }
func (c *Chart) AnimationEasing(e element.Easing) *Chart          { c.o.AnimationEasing = &e; return c }
func (c *Chart) AnimationDelay(t element.AnimationTime) *Chart    { c.o.AnimationDelay = &t; return c }
func (c *Chart) AnimationEasingUpdate(e element.Easing) *Chart    { c.o.AnimationEasingUpdate = &e; return c }
func (c *Chart) Tooltip(t element.Tooltip) *Chart                 { c.o.Tooltip = &t; return c }
func (c *Chart) Toolbox(t component.Toolbox) *Chart               { c.o.Toolbox = &t; return c }
func (c *Chart) SingleAxis(a component.SingleAxis) *Chart         { c.o.SingleAxis = &a; return c }
func (c *Chart) Parallel(p component.Parallel) *Chart             { c.o.Parallel = &p; return c }
func (c *Chart) Calendar(cal component.Calendar) *Chart           { c.o.Calendar = &cal; return c }
func (c *Chart) Dataset(d datatype.Dataset) *Chart                { c.o.Dataset = &d; return c }
func (c *Chart) BackgroundColor(col element.Color) *Chart         { c.o.BackgroundColor = &col; return c }
func (c *Chart) MarkLine(m element.MarkLine) *Chart               { c.o.MarkLine = &m; return c }
func (c *Chart) Aria(a component.Aria) *Chart                     { c.o.Aria = &a; return c }

func (c *Chart) AnimationDurationUpdate(t element.AnimationTime) *Chart {
	c.o.AnimationDurationUpdate = &t
	return c
}

func (c *Chart) AnimationDelayUpdate(t element.AnimationTime) *Chart {
	c.o.AnimationDelayUpdate = &t
	return c
}

// ─── Sequences ────────────────────────────────────────────────────────────────

// Sequence setters append to what is already there.

func (c *Chart) Title(t ...component.Title) *Chart {
	c.o.Title = appendCopy(c.o.Title, t...)
	return c
}

func (c *Chart) Legend(l ...component.Legend) *Chart {
	c.o.Legend = appendCopy(c.o.Legend, l...)
	return c
}

func (c *Chart) Grid(g ...component.Grid) *Chart {
	c.o.Grid = appendCopy(c.o.Grid, g...)
	return c
}

func (c *Chart) Grid3D(g ...component.Grid3D) *Chart {
	c.o.Grid3D = appendCopy(c.o.Grid3D, g...)
	return c
}

func (c *Chart) XAxis(a ...component.Axis) *Chart {
	c.o.XAxis = appendCopy(c.o.XAxis, a...)
	return c
}

func (c *Chart) XAxis3D(a ...component.Axis3D) *Chart {
	c.o.XAxis3D = appendCopy(c.o.XAxis3D, a...)
	return c
}

func (c *Chart) YAxis(a ...component.Axis) *Chart {
	c.o.YAxis = appendCopy(c.o.YAxis, a...)
	return c
}

func (c *Chart) YAxis3D(a ...component.Axis3D) *Chart {
	c.o.YAxis3D = appendCopy(c.o.YAxis3D, a...)
	return c
}

func (c *Chart) ZAxis3D(a ...component.Axis3D) *Chart {
	c.o.ZAxis3D = appendCopy(c.o.ZAxis3D, a...)
	return c
}

func (c *Chart) Polar(p ...component.Polar) *Chart {
	c.o.Polar = appendCopy(c.o.Polar, p...)
	return c
}

func (c *Chart) AngleAxis(a ...component.AngleAxis) *Chart {
	c.o.AngleAxis = appendCopy(c.o.AngleAxis, a...)
	return c
}

func (c *Chart) RadiusAxis(a ...component.RadiusAxis) *Chart {
	c.o.RadiusAxis = appendCopy(c.o.RadiusAxis, a...)
	return c
}

func (c *Chart) ParallelAxis(a ...component.ParallelAxis) *Chart {
	c.o.ParallelAxis = appendCopy(c.o.ParallelAxis, a...)
	return c
}

func (c *Chart) AxisPointer(p ...element.AxisPointer) *Chart {
	c.o.AxisPointer = appendCopy(c.o.AxisPointer, p...)
	return c
}

func (c *Chart) VisualMap(v ...component.VisualMap) *Chart {
	c.o.VisualMap = appendCopy(c.o.VisualMap, v...)
	return c
}

func (c *Chart) DataZoom(z ...component.DataZoom) *Chart {
	c.o.DataZoom = appendCopy(c.o.DataZoom, z...)
	return c
}

func (c *Chart) Radar(r ...component.Radar) *Chart {
	c.o.Radar = appendCopy(c.o.Radar, r...)
	return c
}

// GeoMap registers a map for the renderer to load before drawing. Maps are
// kept with the chart but never written into the document.
func (c *Chart) GeoMap(m ...component.GeoMap) *Chart {
	c.o.GeoMap = appendCopy(c.o.GeoMap, m...)
	return c
}

// Color appends palette colors.
func (c *Chart) Color(col ...element.Color) *Chart {
	c.o.Color = appendCopy(c.o.Color, col...)
	return c
}

// Series appends copies of s. Later changes to s do not reach the chart; use
// WithMutable to edit series the chart already holds.
func (c *Chart) Series(s ...series.Series) *Chart {
	c.o.Series = appendSeries(c.o.Series, s)
	return c
}

func (c *Chart) ResetTitle() *Chart  { c.o.Title = nil; return c }
func (c *Chart) ResetLegend() *Chart { c.o.Legend = nil; return c }
func (c *Chart) ResetXAxis() *Chart  { c.o.XAxis = nil; return c }
func (c *Chart) ResetYAxis() *Chart  { c.o.YAxis = nil; return c }
func (c *Chart) ResetSeries() *Chart { c.o.Series = nil; return c }
func (c *Chart) ResetColor() *Chart  { c.o.Color = nil; return c }

// ─── Accessors ────────────────────────────────────────────────────────────────

// SeriesList returns copies of the series in order.
func (c *Chart) SeriesList() []series.Series {
	if len(c.o.Series) == 0 {
		return nil
	}
	out := make([]series.Series, len(c.o.Series))
	for i, s := range c.o.Series {
		out[i] = series.Clone(s)
	}
	return out
}

// SeriesIDs returns the ids of the series that have one, in order.
func (c *Chart) SeriesIDs() []string {
	var ids []string
	for _, s := range c.o.Series {
		if id := s.SeriesID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// SeriesByID returns a copy of the first series with the given id.
func (c *Chart) SeriesByID(id string) (series.Series, bool) {
	if i := c.indexOf(id); id != "" && i >= 0 {
		return series.Clone(c.o.Series[i]), true
	}
	return nil, false
}

// SeriesCount returns the number of series.
func (c *Chart) SeriesCount() int { return len(c.o.Series) }

// Colors returns a copy of the palette.
func (c *Chart) Colors() []element.Color {
	return append([]element.Color(nil), c.o.Color...)
}

// GeoMaps returns a copy of the registered maps.
func (c *Chart) GeoMaps() []component.GeoMap {
	return append([]component.GeoMap(nil), c.o.GeoMap...)
}

// Titles returns a copy of the titles.
func (c *Chart) Titles() []component.Title {
	return append([]component.Title(nil), c.o.Title...)
}

// XAxes returns a copy of the x axes.
func (c *Chart) XAxes() []component.Axis {
	return append([]component.Axis(nil), c.o.XAxis...)
}

// YAxes returns a copy of the y axes.
func (c *Chart) YAxes() []component.Axis {
	return append([]component.Axis(nil), c.o.YAxis...)
}

// SaveAsImageType reports the export format of the toolbox save button.
func (c *Chart) SaveAsImageType() (component.SaveAsImageType, bool) {
	if c.o.Toolbox == nil {
		return "", false
	}
	return c.o.Toolbox.SaveAsImageType()
}

func (c *Chart) indexOf(id string) int {
	for i, s := range c.o.Series {
		if s.SeriesID() == id {
			return i
		}
	}
	return -1
}

func appendSeries(dst series.Frame, src []series.Series) series.Frame {
	out := make(series.Frame, 0, len(dst)+len(src))
	out = append(out, dst...)
	for _, s := range src {
		if s != nil {
			out = append(out, series.Clone(s))
		}
	}
	return out
}

func appendCopy[S ~[]T, T any](s S, vs ...T) S {
	out := make(S, 0, len(s)+len(vs))
	out = append(out, s...)
	return append(out, vs...)
}
