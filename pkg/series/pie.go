package series

import (
	"encoding/json"

	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// Extent is a radius or size given as one value or an [inner, outer] pair. A
// single value is written bare.
type Extent []element.Coord

func (e Extent) MarshalJSON() ([]byte, error) {
	if len(e) == 1 {
		return element.Marshal(e[0])
	}
	return element.Marshal([]element.Coord(e))
}

func (e *Extent) UnmarshalJSON(b []byte) error {
	var many []element.Coord
	if err := json.Unmarshal(b, &many); err == nil {
		*e = many
		return nil
	}
	var one element.Coord
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*e = Extent{one}
	return nil
}

// ─── Pie ──────────────────────────────────────────────────────────────────────

type pieFields struct {
	common
	Radius            Extent             `json:"radius,omitempty"`
	Center            []element.Coord    `json:"center,omitempty"`
	RoseType          *string            `json:"roseType,omitempty"`
	StartAngle        *float64           `json:"startAngle,omitempty"`
	Clockwise         *bool              `json:"clockwise,omitempty"`
	AvoidLabelOverlap *bool              `json:"avoidLabelOverlap,omitempty"`
	SelectedMode      *string            `json:"selectedMode,omitempty"`
	DatasetID         *string            `json:"datasetId,omitempty"`
	Data              datatype.DataFrame `json:"data,omitempty"`
}

// Pie is a pie, donut or nightingale rose series.
type Pie struct{ o pieFields }

func NewPie() *Pie { return &Pie{} }

func (s *Pie) Type() string                   { return TypePie }
func (s *Pie) SeriesID() string               { return s.o.id() }
func (s *Pie) SeriesName() string             { return s.o.name() }
func (s *Pie) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Pie) MarshalJSON() ([]byte, error)   { return marshalTagged(TypePie, &s.o) }
func (s *Pie) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypePie, &s.o) }
func (s *Pie) clone() Series                  { c := *s; return &c }

func (s *Pie) ID(id string) *Pie                  { s.o.ID = &id; return s }
func (s *Pie) Name(n string) *Pie                 { s.o.Name = &n; return s }
func (s *Pie) ItemStyle(v element.ItemStyle) *Pie { s.o.ItemStyle = &v; return s }
func (s *Pie) Label(v element.Label) *Pie         { s.o.Label = &v; return s }
func (s *Pie) Emphasis(v element.Emphasis) *Pie   { s.o.Emphasis = &v; return s }
func (s *Pie) Tooltip(v element.Tooltip) *Pie     { s.o.Tooltip = &v; return s }
func (s *Pie) RoseType(t string) *Pie             { s.o.RoseType = &t; return s }
func (s *Pie) StartAngle(deg float64) *Pie        { s.o.StartAngle = &deg; return s }
func (s *Pie) Clockwise(b bool) *Pie              { s.o.Clockwise = &b; return s }
func (s *Pie) AvoidLabelOverlap(b bool) *Pie      { s.o.AvoidLabelOverlap = &b; return s }
func (s *Pie) SelectedMode(m string) *Pie         { s.o.SelectedMode = &m; return s }
func (s *Pie) DatasetID(id string) *Pie           { s.o.DatasetID = &id; return s }
func (s *Pie) Data(df datatype.DataFrame) *Pie    { s.o.Data = df.Clone(); return s }

// Radius sets the outer radius, or inner and outer radius for a donut.
func (s *Pie) Radius(r ...element.Coord) *Pie {
	s.o.Radius = Extent(appendCopy([]element.Coord(nil), r...))
	return s
}

// Center sets the [x, y] center.
func (s *Pie) Center(x, y element.Coord) *Pie {
	s.o.Center = []element.Coord{x, y}
	return s
}

// ─── Funnel ───────────────────────────────────────────────────────────────────

type funnelFields struct {
	common
	Min     *float64           `json:"min,omitempty"`
	Max     *float64           `json:"max,omitempty"`
	MinSize *element.Coord     `json:"minSize,omitempty"`
	MaxSize *element.Coord     `json:"maxSize,omitempty"`
	Sort    *string            `json:"sort,omitempty"`
	Gap     *float64           `json:"gap,omitempty"`
	Orient  *element.Orient    `json:"orient,omitempty"`
	Left    *element.Coord     `json:"left,omitempty"`
	Top     *element.Coord     `json:"top,omitempty"`
	Width   *element.Coord     `json:"width,omitempty"`
	Height  *element.Coord     `json:"height,omitempty"`
	Data    datatype.DataFrame `json:"data,omitempty"`
}

// Funnel draws decreasing stages of a process.
type Funnel struct{ o funnelFields }

func NewFunnel() *Funnel { return &Funnel{} }

func (s *Funnel) Type() string                   { return TypeFunnel }
func (s *Funnel) SeriesID() string               { return s.o.id() }
func (s *Funnel) SeriesName() string             { return s.o.name() }
func (s *Funnel) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Funnel) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeFunnel, &s.o) }
func (s *Funnel) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeFunnel, &s.o) }
func (s *Funnel) clone() Series                  { c := *s; return &c }

func (s *Funnel) ID(id string) *Funnel                  { s.o.ID = &id; return s }
func (s *Funnel) Name(n string) *Funnel                 { s.o.Name = &n; return s }
func (s *Funnel) ItemStyle(v element.ItemStyle) *Funnel { s.o.ItemStyle = &v; return s }
func (s *Funnel) Label(v element.Label) *Funnel         { s.o.Label = &v; return s }
func (s *Funnel) Min(m float64) *Funnel                 { s.o.Min = &m; return s }
func (s *Funnel) Max(m float64) *Funnel                 { s.o.Max = &m; return s }
func (s *Funnel) MinSize(c element.Coord) *Funnel       { s.o.MinSize = &c; return s }
func (s *Funnel) MaxSize(c element.Coord) *Funnel       { s.o.MaxSize = &c; return s }
func (s *Funnel) Sort(order string) *Funnel             { s.o.Sort = &order; return s }
func (s *Funnel) Gap(g float64) *Funnel                 { s.o.Gap = &g; return s }
func (s *Funnel) Orient(o element.Orient) *Funnel       { s.o.Orient = &o; return s }
func (s *Funnel) Left(c element.Coord) *Funnel          { s.o.Left = &c; return s }
func (s *Funnel) Top(c element.Coord) *Funnel           { s.o.Top = &c; return s }
func (s *Funnel) Width(c element.Coord) *Funnel         { s.o.Width = &c; return s }
func (s *Funnel) Height(c element.Coord) *Funnel        { s.o.Height = &c; return s }
func (s *Funnel) Data(df datatype.DataFrame) *Funnel    { s.o.Data = df.Clone(); return s }

// ─── Gauge ────────────────────────────────────────────────────────────────────

// GaugeProgress draws the filled arc of a gauge.
type GaugeProgress struct {
	Show  *bool    `json:"show,omitempty"`
	Width *float64 `json:"width,omitempty"`
}

type gaugeFields struct {
	common
	Min         *float64           `json:"min,omitempty"`
	Max         *float64           `json:"max,omitempty"`
	StartAngle  *float64           `json:"startAngle,omitempty"`
	EndAngle    *float64           `json:"endAngle,omitempty"`
	SplitNumber *int               `json:"splitNumber,omitempty"`
	Radius      *element.Coord     `json:"radius,omitempty"`
	Center      []element.Coord    `json:"center,omitempty"`
	Progress    *GaugeProgress     `json:"progress,omitempty"`
	Detail      *element.Label     `json:"detail,omitempty"`
	Data        datatype.DataFrame `json:"data,omitempty"`
}

// Gauge shows a value on a dial.
type Gauge struct{ o gaugeFields }

func NewGauge() *Gauge { return &Gauge{} }

func (s *Gauge) Type() string                   { return TypeGauge }
func (s *Gauge) SeriesID() string               { return s.o.id() }
func (s *Gauge) SeriesName() string             { return s.o.name() }
func (s *Gauge) SeriesData() datatype.DataFrame { return s.o.Data.Clone() }
func (s *Gauge) MarshalJSON() ([]byte, error)   { return marshalTagged(TypeGauge, &s.o) }
func (s *Gauge) UnmarshalJSON(b []byte) error   { return unmarshalTagged(b, TypeGauge, &s.o) }
func (s *Gauge) clone() Series                  { c := *s; return &c }

func (s *Gauge) ID(id string) *Gauge                  { s.o.ID = &id; return s }
func (s *Gauge) Name(n string) *Gauge                 { s.o.Name = &n; return s }
func (s *Gauge) ItemStyle(v element.ItemStyle) *Gauge { s.o.ItemStyle = &v; return s }
func (s *Gauge) Min(m float64) *Gauge                 { s.o.Min = &m; return s }
func (s *Gauge) Max(m float64) *Gauge                 { s.o.Max = &m; return s }
func (s *Gauge) StartAngle(deg float64) *Gauge        { s.o.StartAngle = &deg; return s }
func (s *Gauge) EndAngle(deg float64) *Gauge          { s.o.EndAngle = &deg; return s }
func (s *Gauge) SplitNumber(n int) *Gauge             { s.o.SplitNumber = &n; return s }
func (s *Gauge) Radius(r element.Coord) *Gauge        { s.o.Radius = &r; return s }
func (s *Gauge) Progress(p GaugeProgress) *Gauge      { s.o.Progress = &p; return s }
func (s *Gauge) Detail(l element.Label) *Gauge        { s.o.Detail = &l; return s }
func (s *Gauge) Data(df datatype.DataFrame) *Gauge    { s.o.Data = df.Clone(); return s }

// Center sets the [x, y] center.
func (s *Gauge) Center(x, y element.Coord) *Gauge {
	s.o.Center = []element.Coord{x, y}
	return s
}
