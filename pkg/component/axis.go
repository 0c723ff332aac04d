package component

import "github.com/derickschaefer/chartspec/pkg/element"

// AxisLine is the line drawn along an axis.
type AxisLine struct {
	Show      *bool              `json:"show,omitempty"`
	OnZero    *bool              `json:"onZero,omitempty"`
	LineStyle *element.LineStyle `json:"lineStyle,omitempty"`
}

// SplitLine is the grid line drawn at each tick.
type SplitLine struct {
	Show      *bool              `json:"show,omitempty"`
	Interval  *float64           `json:"interval,omitempty"`
	LineStyle *element.LineStyle `json:"lineStyle,omitempty"`
}

// ─── Axis ─────────────────────────────────────────────────────────────────────

type axisFields struct {
	ID           *string              `json:"id,omitempty"`
	Show         *bool                `json:"show,omitempty"`
	Type         *element.AxisType    `json:"type,omitempty"`
	Name         *string              `json:"name,omitempty"`
	NameLocation *string              `json:"nameLocation,omitempty"`
	NameGap      *float64             `json:"nameGap,omitempty"`
	GridIndex    *int                 `json:"gridIndex,omitempty"`
	Position     *string              `json:"position,omitempty"`
	Offset       *float64             `json:"offset,omitempty"`
	Inverse      *bool                `json:"inverse,omitempty"`
	BoundaryGap  *bool                `json:"boundaryGap,omitempty"`
	Min          *element.Coord       `json:"min,omitempty"`
	Max          *element.Coord       `json:"max,omitempty"`
	Scale        *bool                `json:"scale,omitempty"`
	SplitNumber  *int                 `json:"splitNumber,omitempty"`
	Interval     *float64             `json:"interval,omitempty"`
	LogBase      *float64             `json:"logBase,omitempty"`
	AxisLine     *AxisLine            `json:"axisLine,omitempty"`
	AxisLabel    *element.Label       `json:"axisLabel,omitempty"`
	SplitLine    *SplitLine           `json:"splitLine,omitempty"`
	AxisPointer  *element.AxisPointer `json:"axisPointer,omitempty"`
	Data         []string             `json:"data,omitempty"`
}

// Axis is one cartesian x or y axis.
type Axis struct{ o axisFields }

func NewAxis() Axis { return Axis{} }

func (a Axis) ID(id string) Axis                      { a.o.ID = &id; return a }
func (a Axis) Show(b bool) Axis                       { a.o.Show = &b; return a }
func (a Axis) Type(t element.AxisType) Axis           { a.o.Type = &t; return a }
func (a Axis) Name(n string) Axis                     { a.o.Name = &n; return a }
func (a Axis) NameLocation(l string) Axis             { a.o.NameLocation = &l; return a }
func (a Axis) NameGap(g float64) Axis                 { a.o.NameGap = &g; return a }
func (a Axis) GridIndex(i int) Axis                   { a.o.GridIndex = &i; return a }
func (a Axis) Position(p string) Axis                 { a.o.Position = &p; return a }
func (a Axis) Offset(o float64) Axis                  { a.o.Offset = &o; return a }
func (a Axis) Inverse(b bool) Axis                    { a.o.Inverse = &b; return a }
func (a Axis) BoundaryGap(b bool) Axis                { a.o.BoundaryGap = &b; return a }
func (a Axis) Min(c element.Coord) Axis               { a.o.Min = &c; return a }
func (a Axis) Max(c element.Coord) Axis               { a.o.Max = &c; return a }
func (a Axis) Scale(b bool) Axis                      { a.o.Scale = &b; return a }
func (a Axis) SplitNumber(n int) Axis                 { a.o.SplitNumber = &n; return a }
func (a Axis) Interval(i float64) Axis                { a.o.Interval = &i; return a }
func (a Axis) LogBase(b float64) Axis                 { a.o.LogBase = &b; return a }
func (a Axis) AxisLine(l AxisLine) Axis               { a.o.AxisLine = &l; return a }
func (a Axis) AxisLabel(l element.Label) Axis         { a.o.AxisLabel = &l; return a }
func (a Axis) SplitLine(l SplitLine) Axis             { a.o.SplitLine = &l; return a }
func (a Axis) AxisPointer(p element.AxisPointer) Axis { a.o.AxisPointer = &p; return a }

// Data appends category labels.
func (a Axis) Data(labels ...string) Axis {
	a.o.Data = appendCopy(a.o.Data, labels...)
	return a
}

// AxisType returns the axis type, "" when unset.
func (a Axis) AxisType() element.AxisType {
	if a.o.Type == nil {
		return ""
	}
	return *a.o.Type
}

// Categories returns a copy of the category labels.
func (a Axis) Categories() []string { return append([]string(nil), a.o.Data...) }

func (a Axis) MarshalJSON() ([]byte, error)  { return element.Marshal(a.o) }
func (a *Axis) UnmarshalJSON(b []byte) error { return element.Decode(b, &a.o) }

// ─── Axis3D ───────────────────────────────────────────────────────────────────

type axis3DFields struct {
	Show        *bool             `json:"show,omitempty"`
	Type        *element.AxisType `json:"type,omitempty"`
	Name        *string           `json:"name,omitempty"`
	Grid3DIndex *int              `json:"grid3DIndex,omitempty"`
	Min         *element.Coord    `json:"min,omitempty"`
	Max         *element.Coord    `json:"max,omitempty"`
	Data        []string          `json:"data,omitempty"`
}

// Axis3D is an x, y or z axis of a 3D grid.
type Axis3D struct{ o axis3DFields }

func NewAxis3D() Axis3D { return Axis3D{} }

func (a Axis3D) Show(b bool) Axis3D             { a.o.Show = &b; return a }
func (a Axis3D) Type(t element.AxisType) Axis3D { a.o.Type = &t; return a }
func (a Axis3D) Name(n string) Axis3D           { a.o.Name = &n; return a }
func (a Axis3D) Grid3DIndex(i int) Axis3D       { a.o.Grid3DIndex = &i; return a }
func (a Axis3D) Min(c element.Coord) Axis3D     { a.o.Min = &c; return a }
func (a Axis3D) Max(c element.Coord) Axis3D     { a.o.Max = &c; return a }
func (a Axis3D) Data(labels ...string) Axis3D {
	a.o.Data = appendCopy(a.o.Data, labels...)
	return a
}

func (a Axis3D) MarshalJSON() ([]byte, error)  { return element.Marshal(a.o) }
func (a *Axis3D) UnmarshalJSON(b []byte) error { return element.Decode(b, &a.o) }

// ─── Polar ────────────────────────────────────────────────────────────────────

type polarFields struct {
	ID     *string         `json:"id,omitempty"`
	Z      *float64        `json:"z,omitempty"`
	Center []element.Coord `json:"center,omitempty"`
	Radius []element.Coord `json:"radius,omitempty"`
}

// Polar is a polar coordinate system.
type Polar struct{ o polarFields }

func NewPolar() Polar { return Polar{} }

func (p Polar) ID(id string) Polar { p.o.ID = &id; return p }
func (p Polar) Z(z float64) Polar  { p.o.Z = &z; return p }

// Center sets the [x, y] center of the coordinate system.
func (p Polar) Center(x, y element.Coord) Polar {
	p.o.Center = []element.Coord{x, y}
	return p
}

// Radius sets the [inner, outer] radius.
func (p Polar) Radius(inner, outer element.Coord) Polar {
	p.o.Radius = []element.Coord{inner, outer}
	return p
}

func (p Polar) MarshalJSON() ([]byte, error)  { return element.Marshal(p.o) }
func (p *Polar) UnmarshalJSON(b []byte) error { return element.Decode(b, &p.o) }

// ─── AngleAxis / RadiusAxis ───────────────────────────────────────────────────

type angleAxisFields struct {
	ID         *string           `json:"id,omitempty"`
	PolarIndex *int              `json:"polarIndex,omitempty"`
	Type       *element.AxisType `json:"type,omitempty"`
	StartAngle *float64          `json:"startAngle,omitempty"`
	Clockwise  *bool             `json:"clockwise,omitempty"`
	Min        *element.Coord    `json:"min,omitempty"`
	Max        *element.Coord    `json:"max,omitempty"`
	Data       []string          `json:"data,omitempty"`
}

// AngleAxis is the angular axis of a polar system.
type AngleAxis struct{ o angleAxisFields }

func NewAngleAxis() AngleAxis { return AngleAxis{} }

func (a AngleAxis) ID(id string) AngleAxis            { a.o.ID = &id; return a }
func (a AngleAxis) PolarIndex(i int) AngleAxis        { a.o.PolarIndex = &i; return a }
func (a AngleAxis) Type(t element.AxisType) AngleAxis { a.o.Type = &t; return a }
func (a AngleAxis) StartAngle(deg float64) AngleAxis  { a.o.StartAngle = &deg; return a }
func (a AngleAxis) Clockwise(b bool) AngleAxis        { a.o.Clockwise = &b; return a }
func (a AngleAxis) Min(c element.Coord) AngleAxis     { a.o.Min = &c; return a }
func (a AngleAxis) Max(c element.Coord) AngleAxis     { a.o.Max = &c; return a }
func (a AngleAxis) Data(labels ...string) AngleAxis {
	a.o.Data = appendCopy(a.o.Data, labels...)
	return a
}

func (a AngleAxis) MarshalJSON() ([]byte, error)  { return element.Marshal(a.o) }
func (a *AngleAxis) UnmarshalJSON(b []byte) error { return element.Decode(b, &a.o) }

type radiusAxisFields struct {
	ID         *string           `json:"id,omitempty"`
	PolarIndex *int              `json:"polarIndex,omitempty"`
	Type       *element.AxisType `json:"type,omitempty"`
	Name       *string           `json:"name,omitempty"`
	Min        *element.Coord    `json:"min,omitempty"`
	Max        *element.Coord    `json:"max,omitempty"`
	Data       []string          `json:"data,omitempty"`
}

// RadiusAxis is the radial axis of a polar system.
type RadiusAxis struct{ o radiusAxisFields }

func NewRadiusAxis() RadiusAxis { return RadiusAxis{} }

func (a RadiusAxis) ID(id string) RadiusAxis            { a.o.ID = &id; return a }
func (a RadiusAxis) PolarIndex(i int) RadiusAxis        { a.o.PolarIndex = &i; return a }
func (a RadiusAxis) Type(t element.AxisType) RadiusAxis { a.o.Type = &t; return a }
func (a RadiusAxis) Name(n string) RadiusAxis           { a.o.Name = &n; return a }
func (a RadiusAxis) Min(c element.Coord) RadiusAxis     { a.o.Min = &c; return a }
func (a RadiusAxis) Max(c element.Coord) RadiusAxis     { a.o.Max = &c; return a }
func (a RadiusAxis) Data(labels ...string) RadiusAxis {
	a.o.Data = appendCopy(a.o.Data, labels...)
	return a
}

func (a RadiusAxis) MarshalJSON() ([]byte, error)  { return element.Marshal(a.o) }
func (a *RadiusAxis) UnmarshalJSON(b []byte) error { return element.Decode(b, &a.o) }

// ─── SingleAxis ───────────────────────────────────────────────────────────────

type singleAxisFields struct {
	ID     *string           `json:"id,omitempty"`
	Type   *element.AxisType `json:"type,omitempty"`
	Name   *string           `json:"name,omitempty"`
	Orient *element.Orient   `json:"orient,omitempty"`
	Width  *element.Coord    `json:"width,omitempty"`
	Height *element.Coord    `json:"height,omitempty"`
	Min    *element.Coord    `json:"min,omitempty"`
	Max    *element.Coord    `json:"max,omitempty"`
	Data   []string          `json:"data,omitempty"`
	Box
}

// SingleAxis is a lone axis used by theme rivers and single-axis scatters.
type SingleAxis struct{ o singleAxisFields }

func NewSingleAxis() SingleAxis { return SingleAxis{} }

func (a SingleAxis) ID(id string) SingleAxis            { a.o.ID = &id; return a }
func (a SingleAxis) Type(t element.AxisType) SingleAxis { a.o.Type = &t; return a }
func (a SingleAxis) Name(n string) SingleAxis           { a.o.Name = &n; return a }
func (a SingleAxis) Orient(o element.Orient) SingleAxis { a.o.Orient = &o; return a }
func (a SingleAxis) Width(c element.Coord) SingleAxis   { a.o.Width = &c; return a }
func (a SingleAxis) Height(c element.Coord) SingleAxis  { a.o.Height = &c; return a }
func (a SingleAxis) Min(c element.Coord) SingleAxis     { a.o.Min = &c; return a }
func (a SingleAxis) Max(c element.Coord) SingleAxis     { a.o.Max = &c; return a }
func (a SingleAxis) Left(c element.Coord) SingleAxis    { a.o.Left = &c; return a }
func (a SingleAxis) Top(c element.Coord) SingleAxis     { a.o.Top = &c; return a }
func (a SingleAxis) Right(c element.Coord) SingleAxis   { a.o.Right = &c; return a }
func (a SingleAxis) Bottom(c element.Coord) SingleAxis  { a.o.Bottom = &c; return a }
func (a SingleAxis) Data(labels ...string) SingleAxis {
	a.o.Data = appendCopy(a.o.Data, labels...)
	return a
}

func (a SingleAxis) MarshalJSON() ([]byte, error)  { return element.Marshal(a.o) }
func (a *SingleAxis) UnmarshalJSON(b []byte) error { return element.Decode(b, &a.o) }

// ─── Parallel ─────────────────────────────────────────────────────────────────

type parallelAxisFields struct {
	Dim           *int              `json:"dim,omitempty"`
	ParallelIndex *int              `json:"parallelIndex,omitempty"`
	Type          *element.AxisType `json:"type,omitempty"`
	Name          *string           `json:"name,omitempty"`
	Inverse       *bool             `json:"inverse,omitempty"`
	Min           *element.Coord    `json:"min,omitempty"`
	Max           *element.Coord    `json:"max,omitempty"`
	Data          []string          `json:"data,omitempty"`
}

// ParallelAxis maps one data dimension onto a parallel coordinate axis.
type ParallelAxis struct{ o parallelAxisFields }

// NewParallelAxis returns an axis bound to dimension dim.
func NewParallelAxis(dim int) ParallelAxis {
	return ParallelAxis{o: parallelAxisFields{Dim: &dim}}
}

func (a ParallelAxis) ParallelIndex(i int) ParallelAxis     { a.o.ParallelIndex = &i; return a }
func (a ParallelAxis) Type(t element.AxisType) ParallelAxis { a.o.Type = &t; return a }
func (a ParallelAxis) Name(n string) ParallelAxis           { a.o.Name = &n; return a }
func (a ParallelAxis) Inverse(b bool) ParallelAxis          { a.o.Inverse = &b; return a }
func (a ParallelAxis) Min(c element.Coord) ParallelAxis     { a.o.Min = &c; return a }
func (a ParallelAxis) Max(c element.Coord) ParallelAxis     { a.o.Max = &c; return a }
func (a ParallelAxis) Data(labels ...string) ParallelAxis {
	a.o.Data = appendCopy(a.o.Data, labels...)
	return a
}

func (a ParallelAxis) MarshalJSON() ([]byte, error)  { return element.Marshal(a.o) }
func (a *ParallelAxis) UnmarshalJSON(b []byte) error { return element.Decode(b, &a.o) }

type parallelFields struct {
	ID     *string         `json:"id,omitempty"`
	Layout *element.Orient `json:"layout,omitempty"`
	Width  *element.Coord  `json:"width,omitempty"`
	Height *element.Coord  `json:"height,omitempty"`
	Box
}

// Parallel is the area that holds parallel axes.
type Parallel struct{ o parallelFields }

func NewParallel() Parallel { return Parallel{} }

func (p Parallel) ID(id string) Parallel            { p.o.ID = &id; return p }
func (p Parallel) Layout(o element.Orient) Parallel { p.o.Layout = &o; return p }
func (p Parallel) Width(c element.Coord) Parallel   { p.o.Width = &c; return p }
func (p Parallel) Height(c element.Coord) Parallel  { p.o.Height = &c; return p }
func (p Parallel) Left(c element.Coord) Parallel    { p.o.Left = &c; return p }
func (p Parallel) Top(c element.Coord) Parallel     { p.o.Top = &c; return p }
func (p Parallel) Right(c element.Coord) Parallel   { p.o.Right = &c; return p }
func (p Parallel) Bottom(c element.Coord) Parallel  { p.o.Bottom = &c; return p }
func (p Parallel) MarshalJSON() ([]byte, error)     { return element.Marshal(p.o) }
func (p *Parallel) UnmarshalJSON(b []byte) error    { return element.Decode(b, &p.o) }
