package element

// Color is any CSS color string understood by the renderer: hex, rgb(),
// rgba() or a named color.
type Color string

// CoordinateSystem names the coordinate system a series is plotted on.
type CoordinateSystem string

const (
	CoordinateCartesian2D CoordinateSystem = "cartesian2d"
	CoordinatePolar       CoordinateSystem = "polar"
	CoordinateGeo         CoordinateSystem = "geo"
	CoordinateCalendar    CoordinateSystem = "calendar"
	CoordinateSingleAxis  CoordinateSystem = "singleAxis"
	CoordinateParallel    CoordinateSystem = "parallel"
	CoordinateCartesian3D CoordinateSystem = "cartesian3D"
	CoordinateNone        CoordinateSystem = "none"
)

// Sampling is the downsampling strategy for dense line series.
type Sampling string

const (
	SamplingLTTB    Sampling = "lttb"
	SamplingAverage Sampling = "average"
	SamplingMax     Sampling = "max"
	SamplingMin     Sampling = "min"
	SamplingMinMax  Sampling = "minmax"
	SamplingSum     Sampling = "sum"
)

// Step selects where a step line turns.
type Step string

const (
	StepStart  Step = "start"
	StepMiddle Step = "middle"
	StepEnd    Step = "end"
)

// Symbol is a built-in marker name or a "path://" / "image://" reference.
type Symbol string

const (
	SymbolCircle    Symbol = "circle"
	SymbolRect      Symbol = "rect"
	SymbolRoundRect Symbol = "roundRect"
	SymbolTriangle  Symbol = "triangle"
	SymbolDiamond   Symbol = "diamond"
	SymbolPin       Symbol = "pin"
	SymbolArrow     Symbol = "arrow"
	SymbolNone      Symbol = "none"
)

// Easing is an animation easing curve name.
type Easing string

const (
	EasingLinear       Easing = "linear"
	EasingQuadraticIn  Easing = "quadraticIn"
	EasingQuadraticOut Easing = "quadraticOut"
	EasingCubicInOut   Easing = "cubicInOut"
	EasingElasticOut   Easing = "elasticOut"
	EasingBounceOut    Easing = "bounceOut"
)

// Orient is a layout direction.
type Orient string

const (
	OrientHorizontal Orient = "horizontal"
	OrientVertical   Orient = "vertical"
)

// Trigger selects what a tooltip reacts to.
type Trigger string

const (
	TriggerItem Trigger = "item"
	TriggerAxis Trigger = "axis"
	TriggerNone Trigger = "none"
)

// AxisType is the scale of an axis.
type AxisType string

const (
	AxisValue    AxisType = "value"
	AxisCategory AxisType = "category"
	AxisTime     AxisType = "time"
	AxisLog      AxisType = "log"
)

// LineType is the dash pattern of a stroke.
type LineType string

const (
	LineSolid  LineType = "solid"
	LineDashed LineType = "dashed"
	LineDotted LineType = "dotted"
)

// AxisPointerType is the shape an axis pointer is drawn with.
type AxisPointerType string

const (
	AxisPointerLine   AxisPointerType = "line"
	AxisPointerShadow AxisPointerType = "shadow"
	AxisPointerCross  AxisPointerType = "cross"
	AxisPointerNone   AxisPointerType = "none"
)
