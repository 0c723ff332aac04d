package series

import (
	"github.com/derickschaefer/chartspec/pkg/datatype"
	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── Controllers ──────────────────────────────────────────────────────────────

// Controller is a scoped handle on one series of a chart. It is only valid
// inside the callback that produced it; any use afterwards panics.
type Controller struct {
	s     Series
	valid func() bool
}

// NewController wraps s. valid reports whether the handle may still be used;
// a nil valid never expires.
func NewController(s Series, valid func() bool) *Controller {
	return &Controller{s: s, valid: valid}
}

func (c *Controller) check() {
	if c.valid != nil && !c.valid() {
		panic("series: controller used after its scope ended")
	}
}

// Type returns the discriminant of the controlled series.
func (c *Controller) Type() string {
	c.check()
	return c.s.Type()
}

// Series returns a copy of the controlled series.
func (c *Controller) Series() Series {
	c.check()
	return Clone(c.s)
}

func (c *Controller) wrongVariant(want string) error {
	return &VariantError{Want: want, Got: VariantName(c.s.Type())}
}

// AsLine narrows the handle to a line series.
func (c *Controller) AsLine() (*LineController, error) {
	c.check()
	l, ok := c.s.(*Line)
	if !ok {
		return nil, c.wrongVariant("Line")
	}
	return &LineController{c: c, s: l}, nil
}

// AsScatter narrows the handle to a scatter series.
func (c *Controller) AsScatter() (*ScatterController, error) {
	c.check()
	sc, ok := c.s.(*Scatter)
	if !ok {
		return nil, c.wrongVariant("Scatter")
	}
	return &ScatterController{c: c, s: sc}, nil
}

// AsBar narrows the handle to a bar series.
func (c *Controller) AsBar() (*BarController, error) {
	c.check()
	b, ok := c.s.(*Bar)
	if !ok {
		return nil, c.wrongVariant("Bar")
	}
	return &BarController{c: c, s: b}, nil
}

// ─── LineController ───────────────────────────────────────────────────────────

// LineController edits a line series in place.
type LineController struct {
	c *Controller
	s *Line
}

func (l *LineController) do(f func(*Line)) *LineController {
	l.c.check()
	f(l.s)
	return l
}

func (l *LineController) Name(n string) *LineController {
	return l.do(func(s *Line) { s.Name(n) })
}

func (l *LineController) AreaStyle(v element.AreaStyle) *LineController {
	return l.do(func(s *Line) { s.AreaStyle(v) })
}

func (l *LineController) ConnectNulls(b bool) *LineController {
	return l.do(func(s *Line) { s.ConnectNulls(b) })
}

func (l *LineController) CoordinateSystem(cs element.CoordinateSystem) *LineController {
	return l.do(func(s *Line) { s.CoordinateSystem(cs) })
}

// Data replaces the series data.
func (l *LineController) Data(df datatype.DataFrame) *LineController {
	return l.do(func(s *Line) { s.Data(df) })
}

func (l *LineController) DatasetID(id string) *LineController {
	return l.do(func(s *Line) { s.DatasetID(id) })
}

func (l *LineController) Emphasis(v element.Emphasis) *LineController {
	return l.do(func(s *Line) { s.Emphasis(v) })
}

func (l *LineController) Encode(v element.DimensionEncode) *LineController {
	return l.do(func(s *Line) { s.Encode(v) })
}

func (l *LineController) ItemStyle(v element.ItemStyle) *LineController {
	return l.do(func(s *Line) { s.ItemStyle(v) })
}

func (l *LineController) Label(v element.Label) *LineController {
	return l.do(func(s *Line) { s.Label(v) })
}

func (l *LineController) LineStyle(v element.LineStyle) *LineController {
	return l.do(func(s *Line) { s.LineStyle(v) })
}

func (l *LineController) MarkArea(v element.MarkArea) *LineController {
	return l.do(func(s *Line) { s.MarkArea(v) })
}

func (l *LineController) MarkLine(v element.MarkLine) *LineController {
	return l.do(func(s *Line) { s.MarkLine(v) })
}

func (l *LineController) MarkPoint(v element.MarkPoint) *LineController {
	return l.do(func(s *Line) { s.MarkPoint(v) })
}

func (l *LineController) Sampling(v element.Sampling) *LineController {
	return l.do(func(s *Line) { s.Sampling(v) })
}

func (l *LineController) Silent(b bool) *LineController {
	return l.do(func(s *Line) { s.Silent(b) })
}

func (l *LineController) Smooth(v element.Smoothness) *LineController {
	return l.do(func(s *Line) { s.Smooth(v) })
}

func (l *LineController) Stack(name string) *LineController {
	return l.do(func(s *Line) { s.Stack(name) })
}

func (l *LineController) Step(v element.Step) *LineController {
	return l.do(func(s *Line) { s.Step(v) })
}

func (l *LineController) Symbol(v element.Symbol) *LineController {
	return l.do(func(s *Line) { s.Symbol(v) })
}

func (l *LineController) SymbolSize(v element.SymbolSize) *LineController {
	return l.do(func(s *Line) { s.SymbolSize(v) })
}

func (l *LineController) ShowSymbol(b bool) *LineController {
	return l.do(func(s *Line) { s.ShowSymbol(b) })
}

func (l *LineController) Tooltip(v element.Tooltip) *LineController {
	return l.do(func(s *Line) { s.Tooltip(v) })
}

func (l *LineController) XAxisIndex(i int) *LineController {
	return l.do(func(s *Line) { s.XAxisIndex(i) })
}

func (l *LineController) YAxisIndex(i int) *LineController {
	return l.do(func(s *Line) { s.YAxisIndex(i) })
}

func (l *LineController) Z(z float64) *LineController {
	return l.do(func(s *Line) { s.Z(z) })
}

// ─── ScatterController ────────────────────────────────────────────────────────

// ScatterController edits a scatter series in place.
type ScatterController struct {
	c *Controller
	s *Scatter
}

func (sc *ScatterController) do(f func(*Scatter)) *ScatterController {
	sc.c.check()
	f(sc.s)
	return sc
}

func (sc *ScatterController) Name(n string) *ScatterController {
	return sc.do(func(s *Scatter) { s.Name(n) })
}

func (sc *ScatterController) SymbolSize(v element.SymbolSize) *ScatterController {
	return sc.do(func(s *Scatter) { s.SymbolSize(v) })
}

func (sc *ScatterController) Data(df datatype.DataFrame) *ScatterController {
	return sc.do(func(s *Scatter) { s.Data(df) })
}

func (sc *ScatterController) ItemStyle(v element.ItemStyle) *ScatterController {
	return sc.do(func(s *Scatter) { s.ItemStyle(v) })
}

// ─── BarController ────────────────────────────────────────────────────────────

// BarController edits a bar series in place.
type BarController struct {
	c *Controller
	s *Bar
}

func (bc *BarController) do(f func(*Bar)) *BarController {
	bc.c.check()
	f(bc.s)
	return bc
}

func (bc *BarController) Name(n string) *BarController {
	return bc.do(func(s *Bar) { s.Name(n) })
}

func (bc *BarController) Stack(name string) *BarController {
	return bc.do(func(s *Bar) { s.Stack(name) })
}

func (bc *BarController) BarWidth(w element.Coord) *BarController {
	return bc.do(func(s *Bar) { s.BarWidth(w) })
}

func (bc *BarController) Data(df datatype.DataFrame) *BarController {
	return bc.do(func(s *Bar) { s.Data(df) })
}

func (bc *BarController) ItemStyle(v element.ItemStyle) *BarController {
	return bc.do(func(s *Bar) { s.ItemStyle(v) })
}
