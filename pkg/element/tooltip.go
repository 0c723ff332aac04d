package element

// ─── AxisPointer ──────────────────────────────────────────────────────────────

type axisPointerFields struct {
	Type      *AxisPointerType `json:"type,omitempty"`
	Show      *bool            `json:"show,omitempty"`
	Snap      *bool            `json:"snap,omitempty"`
	Label     *Label           `json:"label,omitempty"`
	LineStyle *LineStyle       `json:"lineStyle,omitempty"`
	Link      []AxisLink       `json:"link,omitempty"`
}

// AxisLink ties the pointers of several axes together.
type AxisLink struct {
	XAxisIndex []int `json:"xAxisIndex,omitempty"`
	YAxisIndex []int `json:"yAxisIndex,omitempty"`
}

// AxisPointer draws a reference line or shadow under the mouse.
type AxisPointer struct{ o axisPointerFields }

func NewAxisPointer() AxisPointer { return AxisPointer{} }

func (p AxisPointer) Type(t AxisPointerType) AxisPointer { p.o.Type = &t; return p }
func (p AxisPointer) Show(b bool) AxisPointer            { p.o.Show = &b; return p }
func (p AxisPointer) Snap(b bool) AxisPointer            { p.o.Snap = &b; return p }
func (p AxisPointer) Label(l Label) AxisPointer          { p.o.Label = &l; return p }
func (p AxisPointer) LineStyle(s LineStyle) AxisPointer  { p.o.LineStyle = &s; return p }

// Link appends an axis link.
func (p AxisPointer) Link(l AxisLink) AxisPointer {
	p.o.Link = appendCopy(p.o.Link, l)
	return p
}

func (p AxisPointer) MarshalJSON() ([]byte, error)  { return Marshal(p.o) }
func (p *AxisPointer) UnmarshalJSON(b []byte) error { return Decode(b, &p.o) }

// ─── Tooltip ──────────────────────────────────────────────────────────────────

type tooltipFields struct {
	Show            *bool        `json:"show,omitempty"`
	Trigger         *Trigger     `json:"trigger,omitempty"`
	TriggerOn       *string      `json:"triggerOn,omitempty"`
	Formatter       *string      `json:"formatter,omitempty"`
	ValueFormatter  *string      `json:"valueFormatter,omitempty"`
	AxisPointer     *AxisPointer `json:"axisPointer,omitempty"`
	BackgroundColor *Color       `json:"backgroundColor,omitempty"`
	BorderColor     *Color       `json:"borderColor,omitempty"`
	BorderWidth     *float64     `json:"borderWidth,omitempty"`
	Padding         *Padding     `json:"padding,omitempty"`
	TextStyle       *TextStyle   `json:"textStyle,omitempty"`
	Confine         *bool        `json:"confine,omitempty"`
}

// Tooltip is the floating box shown when hovering a data item or axis.
type Tooltip struct{ o tooltipFields }

func NewTooltip() Tooltip { return Tooltip{} }

func (t Tooltip) Show(b bool) Tooltip               { t.o.Show = &b; return t }
func (t Tooltip) Trigger(tr Trigger) Tooltip        { t.o.Trigger = &tr; return t }
func (t Tooltip) TriggerOn(on string) Tooltip       { t.o.TriggerOn = &on; return t }
func (t Tooltip) Formatter(f string) Tooltip        { t.o.Formatter = &f; return t }
func (t Tooltip) AxisPointer(p AxisPointer) Tooltip { t.o.AxisPointer = &p; return t }
func (t Tooltip) BackgroundColor(c Color) Tooltip   { t.o.BackgroundColor = &c; return t }
func (t Tooltip) BorderColor(c Color) Tooltip       { t.o.BorderColor = &c; return t }
func (t Tooltip) BorderWidth(w float64) Tooltip     { t.o.BorderWidth = &w; return t }
func (t Tooltip) Padding(p Padding) Tooltip         { t.o.Padding = &p; return t }
func (t Tooltip) TextStyle(s TextStyle) Tooltip     { t.o.TextStyle = &s; return t }
func (t Tooltip) Confine(b bool) Tooltip            { t.o.Confine = &b; return t }
func (t Tooltip) FormatterFunc(js string) Tooltip   { return t.Formatter(WrapRaw(js)) }
func (t Tooltip) ValueFormatterFunc(js string) Tooltip {
	f := WrapRaw(js)
	t.o.ValueFormatter = &f
	return t
}

func (t Tooltip) MarshalJSON() ([]byte, error)  { return Marshal(t.o) }
func (t *Tooltip) UnmarshalJSON(b []byte) error { return Decode(b, &t.o) }
