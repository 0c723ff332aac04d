package element

// ─── ItemStyle ────────────────────────────────────────────────────────────────

type itemStyleFields struct {
	Color        *Color    `json:"color,omitempty"`
	BorderColor  *Color    `json:"borderColor,omitempty"`
	BorderWidth  *float64  `json:"borderWidth,omitempty"`
	BorderType   *LineType `json:"borderType,omitempty"`
	BorderRadius *float64  `json:"borderRadius,omitempty"`
	Opacity      *float64  `json:"opacity,omitempty"`
	ShadowBlur   *float64  `json:"shadowBlur,omitempty"`
	ShadowColor  *Color    `json:"shadowColor,omitempty"`
}

// ItemStyle styles a data item (bar, point, slice).
type ItemStyle struct{ o itemStyleFields }

func NewItemStyle() ItemStyle { return ItemStyle{} }

func (s ItemStyle) Color(c Color) ItemStyle         { s.o.Color = &c; return s }
func (s ItemStyle) BorderColor(c Color) ItemStyle   { s.o.BorderColor = &c; return s }
func (s ItemStyle) BorderWidth(w float64) ItemStyle { s.o.BorderWidth = &w; return s }
func (s ItemStyle) BorderType(t LineType) ItemStyle { s.o.BorderType = &t; return s }
func (s ItemStyle) BorderRadius(r float64) ItemStyle {
	s.o.BorderRadius = &r
	return s
}
func (s ItemStyle) Opacity(o float64) ItemStyle    { s.o.Opacity = &o; return s }
func (s ItemStyle) ShadowBlur(b float64) ItemStyle { s.o.ShadowBlur = &b; return s }
func (s ItemStyle) ShadowColor(c Color) ItemStyle  { s.o.ShadowColor = &c; return s }

func (s ItemStyle) MarshalJSON() ([]byte, error)     { return Marshal(s.o) }
func (s *ItemStyle) UnmarshalJSON(data []byte) error { return Decode(data, &s.o) }

// ─── LineStyle ────────────────────────────────────────────────────────────────

type lineStyleFields struct {
	Color       *Color    `json:"color,omitempty"`
	Width       *float64  `json:"width,omitempty"`
	Type        *LineType `json:"type,omitempty"`
	Opacity     *float64  `json:"opacity,omitempty"`
	Curveness   *float64  `json:"curveness,omitempty"`
	ShadowBlur  *float64  `json:"shadowBlur,omitempty"`
	ShadowColor *Color    `json:"shadowColor,omitempty"`
}

// LineStyle styles a stroke.
type LineStyle struct{ o lineStyleFields }

func NewLineStyle() LineStyle { return LineStyle{} }

func (s LineStyle) Color(c Color) LineStyle        { s.o.Color = &c; return s }
func (s LineStyle) Width(w float64) LineStyle      { s.o.Width = &w; return s }
func (s LineStyle) Type(t LineType) LineStyle      { s.o.Type = &t; return s }
func (s LineStyle) Opacity(o float64) LineStyle    { s.o.Opacity = &o; return s }
func (s LineStyle) Curveness(c float64) LineStyle  { s.o.Curveness = &c; return s }
func (s LineStyle) ShadowBlur(b float64) LineStyle { s.o.ShadowBlur = &b; return s }
func (s LineStyle) ShadowColor(c Color) LineStyle  { s.o.ShadowColor = &c; return s }
func (s LineStyle) MarshalJSON() ([]byte, error)   { return Marshal(s.o) }
func (s *LineStyle) UnmarshalJSON(b []byte) error  { return Decode(b, &s.o) }

// ─── AreaStyle ────────────────────────────────────────────────────────────────

type areaStyleFields struct {
	Color   *Color   `json:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty"`
	Origin  *string  `json:"origin,omitempty"`
}

// AreaStyle fills the region under a line.
type AreaStyle struct{ o areaStyleFields }

func NewAreaStyle() AreaStyle { return AreaStyle{} }

func (s AreaStyle) Color(c Color) AreaStyle       { s.o.Color = &c; return s }
func (s AreaStyle) Opacity(o float64) AreaStyle   { s.o.Opacity = &o; return s }
func (s AreaStyle) Origin(o string) AreaStyle     { s.o.Origin = &o; return s }
func (s AreaStyle) MarshalJSON() ([]byte, error)  { return Marshal(s.o) }
func (s *AreaStyle) UnmarshalJSON(b []byte) error { return Decode(b, &s.o) }

// ─── TextStyle ────────────────────────────────────────────────────────────────

type textStyleFields struct {
	Color      *Color   `json:"color,omitempty"`
	FontStyle  *string  `json:"fontStyle,omitempty"`
	FontWeight *string  `json:"fontWeight,omitempty"`
	FontFamily *string  `json:"fontFamily,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty"`
}

// TextStyle styles free text such as titles and legend entries.
type TextStyle struct{ o textStyleFields }

func NewTextStyle() TextStyle { return TextStyle{} }

func (s TextStyle) Color(c Color) TextStyle       { s.o.Color = &c; return s }
func (s TextStyle) FontStyle(f string) TextStyle  { s.o.FontStyle = &f; return s }
func (s TextStyle) FontWeight(w string) TextStyle { s.o.FontWeight = &w; return s }
func (s TextStyle) FontFamily(f string) TextStyle { s.o.FontFamily = &f; return s }
func (s TextStyle) FontSize(n float64) TextStyle  { s.o.FontSize = &n; return s }
func (s TextStyle) MarshalJSON() ([]byte, error)  { return Marshal(s.o) }
func (s *TextStyle) UnmarshalJSON(b []byte) error { return Decode(b, &s.o) }

// ─── Label ────────────────────────────────────────────────────────────────────

type labelFields struct {
	Show       *bool    `json:"show,omitempty"`
	Position   *string  `json:"position,omitempty"`
	Distance   *float64 `json:"distance,omitempty"`
	Rotate     *float64 `json:"rotate,omitempty"`
	Formatter  *string  `json:"formatter,omitempty"`
	Color      *Color   `json:"color,omitempty"`
	FontSize   *float64 `json:"fontSize,omitempty"`
	FontWeight *string  `json:"fontWeight,omitempty"`
}

// Label is the text drawn next to a data item.
type Label struct{ o labelFields }

func NewLabel() Label { return Label{} }

func (l Label) Show(b bool) Label         { l.o.Show = &b; return l }
func (l Label) Position(p string) Label   { l.o.Position = &p; return l }
func (l Label) Distance(d float64) Label  { l.o.Distance = &d; return l }
func (l Label) Rotate(r float64) Label    { l.o.Rotate = &r; return l }
func (l Label) Formatter(f string) Label  { l.o.Formatter = &f; return l }
func (l Label) Color(c Color) Label       { l.o.Color = &c; return l }
func (l Label) FontSize(n float64) Label  { l.o.FontSize = &n; return l }
func (l Label) FontWeight(w string) Label { l.o.FontWeight = &w; return l }

// FormatterFunc sets the formatter to a JavaScript callback emitted unquoted.
func (l Label) FormatterFunc(js string) Label { return l.Formatter(WrapRaw(js)) }

func (l Label) MarshalJSON() ([]byte, error)  { return Marshal(l.o) }
func (l *Label) UnmarshalJSON(b []byte) error { return Decode(b, &l.o) }

// ─── Emphasis ─────────────────────────────────────────────────────────────────

type emphasisFields struct {
	Disabled  *bool      `json:"disabled,omitempty"`
	Focus     *string    `json:"focus,omitempty"`
	Scale     *bool      `json:"scale,omitempty"`
	ItemStyle *ItemStyle `json:"itemStyle,omitempty"`
	LineStyle *LineStyle `json:"lineStyle,omitempty"`
	AreaStyle *AreaStyle `json:"areaStyle,omitempty"`
	Label     *Label     `json:"label,omitempty"`
}

// Emphasis is the highlighted state of an item under the pointer.
type Emphasis struct{ o emphasisFields }

func NewEmphasis() Emphasis { return Emphasis{} }

func (e Emphasis) Disabled(b bool) Emphasis       { e.o.Disabled = &b; return e }
func (e Emphasis) Focus(f string) Emphasis        { e.o.Focus = &f; return e }
func (e Emphasis) Scale(b bool) Emphasis          { e.o.Scale = &b; return e }
func (e Emphasis) ItemStyle(s ItemStyle) Emphasis { e.o.ItemStyle = &s; return e }
func (e Emphasis) LineStyle(s LineStyle) Emphasis { e.o.LineStyle = &s; return e }
func (e Emphasis) AreaStyle(s AreaStyle) Emphasis { e.o.AreaStyle = &s; return e }
func (e Emphasis) Label(l Label) Emphasis         { e.o.Label = &l; return e }
func (e Emphasis) MarshalJSON() ([]byte, error)   { return Marshal(e.o) }
func (e *Emphasis) UnmarshalJSON(b []byte) error  { return Decode(b, &e.o) }
