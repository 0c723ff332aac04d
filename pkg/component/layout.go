// Package component holds the chart-level records of the option document:
// titles, legends, grids, axes, the toolbox, zoom and visual mapping, polar
// and parallel coordinate systems, calendars, radars and accessibility.
//
// Every record is a value builder. Setters return a modified copy, so a
// partially configured record can be shared as a template:
//
//	base := component.NewAxis().Type(element.AxisCategory)
//	days := base.Data("Mon", "Tue", "Wed")
//
// Unset fields are omitted from the encoded document.
package component

import "github.com/derickschaefer/chartspec/pkg/element"

func appendCopy[T any](s []T, vs ...T) []T {
	out := make([]T, 0, len(s)+len(vs))
	out = append(out, s...)
	return append(out, vs...)
}

// Box positions a component inside the canvas. Each side is a pixel offset, a
// percentage string or a keyword such as "center".
type Box struct {
	Left   *element.Coord `json:"left,omitempty"`
	Top    *element.Coord `json:"top,omitempty"`
	Right  *element.Coord `json:"right,omitempty"`
	Bottom *element.Coord `json:"bottom,omitempty"`
}

// ─── Title ────────────────────────────────────────────────────────────────────

type titleFields struct {
	ID              *string            `json:"id,omitempty"`
	Show            *bool              `json:"show,omitempty"`
	Text            *string            `json:"text,omitempty"`
	Link            *string            `json:"link,omitempty"`
	Target          *string            `json:"target,omitempty"`
	TextStyle       *element.TextStyle `json:"textStyle,omitempty"`
	Subtext         *string            `json:"subtext,omitempty"`
	SubtextStyle    *element.TextStyle `json:"subtextStyle,omitempty"`
	TextAlign       *string            `json:"textAlign,omitempty"`
	ItemGap         *float64           `json:"itemGap,omitempty"`
	Padding         *element.Padding   `json:"padding,omitempty"`
	BackgroundColor *element.Color     `json:"backgroundColor,omitempty"`
	BorderColor     *element.Color     `json:"borderColor,omitempty"`
	BorderWidth     *float64           `json:"borderWidth,omitempty"`
	Box
}

// Title is a main title with an optional subtitle.
type Title struct{ o titleFields }

func NewTitle() Title { return Title{} }

func (t Title) ID(id string) Title                     { t.o.ID = &id; return t }
func (t Title) Show(b bool) Title                      { t.o.Show = &b; return t }
func (t Title) Text(s string) Title                    { t.o.Text = &s; return t }
func (t Title) Link(url string) Title                  { t.o.Link = &url; return t }
func (t Title) Target(s string) Title                  { t.o.Target = &s; return t }
func (t Title) TextStyle(s element.TextStyle) Title    { t.o.TextStyle = &s; return t }
func (t Title) Subtext(s string) Title                 { t.o.Subtext = &s; return t }
func (t Title) SubtextStyle(s element.TextStyle) Title { t.o.SubtextStyle = &s; return t }
func (t Title) TextAlign(a string) Title               { t.o.TextAlign = &a; return t }
func (t Title) ItemGap(g float64) Title                { t.o.ItemGap = &g; return t }
func (t Title) Padding(p element.Padding) Title        { t.o.Padding = &p; return t }
func (t Title) BackgroundColor(c element.Color) Title  { t.o.BackgroundColor = &c; return t }
func (t Title) BorderColor(c element.Color) Title      { t.o.BorderColor = &c; return t }
func (t Title) BorderWidth(w float64) Title            { t.o.BorderWidth = &w; return t }
func (t Title) Left(c element.Coord) Title             { t.o.Left = &c; return t }
func (t Title) Top(c element.Coord) Title              { t.o.Top = &c; return t }
func (t Title) Right(c element.Coord) Title            { t.o.Right = &c; return t }
func (t Title) Bottom(c element.Coord) Title           { t.o.Bottom = &c; return t }

// TitleText returns the main text, "" when unset.
func (t Title) TitleText() string {
	if t.o.Text == nil {
		return ""
	}
	return *t.o.Text
}

func (t Title) MarshalJSON() ([]byte, error)  { return element.Marshal(t.o) }
func (t *Title) UnmarshalJSON(b []byte) error { return element.Decode(b, &t.o) }

// ─── Legend ───────────────────────────────────────────────────────────────────

type legendFields struct {
	Type         *string            `json:"type,omitempty"`
	ID           *string            `json:"id,omitempty"`
	Show         *bool              `json:"show,omitempty"`
	Orient       *element.Orient    `json:"orient,omitempty"`
	Padding      *element.Padding   `json:"padding,omitempty"`
	ItemGap      *float64           `json:"itemGap,omitempty"`
	ItemWidth    *float64           `json:"itemWidth,omitempty"`
	ItemHeight   *float64           `json:"itemHeight,omitempty"`
	Icon         *element.Symbol    `json:"icon,omitempty"`
	Data         []string           `json:"data,omitempty"`
	Selected     map[string]bool    `json:"selected,omitempty"`
	SelectedMode *bool              `json:"selectedMode,omitempty"`
	TextStyle    *element.TextStyle `json:"textStyle,omitempty"`
	Box
}

// Legend lists series names and toggles their visibility.
type Legend struct{ o legendFields }

func NewLegend() Legend { return Legend{} }

func (l Legend) Type(t string) Legend                 { l.o.Type = &t; return l }
func (l Legend) ID(id string) Legend                  { l.o.ID = &id; return l }
func (l Legend) Show(b bool) Legend                   { l.o.Show = &b; return l }
func (l Legend) Orient(o element.Orient) Legend       { l.o.Orient = &o; return l }
func (l Legend) Padding(p element.Padding) Legend     { l.o.Padding = &p; return l }
func (l Legend) ItemGap(g float64) Legend             { l.o.ItemGap = &g; return l }
func (l Legend) ItemWidth(w float64) Legend           { l.o.ItemWidth = &w; return l }
func (l Legend) ItemHeight(h float64) Legend          { l.o.ItemHeight = &h; return l }
func (l Legend) Icon(s element.Symbol) Legend         { l.o.Icon = &s; return l }
func (l Legend) SelectedMode(b bool) Legend           { l.o.SelectedMode = &b; return l }
func (l Legend) TextStyle(s element.TextStyle) Legend { l.o.TextStyle = &s; return l }
func (l Legend) Left(c element.Coord) Legend          { l.o.Left = &c; return l }
func (l Legend) Top(c element.Coord) Legend           { l.o.Top = &c; return l }
func (l Legend) Right(c element.Coord) Legend         { l.o.Right = &c; return l }
func (l Legend) Bottom(c element.Coord) Legend        { l.o.Bottom = &c; return l }

// Data appends series names to show.
func (l Legend) Data(names ...string) Legend {
	l.o.Data = appendCopy(l.o.Data, names...)
	return l
}

// Selected sets the initial visibility of one series.
func (l Legend) Selected(name string, on bool) Legend {
	m := make(map[string]bool, len(l.o.Selected)+1)
	for k, v := range l.o.Selected {
		m[k] = v
	}
	m[name] = on
	l.o.Selected = m
	return l
}

func (l Legend) MarshalJSON() ([]byte, error)  { return element.Marshal(l.o) }
func (l *Legend) UnmarshalJSON(b []byte) error { return element.Decode(b, &l.o) }

// ─── Grid ─────────────────────────────────────────────────────────────────────

type gridFields struct {
	ID              *string        `json:"id,omitempty"`
	Show            *bool          `json:"show,omitempty"`
	Width           *element.Coord `json:"width,omitempty"`
	Height          *element.Coord `json:"height,omitempty"`
	ContainLabel    *bool          `json:"containLabel,omitempty"`
	BackgroundColor *element.Color `json:"backgroundColor,omitempty"`
	BorderColor     *element.Color `json:"borderColor,omitempty"`
	BorderWidth     *float64       `json:"borderWidth,omitempty"`
	Box
}

// Grid is a rectangular plotting area for cartesian axes.
type Grid struct{ o gridFields }

func NewGrid() Grid { return Grid{} }

func (g Grid) ID(id string) Grid                    { g.o.ID = &id; return g }
func (g Grid) Show(b bool) Grid                     { g.o.Show = &b; return g }
func (g Grid) Width(c element.Coord) Grid           { g.o.Width = &c; return g }
func (g Grid) Height(c element.Coord) Grid          { g.o.Height = &c; return g }
func (g Grid) ContainLabel(b bool) Grid             { g.o.ContainLabel = &b; return g }
func (g Grid) BackgroundColor(c element.Color) Grid { g.o.BackgroundColor = &c; return g }
func (g Grid) BorderColor(c element.Color) Grid     { g.o.BorderColor = &c; return g }
func (g Grid) BorderWidth(w float64) Grid           { g.o.BorderWidth = &w; return g }
func (g Grid) Left(c element.Coord) Grid            { g.o.Left = &c; return g }
func (g Grid) Top(c element.Coord) Grid             { g.o.Top = &c; return g }
func (g Grid) Right(c element.Coord) Grid           { g.o.Right = &c; return g }
func (g Grid) Bottom(c element.Coord) Grid          { g.o.Bottom = &c; return g }
func (g Grid) MarshalJSON() ([]byte, error)         { return element.Marshal(g.o) }
func (g *Grid) UnmarshalJSON(b []byte) error        { return element.Decode(b, &g.o) }

// ─── Grid3D ───────────────────────────────────────────────────────────────────

// ViewControl sets the camera of a 3D grid.
type ViewControl struct {
	Projection        *string  `json:"projection,omitempty"`
	AutoRotate        *bool    `json:"autoRotate,omitempty"`
	Distance          *float64 `json:"distance,omitempty"`
	Alpha             *float64 `json:"alpha,omitempty"`
	Beta              *float64 `json:"beta,omitempty"`
	RotateSensitivity *float64 `json:"rotateSensitivity,omitempty"`
}

type grid3DFields struct {
	Show        *bool        `json:"show,omitempty"`
	BoxWidth    *float64     `json:"boxWidth,omitempty"`
	BoxHeight   *float64     `json:"boxHeight,omitempty"`
	BoxDepth    *float64     `json:"boxDepth,omitempty"`
	ViewControl *ViewControl `json:"viewControl,omitempty"`
}

// Grid3D is the box holding the 3D cartesian axes.
type Grid3D struct{ o grid3DFields }

func NewGrid3D() Grid3D { return Grid3D{} }

func (g Grid3D) Show(b bool) Grid3D               { g.o.Show = &b; return g }
func (g Grid3D) BoxWidth(w float64) Grid3D        { g.o.BoxWidth = &w; return g }
func (g Grid3D) BoxHeight(h float64) Grid3D       { g.o.BoxHeight = &h; return g }
func (g Grid3D) BoxDepth(d float64) Grid3D        { g.o.BoxDepth = &d; return g }
func (g Grid3D) ViewControl(v ViewControl) Grid3D { g.o.ViewControl = &v; return g }
func (g Grid3D) MarshalJSON() ([]byte, error)     { return element.Marshal(g.o) }
func (g *Grid3D) UnmarshalJSON(b []byte) error    { return element.Decode(b, &g.o) }
