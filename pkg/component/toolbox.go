package component

import (
	"encoding/json"
	"fmt"

	"github.com/derickschaefer/chartspec/pkg/element"
)

// ─── SaveAsImage ──────────────────────────────────────────────────────────────

// SaveAsImageType is the image format of the save-as-image button.
type SaveAsImageType string

const (
	SaveAsPNG  SaveAsImageType = "png"
	SaveAsJPEG SaveAsImageType = "jpeg"
	SaveAsSVG  SaveAsImageType = "svg"
)

// UnmarshalJSON accepts only the three formats the engine can export.
func (t *SaveAsImageType) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	switch v := SaveAsImageType(s); v {
	case SaveAsPNG, SaveAsJPEG, SaveAsSVG:
		*t = v
		return nil
	}
	return fmt.Errorf("saveAsImage: unsupported type %q", s)
}

type saveAsImageFields struct {
	Show            *bool            `json:"show,omitempty"`
	Type            *SaveAsImageType `json:"type,omitempty"`
	Name            *string          `json:"name,omitempty"`
	Title           *string          `json:"title,omitempty"`
	BackgroundColor *element.Color   `json:"backgroundColor,omitempty"`
	PixelRatio      *float64         `json:"pixelRatio,omitempty"`
}

// SaveAsImage is the toolbox button that exports the chart as an image.
type SaveAsImage struct{ o saveAsImageFields }

func NewSaveAsImage() SaveAsImage { return SaveAsImage{} }

func (s SaveAsImage) Show(b bool) SaveAsImage                     { s.o.Show = &b; return s }
func (s SaveAsImage) Type(t SaveAsImageType) SaveAsImage          { s.o.Type = &t; return s }
func (s SaveAsImage) Name(n string) SaveAsImage                   { s.o.Name = &n; return s }
func (s SaveAsImage) Title(t string) SaveAsImage                  { s.o.Title = &t; return s }
func (s SaveAsImage) BackgroundColor(c element.Color) SaveAsImage { s.o.BackgroundColor = &c; return s }
func (s SaveAsImage) PixelRatio(r float64) SaveAsImage            { s.o.PixelRatio = &r; return s }
func (s SaveAsImage) MarshalJSON() ([]byte, error)                { return element.Marshal(s.o) }
func (s *SaveAsImage) UnmarshalJSON(b []byte) error               { return element.Decode(b, &s.o) }

// ─── Feature ──────────────────────────────────────────────────────────────────

// ToolButton is a toolbox button with no options beyond visibility.
type ToolButton struct {
	Show  *bool   `json:"show,omitempty"`
	Title *string `json:"title,omitempty"`
}

// DataView is the toolbox button that shows the raw data table.
type DataView struct {
	Show     *bool `json:"show,omitempty"`
	ReadOnly *bool `json:"readOnly,omitempty"`
}

// MagicType is the toolbox button that switches series between chart types.
type MagicType struct {
	Show *bool    `json:"show,omitempty"`
	Type []string `json:"type,omitempty"`
}

// ZoomButton is the toolbox button that toggles area zooming.
type ZoomButton struct {
	Show       *bool `json:"show,omitempty"`
	YAxisIndex *bool `json:"yAxisIndex,omitempty"`
}

type featureFields struct {
	SaveAsImage *SaveAsImage `json:"saveAsImage,omitempty"`
	Restore     *ToolButton  `json:"restore,omitempty"`
	DataView    *DataView    `json:"dataView,omitempty"`
	DataZoom    *ZoomButton  `json:"dataZoom,omitempty"`
	MagicType   *MagicType   `json:"magicType,omitempty"`
}

// Feature is the set of toolbox buttons.
type Feature struct{ o featureFields }

func NewFeature() Feature { return Feature{} }

func (f Feature) SaveAsImage(s SaveAsImage) Feature { f.o.SaveAsImage = &s; return f }
func (f Feature) Restore(b ToolButton) Feature      { f.o.Restore = &b; return f }
func (f Feature) DataView(d DataView) Feature       { f.o.DataView = &d; return f }
func (f Feature) DataZoom(z ZoomButton) Feature     { f.o.DataZoom = &z; return f }
func (f Feature) MagicType(m MagicType) Feature     { f.o.MagicType = &m; return f }
func (f Feature) MarshalJSON() ([]byte, error)      { return element.Marshal(f.o) }
func (f *Feature) UnmarshalJSON(b []byte) error     { return element.Decode(b, &f.o) }

// ─── Toolbox ──────────────────────────────────────────────────────────────────

type toolboxFields struct {
	ID       *string         `json:"id,omitempty"`
	Show     *bool           `json:"show,omitempty"`
	Orient   *element.Orient `json:"orient,omitempty"`
	ItemSize *float64        `json:"itemSize,omitempty"`
	ItemGap  *float64        `json:"itemGap,omitempty"`
	Feature  *Feature        `json:"feature,omitempty"`
	Box
}

// Toolbox is the row of utility buttons above the chart.
type Toolbox struct{ o toolboxFields }

func NewToolbox() Toolbox { return Toolbox{} }

func (t Toolbox) ID(id string) Toolbox            { t.o.ID = &id; return t }
func (t Toolbox) Show(b bool) Toolbox             { t.o.Show = &b; return t }
func (t Toolbox) Orient(o element.Orient) Toolbox { t.o.Orient = &o; return t }
func (t Toolbox) ItemSize(s float64) Toolbox      { t.o.ItemSize = &s; return t }
func (t Toolbox) ItemGap(g float64) Toolbox       { t.o.ItemGap = &g; return t }
func (t Toolbox) Feature(f Feature) Toolbox       { t.o.Feature = &f; return t }
func (t Toolbox) Left(c element.Coord) Toolbox    { t.o.Left = &c; return t }
func (t Toolbox) Top(c element.Coord) Toolbox     { t.o.Top = &c; return t }
func (t Toolbox) Right(c element.Coord) Toolbox   { t.o.Right = &c; return t }
func (t Toolbox) Bottom(c element.Coord) Toolbox  { t.o.Bottom = &c; return t }

// SaveAsImageType reports the export format configured on the save-as-image
// button, if any.
func (t Toolbox) SaveAsImageType() (SaveAsImageType, bool) {
	f := t.o.Feature
	if f == nil || f.o.SaveAsImage == nil || f.o.SaveAsImage.o.Type == nil {
		return "", false
	}
	return *f.o.SaveAsImage.o.Type, true
}

func (t Toolbox) MarshalJSON() ([]byte, error)  { return element.Marshal(t.o) }
func (t *Toolbox) UnmarshalJSON(b []byte) error { return element.Decode(b, &t.o) }
