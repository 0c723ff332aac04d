package component

// ─── GeoMap ───────────────────────────────────────────────────────────────────

// GeoMapSource is the format of a registered map's definition.
type GeoMapSource string

const (
	GeoMapGeoJSON GeoMapSource = "geoJSON"
	GeoMapSVG     GeoMapSource = "svg"
)

// SpecialArea draws one region of a map in a box of its own, the way Alaska
// and Hawaii are usually moved next to the contiguous United States.
type SpecialArea struct {
	Left  float64 `json:"left"`
	Top   float64 `json:"top"`
	Width float64 `json:"width,omitempty"`
}

// GeoMap is a named map the renderer registers before drawing. It travels
// with a chart but is not part of the option document.
type GeoMap struct {
	name    string
	source  GeoMapSource
	data    string
	special map[string]SpecialArea
}

// NewGeoJSONMap defines map name from a GeoJSON document.
func NewGeoJSONMap(name, geoJSON string) GeoMap {
	return GeoMap{name: name, source: GeoMapGeoJSON, data: geoJSON}
}

// NewSVGMap defines map name from an SVG document.
func NewSVGMap(name, svg string) GeoMap {
	return GeoMap{name: name, source: GeoMapSVG, data: svg}
}

// SpecialArea places region in its own box.
func (m GeoMap) SpecialArea(region string, a SpecialArea) GeoMap {
	special := make(map[string]SpecialArea, len(m.special)+1)
	for k, v := range m.special {
		special[k] = v
	}
	special[region] = a
	m.special = special
	return m
}

func (m GeoMap) Name() string         { return m.name }
func (m GeoMap) Source() GeoMapSource { return m.source }
func (m GeoMap) Definition() string   { return m.data }

// SpecialAreas returns a copy of the relocated regions.
func (m GeoMap) SpecialAreas() map[string]SpecialArea {
	out := make(map[string]SpecialArea, len(m.special))
	for k, v := range m.special {
		out[k] = v
	}
	return out
}
