package element

import "encoding/json"

// MarkKind selects a statistic a mark is placed at.
type MarkKind string

const (
	MarkMin     MarkKind = "min"
	MarkMax     MarkKind = "max"
	MarkAverage MarkKind = "average"
	MarkMedian  MarkKind = "median"
)

// MarkPointData positions one mark point, either at a statistic or at an
// explicit coordinate.
type MarkPointData struct {
	Type  *MarkKind `json:"type,omitempty"`
	Name  *string   `json:"name,omitempty"`
	Coord []Coord   `json:"coord,omitempty"`
	Value *float64  `json:"value,omitempty"`
	XAxis *Coord    `json:"xAxis,omitempty"`
	YAxis *Coord    `json:"yAxis,omitempty"`
}

// MarkLineData positions one mark line.
type MarkLineData struct {
	Type  *MarkKind `json:"type,omitempty"`
	Name  *string   `json:"name,omitempty"`
	XAxis *Coord    `json:"xAxis,omitempty"`
	YAxis *Coord    `json:"yAxis,omitempty"`
}

// MarkAreaEdge is one corner of a mark area.
type MarkAreaEdge struct {
	Name  *string `json:"name,omitempty"`
	XAxis *Coord  `json:"xAxis,omitempty"`
	YAxis *Coord  `json:"yAxis,omitempty"`
}

// ─── MarkPoint ────────────────────────────────────────────────────────────────

type markPointFields struct {
	Symbol     *Symbol         `json:"symbol,omitempty"`
	SymbolSize *SymbolSize     `json:"symbolSize,omitempty"`
	Label      *Label          `json:"label,omitempty"`
	ItemStyle  *ItemStyle      `json:"itemStyle,omitempty"`
	Data       []MarkPointData `json:"data,omitempty"`
}

// MarkPoint annotates individual points of a series.
type MarkPoint struct{ o markPointFields }

func NewMarkPoint() MarkPoint { return MarkPoint{} }

func (m MarkPoint) Symbol(s Symbol) MarkPoint         { m.o.Symbol = &s; return m }
func (m MarkPoint) SymbolSize(s SymbolSize) MarkPoint { m.o.SymbolSize = &s; return m }
func (m MarkPoint) Label(l Label) MarkPoint           { m.o.Label = &l; return m }
func (m MarkPoint) ItemStyle(s ItemStyle) MarkPoint   { m.o.ItemStyle = &s; return m }

// Data appends mark positions.
func (m MarkPoint) Data(d ...MarkPointData) MarkPoint {
	m.o.Data = appendCopy(m.o.Data, d...)
	return m
}

func (m MarkPoint) MarshalJSON() ([]byte, error)  { return Marshal(m.o) }
func (m *MarkPoint) UnmarshalJSON(b []byte) error { return Decode(b, &m.o) }

// ─── MarkLine ─────────────────────────────────────────────────────────────────

type markLineFields struct {
	Silent    *bool          `json:"silent,omitempty"`
	Symbol    []Symbol       `json:"symbol,omitempty"`
	Label     *Label         `json:"label,omitempty"`
	LineStyle *LineStyle     `json:"lineStyle,omitempty"`
	Data      []MarkLineData `json:"data,omitempty"`
}

// MarkLine draws reference lines across a series.
type MarkLine struct{ o markLineFields }

func NewMarkLine() MarkLine { return MarkLine{} }

func (m MarkLine) Silent(b bool) MarkLine         { m.o.Silent = &b; return m }
func (m MarkLine) Label(l Label) MarkLine         { m.o.Label = &l; return m }
func (m MarkLine) LineStyle(s LineStyle) MarkLine { m.o.LineStyle = &s; return m }

// Symbol sets the start and end symbols.
func (m MarkLine) Symbol(start, end Symbol) MarkLine {
	m.o.Symbol = []Symbol{start, end}
	return m
}

// Data appends line positions.
func (m MarkLine) Data(d ...MarkLineData) MarkLine {
	m.o.Data = appendCopy(m.o.Data, d...)
	return m
}

func (m MarkLine) MarshalJSON() ([]byte, error)  { return Marshal(m.o) }
func (m *MarkLine) UnmarshalJSON(b []byte) error { return Decode(b, &m.o) }

// ─── MarkArea ─────────────────────────────────────────────────────────────────

type markAreaFields struct {
	Silent    *bool             `json:"silent,omitempty"`
	Label     *Label            `json:"label,omitempty"`
	ItemStyle *ItemStyle        `json:"itemStyle,omitempty"`
	Data      [][2]MarkAreaEdge `json:"data,omitempty"`
}

// MarkArea shades a rectangular region of the plot.
type MarkArea struct{ o markAreaFields }

func NewMarkArea() MarkArea { return MarkArea{} }

func (m MarkArea) Silent(b bool) MarkArea         { m.o.Silent = &b; return m }
func (m MarkArea) Label(l Label) MarkArea         { m.o.Label = &l; return m }
func (m MarkArea) ItemStyle(s ItemStyle) MarkArea { m.o.ItemStyle = &s; return m }

// Area appends a region spanning from one corner to the other.
func (m MarkArea) Area(from, to MarkAreaEdge) MarkArea {
	m.o.Data = appendCopy(m.o.Data, [2]MarkAreaEdge{from, to})
	return m
}

func (m MarkArea) MarshalJSON() ([]byte, error)  { return Marshal(m.o) }
func (m *MarkArea) UnmarshalJSON(b []byte) error { return Decode(b, &m.o) }

// ─── DimensionEncode ──────────────────────────────────────────────────────────

// Dims is a list of dataset dimension names. One name is written as a bare
// string, several as an array.
type Dims []string

func (d Dims) MarshalJSON() ([]byte, error) {
	if len(d) == 1 {
		return Marshal(d[0])
	}
	return Marshal([]string(d))
}

func (d *Dims) UnmarshalJSON(b []byte) error {
	if firstByte(b) == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*d = Dims{s}
		return nil
	}
	var ss []string
	if err := json.Unmarshal(b, &ss); err != nil {
		return err
	}
	*d = ss
	return nil
}

// DimensionEncode maps dataset dimensions onto visual channels.
type DimensionEncode struct {
	X          Dims `json:"x,omitempty"`
	Y          Dims `json:"y,omitempty"`
	Z          Dims `json:"z,omitempty"`
	ItemName   Dims `json:"itemName,omitempty"`
	Value      Dims `json:"value,omitempty"`
	Tooltip    Dims `json:"tooltip,omitempty"`
	SeriesName Dims `json:"seriesName,omitempty"`
}
