package datatype

import (
	"encoding/json"
	"fmt"

	"github.com/derickschaefer/chartspec/pkg/element"
)

// Num converts a Go number: integer kinds become Int, float kinds Float.
// Unsigned values past the int64 range become Float rather than wrapping.
func Num[T Number](v T) Value {
	if isFloat[T]() {
		return Float(v)
	}
	if i := int64(v); i >= 0 || v < 0 {
		return Int(i)
	}
	return Float(float64(v))
}

func isFloat[T Number]() bool {
	one := T(1)
	return one/2 != 0
}

// Values builds a frame of bare numbers.
func Values[T Number](vs ...T) DataFrame {
	var df DataFrame
	for _, v := range vs {
		df = append(df, Num(v))
	}
	return df
}

// Rows builds a frame of numeric tuples, one Array per row.
func Rows[T Number](rows ...[]T) DataFrame {
	var df DataFrame
	for _, row := range rows {
		arr := make(Array, len(row))
		for i, v := range row {
			arr[i] = Num(v)
		}
		df = append(df, arr)
	}
	return df
}

// Strings builds a frame of labels.
func Strings(ss ...string) DataFrame {
	var df DataFrame
	for _, s := range ss {
		df = append(df, String(s))
	}
	return df
}

// Tuple builds an Array from already converted values.
func Tuple(vs ...Value) Array { return Array(append([]Value(nil), vs...)) }

// Frame collects points into a frame.
func Frame(points ...DataPoint) DataFrame {
	if len(points) == 0 {
		return nil
	}
	return append(DataFrame(nil), points...)
}

// Named builds an Item holding v with a display name, the usual shape of pie
// and funnel data.
func Named[T Number](v T, name string) Item {
	return NewItem().Value(Num(v)).Name(name)
}

// ─── Item ─────────────────────────────────────────────────────────────────────

// Item is a data point carrying its own name and styling. Hierarchical series
// nest further points under children.
type Item struct {
	value      Value
	name       *string
	itemStyle  *element.ItemStyle
	label      *element.Label
	symbol     *element.Symbol
	symbolSize *element.SymbolSize
	children   DataFrame
}

type itemWire struct {
	Value      json.RawMessage     `json:"value,omitempty"`
	Name       *string             `json:"name,omitempty"`
	ItemStyle  *element.ItemStyle  `json:"itemStyle,omitempty"`
	Label      *element.Label      `json:"label,omitempty"`
	Symbol     *element.Symbol     `json:"symbol,omitempty"`
	SymbolSize *element.SymbolSize `json:"symbolSize,omitempty"`
	Children   DataFrame           `json:"children,omitempty"`
}

func NewItem() Item { return Item{} }

func (it Item) Value(v Value) Item                   { it.value = v; return it }
func (it Item) Name(n string) Item                   { it.name = &n; return it }
func (it Item) ItemStyle(s element.ItemStyle) Item   { it.itemStyle = &s; return it }
func (it Item) Label(l element.Label) Item           { it.label = &l; return it }
func (it Item) Symbol(s element.Symbol) Item         { it.symbol = &s; return it }
func (it Item) SymbolSize(s element.SymbolSize) Item { it.symbolSize = &s; return it }

// Children appends nested points, used by tree, treemap and sunburst data.
func (it Item) Children(points ...DataPoint) Item {
	it.children = append(append(DataFrame(nil), it.children...), points...)
	return it
}

// ItemChildren returns a copy of the nested points.
func (it Item) ItemChildren() DataFrame { return it.children.Clone() }

// ItemValue returns the wrapped value, nil when unset.
func (it Item) ItemValue() Value { return it.value }

// ItemName returns the display name, "" when unset.
func (it Item) ItemName() string {
	if it.name == nil {
		return ""
	}
	return *it.name
}

func (it Item) MarshalJSON() ([]byte, error) {
	w := itemWire{
		Name:       it.name,
		ItemStyle:  it.itemStyle,
		Label:      it.label,
		Symbol:     it.symbol,
		SymbolSize: it.symbolSize,
		Children:   it.children,
	}
	if it.value != nil {
		raw, err := element.Marshal(it.value)
		if err != nil {
			return nil, err
		}
		w.Value = raw
	}
	return element.Marshal(w)
}

func (it *Item) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := element.Decode(data, &w); err != nil {
		return err
	}
	out := Item{
		name:       w.Name,
		itemStyle:  w.ItemStyle,
		label:      w.Label,
		symbol:     w.Symbol,
		symbolSize: w.SymbolSize,
		children:   w.Children,
	}
	if len(w.Value) > 0 && string(w.Value) != "null" {
		v, err := DecodeValue(w.Value)
		if err != nil {
			return fmt.Errorf("value: %w", err)
		}
		out.value = v
	}
	*it = out
	return nil
}

// ─── Dataset ──────────────────────────────────────────────────────────────────

type datasetFields struct {
	ID           *string  `json:"id,omitempty"`
	Dimensions   []string `json:"dimensions,omitempty"`
	Source       []Array  `json:"source,omitempty"`
	SourceHeader *bool    `json:"sourceHeader,omitempty"`
}

// Dataset is tabular source data shared by several series through encode
// mappings.
type Dataset struct{ o datasetFields }

func NewDataset() Dataset { return Dataset{} }

func (d Dataset) ID(id string) Dataset        { d.o.ID = &id; return d }
func (d Dataset) SourceHeader(b bool) Dataset { d.o.SourceHeader = &b; return d }

// Dimensions appends dimension names.
func (d Dataset) Dimensions(names ...string) Dataset {
	d.o.Dimensions = append(append([]string(nil), d.o.Dimensions...), names...)
	return d
}

// Row appends one source row.
func (d Dataset) Row(vs ...Value) Dataset {
	d.o.Source = append(append([]Array(nil), d.o.Source...), Tuple(vs...))
	return d
}

// Source returns a copy of the source rows.
func (d Dataset) Source() []Array { return append([]Array(nil), d.o.Source...) }

func (d Dataset) MarshalJSON() ([]byte, error)  { return element.Marshal(d.o) }
func (d *Dataset) UnmarshalJSON(b []byte) error { return element.Decode(b, &d.o) }
