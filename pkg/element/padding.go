package element

import "errors"

// PaddingShape identifies which Padding variant is active. The numeric value
// equals the number of elements on the wire.
type PaddingShape int

const (
	// PaddingSingle sets all sides to one value. Encodes as a bare number.
	PaddingSingle PaddingShape = 1
	// PaddingDouble sets top/bottom to the first value and left/right to the
	// second. Encodes as [vertical, horizontal].
	PaddingDouble PaddingShape = 2
	// PaddingQuadruple sets each side separately, clockwise from the top.
	// Encodes as [top, right, bottom, left].
	PaddingQuadruple PaddingShape = 4
)

// Padding is the space around a component's content.
type Padding struct {
	shape  PaddingShape
	values [4]float64
}

// Pad returns a padding with all sides equal.
func Pad(all float64) Padding {
	return Padding{shape: PaddingSingle, values: [4]float64{all}}
}

// Pad2 returns a padding with vertical (top and bottom) and horizontal (left
// and right) values.
func Pad2(vertical, horizontal float64) Padding {
	return Padding{shape: PaddingDouble, values: [4]float64{vertical, horizontal}}
}

// Pad4 returns a padding with each side given in CSS order.
func Pad4(top, right, bottom, left float64) Padding {
	return Padding{shape: PaddingQuadruple, values: [4]float64{top, right, bottom, left}}
}

// NewPadding builds a padding from 1, 2 or 4 values. Any other count is a
// *LengthError.
func NewPadding(vs ...float64) (Padding, error) {
	switch len(vs) {
	case 1:
		return Pad(vs[0]), nil
	case 2:
		return Pad2(vs[0], vs[1]), nil
	case 4:
		return Pad4(vs[0], vs[1], vs[2], vs[3]), nil
	}
	return Padding{}, &LengthError{Type: "padding", Got: len(vs), Allowed: []int{1, 2, 4}}
}

// Shape reports the active variant. The zero Padding has shape 0.
func (p Padding) Shape() PaddingShape { return p.shape }

// Values returns the stored values in wire order.
func (p Padding) Values() []float64 {
	out := make([]float64, p.shape)
	copy(out, p.values[:p.shape])
	return out
}

// Sides expands the padding to all four sides.
func (p Padding) Sides() (top, right, bottom, left float64) {
	v := p.values
	switch p.shape {
	case PaddingSingle:
		return v[0], v[0], v[0], v[0]
	case PaddingDouble:
		return v[0], v[1], v[0], v[1]
	default:
		return v[0], v[1], v[2], v[3]
	}
}

func (p Padding) MarshalJSON() ([]byte, error) {
	if p.shape == 0 {
		return nil, errors.New("padding: zero value has no shape")
	}
	return encodeTuple(p.values[:p.shape])
}

func (p *Padding) UnmarshalJSON(data []byte) error {
	vs, err := decodeTuple(data, "padding", 1, 2, 4)
	if err != nil {
		return err
	}
	np, err := NewPadding(vs...)
	if err != nil {
		return err
	}
	*p = np
	return nil
}
