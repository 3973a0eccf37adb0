package domain

import "fmt"

// Plank is a value object describing a single hull plank. Two planks
// are interchangeable whenever all their fields are equal; a plank
// carries no identity of its own.
type Plank struct {
	Material string  `json:"material"`
	Length   float64 `json:"length"`
	Width    float64 `json:"width"`
}

// NewPlank validates the fields and returns a plank.
func NewPlank(material string, length, width float64) (Plank, error) {
	if material == "" {
		return Plank{}, fmt.Errorf("%w: plank material cannot be empty", ErrValidation)
	}
	if length <= 0 {
		return Plank{}, fmt.Errorf("%w: plank length must be positive, got %v", ErrValidation, length)
	}
	if width <= 0 {
		return Plank{}, fmt.Errorf("%w: plank width must be positive, got %v", ErrValidation, width)
	}

	return Plank{Material: material, Length: length, Width: width}, nil
}

// Equal reports whether both planks carry the same fields.
func (p Plank) Equal(other Plank) bool {
	return p == other
}

// Area returns the plank's surface area.
func (p Plank) Area() float64 {
	return p.Length * p.Width
}
