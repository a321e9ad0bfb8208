// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Cube is an immutable cube with a strictly positive side.
// Unlike Square, Area is the total surface area of the solid.
type Cube struct {
	side float64
}

// NewCube returns a Cube or a *ValidationError when side <= 0.
func NewCube(side float64) (Cube, error) {
	if err := requirePositive(KindCube, FieldSide, side); err != nil {
		return Cube{}, err
	}

	return Cube{side: side}, nil
}

// MustCube is like NewCube but panics on invalid input.
func MustCube(side float64) Cube {
	c, err := NewCube(side)
	if err != nil {
		panic(err)
	}

	return c
}

// Side returns the edge length.
func (c Cube) Side() float64 { return c.side }

// Area returns the surface area 6·side².
func (c Cube) Area() float64 {
	return 6 * (c.side * c.side)
}

// Volume returns side³.
func (c Cube) Volume() float64 {
	return c.side * c.side * c.side
}

// Kind reports KindCube.
func (Cube) Kind() Kind { return KindCube }

// Validate re-checks the side invariant.
func (c Cube) Validate() error {
	return requirePositive(KindCube, FieldSide, c.side)
}

func (c Cube) String() string {
	return fmt.Sprintf("%s(%s=%g)", KindCube, FieldSide, c.side)
}
