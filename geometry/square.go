// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Square is an immutable square with a strictly positive side.
// Volume interprets the square as the cube of the same side.
type Square struct {
	side float64
}

// NewSquare returns a Square or a *ValidationError when side <= 0.
func NewSquare(side float64) (Square, error) {
	if err := requirePositive(KindSquare, FieldSide, side); err != nil {
		return Square{}, err
	}

	return Square{side: side}, nil
}

// MustSquare is like NewSquare but panics on invalid input.
func MustSquare(side float64) Square {
	s, err := NewSquare(side)
	if err != nil {
		panic(err)
	}

	return s
}

// Side returns the side length.
func (s Square) Side() float64 { return s.side }

// Area returns side².
func (s Square) Area() float64 {
	return s.side * s.side
}

// Volume returns side³.
func (s Square) Volume() float64 {
	return s.side * s.side * s.side
}

// Kind reports KindSquare.
func (Square) Kind() Kind { return KindSquare }

// Validate re-checks the side invariant.
func (s Square) Validate() error {
	return requirePositive(KindSquare, FieldSide, s.side)
}

func (s Square) String() string {
	return fmt.Sprintf("%s(%s=%g)", KindSquare, FieldSide, s.side)
}
