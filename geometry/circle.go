// SPDX-License-Identifier: MIT

package geometry

import (
	"fmt"
	"math"
)

// Circle is an immutable circle of a strictly positive radius.
//
// Volume treats the circle as the sphere of the same radius (the solid of
// revolution), so Circle can take part in volume aggregation.
//
// The zero value is not a valid Circle; build one with NewCircle.
type Circle struct {
	radius float64
}

// NewCircle returns a Circle or a *ValidationError when radius <= 0.
func NewCircle(radius float64) (Circle, error) {
	if err := requirePositive(KindCircle, FieldRadius, radius); err != nil {
		return Circle{}, err
	}

	return Circle{radius: radius}, nil
}

// MustCircle is like NewCircle but panics on invalid input.
func MustCircle(radius float64) Circle {
	c, err := NewCircle(radius)
	if err != nil {
		panic(err)
	}

	return c
}

// Radius returns the circle radius.
func (c Circle) Radius() float64 { return c.radius }

// Area returns π·r².
func (c Circle) Area() float64 {
	return math.Pi * c.radius * c.radius
}

// Volume returns (4/3)·π·r³, the volume of the sphere with radius r.
func (c Circle) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * c.radius * c.radius * c.radius
}

// Kind reports KindCircle.
func (Circle) Kind() Kind { return KindCircle }

// Validate re-checks the radius invariant.
func (c Circle) Validate() error {
	return requirePositive(KindCircle, FieldRadius, c.radius)
}

// String renders "circle(radius=5)".
func (c Circle) String() string {
	return fmt.Sprintf("%s(%s=%g)", KindCircle, FieldRadius, c.radius)
}
