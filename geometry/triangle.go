// SPDX-License-Identifier: MIT

package geometry

import "fmt"

// Triangle is an immutable triangle described by base and height.
//
// Volume models a triangular prism whose extrusion length equals the base:
//
//	V = (base·height/2) · base
//
// This is the exact formula the calculator has always used; it is not the
// general prism volume and must not be "corrected".
type Triangle struct {
	base   float64
	height float64
}

// NewTriangle returns a Triangle or a *ValidationError. base is checked
// before height; the first failing field is reported.
func NewTriangle(base, height float64) (Triangle, error) {
	if err := requirePositive(KindTriangle, FieldBase, base); err != nil {
		return Triangle{}, err
	}
	if err := requirePositive(KindTriangle, FieldHeight, height); err != nil {
		return Triangle{}, err
	}

	return Triangle{base: base, height: height}, nil
}

// MustTriangle is like NewTriangle but panics on invalid input.
func MustTriangle(base, height float64) Triangle {
	t, err := NewTriangle(base, height)
	if err != nil {
		panic(err)
	}

	return t
}

// Base returns the base length.
func (t Triangle) Base() float64 { return t.base }

// Height returns the height.
func (t Triangle) Height() float64 { return t.height }

// Area returns base·height/2.
func (t Triangle) Area() float64 {
	return (t.base * t.height) / 2
}

// Volume returns (base·height/2)·base.
func (t Triangle) Volume() float64 {
	return (t.base * t.height) / 2 * t.base
}

// Kind reports KindTriangle.
func (Triangle) Kind() Kind { return KindTriangle }

// Validate re-checks both invariants in constructor order.
func (t Triangle) Validate() error {
	if err := requirePositive(KindTriangle, FieldBase, t.base); err != nil {
		return err
	}

	return requirePositive(KindTriangle, FieldHeight, t.height)
}

func (t Triangle) String() string {
	return fmt.Sprintf("%s(%s=%g, %s=%g)", KindTriangle, FieldBase, t.base, FieldHeight, t.height)
}
