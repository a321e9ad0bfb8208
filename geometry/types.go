// SPDX-License-Identifier: MIT
// Package: shapecalc/geometry
//
// types.go — the Shape capability contract and the variant catalogue.
//
// Contract:
//   • Shape is the only thing aggregation and the fallback calculators need.
//   • Area() and Volume() are pure and non-negative for every value built by
//     a New* constructor.
//   • Kinded and Validator are optional capabilities; every variant in this
//     package implements both, foreign Shape implementations need not.

package geometry

import (
	"fmt"
	"strings"
)

// Shape is a geometric entity exposing area and volume calculations.
type Shape interface {
	// Area returns the (surface) area of the shape.
	Area() float64
	// Volume returns the volume associated with the shape.
	Volume() float64
}

// Kinded is implemented by shapes that can report their variant.
type Kinded interface {
	Kind() Kind
}

// Validator is implemented by shapes that can re-check their invariants.
// Only the fallback calculators consult it; aggregation never re-validates.
type Validator interface {
	Validate() error
}

// Kind identifies one concrete shape variant.
//
//   - KindUnknown  — zero value, never produced by a constructor.
//   - KindCircle   — Circle (radius).
//   - KindSquare   — Square (side).
//   - KindTriangle — Triangle (base, height).
//   - KindCube     — Cube (side).
type Kind int

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota
	// KindCircle marks a Circle.
	KindCircle
	// KindSquare marks a Square.
	KindSquare
	// KindTriangle marks a Triangle.
	KindTriangle
	// KindCube marks a Cube.
	KindCube
)

// kindNames is indexed by Kind; keep in declaration order.
var kindNames = [...]string{
	KindUnknown:  "unknown",
	KindCircle:   "circle",
	KindSquare:   "square",
	KindTriangle: "triangle",
	KindCube:     "cube",
}

// Kinds returns every concrete variant in declaration order.
func Kinds() []Kind {
	return []Kind{KindCircle, KindSquare, KindTriangle, KindCube}
}

// String returns the lower-case variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}

	return kindNames[k]
}

// Dimensions returns the names of the numeric fields a variant is built from,
// in constructor argument order. Unknown kinds yield nil.
func (k Kind) Dimensions() []string {
	switch k {
	case KindCircle:
		return []string{FieldRadius}
	case KindSquare, KindCube:
		return []string{FieldSide}
	case KindTriangle:
		return []string{FieldBase, FieldHeight}
	default:
		return nil
	}
}

// ParseKind maps a variant name ("circle", " Cube ", ...) to its Kind.
// Matching is case-insensitive; surrounding whitespace is ignored.
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds() {
		if kindNames[k] == name {
			return k, nil
		}
	}

	return KindUnknown, fmt.Errorf("ParseKind(%q): %w", s, ErrUnknownKind)
}

// New builds a shape of the given kind from dims, in the order reported by
// k.Dimensions(). It is the dynamic counterpart of the typed constructors
// and applies the same validation.
func New(k Kind, dims ...float64) (Shape, error) {
	want := k.Dimensions()
	if want == nil {
		return nil, fmt.Errorf("New(%s): %w", k, ErrUnknownKind)
	}
	if len(dims) != len(want) {
		return nil, fmt.Errorf("New(%s): want %d dimension(s) %v, got %d: %w",
			k, len(want), want, len(dims), ErrDimensionCount)
	}

	var (
		s   Shape
		err error
	)
	switch k {
	case KindCircle:
		s, err = NewCircle(dims[0])
	case KindSquare:
		s, err = NewSquare(dims[0])
	case KindTriangle:
		s, err = NewTriangle(dims[0], dims[1])
	default:
		s, err = NewCube(dims[0])
	}
	if err != nil {
		// never hand out an invalid zero-value variant behind a non-nil interface
		return nil, err
	}

	return s, nil
}
