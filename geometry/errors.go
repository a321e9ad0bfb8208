// SPDX-License-Identifier: MIT
// Package: shapecalc/geometry
//
// errors.go — sentinel errors and the structured validation error.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX); never compare strings.
//   • Every constructor failure is a *ValidationError that unwraps to
//     ErrValidation, so errors.As exposes the offending field and value.
//   • Only the fallback calculators (CalculateArea/CalculateVolume) swallow
//     errors; everything else returns them.

package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrValidation indicates a geometric parameter violated the
	// "strictly positive and finite" rule at construction time.
	ErrValidation = errors.New("geometry: validation failed")

	// ErrUnknownKind indicates a variant name or Kind outside the catalogue.
	ErrUnknownKind = errors.New("geometry: unknown shape kind")

	// ErrDimensionCount indicates New received the wrong number of dimensions
	// for the requested kind.
	ErrDimensionCount = errors.New("geometry: wrong number of dimensions")

	// ErrNilShape indicates a nil Shape was handed to a fallback calculator.
	ErrNilShape = errors.New("geometry: shape is nil")
)

// Field names reported in ValidationError.Field.
const (
	FieldRadius = "radius"
	FieldSide   = "side"
	FieldBase   = "base"
	FieldHeight = "height"
)

// ValidationError describes a single rejected geometric parameter.
type ValidationError struct {
	Shape Kind    // variant being constructed
	Field string  // one of the Field* constants
	Value float64 // rejected value as given by the caller
}

// Error renders e.g. "geometry: circle: radius must be greater than zero (got -5)".
func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	rule := "must be greater than zero"
	if math.IsInf(e.Value, 1) {
		rule = "must be finite"
	}

	return fmt.Sprintf("geometry: %s: %s %s (got %g)", e.Shape, e.Field, rule, e.Value)
}

// Unwrap ties every ValidationError to the ErrValidation sentinel.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// IsValidation reports whether err (or anything it wraps) is a validation failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
