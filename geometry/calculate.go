// SPDX-License-Identifier: MIT
// Package: shapecalc/geometry
//
// calculate.go — the fallible-to-default adapter.
//
// CalculateArea and CalculateVolume never return an error: a nil shape (an
// untyped nil or a nil pointer such as (*Circle)(nil)) or a shape whose
// Validate fails yields 0 and one Warn-level diagnostic.
// They sit on top of the strict API and hide invalid input, so prefer the
// constructors and methods unless a non-failing numeric API is required.

package geometry

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// CalculateArea returns s.Area(), or 0 with a logged diagnostic when s is
// nil or fails validation (e.g. a zero-value Circle{}).
func CalculateArea(s Shape, opts ...Option) float64 {
	if !usable("CalculateArea", s, opts) {
		return 0
	}

	return s.Area()
}

// CalculateVolume returns s.Volume(), or 0 with a logged diagnostic when s
// is nil or fails validation.
func CalculateVolume(s Shape, opts ...Option) float64 {
	if !usable("CalculateVolume", s, opts) {
		return 0
	}

	return s.Volume()
}

// usable checks s and logs the reason when it cannot be measured.
func usable(op string, s Shape, opts []Option) bool {
	err := checkShape(s)
	if err == nil {
		return true
	}
	cfg := newCalcConfig(opts...)
	cfg.logger.Warn("shape validation failed",
		zap.String("op", op),
		zap.String("shape", describe(s)),
		zap.Error(err),
	)

	return false
}

// checkShape returns ErrNilShape for nil and the Validate result for
// shapes implementing Validator. Other shapes are accepted as-is.
func checkShape(s Shape) error {
	if isNil(s) {
		return ErrNilShape
	}
	if v, ok := s.(Validator); ok {
		return v.Validate()
	}

	return nil
}

// isNil reports whether s is nil or holds a nil pointer, map, slice, func
// or chan. Methods on such values would dereference nil.
func isNil(s Shape) bool {
	if s == nil {
		return true
	}
	switch v := reflect.ValueOf(s); v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// describe renders s for diagnostics.
func describe(s Shape) string {
	if s != nil && isNil(s) {
		return fmt.Sprintf("%T(nil)", s)
	}
	switch v := s.(type) {
	case nil:
		return "<nil>"
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%T", s)
	}
}
