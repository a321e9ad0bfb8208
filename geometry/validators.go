// SPDX-License-Identifier: MIT
// Package: shapecalc/geometry
//
// validators.go — the single positivity rule shared by every variant.
//
// The rule is applied per field, independently, inside each constructor and
// inside Validate. NaN fails because NaN > 0 is false and +Inf is rejected,
// so every accepted dimension is finite. Results are plain float64 products:
// a large finite dimension may still overflow to +Inf.

package geometry

import "math"

// requirePositive returns nil when v is strictly positive and finite,
// otherwise a *ValidationError tagged with kind and field.
// Complexity: O(1), no allocation on the success path.
func requirePositive(kind Kind, field string, v float64) error {
	if v > 0 && !math.IsInf(v, 1) {
		return nil
	}

	return &ValidationError{Shape: kind, Field: field, Value: v}
}
