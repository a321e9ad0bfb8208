// SPDX-License-Identifier: MIT
// Package: shapecalc/geometry
//
// aggregate.go — sums over ordered collections of shapes.
//
// Contract:
//   • Elements are visited exactly once, in slice order.
//   • The input slice is never mutated and never re-validated: validation
//     already happened in the constructors.
//   • Empty or nil input yields 0.
//   • A nil interface element is a programmer error and panics.
//
// The functions are generic over the element type so []Shape, []Circle and
// any other slice of Shape implementations are accepted without copying.

package geometry

// TotalArea returns Σ shape.Area() over shapes.
// Complexity: O(n) time, O(1) space.
func TotalArea[S Shape](shapes []S) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Area()
	}

	return total
}

// TotalVolume returns Σ shape.Volume() over shapes.
// Complexity: O(n) time, O(1) space.
func TotalVolume[S Shape](shapes []S) float64 {
	var total float64
	for _, s := range shapes {
		total += s.Volume()
	}

	return total
}

// KindTotals accumulates the shapes of one variant.
type KindTotals struct {
	Count  int
	Area   float64
	Volume float64
}

// Summary is the single-pass report produced by Summarize.
type Summary struct {
	Count       int
	TotalArea   float64
	TotalVolume float64
	// ByKind groups shapes implementing Kinded; other shapes only count
	// towards the totals above.
	ByKind map[Kind]KindTotals
}

// Summarize computes count, total area, total volume and per-kind totals
// in one pass. Totals equal TotalArea(shapes) and TotalVolume(shapes)
// because the summation order is the same.
// Complexity: O(n) time, O(k) space for k distinct kinds.
func Summarize[S Shape](shapes []S) Summary {
	sum := Summary{ByKind: make(map[Kind]KindTotals)}
	for _, s := range shapes {
		a, v := s.Area(), s.Volume()
		sum.Count++
		sum.TotalArea += a
		sum.TotalVolume += v

		k, ok := any(s).(Kinded)
		if !ok {
			continue
		}
		kt := sum.ByKind[k.Kind()]
		kt.Count++
		kt.Area += a
		kt.Volume += v
		sum.ByKind[k.Kind()] = kt
	}

	return sum
}
