// Package geometry models validated geometric shapes and the calculations
// over them: area, volume and totals across heterogeneous collections.
//
// 🚀 What is in here?
//
//	A tiny, closed catalogue of immutable value types:
//	  • Circle   — radius;        Area π·r²,     Volume (4/3)·π·r³ (sphere)
//	  • Square   — side;          Area side²,    Volume side³ (cube)
//	  • Triangle — base, height;  Area b·h/2,    Volume (b·h/2)·b (prism)
//	  • Cube     — side;          Area 6·side²,  Volume side³
//
//	All of them satisfy the Shape interface (Area, Volume).
//
// ✨ Key guarantees:
//   - fail-fast construction: NewCircle/NewSquare/NewTriangle/NewCube reject
//     any dimension that is not strictly positive and finite with a
//     *ValidationError (errors.Is(err, ErrValidation) == true)
//   - no invalid instance escapes a constructor; fields are unexported
//   - TotalArea / TotalVolume / Summarize visit each element once, in order,
//     without re-validating
//   - CalculateArea / CalculateVolume are an opt-in non-failing adapter that
//     returns 0 and logs a zap diagnostic instead of returning an error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/shapecalc/geometry"
//
//	c, err := geometry.NewCircle(5)
//	if err != nil {
//	  var ve *geometry.ValidationError
//	  if errors.As(err, &ve) { /* ve.Field, ve.Value */ }
//	}
//	shapes := []geometry.Shape{c, geometry.MustSquare(4)}
//	fmt.Println(geometry.TotalArea(shapes))
//
// Volume of the 2-D variants reuses their single linear dimension (sphere,
// cube, prism extruded by base). These conventions are deliberate and are
// kept exactly.
//
// See example_test.go for runnable examples.
package geometry
