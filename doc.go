// Package shapecalc is a small geometry toolkit: validated shape values,
// their area and volume, and totals over mixed collections.
//
// 🚀 What is in shapecalc?
//
//	  • geometry/            — Shape contract, Circle/Square/Triangle/Cube,
//	                           fail-fast validation, TotalArea/TotalVolume/Summarize,
//	                           CalculateArea/CalculateVolume fallback adapter
//	  • internal/shapefile/  — YAML shape documents → []geometry.Shape
//	  • internal/config/     — koanf settings (defaults, file, env, flags)
//	  • internal/logger/     — zap logger construction
//	  • internal/cli/        — cobra commands: area, volume, total, version
//	  • cmd/shapecalc/       — the binary
//
// ✨ Guarantees:
//
//   - No invalid shape escapes a constructor: every dimension must be > 0 and finite.
//   - Errors are sentinels (errors.Is) with a structured *geometry.ValidationError.
//   - Aggregation is single-pass, ordered, non-mutating and never re-validates.
//
// Quick look:
//
//	$ shapecalc area circle 5 -o plain
//	78.5398
//	$ shapecalc total -f shapes.yaml
//
//	go get github.com/katalvlaran/shapecalc/geometry
package shapecalc
