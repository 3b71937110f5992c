// Package arbiter is your in-memory toolbox for randomized value
// generation — from boundary-hunting primitives to composed containers,
// big numbers and synthesized functions for property-style tests.
//
// 🚀 What is arbiter?
//
//	A small, thread-safe library that brings together:
//		• Generator engine: sized, seeded, composable value recipes
//		• Combinators: constants, ranges, weighted & uniform choice
//		• Primitive providers: full-range integers, bit-level floats, runes
//		• Big numbers: boundary-biased big.Int and precision-aware decimals
//		• Composites: options, eithers, slices, sets, maps, strings, tuples
//		• Functions: deterministic func values of arity one through five
//		• Meta providers: run configurations, verdicts, parameter blocks
//
// ✨ Why choose arbiter?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – lazy memoized providers, race-safe registry
//   - Boundary-hungry – extremes and pathological values appear early
//   - Extensible – register canonical providers for your own types
//
// Under the hood, everything is organized under two subpackages:
//
//	gen/ — the engine contract: Parameters, Seed, Gen[T] and combinators
//	arb/ — providers, the type registry, perturbation and synthesis
//
// Quick sketch:
//
//	    p := gen.NewParameters(42)
//	    n := arb.For[int64]().Generate(p)
//
//	draws one boundary-biased int64 from the canonical provider.
//
// Dive into README.md for full examples and a feature matrix.
//
//	go get github.com/katalvlaran/arbiter
package arbiter
