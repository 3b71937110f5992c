// Package arb provides canonical value providers for randomized and
// property-style testing: lazily-built recipes for primitives, big
// numbers, containers, functions and run metadata, plus the type-keyed
// registry that hands them out.
//
// 🚀 What is a Provider?
//
//	A Provider[T] names exactly one way to generate T. Its recipe is
//	built on first use and memoized, so providers can reference each
//	other freely — even cyclically — without initialization-order traps.
//	The canonical set covers:
//	  • Primitives: bool, every integer width, floats, runes
//	  • Big numbers: boundary-biased big.Int, precision-aware decimals
//	  • Composites: Option, Either, slices, sets, maps, strings, tuples
//	  • Functions: pure func values of arity one through five
//	  • Metadata: CheckConfig, Verdict, generation Parameters
//
// ✨ Key guarantees:
//   - One canonical provider per type — duplicates are rejected.
//   - Boundary hunger — extremes, signed zeros, NaNs, surrogate-free
//     runes and power-of-two big integers surface early and often.
//   - Determinism — equal seeds replay equal values, and synthesized
//     functions are pure: equal arguments, equal results.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/arbiter/arb"
//	  "github.com/katalvlaran/arbiter/gen"
//	)
//
//	p := gen.NewParameters(42)
//	n := arb.For[int64]().Generate(p)          // canonical lookup
//	s := arb.SliceOf(arb.For[uint8]()).Generate(p)
//	f := arb.Func1Of(arb.PerturbInt, arb.For[bool]()).Generate(p)
//
// Registration of custom providers:
//
//	arb.MustRegister(arb.New("user.ID", func() gen.Gen[ID] {
//	  return gen.Map(gen.Choose[int64](1, 1<<40), func(n int64) ID { return ID(n) })
//	}))
//
// See example_test.go for runnable walkthroughs.
package arb
