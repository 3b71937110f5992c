// Package gen is the generation engine of arbiter: small, composable
// recipes that turn a deterministic random stream into values of any type.
//
// 🚀 What is a Gen?
//
//	A Gen[T] is a pure recipe: give it Parameters (a size hint plus a
//	random source) and it yields one T.  Everything else in arbiter is
//	built from Gens and the combinators in this package:
//	  • Const / OneConstOf — fixed values and uniform constant choice
//	  • Choose / ChooseFloat64 — integer and floating-point ranges
//	  • Frequency / OneOf — weighted and uniform branching
//	  • Sized / Resize — size-aware and size-overriding generation
//	  • BuildOf — grow any container through a Builder
//	  • Promote — turn value generation into function generation
//	  • Map / FlatMap / Lazy — transform, chain and defer recipes
//
// ✨ Key guarantees:
//   - Determinism: equal seed and size ⇒ identical value streams.
//   - Sizing: collection-like Gens never exceed the current Size.
//   - Reproducibility: Seed snapshots capture a stream mid-flight and
//     replay or perturb it later (see Seed.Mix).
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/arbiter/gen"
//
//	p := gen.NewParameters(42)          // seeded, Size = DefaultSize
//	digits := gen.Choose[int](0, 9)     // inclusive range
//	pair := gen.Map(digits, func(d int) [2]int { return [2]int{d, d} })
//
//	one := pair(p)                      // draw a single value
//	many := gen.SampleN(pair, p, 16)    // or a batch
//
// Performance:
//
//   - Gens allocate only what the produced value needs.
//   - Seed capture costs four reads of the underlying stream.
//
// See example_test.go for runnable walkthroughs.
package gen
