// Package gen combinators: the building blocks every provider composes.
package gen

import (
	"math"
	"sync"
)

// Const returns a Gen that always yields v and never touches the stream.
func Const[T any](v T) Gen[T] {
	return func(Parameters) T {
		return v
	}
}

// OneConstOf yields one of the given values, chosen uniformly.
// Panics with ErrNoChoices when called without values.
func OneConstOf[T any](vals ...T) Gen[T] {
	if len(vals) == 0 {
		panic(ErrNoChoices.Error())
	}
	return func(p Parameters) T {
		return vals[p.Rng.IntN(len(vals))]
	}
}

// OneOf yields from one of the given generators, chosen uniformly.
// Panics with ErrNoChoices when called without generators.
func OneOf[T any](gs ...Gen[T]) Gen[T] {
	if len(gs) == 0 {
		panic(ErrNoChoices.Error())
	}
	return func(p Parameters) T {
		return gs[p.Rng.IntN(len(gs))](p)
	}
}

// Choose yields integers uniformly from the inclusive range [lo, hi].
// Both endpoints are reachable; the full width of T is supported, so
// Choose[int64](math.MinInt64, math.MaxInt64) covers every value.
// Panics with ErrInvalidRange when lo exceeds hi.
func Choose[T Integer](lo, hi T) Gen[T] {
	if lo > hi {
		panic(ErrInvalidRange.Error())
	}
	span := uint64(hi) - uint64(lo)
	return func(p Parameters) T {
		if span == math.MaxUint64 {
			return T(p.Rng.Uint64())
		}
		return lo + T(p.Rng.Uint64N(span+1))
	}
}

// ChooseFloat64 yields floats uniformly from [lo, hi). Bounds must be
// finite; ranges wider than the largest finite float are interpolated to
// stay in range. Panics with ErrNonFiniteBound on NaN or infinite bounds
// and with ErrInvalidRange when lo exceeds hi.
func ChooseFloat64(lo, hi float64) Gen[float64] {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		panic(ErrNonFiniteBound.Error())
	}
	if lo > hi {
		panic(ErrInvalidRange.Error())
	}
	span := hi - lo
	return func(p Parameters) float64 {
		u := p.Rng.Float64()
		if math.IsInf(span, 0) {
			// Interpolate so neither intermediate term overflows.
			return lo*(1-u) + hi*u
		}
		return lo + u*span
	}
}

// Weighted pairs a branch generator with its relative weight for Frequency.
//
// Fields:
//   - Weight — relative likelihood; zero or negative disables the branch.
//   - Gen    — the generator run when this branch is selected.
type Weighted[T any] struct {
	Weight int
	Gen    Gen[T]
}

// Frequency yields from one of the weighted branches, where a branch with
// weight w is selected with probability w over the sum of all positive
// weights. Branches weighing zero or less are never selected.
// Panics with ErrNoPositiveWeight when no branch has positive weight.
func Frequency[T any](branches ...Weighted[T]) Gen[T] {
	var total int64
	for _, b := range branches {
		if b.Weight > 0 {
			total += int64(b.Weight)
		}
	}
	if total <= 0 {
		panic(ErrNoPositiveWeight.Error())
	}
	return func(p Parameters) T {
		k := p.Rng.Int64N(total)
		for _, b := range branches {
			if b.Weight <= 0 {
				continue
			}
			k -= int64(b.Weight)
			if k < 0 {
				return b.Gen(p)
			}
		}
		// Unreachable: k < total and the positive weights sum to total.
		panic(ErrNoPositiveWeight.Error())
	}
}

// Sized builds the generator from the current size hint at yield time,
// letting one recipe adapt to however it is resized later.
func Sized[T any](f func(size int) Gen[T]) Gen[T] {
	return func(p Parameters) T {
		return f(p.Size)(p)
	}
}

// Resize runs g under the fixed size hint n regardless of the caller's
// size. Panics with ErrNegativeSize when n is negative.
func Resize[T any](n int, g Gen[T]) Gen[T] {
	if n < 0 {
		panic(ErrNegativeSize.Error())
	}
	return func(p Parameters) T {
		return g(p.WithSize(n))
	}
}

// Builder accumulates elements one Add at a time and assembles the final
// container on Build. BuildOf drives one fresh Builder per yielded value.
type Builder[C, T any] interface {
	Add(T)
	Build() C
}

// BuildOf yields containers grown through factory: the element count is
// drawn uniformly from [0, Size], then that many elements are drawn from
// elem and added in order. Size zero always yields the empty container.
// Panics with ErrNilBuilder when factory is nil.
func BuildOf[C, T any](factory func() Builder[C, T], elem Gen[T]) Gen[C] {
	if factory == nil {
		panic(ErrNilBuilder.Error())
	}
	return func(p Parameters) C {
		b := factory()
		n := 0
		if p.Size > 0 {
			n = p.Rng.IntN(p.Size + 1)
		}
		for i := 0; i < n; i++ {
			b.Add(elem(p))
		}
		return b.Build()
	}
}

// Promote lifts a family of generators f into a generator of functions.
// Each yielded function owns a Seed captured at yield time: calling it
// replays that snapshot through f(t), so equal arguments always map to
// equal results and the function itself is pure.
func Promote[T, Z any](f func(T) Gen[Z]) Gen[func(T) Z] {
	return func(p Parameters) func(T) Z {
		snap := CaptureSeed(p)
		size := p.Size
		return func(t T) Z {
			return f(t)(Parameters{Size: size, Rng: snap.Rand()})
		}
	}
}

// Map yields f applied to every value g yields.
func Map[T, Z any](g Gen[T], f func(T) Z) Gen[Z] {
	return func(p Parameters) Z {
		return f(g(p))
	}
}

// FlatMap yields from the generator f derives from each value g yields,
// sequencing both draws over the same stream.
func FlatMap[T, Z any](g Gen[T], f func(T) Gen[Z]) Gen[Z] {
	return func(p Parameters) Z {
		return f(g(p))(p)
	}
}

// Lazy defers build until the first yield and memoizes the result.
// Safe for concurrent use; build runs exactly once.
func Lazy[T any](build func() Gen[T]) Gen[T] {
	var once sync.Once
	var g Gen[T]
	return func(p Parameters) T {
		once.Do(func() {
			g = build()
		})
		return g(p)
	}
}
