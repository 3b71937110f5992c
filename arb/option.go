// Package arb Option: the optional-value type and its size-aware provider.
package arb

import (
	"github.com/katalvlaran/arbiter/gen"
)

// Option carries either one value of T or nothing at all.
// The zero value is the absent Option.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps v into a present Option.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, present: true}
}

// None returns the absent Option of T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether o carries a value.
func (o Option[T]) IsSome() bool {
	return o.present
}

// IsNone reports whether o is absent.
func (o Option[T]) IsNone() bool {
	return !o.present
}

// Get returns the carried value and true, or the zero value and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

// OrElse returns the carried value, or fallback when o is absent.
func (o Option[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}

	return fallback
}

// OptionOf derives the optional-value provider from elem.
//
// At size 0 the result is always absent — a hard rule, independent of the
// randomness source. At size n the present branch weighs n against a
// constant 1 for absence, so presence dominates as values grow; a present
// element is drawn at size n/2, which keeps nested options (options of
// options of …) from growing without bound.
//
// Panics with ErrNilProvider when elem is nil.
func OptionOf[T any](elem *Provider[T]) *Provider[Option[T]] {
	if elem == nil {
		panic(ErrNilProvider.Error())
	}

	return New("option("+elem.Name()+")", func() gen.Gen[Option[T]] {
		eg := elem.Describe()

		return gen.Sized(func(size int) gen.Gen[Option[T]] {
			if size == 0 {
				return gen.Const(None[T]())
			}

			return gen.Frequency(
				gen.Weighted[Option[T]]{Weight: optionAbsentWeight, Gen: gen.Const(None[T]())},
				gen.Weighted[Option[T]]{Weight: size, Gen: gen.Resize(size/2, gen.Map(eg, Some[T]))},
			)
		})
	})
}
