// Package arb perturbation: folding domain values into generation state.
package arb

import (
	"encoding/binary"
	"errors"
	"math"
	"math/big"
	"time"

	"github.com/katalvlaran/arbiter/gen"
)

// ErrNilProjection is raised when a perturber adapter receives a nil projection.
var ErrNilProjection = errors.New("arb: projection function is nil")

// Perturber deterministically folds one domain value into an opaque
// parameter state, yielding the derived state. Chaining perturbers over a
// captured state is what lets a synthesized function drive its result
// provider differently per distinct input: determinism comes entirely
// from the state transform, never from caching.
//
// A Perturber must be pure — equal (state, value) pairs map to equal
// derived states.
type Perturber[T any] func(gen.Seed, T) gen.Seed

// Domain tags keep value families from colliding in the state fold:
// the same payload bytes under different tags derive different states.
const (
	tagBool byte = iota + 1
	tagInt
	tagUint
	tagFloat
	tagString
	tagBytes
	tagBigInt
	tagTime
	tagDuration
	tagOptionNone
	tagOptionSome
	tagEitherLeft
	tagEitherRight
	tagSlice
	tagTuple
)

// mixWord folds one machine word under tag into s.
func mixWord(s gen.Seed, tag byte, w uint64) gen.Seed {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], w)

	return s.Mix(tag, buf[:])
}

// Standard perturbers for the primitive argument vocabulary. Signed
// widths share one domain (the value sign-extended to a word), unsigned
// widths another, floats fold their IEEE bit patterns so that −0, NaN
// payloads and infinities all perturb distinctly.
var (
	// PerturbBool folds a boolean into the state.
	PerturbBool Perturber[bool] = func(s gen.Seed, v bool) gen.Seed {
		var w uint64
		if v {
			w = 1
		}

		return mixWord(s, tagBool, w)
	}

	// PerturbInt folds a platform-width signed integer into the state.
	PerturbInt Perturber[int] = func(s gen.Seed, v int) gen.Seed {
		return mixWord(s, tagInt, uint64(int64(v)))
	}

	// PerturbInt8 folds an int8 into the state.
	PerturbInt8 Perturber[int8] = func(s gen.Seed, v int8) gen.Seed {
		return mixWord(s, tagInt, uint64(int64(v)))
	}

	// PerturbInt16 folds an int16 into the state.
	PerturbInt16 Perturber[int16] = func(s gen.Seed, v int16) gen.Seed {
		return mixWord(s, tagInt, uint64(int64(v)))
	}

	// PerturbInt32 folds an int32 into the state.
	PerturbInt32 Perturber[int32] = func(s gen.Seed, v int32) gen.Seed {
		return mixWord(s, tagInt, uint64(int64(v)))
	}

	// PerturbInt64 folds an int64 into the state.
	PerturbInt64 Perturber[int64] = func(s gen.Seed, v int64) gen.Seed {
		return mixWord(s, tagInt, uint64(v))
	}

	// PerturbUint folds a platform-width unsigned integer into the state.
	PerturbUint Perturber[uint] = func(s gen.Seed, v uint) gen.Seed {
		return mixWord(s, tagUint, uint64(v))
	}

	// PerturbUint8 folds a uint8 into the state.
	PerturbUint8 Perturber[uint8] = func(s gen.Seed, v uint8) gen.Seed {
		return mixWord(s, tagUint, uint64(v))
	}

	// PerturbUint16 folds a uint16 into the state.
	PerturbUint16 Perturber[uint16] = func(s gen.Seed, v uint16) gen.Seed {
		return mixWord(s, tagUint, uint64(v))
	}

	// PerturbUint32 folds a uint32 into the state.
	PerturbUint32 Perturber[uint32] = func(s gen.Seed, v uint32) gen.Seed {
		return mixWord(s, tagUint, uint64(v))
	}

	// PerturbUint64 folds a uint64 into the state.
	PerturbUint64 Perturber[uint64] = func(s gen.Seed, v uint64) gen.Seed {
		return mixWord(s, tagUint, v)
	}

	// PerturbFloat32 folds a float32's bit pattern into the state.
	PerturbFloat32 Perturber[float32] = func(s gen.Seed, v float32) gen.Seed {
		return mixWord(s, tagFloat, uint64(math.Float32bits(v)))
	}

	// PerturbFloat64 folds a float64's bit pattern into the state.
	PerturbFloat64 Perturber[float64] = func(s gen.Seed, v float64) gen.Seed {
		return mixWord(s, tagFloat, math.Float64bits(v))
	}

	// PerturbRune folds a rune into the state; runes share int32's domain.
	PerturbRune Perturber[rune] = PerturbInt32

	// PerturbString folds a string's bytes into the state.
	PerturbString Perturber[string] = func(s gen.Seed, v string) gen.Seed {
		return s.Mix(tagString, []byte(v))
	}

	// PerturbBytes folds a byte slice into the state.
	PerturbBytes Perturber[[]byte] = func(s gen.Seed, v []byte) gen.Seed {
		return s.Mix(tagBytes, v)
	}

	// PerturbBigInt folds an arbitrary-precision integer into the state:
	// one sign byte, then the magnitude bytes.
	PerturbBigInt Perturber[*big.Int] = func(s gen.Seed, v *big.Int) gen.Seed {
		sign := byte(v.Sign() + 1)
		payload := append([]byte{sign}, v.Bytes()...)

		return s.Mix(tagBigInt, payload)
	}

	// PerturbTime folds an instant into the state: Unix seconds, then the
	// in-second nanosecond offset. The location is ignored — equal
	// instants perturb equally regardless of zone.
	PerturbTime Perturber[time.Time] = func(s gen.Seed, v time.Time) gen.Seed {
		s = mixWord(s, tagTime, uint64(v.Unix()))

		return mixWord(s, tagTime, uint64(v.Nanosecond()))
	}

	// PerturbDuration folds a duration into the state.
	PerturbDuration Perturber[time.Duration] = func(s gen.Seed, v time.Duration) gen.Seed {
		return mixWord(s, tagDuration, uint64(int64(v)))
	}
)

// PerturbVia adapts a perturber of U into a perturber of T through a
// projection — the extension point for user types: project the fields
// you consider significant and reuse the standard perturbers.
// Panics with ErrNilProjection or ErrNilPerturber on nil arguments.
func PerturbVia[T, U any](project func(T) U, pu Perturber[U]) Perturber[T] {
	if project == nil {
		panic(ErrNilProjection.Error())
	}
	if pu == nil {
		panic(ErrNilPerturber.Error())
	}

	return func(s gen.Seed, v T) gen.Seed {
		return pu(s, project(v))
	}
}

// PerturbOption lifts an element perturber over Option[T]. Absence and
// presence fold under distinct tags, so None never collides with any
// Some value. Panics with ErrNilPerturber when pt is nil.
func PerturbOption[T any](pt Perturber[T]) Perturber[Option[T]] {
	if pt == nil {
		panic(ErrNilPerturber.Error())
	}

	return func(s gen.Seed, v Option[T]) gen.Seed {
		inner, ok := v.Get()
		if !ok {
			return s.Mix(tagOptionNone, nil)
		}

		return pt(s.Mix(tagOptionSome, nil), inner)
	}
}

// PerturbEither lifts branch perturbers over Either[L, R]; the branch tag
// folds first, so Left(x) and Right(x) derive distinct states even when
// both branches share a type. Panics with ErrNilPerturber on nil arguments.
func PerturbEither[L, R any](pl Perturber[L], pr Perturber[R]) Perturber[Either[L, R]] {
	if pl == nil || pr == nil {
		panic(ErrNilPerturber.Error())
	}

	return func(s gen.Seed, v Either[L, R]) gen.Seed {
		if l, ok := v.GetLeft(); ok {
			return pl(s.Mix(tagEitherLeft, nil), l)
		}
		r, _ := v.GetRight()

		return pr(s.Mix(tagEitherRight, nil), r)
	}
}

// PerturbSlice lifts an element perturber over []T: the length folds
// first, then each element in order, so permutations and prefixes derive
// distinct states. Panics with ErrNilPerturber when pt is nil.
func PerturbSlice[T any](pt Perturber[T]) Perturber[[]T] {
	if pt == nil {
		panic(ErrNilPerturber.Error())
	}

	return func(s gen.Seed, vs []T) gen.Seed {
		s = mixWord(s, tagSlice, uint64(len(vs)))
		for _, v := range vs {
			s = pt(s, v)
		}

		return s
	}
}

// PerturbTuple2 folds both components in order.
// Panics with ErrNilPerturber on nil arguments.
func PerturbTuple2[A, B any](pa Perturber[A], pb Perturber[B]) Perturber[Tuple2[A, B]] {
	if pa == nil || pb == nil {
		panic(ErrNilPerturber.Error())
	}

	return func(s gen.Seed, v Tuple2[A, B]) gen.Seed {
		return pb(pa(s.Mix(tagTuple, nil), v.A), v.B)
	}
}

// PerturbTuple3 folds all three components in order.
// Panics with ErrNilPerturber on nil arguments.
func PerturbTuple3[A, B, C any](pa Perturber[A], pb Perturber[B], pc Perturber[C]) Perturber[Tuple3[A, B, C]] {
	if pa == nil || pb == nil || pc == nil {
		panic(ErrNilPerturber.Error())
	}

	return func(s gen.Seed, v Tuple3[A, B, C]) gen.Seed {
		return pc(pb(pa(s.Mix(tagTuple, nil), v.A), v.B), v.C)
	}
}
