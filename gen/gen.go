// Package gen core contract: Parameters, Seed and the Gen function type.
package gen

import (
	"encoding/binary"
	"errors"
	"math/rand/v2"

	"github.com/zeebo/blake3"
)

const (
	// DefaultSize is the size hint installed by NewParameters.
	// Collection-like generators treat it as an inclusive upper bound.
	DefaultSize = 100

	// defaultStream selects the PCG stream paired with a user seed.
	// Fixed so that NewParameters(seed) is fully determined by seed.
	defaultStream uint64 = 0x9E3779B97F4A7C15

	// seedBytes is the width of a captured Seed state.
	seedBytes = 32
)

var (
	// ErrNegativeSize is raised when a size hint below zero is supplied.
	ErrNegativeSize = errors.New("gen: size must be non-negative")

	// ErrNegativeCount is raised when a sample count below zero is supplied.
	ErrNegativeCount = errors.New("gen: sample count must be non-negative")

	// ErrInvalidRange is raised when a range lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("gen: lower bound exceeds upper bound")

	// ErrNonFiniteBound is raised when a float range bound is NaN or infinite.
	ErrNonFiniteBound = errors.New("gen: float bounds must be finite")

	// ErrNoChoices is raised when a uniform choice has nothing to choose from.
	ErrNoChoices = errors.New("gen: no generators to choose from")

	// ErrNoPositiveWeight is raised when every frequency branch weighs zero or less.
	ErrNoPositiveWeight = errors.New("gen: frequency needs at least one positive weight")

	// ErrNilBuilder is raised when a container generator receives a nil factory.
	ErrNilBuilder = errors.New("gen: builder factory is nil")
)

// Gen is a recipe for one value of type T: apply it to Parameters and it
// yields the next value of the stream those Parameters carry.
//
// A Gen must be pure with respect to its inputs — all randomness flows
// through Parameters.Rng, so equal seeds replay equal values.
type Gen[T any] func(Parameters) T

// Integer covers every built-in integer kind accepted by Choose.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Parameters bundles everything a Gen needs to produce a value.
//
// Fields:
//   - Size — non-negative growth hint; container generators draw their
//     length from [0, Size], recursive generators shrink it as they nest.
//   - Rng  — the deterministic random stream; advancing it is the only
//     side effect a Gen is allowed to have.
type Parameters struct {
	Size int
	Rng  *rand.Rand
}

// NewParameters returns Parameters seeded with seed and sized at
// DefaultSize. Equal seeds produce identical value streams.
func NewParameters(seed uint64) Parameters {
	return Parameters{
		Size: DefaultSize,
		Rng:  rand.New(rand.NewPCG(seed, defaultStream)),
	}
}

// WithSize returns a copy of p carrying the given size hint.
// Panics with ErrNegativeSize when n is negative.
func (p Parameters) WithSize(n int) Parameters {
	if n < 0 {
		panic(ErrNegativeSize.Error())
	}
	p.Size = n
	return p
}

// Seed is an opaque snapshot of generation state. Capture one mid-stream,
// derive variants with Mix, and replay any of them through Rand.
//
// Seeds are values: copying is cheap and no method mutates the receiver.
type Seed struct {
	state [seedBytes]byte
}

// CaptureSeed snapshots the current position of p's stream by drawing
// four words from it. The draw advances p.Rng, so two captures from the
// same Parameters yield unrelated Seeds.
func CaptureSeed(p Parameters) Seed {
	var s Seed
	for i := 0; i < seedBytes; i += 8 {
		binary.LittleEndian.PutUint64(s.state[i:i+8], p.Rng.Uint64())
	}
	return s
}

// Rand materializes a fresh deterministic stream positioned at s.
// Every call returns an independent *rand.Rand replaying the same values.
func (s Seed) Rand() *rand.Rand {
	lo := binary.LittleEndian.Uint64(s.state[0:8])
	hi := binary.LittleEndian.Uint64(s.state[8:16])
	return rand.New(rand.NewPCG(lo, hi))
}

// Mix folds a tag byte and an opaque payload into s, returning the
// derived Seed. The receiver is untouched, so one captured Seed can fan
// out into any number of derived streams.
//
// Mix is collision-resistant: distinct (state, tag, payload) triples map
// to distinct Seeds for all practical purposes.
func (s Seed) Mix(tag byte, data []byte) Seed {
	h := blake3.New()
	_, _ = h.Write(s.state[:])
	_, _ = h.Write([]byte{tag})
	if len(data) > 0 {
		_, _ = h.Write(data)
	}
	var out Seed
	copy(out.state[:], h.Sum(nil))
	return out
}

// Sample draws a single value from g under p.
func Sample[T any](g Gen[T], p Parameters) T {
	return g(p)
}

// SampleN draws n consecutive values from g under p.
// Panics with ErrNegativeCount when n is negative.
func SampleN[T any](g Gen[T], p Parameters, n int) []T {
	if n < 0 {
		panic(ErrNegativeCount.Error())
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g(p))
	}
	return out
}
