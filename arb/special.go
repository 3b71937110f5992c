// Package arb specialized providers: instants, durations, error values and
// the numeric container types — thin compositions of the canonical set.
package arb

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/arbiter/gen"
)

// timeProvider yields instants uniform over the printable calendar,
// years 1 through 9999, with an independent in-second nanosecond offset.
// Always UTC, so generated values compare and format identically
// everywhere.
var timeProvider = New("time.Time", func() gen.Gen[time.Time] {
	sec := gen.Choose(minUnixSec, maxUnixSec)
	nsec := gen.Choose(int64(0), maxNanosInSec)

	return func(p gen.Parameters) time.Time {
		return time.Unix(sec(p), nsec(p)).UTC()
	}
})

// durationProvider yields durations uniform over the full int64 range,
// reaching both overflow-adjacent extremes and sub-microsecond noise.
var durationProvider = New("time.Duration", func() gen.Gen[time.Duration] {
	return gen.Choose(time.Duration(math.MinInt64), time.Duration(math.MaxInt64))
})

// errorProvider yields throwable-like error values: mostly flat errors
// carrying a short generated message, occasionally a wrapped chain so
// errors.Is/As traversal gets exercised too.
var errorProvider = New("error", func() gen.Gen[error] {
	msg := gen.Resize(errMessageSize, stringProvider.Describe())
	plain := gen.Map(msg, func(s string) error {
		return errors.New(s)
	})
	wrapped := func(p gen.Parameters) error {
		return fmt.Errorf("%s: %w", msg(p), plain(p))
	}

	return gen.Frequency(
		gen.Weighted[error]{Weight: errPlainWeight, Gen: plain},
		gen.Weighted[error]{Weight: errWrappedWeight, Gen: wrapped},
	)
})

// Canonical numeric container providers, built through the builder
// capability over the full-range element primitives.
var (
	bytesProvider        = ContainerOf("[]byte", SliceBuilder[byte], uint8Provider)
	int64SliceProvider   = ContainerOf("[]int64", SliceBuilder[int64], int64Provider)
	float64SliceProvider = ContainerOf("[]float64", SliceBuilder[float64], float64Provider)
)
