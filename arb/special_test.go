package arb_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbiter/arb"
	"github.com/katalvlaran/arbiter/gen"
)

func TestTime_StaysWithinPrintableCalendar(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[time.Time]().Describe()
	for i := 0; i < 2000; i++ {
		v := g(p)
		assert.GreaterOrEqual(t, v.Year(), 1)
		assert.LessOrEqual(t, v.Year(), 9999)
		assert.Equal(t, time.UTC, v.Location())
	}
}

func TestTime_EraAndNanosecondCoverage(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[time.Time]().Describe()
	var beforeEpoch, afterEpoch, withNanos int
	for i := 0; i < 2000; i++ {
		v := g(p)
		if v.Unix() < 0 {
			beforeEpoch++
		} else {
			afterEpoch++
		}
		if v.Nanosecond() != 0 {
			withNanos++
		}
	}
	assert.Positive(t, beforeEpoch, "pre-1970 instants must appear")
	assert.Positive(t, afterEpoch, "post-1970 instants must appear")
	assert.Greater(t, withNanos, 1900, "sub-second offsets are drawn independently")
}

func TestDuration_CoversBothSigns(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[time.Duration]().Describe()
	var negative, beyondDay int
	for i := 0; i < 2000; i++ {
		v := g(p)
		if v < 0 {
			negative++
		}
		if v > 24*time.Hour || v < -24*time.Hour {
			beyondDay++
		}
	}
	assert.InDelta(t, 1000, negative, 200, "durations must be sign-balanced")
	assert.Greater(t, beyondDay, 1900, "full-range draws dwarf everyday magnitudes")
}

func TestError_AlwaysNonNil(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[error]().Describe()
	for i := 0; i < 1000; i++ {
		require.Error(t, g(p))
	}
}

func TestError_WrappedChainsAppear(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[error]().Describe()
	wrapped := 0
	const draws = 2000
	for i := 0; i < draws; i++ {
		if errors.Unwrap(g(p)) != nil {
			wrapped++
		}
	}
	// One branch in four wraps another generated error.
	assert.InDelta(t, draws/4, wrapped, draws/10)
}

func TestBytes_BoundedAndDeterministic(t *testing.T) {
	p := gen.NewParameters(testSeed).WithSize(32)
	g := arb.For[[]byte]().Describe()
	for i := 0; i < 300; i++ {
		assert.LessOrEqual(t, len(g(p)), 32)
	}

	a := gen.SampleN(arb.For[[]byte]().Describe(), gen.NewParameters(testSeed), 20)
	b := gen.SampleN(arb.For[[]byte]().Describe(), gen.NewParameters(testSeed), 20)
	assert.Equal(t, a, b)
}

func TestNumericSlices_ElementsSpanFullRange(t *testing.T) {
	p := gen.NewParameters(testSeed)
	ints := arb.For[[]int64]().Describe()
	var sawNegative, sawHuge bool
	for i := 0; i < 200; i++ {
		for _, v := range ints(p) {
			if v < 0 {
				sawNegative = true
			}
			if v > 1<<40 || v < -(1<<40) {
				sawHuge = true
			}
		}
	}
	assert.True(t, sawNegative)
	assert.True(t, sawHuge)

	floats := arb.For[[]float64]().Describe()
	total := 0
	for i := 0; i < 100; i++ {
		vs := floats(p)
		assert.LessOrEqual(t, len(vs), gen.DefaultSize)
		total += len(vs)
	}
	assert.Greater(t, total, 1000, "slices at the default size average dozens of elements")
}

func TestSpecialProviders_Names(t *testing.T) {
	assert.Equal(t, "time.Time", arb.For[time.Time]().Name())
	assert.Equal(t, "time.Duration", arb.For[time.Duration]().Name())
	assert.Equal(t, "error", arb.For[error]().Name())
	assert.Equal(t, "[]byte", arb.For[[]byte]().Name())
	assert.Equal(t, "[]int64", arb.For[[]int64]().Name())
	assert.Equal(t, "[]float64", arb.For[[]float64]().Name())
}
