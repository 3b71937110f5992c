package arb_test

import (
	"math"
	"testing"
	"unicode"
	"unicode/utf16"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/arbiter/arb"
	"github.com/katalvlaran/arbiter/gen"
)

func TestBool_CoversBothValues(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[bool]().Describe()
	var trues, falses int
	for i := 0; i < 200; i++ {
		if g(p) {
			trues++
		} else {
			falses++
		}
	}
	assert.Positive(t, trues)
	assert.Positive(t, falses)
}

func TestInt8_ReachesBothExtremes(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[int8]().Describe()
	seen := make(map[int8]bool)
	for i := 0; i < 5000; i++ {
		seen[g(p)] = true
	}
	assert.True(t, seen[math.MinInt8], "minimum must surface over a large sample")
	assert.True(t, seen[math.MaxInt8], "maximum must surface over a large sample")
	assert.True(t, seen[0])
	assert.True(t, seen[-1])
}

func TestUint8_ReachesBothExtremes(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[uint8]().Describe()
	seen := make(map[uint8]bool)
	for i := 0; i < 5000; i++ {
		seen[g(p)] = true
	}
	assert.True(t, seen[0])
	assert.True(t, seen[math.MaxUint8])
}

func TestInt64_SpansFullRange(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[int64]().Describe()
	var negatives, beyondInt32 int
	for i := 0; i < 2000; i++ {
		v := g(p)
		if v < 0 {
			negatives++
		}
		if v > math.MaxInt32 || v < math.MinInt32 {
			beyondInt32++
		}
	}
	assert.Positive(t, negatives, "negative half must be reachable")
	assert.Positive(t, beyondInt32, "values beyond 32-bit range must dominate a uniform 64-bit draw")
}

func TestUint64_ReachesUpperHalf(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[uint64]().Describe()
	var high int
	for i := 0; i < 2000; i++ {
		if g(p) > math.MaxInt64 {
			high++
		}
	}
	assert.Positive(t, high)
}

func TestRunes_NeverSurrogate(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.Runes().Describe()
	for i := 0; i < 20000; i++ {
		r := g(p)
		assert.False(t, utf16.IsSurrogate(r), "surrogate code point generated: U+%04X", r)
		assert.GreaterOrEqual(t, r, rune(0))
		assert.LessOrEqual(t, r, unicode.MaxRune)
	}
}

func TestRunes_CoversBothSubranges(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.Runes().Describe()
	var below, above int
	for i := 0; i < 2000; i++ {
		if g(p) < 0xD800 {
			below++
		} else {
			above++
		}
	}
	assert.Positive(t, below, "sub-surrogate range must stay reachable")
	assert.Positive(t, above, "post-surrogate range must stay reachable")

	// Width-weighted split: the low range holds 0xD800 of the 0x10F800
	// valid scalars, about 5.2%.
	ratio := float64(below) / float64(below+above)
	assert.InDelta(t, 0.052, ratio, 0.03, "split must track the subrange widths")
}

func TestIntegers_DeterministicPerSeed(t *testing.T) {
	g := arb.For[int64]().Describe()
	a := gen.NewParameters(7)
	b := gen.NewParameters(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, g(a), g(b), "equal seeds must replay equal streams")
	}
}
