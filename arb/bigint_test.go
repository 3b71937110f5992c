package arb_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbiter/arb"
	"github.com/katalvlaran/arbiter/gen"
)

// bigIntSample draws n big integers keyed by decimal representation.
func bigIntSample(p gen.Parameters, n int) map[string]int {
	g := arb.For[*big.Int]().Describe()
	seen := make(map[string]int)
	for i := 0; i < n; i++ {
		seen[g(p).String()]++
	}

	return seen
}

func TestBigInt_AllBoundaryConstantsSurface(t *testing.T) {
	p := gen.NewParameters(testSeed)
	seen := bigIntSample(p, 10000)

	// Zero, the units, and the first values on either side of the 32- and
	// 64-bit signed ranges: each carries weight 1 of 24, so a sample of
	// this size must hit every one of them.
	boundaries := []string{
		"0",
		"1",
		"-1",
		"2147483648",          // 2^31
		"-2147483649",         // −2^31 − 1
		"9223372036854775807", // 2^63 − 1
		"-9223372036854775808",
		"9223372036854775808", // 2^63
		"-9223372036854775809",
	}
	for _, b := range boundaries {
		assert.Positive(t, seen[b], "boundary %s must appear in 10k samples", b)
	}
}

func TestBigInt_LargeBranchExceedsWordRange(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[*big.Int]().Describe()
	maxWord := big.NewInt(math.MaxInt64)
	var beyond int
	for i := 0; i < 2000; i++ {
		if new(big.Int).Abs(g(p)).Cmp(maxWord) > 0 {
			beyond++
		}
	}
	// The shifted branch weighs 10/24 and shifts by at least 32 bits
	// beyond a small magnitude, pushing well past 64-bit words.
	assert.Greater(t, beyond, 200, "word-range-exceeding magnitudes must be common")
}

func TestBigInt_SmallBranchTracksSize(t *testing.T) {
	p := gen.NewParameters(testSeed).WithSize(4)
	g := arb.For[*big.Int]().Describe()
	bound := big.NewInt(4)
	var small int
	for i := 0; i < 2000; i++ {
		if new(big.Int).Abs(g(p)).Cmp(bound) <= 0 {
			small++
		}
	}
	// At size 4 the small branch (5/24) and several boundary branches all
	// land within [−4, 4]; shifted values of zero do too.
	assert.Greater(t, small, 300)
}

func TestBigInt_YieldsFreshCopies(t *testing.T) {
	p := gen.NewParameters(testSeed)
	g := arb.For[*big.Int]().Describe()

	var one *big.Int
	for i := 0; i < 10000 && one == nil; i++ {
		if v := g(p); v.Cmp(big.NewInt(1)) == 0 {
			one = v
		}
	}
	require.NotNil(t, one, "the constant 1 must surface")

	// Corrupting a yielded value must not leak into later draws.
	one.SetInt64(999)
	for _, tmpl := range arb.BigBoundaries {
		assert.NotEqual(t, "999", tmpl.String(), "boundary templates must stay immutable")
	}

	var again *big.Int
	for i := 0; i < 10000 && again == nil; i++ {
		if v := g(p); v.Cmp(big.NewInt(1)) == 0 {
			again = v
		}
	}
	assert.NotNil(t, again, "the constant 1 must keep surfacing after mutation")
}

func TestBigInt_DeterministicPerSeed(t *testing.T) {
	a := bigIntSample(gen.NewParameters(11), 500)
	b := bigIntSample(gen.NewParameters(11), 500)
	assert.Equal(t, a, b)
}
