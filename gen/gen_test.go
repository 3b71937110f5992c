package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/arbiter/gen"
)

const testSeed = 42

func TestNewParameters_Defaults(t *testing.T) {
	p := gen.NewParameters(testSeed)
	require.NotNil(t, p.Rng)
	assert.Equal(t, gen.DefaultSize, p.Size)
}

func TestNewParameters_Deterministic(t *testing.T) {
	a := gen.NewParameters(testSeed)
	b := gen.NewParameters(testSeed)
	for i := 0; i < 64; i++ {
		assert.Equal(t, a.Rng.Uint64(), b.Rng.Uint64())
	}
}

func TestNewParameters_SeedSensitivity(t *testing.T) {
	a := gen.NewParameters(1)
	b := gen.NewParameters(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Rng.Uint64() != b.Rng.Uint64() {
			same = false
		}
	}
	assert.False(t, same, "streams from different seeds must diverge")
}

func TestParameters_WithSize(t *testing.T) {
	p := gen.NewParameters(testSeed)
	q := p.WithSize(7)
	assert.Equal(t, 7, q.Size)
	assert.Equal(t, gen.DefaultSize, p.Size, "receiver must stay untouched")
	assert.Same(t, p.Rng, q.Rng, "the stream is shared, only the hint changes")
}

func TestParameters_WithSizeNegativePanics(t *testing.T) {
	p := gen.NewParameters(testSeed)
	assert.PanicsWithValue(t, gen.ErrNegativeSize.Error(), func() {
		p.WithSize(-1)
	})
}

func TestCaptureSeed_AdvancesStream(t *testing.T) {
	p := gen.NewParameters(testSeed)
	s1 := gen.CaptureSeed(p)
	s2 := gen.CaptureSeed(p)
	assert.NotEqual(t, s1, s2, "consecutive captures must snapshot different positions")
}

func TestSeed_RandReplays(t *testing.T) {
	p := gen.NewParameters(testSeed)
	s := gen.CaptureSeed(p)
	r1 := s.Rand()
	r2 := s.Rand()
	for i := 0; i < 32; i++ {
		assert.Equal(t, r1.Uint64(), r2.Uint64())
	}
}

func TestSeed_MixDeterministic(t *testing.T) {
	p := gen.NewParameters(testSeed)
	s := gen.CaptureSeed(p)
	d1 := s.Mix(1, []byte("payload"))
	d2 := s.Mix(1, []byte("payload"))
	assert.Equal(t, d1, d2)
}

func TestSeed_MixSeparatesInputs(t *testing.T) {
	p := gen.NewParameters(testSeed)
	s := gen.CaptureSeed(p)
	assert.NotEqual(t, s, s.Mix(1, nil), "mixing must move the state")
	assert.NotEqual(t, s.Mix(1, nil), s.Mix(2, nil), "tags must separate")
	assert.NotEqual(t, s.Mix(1, []byte{0}), s.Mix(1, []byte{1}), "payloads must separate")
}

func TestSeed_MixedStreamsDiverge(t *testing.T) {
	p := gen.NewParameters(testSeed)
	s := gen.CaptureSeed(p)
	ra := s.Mix(1, nil).Rand()
	rb := s.Mix(2, nil).Rand()
	same := true
	for i := 0; i < 8; i++ {
		if ra.Uint64() != rb.Uint64() {
			same = false
		}
	}
	assert.False(t, same)
}

func TestSample_SingleDraw(t *testing.T) {
	p := gen.NewParameters(testSeed)
	assert.Equal(t, 3, gen.Sample(gen.Const(3), p))
}

func TestSampleN_DrawsRequestedCount(t *testing.T) {
	p := gen.NewParameters(testSeed)
	vals := gen.SampleN(gen.Const("x"), p, 5)
	require.Len(t, vals, 5)
	for _, v := range vals {
		assert.Equal(t, "x", v)
	}
	assert.Empty(t, gen.SampleN(gen.Const("x"), p, 0))
}

func TestSampleN_NegativePanics(t *testing.T) {
	p := gen.NewParameters(testSeed)
	assert.PanicsWithValue(t, gen.ErrNegativeCount.Error(), func() {
		gen.SampleN(gen.Const(0), p, -1)
	})
}
