// Package arb canonical big.Int provider: boundary-biased arbitrary precision.
package arb

import (
	"math"
	"math/big"

	"github.com/katalvlaran/arbiter/gen"
)

// bigBoundaries are the fixed edge values every stream must eventually
// surface: zero, the units, and the first values on either side of the
// 32- and 64-bit signed ranges. Treated as immutable templates; yielded
// values are always fresh copies.
var bigBoundaries = func() []*big.Int {
	one := big.NewInt(1)
	pow31 := new(big.Int).Lsh(one, 31)
	pow63 := new(big.Int).Lsh(one, 63)

	return []*big.Int{
		big.NewInt(0),
		big.NewInt(1),
		big.NewInt(-1),
		pow31,
		new(big.Int).Neg(new(big.Int).Add(pow31, one)),
		big.NewInt(math.MaxInt64),
		big.NewInt(math.MinInt64),
		pow63,
		new(big.Int).Neg(new(big.Int).Add(pow63, one)),
	}
}()

// bigIntProvider mixes three regimes: small values within the size hint,
// those same values scaled by 2^[32,128], and the fixed boundaries above.
// Weights are 5:10:1-per-boundary, so roughly a third of the stream is
// boundary material while magnitudes still spread over hundreds of bits.
var bigIntProvider = New("big.Int", func() gen.Gen[*big.Int] {
	small := gen.Sized(func(size int) gen.Gen[*big.Int] {
		bound := int64(size)

		return gen.Map(gen.Choose(-bound, bound), big.NewInt)
	})

	shift := gen.Choose(bigShiftMin, bigShiftMax)
	large := func(p gen.Parameters) *big.Int {
		v := small(p)

		return v.Lsh(v, shift(p))
	}

	branches := []gen.Weighted[*big.Int]{
		{Weight: bigSmallWeight, Gen: small},
		{Weight: bigLargeWeight, Gen: large},
	}
	for _, b := range bigBoundaries {
		tmpl := b
		branches = append(branches, gen.Weighted[*big.Int]{
			Weight: bigBoundaryWeight,
			Gen: func(gen.Parameters) *big.Int {
				return new(big.Int).Set(tmpl)
			},
		})
	}

	return gen.Frequency(branches...)
})
