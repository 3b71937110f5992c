// Package arb canonical float providers: IEEE-754 fields drawn independently.
package arb

import (
	"math"

	"github.com/katalvlaran/arbiter/gen"
)

// Floats are assembled bit field by bit field rather than sampled from a
// real-line distribution. Drawing sign, exponent and mantissa separately
// makes the pathological encodings — zeros of both signs, subnormals,
// infinities and NaN payloads — ordinary, reachable outcomes.
var (
	float64Provider = New("float64", func() gen.Gen[float64] {
		sign := gen.Choose[uint64](0, 1)
		exp := gen.Choose[uint64](0, (1<<float64ExpBits)-1)
		mant := gen.Choose[uint64](0, (1<<float64MantBits)-1)

		return func(p gen.Parameters) float64 {
			return assembleFloat64(sign(p), exp(p), mant(p))
		}
	})

	float32Provider = New("float32", func() gen.Gen[float32] {
		sign := gen.Choose[uint32](0, 1)
		exp := gen.Choose[uint32](0, (1<<float32ExpBits)-1)
		mant := gen.Choose[uint32](0, (1<<float32MantBits)-1)

		return func(p gen.Parameters) float32 {
			return assembleFloat32(sign(p), exp(p), mant(p))
		}
	})
)

// assembleFloat64 packs the three fields into the IEEE-754 binary64 layout.
func assembleFloat64(sign, exp, mant uint64) float64 {
	bits := sign<<(float64ExpBits+float64MantBits) | exp<<float64MantBits | mant

	return math.Float64frombits(bits)
}

// splitFloat64 is the inverse of assembleFloat64.
func splitFloat64(f float64) (sign, exp, mant uint64) {
	bits := math.Float64bits(f)
	sign = bits >> (float64ExpBits + float64MantBits)
	exp = bits >> float64MantBits & ((1 << float64ExpBits) - 1)
	mant = bits & ((1 << float64MantBits) - 1)

	return sign, exp, mant
}

// assembleFloat32 packs the three fields into the IEEE-754 binary32 layout.
func assembleFloat32(sign, exp, mant uint32) float32 {
	bits := sign<<(float32ExpBits+float32MantBits) | exp<<float32MantBits | mant

	return math.Float32frombits(bits)
}

// splitFloat32 is the inverse of assembleFloat32.
func splitFloat32(f float32) (sign, exp, mant uint32) {
	bits := math.Float32bits(f)
	sign = bits >> (float32ExpBits + float32MantBits)
	exp = bits >> float32MantBits & ((1 << float32ExpBits) - 1)
	mant = bits & ((1 << float32MantBits) - 1)

	return sign, exp, mant
}
