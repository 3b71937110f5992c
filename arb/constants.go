// Package arb defines the distribution constants shared by the canonical
// providers, keeping weights and bounds consistent and reviewable.
package arb

//-----------------------------------------------------------------------------
// Rune Generation
//   Unicode scalar values, skipping the UTF-16 surrogate block.
//-----------------------------------------------------------------------------

const (
	// surrogateMin is the first UTF-16 surrogate code point; never a valid rune.
	surrogateMin rune = 0xD800
	// surrogateMax is the last UTF-16 surrogate code point; never a valid rune.
	surrogateMax rune = 0xDFFF

	// runeBelowWeight is the width of [0, surrogateMin), weighting the low
	// subrange so the overall rune distribution stays uniform.
	runeBelowWeight = 0xD800
	// runeAboveWeight is the width of (surrogateMax, MaxRune], weighting the
	// high subrange likewise.
	runeAboveWeight = 0x102000
)

//-----------------------------------------------------------------------------
// IEEE-754 Bit Fields
//   exponent/mantissa widths used to assemble floats field by field.
//-----------------------------------------------------------------------------

const (
	// float64ExpBits is the exponent width of a float64.
	float64ExpBits = 11
	// float64MantBits is the mantissa width of a float64.
	float64MantBits = 52
	// float32ExpBits is the exponent width of a float32.
	float32ExpBits = 8
	// float32MantBits is the mantissa width of a float32.
	float32MantBits = 23
)

//-----------------------------------------------------------------------------
// Big Integer Mixture
//   small values near the size hint, bit-shifted magnitudes, and the
//   edges of the 32- and 64-bit signed ranges.
//-----------------------------------------------------------------------------

const (
	// bigSmallWeight selects a value drawn uniformly from [-size, size].
	bigSmallWeight = 5
	// bigLargeWeight selects a small value scaled by a random power of two.
	bigLargeWeight = 10
	// bigBoundaryWeight selects one fixed boundary constant.
	bigBoundaryWeight = 1

	// bigShiftMin is the smallest left shift applied by the large branch.
	bigShiftMin uint = 32
	// bigShiftMax is the largest left shift applied by the large branch.
	bigShiftMax uint = 128
)

//-----------------------------------------------------------------------------
// Decimal Precision Contexts
//   digit budgets of the IEEE decimal interchange formats.
//-----------------------------------------------------------------------------

const (
	// decimal32Precision is the digit budget of the decimal32 format.
	decimal32Precision = 7
	// decimal64Precision is the digit budget of the decimal64 format.
	decimal64Precision = 16
	// decimal128Precision is the digit budget of the decimal128 format.
	decimal128Precision = 34
)

//-----------------------------------------------------------------------------
// Option Mixture
//-----------------------------------------------------------------------------

// optionAbsentWeight is the fixed weight of the absent branch; the present
// branch weighs the current size, so presence dominates as values grow.
const optionAbsentWeight = 1

//-----------------------------------------------------------------------------
// Error Values
//-----------------------------------------------------------------------------

const (
	// errPlainWeight selects a flat error built from a random message.
	errPlainWeight = 3
	// errWrappedWeight selects an error wrapping another random error.
	errWrappedWeight = 1
	// errMessageSize caps the length of generated error messages.
	errMessageSize = 16
)

//-----------------------------------------------------------------------------
// Run Configuration Ranges
//   plausible property-run settings, kept deliberately moderate.
//-----------------------------------------------------------------------------

const (
	// checkMinSuccessLo is the smallest generated MinSuccess.
	checkMinSuccessLo = 10
	// checkMinSuccessHi is the largest generated MinSuccess.
	checkMinSuccessHi = 200

	// checkDiscardLo is the smallest generated MaxDiscardRatio.
	checkDiscardLo = 0.2
	// checkDiscardHi is the largest generated MaxDiscardRatio.
	checkDiscardHi = 10.0

	// checkSizeLo is the smallest generated size bound.
	checkSizeLo = 0
	// checkSizeHi is the largest generated size bound; MaxSize adds another
	// draw from the same range on top of MinSize.
	checkSizeHi = 500

	// checkWorkersLo is the smallest generated worker count.
	checkWorkersLo = 1
	// checkWorkersHi is the largest generated worker count.
	checkWorkersHi = 4
)

//-----------------------------------------------------------------------------
// Verdict Mixture
//-----------------------------------------------------------------------------

const (
	// verdictFalsifiedWeight selects the falsified outcome.
	verdictFalsifiedWeight = 4
	// verdictPassedWeight selects the passed outcome.
	verdictPassedWeight = 4
	// verdictProvedWeight selects the proved outcome.
	verdictProvedWeight = 4
	// verdictUndecidedWeight selects the undecided outcome.
	verdictUndecidedWeight = 2
	// verdictErroredWeight selects the errored outcome, paired with an error.
	verdictErroredWeight = 1
)

//-----------------------------------------------------------------------------
// Parameter Blocks
//-----------------------------------------------------------------------------

// paramSizeMax bounds the size hint carried by generated Parameters.
const paramSizeMax = 500

//-----------------------------------------------------------------------------
// Time Range
//   calendar years 1 through 9999, the printable-date interval.
//-----------------------------------------------------------------------------

const (
	// minUnixSec is 0001-01-01T00:00:00Z in Unix seconds.
	minUnixSec int64 = -62135596800
	// maxUnixSec is 9999-12-31T23:59:59Z in Unix seconds.
	maxUnixSec int64 = 253402300799
	// maxNanosInSec is the largest in-second nanosecond offset.
	maxNanosInSec int64 = 999999999
)
