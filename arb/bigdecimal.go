// Package arb canonical decimal provider: precision contexts over big.Int coefficients.
package arb

import (
	"math"
	"math/big"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/arbiter/gen"
)

// decimalPrecisions are the digit budgets the provider samples its
// rounding context from: unlimited (0) plus the three IEEE decimal
// interchange formats.
var decimalPrecisions = []uint32{
	0,
	decimal32Precision,
	decimal64Precision,
	decimal128Precision,
}

// minSafeScale is the smallest scale at which coeff × 10^(−scale) can
// round to prec digits without the value itself degenerating: rounding
// may strip at most digitCount(|coeff|) − prec digits. Zero for the
// unlimited context, which never rounds.
func minSafeScale(unscaled *big.Int, prec uint32) int32 {
	if prec == 0 {
		return 0
	}
	digits := int32(len(new(big.Int).Abs(unscaled).String()))
	if over := digits - int32(prec); over > 0 {
		return over
	}

	return 0
}

// makeDecimal constructs unscaled × 10^(−scale), rounding under a
// prec-digit context when prec is positive. A bounded context can be
// mathematically inconsistent with the sampled scale (the rounded
// exponent escapes the context's range); that construction conflict is
// recovered locally by returning the exact unlimited-precision value
// instead. The second result reports whether this fallback fired.
func makeDecimal(unscaled *big.Int, prec uint32, scale int32) (*apd.Decimal, bool) {
	exp := -int64(scale)
	if exp > math.MaxInt32 {
		// −MinInt32 is one past the widest representable exponent.
		exp = math.MaxInt32
	}
	exact := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(unscaled), int32(exp))
	if prec == 0 {
		return exact, false
	}

	rounded := new(apd.Decimal)
	if _, err := apd.BaseContext.WithPrecision(prec).Round(rounded, exact); err != nil {
		return exact, true
	}

	return rounded, false
}

// bigDecimalProvider derives decimals from the boundary-biased big.Int
// provider: the integer supplies the unscaled coefficient, a context is
// drawn from decimalPrecisions, and the scale is sampled uniformly from
// [MinInt32 + minSafeScale, MaxInt32]. Extreme scales keep the exponent
// range itself under test rather than only the coefficient.
var bigDecimalProvider = New("apd.Decimal", func() gen.Gen[*apd.Decimal] {
	unscaled := bigIntProvider.Describe()
	prec := gen.OneConstOf(decimalPrecisions...)

	return func(p gen.Parameters) *apd.Decimal {
		v := unscaled(p)
		pr := prec(p)
		lo := math.MinInt32 + minSafeScale(v, pr)
		scale := gen.Choose(lo, math.MaxInt32)(p)
		d, _ := makeDecimal(v, pr, scale)

		return d
	}
})
