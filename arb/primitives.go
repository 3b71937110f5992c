// Package arb canonical primitive providers: booleans, integers, runes.
package arb

import (
	"math"
	"unicode"

	"github.com/katalvlaran/arbiter/gen"
)

// Integer providers draw uniformly from the full range of their type, so
// extremes like MinInt64 and MaxUint32 surface as often as any midpoint.
var (
	boolProvider = New("bool", func() gen.Gen[bool] {
		return gen.OneConstOf(false, true)
	})

	intProvider = New("int", func() gen.Gen[int] {
		return gen.Choose(math.MinInt, math.MaxInt)
	})

	int8Provider = New("int8", func() gen.Gen[int8] {
		return gen.Choose[int8](math.MinInt8, math.MaxInt8)
	})

	int16Provider = New("int16", func() gen.Gen[int16] {
		return gen.Choose[int16](math.MinInt16, math.MaxInt16)
	})

	int32Provider = New("int32", func() gen.Gen[int32] {
		return gen.Choose[int32](math.MinInt32, math.MaxInt32)
	})

	int64Provider = New("int64", func() gen.Gen[int64] {
		return gen.Choose[int64](math.MinInt64, math.MaxInt64)
	})

	uintProvider = New("uint", func() gen.Gen[uint] {
		return gen.Choose[uint](0, math.MaxUint)
	})

	uint8Provider = New("uint8", func() gen.Gen[uint8] {
		return gen.Choose[uint8](0, math.MaxUint8)
	})

	uint16Provider = New("uint16", func() gen.Gen[uint16] {
		return gen.Choose[uint16](0, math.MaxUint16)
	})

	uint32Provider = New("uint32", func() gen.Gen[uint32] {
		return gen.Choose[uint32](0, math.MaxUint32)
	})

	uint64Provider = New("uint64", func() gen.Gen[uint64] {
		return gen.Choose[uint64](0, math.MaxUint64)
	})
)

// runeProvider yields every valid Unicode scalar value except the UTF-16
// surrogate block, with each subrange weighted by its width so the
// overall distribution stays uniform across scalars.
var runeProvider = New("rune", func() gen.Gen[rune] {
	return gen.Frequency(
		gen.Weighted[rune]{
			Weight: runeBelowWeight,
			Gen:    gen.Choose[rune](0, surrogateMin-1),
		},
		gen.Weighted[rune]{
			Weight: runeAboveWeight,
			Gen:    gen.Choose[rune](surrogateMax+1, unicode.MaxRune),
		},
	)
})

// Runes is the canonical rune provider. It is handed out by function
// rather than registry lookup: rune and int32 are one and the same type
// in Go, and the int32 slot belongs to the full-range integer provider.
func Runes() *Provider[rune] {
	return runeProvider
}
