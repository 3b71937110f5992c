// Package arb Either: the two-branch union type and its provider.
package arb

import (
	"github.com/katalvlaran/arbiter/gen"
)

// Either holds exactly one of two alternatives: a Left of L or a Right
// of R. The zero value is a Left carrying L's zero value.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left wraps l into the left branch.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right wraps r into the right branch.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// IsLeft reports whether e holds the left branch.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight reports whether e holds the right branch.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// GetLeft returns the left value and true, or the zero value and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if e.isRight {
		var zero L

		return zero, false
	}

	return e.left, true
}

// GetRight returns the right value and true, or the zero value and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if !e.isRight {
		var zero R

		return zero, false
	}

	return e.right, true
}

// EitherOf derives the two-branch union provider: a fair coin picks the
// branch, then that branch's provider supplies the wrapped value.
// Panics with ErrNilProvider when either argument is nil.
func EitherOf[L, R any](left *Provider[L], right *Provider[R]) *Provider[Either[L, R]] {
	if left == nil || right == nil {
		panic(ErrNilProvider.Error())
	}

	return New("either("+left.Name()+","+right.Name()+")", func() gen.Gen[Either[L, R]] {
		return gen.OneOf(
			gen.Map(left.Describe(), Left[L, R]),
			gen.Map(right.Describe(), Right[L, R]),
		)
	})
}
