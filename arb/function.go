// Package arb function providers: synthesized pure callables of arity one
// through five.
package arb

import (
	"github.com/katalvlaran/arbiter/gen"
)

// Func1Of synthesizes a provider of pure unary functions. Each yielded
// function owns a state snapshot captured at generation time; calling it
// folds the argument through pa and drives result's description with the
// derived state. Equal arguments therefore map to equal results without
// any caching, while distinct arguments steer the result draw apart.
//
// Panics with ErrNilPerturber or ErrNilProvider on nil arguments.
func Func1Of[A, Z any](pa Perturber[A], result *Provider[Z]) *Provider[func(A) Z] {
	if pa == nil {
		panic(ErrNilPerturber.Error())
	}
	if result == nil {
		panic(ErrNilProvider.Error())
	}

	return New("func1("+result.Name()+")", func() gen.Gen[func(A) Z] {
		res := result.Describe()

		return gen.Promote(func(a A) gen.Gen[Z] {
			return func(p gen.Parameters) Z {
				state := pa(gen.CaptureSeed(p), a)

				return res(gen.Parameters{Size: p.Size, Rng: state.Rand()})
			}
		})
	})
}

// Func2Of synthesizes a provider of pure binary functions: the argument
// perturbers chain in order, the later argument folding closest to the
// result draw. See Func1Of for the determinism contract.
// Panics with ErrNilPerturber or ErrNilProvider on nil arguments.
func Func2Of[A, B, Z any](pa Perturber[A], pb Perturber[B], result *Provider[Z]) *Provider[func(A, B) Z] {
	if pa == nil || pb == nil {
		panic(ErrNilPerturber.Error())
	}
	if result == nil {
		panic(ErrNilProvider.Error())
	}

	return New("func2("+result.Name()+")", func() gen.Gen[func(A, B) Z] {
		res := result.Describe()

		return func(p gen.Parameters) func(A, B) Z {
			base := gen.CaptureSeed(p)
			size := p.Size

			return func(a A, b B) Z {
				state := pb(pa(base, a), b)

				return res(gen.Parameters{Size: size, Rng: state.Rand()})
			}
		}
	})
}

// Func3Of synthesizes a provider of pure ternary functions; see Func2Of.
// Panics with ErrNilPerturber or ErrNilProvider on nil arguments.
func Func3Of[A, B, C, Z any](pa Perturber[A], pb Perturber[B], pc Perturber[C], result *Provider[Z]) *Provider[func(A, B, C) Z] {
	if pa == nil || pb == nil || pc == nil {
		panic(ErrNilPerturber.Error())
	}
	if result == nil {
		panic(ErrNilProvider.Error())
	}

	return New("func3("+result.Name()+")", func() gen.Gen[func(A, B, C) Z] {
		res := result.Describe()

		return func(p gen.Parameters) func(A, B, C) Z {
			base := gen.CaptureSeed(p)
			size := p.Size

			return func(a A, b B, c C) Z {
				state := pc(pb(pa(base, a), b), c)

				return res(gen.Parameters{Size: size, Rng: state.Rand()})
			}
		}
	})
}

// Func4Of synthesizes a provider of pure 4-ary functions; see Func2Of.
// Panics with ErrNilPerturber or ErrNilProvider on nil arguments.
func Func4Of[A, B, C, D, Z any](pa Perturber[A], pb Perturber[B], pc Perturber[C], pd Perturber[D], result *Provider[Z]) *Provider[func(A, B, C, D) Z] {
	if pa == nil || pb == nil || pc == nil || pd == nil {
		panic(ErrNilPerturber.Error())
	}
	if result == nil {
		panic(ErrNilProvider.Error())
	}

	return New("func4("+result.Name()+")", func() gen.Gen[func(A, B, C, D) Z] {
		res := result.Describe()

		return func(p gen.Parameters) func(A, B, C, D) Z {
			base := gen.CaptureSeed(p)
			size := p.Size

			return func(a A, b B, c C, d D) Z {
				state := pd(pc(pb(pa(base, a), b), c), d)

				return res(gen.Parameters{Size: size, Rng: state.Rand()})
			}
		}
	})
}

// Func5Of synthesizes a provider of pure 5-ary functions; see Func2Of.
// Panics with ErrNilPerturber or ErrNilProvider on nil arguments.
func Func5Of[A, B, C, D, E, Z any](pa Perturber[A], pb Perturber[B], pc Perturber[C], pd Perturber[D], pe Perturber[E], result *Provider[Z]) *Provider[func(A, B, C, D, E) Z] {
	if pa == nil || pb == nil || pc == nil || pd == nil || pe == nil {
		panic(ErrNilPerturber.Error())
	}
	if result == nil {
		panic(ErrNilProvider.Error())
	}

	return New("func5("+result.Name()+")", func() gen.Gen[func(A, B, C, D, E) Z] {
		res := result.Describe()

		return func(p gen.Parameters) func(A, B, C, D, E) Z {
			base := gen.CaptureSeed(p)
			size := p.Size

			return func(a A, b B, c C, d D, e E) Z {
				state := pe(pd(pc(pb(pa(base, a), b), c), d), e)

				return res(gen.Parameters{Size: size, Rng: state.Rand()})
			}
		}
	})
}
