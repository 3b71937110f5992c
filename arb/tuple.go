// Package arb tuples: fixed-arity products with independently drawn components.
package arb

import (
	"fmt"

	"github.com/katalvlaran/arbiter/gen"
)

// Tuple2 groups two values drawn from independent providers.
type Tuple2[A, B any] struct {
	A A
	B B
}

// Tuple3 groups three values drawn from independent providers.
type Tuple3[A, B, C any] struct {
	A A
	B B
	C C
}

// Tuple4 groups four values drawn from independent providers.
type Tuple4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Tuple5 groups five values drawn from independent providers.
type Tuple5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// Tuple6 groups six values drawn from independent providers.
type Tuple6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// Tuple7 groups seven values drawn from independent providers.
type Tuple7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// Tuple8 groups eight values drawn from independent providers.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// Tuple9 groups nine values drawn from independent providers.
type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

// Tuple2Of composes the providers of both components into a pair
// provider. Components are drawn one after another from the same stream
// with no cross-component dependency: each marginal distribution matches
// its standalone provider. Panics with ErrNilProvider on a nil argument.
func Tuple2Of[A, B any](a *Provider[A], b *Provider[B]) *Provider[Tuple2[A, B]] {
	if a == nil || b == nil {
		panic(ErrNilProvider.Error())
	}

	return New(fmt.Sprintf("tuple2(%s,%s)", a.Name(), b.Name()), func() gen.Gen[Tuple2[A, B]] {
		ga, gb := a.Describe(), b.Describe()

		return func(p gen.Parameters) Tuple2[A, B] {
			return Tuple2[A, B]{A: ga(p), B: gb(p)}
		}
	})
}

// Tuple3Of composes three component providers; see Tuple2Of.
func Tuple3Of[A, B, C any](a *Provider[A], b *Provider[B], c *Provider[C]) *Provider[Tuple3[A, B, C]] {
	if a == nil || b == nil || c == nil {
		panic(ErrNilProvider.Error())
	}

	return New(fmt.Sprintf("tuple3(%s,%s,%s)", a.Name(), b.Name(), c.Name()), func() gen.Gen[Tuple3[A, B, C]] {
		ga, gb, gc := a.Describe(), b.Describe(), c.Describe()

		return func(p gen.Parameters) Tuple3[A, B, C] {
			return Tuple3[A, B, C]{A: ga(p), B: gb(p), C: gc(p)}
		}
	})
}

// Tuple4Of composes four component providers; see Tuple2Of.
func Tuple4Of[A, B, C, D any](a *Provider[A], b *Provider[B], c *Provider[C], d *Provider[D]) *Provider[Tuple4[A, B, C, D]] {
	if a == nil || b == nil || c == nil || d == nil {
		panic(ErrNilProvider.Error())
	}

	return New(fmt.Sprintf("tuple4(%s,%s,%s,%s)", a.Name(), b.Name(), c.Name(), d.Name()), func() gen.Gen[Tuple4[A, B, C, D]] {
		ga, gb, gc, gd := a.Describe(), b.Describe(), c.Describe(), d.Describe()

		return func(p gen.Parameters) Tuple4[A, B, C, D] {
			return Tuple4[A, B, C, D]{A: ga(p), B: gb(p), C: gc(p), D: gd(p)}
		}
	})
}

// Tuple5Of composes five component providers; see Tuple2Of.
func Tuple5Of[A, B, C, D, E any](a *Provider[A], b *Provider[B], c *Provider[C], d *Provider[D], e *Provider[E]) *Provider[Tuple5[A, B, C, D, E]] {
	if a == nil || b == nil || c == nil || d == nil || e == nil {
		panic(ErrNilProvider.Error())
	}

	return New(fmt.Sprintf("tuple5(%s,%s,%s,%s,%s)", a.Name(), b.Name(), c.Name(), d.Name(), e.Name()), func() gen.Gen[Tuple5[A, B, C, D, E]] {
		ga, gb, gc, gd, ge := a.Describe(), b.Describe(), c.Describe(), d.Describe(), e.Describe()

		return func(p gen.Parameters) Tuple5[A, B, C, D, E] {
			return Tuple5[A, B, C, D, E]{A: ga(p), B: gb(p), C: gc(p), D: gd(p), E: ge(p)}
		}
	})
}

// Tuple6Of composes six component providers; see Tuple2Of.
func Tuple6Of[A, B, C, D, E, F any](a *Provider[A], b *Provider[B], c *Provider[C], d *Provider[D], e *Provider[E], f *Provider[F]) *Provider[Tuple6[A, B, C, D, E, F]] {
	if a == nil || b == nil || c == nil || d == nil || e == nil || f == nil {
		panic(ErrNilProvider.Error())
	}

	name := fmt.Sprintf("tuple6(%s,%s,%s,%s,%s,%s)", a.Name(), b.Name(), c.Name(), d.Name(), e.Name(), f.Name())

	return New(name, func() gen.Gen[Tuple6[A, B, C, D, E, F]] {
		ga, gb, gc, gd, ge, gf := a.Describe(), b.Describe(), c.Describe(), d.Describe(), e.Describe(), f.Describe()

		return func(p gen.Parameters) Tuple6[A, B, C, D, E, F] {
			return Tuple6[A, B, C, D, E, F]{A: ga(p), B: gb(p), C: gc(p), D: gd(p), E: ge(p), F: gf(p)}
		}
	})
}

// Tuple7Of composes seven component providers; see Tuple2Of.
func Tuple7Of[A, B, C, D, E, F, G any](a *Provider[A], b *Provider[B], c *Provider[C], d *Provider[D], e *Provider[E], f *Provider[F], g *Provider[G]) *Provider[Tuple7[A, B, C, D, E, F, G]] {
	if a == nil || b == nil || c == nil || d == nil || e == nil || f == nil || g == nil {
		panic(ErrNilProvider.Error())
	}

	name := fmt.Sprintf("tuple7(%s,%s,%s,%s,%s,%s,%s)",
		a.Name(), b.Name(), c.Name(), d.Name(), e.Name(), f.Name(), g.Name())

	return New(name, func() gen.Gen[Tuple7[A, B, C, D, E, F, G]] {
		ga, gb, gc, gd := a.Describe(), b.Describe(), c.Describe(), d.Describe()
		ge, gf, gg := e.Describe(), f.Describe(), g.Describe()

		return func(p gen.Parameters) Tuple7[A, B, C, D, E, F, G] {
			return Tuple7[A, B, C, D, E, F, G]{A: ga(p), B: gb(p), C: gc(p), D: gd(p), E: ge(p), F: gf(p), G: gg(p)}
		}
	})
}

// Tuple8Of composes eight component providers; see Tuple2Of.
func Tuple8Of[A, B, C, D, E, F, G, H any](a *Provider[A], b *Provider[B], c *Provider[C], d *Provider[D], e *Provider[E], f *Provider[F], g *Provider[G], h *Provider[H]) *Provider[Tuple8[A, B, C, D, E, F, G, H]] {
	if a == nil || b == nil || c == nil || d == nil || e == nil || f == nil || g == nil || h == nil {
		panic(ErrNilProvider.Error())
	}

	name := fmt.Sprintf("tuple8(%s,%s,%s,%s,%s,%s,%s,%s)",
		a.Name(), b.Name(), c.Name(), d.Name(), e.Name(), f.Name(), g.Name(), h.Name())

	return New(name, func() gen.Gen[Tuple8[A, B, C, D, E, F, G, H]] {
		ga, gb, gc, gd := a.Describe(), b.Describe(), c.Describe(), d.Describe()
		ge, gf, gg, gh := e.Describe(), f.Describe(), g.Describe(), h.Describe()

		return func(p gen.Parameters) Tuple8[A, B, C, D, E, F, G, H] {
			return Tuple8[A, B, C, D, E, F, G, H]{
				A: ga(p), B: gb(p), C: gc(p), D: gd(p),
				E: ge(p), F: gf(p), G: gg(p), H: gh(p),
			}
		}
	})
}

// Tuple9Of composes nine component providers; see Tuple2Of.
func Tuple9Of[A, B, C, D, E, F, G, H, I any](a *Provider[A], b *Provider[B], c *Provider[C], d *Provider[D], e *Provider[E], f *Provider[F], g *Provider[G], h *Provider[H], i *Provider[I]) *Provider[Tuple9[A, B, C, D, E, F, G, H, I]] {
	if a == nil || b == nil || c == nil || d == nil || e == nil || f == nil || g == nil || h == nil || i == nil {
		panic(ErrNilProvider.Error())
	}

	name := fmt.Sprintf("tuple9(%s,%s,%s,%s,%s,%s,%s,%s,%s)",
		a.Name(), b.Name(), c.Name(), d.Name(), e.Name(), f.Name(), g.Name(), h.Name(), i.Name())

	return New(name, func() gen.Gen[Tuple9[A, B, C, D, E, F, G, H, I]] {
		ga, gb, gc, gd := a.Describe(), b.Describe(), c.Describe(), d.Describe()
		ge, gf, gg, gh, gi := e.Describe(), f.Describe(), g.Describe(), h.Describe(), i.Describe()

		return func(p gen.Parameters) Tuple9[A, B, C, D, E, F, G, H, I] {
			return Tuple9[A, B, C, D, E, F, G, H, I]{
				A: ga(p), B: gb(p), C: gc(p), D: gd(p),
				E: ge(p), F: gf(p), G: gg(p), H: gh(p), I: gi(p),
			}
		}
	})
}
