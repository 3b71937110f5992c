// Package arb containers: builder capabilities and the providers built on them.
package arb

import (
	"errors"
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/arbiter/gen"
)

// ErrNilFactory is raised when a container provider receives a nil builder factory.
var ErrNilFactory = errors.New("arb: builder factory is nil")

// sliceBuilder accumulates elements into a plain slice, preserving order
// and duplicates.
type sliceBuilder[T any] struct {
	elems []T
}

func (b *sliceBuilder[T]) Add(v T) {
	b.elems = append(b.elems, v)
}

func (b *sliceBuilder[T]) Build() []T {
	return b.elems
}

// SliceBuilder is the builder capability of []T.
func SliceBuilder[T any]() gen.Builder[[]T, T] {
	return &sliceBuilder[T]{}
}

// setBuilder accumulates elements into a hash set; duplicates collapse,
// so the built set may hold fewer members than were added.
type setBuilder[T comparable] struct {
	set mapset.Set[T]
}

func (b *setBuilder[T]) Add(v T) {
	b.set.Add(v)
}

func (b *setBuilder[T]) Build() mapset.Set[T] {
	return b.set
}

// SetBuilder is the builder capability of mapset.Set[T].
func SetBuilder[T comparable]() gen.Builder[mapset.Set[T], T] {
	return &setBuilder[T]{set: mapset.NewSet[T]()}
}

// mapBuilder accumulates key/value pairs into a map; a repeated key keeps
// the later value.
type mapBuilder[K comparable, V any] struct {
	entries map[K]V
}

func (b *mapBuilder[K, V]) Add(pair Tuple2[K, V]) {
	b.entries[pair.A] = pair.B
}

func (b *mapBuilder[K, V]) Build() map[K]V {
	return b.entries
}

// MapBuilder is the builder capability of map[K]V, fed by key/value pairs.
func MapBuilder[K comparable, V any]() gen.Builder[map[K]V, Tuple2[K, V]] {
	return &mapBuilder[K, V]{entries: make(map[K]V)}
}

// runeStringBuilder accumulates runes into a UTF-8 string.
type runeStringBuilder struct {
	sb strings.Builder
}

func (b *runeStringBuilder) Add(r rune) {
	b.sb.WriteRune(r)
}

func (b *runeStringBuilder) Build() string {
	return b.sb.String()
}

// StringBuilder is the builder capability of string, fed rune by rune.
func StringBuilder() gen.Builder[string, rune] {
	return &runeStringBuilder{}
}

// ContainerOf derives a provider for any container type C from its
// builder capability and an element provider. The element count is drawn
// uniformly from [0, size]; size 0 always yields the empty container.
// Containers with collapsing semantics (sets, maps) may end up smaller
// than the drawn count.
//
// Panics with ErrNilFactory or ErrNilProvider on nil arguments.
func ContainerOf[C, T any](name string, factory func() gen.Builder[C, T], elem *Provider[T]) *Provider[C] {
	if factory == nil {
		panic(ErrNilFactory.Error())
	}
	if elem == nil {
		panic(ErrNilProvider.Error())
	}

	return New(name, func() gen.Gen[C] {
		return gen.BuildOf(factory, elem.Describe())
	})
}

// SliceOf derives the []T provider from elem.
func SliceOf[T any](elem *Provider[T]) *Provider[[]T] {
	if elem == nil {
		panic(ErrNilProvider.Error())
	}

	return ContainerOf("slice("+elem.Name()+")", SliceBuilder[T], elem)
}

// SetOf derives the set provider from elem. Duplicate draws collapse, so
// cardinality may fall below the drawn element count.
func SetOf[T comparable](elem *Provider[T]) *Provider[mapset.Set[T]] {
	if elem == nil {
		panic(ErrNilProvider.Error())
	}

	return ContainerOf("set("+elem.Name()+")", SetBuilder[T], elem)
}

// MapOf derives the map provider from a key and a value provider, feeding
// the map builder with independently drawn key/value pairs.
func MapOf[K comparable, V any](key *Provider[K], val *Provider[V]) *Provider[map[K]V] {
	if key == nil || val == nil {
		panic(ErrNilProvider.Error())
	}

	return ContainerOf(fmt.Sprintf("map(%s,%s)", key.Name(), val.Name()), MapBuilder[K, V], Tuple2Of(key, val))
}

// StringOf derives a string provider from a rune provider, one generated
// rune per character. The string's rune count is bounded by the size hint.
func StringOf(elem *Provider[rune]) *Provider[string] {
	if elem == nil {
		panic(ErrNilProvider.Error())
	}

	return ContainerOf("string("+elem.Name()+")", StringBuilder, elem)
}

// stringProvider is the canonical string provider: surrogate-free runes
// accumulated through the string builder capability.
var stringProvider = New("string", func() gen.Gen[string] {
	return gen.BuildOf(StringBuilder, runeProvider.Describe())
})
