// Package arb Provider: the lazy, memoized description of one type's values.
package arb

import (
	"errors"
	"sync"

	"github.com/katalvlaran/arbiter/gen"
)

var (
	// ErrEmptyName is raised when a provider is created without a name.
	ErrEmptyName = errors.New("arb: provider name is empty")

	// ErrNilBuild is raised when a provider is created without a build function.
	ErrNilBuild = errors.New("arb: provider build function is nil")

	// ErrNilProvider is raised when a combinator receives a nil provider.
	ErrNilProvider = errors.New("arb: provider is nil")

	// ErrNilPerturber is raised when a function synthesizer receives a nil perturber.
	ErrNilPerturber = errors.New("arb: perturber is nil")
)

// Provider is the canonical description of how to generate values of T.
// Construction of the underlying recipe is deferred until the first
// Describe and memoized from then on, so providers may depend on one
// another (including cyclically through Lazy) without ordering traps.
//
// A Provider is safe for concurrent use once created.
type Provider[T any] struct {
	name  string
	build func() gen.Gen[T]
	once  sync.Once
	g     gen.Gen[T]
}

// New creates a Provider named name whose recipe is built by build on
// first use. Panics with ErrEmptyName or ErrNilBuild on invalid input.
func New[T any](name string, build func() gen.Gen[T]) *Provider[T] {
	if name == "" {
		panic(ErrEmptyName.Error())
	}
	if build == nil {
		panic(ErrNilBuild.Error())
	}
	return &Provider[T]{name: name, build: build}
}

// Name reports the provider's registered name.
func (pr *Provider[T]) Name() string {
	return pr.name
}

// Describe forces the provider and returns its recipe. The build
// function runs exactly once; every later call returns the same Gen.
func (pr *Provider[T]) Describe() gen.Gen[T] {
	pr.once.Do(func() {
		pr.g = pr.build()
	})
	return pr.g
}

// Generate draws one value from the provider's recipe under p.
func (pr *Provider[T]) Generate(p gen.Parameters) T {
	return pr.Describe()(p)
}
