// Package arb Registry: the type-keyed catalogue of canonical providers.
package arb

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

var (
	// ErrDuplicateProvider is raised when a type already has a canonical provider.
	ErrDuplicateProvider = errors.New("arb: provider already registered for type")

	// ErrNotRegistered is raised when a type has no canonical provider.
	ErrNotRegistered = errors.New("arb: no provider registered for type")
)

// Registry maps each Go type to its single canonical Provider.
// The zero value is not usable; construct with NewRegistry.
// All methods are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[reflect.Type]any
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[reflect.Type]any)}
}

// typeOf resolves T's reflect.Type without materializing a T.
// Works for interface types too, unlike reflect.TypeOf on a value.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterIn installs pr as the canonical provider for T in r.
// Exactly one provider per type is allowed; a second registration
// reports ErrDuplicateProvider and leaves the first untouched.
// Panics with ErrNilProvider when pr is nil.
func RegisterIn[T any](r *Registry, pr *Provider[T]) error {
	if pr == nil {
		panic(ErrNilProvider.Error())
	}
	key := typeOf[T]()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.entries[key]; dup {
		return fmt.Errorf("%w: %s", ErrDuplicateProvider, key)
	}
	r.entries[key] = pr

	return nil
}

// FromRegistry looks up the canonical provider for T in r, reporting
// ErrNotRegistered when the type has none.
func FromRegistry[T any](r *Registry) (*Provider[T], error) {
	key := typeOf[T]()
	r.mu.RLock()
	e, ok := r.entries[key]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, key)
	}
	// Only RegisterIn[T] writes this key, so the assertion cannot fail.
	return e.(*Provider[T]), nil
}

// Len reports how many types have a canonical provider in r.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// Types lists every registered type, sorted by its printed name so the
// order is stable across runs.
func (r *Registry) Types() []reflect.Type {
	r.mu.RLock()
	out := make([]reflect.Type, 0, len(r.entries))
	for t := range r.entries {
		out = append(out, t)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})

	return out
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the shared registry pre-populated with the canonical
// providers for primitives, big numbers, containers and metadata.
// The population runs once, on first access.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultReg = NewRegistry()
		registerCanonical(defaultReg)
	})

	return defaultReg
}

// For returns the canonical provider for T from the default registry.
// Panics with ErrNotRegistered when T has none; use FromRegistry for a
// non-panicking lookup.
func For[T any]() *Provider[T] {
	pr, err := FromRegistry[T](Default())
	if err != nil {
		panic(err.Error())
	}

	return pr
}

// MustRegister installs pr as T's canonical provider in the default
// registry, panicking when T already has one.
func MustRegister[T any](pr *Provider[T]) {
	if err := RegisterIn(Default(), pr); err != nil {
		panic(err.Error())
	}
}
