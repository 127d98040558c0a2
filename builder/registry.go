package builder

import (
	"fmt"
	"sort"
	"strings"
)

// Registry maps variant names to builders, so callers can pick a builder by kind.
//
// Names are case-insensitive and surrounding whitespace is ignored.
// Registry is meant to be filled once at startup and read afterwards; it is
// not safe for concurrent Provide calls.
type Registry struct {
	items map[string]Builder
}

func NewRegistry() *Registry {
	return &Registry{items: map[string]Builder{}}
}

// DefaultRegistry returns a registry holding the "luxury" and "basic" variants.
func DefaultRegistry() *Registry {
	return NewRegistry().
		Provide("luxury", Luxury{}).
		Provide("basic", Basic{})
}

// Provide stores b under name and returns the registry for chaining.
// A later Provide with the same name replaces the earlier builder.
func (r *Registry) Provide(name string, b Builder) *Registry {
	r.items[normalizeName(name)] = b
	return r
}

// Lookup returns the builder registered under name.
//
// Unknown names (and names registered with a nil builder) yield an
// *UnknownVariantError.
func (r *Registry) Lookup(name string) (Builder, error) {
	b, ok := r.items[normalizeName(name)]
	if !ok || b == nil {
		return nil, &UnknownVariantError{Name: name}
	}
	return b, nil
}

// MustLookup returns the builder or panics with a helpful message.
// Useful in examples/tests where missing variants should fail fast.
func (r *Registry) MustLookup(name string) Builder {
	b, err := r.Lookup(name)
	if err != nil {
		panic(fmt.Errorf("%w (known: %s)", err, strings.Join(r.Names(), ", ")))
	}
	return b
}

// Names returns the registered variant names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
