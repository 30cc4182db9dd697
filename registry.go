package colortransfer

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

// Factory creates a configured transfer method.
type Factory func(opts ...Option) Method

type registryEntry struct {
	name        string
	description string
	factory     Factory
}

// Registry maps method names to factories.
//
// Lookups ignore case, spaces, hyphens and underscores, so "Image
// Analogies", "image-analogies" and "imageanalogies" name the same method.
//
// Thread safety: Registry is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]registryEntry
}

// NewRegistry returns a registry holding the built-in methods.
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[string]registryEntry)}
	for _, f := range []Factory{
		func(opts ...Option) Method { return NewCholesky(opts...) },
		func(opts ...Option) Method { return NewEigen(opts...) },
		func(opts ...Option) Method { return NewLuminanceOnly(opts...) },
	} {
		if err := r.Register(f); err != nil {
			panic(err)
		}
	}
	return r
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the process-wide registry of built-in methods,
// created on first use.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

// Register adds a method. Its name and description are read from an
// instance built with no options. A method with the same name replaces the
// existing one.
func (r *Registry) Register(factory Factory) error {
	if factory == nil {
		return fmt.Errorf("%w: nil factory", ErrInvalidArgument)
	}
	m := factory()
	if m == nil {
		return fmt.Errorf("%w: factory returned nil", ErrInvalidArgument)
	}
	key := registryKey(m.Name())
	if key == "" {
		return fmt.Errorf("%w: method has no name", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = registryEntry{
		name:        m.Name(),
		description: m.Description(),
		factory:     factory,
	}
	return nil
}

// Names returns the registered method names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.MapToSlice(r.entries, func(_ string, e registryEntry) string {
		return e.name
	})
	slices.Sort(names)
	return names
}

// Description returns the description of the named method.
func (r *Registry) Description(name string) (string, bool) {
	e, ok := r.lookup(name)
	return e.description, ok
}

// New creates the named method with the given options. ok is false when no
// such method is registered.
func (r *Registry) New(name string, opts ...Option) (m Method, ok bool) {
	e, ok := r.lookup(name)
	if !ok {
		return nil, false
	}
	return e.factory(opts...), true
}

// Create is like New but returns an error wrapping ErrUnknownMethod, listing
// the available names, when name is not registered.
func (r *Registry) Create(name string, opts ...Option) (Method, error) {
	m, ok := r.New(name, opts...)
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownMethod, name, strings.Join(r.Names(), ", "))
	}
	return m, nil
}

func (r *Registry) lookup(name string) (registryEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[registryKey(name)]
	return e, ok
}

// registryKey case-folds name and drops word separators.
func registryKey(name string) string {
	folded := cases.Fold().String(name)
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, folded)
}
