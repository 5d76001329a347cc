// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"sort"
	"sync"
)

// Factory creates a Surface from options.
type Factory func(opts Options) (Surface, error)

// Backend is a registered surface backend.
type Backend struct {
	// Name is the unique identifier (e.g. "gg", "recording").
	Name string

	// Priority determines automatic selection order (higher = preferred).
	Priority int

	// Factory creates surface instances.
	Factory Factory

	// Available reports if the backend can be used on this system.
	Available func() bool
}

// ErrNoBackend is returned when no backend is registered or available.
var ErrNoBackend = errors.New("surface: no backend available")

// BackendNotFoundError indicates a named backend is not registered.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "surface: backend not found: " + e.Name
}

// Registry maps backend names to factories.
// The zero value is an empty registry. Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	backends map[string]Backend
}

var globalRegistry = &Registry{}

// Register adds a backend to the global registry.
// Registering an existing name replaces it. A nil available means always
// available.
func Register(name string, priority int, factory Factory, available func() bool) {
	globalRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the global registry.
func Unregister(name string) { globalRegistry.Unregister(name) }

// List returns registered backend names, highest priority first.
func List() []string { return globalRegistry.List() }

// NewSurface creates a surface with the best available backend.
func NewSurface(opts Options) (Surface, error) { return globalRegistry.NewSurface(opts) }

// NewSurfaceByName creates a surface with the named backend.
func NewSurfaceByName(name string, opts Options) (Surface, error) {
	return globalRegistry.NewSurfaceByName(name, opts)
}

// Register adds a backend to r.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.backends == nil {
		r.backends = make(map[string]Backend)
	}
	if available == nil {
		available = func() bool { return true }
	}
	r.backends[name] = Backend{Name: name, Priority: priority, Factory: factory, Available: available}
}

// Unregister removes a backend from r.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.backends, name)
}

// Get returns the named backend.
func (r *Registry) Get(name string) (Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.backends[name]
	return b, ok
}

// List returns backend names, highest priority first.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := r.backends[names[i]].Priority, r.backends[names[j]].Priority
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	return names
}

// NewSurface tries each available backend in priority order.
func (r *Registry) NewSurface(opts Options) (Surface, error) {
	var lastErr error
	for _, name := range r.List() {
		b, _ := r.Get(name)
		if !b.Available() {
			continue
		}
		s, err := b.Factory(opts)
		if err == nil {
			return s, nil
		}
		lastErr = err
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackend
}

// NewSurfaceByName creates a surface with the named backend.
func (r *Registry) NewSurfaceByName(name string, opts Options) (Surface, error) {
	b, ok := r.Get(name)
	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, ErrNoBackend
	}
	return b.Factory(opts)
}
