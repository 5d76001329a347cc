// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"testing"
)

func stubFactory(opts Options) (Surface, error) {
	return NewGGSurface(opts)
}

func TestRegistryRegisterAndGet(t *testing.T) {
	var r Registry
	r.Register("test", 50, stubFactory, nil)

	b, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if b.Priority != 50 {
		t.Errorf("Priority = %d, want 50", b.Priority)
	}
	if !b.Available() {
		t.Error("backend should be available (nil Available func)")
	}

	r.Unregister("test")
	if _, ok := r.Get("test"); ok {
		t.Error("backend should not exist after unregister")
	}
}

func TestRegistryListOrder(t *testing.T) {
	var r Registry
	r.Register("low", 1, stubFactory, nil)
	r.Register("high", 100, stubFactory, nil)
	r.Register("mid", 50, stubFactory, nil)

	got := r.List()
	want := []string{"high", "mid", "low"}
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestRegistrySkipsUnavailable(t *testing.T) {
	var r Registry
	called := false
	r.Register("gone", 100, func(Options) (Surface, error) {
		called = true
		return nil, errors.New("should not be called")
	}, func() bool { return false })
	r.Register("gg", 10, stubFactory, nil)

	s, err := r.NewSurface(Options{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("NewSurface: %v", err)
	}
	if called {
		t.Error("unavailable backend factory was called")
	}
	if s.Width() != 4 {
		t.Errorf("Width() = %d, want 4", s.Width())
	}
}

func TestRegistryErrors(t *testing.T) {
	var r Registry
	if _, err := r.NewSurface(Options{}); !errors.Is(err, ErrNoBackend) {
		t.Errorf("empty registry: got %v, want ErrNoBackend", err)
	}

	_, err := r.NewSurfaceByName("missing", Options{})
	var nf *BackendNotFoundError
	if !errors.As(err, &nf) || nf.Name != "missing" {
		t.Errorf("got %v, want BackendNotFoundError{missing}", err)
	}
}

func TestGlobalRegistryHasGG(t *testing.T) {
	found := false
	for _, name := range List() {
		if name == "gg" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() = %v, want gg registered", List())
	}
}
